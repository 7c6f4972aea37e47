package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oshokin/utilkit/internal/numutil"
	"github.com/oshokin/utilkit/internal/strutil"
)

// Text operations accepted by ExecuteTextCommand.
const (
	TextCapitalize = "capitalize"
	TextTitle      = "title"
	TextPascal     = "pascal"
	TextSlug       = "slug"
	TextTruncate   = "truncate"
	TextWords      = "words"
)

// Text checks accepted by ExecuteTextCheckCommand.
const (
	CheckEmail = "email"
	CheckURL   = "url"
	CheckPhone = "phone"
	CheckAlpha = "alpha"
	CheckEmpty = "empty"
)

// Number operations accepted by ExecuteNumberCommand.
const (
	NumberCommas  = "commas"
	NumberRound   = "round"
	NumberPercent = "percent"
	NumberBytes   = "bytes"
	NumberParity  = "parity"
)

// TextParams holds the options of the text commands.
type TextParams struct {
	// Operation is one of the Text* constants.
	Operation string
	// Input is the text to transform.
	Input string
	// Length is the rune limit of TextTruncate.
	Length int
}

// NumberParams holds the options of the number commands.
type NumberParams struct {
	// Operation is one of the Number* constants.
	Operation string
	// Input is the number, or a byte size such as "1.5 MiB" for NumberBytes.
	Input string
	// Decimals is the precision of NumberRound, NumberPercent and NumberCommas.
	Decimals int
}

// ExecuteTextCommand prints the transformed input.
func ExecuteTextCommand(_ context.Context, params TextParams, w io.Writer) error {
	var result string

	switch strings.ToLower(params.Operation) {
	case TextCapitalize:
		result = strutil.Capitalize(params.Input)
	case TextTitle:
		result = strutil.TitleCase(params.Input)
	case TextPascal:
		result = strutil.PascalCase(params.Input)
	case TextSlug:
		result = strutil.Slugify(params.Input)
	case TextTruncate:
		result = strutil.Truncate(params.Input, params.Length)
	case TextWords:
		result = strings.Join(strutil.Words(params.Input), "\n")
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, params.Operation)
	}

	return writeLine(w, result)
}

// ExecuteTextCheckCommand validates the input and prints "ok".
// A failed check returns ErrValidationFailed.
func ExecuteTextCheckCommand(_ context.Context, check, input string, w io.Writer) error {
	var ok bool

	switch strings.ToLower(check) {
	case CheckEmail:
		ok = strutil.IsEmail(input)
	case CheckURL:
		ok = strutil.IsURL(input)
	case CheckPhone:
		ok = strutil.IsPhoneNumber(input)
	case CheckAlpha:
		ok = strutil.IsAlpha(input, true)
	case CheckEmpty:
		ok = strutil.IsEmpty(strings.TrimSpace(input))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, check)
	}

	if !ok {
		return fmt.Errorf("%w: %q is not a valid %s", ErrValidationFailed, input, check)
	}

	return writeLine(w, "ok")
}

// ExecuteNumberCommand prints the formatted number.
func ExecuteNumberCommand(_ context.Context, params NumberParams, w io.Writer) error {
	operation := strings.ToLower(params.Operation)

	if operation == NumberBytes {
		return formatByteSize(params.Input, w)
	}

	if operation == NumberParity {
		n, err := strconv.ParseInt(strings.TrimSpace(params.Input), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", params.Input, err)
		}

		if numutil.IsEven(n) {
			return writeLine(w, "even")
		}

		return writeLine(w, "odd")
	}

	n, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(params.Input), ",", ""), 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", params.Input, err)
	}

	switch operation {
	case NumberCommas:
		return writeLine(w, numutil.FormatWithCommas(n, params.Decimals > 0))
	case NumberRound:
		return writeLine(w, strconv.FormatFloat(numutil.RoundTo(n, params.Decimals), 'f', -1, 64))
	case NumberPercent:
		return writeLine(w, numutil.ToPercent(n, params.Decimals))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, params.Operation)
	}
}

// formatByteSize prints a plain byte count in SI units, or the byte count of a size string.
func formatByteSize(input string, w io.Writer) error {
	input = strings.TrimSpace(input)

	if n, err := strconv.ParseUint(input, 10, 64); err == nil {
		return writeLine(w, numutil.FormatBytes(n))
	}

	n, err := numutil.ParseBytes(input)
	if err != nil {
		return fmt.Errorf("invalid byte size %q: %w", input, err)
	}

	return writeLine(w, strconv.FormatUint(n, 10))
}
