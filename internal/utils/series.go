package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oshokin/utilkit/internal/datetime"
)

const (
	// DefaultSeriesZeroLength is the default width of the zero-padded series number.
	DefaultSeriesZeroLength = 8

	// seriesSeparator separates the prefix from the number in a series ID.
	seriesSeparator = "-"
)

// SeriesOptions configures GenerateSeriesID.
type SeriesOptions struct {
	// Data holds the existing records.
	Data []map[string]string
	// Column is the record key holding existing series IDs.
	Column string
	// NumberBased returns only the padded number, without the prefix.
	NumberBased bool
	// ZeroLength is the padded width of the number. Zero means DefaultSeriesZeroLength.
	ZeroLength int
	// Prefix is the static part of the prefix.
	Prefix string
	// IncludeDate appends the formatted date to Prefix.
	IncludeDate bool
	// DateLayout formats the date part. Empty means datetime.LayoutCompact.
	DateLayout datetime.Layout
	// Date is the date used for the prefix. The zero value means today.
	Date time.Time
}

// GenerateSeriesID returns the next ID of a series such as "INV20240309-00000042".
// Existing IDs in opts.Data[i][opts.Column] are split at their last hyphen;
// the highest number among those whose prefix matches the current prefix is incremented.
// A series without matching IDs starts at 1.
func GenerateSeriesID(opts SeriesOptions) string {
	prefix := opts.currentPrefix()

	var lastNumber int

	for _, record := range opts.Data {
		existingID := record[opts.Column]
		if existingID == "" {
			continue
		}

		separatorIndex := strings.LastIndex(existingID, seriesSeparator)
		if separatorIndex < 0 || existingID[:separatorIndex] != prefix {
			continue
		}

		number, err := strconv.Atoi(existingID[separatorIndex+len(seriesSeparator):])
		if err != nil {
			continue
		}

		lastNumber = max(lastNumber, number)
	}

	zeroLength := opts.ZeroLength
	if zeroLength <= 0 {
		zeroLength = DefaultSeriesZeroLength
	}

	paddedNumber := fmt.Sprintf("%0*d", zeroLength, lastNumber+1)
	if opts.NumberBased {
		return paddedNumber
	}

	return prefix + seriesSeparator + paddedNumber
}

func (opts SeriesOptions) currentPrefix() string {
	if !opts.IncludeDate {
		return opts.Prefix
	}

	date := opts.Date
	if date.IsZero() {
		date = time.Now()
	}

	layout := opts.DateLayout
	if layout == "" {
		layout = datetime.LayoutCompact
	}

	return opts.Prefix + datetime.FormatLayout(date, layout)
}
