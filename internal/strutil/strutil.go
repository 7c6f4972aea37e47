package strutil

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/oshokin/utilkit/internal/value"
)

// Ellipsis is appended by Truncate to shortened strings.
const Ellipsis = "..."

var (
	// wordDelimitersPattern matches runs of underscores, hyphens and spaces.
	//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
	wordDelimitersPattern = regexp.MustCompile(`[_\- ]+`)

	// lettersPattern and lettersAndSpacesPattern back IsAlpha.
	//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
	lettersPattern          = regexp.MustCompile(`^[a-zA-Z]+$`)
	lettersAndSpacesPattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)

	// slugUnsafePattern matches runs of characters not allowed in a slug.
	//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
	slugUnsafePattern = regexp.MustCompile(`[^a-z0-9]+`)

	// emailPattern requires a local part, a domain and a top-level domain without whitespace.
	//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// phonePattern matches E.164 numbers with an optional leading plus.
	//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// Capitalize upper-cases the first letter of s and leaves the rest untouched.
func Capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToUpper(first)) + s[size:]
}

// Words splits s on underscores, hyphens and spaces, dropping empty words.
func Words(s string) []string {
	return strings.Fields(wordDelimitersPattern.ReplaceAllString(s, " "))
}

// TitleCase turns "hello_big-world" into "Hello Big World".
func TitleCase(s string) string {
	return strings.Join(titleWords(s), " ")
}

// PascalCase turns "hello_big-world" into "HelloBigWorld".
func PascalCase(s string) string {
	return strings.Join(titleWords(s), "")
}

func titleWords(s string) []string {
	// Casers keep state and are not safe for concurrent use.
	caser := cases.Title(language.Und)

	words := Words(s)
	for i, word := range words {
		words[i] = caser.String(word)
	}

	return words
}

// Truncate shortens s to at most length runes and appends Ellipsis when anything was cut.
func Truncate(s string, length int) string {
	length = max(length, 0)

	if utf8.RuneCountInString(s) <= length {
		return s
	}

	return string([]rune(s)[:length]) + Ellipsis
}

// IsAlpha reports whether s is non-empty and holds only ASCII letters,
// optionally mixed with whitespace.
func IsAlpha(s string, allowSpace bool) bool {
	if allowSpace {
		return lettersAndSpacesPattern.MatchString(s)
	}

	return lettersPattern.MatchString(s)
}

// Slugify lower-cases s and joins its ASCII alphanumeric runs with hyphens.
func Slugify(s string) string {
	return strings.Trim(slugUnsafePattern.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsURL reports whether s is an absolute URL with a scheme and a host.
func IsURL(s string) bool {
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}

	return parsed.Scheme != "" && parsed.Host != ""
}

// IsPhoneNumber reports whether s is an E.164 phone number.
func IsPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

// IsEmpty reports whether x is nil or encodes to an empty string, list or object.
// Numbers and booleans are never empty. Values without a JSON encoding are not empty.
func IsEmpty(x any) bool {
	v, err := value.Of(x)
	if err != nil {
		return false
	}

	return v.IsEmpty()
}
