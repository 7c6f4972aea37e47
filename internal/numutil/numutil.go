package numutil

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/constraints"
)

const (
	// DefaultDecimals is the precision used by callers that have no preference.
	DefaultDecimals = 2

	// localeFractionDigits is the maximum number of fraction digits kept by FormatWithCommas
	// when decimals are not forced.
	localeFractionDigits = 3

	// fixedDecimalsFormat is the humanize.FormatFloat pattern with two forced decimals.
	fixedDecimalsFormat = "#,###.##"

	percentFactor = 100
)

// IsEven reports whether n is divisible by two.
func IsEven[T constraints.Integer](n T) bool {
	return n%2 == 0
}

// IsOdd reports whether n is not divisible by two.
func IsOdd[T constraints.Integer](n T) bool {
	return n%2 != 0
}

// RoundTo rounds v half away from zero to the given number of decimals.
// Negative decimals round to tens, hundreds and so on.
func RoundTo(v float64, decimals int) float64 {
	factor := math.Pow10(decimals)

	return math.Round(v*factor) / factor
}

// ToPercent renders a ratio as a percentage, e.g. ToPercent(0.1234, 1) gives "12.3%".
func ToPercent(v float64, decimals int) string {
	return strconv.FormatFloat(v*percentFactor, 'f', max(decimals, 0), 64) + "%"
}

// FormatWithCommas groups thousands with commas.
// With withDecimals it always prints two decimals ("1,234.50");
// otherwise it keeps up to three significant decimals ("1,234.568", "1,234").
func FormatWithCommas(v float64, withDecimals bool) string {
	if withDecimals {
		return humanize.FormatFloat(fixedDecimalsFormat, v)
	}

	return humanize.Commaf(RoundTo(v, localeFractionDigits))
}

// FormatBytes renders a byte count in SI units, e.g. "82 MB".
func FormatBytes(n uint64) string {
	return humanize.Bytes(n)
}

// ParseBytes parses a human byte size such as "1MB" or "512 KiB".
func ParseBytes(s string) (uint64, error) {
	return humanize.ParseBytes(s)
}
