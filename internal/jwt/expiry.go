package jwt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/oshokin/utilkit/internal/datetime"
)

// longUnitPattern matches amounts with units time.ParseDuration does not know.
//
//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
var longUnitPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(d|days?|w|weeks?|y|years?)$`)

// longUnits maps the first letter of a long unit to its duration.
//
//nolint:gochecknoglobals // Immutable lookup table.
var longUnits = map[byte]time.Duration{
	'd': datetime.Day,
	'w': 7 * datetime.Day,
	'y': 365 * datetime.Day,
}

// ParseExpiry parses a token lifetime.
// It accepts Go durations ("15m", "1h30m"), day, week and year amounts ("7d", "2 weeks", "1y")
// and bare integers, which are seconds ("3600").
func ParseExpiry(s string) (time.Duration, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidExpiry)
	}

	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("%w: negative %q", ErrInvalidExpiry, s)
	}

	if seconds, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	match := longUnitPattern.FindStringSubmatch(s)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidExpiry, s)
	}

	amount, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidExpiry, s, err)
	}

	return time.Duration(amount * float64(longUnits[match[2][0]])), nil
}
