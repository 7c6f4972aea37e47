package datetime

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// Layout names a calendar date layout accepted by FormatLayout and FormatNow.
type Layout string

const (
	// LayoutCompact renders dates as YYYYMMDD.
	LayoutCompact Layout = "YYYYMMDD"
	// LayoutShort renders dates as YYMMDD.
	LayoutShort Layout = "YYMMDD"
	// LayoutISO renders dates as YYYY-MM-DD.
	LayoutISO Layout = "YYYY-MM-DD"

	// DefaultSeparator separates date parts in FormatDate.
	DefaultSeparator = "-"

	// Day is a 24-hour duration.
	Day = 24 * time.Hour
	// Month is the 30-day month used by TimeAgo.
	Month = 30 * Day
	// Year is the 12-month year used by TimeAgo.
	Year = 12 * Month
)

// relativeMagnitudes drive humanize.CustomRelTime: each entry applies to differences below D.
//
//nolint:gochecknoglobals // Immutable lookup table.
var relativeMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "%d sec %s", DivBy: time.Second},
	{D: time.Hour, Format: "%d min %s", DivBy: time.Minute},
	{D: Day, Format: "%d hr %s", DivBy: time.Hour},
	{D: 2 * Day, Format: "1 day %s", DivBy: 1},
	{D: Month, Format: "%d days %s", DivBy: Day},
	{D: 2 * Month, Format: "1 month %s", DivBy: 1},
	{D: Year, Format: "%d months %s", DivBy: Month},
	{D: 2 * Year, Format: "1 year %s", DivBy: 1},
	{D: math.MaxInt64, Format: "%d years %s", DivBy: Year},
}

// Calendar answers time-relative questions against its Clock.
type Calendar struct {
	clock Clock
}

// defaultCalendar backs the package-level helpers.
//
//nolint:gochecknoglobals // Stateless, wraps the system clock.
var defaultCalendar = NewCalendar(SystemClock{})

// NewCalendar creates a Calendar reading the time from clock.
// A nil clock falls back to SystemClock.
func NewCalendar(clock Clock) *Calendar {
	if clock == nil {
		clock = SystemClock{}
	}

	return &Calendar{clock: clock}
}

// Now returns the current time of the calendar's clock.
func (c *Calendar) Now() time.Time {
	return c.clock.Now()
}

// FromUnix converts a Unix timestamp in seconds to local time.
func FromUnix(timestamp int64) time.Time {
	return time.Unix(timestamp, 0)
}

// IsPast24Hours reports whether more than 24 hours have passed since timestamp.
func (c *Calendar) IsPast24Hours(timestamp int64) bool {
	return c.clock.Now().After(FromUnix(timestamp).Add(Day))
}

// IsToday reports whether timestamp falls within the current local day.
func (c *Calendar) IsToday(timestamp int64) bool {
	now := c.clock.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfNextDay := startOfDay.AddDate(0, 0, 1)

	return timestamp >= startOfDay.Unix() && timestamp < startOfNextDay.Unix()
}

// TimeAgo describes how long ago t was, e.g. "5 min ago" or "2 days ago".
// Times in the future read "... from now".
func (c *Calendar) TimeAgo(t time.Time) string {
	return humanize.CustomRelTime(t, c.clock.Now(), "ago", "from now", relativeMagnitudes)
}

// FormatNow formats the current date with layout.
func (c *Calendar) FormatNow(layout Layout) string {
	return FormatLayout(c.clock.Now(), layout)
}

// IsPast24Hours reports whether more than 24 hours have passed since timestamp.
func IsPast24Hours(timestamp int64) bool {
	return defaultCalendar.IsPast24Hours(timestamp)
}

// IsToday reports whether timestamp falls within the current local day.
func IsToday(timestamp int64) bool {
	return defaultCalendar.IsToday(timestamp)
}

// TimeAgo describes how long ago t was relative to the system clock.
func TimeAgo(t time.Time) string {
	return defaultCalendar.TimeAgo(t)
}

// FormatNow formats today's date with layout.
func FormatNow(layout Layout) string {
	return defaultCalendar.FormatNow(layout)
}

// FormatDate renders t as YYYY<sep>MM<sep>DD, e.g. FormatDate(t, DefaultSeparator) gives "2024-03-09".
func FormatDate(t time.Time, separator string) string {
	return fmt.Sprintf("%04d%s%02d%s%02d", t.Year(), separator, int(t.Month()), separator, t.Day())
}

// FormatLayout renders t with one of the named layouts.
// Unknown layouts fall back to LayoutCompact.
func FormatLayout(t time.Time, layout Layout) string {
	switch layout {
	case LayoutShort:
		return fmt.Sprintf("%02d%02d%02d", t.Year()%100, int(t.Month()), t.Day())
	case LayoutISO:
		return FormatDate(t, DefaultSeparator)
	default:
		return FormatDate(t, "")
	}
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	day := t.Weekday()

	return day == time.Saturday || day == time.Sunday
}

// DaysBetween returns the absolute difference between a and b in days, rounded up.
func DaysBetween(a, b time.Time) int {
	diff := b.Sub(a)
	if diff < 0 {
		diff = -diff
	}

	return int(math.Ceil(float64(diff) / float64(Day)))
}
