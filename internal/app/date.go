package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/oshokin/utilkit/internal/datetime"
)

// compactDateLayout is the Go layout of datetime.LayoutCompact.
const compactDateLayout = "20060102"

// inputTimeLayouts are tried in order when a time argument is not a Unix timestamp.
//
//nolint:gochecknoglobals // Immutable lookup table.
var inputTimeLayouts = []string{
	time.RFC3339Nano,
	time.DateTime,
	time.DateOnly,
	compactDateLayout,
}

// DateFormatParams holds the options of the date format command.
type DateFormatParams struct {
	// Input is the date to format. Empty means now.
	Input string
	// Layout is YYYYMMDD, YYMMDD or YYYY-MM-DD.
	Layout string
	// Separator, when set, overrides Layout and joins year, month and day.
	Separator string
}

// DateInfo describes a point in time relative to now.
type DateInfo struct {
	Time          string `json:"time"            yaml:"time"`
	Unix          int64  `json:"unix"            yaml:"unix"`
	Ago           string `json:"ago"             yaml:"ago"`
	IsToday       bool   `json:"is_today"        yaml:"is_today"`
	IsPast24Hours bool   `json:"is_past_24_hours" yaml:"is_past_24_hours"`
	IsWeekend     bool   `json:"is_weekend"      yaml:"is_weekend"`
}

// ExecuteDateAgoCommand prints how long ago the input time was.
func ExecuteDateAgoCommand(_ context.Context, calendar *datetime.Calendar, input string, w io.Writer) error {
	t, err := parseTime(calendar, input)
	if err != nil {
		return err
	}

	return writeLine(w, calendar.TimeAgo(t))
}

// ExecuteDateFormatCommand prints the input date in a compact layout.
func ExecuteDateFormatCommand(_ context.Context, calendar *datetime.Calendar, params DateFormatParams, w io.Writer) error {
	t, err := parseTime(calendar, params.Input)
	if err != nil {
		return err
	}

	if params.Separator != "" {
		return writeLine(w, datetime.FormatDate(t, params.Separator))
	}

	return writeLine(w, datetime.FormatLayout(t, datetime.Layout(strings.ToUpper(params.Layout))))
}

// ExecuteDateInfoCommand prints a DateInfo for the input time.
func ExecuteDateInfoCommand(
	_ context.Context,
	calendar *datetime.Calendar,
	input string,
	format OutputFormat,
	w io.Writer,
) error {
	t, err := parseTime(calendar, input)
	if err != nil {
		return err
	}

	return writeResult(w, format, DateInfo{
		Time:          t.Format(time.RFC3339),
		Unix:          t.Unix(),
		Ago:           calendar.TimeAgo(t),
		IsToday:       calendar.IsToday(t.Unix()),
		IsPast24Hours: calendar.IsPast24Hours(t.Unix()),
		IsWeekend:     datetime.IsWeekend(t),
	})
}

// ExecuteDateDiffCommand prints the number of days between two dates, rounded up.
func ExecuteDateDiffCommand(_ context.Context, calendar *datetime.Calendar, from, to string, w io.Writer) error {
	start, err := parseTime(calendar, from)
	if err != nil {
		return err
	}

	end, err := parseTime(calendar, to)
	if err != nil {
		return err
	}

	return writeLine(w, strconv.Itoa(datetime.DaysBetween(start, end)))
}

// parseTime accepts "now", a Unix timestamp in seconds or one of inputTimeLayouts.
// An eight-digit number is read as YYYYMMDD. Layouts without a zone are read in local time.
func parseTime(calendar *datetime.Calendar, input string) (time.Time, error) {
	input = strings.TrimSpace(input)

	if input == "" || strings.EqualFold(input, "now") {
		return calendar.Now(), nil
	}

	if timestamp, err := strconv.ParseInt(input, 10, 64); err == nil && len(input) != len(compactDateLayout) {
		return datetime.FromUnix(timestamp), nil
	}

	for _, layout := range inputTimeLayouts {
		if t, err := time.ParseInLocation(layout, input, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableTime, input)
}
