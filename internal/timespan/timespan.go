// Package timespan splits a date range into the breakpoint sequence that
// bounds each metric data query.
package timespan

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/uzimihsr/cwexport/internal/apperr"
)

const dateOnly = "2006-01-02"

// ParseDate normalizes a raw date string to UTC at second precision.
// Accepts full ISO-8601 timestamps and bare calendar dates; bare dates
// become midnight UTC.
func ParseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC().Truncate(time.Second), nil
	}
	if t, err := time.Parse(dateOnly, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (expected ISO-8601 timestamp or YYYY-MM-DD)", raw)
}

// Interval is a duration relative to a point in time. Calendar units go
// through AddDate so month and year arithmetic follows civil-calendar
// overflow rules; clock units are fixed durations.
type Interval struct {
	Years  int
	Months int
	Days   int
	Clock  time.Duration
}

// Add applies the interval to t.
func (iv Interval) Add(t time.Time) time.Time {
	return t.AddDate(iv.Years, iv.Months, iv.Days).Add(iv.Clock)
}

// ParseInterval parses an expression like "1 month", "10 days" or
// "3 hours". The quantity must be positive: a zero or negative interval
// would never advance the breakpoint sequence.
func ParseInterval(expr string) (Interval, error) {
	fields := strings.Fields(strings.ToLower(expr))
	if len(fields) != 2 {
		return Interval{}, fmt.Errorf("interval %q must be of the form \"<n> <unit>\"", expr)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return Interval{}, fmt.Errorf("interval %q has a non-numeric quantity", expr)
	}
	if n <= 0 {
		return Interval{}, fmt.Errorf("interval %q must be positive", expr)
	}
	switch strings.TrimSuffix(fields[1], "s") {
	case "year":
		return Interval{Years: n}, nil
	case "month":
		return Interval{Months: n}, nil
	case "week":
		return Interval{Days: 7 * n}, nil
	case "day":
		return Interval{Days: n}, nil
	case "hour":
		return Interval{Clock: time.Duration(n) * time.Hour}, nil
	case "minute":
		return Interval{Clock: time.Duration(n) * time.Minute}, nil
	case "second":
		return Interval{Clock: time.Duration(n) * time.Second}, nil
	default:
		return Interval{}, fmt.Errorf("interval %q has an unsupported unit", expr)
	}
}

// Split normalizes the raw dates and returns the ordered breakpoint
// sequence covering [start, end]: the start, every whole interval step
// strictly before the end, and the end itself exactly once (even when the
// last step falls short of a full interval).
func Split(startRaw, endRaw, interval string) ([]time.Time, error) {
	start, err := ParseDate(startRaw)
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidStartDate, startRaw, err)
	}
	end, err := ParseDate(endRaw)
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidEndDate, endRaw, err)
	}
	iv, err := ParseInterval(interval)
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidInterval, interval, err)
	}
	// Validate by application: the expression must advance the start date
	// or the loop below would never terminate.
	if !iv.Add(start).After(start) {
		return nil, apperr.New(apperr.InvalidInterval, fmt.Sprintf("interval %q does not advance %s", interval, start.Format(time.RFC3339)))
	}
	if !start.Before(end) {
		return nil, apperr.New(apperr.StartAfterEnd, fmt.Sprintf("start date %q is not before end date %q", startRaw, endRaw))
	}

	points := []time.Time{start}
	for cur := iv.Add(start); cur.Before(end); cur = iv.Add(cur) {
		points = append(points, cur)
	}
	return append(points, end), nil
}
