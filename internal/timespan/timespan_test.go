package timespan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/uzimihsr/cwexport/internal/apperr"
)

func mustParseTime(t *testing.T, raw string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, raw)
	require.NoError(t, err)
	return ts.UTC()
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-03-02T09:30:00+09:00")
	require.NoError(t, err)
	require.Equal(t, mustParseTime(t, "2025-03-02T00:30:00Z"), got)
	require.Equal(t, time.UTC, got.Location())

	got, err = ParseDate("2023-01-01")
	require.NoError(t, err)
	require.Equal(t, mustParseTime(t, "2023-01-01T00:00:00Z"), got)

	_, err = ParseDate("next tuesday")
	require.Error(t, err)
	require.Contains(t, err.Error(), "next tuesday")
}

func TestParseInterval(t *testing.T) {
	iv, err := ParseInterval("3 months")
	require.NoError(t, err)
	require.Equal(t, Interval{Months: 3}, iv)

	iv, err = ParseInterval("1 Month")
	require.NoError(t, err)
	require.Equal(t, Interval{Months: 1}, iv)

	iv, err = ParseInterval("2 weeks")
	require.NoError(t, err)
	require.Equal(t, Interval{Days: 14}, iv)

	iv, err = ParseInterval("10 minutes")
	require.NoError(t, err)
	require.Equal(t, Interval{Clock: 10 * time.Minute}, iv)

	for _, expr := range []string{"", "month", "ten days", "1 fortnight", "0 days", "-1 hours"} {
		_, err := ParseInterval(expr)
		require.Error(t, err, "expression %q", expr)
	}
}

func TestIntervalAddCalendarOverflow(t *testing.T) {
	// Jan 31 + 1 month normalizes past February, per time.AddDate.
	got := Interval{Months: 1}.Add(mustParseTime(t, "2025-01-31T00:00:00Z"))
	require.Equal(t, mustParseTime(t, "2025-03-03T00:00:00Z"), got)
}

func TestSplitTenDays(t *testing.T) {
	points, err := Split("2025-03-02T00:00:00Z", "2025-05-09T00:00:00Z", "10 days")
	require.NoError(t, err)

	want := []time.Time{
		mustParseTime(t, "2025-03-02T00:00:00Z"),
		mustParseTime(t, "2025-03-12T00:00:00Z"),
		mustParseTime(t, "2025-03-22T00:00:00Z"),
		mustParseTime(t, "2025-04-01T00:00:00Z"),
		mustParseTime(t, "2025-04-11T00:00:00Z"),
		mustParseTime(t, "2025-04-21T00:00:00Z"),
		mustParseTime(t, "2025-05-01T00:00:00Z"),
		mustParseTime(t, "2025-05-09T00:00:00Z"),
	}
	require.Equal(t, want, points)
}

func TestSplitThreeMonthsBareDates(t *testing.T) {
	points, err := Split("2023-01-01", "2025-01-01", "3 months")
	require.NoError(t, err)

	want := []time.Time{
		mustParseTime(t, "2023-01-01T00:00:00Z"),
		mustParseTime(t, "2023-04-01T00:00:00Z"),
		mustParseTime(t, "2023-07-01T00:00:00Z"),
		mustParseTime(t, "2023-10-01T00:00:00Z"),
		mustParseTime(t, "2024-01-01T00:00:00Z"),
		mustParseTime(t, "2024-04-01T00:00:00Z"),
		mustParseTime(t, "2024-07-01T00:00:00Z"),
		mustParseTime(t, "2024-10-01T00:00:00Z"),
		mustParseTime(t, "2025-01-01T00:00:00Z"),
	}
	require.Equal(t, want, points)
}

func TestSplitExactBoundary(t *testing.T) {
	// A step landing exactly on the end date must not duplicate it.
	points, err := Split("2025-01-01", "2025-01-03", "1 day")
	require.NoError(t, err)
	require.Equal(t, []time.Time{
		mustParseTime(t, "2025-01-01T00:00:00Z"),
		mustParseTime(t, "2025-01-02T00:00:00Z"),
		mustParseTime(t, "2025-01-03T00:00:00Z"),
	}, points)
}

func TestSplitStrictlyIncreasing(t *testing.T) {
	points, err := Split("2024-01-01", "2024-12-31T11:30:00Z", "1 month")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(points), 2)
	for i := 1; i < len(points); i++ {
		require.True(t, points[i-1].Before(points[i]))
	}
	require.Equal(t, mustParseTime(t, "2024-01-01T00:00:00Z"), points[0])
	require.Equal(t, mustParseTime(t, "2024-12-31T11:30:00Z"), points[len(points)-1])
}

func TestSplitErrorKinds(t *testing.T) {
	tests := []struct {
		name                 string
		start, end, interval string
		kind                 apperr.Kind
		contains             string
	}{
		{"bad start", "not-a-date", "2025-01-01", "1 day", apperr.InvalidStartDate, "not-a-date"},
		{"bad end", "2025-01-01", "someday", "1 day", apperr.InvalidEndDate, "someday"},
		{"bad interval", "2025-01-01", "2025-02-01", "every so often", apperr.InvalidInterval, "every so often"},
		{"zero interval", "2025-01-01", "2025-02-01", "0 days", apperr.InvalidInterval, "0 days"},
		{"negative interval", "2025-01-01", "2025-02-01", "-2 hours", apperr.InvalidInterval, "-2 hours"},
		{"start after end", "2025-02-01", "2025-01-01", "1 day", apperr.StartAfterEnd, "2025-02-01"},
		{"start equals end", "2025-01-01", "2025-01-01", "1 day", apperr.StartAfterEnd, "2025-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := Split(tt.start, tt.end, tt.interval)
			require.Nil(t, points)
			require.Error(t, err)
			require.Equal(t, tt.kind, apperr.KindOf(err))
			require.Contains(t, err.Error(), tt.contains)
		})
	}
}
