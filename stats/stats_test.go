package stats

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/report"
	"github.com/ayoisaiah/pomo/store"
	"github.com/ayoisaiah/pomo/timer"
)

var now = time.Date(2026, time.May, 4, 15, 30, 0, 0, time.UTC)

func TestParseRange(t *testing.T) {
	endOfDay := time.Date(2026, time.May, 4, 23, 59, 59, 0, time.UTC)

	cases := []struct {
		name   string
		period string
		since  string
		want   Range
	}{
		{
			name: "all time by default",
			want: Range{End: endOfDay},
		},
		{
			name:   "today",
			period: "today",
			want: Range{
				Start: time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC),
				End:   endOfDay,
			},
		},
		{
			name:   "yesterday",
			period: "yesterday",
			want: Range{
				Start: time.Date(2026, time.May, 3, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2026, time.May, 3, 23, 59, 59, 0, time.UTC),
			},
		},
		{
			name:   "seven days",
			period: "7days",
			want: Range{
				Start: time.Date(2026, time.April, 28, 0, 0, 0, 0, time.UTC),
				End:   endOfDay,
			},
		},
		{
			name:   "period wins over since",
			period: "today",
			since:  "2026-01-01",
			want: Range{
				Start: time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC),
				End:   endOfDay,
			},
		},
		{
			name:  "absolute since",
			since: "2026-04-01",
			want: Range{
				Start: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
				End:   endOfDay,
			},
		},
		{
			name:  "relative since",
			since: "3 days ago",
			want: Range{
				Start: time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
				End:   endOfDay,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRange(tc.period, tc.since, now)
			require.NoError(t, err)

			assert.True(t, tc.want.Start.Equal(got.Start), "start: %v", got.Start)
			assert.True(t, tc.want.End.Equal(got.End), "end: %v", got.End)
		})
	}
}

func TestParseRangeErrors(t *testing.T) {
	_, err := ParseRange("fortnight", "", now)
	require.ErrorIs(t, err, errInvalidPeriod)

	_, err = ParseRange("", "2027-01-01", now)
	require.ErrorIs(t, err, errInvalidDateRange)

	_, err = ParseRange("", "xyzzy", now)
	require.ErrorIs(t, err, errInvalidSince)
}

func TestRangeDates(t *testing.T) {
	start, end := Range{End: now}.Dates()

	assert.True(t, start.IsZero())
	assert.Equal(t, timeutil.DateOf(now), end)
}

func segment(start time.Time, elapsed time.Duration, taskID uint64) store.Segment {
	return store.Segment{
		Start:   start,
		End:     start.Add(elapsed),
		Session: timer.Work,
		Elapsed: elapsed,
		TaskID:  taskID,
	}
}

func TestCompute(t *testing.T) {
	monday := time.Date(2026, time.May, 4, 9, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	segs := []store.Segment{
		segment(monday, 25*time.Minute, 1),
		segment(monday.Add(time.Hour), 30*time.Minute, 2),
		segment(tuesday, 20*time.Minute, 1),
		segment(tuesday.Add(3*time.Hour), 5*time.Minute, 0),
	}

	got := Compute(segs)

	assert.Equal(t, 80*time.Minute, got.Focused)
	assert.Equal(t, 4, got.Segments)
	assert.Equal(t, 2, got.Tasks)
	assert.Equal(t, 2, got.Days)
	assert.Equal(t, 40*time.Minute, got.AveragePerDay())
	assert.Equal(t, 55*time.Minute, got.Weekday[time.Monday])
	assert.Equal(t, 25*time.Minute, got.Weekday[time.Tuesday])
	assert.Equal(t, 45*time.Minute, got.Hourly[9])
	assert.Equal(t, 30*time.Minute, got.Hourly[10])
	assert.Equal(t, 5*time.Minute, got.Hourly[12])

	assert.Zero(t, Compute(nil).AveragePerDay())
}

func TestFilterSegments(t *testing.T) {
	good := segment(now, time.Minute, 1)
	backwards := store.Segment{Start: now, End: now.Add(-time.Minute), Elapsed: time.Minute}
	empty := segment(now, 0, 1)

	got := filterSegments([]store.Segment{good, backwards, empty})

	if diff := cmp.Diff([]store.Segment{good}, got); diff != "" {
		t.Errorf("filterSegments() mismatch (-want +got):\n%s", diff)
	}
}

func TestTaskName(t *testing.T) {
	names := map[uint64]string{1: "write docs"}

	assert.Equal(t, "write docs", taskName(1, names))
	assert.Equal(t, "#7", taskName(7, names))
	assert.Equal(t, "-", taskName(0, names))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "1 hour 30 minutes", Humanize(90*time.Minute))
	assert.Equal(t, "26 hours 30 seconds", Humanize(26*time.Hour+30*time.Second))
}

func ledger() *report.Ledger {
	l := report.New()
	today := timeutil.DateOf(now)

	l.Generate(today.AddDays(-10), 2*time.Hour, 3)
	l.Generate(today.AddDays(-1), time.Hour, 2)
	l.Generate(today, 30*time.Minute, 1)

	return l
}

func TestShowReportJSON(t *testing.T) {
	r, err := ParseRange("7days", "", now)
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, ShowReport(&buf, ledger(), timeutil.DateOf(now), r, true))

	var got reportJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	want := reportJSON{
		History: []dayJSON{
			{Date: "2026-05-03", Focused: 3600, Completed: 2},
			{Date: "2026-05-04", Focused: 1800, Completed: 1},
		},
		CurrentStreak:  2,
		LongestStreak:  2,
		FocusedToday:   1800,
		LongestFocused: 7200,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ShowReport() mismatch (-want +got):\n%s", diff)
	}
}

func TestShowReportText(t *testing.T) {
	var buf bytes.Buffer

	err := ShowReport(&buf, ledger(), timeutil.DateOf(now), Range{End: now}, false)
	require.NoError(t, err)

	out := buf.String()

	assert.Contains(t, out, "Reporting period: ")
	assert.Contains(t, out, "April 24, 2026")
	assert.Contains(t, out, "Current streak")
	assert.Contains(t, out, "2026-04-24")
	assert.Contains(t, out, "3 hours 30 minutes")
}

func TestShowReportEmpty(t *testing.T) {
	var buf bytes.Buffer

	err := ShowReport(&buf, report.New(), timeutil.DateOf(now), Range{End: now}, false)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), noReportsMsg)
}

func TestShowSessions(t *testing.T) {
	segs := []store.Segment{
		segment(now.Add(-2*time.Hour), 25*time.Minute, 1),
		segment(now.Add(-time.Hour), 25*time.Minute, 9),
	}
	names := map[uint64]string{1: "write docs"}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, ShowSessions(&buf, segs, names, Range{End: now}, true))

		var got []segmentJSON
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

		require.Len(t, got, 2)
		assert.Equal(t, "write docs", got[0].Task)
		assert.Equal(t, int64(1500), got[0].Elapsed)
		assert.Empty(t, got[1].Task)
		assert.Equal(t, uint64(9), got[1].TaskID)
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, ShowSessions(&buf, segs, names, Range{End: now}, false))

		out := buf.String()
		assert.Contains(t, out, "write docs")
		assert.Contains(t, out, "#9")
		assert.Contains(t, out, "50 minutes")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, ShowSessions(&buf, nil, names, Range{End: now}, false))
		assert.Contains(t, buf.String(), noSessionsMsg)
	})
}
