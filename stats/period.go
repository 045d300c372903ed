package stats

import (
	"slices"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/pomo/internal/timeutil"
)

// Range is a reporting window. A zero Start means all time.
type Range struct {
	Start time.Time
	End   time.Time
}

// ParseRange resolves the --period and --since flags relative to now. A
// period takes precedence over since. With neither, the range covers all
// time.
func ParseRange(period, since string, now time.Time) (Range, error) {
	period = strings.TrimSpace(period)
	since = strings.TrimSpace(since)

	if period != "" {
		p := timeutil.Period(period)
		if !slices.Contains(timeutil.PeriodCollection, p) {
			return Range{}, errInvalidPeriod.Fmt(periodNames())
		}

		start, end := timeutil.PeriodRange(p, now)

		return Range{Start: start, End: end}, nil
	}

	end := timeutil.RoundToEnd(now)

	if since == "" {
		return Range{End: end}, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime:     now,
		DefaultTimezone: now.Location(),
	}

	dt, err := dateparser.Parse(cfg, since)
	if err != nil {
		return Range{}, errInvalidSince.Fmt(since).Wrap(err)
	}

	start := timeutil.RoundToStart(dt.Time.In(now.Location()))
	if start.After(now) {
		return Range{}, errInvalidDateRange
	}

	return Range{Start: start, End: end}, nil
}

// Dates returns the calendar dates bounding the range.
func (r Range) Dates() (start, end timeutil.Date) {
	if !r.Start.IsZero() {
		start = timeutil.DateOf(r.Start)
	}

	return start, timeutil.DateOf(r.End)
}

// AllTime reports whether the range has no lower bound.
func (r Range) AllTime() bool {
	return r.Start.IsZero()
}

func periodNames() string {
	names := make([]string, len(timeutil.PeriodCollection))
	for i, p := range timeutil.PeriodCollection {
		names[i] = string(p)
	}

	return strings.Join(names, ", ")
}
