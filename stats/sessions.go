package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/store"
)

const (
	noSessionsMsg   = "No sessions found for the specified time range"
	sessionTimeForm = "Jan 02, 2006 03:04 PM"
	noTask          = "-"
)

// Totals aggregates the segment log over a reporting range. Each segment
// counts toward the hour and weekday it started in.
type Totals struct {
	Focused  time.Duration
	Segments int
	Tasks    int
	Days     int
	Weekday  [7]time.Duration
	Hourly   [24]time.Duration
}

// Compute aggregates segs.
func Compute(segs []store.Segment) Totals {
	var t Totals

	tasks := make(map[uint64]bool)
	days := make(map[timeutil.Date]bool)

	for _, s := range segs {
		t.Focused = timeutil.SaturatingAdd(t.Focused, s.Elapsed)
		t.Segments++
		t.Weekday[s.Start.Weekday()] += s.Elapsed
		t.Hourly[s.Start.Hour()] += s.Elapsed

		if s.TaskID != 0 {
			tasks[s.TaskID] = true
		}

		days[timeutil.DateOf(s.Start)] = true
	}

	t.Tasks = len(tasks)
	t.Days = len(days)

	return t
}

// AveragePerDay is the focused time per day that has at least one segment.
func (t Totals) AveragePerDay() time.Duration {
	if t.Days == 0 {
		return 0
	}

	return t.Focused / time.Duration(t.Days)
}

// filterSegments drops segments with no elapsed time or an end before
// their start.
func filterSegments(segs []store.Segment) []store.Segment {
	filtered := make([]store.Segment, 0, len(segs))

	for _, s := range segs {
		if s.Elapsed <= 0 || s.End.Before(s.Start) {
			continue
		}

		filtered = append(filtered, s)
	}

	return filtered
}

type segmentJSON struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Task    string    `json:"task,omitempty"`
	Elapsed int64     `json:"elapsed"`
	TaskID  uint64    `json:"task_id,omitempty"`
}

// ShowSessions prints the segments logged within r. names maps task ids to
// their descriptions; tasks that no longer exist are shown by id.
func ShowSessions(
	w io.Writer,
	segs []store.Segment,
	names map[uint64]string,
	r Range,
	asJSON bool,
) error {
	segs = filterSegments(segs)

	if asJSON {
		out := make([]segmentJSON, 0, len(segs))

		for _, s := range segs {
			out = append(out, segmentJSON{
				Start:   s.Start,
				End:     s.End,
				Task:    names[s.TaskID],
				Elapsed: timeutil.ToSeconds(s.Elapsed),
				TaskID:  s.TaskID,
			})
		}

		return printJSON(w, out)
	}

	if len(segs) == 0 {
		info(w, noSessionsMsg)
		return nil
	}

	start := r.Start
	if r.AllTime() {
		start = timeutil.RoundToStart(segs[0].Start)
	}

	totals := Compute(segs)

	var b strings.Builder

	b.WriteString(periodHeader(start, r.End))
	b.WriteString(section("Summary"))
	b.WriteString(fmt.Sprintln("Time focused:", ui.Green(Humanize(totals.Focused))))
	b.WriteString(fmt.Sprintln("Work segments:", ui.Green(totals.Segments)))
	b.WriteString(fmt.Sprintln("Tasks worked on:", ui.Green(totals.Tasks)))
	b.WriteString(fmt.Sprintln("Average per day:", ui.Green(Humanize(totals.AveragePerDay()))))
	b.WriteString(barChart("Weekly breakdown", weekdayBars(totals)))
	b.WriteString(barChart("Hourly breakdown", hourlyBars(totals)))

	fmt.Fprintln(w, strings.TrimSpace(b.String()))

	ui.PrintTable(sessionsTable(segs, names), w)

	return nil
}

func weekdayBars(t Totals) []bar {
	bars := make([]bar, 0, len(t.Weekday))

	for i, v := range t.Weekday {
		bars = append(bars, bar{label: time.Weekday(i).String(), value: v})
	}

	return bars
}

func hourlyBars(t Totals) []bar {
	bars := make([]bar, 0, len(t.Hourly))

	for i, v := range t.Hourly {
		bars = append(bars, bar{label: fmt.Sprintf("%02d:00", i), value: v})
	}

	return bars
}

func sessionsTable(segs []store.Segment, names map[uint64]string) [][]string {
	data := [][]string{
		{"#", "START", "END", "FOCUSED", "TASK"},
	}

	for i, s := range segs {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			s.Start.Format(sessionTimeForm),
			s.End.Format(sessionTimeForm),
			Humanize(s.Elapsed),
			taskName(s.TaskID, names),
		})
	}

	return data
}

func taskName(id uint64, names map[uint64]string) string {
	if id == 0 {
		return noTask
	}

	if name, ok := names[id]; ok {
		return name
	}

	return "#" + strconv.FormatUint(id, 10)
}
