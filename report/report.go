// Package report keeps the per-day history of focused time and completed
// tasks together with the streak and focus high-water marks
package report

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/ayoisaiah/pomo/internal/timeutil"
)

// DayReport aggregates one calendar day.
type DayReport struct {
	Date      timeutil.Date
	Focused   time.Duration
	Completed int
}

type dayJSON struct {
	Date      timeutil.Date `json:"date"`
	Focused   int64         `json:"focused"`
	Completed int           `json:"completed"`
}

// Ledger is the report history, unique by date and sorted ascending, plus
// the longest streak and the longest single-day focus ever recorded.
type Ledger struct {
	history        []DayReport
	longestStreak  int
	longestFocused time.Duration
}

type ledgerJSON struct {
	History        []dayJSON `json:"history"`
	LongestStreak  int       `json:"longest_streak"`
	LongestFocused int64     `json:"longest_focused"`
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Generate merges a finished day into the history. A new date is inserted
// and the streak ending at today is compared with the longest streak. In
// both cases the longest focus mark is raised to today's total if needed.
func (l *Ledger) Generate(today timeutil.Date, focused time.Duration, completed int) {
	var total time.Duration

	if i := l.index(today); i >= 0 {
		d := &l.history[i]
		d.Focused = timeutil.SaturatingAdd(d.Focused, focused)
		d.Completed += completed
		total = d.Focused
	} else {
		l.history = append(l.history, DayReport{
			Date:      today,
			Focused:   focused,
			Completed: completed,
		})
		l.sort()

		if streak := l.CurrentStreak(today); streak > l.longestStreak {
			l.longestStreak = streak
		}

		total = focused
	}

	if total > l.longestFocused {
		l.longestFocused = total
	}
}

// Clear empties the history and zeroes both marks.
func (l *Ledger) Clear() {
	l.history = nil
	l.longestStreak = 0
	l.longestFocused = 0
}

// ImportReplace replaces the ledger with other. The imported marks are
// kept as given.
func (l *Ledger) ImportReplace(other *Ledger) {
	l.history = slices.Clone(other.history)
	l.longestStreak = other.longestStreak
	l.longestFocused = other.longestFocused
}

// CurrentStreak counts the consecutive days with a report that end at
// today, walking back from the most recent entry. An entry dated after
// today ends the walk at once.
func (l *Ledger) CurrentStreak(today timeutil.Date) int {
	var streak int

	expected := today

	for i := len(l.history) - 1; i >= 0; i-- {
		if l.history[i].Date != expected {
			break
		}

		streak++
		expected = expected.AddDays(-1)
	}

	return streak
}

// History returns a copy of the history in date order.
func (l *Ledger) History() []DayReport {
	return slices.Clone(l.history)
}

// Day returns the report for date.
func (l *Ledger) Day(date timeutil.Date) (DayReport, bool) {
	i := l.index(date)
	if i < 0 {
		return DayReport{}, false
	}

	return l.history[i], true
}

// FocusedOn returns the focused time recorded for date.
func (l *Ledger) FocusedOn(date timeutil.Date) time.Duration {
	d, _ := l.Day(date)

	return d.Focused
}

// Between returns the reports dated within [start, end].
func (l *Ledger) Between(start, end timeutil.Date) []DayReport {
	var out []DayReport

	for _, d := range l.history {
		if d.Date.Before(start) || d.Date.After(end) {
			continue
		}

		out = append(out, d)
	}

	return out
}

func (l *Ledger) LongestStreak() int {
	return l.longestStreak
}

func (l *Ledger) LongestFocused() time.Duration {
	return l.longestFocused
}

// Empty reports whether no day has been recorded.
func (l *Ledger) Empty() bool {
	return len(l.history) == 0
}

func (l *Ledger) index(date timeutil.Date) int {
	i, found := slices.BinarySearchFunc(
		l.history,
		date,
		func(d DayReport, t timeutil.Date) int {
			return d.Date.Compare(t)
		},
	)
	if !found {
		return -1
	}

	return i
}

func (l *Ledger) sort() {
	slices.SortStableFunc(l.history, func(a, b DayReport) int {
		return a.Date.Compare(b.Date)
	})
}

// MarshalJSON encodes the ledger with durations in whole seconds.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	doc := ledgerJSON{
		History:        make([]dayJSON, 0, len(l.history)),
		LongestStreak:  l.longestStreak,
		LongestFocused: timeutil.ToSeconds(l.longestFocused),
	}

	for _, d := range l.history {
		doc.History = append(doc.History, dayJSON{
			Date:      d.Date,
			Focused:   timeutil.ToSeconds(d.Focused),
			Completed: d.Completed,
		})
	}

	return json.Marshal(doc)
}

// UnmarshalJSON decodes a ledger document. The history is sorted by date
// and repeated dates are merged.
func (l *Ledger) UnmarshalJSON(b []byte) error {
	var doc ledgerJSON

	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}

	out := Ledger{
		longestStreak:  doc.LongestStreak,
		longestFocused: timeutil.FromSeconds(doc.LongestFocused),
	}

	for _, d := range doc.History {
		out.history = append(out.history, DayReport{
			Date:      d.Date,
			Focused:   timeutil.FromSeconds(d.Focused),
			Completed: d.Completed,
		})
	}

	out.sort()
	out.history = mergeSorted(out.history)

	*l = out

	return nil
}

func mergeSorted(history []DayReport) []DayReport {
	if len(history) < 2 {
		return history
	}

	merged := history[:1]

	for _, d := range history[1:] {
		last := &merged[len(merged)-1]
		if last.Date == d.Date {
			last.Focused = timeutil.SaturatingAdd(last.Focused, d.Focused)
			last.Completed += d.Completed

			continue
		}

		merged = append(merged, d)
	}

	return merged
}
