package report

import (
	"time"

	"github.com/ayoisaiah/pomo/internal/timeutil"
)

// Summary is the headline view of the ledger as of a given day.
type Summary struct {
	CurrentStreak  int
	LongestStreak  int
	FocusedToday   time.Duration
	LongestFocused time.Duration
	Days           int
}

// Summarize derives the summary for today.
func (l *Ledger) Summarize(today timeutil.Date) Summary {
	return Summary{
		CurrentStreak:  l.CurrentStreak(today),
		LongestStreak:  l.longestStreak,
		FocusedToday:   l.FocusedOn(today),
		LongestFocused: l.longestFocused,
		Days:           len(l.history),
	}
}
