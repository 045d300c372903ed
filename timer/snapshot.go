package timer

import "time"

// Snapshot is the engine state needed to resume a paused timer in a later
// run of the program.
type Snapshot struct {
	SavedAt   time.Time     `json:"saved_at"`
	Session   Session       `json:"session"`
	Remaining time.Duration `json:"remaining"`
	LastFull  time.Duration `json:"last_full"`
	Overtime  time.Duration `json:"overtime"`
	WorkCount int           `json:"work_count"`
}

// Snapshot captures the engine as if it were paused at now.
func (e *Engine) Snapshot(now time.Time) Snapshot {
	remaining := e.remaining
	if s, ok := e.state.(Running); ok {
		remaining = e.clampRemaining(s.Deadline.Sub(now))
	}

	return Snapshot{
		SavedAt:   now,
		Session:   e.session,
		Remaining: remaining,
		LastFull:  e.lastFull,
		Overtime:  e.overtime,
		WorkCount: e.workCount,
	}
}

// Restore loads s into the engine, clamped to the current durations. The
// engine is always idle afterwards.
func (e *Engine) Restore(s Snapshot) {
	if _, ok := sessionKeys[s.Session]; !ok {
		s.Session = Work
	}

	e.session = s.Session
	full := e.durations.Of(e.session)

	e.remaining = min(max(s.Remaining, 0), full)
	e.lastFull = min(max(s.LastFull, e.remaining), full)
	e.overtime = 0

	if e.remaining == 0 {
		e.overtime = max(s.Overtime, 0)
	}

	e.workCount = min(max(s.WorkCount, 0), max(e.durations.LongBreakAfter-1, 0))
	e.state = Idle{}
}
