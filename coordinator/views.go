package coordinator

import (
	"time"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/report"
	"github.com/ayoisaiah/pomo/store"
	"github.com/ayoisaiah/pomo/task"
	"github.com/ayoisaiah/pomo/timer"
)

// TimerView is a read-only copy of the engine state.
type TimerView struct {
	State          timer.State
	Session        timer.Session
	Remaining      time.Duration
	Overtime       time.Duration
	FullLength     time.Duration
	Elapsed        time.Duration
	WorkCount      int
	LongBreakAfter int
	Ticking        bool
}

// Timer returns the current engine state.
func (c *Coordinator) Timer() TimerView {
	return TimerView{
		State:          c.engine.State(),
		Session:        c.engine.Session(),
		Remaining:      c.engine.Remaining(),
		Overtime:       c.engine.Overtime(),
		FullLength:     c.engine.FullLength(),
		Elapsed:        c.engine.ElapsedTime(),
		WorkCount:      c.engine.WorkCount(),
		LongBreakAfter: c.engine.Durations().LongBreakAfter,
		Ticking:        c.engine.Ticking(),
	}
}

// Ticking reports whether the timer needs periodic ticks.
func (c *Coordinator) Ticking() bool {
	return c.engine.Ticking()
}

func (c *Coordinator) Settings() config.Settings {
	return c.settings
}

func (c *Coordinator) Tasks() []task.Task {
	return c.tasks.Tasks()
}

func (c *Coordinator) Active() (task.Task, bool) {
	return c.tasks.ActiveTask()
}

func (c *Coordinator) Editing() (task.Editing, bool) {
	return c.tasks.Editing()
}

func (c *Coordinator) Input() string {
	return c.tasks.Input()
}

// Report summarises the ledger as of today.
func (c *Coordinator) Report() report.Summary {
	return c.ledger.Summarize(c.Today())
}

// History returns the report history in date order.
func (c *Coordinator) History() []report.DayReport {
	return c.ledger.History()
}

// Status describes the timer for the status command.
func (c *Coordinator) Status() store.Status {
	v := c.Timer()

	s := store.Status{
		Session:        v.Session,
		Remaining:      v.Remaining,
		Overtime:       v.Overtime,
		WorkCount:      v.WorkCount,
		LongBreakAfter: v.LongBreakAfter,
	}

	switch st := v.State.(type) {
	case timer.Running:
		s.State = "running"
		s.Deadline = st.Deadline
	case timer.Overtime:
		s.State = "overtime"
	case timer.Idle:
		s.State = "paused"
	}

	if t, ok := c.tasks.ActiveTask(); ok {
		s.Task = t.Desc
	}

	return s
}
