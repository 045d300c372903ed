// Package timer operates the pomodoro countdown: the work and break
// rotation, overtime accounting and the elapsed time of each segment
package timer

import (
	"math/rand/v2"
	"time"

	"github.com/ayoisaiah/pomo/internal/timeutil"
)

// Notifier is told when a segment's countdown reaches zero. ended is the
// session that ran out and message is a reminder for the next one.
type Notifier interface {
	SegmentExpired(ended Session, message string)
}

// Engine is the session and overtime state machine. It never reads the wall
// clock; every time-dependent operation receives the current time.
type Engine struct {
	notifier  Notifier
	state     State
	pick      func(n int) int
	durations Durations
	workCount int
	session   Session
	remaining time.Duration
	lastFull  time.Duration
	overtime  time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithNotifier sets the collaborator told about expired segments.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// WithRand makes the reminder choice deterministic.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.pick = r.IntN
	}
}

// New returns an idle engine at the start of a work segment.
func New(d Durations, opts ...Option) *Engine {
	e := &Engine{
		durations: d,
		session:   Work,
		pick:      rand.IntN,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.Reset()

	return e
}

// Toggle starts an idle timer or pauses a running one. Pausing freezes the
// time left; pausing during overtime keeps the accumulated overtime.
func (e *Engine) Toggle(now time.Time) {
	switch s := e.state.(type) {
	case Idle:
		e.state = Running{Deadline: now.Add(e.remaining)}
	case Running:
		e.remaining = e.clampRemaining(s.Deadline.Sub(now))
		e.state = Idle{}
	case Overtime:
		e.state = Idle{}
	}
}

// Tick advances the countdown or the overtime to now. It is a no-op while
// idle.
func (e *Engine) Tick(now time.Time) {
	switch s := e.state.(type) {
	case Running:
		left := s.Deadline.Sub(now)
		if left > 0 {
			e.remaining = e.clampRemaining(left)
			return
		}

		e.remaining = 0
		e.state = Overtime{LastSample: now}

		if e.notifier != nil {
			e.notifier.SegmentExpired(e.session, e.phrase(e.session))
		}
	case Overtime:
		if delta := now.Sub(s.LastSample); delta > 0 {
			e.overtime = timeutil.SaturatingAdd(e.overtime, delta)
		}

		e.state = Overtime{LastSample: now}
	case Idle:
	}
}

// Reset restarts the current session from its full length.
func (e *Engine) Reset() {
	e.remaining = e.durations.Of(e.session)
	e.lastFull = e.remaining
	e.overtime = 0
	e.state = Idle{}
}

// Checkpoint marks the elapsed time so far as attributed. The next
// ElapsedTime starts from the current remaining time.
func (e *Engine) Checkpoint() {
	e.lastFull = e.remaining
	e.overtime = 0
	e.state = Idle{}
}

// Pause stops the timer without attributing anything.
func (e *Engine) Pause(now time.Time) {
	if _, ok := e.state.(Running); ok {
		e.Toggle(now)
		return
	}

	e.state = Idle{}
}

// Finish ends the current segment and moves to the next session. The
// returned segment carries the elapsed time of a work segment, or zero for
// a break.
func (e *Engine) Finish() Segment {
	seg := Segment{Session: e.session}

	switch e.session {
	case Work:
		seg.Elapsed = e.ElapsedTime()

		e.workCount++
		if e.workCount >= e.durations.LongBreakAfter {
			e.workCount = 0
			e.session = LongBreak
		} else {
			e.session = Break
		}
	case Break, LongBreak:
		e.session = Work
	}

	e.Reset()

	return seg
}

// ElapsedTime is the time spent in the current segment since the last
// reset or checkpoint, overtime included.
func (e *Engine) ElapsedTime() time.Duration {
	if e.remaining == 0 {
		return timeutil.SaturatingAdd(e.lastFull, e.overtime)
	}

	return max(e.lastFull-e.remaining, 0)
}

// ApplySettings replaces the configured durations. The countdown is only
// reset while idle so a running segment is never interrupted.
func (e *Engine) ApplySettings(d Durations) {
	e.durations = d

	if _, ok := e.state.(Idle); ok {
		e.Reset()
	}
}

func (e *Engine) clampRemaining(d time.Duration) time.Duration {
	return min(max(d, 0), e.lastFull)
}

func (e *Engine) Session() Session {
	return e.session
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Remaining() time.Duration {
	return e.remaining
}

func (e *Engine) Overtime() time.Duration {
	return e.overtime
}

func (e *Engine) WorkCount() int {
	return e.workCount
}

func (e *Engine) Durations() Durations {
	return e.durations
}

// FullLength is the configured length of the current session.
func (e *Engine) FullLength() time.Duration {
	return e.durations.Of(e.session)
}

// Ticking reports whether the engine needs periodic ticks.
func (e *Engine) Ticking() bool {
	switch e.state.(type) {
	case Running, Overtime:
		return true
	}

	return false
}

// Deadline returns the end of the running countdown.
func (e *Engine) Deadline() (time.Time, bool) {
	if s, ok := e.state.(Running); ok {
		return s.Deadline, true
	}

	return time.Time{}, false
}
