package timer

import "time"

// State is the engine's run state. It is exactly one of Idle, Running or
// Overtime.
type State interface {
	state()
}

// Idle is a stopped timer. The remaining time is frozen.
type Idle struct{}

// Running counts down toward Deadline.
type Running struct {
	Deadline time.Time
}

// Overtime counts up after the countdown reached zero. LastSample is the
// time of the previous overtime sample.
type Overtime struct {
	LastSample time.Time
}

func (Idle) state()     {}
func (Running) state()  {}
func (Overtime) state() {}
