package timer

import (
	"fmt"
	"time"
)

// Session identifies the kind of segment the engine is counting.
type Session int

const (
	Work Session = iota
	Break
	LongBreak
)

var sessionKeys = map[Session]string{
	Work:      "work",
	Break:     "break",
	LongBreak: "long_break",
}

func (s Session) String() string {
	switch s {
	case Work:
		return "Work"
	case Break:
		return "Break"
	case LongBreak:
		return "Long break"
	}

	return fmt.Sprintf("Session(%d)", int(s))
}

// IsBreak reports whether s is a short or long break.
func (s Session) IsBreak() bool {
	return s == Break || s == LongBreak
}

func (s Session) MarshalText() ([]byte, error) {
	key, ok := sessionKeys[s]
	if !ok {
		return nil, fmt.Errorf("unknown session %d", int(s))
	}

	return []byte(key), nil
}

func (s *Session) UnmarshalText(b []byte) error {
	for k, v := range sessionKeys {
		if v == string(b) {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown session %q", string(b))
}

// Durations holds the configured full length of each session and the
// number of work segments between long breaks.
type Durations struct {
	Work           time.Duration
	Break          time.Duration
	LongBreak      time.Duration
	LongBreakAfter int
}

// Minutes builds Durations from whole minutes.
func Minutes(workMin, breakMin, longBreakMin, longBreakAfter int) Durations {
	return Durations{
		Work:           time.Duration(workMin) * time.Minute,
		Break:          time.Duration(breakMin) * time.Minute,
		LongBreak:      time.Duration(longBreakMin) * time.Minute,
		LongBreakAfter: longBreakAfter,
	}
}

// Of returns the full length of s.
func (d Durations) Of(s Session) time.Duration {
	switch s {
	case Break:
		return d.Break
	case LongBreak:
		return d.LongBreak
	default:
		return d.Work
	}
}

// Segment is the result of finishing a segment: the session that ended and
// the time to attribute to the active task. Elapsed is zero for breaks.
type Segment struct {
	Session Session
	Elapsed time.Duration
}
