package store

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/ayoisaiah/pomo/timer"
)

// Status is what the status command prints about a running timer.
type Status struct {
	Deadline       time.Time     `json:"deadline,omitzero"`
	Task           string        `json:"task,omitempty"`
	State          string        `json:"state"`
	Session        timer.Session `json:"session"`
	Remaining      time.Duration `json:"remaining"`
	Overtime       time.Duration `json:"overtime"`
	WorkCount      int           `json:"work_count"`
	LongBreakAfter int           `json:"long_break_after"`
}

// WriteStatus replaces the status file.
func WriteStatus(path string, s Status) error {
	b, err := json.Marshal(s)
	if err != nil {
		return errEncode.Fmt("status").Wrap(err)
	}

	if err := writeFileAtomic(path, b); err != nil {
		return errWrite.Fmt(path).Wrap(err)
	}

	return nil
}

// ReadStatus reads the status file. A missing file is not an error.
func ReadStatus(path string) (Status, bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Status{}, false, nil
		}

		return Status{}, false, errRead.Fmt(path).Wrap(err)
	}

	var s Status

	if err := json.Unmarshal(b, &s); err != nil {
		return Status{}, false, errDecode.Fmt(path).Wrap(err)
	}

	return s, true, nil
}

// RemoveStatus deletes the status file.
func RemoveStatus(path string) {
	_ = os.Remove(path)
}
