// Package task keeps the ordered task list, the active task that receives
// credit for elapsed time, and the single in-place edit slot
package task

import (
	"encoding/json"
	"time"

	"github.com/ayoisaiah/pomo/internal/timeutil"
)

// Task is a unit of work. Spent only ever grows.
type Task struct {
	Desc  string
	ID    uint64
	Spent time.Duration
	Done  bool
}

type taskJSON struct {
	Desc  string `json:"desc"`
	ID    uint64 `json:"id"`
	Spent int64  `json:"spent"`
	Done  bool   `json:"done"`
}

// MarshalJSON encodes the task with its spent time in whole seconds.
func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(taskJSON{
		ID:    t.ID,
		Desc:  t.Desc,
		Spent: timeutil.ToSeconds(t.Spent),
		Done:  t.Done,
	})
}

func (t *Task) UnmarshalJSON(b []byte) error {
	var v taskJSON

	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*t = Task{
		ID:    v.ID,
		Desc:  v.Desc,
		Spent: timeutil.FromSeconds(v.Spent),
		Done:  v.Done,
	}

	return nil
}

// Editing is the open edit slot: the task being edited and the pending
// text.
type Editing struct {
	Text string
	ID   uint64
}

// Direction moves the active reference through the incomplete tasks.
type Direction int

const (
	Up Direction = iota
	Down
)
