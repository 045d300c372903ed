package task

import (
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/pomo/internal/timeutil"
)

const firstID uint64 = 1

// Store owns the task list. After every mutation the active reference is
// either unset or points at an existing incomplete task.
type Store struct {
	editing   *Editing
	input     string
	tasks     []Task
	nextID    uint64
	active    uint64
	hasActive bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{nextID: firstID}
}

// Load rebuilds the store from persisted tasks. Ids resume after the
// largest loaded id and the first incomplete task becomes active. Tasks
// with a repeated id are dropped.
func (s *Store) Load(tasks []Task) {
	s.tasks = make([]Task, 0, len(tasks))
	s.nextID = firstID
	s.editing = nil
	s.input = ""

	seen := make(map[uint64]bool, len(tasks))

	for _, t := range tasks {
		if seen[t.ID] {
			continue
		}

		seen[t.ID] = true
		s.tasks = append(s.tasks, t)

		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}

	s.deriveActive()
}

// ResumeIDs makes sure new tasks get ids no lower than next, so that ids
// handed out before a restart are not reused.
func (s *Store) ResumeIDs(next uint64) {
	s.nextID = max(s.nextID, next)
}

// SetInput replaces the new-task input buffer.
func (s *Store) SetInput(text string) {
	s.input = text
}

// Add creates a task from the input buffer and clears it. Blank input is
// ignored and consumes no id.
func (s *Store) Add() (Task, bool) {
	t, ok := s.AddTask(s.input)
	if ok {
		s.input = ""
	}

	return t, ok
}

// AddTask appends a task described by desc.
func (s *Store) AddTask(desc string) (Task, bool) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return Task{}, false
	}

	t := Task{ID: s.nextID, Desc: desc}
	s.tasks = append(s.tasks, t)
	s.nextID++

	return t, true
}

// Complete toggles the completion flag of id and credits elapsed to it.
// The active task is re-derived even when id is unknown.
func (s *Store) Complete(id uint64, elapsed time.Duration) bool {
	i := s.index(id)
	if i >= 0 {
		s.tasks[i].Done = !s.tasks[i].Done
		s.tasks[i].Spent = timeutil.SaturatingAdd(s.tasks[i].Spent, elapsed)
	}

	s.deriveActive()

	return i >= 0
}

// Attribute credits elapsed to id without touching its flag.
func (s *Store) Attribute(id uint64, elapsed time.Duration) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}

	s.tasks[i].Spent = timeutil.SaturatingAdd(s.tasks[i].Spent, elapsed)

	return true
}

// Select deactivates id if it is the active task. Otherwise the task is
// marked incomplete and becomes active.
func (s *Store) Select(id uint64) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}

	if s.hasActive && s.active == id {
		s.hasActive = false
		s.active = 0

		return true
	}

	s.tasks[i].Done = false
	s.setActive(id)

	return true
}

// Activate selects the first incomplete task: it becomes active, or is
// deactivated if it already was. It reports false when every task is done.
func (s *Store) Activate() bool {
	i := slices.IndexFunc(s.tasks, func(t Task) bool {
		return !t.Done
	})
	if i < 0 {
		return false
	}

	return s.Select(s.tasks[i].ID)
}

// MoveActive cycles the active reference through the incomplete tasks,
// wrapping at both ends.
func (s *Store) MoveActive(dir Direction) bool {
	if !s.hasActive {
		return false
	}

	var open []uint64

	for _, t := range s.tasks {
		if !t.Done {
			open = append(open, t.ID)
		}
	}

	if len(open) == 0 {
		return false
	}

	cur := max(slices.Index(open, s.active), 0)

	var next int

	switch dir {
	case Up:
		next = (cur + len(open) - 1) % len(open)
	case Down:
		next = (cur + 1) % len(open)
	}

	s.setActive(open[next])

	return true
}

// Edit opens the edit slot on id with its current description.
func (s *Store) Edit(id uint64) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}

	s.editing = &Editing{ID: id, Text: s.tasks[i].Desc}

	return true
}

// EditInput replaces the pending text of the open edit slot.
func (s *Store) EditInput(text string) {
	if s.editing != nil {
		s.editing.Text = text
	}
}

// SaveEdit closes the edit slot and commits the trimmed text if it is not
// blank.
func (s *Store) SaveEdit() bool {
	if s.editing == nil {
		return false
	}

	e := *s.editing
	s.editing = nil

	text := strings.TrimSpace(e.Text)
	if text == "" {
		return false
	}

	i := s.index(e.ID)
	if i < 0 {
		return false
	}

	s.tasks[i].Desc = text

	return true
}

// CancelEdit discards the edit slot.
func (s *Store) CancelEdit() {
	s.editing = nil
}

// Delete removes id. If it was active, or nothing was active, the first
// incomplete task becomes active.
func (s *Store) Delete(id uint64) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}

	s.tasks = slices.Delete(s.tasks, i, i+1)

	if s.editing != nil && s.editing.ID == id {
		s.editing = nil
	}

	if !s.hasActive || s.active == id {
		s.deriveActive()
	}

	return true
}

// ClearAll removes every task.
func (s *Store) ClearAll() {
	s.tasks = nil
	s.editing = nil
	s.hasActive = false
	s.active = 0
}

// EndDay removes the completed tasks and returns how many were removed.
func (s *Store) EndDay() int {
	before := len(s.tasks)

	s.tasks = slices.DeleteFunc(s.tasks, func(t Task) bool {
		return t.Done
	})

	if s.editing != nil && s.index(s.editing.ID) < 0 {
		s.editing = nil
	}

	return before - len(s.tasks)
}

// CompletedStats returns the total time spent on completed tasks and their
// count.
func (s *Store) CompletedStats() (time.Duration, int) {
	var (
		focused time.Duration
		count   int
	)

	for _, t := range s.tasks {
		if t.Done {
			focused = timeutil.SaturatingAdd(focused, t.Spent)
			count++
		}
	}

	return focused, count
}

// Tasks returns a copy of the task list in order.
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// Get returns a copy of the task with id.
func (s *Store) Get(id uint64) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}

	return s.tasks[i], true
}

// Active returns the id of the active task.
func (s *Store) Active() (uint64, bool) {
	return s.active, s.hasActive
}

// ActiveTask returns a copy of the active task.
func (s *Store) ActiveTask() (Task, bool) {
	if !s.hasActive {
		return Task{}, false
	}

	return s.Get(s.active)
}

// Editing returns the open edit slot.
func (s *Store) Editing() (Editing, bool) {
	if s.editing == nil {
		return Editing{}, false
	}

	return *s.editing, true
}

func (s *Store) Input() string {
	return s.input
}

// NextID is the id the next created task will get.
func (s *Store) NextID() uint64 {
	return s.nextID
}

func (s *Store) index(id uint64) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool {
		return t.ID == id
	})
}

func (s *Store) setActive(id uint64) {
	s.active = id
	s.hasActive = true
}

// deriveActive points the active reference at the first incomplete task.
func (s *Store) deriveActive() {
	s.hasActive = false
	s.active = 0

	for _, t := range s.tasks {
		if !t.Done {
			s.setActive(t.ID)
			return
		}
	}
}
