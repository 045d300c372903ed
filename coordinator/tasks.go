package coordinator

import (
	"time"

	"github.com/ayoisaiah/pomo/task"
	"github.com/ayoisaiah/pomo/timer"
)

// SetInput replaces the new-task input buffer.
func (c *Coordinator) SetInput(text string) {
	c.tasks.SetInput(text)
}

// Add creates a task from the input buffer.
func (c *Coordinator) Add() (task.Task, bool) {
	t, ok := c.tasks.Add()
	if ok {
		c.saveTasks()
	}

	return t, ok
}

// AddTask creates a task described by desc.
func (c *Coordinator) AddTask(desc string) (task.Task, bool) {
	t, ok := c.tasks.AddTask(desc)
	if ok {
		c.saveTasks()
	}

	return t, ok
}

// Complete toggles the completion of id. During a work segment the time
// elapsed since the last checkpoint is credited to it and the timer
// checkpoints.
func (c *Coordinator) Complete(id uint64) bool {
	if _, ok := c.tasks.Get(id); !ok {
		c.tasks.Complete(id, 0)
		return false
	}

	c.tasks.Complete(id, c.attributable())
	c.checkpoint()
	c.saveTasks()

	return true
}

// CompleteActive completes the active task.
func (c *Coordinator) CompleteActive() bool {
	id, ok := c.tasks.Active()
	if !ok {
		return false
	}

	return c.Complete(id)
}

// Select toggles id as the active task.
func (c *Coordinator) Select(id uint64) bool {
	return c.switchActive(func() bool {
		return c.tasks.Select(id)
	})
}

// Activate toggles the first incomplete task as the active task.
func (c *Coordinator) Activate() bool {
	return c.switchActive(c.tasks.Activate)
}

// MoveActive moves the active reference up or down.
func (c *Coordinator) MoveActive(dir task.Direction) bool {
	return c.switchActive(func() bool {
		return c.tasks.MoveActive(dir)
	})
}

// switchActive applies change to the active reference. When the active
// task changes during a work segment the time so far is credited to the
// previous task and the timer checkpoints. Otherwise the timer pauses.
func (c *Coordinator) switchActive(change func() bool) bool {
	prev, hadPrev := c.tasks.Active()

	if !change() {
		return false
	}

	next, hasNext := c.tasks.Active()
	changed := hadPrev != hasNext || prev != next

	if changed && hadPrev && c.engine.Session() == timer.Work {
		c.tasks.Attribute(prev, c.engine.ElapsedTime())
		c.checkpoint()
	} else {
		c.engine.Pause(c.now())
	}

	c.saveTasks()

	return true
}

// checkpoint restarts the elapsed count and the logged start of the
// segment with it.
func (c *Coordinator) checkpoint() {
	c.engine.Checkpoint()

	c.segmentStart = time.Time{}
	if c.engine.Ticking() {
		c.segmentStart = c.now()
	}
}

// attributable is the elapsed time that completing a task credits.
func (c *Coordinator) attributable() time.Duration {
	if c.engine.Session() != timer.Work {
		return 0
	}

	return c.engine.ElapsedTime()
}

// Edit opens the edit slot on id.
func (c *Coordinator) Edit(id uint64) bool {
	return c.tasks.Edit(id)
}

// EditActive opens the edit slot on the active task.
func (c *Coordinator) EditActive() bool {
	id, ok := c.tasks.Active()
	if !ok {
		return false
	}

	return c.tasks.Edit(id)
}

func (c *Coordinator) EditInput(text string) {
	c.tasks.EditInput(text)
}

// SaveEdit commits the edit slot.
func (c *Coordinator) SaveEdit() bool {
	ok := c.tasks.SaveEdit()
	if ok {
		c.saveTasks()
	}

	return ok
}

func (c *Coordinator) CancelEdit() {
	c.tasks.CancelEdit()
}

// Delete removes id.
func (c *Coordinator) Delete(id uint64) bool {
	ok := c.tasks.Delete(id)
	if ok {
		c.saveTasks()
	}

	return ok
}

// DeleteActive removes the active task.
func (c *Coordinator) DeleteActive() bool {
	id, ok := c.tasks.Active()
	if !ok {
		return false
	}

	return c.Delete(id)
}

// ClearTasks removes every task.
func (c *Coordinator) ClearTasks() {
	c.tasks.ClearAll()
	c.saveTasks()
}
