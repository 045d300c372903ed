// Package coordinator wires user actions to the timer engine, the task
// store and the report ledger, and owns the settings they run with
package coordinator

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/report"
	"github.com/ayoisaiah/pomo/store"
	"github.com/ayoisaiah/pomo/task"
	"github.com/ayoisaiah/pomo/timer"
)

type (
	// Persister saves the documents after a mutation and moves the report
	// in and out of user-chosen files.
	Persister interface {
		SaveTasks(tasks []task.Task) error
		SaveSettings(s config.Settings) error
		SaveReport(l *report.Ledger) error
		ExportReport(path string, l *report.Ledger) error
		ImportReport(path string) (*report.Ledger, error)
	}

	// SegmentLog records finished work segments.
	SegmentLog interface {
		AppendSegment(seg store.Segment) error
	}

	// Snapshots keeps the paused timer across runs.
	Snapshots interface {
		SaveSnapshot(s timer.Snapshot) error
	}

	// TaskCounter keeps the task id counter across runs.
	TaskCounter interface {
		SaveNextTaskID(id uint64) error
	}

	// Hook runs the user's session command.
	Hook interface {
		Run(ended, next timer.Session) error
		SetCommand(command string)
	}

	// Configurable is implemented by notifiers whose output can be toggled
	// from the settings.
	Configurable interface {
		Configure(notify, sound bool)
	}
)

// Coordinator processes one action at a time to completion. It is not safe
// for concurrent use.
type Coordinator struct {
	segmentStart time.Time
	persister    Persister
	segments     SegmentLog
	snapshots    Snapshots
	counter      TaskCounter
	hook         Hook
	notifier     timer.Notifier
	logger       *slog.Logger
	now          func() time.Time
	engine       *timer.Engine
	tasks        *task.Store
	ledger       *report.Ledger
	snapshot     *timer.Snapshot
	engineOpts   []timer.Option
	settings     config.Settings
	resumeID     uint64
	savedID      uint64
}

// Option configures a Coordinator.
type Option func(*Coordinator)

func WithPersister(p Persister) Option {
	return func(c *Coordinator) {
		c.persister = p
	}
}

func WithSegmentLog(l SegmentLog) Option {
	return func(c *Coordinator) {
		c.segments = l
	}
}

func WithSnapshots(s Snapshots) Option {
	return func(c *Coordinator) {
		c.snapshots = s
	}
}

func WithHook(h Hook) Option {
	return func(c *Coordinator) {
		c.hook = h
	}
}

// WithTaskCounter saves the task id counter to tc after every task change.
// New task ids start no lower than next.
func WithTaskCounter(tc TaskCounter, next uint64) Option {
	return func(c *Coordinator) {
		c.counter = tc
		c.resumeID = next
	}
}

// WithNotifier sets the notifier told about expired segments.
func WithNotifier(n timer.Notifier) Option {
	return func(c *Coordinator) {
		c.notifier = n
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = l
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

// WithTasks seeds the task store with persisted tasks.
func WithTasks(tasks []task.Task) Option {
	return func(c *Coordinator) {
		c.tasks.Load(tasks)
	}
}

// WithLedger seeds the report ledger.
func WithLedger(l *report.Ledger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.ledger = l
		}
	}
}

// WithSnapshot resumes a paused timer from an earlier run.
func WithSnapshot(s timer.Snapshot) Option {
	return func(c *Coordinator) {
		c.snapshot = &s
	}
}

// WithEngineOptions passes extra options to the timer engine.
func WithEngineOptions(opts ...timer.Option) Option {
	return func(c *Coordinator) {
		c.engineOpts = append(c.engineOpts, opts...)
	}
}

// New builds a Coordinator running with settings s.
func New(s config.Settings, opts ...Option) *Coordinator {
	c := &Coordinator{
		settings: s,
		tasks:    task.NewStore(),
		ledger:   report.New(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	if c.persister == nil {
		c.persister = nopPersister{}
	}

	if c.segments == nil {
		c.segments = nopSegmentLog{}
	}

	if c.hook == nil {
		c.hook = nopHook{}
	}

	c.tasks.ResumeIDs(c.resumeID)
	c.savedID = c.tasks.NextID()

	engineOpts := c.engineOpts
	if c.notifier != nil {
		engineOpts = append(engineOpts, timer.WithNotifier(c.notifier))
	}

	c.engine = timer.New(durations(s), engineOpts...)

	if c.snapshot != nil {
		c.engine.Restore(*c.snapshot)
		c.snapshot = nil
	}

	return c
}

func durations(s config.Settings) timer.Durations {
	return timer.Minutes(s.WorkMin, s.BreakMin, s.LongBreakMin, s.LongBreakAfter)
}

// Toggle starts or pauses the timer.
func (c *Coordinator) Toggle() {
	now := c.now()

	c.engine.Toggle(now)

	if c.engine.Ticking() && c.segmentStart.IsZero() {
		c.segmentStart = now
	}
}

// Tick advances the timer to now.
func (c *Coordinator) Tick(now time.Time) {
	c.engine.Tick(now)
}

// Reset restarts the current segment.
func (c *Coordinator) Reset() {
	c.engine.Reset()
	c.segmentStart = time.Time{}
}

// Finish ends the current segment. The elapsed time of a work segment is
// credited to the active task and logged.
func (c *Coordinator) Finish() timer.Segment {
	now := c.now()
	activeID, hasActive := c.tasks.Active()

	seg := c.engine.Finish()

	if seg.Session == timer.Work && seg.Elapsed > 0 {
		if hasActive {
			c.tasks.Attribute(activeID, seg.Elapsed)
			c.saveTasks()
		}

		c.logSegment(seg, now, activeID)
	}

	if err := c.hook.Run(seg.Session, c.engine.Session()); err != nil {
		c.logger.Error("session command failed", slog.Any("error", err))
	}

	c.segmentStart = time.Time{}

	return seg
}

func (c *Coordinator) logSegment(seg timer.Segment, now time.Time, taskID uint64) {
	start := c.segmentStart
	if start.IsZero() {
		start = now.Add(-seg.Elapsed)
	}

	err := c.segments.AppendSegment(store.Segment{
		Start:   start,
		End:     now,
		Session: seg.Session,
		Elapsed: seg.Elapsed,
		TaskID:  taskID,
	})
	if err != nil {
		c.logger.Error("unable to log segment", slog.Any("error", err))
	}
}

// EndDay rolls the completed tasks into today's report and removes them.
// The ledger is only touched when at least one task was completed.
func (c *Coordinator) EndDay() (focused time.Duration, completed int) {
	focused, completed = c.tasks.CompletedStats()

	if completed > 0 {
		c.ledger.Generate(c.Today(), focused, completed)
		c.saveReport()
	}

	c.tasks.EndDay()
	c.saveTasks()

	return focused, completed
}

// ApplySettings replaces the settings and persists them. A running timer
// keeps its current segment.
func (c *Coordinator) ApplySettings(s config.Settings) {
	c.settings = s
	c.engine.ApplySettings(durations(s))

	if n, ok := c.notifier.(Configurable); ok {
		n.Configure(s.Notify, s.AlertSound)
	}

	c.hook.SetCommand(s.SessionCmd)

	if err := c.persister.SaveSettings(s); err != nil {
		c.logger.Error("unable to save settings", slog.Any("error", err))
	}
}

// Shutdown stores the paused timer and the tasks before the program exits.
func (c *Coordinator) Shutdown() {
	if c.snapshots != nil {
		err := c.snapshots.SaveSnapshot(c.engine.Snapshot(c.now()))
		if err != nil {
			c.logger.Error("unable to save timer", slog.Any("error", err))
		}
	}

	c.saveTasks()
}

// Today is the current calendar date.
func (c *Coordinator) Today() timeutil.Date {
	return timeutil.DateOf(c.now())
}

func (c *Coordinator) saveTasks() {
	if err := c.persister.SaveTasks(c.tasks.Tasks()); err != nil {
		c.logger.Error("unable to save tasks", slog.Any("error", err))
	}

	next := c.tasks.NextID()
	if c.counter == nil || next == c.savedID {
		return
	}

	if err := c.counter.SaveNextTaskID(next); err != nil {
		c.logger.Error("unable to save task id counter", slog.Any("error", err))
		return
	}

	c.savedID = next
}

func (c *Coordinator) saveReport() {
	if err := c.persister.SaveReport(c.ledger); err != nil {
		c.logger.Error("unable to save report", slog.Any("error", err))
	}
}
