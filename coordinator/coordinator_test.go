package coordinator

import (
	"errors"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/report"
	"github.com/ayoisaiah/pomo/store"
	"github.com/ayoisaiah/pomo/task"
	"github.com/ayoisaiah/pomo/timer"
)

var errImport = errors.New("not a report")

type fakePersister struct {
	imported    *report.Ledger
	importErr   error
	exported    map[string]*report.Ledger
	tasks       []task.Task
	settings    []config.Settings
	taskSaves   int
	reportSaves int
}

func (f *fakePersister) SaveTasks(tasks []task.Task) error {
	f.tasks = tasks
	f.taskSaves++

	return nil
}

func (f *fakePersister) SaveSettings(s config.Settings) error {
	f.settings = append(f.settings, s)
	return nil
}

func (f *fakePersister) SaveReport(_ *report.Ledger) error {
	f.reportSaves++
	return nil
}

func (f *fakePersister) ExportReport(path string, l *report.Ledger) error {
	if f.exported == nil {
		f.exported = make(map[string]*report.Ledger)
	}

	f.exported[path] = l

	return nil
}

func (f *fakePersister) ImportReport(_ string) (*report.Ledger, error) {
	return f.imported, f.importErr
}

type fakeLog struct {
	segments []store.Segment
}

func (f *fakeLog) AppendSegment(seg store.Segment) error {
	f.segments = append(f.segments, seg)
	return nil
}

type hookCall struct {
	ended, next timer.Session
}

type fakeHook struct {
	command string
	calls   []hookCall
}

func (f *fakeHook) Run(ended, next timer.Session) error {
	f.calls = append(f.calls, hookCall{ended, next})
	return nil
}

func (f *fakeHook) SetCommand(command string) {
	f.command = command
}

type fakeNotifier struct {
	expired       []timer.Session
	notify, sound bool
}

func (f *fakeNotifier) SegmentExpired(ended timer.Session, _ string) {
	f.expired = append(f.expired, ended)
}

func (f *fakeNotifier) Configure(notify, sound bool) {
	f.notify = notify
	f.sound = sound
}

type fakeSnapshots struct {
	saved []timer.Snapshot
}

func (f *fakeSnapshots) SaveSnapshot(s timer.Snapshot) error {
	f.saved = append(f.saved, s)
	return nil
}

type fixture struct {
	c         *Coordinator
	persister *fakePersister
	log       *fakeLog
	hook      *fakeHook
	notifier  *fakeNotifier
	snapshots *fakeSnapshots
	now       time.Time
}

func (f *fixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
	f.c.Tick(f.now)
}

func newFixture(t *testing.T, tasks []task.Task, opts ...Option) *fixture {
	t.Helper()

	f := &fixture{
		persister: &fakePersister{},
		log:       &fakeLog{},
		hook:      &fakeHook{},
		notifier:  &fakeNotifier{},
		snapshots: &fakeSnapshots{},
		now:       time.Date(2026, time.May, 4, 9, 0, 0, 0, time.UTC),
	}

	base := []Option{
		WithPersister(f.persister),
		WithSegmentLog(f.log),
		WithHook(f.hook),
		WithNotifier(f.notifier),
		WithSnapshots(f.snapshots),
		WithClock(func() time.Time { return f.now }),
		WithTasks(tasks),
		WithEngineOptions(timer.WithRand(rand.New(rand.NewPCG(1, 1)))),
	}

	f.c = New(config.Default(), append(base, opts...)...)

	return f
}

func spent(t *testing.T, c *Coordinator, id uint64) time.Duration {
	t.Helper()

	for _, v := range c.Tasks() {
		if v.ID == id {
			return v.Spent
		}
	}

	t.Fatalf("task %d not found", id)

	return 0
}

func TestFinishAfterOvertimeCreditsActiveTask(t *testing.T) {
	f := newFixture(t, []task.Task{{ID: 1, Desc: "write report"}})

	active, ok := f.c.Active()
	require.True(t, ok)
	require.Equal(t, uint64(1), active.ID)

	start := f.now
	f.c.Toggle()
	f.advance(25 * time.Minute)

	require.IsType(t, timer.Overtime{}, f.c.Timer().State)
	assert.Equal(t, []timer.Session{timer.Work}, f.notifier.expired)

	f.advance(90 * time.Second)

	seg := f.c.Finish()

	assert.Equal(t, 1590*time.Second, seg.Elapsed)
	assert.Equal(t, 1590*time.Second, spent(t, f.c, 1))

	v := f.c.Timer()
	assert.Equal(t, timer.Break, v.Session)
	assert.Equal(t, 1, v.WorkCount)
	assert.False(t, v.Ticking)

	require.Len(t, f.log.segments, 1)
	assert.Equal(t, store.Segment{
		Start:   start,
		End:     f.now,
		Session: timer.Work,
		Elapsed: 1590 * time.Second,
		TaskID:  1,
	}, f.log.segments[0])

	assert.Equal(t, []hookCall{{timer.Work, timer.Break}}, f.hook.calls)
	assert.Equal(t, 1590*time.Second, f.persister.tasks[0].Spent)
}

func TestFinishBreakCreditsNothing(t *testing.T) {
	f := newFixture(t, []task.Task{{ID: 1, Desc: "a"}})

	f.c.Finish()
	f.c.Toggle()
	f.advance(3 * time.Minute)

	seg := f.c.Finish()

	assert.Equal(t, timer.Break, seg.Session)
	assert.Zero(t, spent(t, f.c, 1))
	assert.Empty(t, f.log.segments)
	assert.Equal(t, timer.Work, f.c.Timer().Session)
}

func TestCompleteDuringWork(t *testing.T) {
	f := newFixture(t, []task.Task{{ID: 1, Desc: "a"}, {ID: 2, Desc: "b"}})

	f.c.Toggle()
	f.advance(10 * time.Minute)

	require.True(t, f.c.CompleteActive())

	assert.Equal(t, 10*time.Minute, spent(t, f.c, 1))
	assert.IsType(t, timer.Idle{}, f.c.Timer().State)
	assert.Zero(t, f.c.Timer().Elapsed)

	active, _ := f.c.Active()
	assert.Equal(t, uint64(2), active.ID)

	resumed := f.now
	f.c.Toggle()
	f.advance(5 * time.Minute)
	f.c.Finish()

	assert.Equal(t, 5*time.Minute, spent(t, f.c, 2))
	assert.Equal(t, 10*time.Minute, spent(t, f.c, 1), "no double counting")

	require.Len(t, f.log.segments, 1)
	assert.Equal(t, resumed, f.log.segments[0].Start, "logged window starts at the checkpoint")
	assert.Equal(t, 5*time.Minute, f.log.segments[0].Elapsed)
}

func TestCompleteDuringBreakCreditsZero(t *testing.T) {
	f := newFixture(t, []task.Task{{ID: 1, Desc: "a"}})

	f.c.Finish()
	f.c.Toggle()
	f.advance(2 * time.Minute)

	require.True(t, f.c.Complete(1))

	assert.Zero(t, spent(t, f.c, 1))
}

func TestCompleteUnknownTaskKeepsTimer(t *testing.T) {
	f := newFixture(t, []task.Task{{ID: 1, Desc: "a"}})

	f.c.Toggle()
	f.advance(time.Minute)

	assert.False(t, f.c.Complete(99))
	assert.True(t, f.c.Ticking())
}

func TestSelectSwitchCreditsPreviousTask(t *testing.T) {
	f := newFixture(t, []task.Task{{ID: 1, Desc: "a"}, {ID: 2, Desc: "b"}})

	f.c.Toggle()
	f.advance(10 * time.Minute)

	require.True(t, f.c.Select(2))

	assert.Equal(t, 10*time.Minute, spent(t, f.c, 1))
	assert.IsType(t, timer.Idle{}, f.c.Timer().State)
	assert.Zero(t, f.c.Timer().Elapsed)

	f.c.Toggle()
	f.advance(4 * time.Minute)

	require.True(t, f.c.MoveActive(task.Up))

	assert.Equal(t, 4*time.Minute, spent(t, f.c, 2))

	active, _ := f.c.Active()
	assert.Equal(t, uint64(1), active.ID)
}

func TestActivateTwiceCreditsAndDeactivates(t *testing.T) {
	f := newFixture(t, []task.Task{{ID: 1, Desc: "a"}, {ID: 2, Desc: "b"}})

	require.True(t, f.c.Activate())

	_, ok := f.c.Active()
	require.False(t, ok, "the derived active task is deselected")

	require.True(t, f.c.Activate())
	f.c.Toggle()
	f.advance(6 * time.Minute)

	require.True(t, f.c.Activate())

	_, ok = f.c.Active()
	assert.False(t, ok)
	assert.Equal(t, 6*time.Minute, spent(t, f.c, 1))
}

func TestSelectWithoutChangePauses(t *testing.T) {
	f := newFixture(t, []task.Task{{ID: 1, Desc: "only"}})

	f.c.Toggle()
	f.advance(3 * time.Minute)

	// the only open task stays active
	require.True(t, f.c.MoveActive(task.Down))

	v := f.c.Timer()
	assert.IsType(t, timer.Idle{}, v.State)
	assert.Equal(t, 3*time.Minute, v.Elapsed, "pause keeps the elapsed time")
	assert.Zero(t, spent(t, f.c, 1))
}

func TestSelectUnknownIsNoop(t *testing.T) {
	f := newFixture(t, []task.Task{{ID: 1, Desc: "a"}})

	f.c.Toggle()

	assert.False(t, f.c.Select(5))
	assert.True(t, f.c.Ticking())
}

func TestEndDay(t *testing.T) {
	t.Run("no completed tasks leaves ledger alone", func(t *testing.T) {
		f := newFixture(t, []task.Task{{ID: 1, Desc: "a"}})

		focused, completed := f.c.EndDay()

		assert.Zero(t, focused)
		assert.Zero(t, completed)
		assert.Zero(t, f.persister.reportSaves)
		assert.Empty(t, f.c.History())
		assert.Len(t, f.c.Tasks(), 1)
	})

	t.Run("completed tasks are rolled into today", func(t *testing.T) {
		f := newFixture(t, []task.Task{
			{ID: 1, Desc: "a", Spent: 30 * time.Minute, Done: true},
			{ID: 2, Desc: "b", Spent: 20 * time.Minute, Done: true},
			{ID: 3, Desc: "c", Spent: 5 * time.Minute},
		})

		focused, completed := f.c.EndDay()

		assert.Equal(t, 50*time.Minute, focused)
		assert.Equal(t, 2, completed)
		assert.Equal(t, 1, f.persister.reportSaves)

		assert.Equal(t, []report.DayReport{{
			Date:      timeutil.DateOf(f.now),
			Focused:   50 * time.Minute,
			Completed: 2,
		}}, f.c.History())

		assert.Equal(t, []task.Task{{ID: 3, Desc: "c", Spent: 5 * time.Minute}}, f.c.Tasks())

		summary := f.c.Report()
		assert.Equal(t, 1, summary.CurrentStreak)
		assert.Equal(t, 50*time.Minute, summary.FocusedToday)
	})
}

func TestApplySettings(t *testing.T) {
	f := newFixture(t, nil)

	f.c.Toggle()
	f.advance(time.Minute)

	s := config.Default()
	s.WorkMin = 50
	s.BreakMin = 10
	s.Notify = false
	s.SessionCmd = "echo done"

	f.c.ApplySettings(s)

	v := f.c.Timer()
	assert.True(t, v.Ticking, "running timer keeps going")
	assert.Equal(t, 24*time.Minute, v.Remaining)

	assert.Equal(t, s, f.c.Settings())
	assert.Equal(t, []config.Settings{s}, f.persister.settings)
	assert.False(t, f.notifier.notify)
	assert.True(t, f.notifier.sound)
	assert.Equal(t, "echo done", f.hook.command)

	f.c.Finish()
	assert.Equal(t, 10*time.Minute, f.c.Timer().Remaining)
}

func TestApplySettingsWhileIdleResets(t *testing.T) {
	f := newFixture(t, nil)

	s := config.Default()
	s.WorkMin = 45

	f.c.ApplySettings(s)

	assert.Equal(t, 45*time.Minute, f.c.Timer().Remaining)
}

func TestReportExportImport(t *testing.T) {
	f := newFixture(t, []task.Task{{ID: 1, Desc: "a", Spent: time.Hour, Done: true}})
	f.c.EndDay()

	require.NoError(t, f.c.ExportReport(""))
	assert.Empty(t, f.persister.exported)

	require.NoError(t, f.c.ExportReport("/tmp/r.json"))
	assert.Contains(t, f.persister.exported, "/tmp/r.json")

	require.NoError(t, f.c.ImportReport(""))

	f.persister.importErr = errImport
	assert.ErrorIs(t, f.c.ImportReport("/tmp/bad.json"), errImport)
	assert.Len(t, f.c.History(), 1, "failed import keeps the ledger")

	imported := report.New()
	imported.Generate(timeutil.DateOf(f.now).AddDays(-3), 2*time.Hour, 4)

	f.persister.importErr = nil
	f.persister.imported = imported
	saves := f.persister.reportSaves

	require.NoError(t, f.c.ImportReport("/tmp/good.json"))

	assert.Equal(t, imported.History(), f.c.History())
	assert.Equal(t, saves+1, f.persister.reportSaves)

	f.c.ClearReport()
	assert.Empty(t, f.c.History())
}

func TestSnapshotResume(t *testing.T) {
	f := newFixture(t, nil)

	f.c.Toggle()
	f.advance(5 * time.Minute)
	f.c.Shutdown()

	require.Len(t, f.snapshots.saved, 1)

	resumed := newFixture(t, nil, WithSnapshot(f.snapshots.saved[0]))

	v := resumed.c.Timer()
	assert.IsType(t, timer.Idle{}, v.State)
	assert.Equal(t, 20*time.Minute, v.Remaining)
	assert.Equal(t, 5*time.Minute, v.Elapsed)
}

func TestStatus(t *testing.T) {
	f := newFixture(t, []task.Task{{ID: 1, Desc: "write"}})

	f.c.Toggle()
	f.advance(time.Minute)

	s := f.c.Status()

	assert.Equal(t, "running", s.State)
	assert.Equal(t, "write", s.Task)
	assert.Equal(t, 24*time.Minute, s.Remaining)
	assert.Equal(t, 4, s.LongBreakAfter)
}

func TestTaskEditingAndDeletion(t *testing.T) {
	f := newFixture(t, nil)

	f.c.SetInput("  first ")
	_, ok := f.c.Add()
	require.True(t, ok)

	_, ok = f.c.AddTask("second")
	require.True(t, ok)

	require.True(t, f.c.Activate())
	require.True(t, f.c.EditActive())

	f.c.EditInput("first, renamed")
	require.True(t, f.c.SaveEdit())

	tasks := f.c.Tasks()
	assert.Equal(t, "first, renamed", tasks[0].Desc)

	require.True(t, f.c.DeleteActive())

	active, ok := f.c.Active()
	require.True(t, ok)
	assert.Equal(t, "second", active.Desc)

	f.c.ClearTasks()
	assert.Empty(t, f.c.Tasks())
	assert.Empty(t, f.persister.tasks)
}

func TestRandomActionsKeepActiveTaskValid(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	f := newFixture(t, nil)

	actions := []func(){
		func() { f.c.Toggle() },
		func() { f.advance(time.Duration(r.IntN(600)) * time.Second) },
		func() { f.c.Finish() },
		func() { f.c.Reset() },
		func() { f.c.AddTask("task") },
		func() { f.c.CompleteActive() },
		func() { f.c.Complete(uint64(r.IntN(8))) },
		func() { f.c.Select(uint64(r.IntN(8))) },
		func() { f.c.Activate() },
		func() { f.c.MoveActive(task.Up) },
		func() { f.c.MoveActive(task.Down) },
		func() { f.c.DeleteActive() },
		func() { f.c.EndDay() },
	}

	for range 2000 {
		actions[r.IntN(len(actions))]()

		tasks := f.c.Tasks()
		seen := make(map[uint64]bool, len(tasks))

		for _, v := range tasks {
			require.False(t, seen[v.ID], "duplicate id %d", v.ID)
			require.GreaterOrEqual(t, v.Spent, time.Duration(0))
			seen[v.ID] = true
		}

		if active, ok := f.c.Active(); ok {
			require.True(t, seen[active.ID])
		}

		v := f.c.Timer()
		require.GreaterOrEqual(t, v.Remaining, time.Duration(0))
		require.GreaterOrEqual(t, v.Overtime, time.Duration(0))
		require.Less(t, v.WorkCount, v.LongBreakAfter)
	}
}

func TestTaskIDsSurviveRestart(t *testing.T) {
	dir := t.TempDir()
	files := store.NewFiles(
		filepath.Join(dir, "tasks.json"),
		filepath.Join(dir, "reports.json"),
		filepath.Join(dir, "settings.json"),
	)

	open := func() (*Coordinator, *store.Client) {
		db, err := store.NewClient(filepath.Join(dir, "pomo.db"))
		require.NoError(t, err)

		next, err := db.NextTaskID()
		require.NoError(t, err)

		c := New(
			config.Default(),
			WithPersister(files),
			WithTaskCounter(db, next),
			WithTasks(files.LoadTasks()),
		)

		return c, db
	}

	c, db := open()
	a, _ := c.AddTask("a")
	b, _ := c.AddTask("b")
	require.True(t, c.Delete(b.ID))
	require.NoError(t, db.Close())

	c, db = open()
	defer db.Close()

	got, ok := c.AddTask("c")
	require.True(t, ok)
	assert.Equal(t, uint64(1), a.ID)
	assert.Equal(t, uint64(3), got.ID)
}
