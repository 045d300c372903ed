package app

import (
	"github.com/ayoisaiah/pomo/coordinator"
	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/pathutil"
	"github.com/ayoisaiah/pomo/report"
	"github.com/ayoisaiah/pomo/store"
	"github.com/ayoisaiah/pomo/task"
)

func newFiles() *store.Files {
	return store.NewFiles(
		pathutil.TasksFilePath(),
		pathutil.ReportFilePath(),
		pathutil.SettingsFilePath(),
	)
}

// strictPersister keeps the first save error so that a command can report
// it instead of only logging it.
type strictPersister struct {
	coordinator.Persister
	db  *store.Client
	err error
}

func (p *strictPersister) keep(err error) error {
	if p.err == nil {
		p.err = err
	}

	return err
}

func (p *strictPersister) SaveTasks(tasks []task.Task) error {
	return p.keep(p.Persister.SaveTasks(tasks))
}

func (p *strictPersister) SaveReport(l *report.Ledger) error {
	return p.keep(p.Persister.SaveReport(l))
}

func (p *strictPersister) SaveSettings(s config.Settings) error {
	return p.keep(p.Persister.SaveSettings(s))
}

func (p *strictPersister) SaveNextTaskID(id uint64) error {
	return p.keep(p.db.SaveNextTaskID(id))
}

// Close releases the database.
func (p *strictPersister) Close() error {
	return p.db.Close()
}

// documents loads the task list and the report into a coordinator for a
// one-off command. It fails if the interactive timer is running since it
// would overwrite the changes. The caller must close the returned
// persister.
func documents() (*coordinator.Coordinator, *strictPersister, error) {
	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	next, err := db.NextTaskID()
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	files := newFiles()
	p := &strictPersister{Persister: files, db: db}

	settings, _ := config.Load(pathutil.SettingsFilePath())

	c := coordinator.New(
		settings,
		coordinator.WithPersister(p),
		coordinator.WithTaskCounter(p, next),
		coordinator.WithTasks(files.LoadTasks()),
		coordinator.WithLedger(files.LoadReport()),
	)

	return c, p, nil
}
