package coordinator

import (
	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/report"
	"github.com/ayoisaiah/pomo/store"
	"github.com/ayoisaiah/pomo/task"
	"github.com/ayoisaiah/pomo/timer"
)

type nopPersister struct{}

func (nopPersister) SaveTasks([]task.Task) error               { return nil }
func (nopPersister) SaveSettings(config.Settings) error        { return nil }
func (nopPersister) SaveReport(*report.Ledger) error           { return nil }
func (nopPersister) ExportReport(string, *report.Ledger) error { return nil }

func (nopPersister) ImportReport(string) (*report.Ledger, error) {
	return report.New(), nil
}

type nopSegmentLog struct{}

func (nopSegmentLog) AppendSegment(store.Segment) error { return nil }

type nopHook struct{}

func (nopHook) Run(_, _ timer.Session) error { return nil }
func (nopHook) SetCommand(string)            {}
