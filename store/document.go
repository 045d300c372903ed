// Package store persists pomo's state: the JSON documents for tasks and
// reports, and the bolt database holding the paused timer and the log of
// finished work segments
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/report"
	"github.com/ayoisaiah/pomo/task"
)

// Files reads and writes the JSON documents.
type Files struct {
	now          func() time.Time
	TasksPath    string
	ReportPath   string
	SettingsPath string
}

// NewFiles returns a Files for the given document paths.
func NewFiles(tasksPath, reportPath, settingsPath string) *Files {
	return &Files{
		TasksPath:    tasksPath,
		ReportPath:   reportPath,
		SettingsPath: settingsPath,
		now:          time.Now,
	}
}

// LoadTasks reads the task list. A missing or corrupt document yields an
// empty list.
func (f *Files) LoadTasks() []task.Task {
	var tasks []task.Task

	if !f.load(f.TasksPath, &tasks) {
		return nil
	}

	return tasks
}

// SaveTasks writes the task list.
func (f *Files) SaveTasks(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}

	return writeJSON(f.TasksPath, tasks)
}

// LoadReport reads the report ledger. A missing or corrupt document yields
// an empty ledger.
func (f *Files) LoadReport() *report.Ledger {
	l := report.New()

	if !f.load(f.ReportPath, l) {
		return report.New()
	}

	return l
}

// SaveReport writes the report ledger.
func (f *Files) SaveReport(l *report.Ledger) error {
	return writeJSON(f.ReportPath, l)
}

// SaveSettings writes the settings document.
func (f *Files) SaveSettings(s config.Settings) error {
	return config.Save(f.SettingsPath, s)
}

// ExportReport writes the ledger to a user-chosen path.
func (f *Files) ExportReport(path string, l *report.Ledger) error {
	return writeJSON(path, l)
}

// ImportReport decodes a ledger document from path. Nothing is written.
func (f *Files) ImportReport(path string) (*report.Ledger, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errRead.Fmt(path).Wrap(err)
	}

	l := report.New()

	if err := json.Unmarshal(b, l); err != nil {
		return nil, errDecode.Fmt(path).Wrap(err)
	}

	return l, nil
}

// load decodes the document at path into v. It reports false when the
// document is missing or corrupt; corrupt documents are moved aside.
func (f *Files) load(path string, v any) bool {
	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn(
				"unable to read document",
				slog.String("path", path),
				slog.Any("error", err),
			)
		}

		return false
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return false
	}

	if err := json.Unmarshal(b, v); err != nil {
		aside := fmt.Sprintf("%s.corrupt.%d", path, f.now().Unix())

		slog.Error(
			"corrupt document moved aside",
			slog.String("path", path),
			slog.String("moved_to", aside),
			slog.Any("error", err),
		)

		_ = os.Rename(path, aside)

		return false
	}

	return true
}

// writeJSON encodes v as indented JSON and replaces path with it, keeping
// a backup of the previous contents.
func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errEncode.Fmt(filepath.Base(path)).Wrap(err)
	}

	backup(path)

	if err := writeFileAtomic(path, b); err != nil {
		return errWrite.Fmt(path).Wrap(err)
	}

	return nil
}
