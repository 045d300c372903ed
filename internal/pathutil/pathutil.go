// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "POMO_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir           string
	settingsFileName string
	tasksFileName    string
	reportFileName   string
	dbFileName       string
	statusFileName   string
	logFileName      string

	// Computed absolute paths
	settingsFilePath string
	tasksFilePath    string
	reportFilePath   string
	dbFilePath       string
	statusFilePath   string
	logFilePath      string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		p := &Paths{
			appDir:           "pomo",
			settingsFileName: "settings.json",
			tasksFileName:    "tasks.json",
			reportFileName:   "reports.json",
			dbFileName:       "pomo.db",
			statusFileName:   "status.json",
			logFileName:      "pomo.log",
		}

		p.applyEnvironmentOverrides()

		initErr = p.computePaths()
		if initErr == nil {
			paths = p
		}
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().appDir
}

func SettingsFilePath() string {
	return Must().settingsFilePath
}

func TasksFilePath() string {
	return Must().tasksFilePath
}

func ReportFilePath() string {
	return Must().reportFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func StatusFilePath() string {
	return Must().statusFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env == "" {
		return
	}

	p.settingsFileName = fmt.Sprintf("settings_%s.json", env)
	p.tasksFileName = fmt.Sprintf("tasks_%s.json", env)
	p.reportFileName = fmt.Sprintf("reports_%s.json", env)
	p.dbFileName = fmt.Sprintf("pomo_%s.db", env)
	p.statusFileName = fmt.Sprintf("status_%s.json", env)
	p.logFileName = fmt.Sprintf("pomo_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	p.settingsFilePath, err = xdg.ConfigFile(
		filepath.Join(p.appDir, p.settingsFileName),
	)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.appDir)
	if err != nil {
		return err
	}

	// xdg.DataFile only creates the parent of the returned path
	err = os.MkdirAll(dataDir, 0o755)
	if err != nil {
		return err
	}

	p.tasksFilePath = filepath.Join(dataDir, p.tasksFileName)
	p.reportFilePath = filepath.Join(dataDir, p.reportFileName)
	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)
	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)
	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
