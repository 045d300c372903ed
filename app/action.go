package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/coordinator"
	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/pathutil"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/notify"
	"github.com/ayoisaiah/pomo/store"
	"github.com/ayoisaiah/pomo/timer"
	"github.com/ayoisaiah/pomo/tui"
)

const (
	envNoColor     = "NO_COLOR"
	envPomoNoColor = "POMO_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig builds the configuration for this run: the first-run prompt,
// the settings document and the command-line overrides.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	path := pathutil.SettingsFilePath()

	return config.New(
		config.WithPromptConfig(path),
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	)
}

// defaultAction starts the interactive timer.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	files := newFiles()
	s := cfg.Settings

	next, err := db.NextTaskID()
	if err != nil {
		slog.Warn("unable to load task id counter", slog.Any("error", err))
	}

	opts := []coordinator.Option{
		coordinator.WithPersister(files),
		coordinator.WithTaskCounter(db, next),
		coordinator.WithSegmentLog(db),
		coordinator.WithSnapshots(db),
		coordinator.WithHook(notify.NewHook(s.SessionCmd)),
		coordinator.WithNotifier(notify.NewDesktop(pathutil.Dir(), s.Notify, s.AlertSound)),
		coordinator.WithTasks(files.LoadTasks()),
		coordinator.WithLedger(files.LoadReport()),
		coordinator.WithLogger(slog.Default()),
	}

	if snapshot, ok := resumable(db, cfg.Fresh); ok {
		opts = append(opts, coordinator.WithSnapshot(snapshot))
	}

	c := coordinator.New(s, opts...)

	slog.Info("starting timer", slog.String("settings", s.String()))

	m := tui.New(
		c,
		tui.WithStatusFile(pathutil.StatusFilePath()),
		tui.WithExportDir(xdg.UserDirs.Documents),
		tui.WithDebug(debugEnabled()),
		tui.WithLogger(slog.Default().With(slog.String("component", "tui"))),
	)

	_, err = tea.NewProgram(m).Run()

	c.Shutdown()
	store.RemoveStatus(pathutil.StatusFilePath())

	return err
}

// resumable returns the snapshot saved by the previous run unless fresh is
// set, in which case the snapshot is discarded.
func resumable(db *store.Client, fresh bool) (timer.Snapshot, bool) {
	if fresh {
		if err := db.DeleteSnapshot(); err != nil {
			slog.Warn("unable to discard paused timer", slog.Any("error", err))
		}

		return timer.Snapshot{}, false
	}

	snapshot, ok, err := db.Snapshot()
	if err != nil {
		slog.Warn("unable to load paused timer", slog.Any("error", err))
		return timer.Snapshot{}, false
	}

	return snapshot, ok
}

// settingsAction edits the settings in a form and saves them on submit.
func settingsAction(_ *cli.Context) error {
	path := pathutil.SettingsFilePath()

	current, err := config.Load(path)
	if err != nil {
		slog.Info("using default settings", slog.Any("error", err))
	}

	s, err := config.Prompt(current)
	if err != nil {
		return err
	}

	if err := newFiles().SaveSettings(s); err != nil {
		return err
	}

	pterm.Success.Printfln("Settings saved to %s", path)

	return nil
}

// editConfigAction handles the edit-config command which opens the settings
// file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	path := pathutil.SettingsFilePath()

	// creates the document with the defaults if it is missing
	if _, err := config.New(config.WithViperConfig(path)); err != nil {
		return err
	}

	cmd := exec.Command(editor, path)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// statusAction prints the status of a running timer. Nothing is printed if
// pomo is not running.
func statusAction(_ *cli.Context) error {
	running, err := store.IsRunning(pathutil.DBFilePath())
	if err != nil || !running {
		return err
	}

	s, ok, err := store.ReadStatus(pathutil.StatusFilePath())
	if err != nil {
		return errStatus.Wrap(err)
	}

	if !ok {
		return nil
	}

	pterm.Println(statusLine(s, time.Now()))

	return nil
}

// statusLine formats s as of now.
func statusLine(s store.Status, now time.Time) string {
	label := fmt.Sprintf("[%s]", s.Session)
	if s.Session == timer.Work {
		label = fmt.Sprintf("[%s %d/%d]", s.Session, s.WorkCount+1, s.LongBreakAfter)
	}

	switch s.State {
	case "running":
		remaining := s.Remaining
		if !s.Deadline.IsZero() {
			remaining = max(s.Deadline.Sub(now), 0)
		}

		return fmt.Sprintf("%s: %s", label, timeutil.Countdown(remaining))
	case "overtime":
		return fmt.Sprintf("%s: +%s", label, timeutil.Countdown(s.Overtime))
	default:
		return fmt.Sprintf("%s paused: %s", label, timeutil.Countdown(s.Remaining))
	}
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if POMO_NO_COLOR is set
	if _, exists := os.LookupEnv(envPomoNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	ui.DetectBackground()

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	setupLogger(pathutil.LogFilePath())

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting pomo")

	closeLogger()

	return nil
}
