// Package tui is the interactive timer: a bubbletea program that forwards
// key presses to the coordinator and renders the timer, the task list and
// the report
package tui

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/pomo/coordinator"
	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/store"
	"github.com/ayoisaiah/pomo/timer"
)

const (
	tickInterval = 500 * time.Millisecond
	padding      = 2
	maxWidth     = 80
	charLimit    = 200
)

// view is the screen shown below the clock.
type view int

const (
	timerView view = iota
	reportView
)

// mode decides where key presses go.
type mode int

const (
	normalMode mode = iota
	addMode
	editMode
	exportMode
	importMode
)

type tickMsg time.Time

// Model is the bubbletea model of the interactive timer.
type Model struct {
	coord      *coordinator.Coordinator
	prompt     func(config.Settings) (config.Settings, error)
	logger     *slog.Logger
	help       help.Model
	input      textinput.Model
	progress   progress.Model
	keys       keymap
	statusPath string
	exportDir  string
	notice     string
	view       view
	mode       mode
	ticking    bool
	debug      bool
}

// Option configures a Model.
type Option func(*Model)

// WithStatusFile makes the model write the timer status to path on every
// tick.
func WithStatusFile(path string) Option {
	return func(m *Model) {
		m.statusPath = path
	}
}

// WithExportDir sets the directory suggested for report exports.
func WithExportDir(dir string) Option {
	return func(m *Model) {
		m.exportDir = dir
	}
}

// WithSettingsPrompt replaces the settings form.
func WithSettingsPrompt(prompt func(config.Settings) (config.Settings, error)) Option {
	return func(m *Model) {
		m.prompt = prompt
	}
}

// WithDebug dumps every message to the log.
func WithDebug(debug bool) Option {
	return func(m *Model) {
		m.debug = debug
	}
}

// WithLogger sets the logger used for debug dumps.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// New returns a Model driving c.
func New(c *coordinator.Coordinator, opts ...Option) *Model {
	input := textinput.New()
	input.CharLimit = charLimit

	m := &Model{
		coord:    c,
		keys:     defaultKeymap,
		help:     help.New(),
		input:    input,
		progress: progress.New(progress.WithoutPercentage()),
		logger:   slog.Default(),
		prompt:   config.Prompt,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.progress.Width = maxWidth - padding*2

	return m
}

// Init starts the tick loop if a resumed timer is already running.
func (m *Model) Init() tea.Cmd {
	return m.ensureTicking()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ensureTicking schedules a tick unless one is already pending or the
// timer does not need one.
func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking || !m.coord.Ticking() {
		return nil
	}

	m.ticking = true

	return tick()
}

func (m *Model) writeStatus() {
	if m.statusPath == "" {
		return
	}

	if err := store.WriteStatus(m.statusPath, m.coord.Status()); err != nil {
		m.logger.Debug("unable to write status file", slog.Any("error", err))
	}
}

// styles returns the styles of the theme configured for the current
// session.
func (m *Model) styles() ui.Styles {
	s := m.coord.Settings()

	theme := s.WorkTheme
	if m.coord.Timer().Session.IsBreak() {
		theme = s.BreakTheme
	}

	p := ui.PaletteFor(theme)
	m.progress.FullColor = string(p.Accent)
	m.progress.EmptyColor = string(p.Muted)

	return ui.NewStyles(p)
}

func (m *Model) defaultExportPath() string {
	if m.exportDir == "" {
		return ""
	}

	name := "pomo-report-" + m.coord.Today().String() + ".json"

	return filepath.Join(m.exportDir, name)
}

// Session is the current session, exposed for the caller's exit message.
func (m *Model) Session() timer.Session {
	return m.coord.Timer().Session
}
