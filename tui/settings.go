package tui

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/pomo/internal/config"
)

// settingsMsg carries the outcome of the settings editor.
type settingsMsg struct {
	err      error
	settings config.Settings
}

// promptCmd runs the settings editor while the program has released the
// terminal.
type promptCmd struct {
	prompt  func(config.Settings) (config.Settings, error)
	current config.Settings
	result  config.Settings
}

func (p *promptCmd) Run() error {
	s, err := p.prompt(p.current)
	if err != nil {
		return err
	}

	p.result = s

	return nil
}

func (p *promptCmd) SetStdin(io.Reader)  {}
func (p *promptCmd) SetStdout(io.Writer) {}
func (p *promptCmd) SetStderr(io.Writer) {}

// editSettings suspends the program and opens the settings form.
func (m *Model) editSettings() tea.Cmd {
	p := &promptCmd{prompt: m.prompt, current: m.coord.Settings()}

	return tea.Exec(p, func(err error) tea.Msg {
		return settingsMsg{settings: p.result, err: err}
	})
}

func (m *Model) handleSettings(msg settingsMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("settings unchanged", slog.Any("error", msg.err))
		m.notice = "Settings unchanged"

		return m, nil
	}

	m.coord.ApplySettings(msg.settings)
	m.notice = "Settings saved"

	return m, m.ensureTicking()
}
