package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/pomo/task"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok && m.debug {
		m.logger.Info(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick(time.Time(msg))

	case tea.KeyMsg:
		if m.mode != normalMode {
			return m.handleInputKey(msg)
		}

		return m.handleKeyPress(msg)

	case settingsMsg:
		return m.handleSettings(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return m, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	return m, nil
}

func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.coord.Tick(now)
	m.writeStatus()

	if !m.coord.Ticking() {
		m.ticking = false
		return m, nil
	}

	return m, tick()
}

//nolint:gocyclo // one case per key binding
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.toggle):
		m.coord.Toggle()
		m.writeStatus()

	case key.Matches(msg, m.keys.reset):
		m.coord.Reset()

	case key.Matches(msg, m.keys.finish):
		m.coord.Finish()
		m.writeStatus()

	case key.Matches(msg, m.keys.newTask):
		return m, m.openInput(addMode, m.coord.Input(), "What are you working on?")

	case key.Matches(msg, m.keys.complete):
		m.coord.CompleteActive()

	case key.Matches(msg, m.keys.activate):
		m.coord.Activate()

	case key.Matches(msg, m.keys.up):
		m.coord.MoveActive(task.Up)

	case key.Matches(msg, m.keys.down):
		m.coord.MoveActive(task.Down)

	case key.Matches(msg, m.keys.edit):
		if m.coord.EditActive() {
			e, _ := m.coord.Editing()
			return m, m.openInput(editMode, e.Text, "")
		}

	case key.Matches(msg, m.keys.remove):
		m.coord.DeleteActive()

	case key.Matches(msg, m.keys.endDay):
		focused, completed := m.coord.EndDay()
		if completed > 0 {
			m.notice = endDayNotice(focused, completed)
		}

	case key.Matches(msg, m.keys.clearTasks):
		m.coord.ClearTasks()

	case key.Matches(msg, m.keys.settings):
		return m, m.editSettings()

	case key.Matches(msg, m.keys.switchView):
		if m.view == timerView {
			m.view = reportView
		} else {
			m.view = timerView
		}

	case key.Matches(msg, m.keys.export):
		return m, m.openInput(exportMode, m.defaultExportPath(), "Export report to")

	case key.Matches(msg, m.keys.importRep):
		return m, m.openInput(importMode, "", "Import report from")

	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, m.ensureTicking()
}

func (m *Model) openInput(md mode, value, placeholder string) tea.Cmd {
	m.mode = md
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()

	return m.input.Focus()
}

func (m *Model) closeInput() {
	m.mode = normalMode
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.esc):
		if m.mode == editMode {
			m.coord.CancelEdit()
		}

		m.closeInput()

		return m, m.ensureTicking()

	case key.Matches(msg, m.keys.enter):
		m.submitInput()
		m.closeInput()

		return m, m.ensureTicking()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	switch m.mode {
	case addMode:
		m.coord.SetInput(m.input.Value())
	case editMode:
		m.coord.EditInput(m.input.Value())
	case normalMode, exportMode, importMode:
	}

	return m, cmd
}

func (m *Model) submitInput() {
	value := m.input.Value()
	path := strings.TrimSpace(value)

	switch m.mode {
	case addMode:
		m.coord.SetInput(value)
		m.coord.Add()

	case editMode:
		m.coord.EditInput(value)
		m.coord.SaveEdit()

	case exportMode:
		if err := m.coord.ExportReport(path); err != nil {
			m.notice = "Export failed: " + err.Error()
		} else if path != "" {
			m.notice = "Report exported to " + path
		}

	case importMode:
		if err := m.coord.ImportReport(path); err != nil {
			m.notice = "Import failed: " + err.Error()
		} else if path != "" {
			m.notice = "Report imported from " + path
		}

	case normalMode:
	}
}
