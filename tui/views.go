package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ayoisaiah/pomo/coordinator"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/stats"
	"github.com/ayoisaiah/pomo/timer"
)

const recentDays = 7

func (m *Model) View() string {
	st := m.styles()
	v := m.coord.Timer()

	var s strings.Builder

	s.WriteString(m.headerView(st, v))
	s.WriteString("\n\n")
	s.WriteString(st.Clock.Render(clockText(v)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(progressPercent(v)))
	s.WriteString("\n\n")

	switch m.view {
	case timerView:
		s.WriteString(m.tasksView(st))
	case reportView:
		s.WriteString(m.reportView(st))
	}

	if m.mode != normalMode {
		s.WriteString("\n\n" + m.input.View())
	}

	if m.notice != "" {
		s.WriteString("\n\n" + st.Warning.Render(m.notice))
	}

	s.WriteString("\n\n" + m.helpView())

	return st.Base.Render(s.String())
}

func (m *Model) headerView(st ui.Styles, v coordinator.TimerView) string {
	var s strings.Builder

	s.WriteString(st.Title.Render(v.Session.String()))

	if v.Session == timer.Work {
		s.WriteString(st.Help.Render(
			fmt.Sprintf(" (%d/%d)", v.WorkCount+1, v.LongBreakAfter),
		))
	}

	s.WriteString(" ")

	switch state := v.State.(type) {
	case timer.Running:
		s.WriteString(st.Help.Render("until " + state.Deadline.Format(m.timeFormat())))
	case timer.Overtime:
		s.WriteString(st.Warning.Render("[Overtime]"))
	case timer.Idle:
		s.WriteString(st.Help.Render("[Paused]"))
	}

	return s.String()
}

func (m *Model) timeFormat() string {
	if m.coord.Settings().TwentyFourHour {
		return "15:04"
	}

	return "03:04 PM"
}

// clockText shows the time left, or the overtime once the countdown has
// run out.
func clockText(v coordinator.TimerView) string {
	if v.Remaining == 0 && v.Overtime > 0 {
		return "+" + timeutil.Countdown(v.Overtime)
	}

	return timeutil.Countdown(v.Remaining)
}

func progressPercent(v coordinator.TimerView) float64 {
	if v.FullLength <= 0 {
		return 0
	}

	return 1 - float64(v.Remaining)/float64(v.FullLength)
}

func (m *Model) tasksView(st ui.Styles) string {
	tasks := m.coord.Tasks()
	if len(tasks) == 0 {
		return st.Help.Render("No tasks yet. Press n to add one.")
	}

	active, hasActive := m.coord.Active()
	editing, isEditing := m.coord.Editing()

	lines := make([]string, 0, len(tasks))

	for _, t := range tasks {
		desc := t.Desc
		if isEditing && editing.ID == t.ID {
			desc = editing.Text
		}

		line := fmt.Sprintf("%s  %s", desc, timeutil.Clock(t.Spent))

		switch {
		case t.Done:
			lines = append(lines, st.Done.Render("✓ "+line))
		case hasActive && active.ID == t.ID:
			lines = append(lines, st.Active.Render("▸ "+line))
		default:
			lines = append(lines, st.Task.Render("  "+line))
		}
	}

	return strings.Join(lines, "\n")
}

func (m *Model) reportView(st ui.Styles) string {
	summary := m.coord.Report()

	var s strings.Builder

	s.WriteString(st.Title.Render("Report"))
	s.WriteString("\n\n")
	s.WriteString(st.Task.Render(fmt.Sprintf(
		"Current streak: %d  Longest streak: %d",
		summary.CurrentStreak,
		summary.LongestStreak,
	)))
	s.WriteString("\n")
	s.WriteString(st.Task.Render("Focused today: " + stats.Humanize(summary.FocusedToday)))
	s.WriteString("\n")
	s.WriteString(st.Task.Render("Longest focus: " + stats.Humanize(summary.LongestFocused)))

	history := m.coord.History()
	if len(history) == 0 {
		return s.String()
	}

	s.WriteString("\n\n")

	for _, d := range history[max(len(history)-recentDays, 0):] {
		s.WriteString(st.Help.Render(fmt.Sprintf(
			"%s  %s  %s",
			d.Date,
			timeutil.Clock(d.Focused),
			tasksLabel(d.Completed),
		)))
		s.WriteString("\n")
	}

	return strings.TrimRight(s.String(), "\n")
}

func (m *Model) helpView() string {
	if m.mode != normalMode {
		return m.help.ShortHelpView(m.keys.inputHelp())
	}

	return m.help.View(m.keys)
}

func tasksLabel(n int) string {
	if n == 1 {
		return "1 task"
	}

	return strconv.Itoa(n) + " tasks"
}

func endDayNotice(focused time.Duration, completed int) string {
	return fmt.Sprintf(
		"Day ended: %s completed in %s",
		tasksLabel(completed),
		stats.Humanize(focused),
	)
}
