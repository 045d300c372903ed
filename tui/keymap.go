package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	toggle     key.Binding
	reset      key.Binding
	finish     key.Binding
	newTask    key.Binding
	complete   key.Binding
	activate   key.Binding
	up         key.Binding
	down       key.Binding
	edit       key.Binding
	remove     key.Binding
	endDay     key.Binding
	clearTasks key.Binding
	switchView key.Binding
	settings   key.Binding
	export     key.Binding
	importRep  key.Binding
	enter      key.Binding
	esc        key.Binding
	help       key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	finish: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "finish"),
	),
	newTask: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new task"),
	),
	complete: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "complete"),
	),
	activate: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "(de)activate first"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	remove: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	endDay: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "end day"),
	),
	clearTasks: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "clear tasks"),
	),
	switchView: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "timer/report"),
	),
	export: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "export report"),
	),
	importRep: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "import report"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	settings: key.NewBinding(
		key.WithKeys(","),
		key.WithHelp(",", "settings"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.toggle, k.finish, k.newTask, k.complete, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.toggle, k.reset, k.finish, k.switchView},
		{k.newTask, k.complete, k.activate, k.edit, k.remove},
		{k.up, k.down, k.endDay, k.clearTasks},
		{k.export, k.importRep, k.settings, k.help, k.quit},
	}
}

// inputHelp is shown while a text field has focus.
func (k keymap) inputHelp() []key.Binding {
	return []key.Binding{k.enter, k.esc}
}
