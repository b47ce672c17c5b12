package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Theme    key.Binding
	Picker   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Language key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Picker, k.Theme, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Picker, k.Next, k.Prev, k.Language},
		{k.Theme, k.Help, k.Quit},
	}
}

var DefaultKeys = KeyMap{
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle theme"),
	),
	Picker: key.NewBinding(
		key.WithKeys("l", "enter"),
		key.WithHelp("l", "language"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next language"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous language"),
	),
	Language: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "pick by number"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
