package components

import (
	"strings"

	"newsview/internal/news"
	"newsview/ui/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const PickerZone = "picker"

// OptionZone is the click zone of one open option.
func OptionZone(code string) string {
	return "lang_" + code
}

// LanguageSelectedMsg is sent when an option is confirmed.
type LanguageSelectedMsg struct {
	Code string
}

type PickerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Close   key.Binding
}

var DefaultPickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter", "l", " "),
		key.WithHelp("enter", "choose"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

// LanguagePicker is a dropdown over the translation table. Its options are
// always news.Languages(), so every choice has a table entry.
type LanguagePicker struct {
	Keys     PickerKeyMap
	Open     bool
	Cursor   int
	Selected string
	Bundle   styles.Bundle
	Zones    *zone.Manager
	options  []string
}

func NewLanguagePicker(selected string) *LanguagePicker {
	return &LanguagePicker{
		Keys:     DefaultPickerKeys,
		Selected: selected,
		Bundle:   styles.Light,
		options:  news.Languages(),
	}
}

func (p *LanguagePicker) Init() tea.Cmd {
	return nil
}

// Options returns the selectable codes.
func (p *LanguagePicker) Options() []string {
	out := make([]string, len(p.options))
	copy(out, p.options)
	return out
}

// Toggle opens the list with the cursor on the current selection, or closes it.
func (p *LanguagePicker) Toggle() {
	if p.Open {
		p.Open = false
		return
	}
	p.Open = true
	p.Cursor = 0
	for i, code := range p.options {
		if code == p.Selected {
			p.Cursor = i
		}
	}
}

// Move shifts the cursor by delta, clamped to the option list.
func (p *LanguagePicker) Move(delta int) {
	p.Cursor += delta
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor > len(p.options)-1 {
		p.Cursor = len(p.options) - 1
	}
}

// Choice returns the code under the cursor.
func (p *LanguagePicker) Choice() string {
	return p.options[p.Cursor]
}

// Choose selects code and closes the list.
func (p *LanguagePicker) Choose(code string) tea.Cmd {
	p.Selected = code
	p.Open = false
	return func() tea.Msg {
		return LanguageSelectedMsg{Code: code}
	}
}

// Update handles keys while the list is open. A closed picker ignores input.
func (p *LanguagePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !p.Open {
		return p, nil
	}

	switch {
	case key.Matches(km, p.Keys.Up):
		p.Move(-1)
	case key.Matches(km, p.Keys.Down):
		p.Move(1)
	case key.Matches(km, p.Keys.Confirm):
		return p, p.Choose(p.Choice())
	case key.Matches(km, p.Keys.Close):
		p.Open = false
	}
	return p, nil
}

func (p *LanguagePicker) View() string {
	label := p.Selected
	if e, ok := news.Lookup(p.Selected); ok {
		label = e.Label
	}

	arrow := lipgloss.NewStyle().
		Background(styles.PickerBackground).
		Foreground(p.Bundle.DropdownIcon).
		Render("▾")

	inner := styles.PickerStyle.GetWidth() - 2
	pad := inner - lipgloss.Width(label) - 1
	if pad < 1 {
		pad = 1
	}
	closed := styles.PickerStyle.Render(label + strings.Repeat(" ", pad) + arrow)
	closed = p.mark(PickerZone, closed)

	if !p.Open {
		return closed
	}

	var rows []string
	for i, code := range p.options {
		e, _ := news.Lookup(code)
		style := lipgloss.NewStyle().
			Background(styles.PickerBackground).
			Foreground(styles.PickerText).
			Width(inner)
		prefix := "  "
		if i == p.Cursor {
			style = style.Bold(true).Background(styles.PickerHighlight)
			prefix = "› "
		}
		rows = append(rows, p.mark(OptionZone(code), style.Render(prefix+e.Label)))
	}

	list := styles.PickerStyle.
		UnsetWidth().
		BorderTop(false).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	return lipgloss.JoinVertical(lipgloss.Left, closed, list)
}

func (p *LanguagePicker) mark(id, v string) string {
	if p.Zones == nil {
		return v
	}
	return p.Zones.Mark(id, v)
}
