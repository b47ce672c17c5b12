package styles

import "github.com/charmbracelet/lipgloss"

// Bundle is the set of theme overrides. Only colors live here; layout is
// shared by both themes.
type Bundle struct {
	Background       lipgloss.Color
	Text             lipgloss.Color
	ToggleBackground lipgloss.Color
	ToggleBorder     lipgloss.Color
	DropdownIcon     lipgloss.Color
}

var (
	Light = Bundle{
		Background:       lipgloss.Color("#FFFFFF"),
		Text:             lipgloss.Color("#000000"),
		ToggleBackground: lipgloss.Color("#fffbe6"),
		ToggleBorder:     lipgloss.Color("#ffe58f"),
		DropdownIcon:     lipgloss.Color("#000"),
	}

	Dark = Bundle{
		Background:       lipgloss.Color("#121212"),
		Text:             lipgloss.Color("#FFFFFF"),
		ToggleBackground: lipgloss.Color("#232323"),
		ToggleBorder:     lipgloss.Color("#444"),
		DropdownIcon:     lipgloss.Color("#fff"),
	}
)

// For selects the bundle for the theme flag.
func For(dark bool) Bundle {
	if dark {
		return Dark
	}
	return Light
}

// Container returns the screen container with the bundle's background.
func (b Bundle) Container() lipgloss.Style {
	return b.Apply(ContainerStyle)
}

// Apply overlays the bundle's colors onto base.
func (b Bundle) Apply(base lipgloss.Style) lipgloss.Style {
	return base.Background(b.Background).Foreground(b.Text)
}

// Toggle returns the theme toggle button style.
func (b Bundle) Toggle() lipgloss.Style {
	return ToggleStyle.
		Background(b.ToggleBackground).
		BorderBackground(b.Background).
		BorderForeground(b.ToggleBorder)
}

// Base layout, shared by both themes.
var (
	PickerBackground = lipgloss.Color("#f5f5f5")
	PickerBorder     = lipgloss.Color("#ccc")
	PickerText       = lipgloss.Color("#000000")
	PickerHighlight  = lipgloss.Color("#ffe58f")
	HintColor        = lipgloss.Color("#888")

	ContainerStyle = lipgloss.NewStyle().
			Padding(2, 3, 1, 3)

	HeaderStyle = lipgloss.NewStyle().
			MarginBottom(1)

	PickerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PickerBorder).
			Background(PickerBackground).
			Foreground(PickerText).
			Padding(0, 1).
			Width(17)

	ToggleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			MarginLeft(2)

	ImageStyle = lipgloss.NewStyle().
			MarginBottom(1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	DescriptionStyle = lipgloss.NewStyle()

	HelpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(HintColor)
)
