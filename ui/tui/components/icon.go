package components

import "github.com/charmbracelet/lipgloss"

const (
	IconSun  = "white-balance-sunny"
	IconMoon = "moon-waning-crescent"
)

var glyphs = map[string]string{
	IconSun:  "☀",
	IconMoon: "☾",
}

// Glyph returns the character drawn for a named icon, or "?" if unknown.
func Glyph(name string) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return "?"
}

// Icon is a named glyph drawn in a single color, centered in Size cells.
type Icon struct {
	Name  string
	Size  int
	Color lipgloss.Color
}

const themeIconSize = 3

// ThemeIcon is the icon shown on the theme toggle.
func ThemeIcon(dark bool) Icon {
	if dark {
		return Icon{Name: IconMoon, Size: themeIconSize, Color: lipgloss.Color("#FFD700")}
	}
	return Icon{Name: IconSun, Size: themeIconSize, Color: lipgloss.Color("#FFA500")}
}

// Render draws the icon on top of base.
func (i Icon) Render(base lipgloss.Style) string {
	st := base.Foreground(i.Color)
	if i.Size > 0 {
		st = st.Width(i.Size).Align(lipgloss.Center)
	}
	return st.Render(Glyph(i.Name))
}
