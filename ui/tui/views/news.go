package views

import (
	"newsview/ui/tui/components"
	"newsview/ui/tui/state"
	"newsview/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const ToggleZone = "theme_toggle"

// NewsView is the single screen: header (language picker, theme toggle),
// image, title and description, in that order.
type NewsView struct{}

func (v NewsView) Render(s state.ViewState, props ViewProps) string {
	bundle := styles.For(s.DarkMode)
	entry := s.Entry()

	contentWidth := 0
	if props.Width > 0 {
		_, right, _, left := styles.ContainerStyle.GetPadding()
		contentWidth = props.Width - left - right
	}
	wrap := func(st lipgloss.Style) lipgloss.Style {
		st = bundle.Apply(st)
		if contentWidth > 0 {
			st = st.Width(contentWidth)
		}
		return st
	}

	// 1. Header
	toggle := bundle.Toggle().Render(components.ThemeIcon(s.DarkMode).Render(
		lipgloss.NewStyle().Background(bundle.ToggleBackground),
	))
	toggle = mark(props, ToggleZone, toggle)

	header := bundle.Apply(styles.HeaderStyle).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, props.PickerView, toggle),
	)

	// 2. Image
	sections := []string{header}
	if props.ImageView != "" {
		sections = append(sections, bundle.Apply(styles.ImageStyle).Render(props.ImageView))
	}

	// 3. Text
	sections = append(sections,
		wrap(styles.TitleStyle).Render(entry.Title),
		wrap(styles.DescriptionStyle).Render(entry.Description),
	)

	if props.HelpView != "" {
		sections = append(sections, bundle.Apply(styles.HelpStyle).Foreground(styles.HintColor).Render(props.HelpView))
	}

	content := bundle.Container().Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	if props.Width > 0 && props.Height > 0 {
		content = lipgloss.Place(props.Width, props.Height, lipgloss.Left, lipgloss.Top, content,
			lipgloss.WithWhitespaceBackground(bundle.Background),
		)
	}

	if props.Zones != nil {
		return props.Zones.Scan(content)
	}
	return content
}

func mark(props ViewProps, id, v string) string {
	if props.Zones == nil {
		return v
	}
	return props.Zones.Mark(id, v)
}
