package state

import "newsview/internal/news"

type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// ViewState holds the two pieces of local state owned by the news view.
type ViewState struct {
	Language string
	DarkMode bool
}

// New returns the state shown on first render: English, light theme.
func New() ViewState {
	return ViewState{Language: news.Default}
}

// SelectLanguage replaces the selected language. Callers only pass codes
// taken from news.Languages().
func (s *ViewState) SelectLanguage(code string) {
	s.Language = code
}

// ToggleTheme flips between light and dark.
func (s *ViewState) ToggleTheme() {
	s.DarkMode = !s.DarkMode
}

func (s ViewState) Theme() Theme {
	if s.DarkMode {
		return ThemeDark
	}
	return ThemeLight
}

// Entry resolves the text pair for the current language. A miss yields the
// visible placeholder rather than empty content.
func (s ViewState) Entry() news.Entry {
	if e, ok := news.Lookup(s.Language); ok {
		return e
	}
	return news.Placeholder(s.Language)
}
