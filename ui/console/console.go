package console

import (
	"fmt"
	"io"
	"strings"

	"newsview/internal/news"
	"newsview/ui/tui/state"

	"github.com/charmbracelet/x/ansi"
)

const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorDim   = "\033[2m"
	colorCyan  = "\033[36m"
)

const wrapWidth = 72

// Print renders the news item once, without the interactive controls.
func Print(w io.Writer, s state.ViewState) {
	entry := s.Entry()

	// Language line, current selection marked
	var langs []string
	for _, code := range news.Languages() {
		e, _ := news.Lookup(code)
		if code == s.Language {
			langs = append(langs, fmt.Sprintf("%s[%s]%s", colorCyan, e.Label, colorReset))
		} else {
			langs = append(langs, fmt.Sprintf("%s%s%s", colorDim, e.Label, colorReset))
		}
	}
	fmt.Fprintf(w, "%s\n\n", strings.Join(langs, " "))

	fmt.Fprintf(w, "%s%s%s\n\n", colorBold, entry.Title, colorReset)
	fmt.Fprintln(w, ansi.Wordwrap(entry.Description, wrapWidth, ""))
}
