package console

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"newsview/internal/news"
	"newsview/ui/tui/state"
)

func TestPrint(t *testing.T) {
	for _, code := range news.Languages() {
		t.Run(code, func(t *testing.T) {
			s := state.New()
			s.SelectLanguage(code)

			var buf bytes.Buffer
			Print(&buf, s)
			out := buf.String()

			entry, _ := news.Lookup(code)
			if !strings.Contains(out, entry.Title) {
				t.Errorf("Expected %s title in output", code)
			}
			if !strings.Contains(out, colorCyan+"["+entry.Label+"]"+colorReset) {
				t.Errorf("Expected %s marked as selected", entry.Label)
			}

			// Description survives wrapping word for word
			var body []string
			for _, line := range strings.Split(out, "\n") {
				if strings.Contains(line, "\033") || line == "" {
					continue
				}
				if utf8.RuneCountInString(strings.TrimRight(line, " ")) > wrapWidth {
					t.Errorf("Line exceeds %d runes: %q", wrapWidth, line)
				}
				body = append(body, line)
			}
			if len(body) < 2 {
				t.Errorf("Expected description wrapped over several lines, got %d", len(body))
			}
			// Line breaks may fall after a hyphen, so compare without whitespace.
			got := strings.Join(strings.Fields(strings.Join(body, "")), "")
			want := strings.Join(strings.Fields(entry.Description), "")
			if got != want {
				t.Errorf("Wrapped description does not match the table:\n%q\n%q", got, want)
			}
		})
	}
}

func TestPrintMissingTranslation(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, state.ViewState{Language: "de"})

	if !strings.Contains(buf.String(), news.Placeholder("de").Title) {
		t.Error("Expected placeholder title")
	}
}
