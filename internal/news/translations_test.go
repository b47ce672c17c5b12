package news

import (
	"testing"

	"golang.org/x/text/language"
)

func TestLanguagesMatchTable(t *testing.T) {
	codes := Languages()
	want := []string{"en", "fr", "es"}

	if len(codes) != len(want) {
		t.Fatalf("Expected %d languages, got %d (%v)", len(want), len(codes), codes)
	}
	seen := map[string]bool{}
	for i, code := range codes {
		if code != want[i] {
			t.Errorf("Languages()[%d] = %q; want %q", i, code, want[i])
		}
		if seen[code] {
			t.Errorf("Duplicate language %q", code)
		}
		seen[code] = true
		if _, ok := Lookup(code); !ok {
			t.Errorf("Lookup(%q) missed for a listed language", code)
		}
	}

	// Stable across calls
	again := Languages()
	for i := range codes {
		if codes[i] != again[i] {
			t.Errorf("Languages() order changed at %d: %q vs %q", i, codes[i], again[i])
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		code  string
		label string
		title string
	}{
		{"en", "English", "Giant wolf returns: scientists succeed in de-extinction!"},
		{"fr", "Français", "Le loup géant revient : les scientifiques réussissent la dé-extinction !"},
		{"es", "Español", "¡El lobo gigante regresa: los científicos logran la des-extinción!"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			e, ok := Lookup(tt.code)
			if !ok {
				t.Fatalf("Lookup(%q) returned ok=false", tt.code)
			}
			if e.Label != tt.label {
				t.Errorf("Label = %q; want %q", e.Label, tt.label)
			}
			if e.Title != tt.title {
				t.Errorf("Title = %q; want %q", e.Title, tt.title)
			}
			if e.Description == "" {
				t.Error("Description should not be empty")
			}
		})
	}

	if _, ok := Lookup("de"); ok {
		t.Error("Lookup(\"de\") should miss")
	}
}

func TestIndexAndAt(t *testing.T) {
	if Index(Default) != 0 {
		t.Errorf("Expected default language at index 0, got %d", Index(Default))
	}
	if Index("xx") != -1 {
		t.Errorf("Expected -1 for unknown code, got %d", Index("xx"))
	}
	e, ok := At(2)
	if !ok || e.Code() != "es" {
		t.Errorf("At(2) = %q, %v; want es, true", e.Code(), ok)
	}
	if _, ok := At(Len()); ok {
		t.Error("At(Len()) should be out of range")
	}
}

func TestEntriesIsCopy(t *testing.T) {
	entries := Entries()
	entries[0].Title = "changed"

	e, _ := Lookup("en")
	if e.Title == "changed" {
		t.Error("Entries() must not expose the table")
	}
}

func TestPlaceholder(t *testing.T) {
	p := Placeholder("de")
	if p.Title != `[missing translation: "de"]` {
		t.Errorf("Unexpected placeholder title %q", p.Title)
	}
	if p.Description == "" {
		t.Error("Placeholder description should be visible")
	}
}

func TestCodesAreCanonicalTags(t *testing.T) {
	for _, e := range Entries() {
		tag, err := language.Parse(e.Code())
		if err != nil {
			t.Errorf("Code %q does not parse: %v", e.Code(), err)
			continue
		}
		if tag.String() != e.Tag.String() {
			t.Errorf("Parse(%q) = %v; want %v", e.Code(), tag, e.Tag)
		}
		if base, conf := tag.Base(); conf != language.Exact || base.String() != e.Code() {
			t.Errorf("Code %q is not a bare base language (base %v, %v)", e.Code(), base, conf)
		}
	}
}
