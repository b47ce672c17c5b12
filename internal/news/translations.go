package news

import (
	"fmt"

	"golang.org/x/text/language"
)

// Default is the language shown on first render.
const Default = "en"

// Entry is one row of the translation table.
type Entry struct {
	Tag         language.Tag
	Label       string
	Title       string
	Description string
}

// Code returns the short language code used as the table key.
func (e Entry) Code() string {
	return e.Tag.String()
}

// table is ordered; the picker lists languages in this order.
var table = []Entry{
	{
		Tag:         language.English,
		Label:       "English",
		Title:       "Giant wolf returns: scientists succeed in de-extinction!",
		Description: "For the first time in history, scientists have revived the legendary giant wolf! Now roaming nature once again, these colossal canines are set to disrupt ecosystems and captivate the world. Warning: hide your snacks!",
	},
	{
		Tag:         language.French,
		Label:       "Français",
		Title:       "Le loup géant revient : les scientifiques réussissent la dé-extinction !",
		Description: "Pour la première fois au monde, des scientifiques ont ressuscité le légendaire loup géant ! Arpentant à nouveau la nature, ces canidés colossaux vont bouleverser les écosystèmes et captiver le monde entier. Attention : cachez vos goûters !",
	},
	{
		Tag:         language.Spanish,
		Label:       "Español",
		Title:       "¡El lobo gigante regresa: los científicos logran la des-extinción!",
		Description: "Por primera vez en el mundo, los científicos han resucitado al legendario lobo gigante. De nuevo recorriendo la naturaleza, estos colosales caninos están a punto de alterar los ecosistemas y cautivar al mundo. ¡Cuidado con tus bocadillos!",
	},
}

// Languages returns every code in the table, in table order.
func Languages() []string {
	codes := make([]string, 0, len(table))
	for _, e := range table {
		codes = append(codes, e.Code())
	}
	return codes
}

// Entries returns a copy of the table.
func Entries() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// Lookup returns the entry for code.
func Lookup(code string) (Entry, bool) {
	if i := Index(code); i >= 0 {
		return table[i], true
	}
	return Entry{}, false
}

// Index returns the position of code in the table, or -1.
func Index(code string) int {
	for i, e := range table {
		if e.Code() == code {
			return i
		}
	}
	return -1
}

// At returns the entry at table position i.
func At(i int) (Entry, bool) {
	if i < 0 || i >= len(table) {
		return Entry{}, false
	}
	return table[i], true
}

// Len returns the number of languages in the table.
func Len() int {
	return len(table)
}

// Placeholder is rendered instead of undefined content when a lookup misses.
func Placeholder(code string) Entry {
	return Entry{
		Tag:         language.Und,
		Label:       code,
		Title:       fmt.Sprintf("[missing translation: %q]", code),
		Description: fmt.Sprintf("[no description for language %q]", code),
	}
}
