package views

import (
	"newsview/ui/tui/state"

	zone "github.com/lrstanley/bubblezone"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	// Component views, rendered by the Controller
	PickerView string
	ImageView  string
	HelpView   string

	// Zones marks clickable regions; nil disables mouse support.
	Zones *zone.Manager
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.ViewState, props ViewProps) string
}
