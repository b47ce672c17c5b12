package views

import (
	"newsview/ui/tui/state"
)

func RenderNews(s state.ViewState, props ViewProps) string {
	v := NewsView{}
	return v.Render(s, props)
}
