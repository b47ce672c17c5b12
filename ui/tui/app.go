package tui

import (
	"fmt"

	"newsview/internal/assets"
	"newsview/internal/config"
	"newsview/internal/news"
	"newsview/ui/tui/components"
	"newsview/ui/tui/state"
	"newsview/ui/tui/styles"
	"newsview/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"
	zone "github.com/lrstanley/bubblezone"
)

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	config   config.Config
	log      logr.Logger
	state    state.ViewState
	keys     KeyMap
	help     help.Model
	picker   *components.LanguagePicker
	image    *components.ImageWidget
	zones    *zone.Manager
	quitting bool
	width    int
	height   int
}

func InitialModel(cfg config.Config, log logr.Logger) MainModel {
	s := state.New()

	m := MainModel{
		config: cfg,
		log:    log,
		state:  s,
		keys:   DefaultKeys,
		help:   help.New(),
		picker: components.NewLanguagePicker(s.Language),
	}

	// The view still renders title and description without the image.
	if img, err := assets.NewsImage(); err != nil {
		log.Error(err, "news image unavailable")
	} else {
		m.image = components.NewImageWidget(img, cfg.ImageWidth)
	}

	return m
}

func (m *MainModel) Init() tea.Cmd {
	if m.config.Mouse && m.zones == nil {
		m.zones = zone.New()
		m.picker.Zones = m.zones
	}
	return nil
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case components.LanguageSelectedMsg:
		m.selectLanguage(msg.Code)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// An open picker owns the keyboard until it closes.
	if m.picker.Open {
		_, cmd := m.picker.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
	case key.Matches(msg, m.keys.Picker):
		m.picker.Toggle()
	case key.Matches(msg, m.keys.Next):
		m.cycleLanguage(1)
	case key.Matches(msg, m.keys.Prev):
		m.cycleLanguage(-1)
	case key.Matches(msg, m.keys.Language):
		if e, ok := news.At(int(msg.Runes[0]-'1')); ok {
			m.selectLanguage(e.Code())
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *MainModel) toggleTheme() {
	m.state.ToggleTheme()
	m.picker.Bundle = styles.For(m.state.DarkMode)
	m.log.V(1).Info("theme toggled", "theme", m.state.Theme().String())
}

func (m *MainModel) selectLanguage(code string) {
	m.state.SelectLanguage(code)
	m.picker.Selected = code
	m.log.V(1).Info("language selected", "code", code)
}

func (m *MainModel) cycleLanguage(delta int) {
	n := news.Len()
	i := (news.Index(m.state.Language) + delta + n) % n
	if e, ok := news.At(i); ok {
		m.selectLanguage(e.Code())
	}
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	if m.image != nil {
		_, right, _, left := styles.ContainerStyle.GetPadding()
		m.image.Update(tea.WindowSizeMsg{Width: msg.Width - left - right, Height: msg.Height})
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.picker.Open {
		for _, code := range m.picker.Options() {
			if m.zones.Get(components.OptionZone(code)).InBounds(msg) {
				return m, m.picker.Choose(code)
			}
		}
	}

	switch {
	case m.zones.Get(components.PickerZone).InBounds(msg):
		m.picker.Toggle()
	case m.zones.Get(views.ToggleZone).InBounds(msg):
		m.toggleTheme()
	}
	return m, nil
}

func (m *MainModel) View() string {
	if m.quitting {
		return ""
	}

	props := views.ViewProps{
		Width:      m.width,
		Height:     m.height,
		PickerView: m.picker.View(),
		HelpView:   m.help.View(m.keys),
		Zones:      m.zones,
	}
	if m.image != nil {
		props.ImageView = m.image.View()
	}
	return views.RenderNews(m.state, props)
}

func Start(cfg config.Config, log logr.Logger) error {
	m := InitialModel(cfg, log)

	opts := []tea.ProgramOption{}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(&m, opts...)
	_, err := p.Run()
	if m.zones != nil {
		m.zones.Close()
	}
	if err != nil {
		return fmt.Errorf("run news view: %w", err)
	}
	return nil
}
