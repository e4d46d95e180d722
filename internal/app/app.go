// Package app wires the TUI together: the root Bubble Tea model, the
// screen router, and the chrome (header, footer, min-size guard).
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathdash/mathdash/internal/analytics"
	"github.com/mathdash/mathdash/internal/config"
	"github.com/mathdash/mathdash/internal/curriculum"
	"github.com/mathdash/mathdash/internal/router"
	"github.com/mathdash/mathdash/internal/screen"
	"github.com/mathdash/mathdash/internal/screens/home"
	"github.com/mathdash/mathdash/internal/screens/play"
	"github.com/mathdash/mathdash/internal/store"
	"github.com/mathdash/mathdash/internal/tracker"
	"github.com/mathdash/mathdash/internal/ui/layout"
)

// Deps are the shared collaborators every screen draws on.
type Deps struct {
	Profile store.Profile
	Store   *store.Store
	Config  config.Config
	Catalog *curriculum.Catalog
	Emitter analytics.Emitter
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	profile store.Profile
	width   int
	height  int
}

// newAppModel creates the root model with the home screen on the stack.
func newAppModel(deps Deps) AppModel {
	if deps.Catalog == nil {
		deps.Catalog = curriculum.Default()
	}
	if deps.Emitter == nil {
		deps.Emitter = analytics.Nop()
	}

	svc := tracker.New(deps.Store.Profiles(), deps.Store.Facts(), deps.Catalog, deps.Config, deps.Emitter)
	playDeps := play.Deps{
		Facts:    deps.Store.Facts(),
		Games:    deps.Store.Games(),
		Tunables: deps.Config,
		Emitter:  deps.Emitter,
	}

	homeScreen := home.New(home.Deps{
		Profile:  deps.Profile,
		Catalog:  deps.Catalog,
		Tracker:  svc,
		PlayDeps: playDeps,
	})
	return AppModel{
		router:  router.New(homeScreen),
		profile: deps.Profile,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.profile.Name, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinter.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
