// Package home is the main menu.
package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/mathdash/mathdash/internal/curriculum"
	"github.com/mathdash/mathdash/internal/game"
	"github.com/mathdash/mathdash/internal/router"
	"github.com/mathdash/mathdash/internal/screen"
	"github.com/mathdash/mathdash/internal/screens/picker"
	"github.com/mathdash/mathdash/internal/screens/play"
	"github.com/mathdash/mathdash/internal/screens/progress"
	"github.com/mathdash/mathdash/internal/screens/recommend"
	"github.com/mathdash/mathdash/internal/store"
	"github.com/mathdash/mathdash/internal/tracker"
	"github.com/mathdash/mathdash/internal/ui/components"
	"github.com/mathdash/mathdash/internal/ui/layout"
	"github.com/mathdash/mathdash/internal/ui/theme"
)

// Deps are everything the home menu hands to its child screens.
type Deps struct {
	Profile  store.Profile
	Catalog  *curriculum.Catalog
	Tracker  *tracker.Service
	PlayDeps play.Deps
}

// HomeScreen is the landing menu.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New builds the main menu for a profile.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "Practice", Action: h.pick(game.ModePractice)},
		{Label: "Sprint (60 seconds)", Action: h.pick(game.ModeSprint)},
		{Label: "My Progress", Action: h.showProgress},
		{Label: "What's Next", Action: h.showRecommendations},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd { return nil }

func (h *HomeScreen) Title() string { return "Home" }

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) pick(mode game.Mode) func() tea.Cmd {
	return func() tea.Cmd {
		s := picker.New(h.deps.PlayDeps, h.deps.Catalog, h.deps.Profile, mode)
		return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}
}

func (h *HomeScreen) showProgress() tea.Cmd {
	s := progress.New(h.deps.Tracker, h.deps.Profile.ID)
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) showRecommendations() tea.Cmd {
	s := recommend.New(h.deps.Tracker, h.deps.Profile.ID, h.deps.PlayDeps)
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	greeting := fmt.Sprintf("Hi %s! Ready to dash?", h.deps.Profile.Name)

	sub := "Set a country and year to unlock progress tracking"
	if h.deps.Profile.HasCurriculum() {
		country := curriculum.Country(h.deps.Profile.Country)
		sub = fmt.Sprintf("%s · %s", country.Label(), h.deps.Profile.YearGrade)
	}

	content := theme.Title.Render(greeting) + "\n" +
		theme.Subtitle.Render(sub) + "\n\n" +
		h.menu.View()
	return layout.Center(theme.Card.Render(content), width, height)
}
