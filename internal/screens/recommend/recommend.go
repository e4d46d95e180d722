// Package recommend lists the tracker's ranked practice suggestions
// with one-tap launch into a game.
package recommend

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/mathdash/mathdash/internal/game"
	"github.com/mathdash/mathdash/internal/router"
	"github.com/mathdash/mathdash/internal/screen"
	"github.com/mathdash/mathdash/internal/screens/play"
	"github.com/mathdash/mathdash/internal/tracker"
	"github.com/mathdash/mathdash/internal/ui/layout"
	"github.com/mathdash/mathdash/internal/ui/theme"
)

type recsLoadedMsg struct {
	recs []tracker.RecommendedSkill
	err  error
}

// RecommendScreen shows ranked practice suggestions.
type RecommendScreen struct {
	svc       *tracker.Service
	profileID string
	playDeps  play.Deps

	recs     []tracker.RecommendedSkill
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*RecommendScreen)(nil)
var _ screen.KeyHintProvider = (*RecommendScreen)(nil)

// New creates a recommendations screen; data loads in Init.
func New(svc *tracker.Service, profileID string, playDeps play.Deps) *RecommendScreen {
	return &RecommendScreen{svc: svc, profileID: profileID, playDeps: playDeps}
}

func (r *RecommendScreen) Init() tea.Cmd {
	return func() tea.Msg {
		recs, err := r.svc.RecommendedFocus(context.Background(), r.profileID, 0)
		return recsLoadedMsg{recs: recs, err: err}
	}
}

func (r *RecommendScreen) Title() string { return "What's Next" }

func (r *RecommendScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Practice this"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *RecommendScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recsLoadedMsg:
		if msg.err != nil {
			r.errMsg = msg.err.Error()
			return r, nil
		}
		r.recs = msg.recs
		r.loaded = true
		return r, nil

	case tea.KeyMsg:
		if r.errMsg != "" {
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
		switch msg.String() {
		case "esc":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if r.selected > 0 {
				r.selected--
			}
		case "down", "j":
			if r.selected < len(r.recs)-1 {
				r.selected++
			}
		case "enter":
			if r.selected < len(r.recs) {
				return r, r.practice(r.recs[r.selected])
			}
		}
	}
	return r, nil
}

func (r *RecommendScreen) practice(rec tracker.RecommendedSkill) tea.Cmd {
	opts := game.Options{
		ProfileID: r.profileID,
		SkillID:   rec.SkillID,
		Generator: rec.Action,
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: play.New(r.playDeps, opts)}
	}
}

func (r *RecommendScreen) View(width, height int) string {
	if r.errMsg != "" {
		return layout.Center(
			theme.Incorrect.Render("Couldn't load suggestions")+"\n\n"+
				theme.Body.Render(r.errMsg),
			width, height)
	}
	if !r.loaded {
		return layout.Center(theme.Hint.Render("Looking at your scores..."), width, height)
	}
	if len(r.recs) == 0 {
		return layout.Center(
			theme.Title.Render("All mastered!")+"\n\n"+
				theme.Body.Render("Every skill at your level is mastered. Amazing!"),
			width, height)
	}

	var list string
	for i, rec := range r.recs {
		line := fmt.Sprintf("%s  %s", rec.Label, reasonText(rec.Reason))
		if i == r.selected {
			list += theme.Selected.Render("  ▸ "+line) + "\n"
		} else {
			list += theme.Unselected.Render("    "+line) + "\n"
		}
	}

	card := theme.Card.Render(
		theme.Subtitle.Render("Your next best practice") + "\n\n" + list)
	return layout.Center(card, width, height)
}

func reasonText(reason string) string {
	switch reason {
	case tracker.ReasonNotStarted:
		return theme.Hint.Render("(new!)")
	case tracker.ReasonNearlyThere:
		return theme.Hint.Render("(nearly there)")
	default:
		return theme.Hint.Render("(needs practice)")
	}
}
