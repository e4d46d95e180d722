// Package summary shows the results card after a finished game.
package summary

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/mathdash/mathdash/internal/router"
	"github.com/mathdash/mathdash/internal/screen"
	"github.com/mathdash/mathdash/internal/store"
	"github.com/mathdash/mathdash/internal/ui/layout"
	"github.com/mathdash/mathdash/internal/ui/theme"
)

// SummaryScreen shows one finished game's result.
type SummaryScreen struct {
	result *store.GameResult
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for a finished game.
func New(result *store.GameResult) *SummaryScreen {
	return &SummaryScreen{result: result}
}

func (s *SummaryScreen) Init() tea.Cmd { return nil }

func (s *SummaryScreen) Title() string { return "Well played!" }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to menu"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result

	pct := 0.0
	if r.Questions > 0 {
		pct = float64(r.Correct) / float64(r.Questions) * 100
	}

	var headline string
	switch {
	case pct == 100:
		headline = "Perfect score!"
	case pct >= 80:
		headline = "Great job!"
	case pct >= 50:
		headline = "Nice work!"
	default:
		headline = "Keep practicing!"
	}

	body := fmt.Sprintf("%d / %d correct\n", r.Correct, r.Questions)
	body += layout.ProgressBar(pct, 24) + "\n\n"
	if r.BestStreak >= 2 {
		body += fmt.Sprintf("Best streak: %d\n", r.BestStreak)
	}
	body += fmt.Sprintf("Time: %.0fs", float64(r.DurationMs)/1000)

	card := theme.Card.Render(
		theme.Title.Render(headline) + "\n\n" + theme.Body.Render(body))
	return layout.Center(card, width, height)
}
