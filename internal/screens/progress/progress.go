// Package progress renders the curriculum progress snapshot: overall
// status, and per-skill proficiency for the profile's level.
package progress

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathdash/mathdash/internal/mastery"
	"github.com/mathdash/mathdash/internal/router"
	"github.com/mathdash/mathdash/internal/screen"
	"github.com/mathdash/mathdash/internal/tracker"
	"github.com/mathdash/mathdash/internal/ui/layout"
	"github.com/mathdash/mathdash/internal/ui/theme"
)

type progressLoadedMsg struct {
	progress *tracker.CurriculumProgress
	err      error
}

// ProgressScreen shows a profile's curriculum progress.
type ProgressScreen struct {
	svc       *tracker.Service
	profileID string

	progress *tracker.CurriculumProgress
	errMsg   string
	scroll   int
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a progress screen; data loads in Init.
func New(svc *tracker.Service, profileID string) *ProgressScreen {
	return &ProgressScreen{svc: svc, profileID: profileID}
}

func (p *ProgressScreen) Init() tea.Cmd {
	return func() tea.Msg {
		progress, err := p.svc.CurriculumProgress(context.Background(), p.profileID)
		return progressLoadedMsg{progress: progress, err: err}
	}
}

func (p *ProgressScreen) Title() string { return "My Progress" }

func (p *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return p, nil
		}
		p.progress = msg.progress
		p.errMsg = ""
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if p.scroll > 0 {
				p.scroll--
			}
		case "down", "j":
			p.scroll++
		case "r", "R":
			return p, p.Init()
		default:
			if p.errMsg != "" {
				return p, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}
	return p, nil
}

func (p *ProgressScreen) View(width, height int) string {
	if p.errMsg != "" {
		return layout.Center(
			theme.Incorrect.Render("Couldn't load your progress")+"\n\n"+
				theme.Body.Render(p.errMsg)+"\n\n"+
				theme.Hint.Render("Press R to retry or any key to go back"),
			width, height)
	}
	if p.progress == nil {
		return layout.Center(theme.Hint.Render("Adding up your scores..."), width, height)
	}
	if p.progress.OverallStatus == nil {
		return layout.Center(
			theme.Title.Render("No curriculum set yet")+"\n\n"+
				theme.Body.Render("Set your country and year with:\n  mathdash profile set")+"\n",
			width, height)
	}

	lines := p.renderLines(width)

	// Simple scroll window over the rendered lines.
	if p.scroll > len(lines)-1 {
		p.scroll = len(lines) - 1
	}
	visible := lines[p.scroll:]
	if len(visible) > height {
		visible = visible[:height]
	}
	return strings.Join(visible, "\n")
}

func (p *ProgressScreen) renderLines(width int) []string {
	pr := p.progress
	var lines []string

	status := *pr.OverallStatus
	head := fmt.Sprintf("%s — %s  ·  %s", pr.CountryLabel, pr.YearGradeLabel, status.Label())
	lines = append(lines, "  "+theme.Title.Render(head))

	if pr.OverallPercentage != nil {
		lines = append(lines, fmt.Sprintf("  %s %.0f%%",
			layout.ProgressBar(*pr.OverallPercentage, 30), *pr.OverallPercentage))
	}
	lines = append(lines, "")

	lines = append(lines, "  "+theme.Subtitle.Render("Core skills"))
	lines = append(lines, skillLines(pr.CoreSkillProgress, width)...)

	if len(pr.ExtensionSkillProgress) > 0 {
		lines = append(lines, "")
		lines = append(lines, "  "+theme.Subtitle.Render("Extension skills"))
		lines = append(lines, skillLines(pr.ExtensionSkillProgress, width)...)
	}
	return lines
}

func skillLines(skills []mastery.SkillProgress, width int) []string {
	var lines []string
	for _, sp := range skills {
		tier := tierStyle(sp.Proficiency).Render(sp.Proficiency.Label())
		bar := layout.ProgressBar(sp.Coverage, 16)
		line := fmt.Sprintf("  %-28s %s  %s", sp.Label, bar, tier)
		if sp.TotalAttempts > 0 {
			line += theme.Hint.Render(fmt.Sprintf("  %.0f%% right", sp.Accuracy))
		}
		lines = append(lines, line)
	}
	return lines
}

func tierStyle(p mastery.Proficiency) lipgloss.Style {
	switch p {
	case mastery.Developing:
		return theme.TierDeveloping
	case mastery.Proficient:
		return theme.TierProficient
	case mastery.Mastered:
		return theme.TierMastered
	default:
		return theme.TierNotStarted
	}
}
