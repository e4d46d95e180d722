// Package picker lets the player choose which skill to play. A placed
// profile sees its level's skills first; everyone can browse the whole
// catalog.
package picker

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/mathdash/mathdash/internal/curriculum"
	"github.com/mathdash/mathdash/internal/game"
	"github.com/mathdash/mathdash/internal/router"
	"github.com/mathdash/mathdash/internal/screen"
	"github.com/mathdash/mathdash/internal/screens/play"
	"github.com/mathdash/mathdash/internal/store"
	"github.com/mathdash/mathdash/internal/tracker"
	"github.com/mathdash/mathdash/internal/ui/layout"
	"github.com/mathdash/mathdash/internal/ui/theme"
)

// entry is one selectable skill row.
type entry struct {
	skill curriculum.Skill
	core  bool
}

// PickerScreen picks a skill and launches a game with it.
type PickerScreen struct {
	playDeps play.Deps
	profile  store.Profile
	mode     game.Mode

	entries    []entry
	selected   int
	answerMode game.AnswerMode
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New builds a skill picker for a profile. The skill list is scoped to
// the profile's level when it has a curriculum placement.
func New(playDeps play.Deps, catalog *curriculum.Catalog, profile store.Profile, mode game.Mode) *PickerScreen {
	if catalog == nil {
		catalog = curriculum.Default()
	}

	p := &PickerScreen{playDeps: playDeps, profile: profile, mode: mode, answerMode: game.AnswerTyped}

	coreSet := make(map[string]bool)
	if profile.HasCurriculum() {
		core, ext, _, ok := catalog.Level(curriculum.Country(profile.Country), profile.YearGrade)
		if ok {
			for _, id := range core {
				coreSet[id] = true
			}
			for _, id := range append(core, ext...) {
				if s, err := catalog.Skill(id); err == nil {
					p.entries = append(p.entries, entry{skill: s, core: coreSet[id]})
				}
			}
			return p
		}
	}

	for _, s := range catalog.Skills() {
		p.entries = append(p.entries, entry{skill: s, core: true})
	}
	return p
}

func (p *PickerScreen) Init() tea.Cmd { return nil }

func (p *PickerScreen) Title() string {
	if p.mode == game.ModeSprint {
		return "Sprint — pick a skill"
	}
	return "Practice — pick a skill"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Tab", Description: "Typing / choices"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "esc":
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.selected < len(p.entries)-1 {
			p.selected++
		}
	case "tab":
		if p.answerMode == game.AnswerTyped {
			p.answerMode = game.AnswerChoices
		} else {
			p.answerMode = game.AnswerTyped
		}
	case "enter":
		if p.selected < len(p.entries) {
			return p, p.launch(p.entries[p.selected].skill)
		}
	}
	return p, nil
}

func (p *PickerScreen) launch(s curriculum.Skill) tea.Cmd {
	opts := game.Options{
		ProfileID:  p.profile.ID,
		SkillID:    s.ID,
		Mode:       p.mode,
		AnswerMode: p.answerMode,
		Generator:  tracker.PracticeConfig(s),
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: play.New(p.playDeps, opts)}
	}
}

func (p *PickerScreen) View(width, height int) string {
	var list string
	for i, e := range p.entries {
		line := e.skill.Label
		if !e.core {
			line += theme.Hint.Render("  (stretch)")
		}
		if i == p.selected {
			list += theme.Selected.Render("  ▸ "+line) + "\n"
		} else {
			list += theme.Unselected.Render("    "+line) + "\n"
		}
	}

	modeLine := "Answers: typing"
	if p.answerMode == game.AnswerChoices {
		modeLine = "Answers: multiple choice"
	}

	card := theme.Card.Render(
		theme.Subtitle.Render(fmt.Sprintf("What do you want to play? (%d skills)", len(p.entries))) +
			"\n\n" + list + "\n" + theme.Hint.Render(modeLine))
	return layout.Center(card, width, height)
}
