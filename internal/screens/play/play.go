// Package play is the in-game screen: it runs a session, grades
// answers, and shows per-question feedback.
package play

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mathdash/mathdash/internal/analytics"
	"github.com/mathdash/mathdash/internal/config"
	"github.com/mathdash/mathdash/internal/game"
	"github.com/mathdash/mathdash/internal/quizgen"
	"github.com/mathdash/mathdash/internal/router"
	"github.com/mathdash/mathdash/internal/screen"
	"github.com/mathdash/mathdash/internal/screens/summary"
	"github.com/mathdash/mathdash/internal/ui/components"
	"github.com/mathdash/mathdash/internal/ui/layout"
)

// Deps are the collaborators a game needs.
type Deps struct {
	Facts    game.FactWriter
	Games    game.GameSaver
	Tunables config.Config
	Emitter  analytics.Emitter
}

type sessionReadyMsg struct {
	session *game.Session
	err     error
}

type timerTickMsg time.Time

// PlayScreen implements screen.Screen for an active game.
type PlayScreen struct {
	deps Deps
	opts game.Options

	session  *game.Session
	input    components.AnswerInput
	choice   components.MultiChoice
	feedback *game.Outcome
	quitting bool
	errMsg   string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a game screen; the session starts in Init.
func New(deps Deps, opts game.Options) *PlayScreen {
	return &PlayScreen{
		deps:  deps,
		opts:  opts,
		input: components.NewAnswerInput("Your answer..."),
	}
}

func (p *PlayScreen) Init() tea.Cmd {
	return tea.Batch(p.startSession(), p.input.Init(), tickCmd())
}

func (p *PlayScreen) Title() string {
	if p.opts.Mode == game.ModeSprint {
		return "Sprint"
	}
	return "Practice"
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	switch {
	case p.quitting:
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "N", Description: "Keep going"},
		}
	case p.feedback != nil:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case p.opts.AnswerMode == game.AnswerChoices:
		return []layout.KeyHint{
			{Key: "1-6", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (p *PlayScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		s, err := game.New(p.opts, quizgen.New(), p.deps.Facts, p.deps.Games, p.deps.Tunables, p.deps.Emitter)
		if err != nil {
			return sessionReadyMsg{err: err}
		}
		if _, err := s.Start(); err != nil {
			return sessionReadyMsg{err: err}
		}
		return sessionReadyMsg{session: s}
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return p, nil
		}
		p.session = msg.session
		p.syncQuestion()
		return p, nil

	case timerTickMsg:
		if p.session == nil || p.session.Done() {
			return p, nil
		}
		ended, err := p.session.Expire(context.Background())
		if err != nil {
			p.errMsg = fmt.Sprintf("saving the game failed: %v", err)
			return p, nil
		}
		if ended {
			return p, p.showSummary()
		}
		return p, tickCmd()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.answering() && p.opts.AnswerMode != game.AnswerChoices {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

// answering reports whether a question is open for input.
func (p *PlayScreen) answering() bool {
	return p.session != nil && !p.session.Done() && p.feedback == nil && !p.quitting && p.errMsg == ""
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.errMsg != "" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if p.session == nil {
		return p, nil
	}

	if p.quitting {
		switch key {
		case "y", "Y":
			return p, p.finishEarly()
		case "n", "N", "esc":
			p.quitting = false
		}
		return p, nil
	}

	if p.feedback != nil {
		p.feedback = nil
		if p.session.Done() {
			return p, p.showSummary()
		}
		p.syncQuestion()
		return p, p.input.Init()
	}

	if key == "esc" {
		p.quitting = true
		return p, nil
	}

	if p.opts.AnswerMode == game.AnswerChoices {
		var picked int
		p.choice, picked = p.choice.Update(msg)
		if picked >= 0 {
			return p.submit(p.choice.Options[picked])
		}
		return p, nil
	}

	if key == "enter" {
		if n, ok := p.input.Value(); ok {
			return p.submit(n)
		}
		return p, nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *PlayScreen) submit(given int) (screen.Screen, tea.Cmd) {
	out, err := p.session.Answer(context.Background(), given)
	if err != nil {
		p.errMsg = fmt.Sprintf("saving your answer failed: %v", err)
		return p, nil
	}
	p.input.Submit(out.Correct)
	p.feedback = &out
	return p, nil
}

// syncQuestion refreshes the input widgets for the current question.
func (p *PlayScreen) syncQuestion() {
	p.input = components.NewAnswerInput("Your answer...")
	if p.opts.AnswerMode == game.AnswerChoices {
		p.choice = components.NewMultiChoice(p.session.Choices())
	}
}

// finishEarly abandons the game without saving a summary.
func (p *PlayScreen) finishEarly() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (p *PlayScreen) showSummary() tea.Cmd {
	result := p.session.Summary(time.Now())
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(result)}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
