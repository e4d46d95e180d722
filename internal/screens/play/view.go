package play

import (
	"fmt"

	"github.com/mathdash/mathdash/internal/game"
	"github.com/mathdash/mathdash/internal/ui/layout"
	"github.com/mathdash/mathdash/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	switch {
	case p.errMsg != "":
		return layout.Center(
			theme.Incorrect.Render("Something went wrong")+"\n\n"+
				theme.Body.Render(p.errMsg)+"\n\n"+
				theme.Hint.Render("Press any key to go back"),
			width, height)
	case p.session == nil:
		return layout.Center(theme.Hint.Render("Getting your questions ready..."), width, height)
	case p.quitting:
		return layout.Center(
			theme.Title.Render("Stop playing?")+"\n\n"+
				theme.Body.Render("Y — end the game    N — keep going"),
			width, height)
	case p.feedback != nil:
		return p.feedbackView(width, height)
	default:
		return p.questionView(width, height)
	}
}

func (p *PlayScreen) questionView(width, height int) string {
	q := p.session.Current()
	if q == nil {
		return ""
	}

	status := p.statusLine()

	question := theme.Title.Render(q.Text)

	var entry string
	if p.opts.AnswerMode == game.AnswerChoices {
		entry = p.choice.View()
	} else {
		entry = p.input.View()
	}

	card := theme.Card.Render(question + "\n\n" + entry)
	return layout.Center(status+"\n\n"+card, width, height)
}

func (p *PlayScreen) feedbackView(width, height int) string {
	out := p.feedback

	var verdict string
	if out.Correct {
		verdict = theme.Correct.Render("Correct!")
		if out.Streak >= 3 {
			verdict += theme.Body.Render(fmt.Sprintf("  %d in a row!", out.Streak))
		}
	} else {
		verdict = theme.Incorrect.Render("Not quite.") +
			theme.Body.Render(fmt.Sprintf("  The answer is %d", out.Answer))
	}

	card := theme.Card.Render(verdict + "\n\n" + theme.Hint.Render("Press any key"))
	return layout.Center(p.statusLine()+"\n\n"+card, width, height)
}

func (p *PlayScreen) statusLine() string {
	answered, target := p.session.Progress()
	current, _ := p.session.Streak()

	var left string
	if target > 0 {
		qnum := answered + 1
		if qnum > target {
			qnum = target
		}
		left = fmt.Sprintf("Question %d of %d", qnum, target)
	} else {
		left = fmt.Sprintf("%.0fs left", p.session.TimeLeft().Seconds())
	}

	line := theme.Subtitle.Render(left)
	if current >= 2 {
		line += theme.Body.Render(fmt.Sprintf("   ★ streak %d", current))
	}
	return line
}
