package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/mathdash/mathdash/internal/ui/theme"
)

// MultiChoice presents numbered answer options.
type MultiChoice struct {
	Options  []int
	Selected int
}

// NewMultiChoice creates a choice list over the given options.
func NewMultiChoice(options []int) MultiChoice {
	return MultiChoice{Options: options}
}

// Update handles arrow navigation and number-key selection. The second
// return value is the chosen option index, or -1 when nothing was
// chosen by this message.
func (c MultiChoice) Update(msg tea.Msg) (MultiChoice, int) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, -1
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		return c, c.Selected
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(c.Options) {
				c.Selected = i
				return c, i
			}
		}
	}
	return c, -1
}

// View renders the numbered options.
func (c MultiChoice) View() string {
	var s string
	for i, opt := range c.Options {
		line := fmt.Sprintf("%d) %d", i+1, opt)
		if i == c.Selected {
			s += theme.Selected.Render("  ▸ "+line) + "\n"
		} else {
			s += theme.Unselected.Render("    "+line) + "\n"
		}
	}
	return s
}
