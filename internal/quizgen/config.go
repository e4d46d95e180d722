package quizgen

import (
	"fmt"

	"github.com/mathdash/mathdash/internal/curriculum"
)

// DefaultBondTarget is the bond target used when a number-bonds config
// does not specify one.
const DefaultBondTarget = 10

// NumberRange bounds the operands of addition and subtraction questions.
type NumberRange struct {
	Min            int
	Max            int
	AllowNegatives bool
}

// Config describes one practice configuration. A config selects either a
// special topic or one or more operations; a game keeps a single config
// for its whole run and the generator draws questions from it on demand.
type Config struct {
	// Operations allowed for this game. Ignored when Topic is set.
	Operations []curriculum.Operation

	// SelectedNumbers are the times tables (multiplication) or divisors
	// (division) in play. Required when either operation is configured.
	SelectedNumbers []int

	// NumberRange bounds addition/subtraction operands. Defaults to
	// 1-10 when absent.
	NumberRange *NumberRange

	// Topic selects a special topic instead of plain operations.
	Topic curriculum.Topic

	// BondTarget is the target sum for TopicBonds (default 10).
	BondTarget int
}

// Validate reports configuration errors. An empty config (no operations
// and no topic) and an inverted number range are programming errors, not
// recoverable runtime conditions.
func (c Config) Validate() error {
	if len(c.Operations) == 0 && c.Topic == curriculum.TopicNone {
		return fmt.Errorf("invalid config: no operations and no topic selected")
	}

	for _, op := range c.Operations {
		if !op.Valid() {
			return fmt.Errorf("invalid config: unknown operation %q", op)
		}
		if (op == curriculum.OpMultiplication || op == curriculum.OpDivision) && len(c.SelectedNumbers) == 0 {
			return fmt.Errorf("invalid config: %s requires selected numbers", op)
		}
	}

	for _, n := range c.SelectedNumbers {
		if n < 1 || n > 12 {
			return fmt.Errorf("invalid config: selected number %d out of range 1-12", n)
		}
	}

	if c.NumberRange != nil && c.NumberRange.Min > c.NumberRange.Max {
		return fmt.Errorf("invalid config: number range min %d > max %d", c.NumberRange.Min, c.NumberRange.Max)
	}

	switch c.Topic {
	case curriculum.TopicNone, curriculum.TopicBonds, curriculum.TopicDoubles,
		curriculum.TopicHalves, curriculum.TopicSquares:
	default:
		return fmt.Errorf("invalid config: unknown topic %q", c.Topic)
	}

	if c.BondTarget < 0 {
		return fmt.Errorf("invalid config: bond target %d is negative", c.BondTarget)
	}
	return nil
}

// bondTarget returns the effective bond target.
func (c Config) bondTarget() int {
	if c.BondTarget > 0 {
		return c.BondTarget
	}
	return DefaultBondTarget
}

// addRange returns the effective operand range for addition/subtraction.
func (c Config) addRange() NumberRange {
	if c.NumberRange != nil {
		return *c.NumberRange
	}
	return NumberRange{Min: 1, Max: 10}
}
