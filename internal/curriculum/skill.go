package curriculum

import (
	"fmt"
	"slices"
)

// Operation identifies one of the four arithmetic operations.
type Operation string

const (
	OpAddition       Operation = "addition"
	OpSubtraction    Operation = "subtraction"
	OpMultiplication Operation = "multiplication"
	OpDivision       Operation = "division"
)

// AllOperations returns the operations in display order.
func AllOperations() []Operation {
	return []Operation{OpAddition, OpSubtraction, OpMultiplication, OpDivision}
}

// Symbol returns the display symbol for an operation.
func (o Operation) Symbol() string {
	switch o {
	case OpAddition:
		return "+"
	case OpSubtraction:
		return "-"
	case OpMultiplication:
		return "×"
	case OpDivision:
		return "÷"
	default:
		return "?"
	}
}

// Valid reports whether o is a recognized operation.
func (o Operation) Valid() bool {
	switch o {
	case OpAddition, OpSubtraction, OpMultiplication, OpDivision:
		return true
	}
	return false
}

// Topic identifies a special practice topic that cuts across operations.
type Topic string

const (
	TopicNone    Topic = ""
	TopicBonds   Topic = "number_bonds"
	TopicDoubles Topic = "doubles"
	TopicHalves  Topic = "halves"
	TopicSquares Topic = "squares"
)

// Domain groups skills into broad curriculum areas.
type Domain string

const (
	DomainNumberFacts      Domain = "number_facts"
	DomainOperations       Domain = "operations"
	DomainNumberProperties Domain = "number_properties"
)

// Subdomain refines a domain into a specific fact family.
type Subdomain string

const (
	SubNumberBonds    Subdomain = "number_bonds"
	SubAddition       Subdomain = "addition"
	SubSubtraction    Subdomain = "subtraction"
	SubMultiplication Subdomain = "multiplication"
	SubDivision       Subdomain = "division"
	SubDoublesHalves  Subdomain = "doubles_halves"
	SubSquares        Subdomain = "squares"
)

// DomainDisplayName returns a human-readable name for a domain.
func DomainDisplayName(d Domain) string {
	switch d {
	case DomainNumberFacts:
		return "Number Facts"
	case DomainOperations:
		return "Operations"
	case DomainNumberProperties:
		return "Number Properties"
	default:
		return string(d)
	}
}

// Key returns the canonical fact key for an operation and its operands,
// e.g. "3+7", "9-4", "6×8", "20÷5". Addition operands are ordered
// smallest-first so "3+7" and "7+3" collapse to one key.
func Key(op Operation, a, b int) string {
	if op == OpAddition && b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%d%s%d", a, op.Symbol(), b)
}

// Skill is a curriculum-defined cluster of arithmetic facts.
// The fact set is derived from the skill's fields by Facts, except when
// FactList pins an explicit enumeration.
type Skill struct {
	ID          string
	Label       string
	Description string
	Domain      Domain
	Subdomain   Subdomain

	// Operation is the arithmetic operation whose facts count toward
	// this skill. Topic skills use the operation their facts are keyed
	// under (bonds and doubles are addition, halves are division).
	Operation Operation

	// Topic is set for special-topic skills, TopicNone otherwise.
	Topic Topic

	// Tables lists the times tables (or divisors) covered by
	// multiplication and division skills.
	Tables []int

	// Bound parameterizes range skills: the maximum sum for addition,
	// the maximum minuend for subtraction, the bond target for number
	// bonds, the largest doubled operand for doubles/halves, and the
	// largest root for squares.
	Bound int

	// GameModes tags the practice configurations that exercise this
	// skill, for display and analytics.
	GameModes []string

	// FactList overrides the derived fact enumeration for irregular
	// skills. Empty for every seeded skill.
	FactList []string
}

// Facts enumerates the canonical fact keys expected by this skill.
func (s Skill) Facts() []string {
	if len(s.FactList) > 0 {
		return slices.Clone(s.FactList)
	}

	var facts []string
	switch s.Topic {
	case TopicBonds:
		for a := 0; a <= s.Bound/2; a++ {
			facts = append(facts, Key(OpAddition, a, s.Bound-a))
		}
		return facts
	case TopicDoubles:
		for a := 1; a <= s.Bound; a++ {
			facts = append(facts, Key(OpAddition, a, a))
		}
		return facts
	case TopicHalves:
		for a := 1; a <= s.Bound; a++ {
			facts = append(facts, Key(OpDivision, 2*a, 2))
		}
		return facts
	case TopicSquares:
		for a := 1; a <= s.Bound; a++ {
			facts = append(facts, Key(OpMultiplication, a, a))
		}
		return facts
	}

	switch s.Operation {
	case OpAddition:
		for a := 0; a <= s.Bound; a++ {
			for b := a; a+b <= s.Bound; b++ {
				facts = append(facts, Key(OpAddition, a, b))
			}
		}
	case OpSubtraction:
		for a := 0; a <= s.Bound; a++ {
			for b := 0; b <= a; b++ {
				facts = append(facts, Key(OpSubtraction, a, b))
			}
		}
	case OpMultiplication:
		for _, n := range s.Tables {
			for m := 1; m <= 12; m++ {
				facts = append(facts, Key(OpMultiplication, m, n))
			}
		}
	case OpDivision:
		for _, d := range s.Tables {
			for m := 1; m <= 12; m++ {
				facts = append(facts, Key(OpDivision, m*d, d))
			}
		}
	}
	return facts
}

// ExpectedFactCount returns the number of distinct facts in this skill.
func (s Skill) ExpectedFactCount() int {
	return len(s.Facts())
}
