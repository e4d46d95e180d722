package quizgen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mathdash/mathdash/internal/curriculum"
)

// historyWindow is the anti-repeat window: a question's normalized form
// may not repeat within this many consecutively issued questions.
const historyWindow = 3

// maxDrawAttempts bounds rejection sampling for non-bag question paths.
// Degenerate configs (fewer distinct questions than the window) give up
// and accept a repeat rather than spinning.
const maxDrawAttempts = 40

// Question is a single generated arithmetic question.
type Question struct {
	// ID is unique for the lifetime of the process, across resets.
	ID string

	// Text is the display string, e.g. "7 × 8" or "Half of 14".
	Text string

	// Fact is the canonical fact key the question exercises, used for
	// anti-repeat comparison and for mastery recording.
	Fact string

	Operands [2]int
	Operator curriculum.Operation
	Answer   int
	Topic    curriculum.Topic
}

// Generator produces questions for one game session. It owns the
// anti-repeat history and the per-table multiplier bags; construct one per
// session and reset it at game boundaries. Not safe for concurrent use.
type Generator struct {
	rng     *rand.Rand
	history []string
	bags    map[string][]int
}

// New creates a Generator with a time-seeded random source.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates a Generator with a deterministic random source.
func NewSeeded(seed int64) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		bags: make(map[string][]int),
	}
}

// ClearHistory forgets the anti-repeat window. Called at the start of a
// new game; previously seen questions may immediately reappear.
func (g *Generator) ClearHistory() {
	g.history = nil
}

// ClearMultipliers discards all multiplier bags, so every table starts a
// fresh shuffled cycle on its next draw.
func (g *Generator) ClearMultipliers() {
	g.bags = make(map[string][]int)
}

// Generate produces the next question for the given config.
func (g *Generator) Generate(cfg Config) (*Question, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var q *Question
	switch cfg.Topic {
	case curriculum.TopicBonds:
		q = g.bondQuestion(cfg.bondTarget())
	case curriculum.TopicDoubles:
		q = g.doubleQuestion()
	case curriculum.TopicHalves:
		q = g.halfQuestion()
	case curriculum.TopicSquares:
		q = g.squareQuestion()
	default:
		op := cfg.Operations[g.rng.Intn(len(cfg.Operations))]
		switch op {
		case curriculum.OpAddition:
			q = g.addQuestion(cfg.addRange())
		case curriculum.OpSubtraction:
			q = g.subQuestion(cfg.addRange())
		case curriculum.OpMultiplication:
			n := cfg.SelectedNumbers[g.rng.Intn(len(cfg.SelectedNumbers))]
			q = g.tableQuestion(n)
		case curriculum.OpDivision:
			d := cfg.SelectedNumbers[g.rng.Intn(len(cfg.SelectedNumbers))]
			q = g.divisionQuestion(d)
		}
	}

	q.ID = uuid.New().String()
	g.push(q.Fact)
	return q, nil
}

// tableQuestion draws the next multiplier for table n from its bag and
// renders the fixed "multiplier × table" form.
func (g *Generator) tableQuestion(n int) *Question {
	m := g.drawMultiplier(curriculum.OpMultiplication, n)
	return &Question{
		Text:     fmt.Sprintf("%d × %d", m, n),
		Fact:     curriculum.Key(curriculum.OpMultiplication, m, n),
		Operands: [2]int{m, n},
		Operator: curriculum.OpMultiplication,
		Answer:   m * n,
	}
}

// divisionQuestion is the inverse of a table fact, so answers are whole.
func (g *Generator) divisionQuestion(d int) *Question {
	m := g.drawMultiplier(curriculum.OpDivision, d)
	return &Question{
		Text:     fmt.Sprintf("%d ÷ %d", m*d, d),
		Fact:     curriculum.Key(curriculum.OpDivision, m*d, d),
		Operands: [2]int{m * d, d},
		Operator: curriculum.OpDivision,
		Answer:   m,
	}
}

func (g *Generator) addQuestion(r NumberRange) *Question {
	var a, b int
	g.sample(func() string {
		a = g.intIn(r.Min, r.Max)
		b = g.intIn(r.Min, r.Max)
		return curriculum.Key(curriculum.OpAddition, a, b)
	})
	return &Question{
		Text:     fmt.Sprintf("%d + %d", a, b),
		Fact:     curriculum.Key(curriculum.OpAddition, a, b),
		Operands: [2]int{a, b},
		Operator: curriculum.OpAddition,
		Answer:   a + b,
	}
}

func (g *Generator) subQuestion(r NumberRange) *Question {
	var a, b int
	g.sample(func() string {
		a = g.intIn(r.Min, r.Max)
		b = g.intIn(r.Min, r.Max)
		if !r.AllowNegatives && b > a {
			a, b = b, a
		}
		return curriculum.Key(curriculum.OpSubtraction, a, b)
	})
	return &Question{
		Text:     fmt.Sprintf("%d - %d", a, b),
		Fact:     curriculum.Key(curriculum.OpSubtraction, a, b),
		Operands: [2]int{a, b},
		Operator: curriculum.OpSubtraction,
		Answer:   a - b,
	}
}

// bondQuestion asks for the missing part of a bond, e.g. "7 + ? = 10".
func (g *Generator) bondQuestion(target int) *Question {
	var a int
	g.sample(func() string {
		a = g.intIn(0, target)
		return curriculum.Key(curriculum.OpAddition, a, target-a)
	})
	return &Question{
		Text:     fmt.Sprintf("%d + ? = %d", a, target),
		Fact:     curriculum.Key(curriculum.OpAddition, a, target-a),
		Operands: [2]int{a, target},
		Operator: curriculum.OpAddition,
		Answer:   target - a,
		Topic:    curriculum.TopicBonds,
	}
}

func (g *Generator) doubleQuestion() *Question {
	var a int
	g.sample(func() string {
		a = g.intIn(1, 10)
		return curriculum.Key(curriculum.OpAddition, a, a)
	})
	return &Question{
		Text:     fmt.Sprintf("%d + %d", a, a),
		Fact:     curriculum.Key(curriculum.OpAddition, a, a),
		Operands: [2]int{a, a},
		Operator: curriculum.OpAddition,
		Answer:   2 * a,
		Topic:    curriculum.TopicDoubles,
	}
}

func (g *Generator) halfQuestion() *Question {
	var a int
	g.sample(func() string {
		a = g.intIn(1, 10)
		return curriculum.Key(curriculum.OpDivision, 2*a, 2)
	})
	return &Question{
		Text:     fmt.Sprintf("Half of %d", 2*a),
		Fact:     curriculum.Key(curriculum.OpDivision, 2*a, 2),
		Operands: [2]int{2 * a, 2},
		Operator: curriculum.OpDivision,
		Answer:   a,
		Topic:    curriculum.TopicHalves,
	}
}

func (g *Generator) squareQuestion() *Question {
	var a int
	g.sample(func() string {
		a = g.intIn(1, 12)
		return curriculum.Key(curriculum.OpMultiplication, a, a)
	})
	return &Question{
		Text:     fmt.Sprintf("%d × %d", a, a),
		Fact:     curriculum.Key(curriculum.OpMultiplication, a, a),
		Operands: [2]int{a, a},
		Operator: curriculum.OpMultiplication,
		Answer:   a * a,
		Topic:    curriculum.TopicSquares,
	}
}

// drawMultiplier takes the next multiplier from the bag for (op, table n),
// refilling with a fresh shuffle of 1-12 once exhausted. Each multiplier
// appears exactly once per cycle; within a cycle the bag keeps its order,
// and a draw that would violate the anti-repeat window is deferred by
// taking the next non-conflicting bag entry instead.
func (g *Generator) drawMultiplier(op curriculum.Operation, n int) int {
	key := fmt.Sprintf("%s%d", op.Symbol(), n)

	bag := g.bags[key]
	if len(bag) == 0 {
		bag = g.rng.Perm(12)
		for i := range bag {
			bag[i]++
		}
	}

	pick := 0
	for i, m := range bag {
		if !g.inHistory(g.bagFact(op, m, n)) {
			pick = i
			break
		}
	}
	m := bag[pick]
	g.bags[key] = append(bag[:pick], bag[pick+1:]...)
	return m
}

// bagFact builds the fact key a bag draw would produce.
func (g *Generator) bagFact(op curriculum.Operation, m, n int) string {
	if op == curriculum.OpDivision {
		return curriculum.Key(op, m*n, n)
	}
	return curriculum.Key(op, m, n)
}

// sample runs draw until it produces a fact key outside the anti-repeat
// window, giving up after maxDrawAttempts for degenerate configs.
func (g *Generator) sample(draw func() string) {
	for i := 0; i < maxDrawAttempts; i++ {
		if !g.inHistory(draw()) {
			return
		}
	}
}

func (g *Generator) inHistory(fact string) bool {
	for _, h := range g.history {
		if h == fact {
			return true
		}
	}
	return false
}

func (g *Generator) push(fact string) {
	g.history = append(g.history, fact)
	if len(g.history) > historyWindow {
		g.history = g.history[len(g.history)-historyWindow:]
	}
}

// intIn returns a uniform integer in [lo, hi].
func (g *Generator) intIn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}
