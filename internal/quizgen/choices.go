package quizgen

// choiceCount is the number of answer options shown in multiple-choice
// mode: the correct answer plus five distractors.
const choiceCount = 6

// Choices builds the multiple-choice option list for a correct answer:
// five unique non-negative distractors within ±5 of the answer, topped up
// with uniform values from [1, 20] if the offset band is exhausted. The
// returned slice includes the answer and is shuffled.
func (g *Generator) Choices(answer int) []int {
	used := map[int]bool{answer: true}
	options := []int{answer}

	// Candidate offsets ±1..±5, tried in random order.
	offsets := g.rng.Perm(10)
	for _, i := range offsets {
		if len(options) == choiceCount {
			break
		}
		delta := i/2 + 1
		if i%2 == 1 {
			delta = -delta
		}
		v := answer + delta
		if v < 0 || used[v] {
			continue
		}
		used[v] = true
		options = append(options, v)
	}

	for len(options) < choiceCount {
		v := 1 + g.rng.Intn(20)
		if used[v] {
			continue
		}
		used[v] = true
		options = append(options, v)
	}

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
