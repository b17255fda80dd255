package balloons

import (
	"math/rand"
	"slices"
)

// BuildChoices returns count distinct candidate values in random order: the
// answer plus distractors drawn uniformly from [answer-spread, answer+spread].
//
// Distractors are never below zero, except that a negative answer lowers the
// floor to the answer itself; otherwise a negative answer could leave fewer
// than count-1 candidates and the draw would never finish. With
// spread >= count-1 the values above the answer always suffice.
func BuildChoices(rng *rand.Rand, answer, count, spread int) []int {
	if count < 1 {
		return nil
	}

	floor := 0
	if answer < 0 {
		floor = answer
	}

	choices := make([]int, 1, count)
	choices[0] = answer
	for len(choices) < count {
		c := answer + rng.Intn(2*spread+1) - spread
		if c != answer && c >= floor && !slices.Contains(choices, c) {
			choices = append(choices, c)
		}
	}

	Shuffle(rng, choices)
	return choices
}

// Shuffle permutes values in place with a Fisher-Yates shuffle.
func Shuffle[T any](rng *rand.Rand, values []T) {
	for i := len(values) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}
