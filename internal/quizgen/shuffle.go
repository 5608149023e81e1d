package quizgen

import (
	"math/rand/v2"
	"slices"
)

// Shuffle returns a uniformly shuffled copy of the question set.
// The input is left untouched; no fixed seed, so display order differs
// across quizzes.
func Shuffle(qs QuestionSet) QuestionSet {
	out := slices.Clone(qs)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
