package quizgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShufflePreservesElements(t *testing.T) {
	qs := validQuestions()
	got := Shuffle(qs)

	require.Len(t, got, len(qs))
	assert.ElementsMatch(t, qs, got)
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	qs := validQuestions()
	orig := make(QuestionSet, len(qs))
	copy(orig, qs)

	Shuffle(qs)
	assert.Equal(t, orig, qs)
}

func TestShuffleEmpty(t *testing.T) {
	assert.Empty(t, Shuffle(nil))
}
