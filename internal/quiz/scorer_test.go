package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/madnan/taksa/internal/quizgen"
)

func questionsWithAnswers(answers ...string) quizgen.QuestionSet {
	qs := make(quizgen.QuestionSet, len(answers))
	for i, a := range answers {
		qs[i] = quizgen.Question{
			Text:    fmt.Sprintf("Question %d", i+1),
			Options: []string{"A) one", "B) two", "C) three", "D) four"},
			Answer:  a,
		}
	}
	return qs
}

func TestScoreCountsMatchesByPosition(t *testing.T) {
	qs := questionsWithAnswers("A", "A", "C", "D", "A", "A", "C", "D", "A", "A")
	responses := []string{"A", "B", "C", "D", "A", "B", "C", "D", "A", "B"}

	assert.Equal(t, 7, Score(qs, responses))
}

func TestScoreUnansweredCountsZero(t *testing.T) {
	qs := questionsWithAnswers("A", "B", "C")
	responses := []string{"A", "", ""}

	assert.Equal(t, 1, Score(qs, responses))
}

func TestScoreShortResponses(t *testing.T) {
	qs := questionsWithAnswers("A", "B")
	assert.Equal(t, 1, Score(qs, []string{"A"}))
}

func TestScoreAllWrong(t *testing.T) {
	qs := questionsWithAnswers("A", "A", "A")
	assert.Equal(t, 0, Score(qs, []string{"B", "C", "D"}))
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{10, TierPerfect},
		{9, TierGreat},
		{8, TierGreat},
		{7, TierGoodEffort}, // exactly 70 percent falls to the lower tier
		{6, TierGoodEffort},
		{5, TierGoodEffort},
		{4, TierReferTutor}, // exactly 40 percent falls to the lower tier
		{3, TierReferTutor},
		{0, TierReferTutor},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("score_%d", tt.score), func(t *testing.T) {
			assert.Equal(t, tt.want, TierFor(tt.score, 10))
		})
	}
}

func TestTierForZeroTotal(t *testing.T) {
	assert.Equal(t, TierReferTutor, TierFor(0, 0))
}

func TestFeedbackPerTier(t *testing.T) {
	assert.Contains(t, Feedback(TierPerfect), "English wizard")
	assert.Contains(t, Feedback(TierGreat), "Great job")
	assert.Contains(t, Feedback(TierGoodEffort), "Keep practicing")
	assert.Contains(t, Feedback(TierReferTutor), "Professor Ishq")
	assert.Contains(t, Feedback(TierReferTutor), "Task Academy, Multan")
}

func TestIsReferral(t *testing.T) {
	assert.True(t, IsReferral(TierReferTutor))
	assert.False(t, IsReferral(TierGoodEffort))
	assert.False(t, IsReferral(TierGreat))
	assert.False(t, IsReferral(TierPerfect))
}
