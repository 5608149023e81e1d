package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madnan/taksa/internal/quizgen"
)

func TestNewSessionStartsEmpty(t *testing.T) {
	s := NewSession()

	assert.NotEmpty(t, s.ID())
	assert.False(t, s.HasQuestions())
	assert.Equal(t, 0, s.Answered())

	responses := s.Responses()
	require.Len(t, responses, quizgen.NumQuestions)
	for _, r := range responses {
		assert.Empty(t, r)
	}
}

func TestSetQuestionsOnce(t *testing.T) {
	s := NewSession()
	qs := questionsWithAnswers("A", "B", "C")

	require.NoError(t, s.SetQuestions(qs))
	assert.True(t, s.HasQuestions())
	assert.Equal(t, qs, s.Questions())

	err := s.SetQuestions(questionsWithAnswers("D"))
	require.Error(t, err)
	assert.Equal(t, qs, s.Questions())
}

func TestSetResponseNormalizes(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.SetQuestions(questionsWithAnswers("A", "B", "C")))

	s.SetResponse(0, " a ")
	s.SetResponse(1, "B")

	assert.Equal(t, "A", s.Response(0))
	assert.Equal(t, "B", s.Response(1))
	assert.Equal(t, 2, s.Answered())
}

func TestSetResponseOverwrites(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.SetQuestions(questionsWithAnswers("A", "B")))

	s.SetResponse(0, "C")
	s.SetResponse(0, "D")

	assert.Equal(t, "D", s.Response(0))
	assert.Equal(t, 1, s.Answered())
}

func TestSetResponseOutOfRangePanics(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.SetQuestions(questionsWithAnswers("A", "B")))

	assert.Panics(t, func() { s.SetResponse(2, "A") })
	assert.Panics(t, func() { s.SetResponse(-1, "A") })
}

func TestResponsesReturnsCopy(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.SetQuestions(questionsWithAnswers("A", "B")))
	s.SetResponse(0, "A")

	got := s.Responses()
	got[0] = "Z"

	assert.Equal(t, "A", s.Response(0))
}

func TestSessionScoringEndToEnd(t *testing.T) {
	qs := questionsWithAnswers("A", "A", "C", "D", "A", "A", "C", "D", "A", "A")
	s := NewSession()
	require.NoError(t, s.SetQuestions(qs))

	for i, r := range []string{"A", "B", "C", "D", "A", "B", "C", "D", "A", "B"} {
		s.SetResponse(i, r)
	}

	score := Score(s.Questions(), s.Responses())
	assert.Equal(t, 7, score)
	assert.Equal(t, TierGoodEffort, TierFor(score, len(qs)))
}
