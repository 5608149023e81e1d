package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madnan/taksa/internal/llm"
)

func validQuestions() QuestionSet {
	qs := make(QuestionSet, NumQuestions)
	for i := range qs {
		qs[i] = Question{
			Text: fmt.Sprintf("What is the synonym of word %d?", i+1),
			Options: []string{
				"A) Alpha", "B) Bravo", "C) Charlie", "D) Delta",
			},
			Answer: Labels[i%NumOptions],
		}
	}
	return qs
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestGenerateValidQuiz(t *testing.T) {
	want := validQuestions()
	mock := llm.NewMockProvider(llm.MockResponse{Content: mustJSON(t, want)})
	gen := NewLLMGenerator(mock, DefaultConfig())

	got, err := gen.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, got, NumQuestions)

	// Shuffled, so compare as sets.
	assert.ElementsMatch(t, want, got)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, systemPrompt, req.System)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
	assert.Same(t, QuizSchema, req.Schema)
}

func TestGenerateStripsMarkdownFence(t *testing.T) {
	want := validQuestions()
	fenced := "```json\n" + string(mustJSON(t, want)) + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)})
	gen := NewLLMGenerator(mock, DefaultConfig())

	got, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)
}

func TestGenerateRejectsNonArray(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions": []}`),
	})
	gen := NewLLMGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background())
	var ferr *ErrFormat
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Reason, "not a JSON array")
}

func TestGenerateRejectsEmptyResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("  \n")})
	gen := NewLLMGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background())
	var ferr *ErrFormat
	require.ErrorAs(t, err, &ferr)
}

func TestGenerateRejectsWrongCount(t *testing.T) {
	short := validQuestions()[:NumQuestions-1]
	mock := llm.NewMockProvider(llm.MockResponse{Content: mustJSON(t, short)})
	gen := NewLLMGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background())
	var ferr *ErrFormat
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Reason, "structural")
}

func TestGeneratePassesThroughProviderErrors(t *testing.T) {
	rateLimit := &llm.ErrRateLimit{}
	mock := llm.NewMockProvider(llm.MockResponse{Err: rateLimit})
	gen := NewLLMGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background())
	require.Error(t, err)

	var rl *llm.ErrRateLimit
	assert.True(t, errors.As(err, &rl))

	var ferr *ErrFormat
	assert.False(t, errors.As(err, &ferr))
}

func TestGenerateInvalidJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`[{"question": "broken"`),
	})
	gen := NewLLMGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background())
	var ferr *ErrFormat
	require.ErrorAs(t, err, &ferr)
}
