package assess

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madnan/taksa/internal/llm"
)

func TestAssessReturnsTrimmedLevel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("  Intermediate\n")})
	a := NewAssessor(mock)

	level := a.Assess(context.Background(), []string{"A", "B", "C"})
	assert.Equal(t, LevelIntermediate, level)
	assert.True(t, level.Known())
}

func TestAssessStripsQuotes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"Expert"`)})
	a := NewAssessor(mock)

	assert.Equal(t, LevelExpert, a.Assess(context.Background(), nil))
}

func TestAssessPassesThroughUnlistedLevel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Upper-Intermediate")})
	a := NewAssessor(mock)

	level := a.Assess(context.Background(), nil)
	assert.Equal(t, Level("Upper-Intermediate"), level)
	assert.False(t, level.Known())
}

func TestAssessUnknownOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	a := NewAssessor(mock)

	assert.Equal(t, LevelUnknown, a.Assess(context.Background(), []string{"A"}))
}

func TestAssessUnknownOnEmptyReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("   ")})
	a := NewAssessor(mock)

	assert.Equal(t, LevelUnknown, a.Assess(context.Background(), nil))
}

func TestAssessPromptIncludesResponses(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Good")})
	a := NewAssessor(mock)

	a.Assess(context.Background(), []string{"A", "", "D"})

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.Equal(t, assessSystemPrompt, req.System)
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "[A  D]")
	assert.Contains(t, req.Messages[0].Content, "Return only the proficiency level.")
	assert.Nil(t, req.Schema)
}
