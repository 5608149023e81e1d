// Package assess derives a proficiency level from a finished quiz by
// asking the model to judge the user's answers.
package assess

import (
	"context"
	"fmt"
	"strings"

	"github.com/madnan/taksa/internal/llm"
)

// Level is the model's verdict on the user's English proficiency.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelGood         Level = "Good"
	LevelExpert       Level = "Expert"

	// LevelUnknown is the fallback when assessment fails or the model
	// replies with nothing usable.
	LevelUnknown Level = "Unknown"
)

// Known reports whether the level is one of the four named bands.
func (l Level) Known() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelGood, LevelExpert:
		return true
	}
	return false
}

const assessSystemPrompt = "Evaluate the user's responses to the English quiz and determine their proficiency level. " +
	"Provide only one of the following levels: Beginner, Intermediate, Good, or Expert."

// Assessor asks the model for a proficiency level.
type Assessor struct {
	provider  llm.Provider
	maxTokens int
}

// NewAssessor builds an assessor on the given provider.
func NewAssessor(provider llm.Provider) *Assessor {
	return &Assessor{provider: provider, maxTokens: 64}
}

// Assess submits the recorded answers and returns the model's level.
// The reply is taken as-is after trimming; assessment is advisory, so
// any failure, including an empty reply, degrades to LevelUnknown with
// a nil error rather than failing the results screen.
func (a *Assessor) Assess(ctx context.Context, responses []string) Level {
	ctx = llm.WithPurpose(ctx, "level-assess")

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: assessSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userPrompt(responses)},
		},
		MaxTokens: a.maxTokens,
	})
	if err != nil {
		return LevelUnknown
	}

	text := strings.TrimSpace(string(resp.Content))
	text = strings.Trim(text, `"`)
	if text == "" {
		return LevelUnknown
	}
	return Level(text)
}

func userPrompt(responses []string) string {
	return fmt.Sprintf("User Responses: %v\nReturn only the proficiency level.", responses)
}
