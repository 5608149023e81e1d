package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/madnan/taksa/internal/llm"
)

// Generator produces a fresh question set.
type Generator interface {
	Generate(ctx context.Context) (QuestionSet, error)
}

// LLMGenerator asks a language model for the questions and validates
// the reply before handing it out.
type LLMGenerator struct {
	provider llm.Provider
	cfg      Config
}

// NewLLMGenerator builds a generator on top of the given provider.
func NewLLMGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, cfg: cfg}
}

// Generate requests a new quiz from the model. Transport failures pass
// through wrapped so callers can still match the llm sentinel errors;
// replies that arrive but cannot be accepted surface as *ErrFormat.
// The returned set is shuffled.
func (g *LLMGenerator) Generate(ctx context.Context) (QuestionSet, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userPrompt},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	qs, err := parseQuestions(resp.Content)
	if err != nil {
		return nil, err
	}

	for _, v := range g.cfg.Validators {
		if verr := v.Validate(qs); verr != nil {
			return nil, &ErrFormat{Reason: verr.Error(), Content: string(resp.Content)}
		}
	}

	return Shuffle(qs), nil
}

// parseQuestions accepts the raw model content and returns the decoded
// question set. Providers without native structured output sometimes
// wrap the JSON in a markdown fence, so fences are stripped first.
func parseQuestions(raw json.RawMessage) (QuestionSet, error) {
	text := stripFences(strings.TrimSpace(string(raw)))
	if text == "" {
		return nil, &ErrFormat{Reason: "empty response"}
	}
	if !strings.HasPrefix(text, "[") || !strings.HasSuffix(text, "]") {
		return nil, &ErrFormat{Reason: "response is not a JSON array", Content: text}
	}

	var qs QuestionSet
	if err := json.Unmarshal([]byte(text), &qs); err != nil {
		return nil, &ErrFormat{Reason: fmt.Sprintf("invalid JSON: %v", err), Content: text}
	}
	return qs, nil
}

func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
