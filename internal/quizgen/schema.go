package quizgen

import "github.com/madnan/taksa/internal/llm"

// QuizSchema defines the JSON contract for the generated question array:
// exactly 10 objects, each with a question, exactly 4 labeled options,
// and a single-letter answer.
var QuizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "An array of exactly 10 English-proficiency multiple-choice questions",
	Definition: map[string]any{
		"type":     "array",
		"minItems": NumQuestions,
		"maxItems": NumQuestions,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":        "string",
					"minLength":   1,
					"description": "The question prompt shown to the user",
				},
				"options": map[string]any{
					"type":     "array",
					"minItems": NumOptions,
					"maxItems": NumOptions,
					"items": map[string]any{
						"type": "string",
					},
					"description": `Exactly 4 options, prefixed "A) " through "D) "`,
				},
				"answer": map[string]any{
					"type":        "string",
					"enum":        []any{"A", "B", "C", "D"},
					"description": "The label of the single correct option",
				},
			},
			"required":             []any{"question", "options", "answer"},
			"additionalProperties": false,
		},
	},
}
