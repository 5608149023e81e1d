package quizgen

import "fmt"

// ErrFormat indicates the model's reply could not be accepted as a quiz:
// not a top-level JSON array, malformed JSON, or a shape that fails the
// validator chain. Distinct from transport errors, which pass through
// from the llm package untouched.
type ErrFormat struct {
	Reason  string
	Content string
}

func (e *ErrFormat) Error() string {
	return fmt.Sprintf("malformed quiz response: %s", e.Reason)
}

// ValidationError describes why a parsed question set failed validation.
type ValidationError struct {
	Validator string // name of the validator that failed
	Message   string // human-readable description
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
