package quizgen

import (
	"fmt"
	"strings"
)

// Validator checks a parsed question set before it is accepted.
// Implementations are stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages, e.g. "structural".
	Name() string

	// Validate returns nil if the set passes, a ValidationError otherwise.
	Validate(qs QuestionSet) *ValidationError
}

// StructuralValidator enforces the counts of the wire contract: exactly
// 10 questions, each with non-empty text and exactly 4 options.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(qs QuestionSet) *ValidationError {
	if len(qs) != NumQuestions {
		return v.fail(fmt.Sprintf("expected %d questions, got %d", NumQuestions, len(qs)))
	}
	for i, q := range qs {
		if strings.TrimSpace(q.Text) == "" {
			return v.fail(fmt.Sprintf("question %d has empty text", i+1))
		}
		if len(q.Options) != NumOptions {
			return v.fail(fmt.Sprintf("question %d has %d options, expected %d", i+1, len(q.Options), NumOptions))
		}
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}

// LabelValidator enforces the labeling contract: options carry the
// prefixes "A) " through "D) " in order (which also guarantees label
// uniqueness), and the answer names one of those labels.
type LabelValidator struct{}

func (v *LabelValidator) Name() string { return "label" }

func (v *LabelValidator) Validate(qs QuestionSet) *ValidationError {
	for i, q := range qs {
		for j, opt := range q.Options {
			if j >= len(Labels) {
				break // counts already rejected by StructuralValidator
			}
			prefix := Labels[j] + ") "
			if !strings.HasPrefix(opt, prefix) {
				return v.fail(fmt.Sprintf("question %d option %d is not prefixed %q", i+1, j+1, prefix))
			}
		}
		if !validLabel(q.Answer) {
			return v.fail(fmt.Sprintf("question %d answer %q is not one of A-D", i+1, q.Answer))
		}
	}
	return nil
}

func (v *LabelValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}

func validLabel(s string) bool {
	for _, l := range Labels {
		if s == l {
			return true
		}
	}
	return false
}
