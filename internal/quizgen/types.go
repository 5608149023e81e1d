package quizgen

// NumQuestions is the fixed size of a generated quiz.
const NumQuestions = 10

// NumOptions is the number of answer options per question.
const NumOptions = 4

// Labels are the option labels in display order.
var Labels = [NumOptions]string{"A", "B", "C", "D"}

// Question is a single multiple-choice question as it arrives on the
// wire from the model. The JSON field names are the external contract:
// deviations are rejected, never coerced.
type Question struct {
	// Text is the question prompt.
	Text string `json:"question"`

	// Options holds exactly four answer options, each prefixed with its
	// label: "A) ...", "B) ...", "C) ...", "D) ...".
	Options []string `json:"options"`

	// Answer is the single-character label of the correct option,
	// one of A, B, C, D.
	Answer string `json:"answer"`
}

// QuestionSet is the ordered collection of questions for one quiz.
// Created once per session and immutable thereafter; order matters only
// for display, scoring is by position.
type QuestionSet []Question
