package quiz

import "github.com/madnan/taksa/internal/quizgen"

// questionsReadyMsg is sent when quiz generation finishes.
type questionsReadyMsg struct {
	Questions quizgen.QuestionSet
	Err       error
}
