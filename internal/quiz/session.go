package quiz

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/madnan/taksa/internal/quizgen"
)

// Session holds the state of a single quiz run: the question set and
// the answers collected so far. It lives in memory for one run only
// and is never persisted.
type Session struct {
	id        string
	questions quizgen.QuestionSet
	responses []string
}

// NewSession creates an empty session with a fresh identifier.
// Responses start as empty strings, one slot per question.
func NewSession() *Session {
	return &Session{
		id:        uuid.NewString(),
		responses: make([]string, quizgen.NumQuestions),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// SetQuestions installs the question set. A session's questions are
// set once; a second call is rejected so a run can never swap quizzes
// mid-flight.
func (s *Session) SetQuestions(qs quizgen.QuestionSet) error {
	if s.questions != nil {
		return fmt.Errorf("session %s already has questions", s.id)
	}
	s.questions = qs
	s.responses = make([]string, len(qs))
	return nil
}

// HasQuestions reports whether the question set has been installed.
func (s *Session) HasQuestions() bool { return s.questions != nil }

// Questions returns the installed question set.
func (s *Session) Questions() quizgen.QuestionSet { return s.questions }

// SetResponse records the answer for the question at index i,
// normalized to upper case. Answers may be changed until scoring.
// An out-of-range index is a programming error and panics.
func (s *Session) SetResponse(i int, answer string) {
	if i < 0 || i >= len(s.responses) {
		panic(fmt.Sprintf("response index %d out of range [0,%d)", i, len(s.responses)))
	}
	s.responses[i] = strings.ToUpper(strings.TrimSpace(answer))
}

// Response returns the recorded answer for question i, empty if the
// question is unanswered.
func (s *Session) Response(i int) string {
	if i < 0 || i >= len(s.responses) {
		return ""
	}
	return s.responses[i]
}

// Responses returns a copy of all recorded answers in question order.
// Unanswered slots are empty strings.
func (s *Session) Responses() []string {
	out := make([]string, len(s.responses))
	copy(out, s.responses)
	return out
}

// Answered counts the questions that have a recorded answer.
func (s *Session) Answered() int {
	n := 0
	for _, r := range s.responses {
		if r != "" {
			n++
		}
	}
	return n
}
