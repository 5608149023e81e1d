package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/madnan/taksa/internal/assess"
	quizstate "github.com/madnan/taksa/internal/quiz"
	"github.com/madnan/taksa/internal/quizgen"
	"github.com/madnan/taksa/internal/router"
	"github.com/madnan/taksa/internal/screen"
	"github.com/madnan/taksa/internal/screens/results"
	"github.com/madnan/taksa/internal/ui/components"
	"github.com/madnan/taksa/internal/ui/layout"
	"github.com/madnan/taksa/internal/ui/theme"
)

// generateTimeout bounds one quiz generation including retries.
const generateTimeout = 90 * time.Second

type phase int

const (
	phaseLoading phase = iota
	phaseAsking
	phaseFailed
)

// QuizScreen runs one quiz: generate questions, walk them one at a
// time, then hand off to the results screen.
type QuizScreen struct {
	generator quizgen.Generator
	assessor  *assess.Assessor

	session *quizstate.Session
	current int
	choice  components.MultiChoice

	phase phase
	err   error
	spin  spinner.Model
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen. Generation starts on Init.
func New(generator quizgen.Generator, assessor *assess.Assessor) *QuizScreen {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return &QuizScreen{
		generator: generator,
		assessor:  assessor,
		session:   quizstate.NewSession(),
		phase:     phaseLoading,
		spin:      s,
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return tea.Batch(q.spin.Tick, q.generateCmd())
}

func (q *QuizScreen) generateCmd() tea.Cmd {
	gen := q.generator
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		qs, err := gen.Generate(ctx)
		return questionsReadyMsg{Questions: qs, Err: err}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		if msg.Err != nil {
			q.phase = phaseFailed
			q.err = msg.Err
			return q, nil
		}
		if err := q.session.SetQuestions(msg.Questions); err != nil {
			q.phase = phaseFailed
			q.err = err
			return q, nil
		}
		q.phase = phaseAsking
		q.current = 0
		q.choice = q.choiceFor(0)
		return q, nil

	case spinner.TickMsg:
		if q.phase != phaseLoading {
			return q, nil
		}
		var cmd tea.Cmd
		q.spin, cmd = q.spin.Update(msg)
		return q, cmd

	case components.ChoiceMadeMsg:
		q.session.SetResponse(q.current, msg.Label)
		return q.advance()

	case tea.KeyMsg:
		if q.phase != phaseAsking {
			return q, nil
		}
		switch msg.String() {
		case "left", "h":
			return q.goTo(q.current - 1)
		case "right", "l":
			return q.goTo(q.current + 1)
		default:
			var cmd tea.Cmd
			q.choice, cmd = q.choice.Update(msg)
			return q, cmd
		}
	}

	return q, nil
}

// advance moves to the next unanswered question, or to results once
// every question has an answer.
func (q *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	total := len(q.session.Questions())
	if q.session.Answered() == total {
		return q.submit()
	}

	// Scan forward from the current question, wrapping around.
	for step := 1; step <= total; step++ {
		i := (q.current + step) % total
		if q.session.Response(i) == "" {
			return q.goTo(i)
		}
	}
	return q, nil
}

func (q *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	session := q.session
	assessor := q.assessor
	return q, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(session, assessor)}
	}
}

func (q *QuizScreen) goTo(i int) (screen.Screen, tea.Cmd) {
	if i < 0 || i >= len(q.session.Questions()) {
		return q, nil
	}
	q.current = i
	q.choice = q.choiceFor(i)
	return q, nil
}

func (q *QuizScreen) choiceFor(i int) components.MultiChoice {
	question := q.session.Questions()[i]
	return components.NewMultiChoice(question.Text, question.Options, q.session.Response(i))
}

func (q *QuizScreen) View(width, height int) string {
	switch q.phase {
	case phaseLoading:
		return q.viewLoading(width, height)
	case phaseFailed:
		return q.viewFailed(width, height)
	}
	return q.viewQuestion(width, height)
}

func (q *QuizScreen) viewLoading(width, height int) string {
	content := q.spin.View() + " Taksa is preparing your quiz..."
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(content)
}

func (q *QuizScreen) viewFailed(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
		Render("Couldn't generate your quiz")
	body := theme.Body.Render("Something went wrong while talking to the model:\n\n" +
		q.err.Error())
	hint := theme.Hint.Render("Press Esc to go back and try again.")

	card := theme.Card.Width(minInt(width-8, 70)).
		Render(title + "\n\n" + body + "\n\n" + hint)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (q *QuizScreen) viewQuestion(width, height int) string {
	total := len(q.session.Questions())
	answered := q.session.Answered()

	boxWidth := minInt(width-8, 76)
	if boxWidth < 40 {
		boxWidth = 40
	}

	counter := theme.Subtitle.Render(
		fmt.Sprintf("Question %d of %d", q.current+1, total))

	progress := components.NewProgressBar(
		"Answered", float64(answered)/float64(total), true, boxWidth).View()

	sections := []string{
		counter,
		progress,
		q.choice.View(),
	}

	card := theme.Card.Width(boxWidth).
		Render(strings.Join(sections, "\n\n"))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

// KeyHints provides footer hints for the active phase.
func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.phase != phaseAsking {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "a-d", Description: "Pick"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "←→", Description: "Question"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
