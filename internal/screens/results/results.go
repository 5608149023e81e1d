package results

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/madnan/taksa/internal/assess"
	"github.com/madnan/taksa/internal/quiz"
	"github.com/madnan/taksa/internal/router"
	"github.com/madnan/taksa/internal/screen"
	"github.com/madnan/taksa/internal/ui/layout"
	"github.com/madnan/taksa/internal/ui/theme"
)

const assessTimeout = 30 * time.Second

// levelReadyMsg is sent when the proficiency assessment finishes.
type levelReadyMsg struct {
	Level assess.Level
}

// ResultsScreen shows the score, the tier feedback, and the model's
// proficiency verdict once it arrives.
type ResultsScreen struct {
	session  *quiz.Session
	assessor *assess.Assessor

	score int
	total int
	tier  quiz.Tier

	level     assess.Level
	assessing bool
	spin      spinner.Model
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New scores the finished session and creates the results screen.
func New(session *quiz.Session, assessor *assess.Assessor) *ResultsScreen {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Secondary)

	score := quiz.Score(session.Questions(), session.Responses())
	total := len(session.Questions())

	return &ResultsScreen{
		session:  session,
		assessor: assessor,
		score:    score,
		total:    total,
		tier:     quiz.TierFor(score, total),
		spin:     s,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	if r.assessor == nil {
		r.level = assess.LevelUnknown
		return nil
	}
	r.assessing = true
	return tea.Batch(r.spin.Tick, r.assessCmd())
}

func (r *ResultsScreen) assessCmd() tea.Cmd {
	assessor := r.assessor
	responses := r.session.Responses()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), assessTimeout)
		defer cancel()

		return levelReadyMsg{Level: assessor.Assess(ctx, responses)}
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case levelReadyMsg:
		r.level = msg.Level
		r.assessing = false
		return r, nil

	case spinner.TickMsg:
		if !r.assessing {
			return r, nil
		}
		var cmd tea.Cmd
		r.spin, cmd = r.spin.Update(msg)
		return r, cmd

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	boxWidth := minInt(width-8, 72)
	if boxWidth < 40 {
		boxWidth = 40
	}

	var sections []string

	sections = append(sections,
		theme.Title.Width(boxWidth).Render("Quiz Complete!"))

	scoreStyle := theme.Correct
	if r.tier == quiz.TierReferTutor {
		scoreStyle = theme.Incorrect
	}
	sections = append(sections, lipgloss.NewStyle().
		Width(boxWidth).
		Align(lipgloss.Center).
		Render(scoreStyle.Render(fmt.Sprintf("You scored %d out of %d!", r.score, r.total))))

	sections = append(sections, r.viewLevel(boxWidth))
	sections = append(sections, r.viewFeedback(boxWidth))

	card := theme.Card.Render(strings.Join(sections, "\n\n"))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (r *ResultsScreen) viewLevel(boxWidth int) string {
	if r.assessing {
		return lipgloss.NewStyle().
			Width(boxWidth).
			Align(lipgloss.Center).
			Render(r.spin.View() + theme.Hint.Render(" assessing your proficiency..."))
	}

	levelStyle := theme.Body.Bold(true).Foreground(theme.Accent)
	return lipgloss.NewStyle().
		Width(boxWidth).
		Align(lipgloss.Center).
		Render(theme.Body.Render("Your English proficiency level is: ") +
			levelStyle.Render(string(r.level)))
}

func (r *ResultsScreen) viewFeedback(boxWidth int) string {
	text := quiz.Feedback(r.tier)

	var fg color.Color
	switch r.tier {
	case quiz.TierPerfect:
		fg = theme.Success
	case quiz.TierGreat:
		fg = theme.Secondary
	case quiz.TierGoodEffort:
		fg = theme.Accent
	default:
		fg = theme.Primary
	}

	style := lipgloss.NewStyle().
		Width(boxWidth).
		Foreground(fg)

	if quiz.IsReferral(r.tier) {
		// The referral gets its own box so the recommendation stands out.
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(1, 2).
			Width(boxWidth).
			Foreground(theme.Text).
			Render(text)
	}

	return style.Align(lipgloss.Center).Render(text)
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

// KeyHints provides footer hints.
func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
