package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/madnan/taksa/internal/assess"
	"github.com/madnan/taksa/internal/quizgen"
	"github.com/madnan/taksa/internal/router"
	"github.com/madnan/taksa/internal/screen"
	"github.com/madnan/taksa/internal/screens/about"
	quizscreen "github.com/madnan/taksa/internal/screens/quiz"
	"github.com/madnan/taksa/internal/ui/components"
	"github.com/madnan/taksa/internal/ui/theme"
)

const welcomeText = "Hello! I'm Taksa, your friendly English expert. Whether you want to test " +
	"your English proficiency or just have a chat, I'm here for you!"

// HomeScreen is the landing screen: a greeting and the main menu.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(generator quizgen.Generator, assessor *assess.Assessor) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(generator, assessor)}
			}
		}},
		{Label: "ABOUT TAKSA", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: about.New()}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	boxWidth := width * 2 / 3
	if boxWidth > 64 {
		boxWidth = 64
	}
	if boxWidth < 40 {
		boxWidth = 40
	}

	var sections []string

	sections = append(sections, theme.Title.Width(boxWidth).Render("Taksa"))
	sections = append(sections, theme.Subtitle.Width(boxWidth).Render("Your Friendly English Expert"))
	sections = append(sections, theme.Body.Width(boxWidth).Render(welcomeText))
	sections = append(sections, strings.TrimRight(h.menu.View(), "\n"))

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Card.Width(boxWidth + 4).Render(content))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
