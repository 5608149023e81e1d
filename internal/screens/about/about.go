package about

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/madnan/taksa/internal/screen"
	"github.com/madnan/taksa/internal/ui/theme"
)

const introText = "Hi! I am Taksa, a little creation brought to life by someone very special: Muhammad Adnan. " +
	"He is a passionate student of Electrical Engineering at NUST. But beyond his studies, Adnan poured his heart " +
	"into building me, not just as a technical project, but as a meaningful gift. He named me after someone who " +
	"means the world to him: his Queen. Adnan wanted to gift me to her on her birthday, as a token of his love and " +
	"admiration. Every word I speak and every answer I give carries a little bit of the thought and care he put " +
	"into making me, just for her."

// AboutScreen tells the user who Taksa is.
type AboutScreen struct{}

var _ screen.Screen = (*AboutScreen)(nil)

// New creates the about screen.
func New() *AboutScreen {
	return &AboutScreen{}
}

func (a *AboutScreen) Init() tea.Cmd {
	return nil
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *AboutScreen) View(width, height int) string {
	boxWidth := width * 2 / 3
	if boxWidth > 72 {
		boxWidth = 72
	}
	if boxWidth < 40 {
		boxWidth = 40
	}

	title := theme.Title.Width(boxWidth).Render("About Taksa")
	body := theme.Body.Width(boxWidth).Render(introText)

	card := theme.Card.Render(title + "\n\n" + body)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (a *AboutScreen) Title() string {
	return "About"
}
