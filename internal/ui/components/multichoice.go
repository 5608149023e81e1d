package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/madnan/taksa/internal/ui/theme"
)

// MultiChoice is an answer selector for one question. The options
// arrive already labeled ("A) ...", "B) ..."); correctness is never
// shown here, only at the results screen. A previously chosen label can
// be restored so answers stay editable while the quiz is open.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int
	Chosen   string // label of the confirmed choice, empty until enter
}

// NewMultiChoice creates a selector for a question. If chosen names an
// option label, the cursor starts there.
func NewMultiChoice(question string, options []string, chosen string) MultiChoice {
	m := MultiChoice{
		Question: question,
		Options:  options,
		Chosen:   chosen,
	}
	if i := indexOfLabel(options, chosen); i >= 0 {
		m.Selected = i
	}
	return m
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// ChoiceMadeMsg reports that the user confirmed an option.
type ChoiceMadeMsg struct {
	Label string
}

// Update handles keyboard navigation and selection. Option letters act
// as shortcuts: pressing "c" confirms option C directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		return m.choose(m.Selected)
	default:
		if len(key) == 1 {
			if i := labelIndex(strings.ToUpper(key)); i >= 0 && i < len(m.Options) {
				m.Selected = i
				return m.choose(i)
			}
		}
	}

	return m, nil
}

func (m MultiChoice) choose(i int) (MultiChoice, tea.Cmd) {
	label := optionLabel(m.Options[i])
	m.Chosen = label
	return m, func() tea.Msg { return ChoiceMadeMsg{Label: label} }
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}

		line := prefix + opt
		if m.Chosen != "" && optionLabel(opt) == m.Chosen {
			line += "  ●"
		}

		if i == m.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// optionLabel extracts the leading label from an option like "A) Joyful".
func optionLabel(opt string) string {
	if i := strings.Index(opt, ")"); i > 0 {
		return strings.TrimSpace(opt[:i])
	}
	return ""
}

func labelIndex(label string) int {
	switch label {
	case "A":
		return 0
	case "B":
		return 1
	case "C":
		return 2
	case "D":
		return 3
	}
	return -1
}

func indexOfLabel(options []string, label string) int {
	if label == "" {
		return -1
	}
	for i, opt := range options {
		if optionLabel(opt) == label {
			return i
		}
	}
	return -1
}
