package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOptions = []string{"A) Sad", "B) Angry", "C) Joyful", "D) Tired"}

func keyPress(s string) tea.Msg {
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func enterPress() tea.Msg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func choiceLabel(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(ChoiceMadeMsg)
	require.True(t, ok)
	return msg.Label
}

func TestMultiChoiceEnterConfirmsSelection(t *testing.T) {
	m := NewMultiChoice("What is the synonym of 'happy'?", testOptions, "")

	m, _ = m.Update(keyPress("j"))
	m, _ = m.Update(keyPress("j"))
	m, cmd := m.Update(enterPress())

	assert.Equal(t, "C", choiceLabel(t, cmd))
	assert.Equal(t, "C", m.Chosen)
}

func TestMultiChoiceLetterShortcut(t *testing.T) {
	m := NewMultiChoice("Q", testOptions, "")

	m, cmd := m.Update(keyPress("d"))

	assert.Equal(t, "D", choiceLabel(t, cmd))
	assert.Equal(t, 3, m.Selected)
}

func TestMultiChoiceRestoresPreviousChoice(t *testing.T) {
	m := NewMultiChoice("Q", testOptions, "B")

	assert.Equal(t, 1, m.Selected)
	assert.Equal(t, "B", m.Chosen)
}

func TestMultiChoiceCursorBounds(t *testing.T) {
	m := NewMultiChoice("Q", testOptions, "")

	m, _ = m.Update(keyPress("k"))
	assert.Equal(t, 0, m.Selected)

	for range 10 {
		m, _ = m.Update(keyPress("j"))
	}
	assert.Equal(t, 3, m.Selected)
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "A", optionLabel("A) Sad"))
	assert.Equal(t, "D", optionLabel("D) Tired"))
	assert.Equal(t, "", optionLabel("no label here"))
}
