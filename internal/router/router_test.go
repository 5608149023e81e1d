package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madnan/taksa/internal/screen"
)

type stubScreen struct {
	title  string
	inited bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPushAndPop(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)
	require.Equal(t, 1, r.Depth())
	assert.Equal(t, home, r.Active())

	quiz := &stubScreen{title: "quiz"}
	r.Push(quiz)
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, quiz, r.Active())
	assert.True(t, quiz.inited)

	r.Pop()
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, home, r.Active())
}

func TestPopNeverEmptiesStack(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	r.Pop()
	r.Pop()

	assert.Equal(t, 1, r.Depth())
	assert.NotNil(t, r.Active())
}

func TestReplaceSwapsTop(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)
	r.Push(&stubScreen{title: "quiz"})

	results := &stubScreen{title: "results"}
	r.Replace(results)

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, results, r.Active())
	assert.True(t, results.inited)

	r.Pop()
	assert.Equal(t, home, r.Active())
}

func TestUpdateHandlesNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	quiz := &stubScreen{title: "quiz"}
	r.Update(PushScreenMsg{Screen: quiz})
	assert.Equal(t, quiz, r.Active())

	results := &stubScreen{title: "results"}
	r.Update(ReplaceScreenMsg{Screen: results})
	assert.Equal(t, results, r.Active())
	assert.Equal(t, 2, r.Depth())

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth())
}

func TestViewRendersActiveScreen(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	assert.Equal(t, "home", r.View(80, 24))
}
