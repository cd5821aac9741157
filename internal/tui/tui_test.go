package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/guestbook"
	"github.com/Zachkp/portfolio/internal/model"
)

type fakeSource struct {
	mu       sync.Mutex
	comments []model.Comment
	fetchErr error
	lastSel  string
}

func (s *fakeSource) Comments(ctx context.Context, sel guestbook.Selector) ([]model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !sel.IsAll() {
		s.lastSel = sel.String()
	}
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return append([]model.Comment(nil), s.comments...), nil
}

func (s *fakeSource) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments = nil
	return nil
}

func newModel(t *testing.T, src guestbook.Source, maxComments string) Model {
	t.Helper()
	m, err := New(context.Background(), src, Renderer{Location: time.UTC}, maxComments, nil)
	require.NoError(t, err)
	return m
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	return next.(Model)
}

func press(m Model, k string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch k {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestInitMountsOnce(t *testing.T) {
	src := &fakeSource{comments: []model.Comment{{Name: "Ann", Mood: 90, Timestamp: 1700000000000, Text: "hi"}}}
	m := newModel(t, src, "5")

	m = run(t, m, m.Init())
	view := m.View()
	assert.Contains(t, view, "Ann")
	assert.Contains(t, view, "Mood: 90/100")
	assert.Contains(t, view, "Tue Nov 14 2023 22:13:20 GMT+0000 (UTC)")
	assert.Contains(t, view, "Average mood is 90! Woohoo!")
	assert.Contains(t, view, "1 comments")
	assert.Equal(t, "5", src.lastSel)

	// A second Init does not fetch again.
	assert.Nil(t, m.Init()())
}

func TestDeleteAllShowsPlaceholder(t *testing.T) {
	src := &fakeSource{comments: []model.Comment{{Name: "Ann", Mood: 90}}}
	m := newModel(t, src, "all")
	m = run(t, m, m.Init())

	m, cmd := press(m, "D")
	assert.True(t, m.busy)
	m = run(t, m, cmd)

	view := m.View()
	assert.NotContains(t, view, "Ann")
	assert.Contains(t, view, guestbook.EmptyMessage)
	assert.Contains(t, view, "deleted, no comments")
	assert.Contains(t, view, "Average mood is 0? Oh no!")
}

func TestEditSelector(t *testing.T) {
	src := &fakeSource{comments: []model.Comment{{Name: "Ann", Mood: 90}}}
	m := newModel(t, src, "5")
	m = run(t, m, m.Init())

	m, _ = press(m, "tab")
	assert.True(t, m.editing)
	m.input.SetValue("10")
	m, cmd := press(m, "enter")
	assert.False(t, m.editing)
	m = run(t, m, cmd)

	assert.Equal(t, "10", src.lastSel)
	assert.Contains(t, m.View(), "showing: 10")
}

func TestFetchErrorKeepsList(t *testing.T) {
	src := &fakeSource{comments: []model.Comment{{Name: "Ann", Mood: 90}}}
	m := newModel(t, src, "all")
	m = run(t, m, m.Init())

	src.fetchErr = errors.New("server unreachable")
	m, cmd := press(m, "r")
	m = run(t, m, cmd)

	view := m.View()
	assert.Contains(t, view, "Ann")
	assert.Contains(t, view, "server unreachable")
}

func TestListPlaceholderBeforeFirstRender(t *testing.T) {
	src := &fakeSource{fetchErr: errors.New("server unreachable")}
	m := newModel(t, src, "all")
	assert.Contains(t, m.View(), "loading...")

	m = run(t, m, m.Init())
	view := m.View()
	assert.NotContains(t, view, "loading...")
	assert.Contains(t, view, "nothing loaded, press r to retry")
	assert.Contains(t, view, "server unreachable")

	src.fetchErr = nil
	src.comments = []model.Comment{{Name: "Ann", Mood: 90}}
	m, cmd := press(m, "r")
	m = run(t, m, cmd)
	assert.Contains(t, m.View(), "Ann")
	assert.NotContains(t, m.View(), "press r to retry")
}

func TestRendererAnonAndTiers(t *testing.T) {
	r := Renderer{Location: time.UTC}
	out := r.Comment(model.Comment{Mood: 65})
	assert.Contains(t, out, "anon")
	assert.Contains(t, out, "Mood: 65/100")

	assert.Contains(t, r.Feedback(70), ". Not great")
	assert.Contains(t, r.Gauge(70), "70/100")
	assert.Equal(t, guestbook.EmptyMessage, r.Empty())
}

func TestQuit(t *testing.T) {
	m := newModel(t, &fakeSource{}, "all")
	_, cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
