// Package tui is a terminal guestbook: it shows the comments, the average
// mood gauge and the feedback line of a portfolio server.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zachkp/portfolio/internal/guestbook"
)

var keys = struct {
	Refresh, Delete, Edit, Quit key.Binding
}{
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Delete:  key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete all")),
	Edit:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "max comments")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// selector holds the committed max-comments value. The cycle reads it from
// its own goroutine while the view edits the text input.
type selector struct {
	mu    sync.Mutex
	value string
}

func (s *selector) Value() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

func (s *selector) set(v string) {
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()
}

type cycleDoneMsg struct {
	op          string
	list, gauge guestbook.Result
}

// Model is the bubbletea model of the guestbook view.
type Model struct {
	ctx     context.Context
	cycle   *guestbook.Cycle
	trigger *guestbook.Trigger
	mounted chan cycleDoneMsg

	display, chart, feedback *guestbook.Buffer
	sel                      *selector
	input                    textinput.Model
	editing                  bool

	busy   bool
	status string
	err    error
}

// New builds the view over src. maxComments is the initial selector.
func New(ctx context.Context, src guestbook.Source, renderer guestbook.Renderer, maxComments string, logger *slog.Logger) (Model, error) {
	m := Model{
		ctx:      ctx,
		trigger:  &guestbook.Trigger{},
		mounted:  make(chan cycleDoneMsg, 1),
		display:  &guestbook.Buffer{},
		chart:    &guestbook.Buffer{},
		feedback: &guestbook.Buffer{},
		sel:      &selector{value: maxComments},
	}

	cycle, err := guestbook.NewCycle(src, renderer, guestbook.Bindings{
		MaxComments: m.sel,
		Display:     m.display,
		Chart:       m.chart,
		Feedback:    m.feedback,
	}, guestbook.WithLogger(logger))
	if err != nil {
		return Model{}, err
	}
	m.cycle = cycle

	m.input = textinput.New()
	m.input.Prompt = "max comments> "
	m.input.Placeholder = "5, 10 or all"
	m.input.CharLimit = 8
	m.input.SetValue(maxComments)

	mounted := m.mounted
	m.trigger.OnReadyCycle(cycle, func(list, gauge guestbook.Result) {
		mounted <- cycleDoneMsg{op: "load", list: list, gauge: gauge}
	})
	return m, nil
}

// Init mounts the view, which loads the comments and the gauge.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		if !m.trigger.Mount(m.ctx) {
			return nil
		}
		return <-m.mounted
	}
}

func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		list := m.cycle.Refresh(m.ctx)
		gauge := m.cycle.RenderMoodGauge(m.ctx)
		return cycleDoneMsg{op: "refresh", list: list, gauge: gauge}
	}
}

func (m Model) deleteAll() tea.Cmd {
	return func() tea.Msg {
		list := m.cycle.DeleteAll(m.ctx)
		gauge := m.cycle.RenderMoodGauge(m.ctx)
		return cycleDoneMsg{op: "delete", list: list, gauge: gauge}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cycleDoneMsg:
		m.busy = false
		m.err = firstErr(msg.list.Err, msg.gauge.Err)
		m.status = describe(msg)
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			switch msg.String() {
			case "enter":
				m.editing = false
				m.input.Blur()
				m.sel.set(strings.TrimSpace(m.input.Value()))
				m.busy = true
				return m, m.refresh()
			case "esc":
				m.editing = false
				m.input.Blur()
				m.input.SetValue(m.sel.Value())
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case m.busy:
			return m, nil
		case key.Matches(msg, keys.Refresh):
			m.busy = true
			return m, m.refresh()
		case key.Matches(msg, keys.Delete):
			m.busy = true
			return m, m.deleteAll()
		case key.Matches(msg, keys.Edit):
			m.editing = true
			return m, m.input.Focus()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Guestbook"))
	b.WriteString("\n\n")

	if chart := m.chart.String(); chart != "" {
		b.WriteString(chart + "\n")
	}
	if fb := m.feedback.String(); fb != "" {
		b.WriteString(fb + "\n")
	}
	b.WriteString("\n")

	if m.editing {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(mutedStyle.Render("showing: " + orAll(m.sel.Value())))
	}
	b.WriteString("\n\n")

	switch {
	case m.display.Writes() > 0:
		b.WriteString(m.display.String())
	case !m.trigger.Fired() || m.busy:
		b.WriteString(mutedStyle.Render("loading..."))
	default:
		b.WriteString(mutedStyle.Render("nothing loaded, press r to retry"))
	}
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(redStyle.Render("✖ " + m.err.Error()))
	case m.busy:
		b.WriteString(mutedStyle.Render("working..."))
	case m.status != "":
		b.WriteString(greenStyle.Render("✔ " + m.status))
	}
	b.WriteString("\n")

	help := []string{}
	for _, k := range []key.Binding{keys.Refresh, keys.Delete, keys.Edit, keys.Quit} {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(helpStyle.Render(strings.Join(help, " · ")))

	return panelStyle.Render(b.String())
}

// Run starts the terminal guestbook and blocks until the user quits.
func Run(ctx context.Context, src guestbook.Source, renderer guestbook.Renderer, maxComments string, logger *slog.Logger) error {
	m, err := New(ctx, src, renderer, maxComments, logger)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

func describe(msg cycleDoneMsg) string {
	var what string
	switch msg.list.State {
	case guestbook.StateEmpty:
		what = "no comments"
	default:
		what = fmt.Sprintf("%d comments", msg.list.Count)
	}
	switch msg.op {
	case "delete":
		return "deleted, " + what
	default:
		return what
	}
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func orAll(v string) string {
	if strings.TrimSpace(v) == "" {
		return guestbook.SelectorAll
	}
	return v
}
