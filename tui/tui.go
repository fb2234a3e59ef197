package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lifeterm/model"
	"lifeterm/utils"
)

var (
	title  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

type tickMsg time.Time

// Model is the bubbletea program state for the live view. It drives the same
// double-buffered engine as the plain loop, one generation per tick.
type Model struct {
	cur, next  *model.Grid
	generation int
	limit      int
	interval   time.Duration
	parallel   bool

	paused bool
	stable bool
	done   bool
}

// NewModel wraps a pair of prepared grid buffers for live viewing.
func NewModel(cur, next *model.Grid, cfg utils.Config) Model {
	return Model{
		cur:        cur,
		next:       next,
		generation: 1,
		limit:      cfg.Generations,
		interval:   cfg.FrameInterval(),
		parallel:   cfg.Parallel,
	}
}

func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		}
	case tickMsg:
		if m.done || m.paused {
			return m, tick(m.interval)
		}
		if m.cur.Equal(m.next) {
			m.stable = true
			m.done = true
			return m, tick(m.interval)
		}
		if m.parallel {
			model.NextParallel(m.cur, m.next)
		} else {
			model.Next(m.cur, m.next)
		}
		m.cur, m.next = m.next, m.cur
		if m.generation++; m.generation > m.limit {
			m.generation = m.limit
			m.done = true
		}
		return m, tick(m.interval)
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(title.Render(fmt.Sprintf("Generation %d/%d", m.generation, m.limit)))
	b.WriteByte('\n')

	for row := 0; row < m.cur.Rows(); row++ {
		for col := 0; col < m.cur.Cols(); col++ {
			if m.cur.Get(row, col) {
				b.WriteString("██")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}

	status := green.Render("running")
	switch {
	case m.stable:
		status = yellow.Render("stable")
	case m.done:
		status = yellow.Render("limit reached")
	case m.paused:
		status = yellow.Render("paused")
	}
	fmt.Fprintf(&b, "population %d  %s\n", m.cur.CountLiving(), status)
	b.WriteString(dim.Render("space pause · q quit"))
	b.WriteByte('\n')
	return b.String()
}
