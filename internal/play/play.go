// Package play renders a running timeline in the terminal. The model owns a
// virtual clock advanced by real elapsed time on every frame tick, so the
// whole timeline executes inside Update on one goroutine.
package play

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mikehobi/motion/clock"
	"github.com/mikehobi/motion/timeline"
	"github.com/mikehobi/motion/tween"
)

const (
	frameRate = 60
	barWidth  = 40
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	trackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model plays one timeline against a tween board and draws its properties
// as bars.
type Model struct {
	title    string
	board    *tween.Board
	vc       *clock.Virtual
	root     timeline.Node
	run      *runState
	started  bool
	lastTick time.Time
}

// runState outlives the value copies bubbletea makes of the model; the
// timeline's completion callback writes into it.
type runState struct {
	finished bool
	doneAt   time.Duration
}

// New builds a playback model. setup defines the board's properties and
// returns the timeline to run; the timeline's actions must set values on
// the same board.
func New(title string, setup func(b *tween.Board) (timeline.Node, error)) (Model, error) {
	vc := clock.NewVirtual()
	board := tween.NewBoard(vc)
	root, err := setup(board)
	if err != nil {
		return Model{}, err
	}
	return Model{
		title: title,
		board: board,
		vc:    vc,
		root:  root,
		run:   &runState{},
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case TickMsg:
		now := time.Time(msg)
		if !m.started {
			m.started = true
			m.lastTick = now
			sched := timeline.NewScheduler(m.board, m.vc)
			run, vc := m.run, m.vc
			sched.Run(m.root, func(bool) {
				run.finished = true
				run.doneAt = vc.Now()
			})
			return m, tick()
		}

		m.vc.Advance(now.Sub(m.lastTick))
		m.lastTick = now

		if m.run.finished && m.board.Idle() {
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	for _, name := range m.board.Names() {
		v := m.board.Displayed(name)
		b.WriteString(labelStyle.Render(name))
		b.WriteString(renderBar(v, barWidth))
		b.WriteString(valueStyle.Render(fmt.Sprintf(" %5.2f", v)))
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString(helpStyle.Render("\nq quit"))
	return b.String()
}

func (m Model) status() string {
	if m.run.finished {
		return fmt.Sprintf("finished at %v", m.run.doneAt.Round(time.Millisecond))
	}
	return fmt.Sprintf("t = %v", m.vc.Now().Round(time.Millisecond))
}

var (
	barLow, _  = colorful.Hex("#5a56e0")
	barHigh, _ = colorful.Hex("#ee6ff8")
)

// renderBar draws value as a filled bar, blending the fill color along the
// value. Values outside [0,1] (back-curve overshoot) clamp.
func renderBar(value float64, width int) string {
	v := value
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	filled := int(v*float64(width) + 0.5)

	color := barLow.BlendHcl(barHigh, v).Hex()
	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return fill.Render(strings.Repeat("█", filled)) +
		trackStyle.Render(strings.Repeat("░", width-filled))
}

// Run plays the model in its own bubbletea program.
func Run(title string, setup func(b *tween.Board) (timeline.Node, error)) error {
	m, err := New(title, setup)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}
