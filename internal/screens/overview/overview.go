// Package overview lists the quiz's questions and options next to the live
// session state.
package overview

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizpanel/internal/panel"
	"github.com/abhisek/quizpanel/internal/quiz"
	"github.com/abhisek/quizpanel/internal/screen"
	"github.com/abhisek/quizpanel/internal/ui/layout"
	"github.com/abhisek/quizpanel/internal/ui/theme"
)

const refreshInterval = 100 * time.Millisecond

// tickMsg carries the generation of the tick chain that produced it. Every
// Init starts a new generation, unique across screen instances, so ticks
// from a closed overview are dropped by a newer one.
type tickMsg struct {
	gen int64
}

var generations atomic.Int64

type rowKind int

const (
	rowHeader rowKind = iota
	rowQuestion
	rowOption
)

type row struct {
	kind  rowKind
	title string
	index int
}

// StatusSource reports the control loop's view of the session.
type StatusSource interface {
	Status() panel.Status
}

// RowState is how a question or option relates to the session.
type RowState int

const (
	StateNone RowState = iota
	StatePending
	StateCurrent
	StateAnswered
	StateOnScreen
	StateHighlighted
)

// Icon returns the marker drawn before the row.
func (s RowState) Icon() string {
	switch s {
	case StateAnswered:
		return "✓"
	case StateCurrent, StateHighlighted:
		return "▶"
	case StateOnScreen:
		return "□"
	case StatePending:
		return "·"
	default:
		return " "
	}
}

// Label returns the right-hand status text.
func (s RowState) Label() string {
	switch s {
	case StateAnswered:
		return "answered"
	case StateCurrent:
		return "current"
	case StatePending:
		return "pending"
	case StateOnScreen:
		return "on screen"
	case StateHighlighted:
		return "highlighted"
	default:
		return ""
	}
}

// OverviewScreen shows every question and option with its current state.
// Answers are not revealed.
type OverviewScreen struct {
	cfg          quiz.Config
	status       StatusSource
	st           panel.Status
	rows         []row
	cursor       int
	scrollOffset int
	gen          int64
}

var _ screen.Screen = (*OverviewScreen)(nil)
var _ screen.KeyHintProvider = (*OverviewScreen)(nil)

// New creates an OverviewScreen for cfg.
func New(cfg quiz.Config, status StatusSource) *OverviewScreen {
	rows := []row{{kind: rowHeader, title: "Questions"}}
	for i := range cfg.QuestionCount() {
		rows = append(rows, row{kind: rowQuestion, title: fmt.Sprintf("Question %d", i+1), index: i})
	}
	rows = append(rows, row{kind: rowHeader, title: "Options"})
	for i, label := range cfg.Options {
		rows = append(rows, row{kind: rowOption, title: fmt.Sprintf("%s  %s", quiz.OptionID(i), label), index: i})
	}

	s := &OverviewScreen{cfg: cfg, status: status, rows: rows}
	s.refresh()
	s.cursor = 1
	return s
}

func (s *OverviewScreen) Init() tea.Cmd {
	s.gen = generations.Add(1)
	return tick(s.gen)
}

func (s *OverviewScreen) Title() string {
	return "Overview"
}

// KeyHints returns the key binding hints for the footer.
func (s *OverviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *OverviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != s.gen {
			return s, nil
		}
		s.refresh()
		return s, tick(s.gen)
	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		}
	}
	return s, nil
}

func (s *OverviewScreen) View(width, height int) string {
	s.adjustScroll(height)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < height; i++ {
		r := s.rows[i]
		if r.kind == rowHeader {
			lines = append(lines, renderHeader(r.title, width))
			continue
		}
		lines = append(lines, s.renderRow(r, i == s.cursor, width))
	}
	return strings.Join(lines, "\n")
}

// Cursor returns the index of the focused row.
func (s *OverviewScreen) Cursor() int {
	return s.cursor
}

// QuestionState returns the state of question i.
func (s *OverviewScreen) QuestionState(i int) RowState {
	if !s.st.Booted {
		return StatePending
	}
	switch {
	case s.st.Phase == quiz.PhaseFinished:
		return StateAnswered
	case i < s.st.Question:
		return StateAnswered
	case i == s.st.Question && s.st.Phase == quiz.PhaseShowingResult:
		return StateAnswered
	case i == s.st.Question:
		return StateCurrent
	default:
		return StatePending
	}
}

// OptionState returns the state of option i on the display.
func (s *OverviewScreen) OptionState(i int) RowState {
	if !s.st.Booted || s.st.Phase != quiz.PhaseSelecting {
		return StateNone
	}
	if i == s.st.Selected {
		return StateHighlighted
	}
	w := quiz.VisibleWindow(s.st.Selected, s.cfg.OptionCount(), s.cfg.Display.Rows)
	if w.Contains(i) {
		return StateOnScreen
	}
	return StateNone
}

func (s *OverviewScreen) refresh() {
	if s.status != nil {
		s.st = s.status.Status()
	}
}

// moveCursor moves the cursor by delta, skipping headers.
func (s *OverviewScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind != rowHeader {
			s.cursor = next
			return
		}
		next += delta
	}
}

// adjustScroll keeps the cursor, and the header above it, in view.
func (s *OverviewScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	top := s.cursor
	for top > 0 && s.rows[top-1].kind == rowHeader {
		top--
	}
	if top < s.scrollOffset {
		s.scrollOffset = top
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func renderHeader(title string, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		PaddingLeft(2).
		Render(strings.ToUpper(title))
}

func (s *OverviewScreen) renderRow(r row, selected bool, width int) string {
	state := s.QuestionState(r.index)
	if r.kind == rowOption {
		state = s.OptionState(r.index)
	}

	labelWidth := 11
	nameWidth := width - 4 - 3 - labelWidth - 2
	if nameWidth < 10 {
		nameWidth = 10
	}
	name := r.title
	if len([]rune(name)) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	switch {
	case selected:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	case state == StateAnswered:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
		labelStyle = nameStyle
	case state == StateCurrent || state == StateHighlighted:
		labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	case state == StatePending:
		nameStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}
	return fmt.Sprintf("  %s%s %s  %s",
		cursor,
		state.Icon(),
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		labelStyle.Render(fmt.Sprintf("%*s", labelWidth, state.Label())),
	)
}

func tick(gen int64) tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}
