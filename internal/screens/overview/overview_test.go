package overview

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizpanel/internal/panel"
	"github.com/abhisek/quizpanel/internal/quiz"
)

type stubStatus struct {
	st panel.Status
}

func (s *stubStatus) Status() panel.Status { return s.st }

func TestQuestionStates(t *testing.T) {
	st := &stubStatus{st: panel.Status{Booted: true, Question: 1, Phase: quiz.PhaseSelecting}}
	o := New(quiz.Default(), st)

	assert.Equal(t, StateAnswered, o.QuestionState(0))
	assert.Equal(t, StateCurrent, o.QuestionState(1))
	assert.Equal(t, StatePending, o.QuestionState(2))

	o.Init()
	st.st.Phase = quiz.PhaseShowingResult
	o.Update(tickMsg{gen: o.gen})
	assert.Equal(t, StateAnswered, o.QuestionState(1))

	st.st.Phase = quiz.PhaseFinished
	o.Update(tickMsg{gen: o.gen})
	assert.Equal(t, StateAnswered, o.QuestionState(2))
}

func TestOptionStatesFollowWindow(t *testing.T) {
	tests := []struct {
		selected int
		want     []RowState
	}{
		{0, []RowState{StateHighlighted, StateOnScreen, StateNone}},
		{1, []RowState{StateOnScreen, StateHighlighted, StateNone}},
		{2, []RowState{StateNone, StateOnScreen, StateHighlighted}},
	}
	for _, tt := range tests {
		st := &stubStatus{st: panel.Status{Booted: true, Selected: tt.selected, Phase: quiz.PhaseSelecting}}
		o := New(quiz.Default(), st)
		for i, want := range tt.want {
			assert.Equal(t, want, o.OptionState(i), "selected %d option %d", tt.selected, i)
		}
	}
}

func TestNothingBeforeBoot(t *testing.T) {
	o := New(quiz.Default(), &stubStatus{})
	assert.Equal(t, StatePending, o.QuestionState(0))
	assert.Equal(t, StateNone, o.OptionState(0))
}

func TestCursorSkipsHeaders(t *testing.T) {
	o := New(quiz.Default(), nil)
	assert.Equal(t, 1, o.Cursor())

	o.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, o.Cursor(), "cannot move onto the first header")

	for range 3 {
		o.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	// Questions header, 3 questions, Options header, first option.
	assert.Equal(t, 5, o.Cursor())
}

func TestViewScrollsToCursor(t *testing.T) {
	o := New(quiz.Default(), nil)
	for range 10 {
		o.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	view := o.View(60, 3)
	assert.Contains(t, view, "Option C")
	assert.NotContains(t, view, "Question 1")
}

func TestViewListsEverything(t *testing.T) {
	o := New(quiz.Default(), nil)
	view := o.View(60, 20)
	for _, want := range []string{"QUESTIONS", "Question 1", "Question 3", "OPTIONS", "A  Option A", "C  Option C"} {
		assert.Contains(t, view, want)
	}
}

func TestTickFromClosedOverviewIsDropped(t *testing.T) {
	st := &stubStatus{st: panel.Status{Booted: true, Phase: quiz.PhaseSelecting}}
	first := New(quiz.Default(), st)
	first.Init()
	stale := tickMsg{gen: first.gen}

	second := New(quiz.Default(), st)
	require.NotNil(t, second.Init())
	assert.NotEqual(t, first.gen, second.gen)

	st.st.Question = 2
	_, cmd := second.Update(stale)
	assert.Nil(t, cmd, "stale chain ends")
	assert.Equal(t, StateCurrent, second.QuestionState(0), "stale tick does not refresh")

	_, cmd = second.Update(tickMsg{gen: second.gen})
	assert.NotNil(t, cmd)
	assert.Equal(t, StateAnswered, second.QuestionState(0))
}
