package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javiermmdev/rps/internal/engine"
	"github.com/javiermmdev/rps/internal/report"
	"github.com/javiermmdev/rps/internal/types"
)

type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func newTestModel(t *testing.T, computer int) Model {
	t.Helper()
	m, err := NewModel(Options{
		Lang:      "en",
		NoColor:   true,
		Generator: engine.NewGenerator(fixedSource(computer)),
	})
	require.NoError(t, err)
	return m
}

// typeLine feeds text as key presses followed by enter.
func typeLine(t *testing.T, m Model, text string) (Model, tea.Cmd) {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	next, cmd := next.(Model).Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_PlaysRound(t *testing.T) {
	m := newTestModel(t, 2)
	m, cmd := typeLine(t, m, "0")
	assert.False(t, isQuit(cmd))
	assert.Equal(t, engine.StateAwaitingInput, m.State())
	assert.Equal(t, 1, m.Rounds())

	r, ok := m.LastRound()
	require.True(t, ok)
	assert.Equal(t, types.Round{User: types.Rock, Computer: types.Scissors, Result: types.UserWins}, r)

	view := m.View()
	assert.Contains(t, view, "You chose Rock")
	assert.Contains(t, view, "The computer chose Scissors")
	assert.Contains(t, view, "You win")
}

func TestModel_InvalidInputShowsNotice(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = typeLine(t, m, "abc")
	assert.Contains(t, m.View(), "Invalid option, please try again.")
	assert.Equal(t, 0, m.Rounds())

	m, _ = typeLine(t, m, "1")
	assert.NotContains(t, m.View(), "Invalid option")
	assert.Equal(t, 1, m.Rounds())
}

func TestModel_ExitQuits(t *testing.T) {
	m := newTestModel(t, 0)
	m, cmd := typeLine(t, m, "3")
	assert.True(t, isQuit(cmd))
	assert.Equal(t, engine.StateTerminated, m.State())
	assert.False(t, m.aborted)
	assert.Equal(t, "Game over.\n", m.View())
	assert.Equal(t, 0, m.Rounds())
}

func TestModel_EscAborts(t *testing.T) {
	m := newTestModel(t, 0)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, isQuit(cmd))
	assert.True(t, next.(Model).aborted)
}

func TestModel_WelcomeListsOptions(t *testing.T) {
	m := newTestModel(t, 0)
	view := m.View()
	assert.Contains(t, view, "Welcome to Rock, Paper, Scissors")
	for _, c := range types.AllChoices() {
		assert.Contains(t, view, c.String())
	}
}

func TestNewModel_UnknownLang(t *testing.T) {
	_, err := NewModel(Options{Lang: "zz"})
	assert.ErrorIs(t, err, report.ErrUnknownLang)
}
