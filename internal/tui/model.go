package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermmdev/rps/internal/engine"
	"github.com/javiermmdev/rps/internal/report"
	"github.com/javiermmdev/rps/internal/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	roundBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)
)

// Options configures the terminal UI. Nil Input and Output use the
// terminal.
type Options struct {
	Input     io.Reader
	Output    io.Writer
	Lang      string
	NoColor   bool
	Generator *engine.Generator
	Logger    *slog.Logger
}

// Model is the bubbletea model for one game session.
type Model struct {
	input     textinput.Model
	presenter *report.Presenter
	msgs      report.Messages
	gen       *engine.Generator
	log       *slog.Logger
	noColor   bool

	state   engine.State
	last    *types.Round
	rounds  int
	notice  string
	aborted bool
}

// NewModel builds a Model ready to accept the first choice.
func NewModel(opts Options) (Model, error) {
	p, err := report.NewPresenter(io.Discard, report.PrintOptions{NoColor: opts.NoColor, Lang: opts.Lang})
	if err != nil {
		return Model{}, err
	}
	gen := opts.Generator
	if gen == nil {
		gen = engine.NewGenerator(nil)
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	ti := textinput.New()
	ti.Placeholder = "0-3"
	ti.CharLimit = 8
	ti.Width = 8
	ti.Focus()
	return Model{
		input:     ti,
		presenter: p,
		msgs:      p.Messages(),
		gen:       gen,
		log:       log,
		noColor:   opts.NoColor,
		state:     engine.StateAwaitingInput,
	}, nil
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			m.state = engine.StateTerminated
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	m.input.SetValue("")
	c, err := engine.ParseChoice(text)
	if err != nil {
		m.notice = m.msgs.InvalidOption
		return m, nil
	}
	m.notice = ""
	if c == types.Exit {
		m.state = engine.StateTerminated
		return m, tea.Quit
	}
	m.state = engine.StatePlaying
	computer := m.gen.Next()
	result := engine.Evaluate(c, computer)
	if result == types.Invalid {
		m.log.Error("round produced no winner classification", "user", c.String(), "computer", computer.String())
	}
	m.last = &types.Round{User: c, Computer: computer, Result: result}
	m.rounds++
	m.log.Debug("round played", "round", m.rounds, "user", c.String(), "computer", computer.String(), "result", result.String())
	m.state = engine.StateAwaitingInput
	return m, nil
}

func (m Model) View() string {
	if m.state == engine.StateTerminated {
		return m.msgs.Farewell + "\n"
	}
	var b strings.Builder
	b.WriteString(m.style(titleStyle, m.msgs.Welcome))
	b.WriteString("\n\n")
	b.WriteString(m.msgs.OptionsHeader)
	b.WriteString("\n")
	for _, c := range types.AllChoices() {
		fmt.Fprintf(&b, "  %s  %s\n", m.style(keyStyle, fmt.Sprint(c.Code())), m.msgs.Name(c))
	}
	b.WriteString("\n")
	if m.last != nil {
		round := fmt.Sprintf(m.msgs.UserChoiceFmt, m.msgs.Name(m.last.User)) + "\n" +
			fmt.Sprintf(m.msgs.ComputerFmt, m.msgs.Name(m.last.Computer)) + "\n" +
			m.presenter.ResultText(m.last.Result)
		if m.noColor {
			b.WriteString(round)
		} else {
			b.WriteString(roundBoxStyle.Render(round))
		}
		b.WriteString("\n\n")
	}
	if m.notice != "" {
		b.WriteString(m.style(noticeStyle, m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.msgs.Prompt)
	b.WriteString(": ")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.style(helpStyle, "enter: play • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// State reports the current game state.
func (m Model) State() engine.State { return m.state }

// Rounds is the number of rounds played in this session.
func (m Model) Rounds() int { return m.rounds }

// LastRound returns the most recent round, if any.
func (m Model) LastRound() (types.Round, bool) {
	if m.last == nil {
		return types.Round{}, false
	}
	return *m.last, true
}

func (m Model) style(s lipgloss.Style, text string) string {
	if m.noColor {
		return text
	}
	return s.Render(text)
}
