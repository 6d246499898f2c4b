package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/javiermmdev/rps/internal/types"
)

type PrintOptions struct {
	NoColor bool
	Lang    string
}

var (
	tieStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	winStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	lossStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

// Presenter writes game messages to w in the configured language.
type Presenter struct {
	w       io.Writer
	msg     Messages
	noColor bool
}

// NewPresenter builds a Presenter for opts.Lang. It fails only when the
// language has no catalog.
func NewPresenter(w io.Writer, opts PrintOptions) (*Presenter, error) {
	m, err := Catalog(opts.Lang)
	if err != nil {
		return nil, err
	}
	return &Presenter{w: w, msg: m, noColor: opts.NoColor}, nil
}

// Messages exposes the catalog in use.
func (p *Presenter) Messages() Messages { return p.msg }

// Welcome prints the greeting followed by a table of every choice and its code.
func (p *Presenter) Welcome() error {
	fmt.Fprintln(p.w, p.style(titleStyle, p.msg.Welcome))
	fmt.Fprintln(p.w, p.msg.OptionsHeader)
	table := tablewriter.NewWriter(p.w)
	table.Header(p.msg.CodeHeader, p.msg.ChoiceHeader)
	for _, c := range types.AllChoices() {
		if err := table.Append([]string{strconv.Itoa(c.Code()), p.msg.Name(c)}); err != nil {
			return fmt.Errorf("options table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("options table: %w", err)
	}
	return nil
}

func (p *Presenter) Prompt() { fmt.Fprintln(p.w, p.msg.Prompt) }

func (p *Presenter) InvalidOption() { fmt.Fprintln(p.w, p.msg.InvalidOption) }

func (p *Presenter) UserChoice(c types.Choice) {
	fmt.Fprintf(p.w, p.msg.UserChoiceFmt+"\n", p.msg.Name(c))
}

func (p *Presenter) ComputerChoice(c types.Choice) {
	fmt.Fprintf(p.w, p.msg.ComputerFmt+"\n", p.msg.Name(c))
}

// Result prints the line for r, colored by outcome.
func (p *Presenter) Result(r types.RoundResult) {
	fmt.Fprintln(p.w, p.ResultText(r))
}

// ResultText is the styled result line without a trailing newline.
func (p *Presenter) ResultText(r types.RoundResult) string {
	return p.style(resultStyle(r), p.msg.Result(r))
}

func (p *Presenter) NewRound() {
	fmt.Fprintln(p.w, p.msg.NewRound)
	fmt.Fprintln(p.w, p.msg.Separator)
}

func (p *Presenter) Farewell() { fmt.Fprintln(p.w, p.msg.Farewell) }

func (p *Presenter) style(s lipgloss.Style, text string) string {
	if p.noColor {
		return text
	}
	return s.Render(text)
}

func resultStyle(r types.RoundResult) lipgloss.Style {
	switch r {
	case types.Tie:
		return tieStyle
	case types.UserWins:
		return winStyle
	case types.ComputerWins:
		return lossStyle
	default:
		return errorStyle
	}
}
