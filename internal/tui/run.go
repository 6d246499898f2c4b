package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermmdev/rps/internal/engine"
)

// Run starts the terminal UI and blocks until the player leaves. Quitting
// with esc or ctrl+c instead of choosing Exit returns engine.ErrInputClosed.
func Run(opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}
	var progOpts []tea.ProgramOption
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.aborted {
		return engine.ErrInputClosed
	}
	return nil
}
