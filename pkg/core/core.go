package core

import (
	"context"
	"io"
	"log/slog"

	"github.com/javiermmdev/rps/internal/engine"
	"github.com/javiermmdev/rps/internal/report"
	"github.com/javiermmdev/rps/internal/types"
)

// Re-export selected internal types as a stable public API surface.
type Choice = types.Choice
type RoundResult = types.RoundResult

const (
	Rock     = types.Rock
	Paper    = types.Paper
	Scissors = types.Scissors
	Exit     = types.Exit

	Tie          = types.Tie
	UserWins     = types.UserWins
	ComputerWins = types.ComputerWins
	Invalid      = types.Invalid
)

// ErrInputClosed is returned by Play when input ends before the player exits.
var ErrInputClosed = engine.ErrInputClosed

// Options configures Play. The zero value plays in English, uncolored, with a
// random opponent and no logging.
type Options struct {
	Lang   string
	Color  bool
	Seed   uint64
	Logger *slog.Logger
}

// Evaluate scores a round from the user's side.
func Evaluate(user, computer Choice) RoundResult { return engine.Evaluate(user, computer) }

// ParseChoice converts user text to a Choice.
func ParseChoice(text string) (Choice, error) { return engine.ParseChoice(text) }

// Play runs a complete session reading choices from in and writing every
// message to out.
func Play(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	p, err := report.NewPresenter(out, report.PrintOptions{NoColor: !opts.Color, Lang: opts.Lang})
	if err != nil {
		return err
	}
	gen := engine.NewGenerator(nil)
	if opts.Seed != 0 {
		gen = engine.NewSeededGenerator(opts.Seed)
	}
	return engine.NewGame(engine.Config{
		In:        in,
		Out:       p,
		Generator: gen,
		Logger:    opts.Logger,
	}).Run(ctx)
}
