package engine

import (
	"context"
	"io"
	"log/slog"

	"github.com/javiermmdev/rps/internal/types"
)

// State is a step of the game loop.
type State int

const (
	StateWelcome State = iota
	StateAwaitingInput
	StatePlaying
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateAwaitingInput:
		return "awaiting_input"
	case StatePlaying:
		return "playing"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Presenter receives every message the loop emits.
type Presenter interface {
	Prompter
	Welcome() error
	ComputerChoice(types.Choice)
	Result(types.RoundResult)
	NewRound()
	Farewell()
}

// Config wires a Game. Generator and Logger are optional.
type Config struct {
	In        io.Reader
	Out       Presenter
	Generator *Generator
	Logger    *slog.Logger
}

// Game runs rounds until the user picks Exit.
type Game struct {
	input  *InputReader
	out    Presenter
	gen    *Generator
	log    *slog.Logger
	state  State
	user   types.Choice
	rounds int
}

func NewGame(cfg Config) *Game {
	gen := cfg.Generator
	if gen == nil {
		gen = NewGenerator(nil)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Game{
		input: NewInputReader(cfg.In, cfg.Out),
		out:   cfg.Out,
		gen:   gen,
		log:   log,
		state: StateWelcome,
	}
}

// State reports where the loop currently is.
func (g *Game) State() State { return g.state }

// Rounds is the number of rounds played so far.
func (g *Game) Rounds() int { return g.rounds }

// Run drives the loop to completion. It returns nil once the user exits and
// the farewell was printed. Input errors, ErrInputClosed included, end the
// loop early and are returned as-is.
func (g *Game) Run(ctx context.Context) error {
	for g.state != StateTerminated {
		if err := g.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Step executes the current state and moves to the next one.
func (g *Game) Step(ctx context.Context) error {
	switch g.state {
	case StateWelcome:
		if err := g.out.Welcome(); err != nil {
			return err
		}
		g.transition(StateAwaitingInput)
	case StateAwaitingInput:
		if err := ctx.Err(); err != nil {
			return err
		}
		c, err := g.input.ReadUserChoice()
		if err != nil {
			return err
		}
		if c == types.Exit {
			g.out.Farewell()
			g.transition(StateTerminated)
			return nil
		}
		g.user = c
		g.transition(StatePlaying)
	case StatePlaying:
		g.playRound()
		g.transition(StateAwaitingInput)
	}
	return nil
}

func (g *Game) playRound() {
	computer := g.gen.Next()
	g.out.ComputerChoice(computer)
	result := Evaluate(g.user, computer)
	if result == types.Invalid {
		g.log.Error("round produced no winner classification",
			"user", g.user.String(), "computer", computer.String())
	}
	g.out.Result(result)
	g.out.NewRound()
	g.rounds++
	g.log.Debug("round played",
		"round", g.rounds,
		"user", g.user.String(),
		"computer", computer.String(),
		"result", result.String())
}

func (g *Game) transition(to State) {
	g.log.Debug("state change", "from", g.state.String(), "to", to.String())
	g.state = to
}
