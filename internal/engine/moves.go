package engine

import (
	"math/rand/v2"

	"github.com/javiermmdev/rps/internal/types"
)

// Source yields integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Generator picks the computer's move.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator over src. A nil src uses the global,
// randomly seeded generator.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// NewSeededGenerator returns a Generator that replays the same sequence for
// the same seed.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed)))
}

// Next draws uniformly among the playable moves. It never returns Exit.
func (g *Generator) Next() types.Choice {
	moves := types.PlayableChoices()
	return moves[g.src.IntN(len(moves))]
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }
