package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/javiermmdev/rps/internal/types"
)

// scriptedSource replays fixed values, wrapping around.
type scriptedSource struct {
	vals []int
	i    int
}

func (s *scriptedSource) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func TestGenerator_MapsSourceToMoves(t *testing.T) {
	g := NewGenerator(&scriptedSource{vals: []int{0, 1, 2}})
	assert.Equal(t, types.Rock, g.Next())
	assert.Equal(t, types.Paper, g.Next())
	assert.Equal(t, types.Scissors, g.Next())
}

func TestGenerator_NeverExitAndCoversAllMoves(t *testing.T) {
	g := NewGenerator(nil)
	seen := map[types.Choice]int{}
	for i := 0; i < 3000; i++ {
		c := g.Next()
		assert.True(t, c.Playable(), "drew %s", c)
		seen[c]++
	}
	assert.Len(t, seen, 3)
}

func TestGenerator_SeedIsReproducible(t *testing.T) {
	a, b := NewSeededGenerator(42), NewSeededGenerator(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}
