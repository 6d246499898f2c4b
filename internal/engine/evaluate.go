package engine

import "github.com/javiermmdev/rps/internal/types"

type pair struct{ user, computer types.Choice }

// beats lists every pair where the user's move wins.
var beats = map[pair]bool{
	{types.Rock, types.Scissors}:  true,
	{types.Scissors, types.Paper}: true,
	{types.Paper, types.Rock}:     true,
}

// Evaluate scores one round from the user's side. Both moves must be
// playable; anything else, Exit included, yields Invalid.
func Evaluate(user, computer types.Choice) types.RoundResult {
	if !user.Playable() || !computer.Playable() {
		return types.Invalid
	}
	switch {
	case user == computer:
		return types.Tie
	case beats[pair{user, computer}]:
		return types.UserWins
	case beats[pair{computer, user}]:
		return types.ComputerWins
	default:
		return types.Invalid
	}
}
