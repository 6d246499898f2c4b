package types

// Choice is one of the options a player can pick. Codes are stable and are
// what the user types at the prompt.
type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
	Exit
)

var choiceNames = [...]string{"Rock", "Paper", "Scissors", "Exit"}

// AllChoices lists every member in code order, Exit included.
func AllChoices() []Choice {
	return []Choice{Rock, Paper, Scissors, Exit}
}

// PlayableChoices lists the moves that can take part in a round.
func PlayableChoices() []Choice {
	return []Choice{Rock, Paper, Scissors}
}

// ChoiceFromCode maps a numeric code to its Choice. ok is false for any code
// outside the known range.
func ChoiceFromCode(code int) (c Choice, ok bool) {
	if code < int(Rock) || code > int(Exit) {
		return 0, false
	}
	return Choice(code), true
}

// Code returns the numeric code the user types for c.
func (c Choice) Code() int { return int(c) }

// Playable reports whether c is a move rather than the Exit sentinel.
func (c Choice) Playable() bool { return c >= Rock && c <= Scissors }

func (c Choice) String() string {
	if c < Rock || c > Exit {
		return "Out-of-range"
	}
	return choiceNames[c]
}

// RoundResult classifies the outcome of a single round from the user's side.
type RoundResult int

const (
	Tie RoundResult = iota
	UserWins
	ComputerWins
	// Invalid is produced only for pairs outside the playable moves.
	Invalid
)

func (r RoundResult) String() string {
	switch r {
	case Tie:
		return "tie"
	case UserWins:
		return "user_wins"
	case ComputerWins:
		return "computer_wins"
	default:
		return "invalid"
	}
}

// Round describes one exchange between the user and the computer.
type Round struct {
	User     Choice
	Computer Choice
	Result   RoundResult
}
