package mjp

import "strings"

// Outcome scores a against b from a's point of view. The hand right after a
// in the cycle beats a.
func Outcome(a, b Hand) RoundOutcome {
	if a == b {
		return Draw
	}
	if (a+1)%handCount == b%handCount {
		return Loss
	}
	return Win
}

// remapMJP shifts a hand before it is scored in the MJP phase.
func remapMJP(h Hand) Hand {
	switch h {
	case Scissors:
		return Rock
	case Rock:
		return Scissors
	}
	return Paper
}

// nextTurn returns who holds the advantage after a round with outcome o.
func nextTurn(o RoundOutcome) Turn {
	switch o {
	case Win:
		return TurnPlayerA
	case Loss:
		return TurnPlayerB
	}
	return TurnNone
}

// ParseChoice reads a choice typed by a player. It accepts the menu numbers
// (1 scissors, 2 rock, 3 paper, 0 exit) and the English names.
func ParseChoice(s string) Choice {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "scissors", "scissor":
		return ChoiceScissors
	case "2", "rock":
		return ChoiceRock
	case "3", "paper":
		return ChoicePaper
	case "0", "exit", "quit":
		return ChoiceExit
	}
	return ChoiceInvalid
}
