package mjp

import "fmt"

// Hand is a shape thrown in a round. The values are cyclic indices: Rock=0,
// Paper=1, Scissors=2.
type Hand uint8

const (
	Rock Hand = iota
	Paper
	Scissors
)

const handCount = 3

var handNames = [handCount]string{"rock", "paper", "scissors"}

func (h Hand) String() string {
	if h >= handCount {
		return fmt.Sprintf("hand(%d)", uint8(h))
	}
	return handNames[h]
}

// Choice is the raw submission of a Player for one round. The zero value is
// ChoiceInvalid.
type Choice uint8

const (
	ChoiceInvalid Choice = iota
	ChoiceRock
	ChoicePaper
	ChoiceScissors
	ChoiceExit
)

// Hand maps the choice onto a Hand. It reports false for Exit and Invalid.
func (c Choice) Hand() (Hand, bool) {
	switch c {
	case ChoiceRock:
		return Rock, true
	case ChoicePaper:
		return Paper, true
	case ChoiceScissors:
		return Scissors, true
	}
	return 0, false
}

func (c Choice) String() string {
	switch c {
	case ChoiceRock:
		return "rock"
	case ChoicePaper:
		return "paper"
	case ChoiceScissors:
		return "scissors"
	case ChoiceExit:
		return "exit"
	}
	return "invalid"
}

// ChoiceOf returns the Choice that submits h.
func ChoiceOf(h Hand) Choice {
	switch h {
	case Rock:
		return ChoiceRock
	case Paper:
		return ChoicePaper
	case Scissors:
		return ChoiceScissors
	}
	return ChoiceInvalid
}

// Turn identifies the advantage holder.
type Turn uint8

const (
	TurnNone Turn = iota
	TurnPlayerA
	TurnPlayerB
)

func (t Turn) String() string {
	switch t {
	case TurnPlayerA:
		return "player A"
	case TurnPlayerB:
		return "player B"
	}
	return "none"
}

// RoundOutcome is the result of a round seen from PlayerA.
type RoundOutcome uint8

const (
	Draw RoundOutcome = iota
	Win
	Loss
)

func (o RoundOutcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	}
	return "draw"
}

type PhaseKind uint8

const (
	PhaseRPS PhaseKind = iota
	PhaseMJP
)

func (k PhaseKind) String() string {
	if k == PhaseMJP {
		return "mjp"
	}
	return "rps"
}

// Phase is the round type the next round is scored with. An MJP phase always
// has a holder; RPSPhase and MJPPhase are the only ways to build one.
type Phase struct {
	kind   PhaseKind
	heldBy Turn
}

// RPSPhase returns the opening phase.
func RPSPhase() Phase { return Phase{kind: PhaseRPS} }

// MJPPhase returns the MJP phase held by t. TurnNone yields the RPS phase.
func MJPPhase(t Turn) Phase {
	if t == TurnNone {
		return RPSPhase()
	}
	return Phase{kind: PhaseMJP, heldBy: t}
}

func (p Phase) Kind() PhaseKind { return p.kind }

// HeldBy returns the advantage holder, TurnNone in the RPS phase.
func (p Phase) HeldBy() Turn { return p.heldBy }

func (p Phase) IsRPS() bool { return p.kind == PhaseRPS }

func (p Phase) String() string {
	if p.IsRPS() {
		return p.kind.String()
	}
	return fmt.Sprintf("%s(%s)", p.kind, p.heldBy)
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Player submits a Choice for each round.
type Player interface {
	ChooseOption() Choice
}

// Reporter receives the notifications of a match. Calls are fire-and-forget.
type Reporter interface {
	NotifyInvalidOption()
	NotifyGameOver()
	NotifyRpsOutcome(outcome RoundOutcome)
	NotifyMjpTurn(turn Turn)
	NotifyMjpWinner(turn Turn)
	ShowRpsOptions()
	ShowMjpOptions(previousTurn Turn)
}
