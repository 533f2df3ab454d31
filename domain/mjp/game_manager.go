package mjp

import (
	"io"
	"log/slog"
)

// RoundRecord describes one round played by a GameManager.
type RoundRecord struct {
	Number      int    `json:"number"`
	ChoiceA     Choice `json:"choice_a"`
	ChoiceB     Choice `json:"choice_b"`
	PhaseBefore Phase  `json:"phase_before"`
	PhaseAfter  Phase  `json:"phase_after"`
	CurrentTurn Turn   `json:"current_turn"`
	GameOver    bool   `json:"game_over"`
}

// RoundObserver is told about every round once the Referee has scored it.
type RoundObserver interface {
	ObserveRound(rec RoundRecord) error
}

// GameManager drives a match one round at a time.
type GameManager struct {
	playerA  Player
	playerB  Player
	reporter Reporter
	referee  *Referee
	active   bool
	rounds   int

	logger    *slog.Logger
	observers []RoundObserver
}

type ManagerOption func(*GameManager)

// WithLogger makes the manager log every round at debug level.
func WithLogger(l *slog.Logger) ManagerOption {
	return func(gm *GameManager) {
		if l != nil {
			gm.logger = l
		}
	}
}

// WithObserver registers o to be called after every round.
func WithObserver(o RoundObserver) ManagerOption {
	return func(gm *GameManager) {
		if o != nil {
			gm.observers = append(gm.observers, o)
		}
	}
}

// NewGameManager creates an active match between a (PlayerA) and b (PlayerB).
// The Reporter is shared with the Referee.
func NewGameManager(a, b Player, r Reporter, opts ...ManagerOption) *GameManager {
	if r == nil {
		r = nopReporter{}
	}
	gm := &GameManager{
		playerA:  a,
		playerB:  b,
		reporter: r,
		referee:  NewReferee(r),
		active:   true,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(gm)
	}
	return gm
}

// IsActive reports whether the match is still being played.
func (gm *GameManager) IsActive() bool { return gm.active }

// Referee returns the referee of the match. Callers must not score rounds
// through it directly.
func (gm *GameManager) Referee() *Referee { return gm.referee }

// Rounds returns how many rounds have been played, voided ones included.
func (gm *GameManager) Rounds() int { return gm.rounds }

// PlayRound shows the options for the current phase, collects one choice
// from each player and lets the referee score them. It does nothing once the
// match has ended.
func (gm *GameManager) PlayRound() {
	if !gm.active {
		return
	}
	gm.showOptions()

	before := gm.referee.Phase()
	choiceA := gm.playerA.ChooseOption()
	choiceB := gm.playerB.ChooseOption()
	gm.referee.DetermineOutcome(choiceA, choiceB)
	gm.rounds++

	rec := RoundRecord{
		Number:      gm.rounds,
		ChoiceA:     choiceA,
		ChoiceB:     choiceB,
		PhaseBefore: before,
		PhaseAfter:  gm.referee.Phase(),
		CurrentTurn: gm.referee.CurrentTurn(),
		GameOver:    gm.referee.IsGameOver(),
	}
	gm.logger.Debug("round played",
		"round", rec.Number,
		"a", choiceA.String(),
		"b", choiceB.String(),
		"phase", rec.PhaseAfter.String(),
		"game_over", rec.GameOver,
	)
	for _, o := range gm.observers {
		if err := o.ObserveRound(rec); err != nil {
			gm.logger.Warn("round observer failed", "round", rec.Number, "error", err)
		}
	}

	if gm.referee.IsGameOver() {
		gm.endGame()
	}
}

func (gm *GameManager) showOptions() {
	if gm.referee.IsInRpsPhase() {
		gm.reporter.ShowRpsOptions()
		return
	}
	gm.reporter.ShowMjpOptions(gm.referee.PreviousTurn())
}

func (gm *GameManager) endGame() {
	gm.active = false
	gm.logger.Info("match ended", "rounds", gm.rounds)
}
