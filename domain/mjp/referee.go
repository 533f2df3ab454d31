package mjp

// Referee decides the outcome of every round and tracks the phase of the
// match. It is not safe for concurrent use.
type Referee struct {
	reporter    Reporter
	gameOver    bool
	phase       Phase
	currentTurn Turn
}

// NewReferee creates a Referee for a fresh match that reports to r.
// A nil Reporter discards every notification.
func NewReferee(r Reporter) *Referee {
	if r == nil {
		r = nopReporter{}
	}
	return &Referee{reporter: r, phase: RPSPhase()}
}

// IsGameOver reports whether the match has ended. Once true it stays true.
func (ref *Referee) IsGameOver() bool { return ref.gameOver }

// IsInRpsPhase reports whether the next round is a plain RPS round.
func (ref *Referee) IsInRpsPhase() bool { return ref.phase.IsRPS() }

// PreviousTurn returns the advantage holder going into the next round,
// TurnNone while in the RPS phase.
func (ref *Referee) PreviousTurn() Turn { return ref.phase.HeldBy() }

// CurrentTurn returns the turn produced by the last scored round.
func (ref *Referee) CurrentTurn() Turn { return ref.currentTurn }

func (ref *Referee) Phase() Phase { return ref.phase }

// DetermineOutcome scores one round between the choices of PlayerA and
// PlayerB, updates the match state and emits exactly one notification.
// Calls made after the match has ended are ignored.
func (ref *Referee) DetermineOutcome(a, b Choice) {
	if ref.gameOver {
		return
	}
	handA, okA := a.Hand()
	handB, okB := b.Hand()
	if !okA || !okB {
		ref.handleInvalidOrExit(a, b)
		return
	}

	entry := ref.phase
	if !entry.IsRPS() {
		handA, handB = remapMJP(handA), remapMJP(handB)
	}

	outcome := Outcome(handA, handB)
	if entry.IsRPS() {
		ref.reporter.NotifyRpsOutcome(outcome)
	}
	ref.currentTurn = nextTurn(outcome)

	ref.resolvePhase(entry)
}

func (ref *Referee) handleInvalidOrExit(a, b Choice) {
	if a == ChoiceExit || b == ChoiceExit {
		ref.gameOver = true
		ref.reporter.NotifyGameOver()
		return
	}
	ref.reporter.NotifyInvalidOption()
	// the advantage PlayerA did not use passes to PlayerB
	if ref.phase.HeldBy() == TurnPlayerA {
		ref.phase = MJPPhase(TurnPlayerB)
	}
}

func (ref *Referee) resolvePhase(entry Phase) {
	if !entry.IsRPS() {
		if ref.currentTurn == TurnNone {
			ref.reporter.NotifyMjpWinner(entry.HeldBy())
			ref.gameOver = true
			return
		}
		ref.reporter.NotifyMjpTurn(ref.currentTurn)
	}
	ref.phase = MJPPhase(ref.currentTurn)
}

type nopReporter struct{}

func (nopReporter) NotifyInvalidOption() {}
func (nopReporter) NotifyGameOver() {}
func (nopReporter) NotifyRpsOutcome(RoundOutcome) {}
func (nopReporter) NotifyMjpTurn(Turn) {}
func (nopReporter) NotifyMjpWinner(Turn) {}
func (nopReporter) ShowRpsOptions() {}
func (nopReporter) ShowMjpOptions(previousTurn Turn) {}
