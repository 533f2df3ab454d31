package mjp

import "fmt"

// recordingReporter keeps every notification as a short string.
type recordingReporter struct {
	events []string
}

func (r *recordingReporter) NotifyInvalidOption() { r.events = append(r.events, "invalid") }
func (r *recordingReporter) NotifyGameOver() { r.events = append(r.events, "gameover") }
func (r *recordingReporter) NotifyRpsOutcome(o RoundOutcome) {
	r.events = append(r.events, "rps:"+o.String())
}
func (r *recordingReporter) NotifyMjpTurn(t Turn) {
	r.events = append(r.events, "turn:"+t.String())
}
func (r *recordingReporter) NotifyMjpWinner(t Turn) {
	r.events = append(r.events, "winner:"+t.String())
}
func (r *recordingReporter) ShowRpsOptions() { r.events = append(r.events, "show:rps") }
func (r *recordingReporter) ShowMjpOptions(previousTurn Turn) {
	r.events = append(r.events, "show:mjp:"+previousTurn.String())
}

func (r *recordingReporter) last() string {
	if len(r.events) == 0 {
		return ""
	}
	return r.events[len(r.events)-1]
}

// scriptedPlayer replays a fixed list of choices, then keeps exiting.
type scriptedPlayer struct {
	choices []Choice
	calls   int
}

func (p *scriptedPlayer) ChooseOption() Choice {
	p.calls++
	if len(p.choices) == 0 {
		return ChoiceExit
	}
	c := p.choices[0]
	p.choices = p.choices[1:]
	return c
}

type failingObserver struct {
	seen []RoundRecord
}

func (o *failingObserver) ObserveRound(rec RoundRecord) error {
	o.seen = append(o.seen, rec)
	return fmt.Errorf("observer %d failed", rec.Number)
}

var allHands = []Hand{Rock, Paper, Scissors}
