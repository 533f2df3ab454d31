package display

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/mental-mukjjippa/domain/mjp"
	"github.com/luca-patrignani/mental-mukjjippa/fairplay"
)

// Reporter prints the notifications of a match to a terminal.
type Reporter struct {
	out   io.Writer
	names map[mjp.Turn]string
}

// NewReporter creates a Reporter writing to out (os.Stdout if nil) that
// calls the players playerA and playerB.
func NewReporter(out io.Writer, playerA, playerB string) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{
		out: out,
		names: map[mjp.Turn]string{
			mjp.TurnPlayerA: playerA,
			mjp.TurnPlayerB: playerB,
		},
	}
}

func (r *Reporter) name(t mjp.Turn) string {
	if n, ok := r.names[t]; ok && n != "" {
		return n
	}
	return t.String()
}

func (r *Reporter) print(s string) {
	fmt.Fprint(r.out, s)
}

func (r *Reporter) NotifyInvalidOption() {
	r.print(pterm.Error.Sprintfln("Invalid option, try again."))
}

func (r *Reporter) NotifyGameOver() {
	r.print(pterm.Info.Sprintfln("Game over."))
}

func (r *Reporter) NotifyRpsOutcome(outcome mjp.RoundOutcome) {
	switch outcome {
	case mjp.Win:
		r.print(pterm.Success.Sprintfln("%s wins the throw!", pterm.LightCyan(r.name(mjp.TurnPlayerA))))
	case mjp.Loss:
		r.print(pterm.Warning.Sprintfln("%s wins the throw!", pterm.LightCyan(r.name(mjp.TurnPlayerB))))
	default:
		r.print(pterm.Info.Sprintfln("Draw! Throw again."))
	}
}

func (r *Reporter) NotifyMjpTurn(turn mjp.Turn) {
	r.print(pterm.Info.Sprintfln("%s takes the attack.", pterm.LightCyan(r.name(turn))))
}

func (r *Reporter) NotifyMjpWinner(turn mjp.Turn) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	r.print(pbox.WithTitle(pterm.LightGreen("|WINNER|")).WithTitleTopCenter().Sprintfln("%s wins the match!", r.name(turn)))
}

func (r *Reporter) ShowRpsOptions() {
	r.print(pterm.DefaultSection.Sprintln("Rock Paper Scissors"))
	r.print(optionsLine())
}

func (r *Reporter) ShowMjpOptions(previousTurn mjp.Turn) {
	r.print(pterm.DefaultSection.Sprintfln("Mukjjippa: %s attacks", r.name(previousTurn)))
	r.print(optionsLine())
}

// ShowCommitment announces that playerB has committed to a hand.
func (r *Reporter) ShowCommitment(c fairplay.Commitment) {
	r.print(pterm.Info.Sprintfln("%s committed to a hand: %s", r.name(mjp.TurnPlayerB), shortHex(c.String())))
}

// ShowReveal reports the opening of playerB's commitment and whether it held.
func (r *Reporter) ShowReveal(o fairplay.Opening, verifyErr error) {
	if verifyErr != nil {
		r.print(pterm.Error.Sprintfln("%s revealed %s but the commitment does not match: %v", r.name(mjp.TurnPlayerB), o.Hand, verifyErr))
		return
	}
	r.print(pterm.Success.Sprintfln("%s revealed %s, commitment verified.", r.name(mjp.TurnPlayerB), o.Hand))
}

func optionsLine() string {
	return pterm.Info.Sprintfln("Pick scissors (1), rock (2) or paper (3). 0 leaves the match.")
}

func shortHex(s string) string {
	if len(s) <= 16 {
		return s
	}
	return s[:16] + "…"
}
