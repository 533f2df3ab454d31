package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/mental-mukjjippa/domain/mjp"
	"github.com/luca-patrignani/mental-mukjjippa/fairplay"
	"github.com/luca-patrignani/mental-mukjjippa/ledger"
)

func init() {
	pterm.DisableStyling()
}

func TestReporterUsesPlayerNames(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out, "Alice", "Bob")

	r.NotifyRpsOutcome(mjp.Win)
	r.NotifyRpsOutcome(mjp.Loss)
	r.NotifyMjpTurn(mjp.TurnPlayerB)
	r.ShowMjpOptions(mjp.TurnPlayerA)
	r.NotifyMjpWinner(mjp.TurnPlayerA)

	s := out.String()
	for _, want := range []string{
		"Alice wins the throw!",
		"Bob wins the throw!",
		"Bob takes the attack.",
		"Mukjjippa: Alice attacks",
		"Alice wins the match!",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %q in output:\n%s", want, s)
		}
	}
}

func TestReporterFallsBackToTurnNames(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out, "", "")
	r.NotifyMjpTurn(mjp.TurnPlayerA)
	if !strings.Contains(out.String(), "player A takes the attack.") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestReporterSimpleNotifications(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out, "Alice", "Bob")
	r.ShowRpsOptions()
	r.NotifyRpsOutcome(mjp.Draw)
	r.NotifyInvalidOption()
	r.NotifyGameOver()

	s := out.String()
	for _, want := range []string{"Rock Paper Scissors", "scissors (1)", "Draw!", "Invalid option", "Game over."} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %q in output:\n%s", want, s)
		}
	}
}

func TestReporterCommitAndReveal(t *testing.T) {
	c, o, err := fairplay.Commit(mjp.Paper)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	r := NewReporter(&out, "Alice", "Bob")
	r.ShowCommitment(c)
	r.ShowReveal(o, nil)
	r.ShowReveal(o, errors.New("boom"))

	s := out.String()
	if !strings.Contains(s, "Bob committed to a hand: "+c.String()[:16]) {
		t.Errorf("commitment not shown:\n%s", s)
	}
	if !strings.Contains(s, "revealed paper, commitment verified") {
		t.Errorf("reveal not shown:\n%s", s)
	}
	if !strings.Contains(s, "does not match: boom") {
		t.Errorf("failed reveal not shown:\n%s", s)
	}
}

func TestBanner(t *testing.T) {
	s, err := Banner()
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(s) == "" {
		t.Fatal("empty banner")
	}
}

func TestTranscript(t *testing.T) {
	chain := ledger.NewBlockchain("Alice", "Bob")
	rounds := []mjp.RoundRecord{
		{Number: 1, ChoiceA: mjp.ChoiceRock, ChoiceB: mjp.ChoiceScissors, PhaseBefore: mjp.RPSPhase(), PhaseAfter: mjp.MJPPhase(mjp.TurnPlayerA), CurrentTurn: mjp.TurnPlayerA},
		{Number: 2, ChoiceA: mjp.ChoiceInvalid, ChoiceB: mjp.ChoiceRock, PhaseBefore: mjp.MJPPhase(mjp.TurnPlayerA), PhaseAfter: mjp.MJPPhase(mjp.TurnPlayerB)},
		{Number: 3, ChoiceA: mjp.ChoicePaper, ChoiceB: mjp.ChoicePaper, PhaseBefore: mjp.MJPPhase(mjp.TurnPlayerB), PhaseAfter: mjp.MJPPhase(mjp.TurnPlayerB), GameOver: true},
	}
	for _, rec := range rounds {
		if err := chain.Append(rec); err != nil {
			t.Fatal(err)
		}
	}

	s, err := Transcript(chain.Blocks())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{chain.MatchID(), "Player A", "void", "match won by player B"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %q in transcript:\n%s", want, s)
		}
	}
}
