package display

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/mental-mukjjippa/domain/mjp"
	"github.com/luca-patrignani/mental-mukjjippa/ledger"
)

// Banner renders the title of the game.
func Banner() (string, error) {
	return pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("M", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("uk", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("J", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ji", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("pa", pterm.FgDarkGray.ToStyle()),
	).Srender()
}

// Transcript renders the rounds recorded in blocks as a table. The genesis
// block is skipped.
func Transcript(blocks []ledger.Block) (string, error) {
	data := pterm.TableData{{"#", "Player A", "Player B", "Phase", "Advantage", "Result"}}
	for _, b := range blocks {
		if b.Index == 0 {
			continue
		}
		data = append(data, []string{
			strconv.Itoa(b.Round.Number),
			b.Round.ChoiceA.String(),
			b.Round.ChoiceB.String(),
			b.Round.PhaseBefore.String(),
			b.Round.PhaseAfter.HeldBy().String(),
			roundResult(b.Round),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	title := "Match"
	if len(blocks) > 0 {
		title = "Match " + blocks[0].Metadata.MatchID
	}
	return pterm.DefaultSection.Sprintln(title) + table + "\n", nil
}

func roundResult(rec mjp.RoundRecord) string {
	if _, ok := rec.ChoiceA.Hand(); !ok {
		return voidResult(rec)
	}
	if _, ok := rec.ChoiceB.Hand(); !ok {
		return voidResult(rec)
	}
	if rec.GameOver {
		return pterm.LightGreen("match won by " + rec.PhaseBefore.HeldBy().String())
	}
	if rec.CurrentTurn == mjp.TurnNone {
		return "draw"
	}
	return rec.CurrentTurn.String()
}

func voidResult(rec mjp.RoundRecord) string {
	if rec.ChoiceA == mjp.ChoiceExit || rec.ChoiceB == mjp.ChoiceExit {
		return pterm.LightRed("left")
	}
	return pterm.LightYellow("void")
}
