package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/luca-patrignani/mental-mukjjippa/config"
	"github.com/luca-patrignani/mental-mukjjippa/display"
	"github.com/luca-patrignani/mental-mukjjippa/domain/mjp"
	"github.com/luca-patrignani/mental-mukjjippa/fairplay"
	"github.com/luca-patrignani/mental-mukjjippa/ledger"
	"github.com/luca-patrignani/mental-mukjjippa/players"
)

// commitmentRecorder appends every round to the ledger together with the
// commitment the computer made before it.
type commitmentRecorder struct {
	chain      *ledger.Blockchain
	commitment fairplay.Commitment
}

func (r *commitmentRecorder) ObserveRound(rec mjp.RoundRecord) error {
	return r.chain.Append(rec, map[string]string{"commitment": r.commitment.String()})
}

// run plays one match described by cfg. Human input is read from in, the
// match is printed to out.
func run(cfg config.Config, in io.Reader, out io.Writer, logger *slog.Logger) error {
	computer := players.NewComputer(cfg.Seed)

	var playerA mjp.Player
	if cfg.Auto {
		// a distinct seed so the two computers do not mirror each other
		playerA = players.NewComputer(cfg.Seed + 1)
	} else {
		var prompter players.Prompter = players.SelectPrompter{}
		if cfg.Input == config.InputLine {
			prompter = players.NewLinePrompter(in, out)
		}
		playerA = players.NewHuman(cfg.PlayerName, prompter, logger)
	}

	reporter := display.NewReporter(out, cfg.PlayerName, cfg.OpponentName)
	chain := ledger.NewBlockchain(cfg.PlayerName, cfg.OpponentName)
	recorder := &commitmentRecorder{chain: chain}

	var observer mjp.RoundObserver = chain
	if cfg.FairPlay {
		observer = recorder
	}
	manager := mjp.NewGameManager(playerA, computer, reporter,
		mjp.WithLogger(logger),
		mjp.WithObserver(observer),
	)

	logger.Info("match started", "match", chain.MatchID(), "player", cfg.PlayerName, "opponent", cfg.OpponentName, "fair_play", cfg.FairPlay)

	for manager.IsActive() {
		if !cfg.FairPlay {
			manager.PlayRound()
			continue
		}
		commitment, err := computer.Commit()
		if err != nil {
			return err
		}
		recorder.commitment = commitment
		reporter.ShowCommitment(commitment)

		manager.PlayRound()

		opening, err := computer.Reveal()
		if err != nil {
			return fmt.Errorf("round %d: %w", manager.Rounds(), err)
		}
		verifyErr := opening.Verify(commitment)
		reporter.ShowReveal(opening, verifyErr)
		if verifyErr != nil {
			return fmt.Errorf("round %d: %w", manager.Rounds(), verifyErr)
		}
	}

	if err := chain.Verify(); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}
	logger.Debug("ledger verified", "blocks", chain.Len())

	if cfg.Transcript {
		transcript, err := display.Transcript(chain.Blocks())
		if err != nil {
			return fmt.Errorf("render transcript: %w", err)
		}
		fmt.Fprint(out, transcript)
	}
	return nil
}
