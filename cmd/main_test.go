package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/mental-mukjjippa/config"
)

func init() {
	pterm.DisableStyling()
}

func testConfig() config.Config {
	return config.Config{
		PlayerName:   "Alice",
		OpponentName: "Bot",
		Seed:         11,
		LogLevel:     "info",
		FairPlay:     true,
		Transcript:   true,
		Input:        config.InputLine,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunAutoMatchEndsWithWinner(t *testing.T) {
	cfg := testConfig()
	cfg.Auto = true

	var out bytes.Buffer
	if err := run(cfg, strings.NewReader(""), &out, discardLogger()); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "wins the match!") {
		t.Errorf("expected a winner:\n%s", s)
	}
	if !strings.Contains(s, "commitment verified") {
		t.Errorf("expected verified commitments:\n%s", s)
	}
	if !strings.Contains(s, "Match ") {
		t.Errorf("expected the transcript:\n%s", s)
	}
}

func TestRunHumanExits(t *testing.T) {
	var out bytes.Buffer
	if err := run(testConfig(), strings.NewReader("banana\n0\n"), &out, discardLogger()); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	for _, want := range []string{"Alice, make your move", "Invalid option", "Game over.", "left"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %q in output:\n%s", want, s)
		}
	}
}

func TestRunEndOfInputEndsMatch(t *testing.T) {
	cfg := testConfig()
	cfg.FairPlay = false
	cfg.Transcript = false

	var out bytes.Buffer
	if err := run(cfg, strings.NewReader(""), &out, discardLogger()); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "Game over.") {
		t.Errorf("expected the match to end:\n%s", s)
	}
	if strings.Contains(s, "committed to a hand") || strings.Contains(s, "Match ") {
		t.Errorf("unexpected fair play or transcript output:\n%s", s)
	}
}
