package config

import (
	"strings"
	"testing"

	"github.com/pterm/pterm"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PlayerName != "You" || cfg.OpponentName != "Computer" {
		t.Errorf("unexpected names %q %q", cfg.PlayerName, cfg.OpponentName)
	}
	if !cfg.FairPlay || !cfg.Transcript || cfg.Auto {
		t.Errorf("unexpected switches %+v", cfg)
	}
	if cfg.Input != InputSelect || cfg.Seed != 0 || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MJP_PLAYER_NAME", "Alice")
	t.Setenv("MJP_SEED", "42")
	t.Setenv("MJP_FAIR_PLAY", "false")
	t.Setenv("MJP_INPUT", "line")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PlayerName != "Alice" || cfg.Seed != 42 || cfg.FairPlay || cfg.Input != InputLine {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("MJP_PLAYER_NAME", "Alice")
	t.Setenv("MJP_SEED", "42")

	cfg, err := Load([]string{"-name", "Bob", "-seed", "7", "-auto", "-log-level", "debug"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PlayerName != "Bob" || cfg.Seed != 7 || !cfg.Auto {
		t.Errorf("flags not applied: %+v", cfg)
	}
	level, err := cfg.PtermLogLevel()
	if err != nil || level != pterm.LogLevelDebug {
		t.Errorf("expected debug level, got %v (%v)", level, err)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("MJP_SEED", "not-a-number")

	_, err := Load(nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := map[string][]string{
		"unknown flag":      {"-nope"},
		"positional":        {"extra"},
		"empty name":        {"-name", " "},
		"unknown input":     {"-input", "voice"},
		"unknown log level": {"-log-level", "loud"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(args); err == nil {
				t.Fatalf("expected %v to be rejected", args)
			}
		})
	}
}
