package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pterm/pterm"
)

const (
	InputSelect = "select"
	InputLine   = "line"
)

// Config holds the settings of a match.
type Config struct {
	PlayerName   string `env:"MJP_PLAYER_NAME" envDefault:"You"`
	OpponentName string `env:"MJP_OPPONENT_NAME" envDefault:"Computer"`

	// Seed of the computer player. Zero picks a random seed.
	Seed uint64 `env:"MJP_SEED" envDefault:"0"`

	LogLevel   string `env:"MJP_LOG_LEVEL" envDefault:"info"`
	FairPlay   bool   `env:"MJP_FAIR_PLAY" envDefault:"true"`
	Transcript bool   `env:"MJP_TRANSCRIPT" envDefault:"true"`
	Input      string `env:"MJP_INPUT" envDefault:"select"`

	// Auto replaces the human with a second computer player.
	Auto bool `env:"MJP_AUTO" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment, then applies command line flags from args
// (without the program name) on top of it.
func Load(args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("mukjjippa", flag.ContinueOnError)
	fs.StringVar(&cfg.PlayerName, "name", cfg.PlayerName, "your name")
	fs.StringVar(&cfg.OpponentName, "opponent", cfg.OpponentName, "name of the computer player")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the computer player (0 = random)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&cfg.FairPlay, "fair-play", cfg.FairPlay, "let the computer commit to its hand before you choose")
	fs.BoolVar(&cfg.Transcript, "transcript", cfg.Transcript, "print the round ledger at the end of the match")
	fs.StringVar(&cfg.Input, "input", cfg.Input, "select or line")
	fs.BoolVar(&cfg.Auto, "auto", cfg.Auto, "computer against computer")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.PlayerName) == "" {
		return fmt.Errorf("player name must not be empty")
	}
	if strings.TrimSpace(c.OpponentName) == "" {
		return fmt.Errorf("opponent name must not be empty")
	}
	if c.Input != InputSelect && c.Input != InputLine {
		return fmt.Errorf("unknown input mode %q", c.Input)
	}
	if _, err := c.PtermLogLevel(); err != nil {
		return err
	}
	return nil
}

// PtermLogLevel maps LogLevel onto the levels of the pterm logger.
func (c Config) PtermLogLevel() (pterm.LogLevel, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info", "":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "off", "disabled":
		return pterm.LogLevelDisabled, nil
	default:
		return pterm.LogLevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}
