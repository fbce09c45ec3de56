// Package config loads the configuration of the stoker console.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Tokenizer names accepted in the configuration
const (
	TokenizerConsole = "console"
	TokenizerShell   = "shell"
)

// Config of the demo console
type Config struct {
	// Prompt shown by the interactive console
	Prompt string `toml:"prompt"`
	// LogLevel is one of debug, info, warn or error
	LogLevel string `toml:"log_level"`
	// Tokenizer selects how lines are split: console or shell
	Tokenizer string `toml:"tokenizer"`
	// BufferSize is the number of output lines kept in memory
	BufferSize int `toml:"buffer_size"`
	// Cards is the catalog of card names offered by the card command
	Cards []string `toml:"cards"`
	// Hand is the initial content of the deck
	Hand []string `toml:"hand"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Prompt:     "stoker> ",
		LogLevel:   "info",
		Tokenizer:  TokenizerConsole,
		BufferSize: 256,
		Cards: []string{
			"fireball",
			"icebolt",
			"lightning",
			"torch",
			"ember",
			"frost shield",
		},
	}
}

// Load reads the TOML file at path on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes TOML data on top of the defaults and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("invalid config: %s", strict.String())
		}
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the values which cannot be defaulted
func (c Config) Validate() error {
	switch c.Tokenizer {
	case TokenizerConsole, TokenizerShell:
	default:
		return fmt.Errorf("invalid config: tokenizer must be %q or %q, got %q", TokenizerConsole, TokenizerShell, c.Tokenizer)
	}
	if c.BufferSize <= 0 {
		return fmt.Errorf("invalid config: buffer_size must be positive, got %d", c.BufferSize)
	}

	return nil
}
