package main

import (
	"io"
	"math/rand"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/stoker-console/stoker"
	"github.com/stoker-console/stoker/builtin"
	"github.com/stoker-console/stoker/internal/config"
	"github.com/stoker-console/stoker/internal/deck"
	"github.com/stoker-console/stoker/parse"
	"github.com/stoker-console/stoker/sink"
)

// app wires the registry, the deck and the output sinks of one console session
type app struct {
	cfg      config.Config
	deck     *deck.Deck
	buffer   *sink.Buffer
	registry *stoker.Registry
}

func newApp(cfg config.Config, out io.Writer) (*app, error) {
	charm := clog.NewWithOptions(out, clog.Options{Level: sink.ParseLevel(cfg.LogLevel)})
	buffer := sink.NewBuffer(cfg.BufferSize)
	logger := sink.Multi{sink.New(charm), buffer}

	var tokenizer stoker.Tokenizer = parse.Split
	if cfg.Tokenizer == config.TokenizerShell {
		tokenizer = parse.ShellSplit
	}

	d := deck.New(cfg.Cards, rand.New(rand.NewSource(time.Now().UnixNano())))
	for _, card := range cfg.Hand {
		if _, err := d.Add(card); err != nil {
			return nil, err
		}
	}

	registry, err := stoker.NewRegistry(
		stoker.WithLogger(logger),
		stoker.WithTokenizer(tokenizer),
		stoker.WithCommand(deck.Command(d, logger)))
	if err != nil {
		return nil, err
	}
	if !builtin.Register(registry, logger) {
		return nil, errBuiltinClash
	}

	return &app{
		cfg:      cfg,
		deck:     d,
		buffer:   buffer,
		registry: registry,
	}, nil
}

// failed reports whether an error was logged since the buffer was last reset
func (a *app) failed() bool {
	for _, line := range a.buffer.Lines() {
		if line.Level == sink.LevelError {
			return true
		}
	}

	return false
}
