package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoker-console/stoker/internal/config"
	"github.com/stoker-console/stoker/sink"
)

func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()

	cfg := config.Default()
	cfg.Cards = []string{"fireball", "icebolt", "lightning", "frost shield", "frost wall"}
	out := &bytes.Buffer{}
	a, err := newApp(cfg, out)
	require.NoError(t, err)

	return a, out
}

func TestCompleteInput(t *testing.T) {
	a, _ := newTestApp(t)

	tests := []struct {
		name       string
		line       string
		want       string
		candidates []string
	}{
		{"command name", "ca", "card ", []string{"card"}},
		{"all commands", "", "", []string{"card", "echo", "help"}},
		{"unknown command", "zz", "zz", nil},
		{"common prefix", "card a", "card add", []string{"--help", "add", "add-random"}},
		{"argument value", "card add fi", "card add fireball ", []string{"--help", "fireball"}},
		{"case insensitive", "card add ICE", "card add icebolt ", []string{"--help", "icebolt"}},
		{"option name", "card list --page-", "card list --page-size ", []string{"--help", "--page", "--page-size"}},
		{"option equal to an alias", "card list --h", "card list --help ", []string{"--help", "--page", "--page-size"}},
		{"prefix with a space opens a quote", "card add fr", `card add "frost `, []string{"--help", "frost shield", "frost wall"}},
		{"inside an open quote", `card add "frost s`, `card add "frost shield" `, []string{"--help", "frost shield"}},
		{"leading spaces", "  ca", "  card ", []string{"card"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, candidates := completeInput(a.registry, tt.line)
			assert.Equal(t, tt.want, line)
			assert.Equal(t, tt.candidates, candidates)
		})
	}
}

func TestExpand(t *testing.T) {
	assert.Equal(t, "card x --help ", expand("card x", 5, "x", []string{"--help"}))
	assert.Equal(t, "card ", expand("card ", 5, "", []string{"add", "remove"}))
	assert.Equal(t, "card remove ", expand("card ", 5, "", []string{"remove"}))
	assert.Equal(t, "card lis", expand("card lis", 5, "lis", nil))
	assert.Equal(t, `card add "frost shield" `, expand("card add FR", 9, "FR", []string{"frost shield"}))
	assert.Equal(t, `echo "say \"h`, expand("echo s", 5, "s", []string{`say "hi"`, `say "ho"`}))
}

func TestCompleteInput_ExecutesQuotedCard(t *testing.T) {
	a, _ := newTestApp(t)

	line, _ := completeInput(a.registry, `card add "frost w`)
	require.Equal(t, `card add "frost wall" `, line)

	a.registry.Execute(context.Background(), line)
	assert.Equal(t, []string{"frost wall"}, a.deck.Cards())
	assert.False(t, a.failed())
}

func TestCompleteInput_ShellTokenizer(t *testing.T) {
	cfg := config.Default()
	cfg.Tokenizer = config.TokenizerShell
	a, err := newApp(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	line, _ := completeInput(a.registry, "card add 'frost s")
	assert.Equal(t, `card add "frost shield" `, line)
	assert.Zero(t, a.buffer.Len())
}

func TestCommonPrefix(t *testing.T) {
	assert.Equal(t, "add", commonPrefix([]string{"add", "add-random"}))
	assert.Equal(t, "", commonPrefix([]string{"add", "remove"}))
	assert.Equal(t, "list", commonPrefix([]string{"list"}))
}

func TestReadLines(t *testing.T) {
	a, out := newTestApp(t)

	input := strings.NewReader("card add fireball\ncard list\nexit\ncard add icebolt\n")
	require.NoError(t, readLines(context.Background(), a, input))

	assert.Equal(t, []string{"fireball"}, a.deck.Cards())
	assert.Contains(t, out.String(), "Adding card: fireball")
	assert.False(t, a.failed())
}

func TestReadLinesReportsErrors(t *testing.T) {
	a, out := newTestApp(t)

	require.NoError(t, readLines(context.Background(), a, strings.NewReader("draw\n")))

	assert.True(t, a.failed())
	assert.Contains(t, out.String(), "command 'draw' not found")

	var levels []sink.Level
	for _, line := range a.buffer.Lines() {
		levels = append(levels, line.Level)
	}
	assert.Contains(t, levels, sink.LevelError)
}

func TestReadLinesCancelled(t *testing.T) {
	a, _ := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := readLines(ctx, a, strings.NewReader("card add fireball\n"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, a.deck.Cards())
}

func TestNewAppHand(t *testing.T) {
	cfg := config.Default()
	cfg.Hand = []string{"torch", "ember"}

	a, err := newApp(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"torch", "ember"}, a.deck.Cards())

	cfg.Hand = []string{"dragon"}
	_, err = newApp(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}
