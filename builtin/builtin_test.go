package builtin

import (
	"context"
	"testing"

	"github.com/stoker-console/stoker"
	"github.com/stoker-console/stoker/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) (*stoker.Registry, *sink.Buffer) {
	t.Helper()
	buf := sink.NewBuffer(50)
	r, err := stoker.NewRegistry(stoker.WithLogger(buf))
	require.NoError(t, err)
	require.True(t, Register(r, buf))

	return r, buf
}

func TestHelp(t *testing.T) {
	r, buf := newRegistry(t)
	r.AddCommand(stoker.NewCommand(stoker.WithName("card"), stoker.WithCommandDescription("Manage cards")))

	r.Execute(context.Background(), "help")

	assert.Equal(t, []string{
		"> help",
		"Available commands:",
		"  card         - Manage cards",
		"  echo         - Echo a message",
		"  help         - Display help information",
	}, buf.Messages())
}

func TestHelp_Help(t *testing.T) {
	r, buf := newRegistry(t)

	r.Execute(context.Background(), "help --help")

	msgs := buf.Messages()
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[1], "Display help information")
	assert.Contains(t, msgs[1], "-h, --help")
}

func TestEcho(t *testing.T) {
	r, buf := newRegistry(t)

	r.Execute(context.Background(), `echo "hello world"`)
	r.Execute(context.Background(), "echo")

	lines := buf.Lines()
	require.Len(t, lines, 4)
	assert.Equal(t, "hello world", lines[1].Text)
	assert.Equal(t, sink.LevelError, lines[3].Level)
	assert.Equal(t, "missing <message> argument", lines[3].Text)
}

func TestRegister_Twice(t *testing.T) {
	r, buf := newRegistry(t)
	assert.False(t, Register(r, buf))
	assert.Len(t, r.Commands(), 2)
}

func TestComplete(t *testing.T) {
	r, _ := newRegistry(t)

	assert.Equal(t, []string{"echo"}, r.CommandNames("e"))
	assert.ElementsMatch(t, []string{"--help"}, r.Complete("echo hi"))
}
