package sink

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestCharm(t *testing.T) {
	var out bytes.Buffer
	s := New(clog.NewWithOptions(&out, clog.Options{Level: clog.InfoLevel}))

	s.Log("> echo hello")
	s.Error("command 'spawn' not found")

	assert.Contains(t, out.String(), "INFO")
	assert.Contains(t, out.String(), "> echo hello")
	assert.Contains(t, out.String(), "ERRO")
	assert.Contains(t, out.String(), "command 'spawn' not found")
}

func TestCharm_ErrorLevelHidesLog(t *testing.T) {
	var out bytes.Buffer
	s := New(clog.NewWithOptions(&out, clog.Options{Level: ParseLevel("error")}))

	s.Log("hidden")
	s.Error("shown")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, clog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, clog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, clog.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, clog.InfoLevel, ParseLevel("verbose"))
}

func TestBuffer_Bounded(t *testing.T) {
	b := NewBuffer(3)

	for i := 0; i < 5; i++ {
		b.Log(fmt.Sprintf("line %d", i))
	}
	b.Error("failed")

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []string{"line 3", "line 4", "failed"}, b.Messages())

	lines := b.Lines()
	assert.Equal(t, LevelLog, lines[0].Level)
	assert.Equal(t, LevelError, lines[2].Level)
	assert.Equal(t, "error", lines[2].Level.String())

	// reading must not consume
	assert.Equal(t, 3, b.Len())

	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Messages())
}

func TestBuffer_DefaultSize(t *testing.T) {
	b := NewBuffer(0)
	for i := 0; i < DefaultBufferSize+10; i++ {
		b.Log("x")
	}
	assert.Equal(t, DefaultBufferSize, b.Len())
}

func TestBuffer_Concurrent(t *testing.T) {
	b := NewBuffer(1000)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				b.Log("x")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 500, b.Len())
}

func TestMulti(t *testing.T) {
	first, second := NewBuffer(10), NewBuffer(10)
	m := Multi{first, second}

	m.Log("a")
	m.Error("b")

	assert.Equal(t, []string{"a", "b"}, first.Messages())
	assert.Equal(t, []string{"a", "b"}, second.Messages())
}
