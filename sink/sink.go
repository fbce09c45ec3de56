// Package sink provides Logger implementations for the stoker registry: an adapter for
// charmbracelet/log, a bounded in-memory buffer and a fan-out.
package sink

import (
	"strings"
	"sync"

	clog "github.com/charmbracelet/log"
	"github.com/ef-ds/deque"
)

// Logger matches stoker.Logger
type Logger interface {
	Log(message string)
	Error(message string)
}

// Charm forwards Log to Info and Error to Error of a charmbracelet/log logger
type Charm struct {
	logger *clog.Logger
}

// New adapts logger. A nil logger uses the charmbracelet/log default logger.
func New(logger *clog.Logger) *Charm {
	if logger == nil {
		logger = clog.Default()
	}

	return &Charm{logger: logger}
}

// Log logs message at info level
func (c *Charm) Log(message string) {
	c.logger.Info(message)
}

// Error logs message at error level
func (c *Charm) Error(message string) {
	c.logger.Error(message)
}

// ParseLevel converts a level name to a charmbracelet/log level, defaulting to info
func ParseLevel(level string) clog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return clog.DebugLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

// Level of a buffered line
type Level int

const (
	LevelLog Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "log"
}

// Line is one message kept by Buffer
type Line struct {
	Level Level
	Text  string
}

// DefaultBufferSize is used by NewBuffer when size is not positive
const DefaultBufferSize = 256

// Buffer keeps the most recent messages in memory, oldest first. It is safe for
// concurrent use.
type Buffer struct {
	mu    sync.Mutex
	size  int
	lines *deque.Deque
}

// NewBuffer returns a buffer holding at most size lines
func NewBuffer(size int) *Buffer {
	if size <= 0 {
		size = DefaultBufferSize
	}

	return &Buffer{
		size:  size,
		lines: deque.New(),
	}
}

// Log records message at log level
func (b *Buffer) Log(message string) {
	b.push(Line{Level: LevelLog, Text: message})
}

// Error records message at error level
func (b *Buffer) Error(message string) {
	b.push(Line{Level: LevelError, Text: message})
}

func (b *Buffer) push(line Line) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines.PushBack(line)
	for b.lines.Len() > b.size {
		b.lines.PopFront()
	}
}

// Lines returns a copy of the buffered lines, oldest first
func (b *Buffer) Lines() []Line {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.lines.Len()
	lines := make([]Line, 0, n)
	for i := 0; i < n; i++ {
		v, _ := b.lines.PopFront()
		line := v.(Line)
		lines = append(lines, line)
		b.lines.PushBack(line)
	}

	return lines
}

// Messages returns the text of the buffered lines, oldest first
func (b *Buffer) Messages() []string {
	lines := b.Lines()
	messages := make([]string, len(lines))
	for i, line := range lines {
		messages[i] = line.Text
	}

	return messages
}

// Len returns the number of buffered lines
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.lines.Len()
}

// Reset drops every buffered line
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = deque.New()
}

// Multi sends every message to all of its loggers, in order
type Multi []Logger

// Log forwards message to every logger
func (m Multi) Log(message string) {
	for _, l := range m {
		l.Log(message)
	}
}

// Error forwards message to every logger
func (m Multi) Error(message string) {
	for _, l := range m {
		l.Error(message)
	}
}
