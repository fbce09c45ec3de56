package parse

import (
	"errors"
)

// State represents the position of a parser in a token list
type State interface {
	Pos() int                      // Get the current position
	Skip()                         // Skip the current token
	Args() []string                // Get the entire token list
	CurrentArg() string            // Get the current token
	ArgAt(pos int) (string, error) // Get the token at a specific position
	Peek() string                  // Peek at the next token
	HasNext() bool                 // Report whether a token follows the current one
	Advance() bool                 // Advance to the next token
	Remaining() []string           // Tokens after the current one
	Len() int                      // Gets the length of the token list
}

// ErrInvalidPosition is an error that occurs when an invalid position is accessed
var ErrInvalidPosition = errors.New("invalid position")

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State positioned before the first token
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the token list
func (s *DefaultState) Pos() int {
	return s.pos
}

// Skip moves past the current token without reading it
func (s *DefaultState) Skip() {
	s.pos++
}

// Args returns the entire token list
func (s *DefaultState) Args() []string {
	return s.args
}

// CurrentArg returns the current token
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Advance advances to the next token, returning true if successful
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}

// HasNext reports whether a token follows the current one
func (s *DefaultState) HasNext() bool {
	return s.pos+1 < len(s.args)
}

// Peek returns the next token without advancing the current position
func (s *DefaultState) Peek() string {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1]
	}

	return ""
}

// Remaining returns a copy of the tokens following the current one
func (s *DefaultState) Remaining() []string {
	if s.pos+1 >= len(s.args) {
		return []string{}
	}
	rest := make([]string, len(s.args)-s.pos-1)
	copy(rest, s.args[s.pos+1:])

	return rest
}

// ArgAt returns the token at a specific position
func (s *DefaultState) ArgAt(pos int) (string, error) {
	if pos < 0 || pos >= len(s.args) {
		return "", ErrInvalidPosition
	}

	return s.args[pos], nil
}

// Len returns the length of the token list
func (s *DefaultState) Len() int {
	return len(s.args)
}
