// Package parse provides the token stream consumed by the option scanner and
// shell-style splitting of a single command string into tokens.
package parse

import (
	"github.com/ef-ds/deque"
)

// State is a forward-only stream over the raw argument tokens of one parse call
type State interface {
	Advance() bool      // Move to the next token, returning false when the stream is exhausted
	CurrentArg() string // The token moved to by the last successful Advance
	Pos() int           // Index of the current token in the original list, -1 before the first Advance
	Peek() (string, bool)
	Rest() []string // Consume and return every token after the current one
	Len() int       // Number of tokens not yet consumed
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos     int
	current string
	tokens  *deque.Deque
}

// NewState creates a new State over args. The slice is copied into the stream so later
// changes to args do not affect the scan.
func NewState(args []string) State {
	tokens := deque.New()
	for _, arg := range args {
		tokens.PushBack(arg)
	}

	return &DefaultState{
		pos:    -1,
		tokens: tokens,
	}
}

// Advance pops the next token off the stream
func (s *DefaultState) Advance() bool {
	v, ok := s.tokens.PopFront()
	if !ok {
		s.current = ""
		return false
	}

	s.pos++
	s.current = v.(string)

	return true
}

// CurrentArg returns the current token
func (s *DefaultState) CurrentArg() string {
	return s.current
}

// Pos returns the index of the current token
func (s *DefaultState) Pos() int {
	return s.pos
}

// Peek returns the next token without consuming it
func (s *DefaultState) Peek() (string, bool) {
	v, ok := s.tokens.Front()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// Rest drains the stream
func (s *DefaultState) Rest() []string {
	rest := make([]string, 0, s.tokens.Len())
	for s.Advance() {
		rest = append(rest, s.current)
	}

	return rest
}

// Len returns the number of tokens left in the stream
func (s *DefaultState) Len() int {
	return s.tokens.Len()
}
