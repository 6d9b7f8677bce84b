// Package session holds the ordered conversation history for one interactive
// session. Turns are append-only and live only as long as the process; reset
// discards everything. The interaction model is single-threaded (one active
// turn at a time), so no locking is needed.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in the conversation. URLs carries grounding sources for
// assistant turns; it is nil for user turns and ungrounded replies.
type Turn struct {
	ID      string
	Role    Role
	Content string
	URLs    []string
	Time    time.Time
}

// NewTurn builds a turn with a fresh ID and timestamp.
func NewTurn(role Role, content string, urls []string) Turn {
	return Turn{
		ID:      uuid.NewString(),
		Role:    role,
		Content: content,
		URLs:    urls,
		Time:    time.Now(),
	}
}

// Session is the ordered sequence of turns for one chat session.
type Session struct {
	ID    string
	turns []Turn
}

// New creates an empty session.
func New() *Session {
	return &Session{ID: uuid.NewString()}
}

// Append adds a turn to the end, preserving insertion order.
func (s *Session) Append(t Turn) {
	s.turns = append(s.turns, t)
}

// Clear empties the session. The session keeps its identity; only the
// history is discarded.
func (s *Session) Clear() {
	s.turns = nil
}

// All returns the turns in insertion order. The returned slice is a copy so
// callers cannot mutate history.
func (s *Session) All() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of turns recorded so far.
func (s *Session) Len() int {
	return len(s.turns)
}

// Last returns the most recent turn, if any.
func (s *Session) Last() (Turn, bool) {
	if len(s.turns) == 0 {
		return Turn{}, false
	}
	return s.turns[len(s.turns)-1], true
}
