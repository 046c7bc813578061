// Package session keeps the in-memory conversation history for one logical
// conversation. Nothing here is persisted; the log lives and dies with the
// process (or the UI session) that owns it.
package session

import (
	"sync"
	"time"
)

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one recorded exchange unit. Immutable once appended.
type Turn struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Log is an ordered, append-only record of turns. Appends are atomic at the
// granularity of one Turn, so concurrent callers may interleave pairs but a
// single caller's turns always keep their relative order.
//
// An optional cap bounds the history with oldest-first eviction; zero means
// unbounded, matching the original behavior.
type Log struct {
	mu       sync.RWMutex
	turns    []Turn
	maxTurns int
}

// NewLog creates an empty log. maxTurns <= 0 disables eviction.
func NewLog(maxTurns int) *Log {
	return &Log{
		turns:    make([]Turn, 0, 16),
		maxTurns: maxTurns,
	}
}

// Append records one turn, stamping it with the current time if unset.
func (l *Log) Append(t Turn) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now()
	}
	l.turns = append(l.turns, t)

	if l.maxTurns > 0 && len(l.turns) > l.maxTurns {
		l.turns = l.turns[len(l.turns)-l.maxTurns:]
	}
}

// List returns a copy of all turns in insertion order. The result is never
// nil so it serializes as [] rather than null.
func (l *Log) List() []Turn {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Clear drops every turn. Destructive and unconditional.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.turns = l.turns[:0]
}

// Len reports the number of stored turns.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.turns)
}
