package session

import (
	"sync"
	"time"
)

// Turn is a single conversational exchange half ("user" or "model").
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Entry is the in-memory state of one conversation session. It is owned
// exclusively by the Registry; callers only ever see copies.
type Entry struct {
	ID         string
	Turns      []Turn
	LastActive time.Time
}

// Registry holds all active conversation sessions. There is no persistence:
// a process restart clears every session, which is accepted behavior.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*Entry
	clock   func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
		clock:   time.Now,
	}
}

// Touch creates the session if absent and refreshes its last-activity time.
func (r *Registry) Touch(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sessionID]
	if !ok {
		e = &Entry{ID: sessionID}
		r.entries[sessionID] = e
	}
	e.LastActive = r.clock()
}

// AppendTurn adds a turn to the session, creating it if needed.
func (r *Registry) AppendTurn(sessionID, role, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sessionID]
	if !ok {
		e = &Entry{ID: sessionID}
		r.entries[sessionID] = e
	}
	e.Turns = append(e.Turns, Turn{Role: role, Text: text})
	e.LastActive = r.clock()
}

// Memory returns a copy of the session's turns, empty if the session is
// unknown. The copy keeps callers from mutating registry-owned state.
func (r *Registry) Memory(sessionID string) []Turn {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sessionID]
	if !ok {
		return []Turn{}
	}
	turns := make([]Turn, len(e.Turns))
	copy(turns, e.Turns)
	return turns
}

// Sweep evicts every session idle longer than timeout and returns the count.
// The caller supplies a single timestamp so a session touched mid-sweep is
// judged against the same snapshot as every other session.
func (r *Registry) Sweep(now time.Time, timeout time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, e := range r.entries {
		if now.Sub(e.LastActive) > timeout {
			delete(r.entries, id)
			evicted++
		}
	}
	return evicted
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
