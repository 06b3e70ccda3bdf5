package dialog

import "sync"

// Store keeps conversation state per user id. Get and Put are individually
// atomic; the transport delivers one message per user at a time, so no
// cross-call locking is needed beyond that.
type Store struct {
	mu     sync.RWMutex
	states map[int64]State
}

// NewStore creates an empty state store.
func NewStore() *Store {
	return &Store{states: make(map[int64]State)}
}

// Get returns the state for the given user, or the Idle zero state when the
// user has not been seen before.
func (s *Store) Get(userID int64) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[userID]
}

// Put replaces the state for the given user.
func (s *Store) Put(userID int64, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = st
}

// Len returns the number of users with stored state.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}
