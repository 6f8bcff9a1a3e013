package triage

import (
	"sync"

	"guard_server/core/domain"
)

// SessionStore holds live triage sessions in memory. Sessions are transient:
// they exist from bootstrap until the operator discards them, and nothing is
// persisted anywhere.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.TriageSession
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.TriageSession),
	}
}

// Put registers a session.
func (s *SessionStore) Put(session *domain.TriageSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

// Get returns the session with the given id, or false.
func (s *SessionStore) Get(id string) (*domain.TriageSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// Delete discards a session. Returns false when no such session exists.
func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
