package store

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zshield/zshield-api/internal/models"
)

// SessionStore keeps active sessions keyed by session ID.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	logger   logrus.FieldLogger
	now      nowFunc
}

// NewSessionStore creates an empty session store.
func NewSessionStore(logger logrus.FieldLogger) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]models.Session),
		logger:   logger,
		now:      time.Now,
	}
}

// Set inserts or overwrites a session.
func (s *SessionStore) Set(session models.Session) {
	s.mu.Lock()
	s.sessions[session.SessionID] = session
	s.mu.Unlock()
	s.logger.Debugf("session stored: %s", shortID(session.SessionID))
}

// Get returns the session for the given ID. Expiry is not checked here;
// the repository owns that policy.
func (s *SessionStore) Get(sessionID string) (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	return session, ok
}

// Delete removes a session and reports whether it existed.
func (s *SessionStore) Delete(sessionID string) bool {
	s.mu.Lock()
	_, existed := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	if existed {
		s.logger.Debugf("session deleted: %s", shortID(sessionID))
	}
	return existed
}

// FindByAddress returns the first session bound to the given wallet
// address. Linear scan; the store is small by design.
func (s *SessionStore) FindByAddress(address string) (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, session := range s.sessions {
		if session.Address == address {
			return session, true
		}
	}
	return models.Session{}, false
}

// All returns a snapshot of every stored session.
func (s *SessionStore) All() []models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, session)
	}
	return out
}

// Count returns the number of stored sessions, expired or not.
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Cleanup removes all expired sessions and returns how many were dropped.
func (s *SessionStore) Cleanup() int {
	now := s.now()
	s.mu.Lock()
	cleaned := 0
	for id, session := range s.sessions {
		if expired(session.ExpiresAt, now) {
			delete(s.sessions, id)
			cleaned++
		}
	}
	s.mu.Unlock()
	if cleaned > 0 {
		s.logger.Infof("cleaned up %d expired sessions", cleaned)
	}
	return cleaned
}
