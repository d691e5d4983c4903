// Package repository provides domain-aware access over the raw stores:
// expiry policy for sessions, the progression state machine for swaps and
// the transaction log.
package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zshield/zshield-api/internal/models"
	"github.com/zshield/zshield-api/internal/store"
)

// CreateSessionData carries the validated fields for a new session.
type CreateSessionData struct {
	Address     string
	AddressType models.AddressType
	IsShielded  bool
	WalletType  string
}

// SessionRepository manages session lifecycle on top of the session store.
type SessionRepository struct {
	store  *store.SessionStore
	expiry time.Duration
	logger logrus.FieldLogger
	now    func() time.Time
}

// NewSessionRepository creates a session repository with the configured
// session lifetime.
func NewSessionRepository(s *store.SessionStore, expiry time.Duration, logger logrus.FieldLogger) *SessionRepository {
	return &SessionRepository{store: s, expiry: expiry, logger: logger, now: time.Now}
}

// Create issues a new session with a fresh opaque identifier.
func (r *SessionRepository) Create(data CreateSessionData) models.Session {
	now := r.now()
	session := models.Session{
		SessionID:      uuid.NewString(),
		Address:        data.Address,
		AddressType:    data.AddressType,
		IsShielded:     data.IsShielded,
		WalletType:     data.WalletType,
		ConnectedAt:    now,
		ExpiresAt:      now.Add(r.expiry),
		LastActivityAt: now,
	}

	r.store.Set(session)
	r.logger.Infof("created session for %s...", shortAddr(data.Address))
	return session
}

// FindByID returns the session if it exists and has not expired. An
// expired session is deleted as a side effect. Successful reads refresh
// LastActivityAt but never ExpiresAt.
func (r *SessionRepository) FindByID(sessionID string) (models.Session, bool) {
	session, ok := r.store.Get(sessionID)
	if !ok {
		return models.Session{}, false
	}

	if session.Expired(r.now()) {
		r.logger.Debugf("session expired: %s", shortID(sessionID))
		r.store.Delete(sessionID)
		return models.Session{}, false
	}

	session.LastActivityAt = r.now()
	r.store.Set(session)
	return session, true
}

// FindByAddress returns the live session bound to the address, deleting it
// if it turns out to be expired.
func (r *SessionRepository) FindByAddress(address string) (models.Session, bool) {
	session, ok := r.store.FindByAddress(address)
	if !ok {
		return models.Session{}, false
	}
	if session.Expired(r.now()) {
		r.store.Delete(session.SessionID)
		return models.Session{}, false
	}
	return session, true
}

// Delete removes a session and reports whether it existed.
func (r *SessionRepository) Delete(sessionID string) bool {
	existed := r.store.Delete(sessionID)
	if existed {
		r.logger.Infof("deleted session: %s", shortID(sessionID))
	}
	return existed
}

// Extend pushes the session expiry out by the given duration (the
// configured lifetime when zero). This is the only operation that changes
// ExpiresAt after creation.
func (r *SessionRepository) Extend(sessionID string, d time.Duration) (models.Session, bool) {
	session, ok := r.store.Get(sessionID)
	if !ok {
		return models.Session{}, false
	}

	if d <= 0 {
		d = r.expiry
	}
	session.ExpiresAt = r.now().Add(d)
	session.LastActivityAt = r.now()
	r.store.Set(session)
	r.logger.Debugf("extended session: %s", shortID(sessionID))
	return session, true
}

// ActiveSessions returns all sessions that have not yet expired.
func (r *SessionRepository) ActiveSessions() []models.Session {
	now := r.now()
	all := r.store.All()
	out := make([]models.Session, 0, len(all))
	for _, session := range all {
		if !session.Expired(now) {
			out = append(out, session)
		}
	}
	return out
}

// CountActive returns the number of live sessions.
func (r *SessionRepository) CountActive() int {
	return len(r.ActiveSessions())
}

// Cleanup sweeps expired sessions out of the store.
func (r *SessionRepository) Cleanup() int {
	return r.store.Cleanup()
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8] + "..."
}

func shortAddr(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:12]
}
