package repository

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zshield/zshield-api/internal/models"
	"github.com/zshield/zshield-api/internal/store"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func newTestSessionRepo(t *testing.T, expiry time.Duration) (*SessionRepository, *store.SessionStore, *time.Time) {
	t.Helper()
	s := store.NewSessionStore(testLogger())
	r := NewSessionRepository(s, expiry, testLogger())

	clock := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }
	return r, s, &clock
}

func TestSessionRepository_CreateAndFind(t *testing.T) {
	r, _, clock := newTestSessionRepo(t, 24*time.Hour)

	session := r.Create(CreateSessionData{
		Address:     "zs1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq",
		AddressType: models.AddressSapling,
		IsShielded:  true,
		WalletType:  "zashi",
	})

	require.NotEmpty(t, session.SessionID)
	assert.Equal(t, clock.Add(24*time.Hour), session.ExpiresAt)
	assert.True(t, session.IsShielded)

	got, ok := r.FindByID(session.SessionID)
	require.True(t, ok)
	assert.Equal(t, session.Address, got.Address)
}

func TestSessionRepository_FindByIDRefreshesActivityNotExpiry(t *testing.T) {
	r, _, clock := newTestSessionRepo(t, 24*time.Hour)

	session := r.Create(CreateSessionData{Address: "zs1abc", AddressType: models.AddressSapling})
	originalExpiry := session.ExpiresAt

	*clock = clock.Add(time.Hour)
	got, ok := r.FindByID(session.SessionID)
	require.True(t, ok)
	assert.Equal(t, *clock, got.LastActivityAt)
	assert.Equal(t, originalExpiry, got.ExpiresAt, "reads must not slide the expiry")
}

func TestSessionRepository_ExpiredSessionDeletedOnLookup(t *testing.T) {
	r, s, clock := newTestSessionRepo(t, time.Hour)

	session := r.Create(CreateSessionData{Address: "zs1abc", AddressType: models.AddressSapling})

	// Expiry is inclusive of the boundary instant.
	*clock = clock.Add(time.Hour)
	_, ok := r.FindByID(session.SessionID)
	assert.False(t, ok)

	// The lookup deletes the expired record from the store.
	_, ok = s.Get(session.SessionID)
	assert.False(t, ok)
}

func TestSessionRepository_FindByAddress(t *testing.T) {
	r, _, clock := newTestSessionRepo(t, time.Hour)

	session := r.Create(CreateSessionData{Address: "u1def", AddressType: models.AddressUnified})

	got, ok := r.FindByAddress("u1def")
	require.True(t, ok)
	assert.Equal(t, session.SessionID, got.SessionID)

	*clock = clock.Add(2 * time.Hour)
	_, ok = r.FindByAddress("u1def")
	assert.False(t, ok)
}

func TestSessionRepository_Extend(t *testing.T) {
	r, _, clock := newTestSessionRepo(t, time.Hour)

	session := r.Create(CreateSessionData{Address: "zs1abc", AddressType: models.AddressSapling})

	*clock = clock.Add(50 * time.Minute)
	extended, ok := r.Extend(session.SessionID, 0)
	require.True(t, ok)
	assert.Equal(t, clock.Add(time.Hour), extended.ExpiresAt)

	// The extended session survives past the original expiry.
	*clock = clock.Add(30 * time.Minute)
	_, ok = r.FindByID(session.SessionID)
	assert.True(t, ok)

	_, ok = r.Extend("missing", time.Hour)
	assert.False(t, ok)
}

func TestSessionRepository_CountActive(t *testing.T) {
	r, s, clock := newTestSessionRepo(t, time.Hour)

	r.Create(CreateSessionData{Address: "zs1one", AddressType: models.AddressSapling})
	r.Create(CreateSessionData{Address: "zs1two", AddressType: models.AddressSapling})

	assert.Equal(t, 2, r.CountActive())

	// Expired sessions drop out of the active count even before the sweep
	// physically removes them.
	*clock = clock.Add(2 * time.Hour)
	assert.Equal(t, 0, r.CountActive())
	assert.Equal(t, 2, s.Count())
}
