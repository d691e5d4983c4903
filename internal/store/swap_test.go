package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zshield/zshield-api/internal/models"
)

func testSwap(id, sessionID string, createdAt time.Time) models.SwapTransaction {
	return models.SwapTransaction{
		SwapID:    id,
		SessionID: sessionID,
		FromToken: "ZEC",
		ToToken:   "ETH",
		Status:    models.StatusPendingDeposit,
		Progress:  10,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestSwapStore_Update(t *testing.T) {
	s := NewSwapStore(testLogger())

	created := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	stamped := created.Add(5 * time.Second)
	s.now = func() time.Time { return stamped }

	s.Set(testSwap("order_1", "sess-1", created))

	updated, ok := s.Update("order_1", func(swap *models.SwapTransaction) {
		swap.Status = models.StatusConfirming
		swap.Progress = 30
	})
	require.True(t, ok)
	assert.Equal(t, models.StatusConfirming, updated.Status)
	assert.Equal(t, 30, updated.Progress)
	assert.Equal(t, stamped, updated.UpdatedAt)
	assert.Equal(t, created, updated.CreatedAt)

	// Mutation is persisted, not just returned.
	got, ok := s.Get("order_1")
	require.True(t, ok)
	assert.Equal(t, models.StatusConfirming, got.Status)

	_, ok = s.Update("order_missing", func(swap *models.SwapTransaction) {
		swap.Status = models.StatusFailed
	})
	assert.False(t, ok)
}

func TestSwapStore_RecordsAreCopies(t *testing.T) {
	s := NewSwapStore(testLogger())

	s.Set(testSwap("order_1", "sess-1", time.Now()))

	got, ok := s.Get("order_1")
	require.True(t, ok)
	got.Status = models.StatusFailed

	// Mutating the returned value must not touch the stored record.
	stored, _ := s.Get("order_1")
	assert.Equal(t, models.StatusPendingDeposit, stored.Status)
}

func TestSwapStore_FindBySessionOrdering(t *testing.T) {
	s := NewSwapStore(testLogger())

	base := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	s.Set(testSwap("order_old", "sess-1", base))
	s.Set(testSwap("order_mid", "sess-1", base.Add(time.Minute)))
	s.Set(testSwap("order_new", "sess-1", base.Add(2*time.Minute)))
	s.Set(testSwap("order_other", "sess-2", base.Add(3*time.Minute)))

	swaps := s.FindBySession("sess-1")
	require.Len(t, swaps, 3)
	assert.Equal(t, "order_new", swaps[0].SwapID)
	assert.Equal(t, "order_mid", swaps[1].SwapID)
	assert.Equal(t, "order_old", swaps[2].SwapID)

	assert.Empty(t, s.FindBySession("sess-unknown"))
}

func TestSwapStore_CountByStatus(t *testing.T) {
	s := NewSwapStore(testLogger())

	now := time.Now()
	s.Set(testSwap("order_1", "sess-1", now))
	s.Set(testSwap("order_2", "sess-1", now))

	completed := testSwap("order_3", "sess-2", now)
	completed.Status = models.StatusCompleted
	s.Set(completed)

	assert.Equal(t, 3, s.Count())
	assert.Equal(t, 2, s.CountByStatus(models.StatusPendingDeposit))
	assert.Equal(t, 1, s.CountByStatus(models.StatusCompleted))
	assert.Equal(t, 0, s.CountByStatus(models.StatusFailed))
}
