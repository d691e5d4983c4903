package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zshield/zshield-api/internal/models"
	"github.com/zshield/zshield-api/internal/provider"
	"github.com/zshield/zshield-api/internal/sched"
	"github.com/zshield/zshield-api/internal/store"
)

func newTestSwapRepo(t *testing.T) (*SwapRepository, *TransactionRepository, *sched.Scheduler) {
	t.Helper()
	logger := testLogger()
	scheduler := sched.New()
	t.Cleanup(scheduler.Stop)

	txs := NewTransactionRepository(store.NewTransactionStore(), logger)
	r := NewSwapRepository(store.NewSwapStore(logger), txs, scheduler, provider.NewZcashProvider(logger), logger)
	return r, txs, scheduler
}

func testSwapData() CreateSwapData {
	return CreateSwapData{
		SessionID:          "sess-1",
		FromToken:          "ZEC",
		ToToken:            "ETH",
		FromAmount:         "10",
		ToAmount:           "0.10092143",
		Rate:               "0.01014286",
		Fee:                "0.05",
		DepositAddress:     "t1abcdefghijklmnopqrstuvwxyz0123",
		DestinationAddress: "0x1234567890abcdef1234567890abcdef12345678",
		ExpiresAt:          time.Now().Add(time.Hour),
	}
}

func TestSwapRepository_CreateInitialState(t *testing.T) {
	r, _, scheduler := newTestSwapRepo(t)

	// Park the transitions far in the future so only the initial state is
	// observed here.
	r.steps = []progressionStep{
		{delay: time.Hour, status: models.StatusCompleted, message: "Swap completed!", progress: 100},
	}

	swap := r.Create(testSwapData())

	require.NotEmpty(t, swap.SwapID)
	assert.Equal(t, models.StatusPendingDeposit, swap.Status)
	assert.Equal(t, "Waiting for deposit...", swap.StatusMessage)
	assert.Equal(t, 10, swap.Progress)
	assert.Equal(t, 1, scheduler.Pending())

	got, ok := r.FindByID(swap.SwapID)
	require.True(t, ok)
	assert.Equal(t, models.StatusPendingDeposit, got.Status)
}

func TestSwapRepository_ProgressionRunsToCompletion(t *testing.T) {
	r, txs, _ := newTestSwapRepo(t)

	r.steps = []progressionStep{
		{delay: 20 * time.Millisecond, status: models.StatusConfirming, message: "Confirming deposit...", progress: 30},
		{delay: 40 * time.Millisecond, status: models.StatusExchanging, message: "Exchanging assets...", progress: 60},
		{delay: 60 * time.Millisecond, status: models.StatusSending, message: "Sending to destination...", progress: 80},
		{delay: 80 * time.Millisecond, status: models.StatusCompleted, message: "Swap completed!", progress: 100},
	}

	swap := r.Create(testSwapData())

	// Catch an intermediate state mid-flight.
	time.Sleep(50 * time.Millisecond)
	mid, ok := r.FindByID(swap.SwapID)
	require.True(t, ok)
	assert.Contains(t, []models.SwapStatus{models.StatusConfirming, models.StatusExchanging}, mid.Status)

	time.Sleep(100 * time.Millisecond)
	done, ok := r.FindByID(swap.SwapID)
	require.True(t, ok)
	assert.Equal(t, models.StatusCompleted, done.Status)
	assert.Equal(t, "Swap completed!", done.StatusMessage)
	assert.Equal(t, 100, done.Progress)
	require.NotNil(t, done.CompletedAt)
	assert.True(t, done.UpdatedAt.After(swap.UpdatedAt))

	// The simulated broadcasts take about a second each; both hashes and
	// their log entries land once they settle.
	time.Sleep(1200 * time.Millisecond)
	done, _ = r.FindByID(swap.SwapID)
	assert.NotEmpty(t, done.DepositTxHash)
	assert.NotEmpty(t, done.SettleTxHash)
	assert.NotEqual(t, done.DepositTxHash, done.SettleTxHash)

	logged := txs.FindBySwap(swap.SwapID)
	require.Len(t, logged, 2)
}

func TestSwapRepository_FailedSwapStopsProgression(t *testing.T) {
	r, txs, _ := newTestSwapRepo(t)

	r.steps = []progressionStep{
		{delay: 30 * time.Millisecond, status: models.StatusConfirming, message: "Confirming deposit...", progress: 30},
		{delay: 60 * time.Millisecond, status: models.StatusCompleted, message: "Swap completed!", progress: 100},
	}

	swap := r.Create(testSwapData())

	_, ok := r.UpdateStatus(swap.SwapID, models.StatusFailed, "Deposit rejected", 0)
	require.True(t, ok)

	time.Sleep(150 * time.Millisecond)

	got, ok := r.FindByID(swap.SwapID)
	require.True(t, ok)
	assert.Equal(t, models.StatusFailed, got.Status)
	assert.Equal(t, "Deposit rejected", got.StatusMessage)
	assert.Nil(t, got.CompletedAt)
	assert.Empty(t, txs.FindBySwap(swap.SwapID))
}

func TestSwapRepository_UpdateStatusMissingSwap(t *testing.T) {
	r, _, _ := newTestSwapRepo(t)

	_, ok := r.UpdateStatus("order_missing", models.StatusFailed, "nope", 0)
	assert.False(t, ok)
}

func TestSwapRepository_FindBySession(t *testing.T) {
	r, _, _ := newTestSwapRepo(t)
	r.steps = nil

	first := r.Create(testSwapData())

	other := testSwapData()
	other.SessionID = "sess-2"
	r.Create(other)

	swaps := r.FindBySession("sess-1")
	require.Len(t, swaps, 1)
	assert.Equal(t, first.SwapID, swaps[0].SwapID)

	assert.Equal(t, 2, r.Count())
	assert.Equal(t, 2, r.CountByStatus(models.StatusPendingDeposit))
}
