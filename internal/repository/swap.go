package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zshield/zshield-api/internal/models"
	"github.com/zshield/zshield-api/internal/provider"
	"github.com/zshield/zshield-api/internal/sched"
	"github.com/zshield/zshield-api/internal/store"
)

// progressionStep is one scheduled transition of the settlement simulation.
type progressionStep struct {
	delay    time.Duration
	status   models.SwapStatus
	message  string
	progress int
}

// defaultProgression drives a new swap through the forward status path at
// fixed offsets from creation.
var defaultProgression = []progressionStep{
	{delay: 5 * time.Second, status: models.StatusConfirming, message: "Confirming deposit...", progress: 30},
	{delay: 10 * time.Second, status: models.StatusExchanging, message: "Exchanging assets...", progress: 60},
	{delay: 15 * time.Second, status: models.StatusSending, message: "Sending to destination...", progress: 80},
	{delay: 20 * time.Second, status: models.StatusCompleted, message: "Swap completed!", progress: 100},
}

// CreateSwapData carries the fields for a new swap record. Status, message
// and progress are assigned by the repository.
type CreateSwapData struct {
	SessionID          string
	FromToken          string
	ToToken            string
	FromAmount         string
	ToAmount           string
	Rate               string
	Fee                string
	DepositAddress     string
	DepositMemo        string
	DestinationAddress string
	ExpiresAt          time.Time
}

// SwapRepository manages swap records and the timer-driven progression
// simulation. Each scheduled step holds only the swap ID and re-fetches
// current state before acting, so firing against a deleted or failed swap
// is a silent no-op.
type SwapRepository struct {
	store     *store.SwapStore
	txs       *TransactionRepository
	scheduler *sched.Scheduler
	zcash     *provider.ZcashProvider
	logger    logrus.FieldLogger
	steps     []progressionStep
	now       func() time.Time
}

// NewSwapRepository creates a swap repository wired to the scheduler that
// drives progression.
func NewSwapRepository(s *store.SwapStore, txs *TransactionRepository, scheduler *sched.Scheduler, zcash *provider.ZcashProvider, logger logrus.FieldLogger) *SwapRepository {
	return &SwapRepository{
		store:     s,
		txs:       txs,
		scheduler: scheduler,
		zcash:     zcash,
		logger:    logger,
		steps:     defaultProgression,
		now:       time.Now,
	}
}

// Create persists a new swap in pending_deposit at progress 10 and starts
// its background progression.
func (r *SwapRepository) Create(data CreateSwapData) models.SwapTransaction {
	now := r.now()
	swap := models.SwapTransaction{
		SwapID:             uuid.NewString(),
		SessionID:          data.SessionID,
		Status:             models.StatusPendingDeposit,
		StatusMessage:      "Waiting for deposit...",
		Progress:           10,
		FromToken:          data.FromToken,
		ToToken:            data.ToToken,
		FromAmount:         data.FromAmount,
		ToAmount:           data.ToAmount,
		Rate:               data.Rate,
		Fee:                data.Fee,
		DepositAddress:     data.DepositAddress,
		DepositMemo:        data.DepositMemo,
		DestinationAddress: data.DestinationAddress,
		CreatedAt:          now,
		UpdatedAt:          now,
		ExpiresAt:          data.ExpiresAt,
	}

	r.store.Set(swap)
	r.logger.Infof("created swap %s", swap.SwapID)

	r.scheduleProgression(swap.SwapID)
	return swap
}

// FindByID returns the swap for the given ID.
func (r *SwapRepository) FindByID(swapID string) (models.SwapTransaction, bool) {
	return r.store.Get(swapID)
}

// FindBySession returns the session's swaps, most recent first.
func (r *SwapRepository) FindBySession(sessionID string) []models.SwapTransaction {
	return r.store.FindBySession(sessionID)
}

// UpdateStatus overwrites status, message and progress and stamps the
// update time. Ordering is the caller's responsibility; no forward-only
// validation is applied here.
func (r *SwapRepository) UpdateStatus(swapID string, status models.SwapStatus, message string, progress int) (models.SwapTransaction, bool) {
	return r.store.Update(swapID, func(swap *models.SwapTransaction) {
		swap.Status = status
		swap.StatusMessage = message
		swap.Progress = progress
	})
}

// CountByStatus reports how many swaps sit in the given status.
func (r *SwapRepository) CountByStatus(status models.SwapStatus) int {
	return r.store.CountByStatus(status)
}

// Count reports the total number of swaps.
func (r *SwapRepository) Count() int {
	return r.store.Count()
}

// scheduleProgression registers the four delayed transitions for a new
// swap. Each fires independently; a step is skipped when the swap is gone
// or already failed.
func (r *SwapRepository) scheduleProgression(swapID string) {
	for _, step := range r.steps {
		step := step
		r.scheduler.After(step.delay, func() {
			r.applyStep(swapID, step)
		})
	}
}

// applyStep performs one scheduled transition against current state.
func (r *SwapRepository) applyStep(swapID string, step progressionStep) {
	swap, ok := r.store.Get(swapID)
	if !ok || swap.Status == models.StatusFailed {
		return
	}

	if _, ok := r.UpdateStatus(swapID, step.status, step.message, step.progress); !ok {
		return
	}

	switch step.status {
	case models.StatusConfirming:
		r.recordTransaction(swapID, models.TxDeposit)
	case models.StatusCompleted:
		now := r.now()
		r.store.Update(swapID, func(s *models.SwapTransaction) {
			s.CompletedAt = &now
		})
		r.recordTransaction(swapID, models.TxSettlement)
	}
}

// recordTransaction broadcasts a simulated shielded transaction for the
// step and logs its hash against the swap. Failures are swallowed: the
// progression pipeline never raises from background work.
func (r *SwapRepository) recordTransaction(swapID string, txType models.TransactionType) {
	swap, ok := r.store.Get(swapID)
	if !ok {
		return
	}

	tx, err := r.zcash.CreateShieldedTransaction(context.Background(), swap.DepositAddress, swap.DestinationAddress, swap.FromAmount, "")
	if err != nil {
		r.logger.WithError(err).Warnf("failed to broadcast %s tx for swap %s", txType, shortID(swapID))
		return
	}

	r.txs.Create(tx.TxID, txType, swapID)
	r.store.Update(swapID, func(s *models.SwapTransaction) {
		switch txType {
		case models.TxDeposit:
			s.DepositTxHash = tx.TxID
		case models.TxSettlement:
			s.SettleTxHash = tx.TxID
		}
	})
}
