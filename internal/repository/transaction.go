package repository

import (
	"github.com/sirupsen/logrus"

	"github.com/zshield/zshield-api/internal/models"
	"github.com/zshield/zshield-api/internal/store"
)

// TransactionRepository records deposit and settlement transaction hashes
// for swaps.
type TransactionRepository struct {
	store  *store.TransactionStore
	logger logrus.FieldLogger
}

// NewTransactionRepository creates a transaction log repository.
func NewTransactionRepository(s *store.TransactionStore, logger logrus.FieldLogger) *TransactionRepository {
	return &TransactionRepository{store: s, logger: logger}
}

// Create logs a transaction hash against a swap.
func (r *TransactionRepository) Create(txHash string, txType models.TransactionType, swapID string) {
	r.store.Add(txHash, txType, swapID)
	r.logger.Infof("logged %s tx: %s", txType, txHash)
}

// FindBySwap returns every logged transaction for the swap.
func (r *TransactionRepository) FindBySwap(swapID string) []models.TransactionLog {
	return r.store.FindBySwap(swapID)
}
