package store

import (
	"sync"
	"time"

	"github.com/zshield/zshield-api/internal/models"
)

// TransactionStore logs deposit and settlement transaction hashes keyed by
// tx hash. Entries are append-only within the process lifetime.
type TransactionStore struct {
	mu  sync.RWMutex
	txs map[string]models.TransactionLog
	now nowFunc
}

// NewTransactionStore creates an empty transaction log store.
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{
		txs: make(map[string]models.TransactionLog),
		now: time.Now,
	}
}

// Add records a transaction hash for a swap.
func (s *TransactionStore) Add(txHash string, txType models.TransactionType, swapID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs[txHash] = models.TransactionLog{
		TxHash:    txHash,
		Type:      txType,
		SwapID:    swapID,
		Timestamp: s.now(),
	}
}

// FindBySwap returns every logged transaction for a swap.
func (s *TransactionStore) FindBySwap(swapID string) []models.TransactionLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TransactionLog, 0)
	for _, tx := range s.txs {
		if tx.SwapID == swapID {
			out = append(out, tx)
		}
	}
	return out
}

// Count returns the number of logged transactions.
func (s *TransactionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.txs)
}
