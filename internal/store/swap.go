package store

import (
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zshield/zshield-api/internal/models"
)

// SwapStore keeps swap transactions keyed by swap ID. Finished swaps are
// never removed; there is no cleanup sweep for this store.
type SwapStore struct {
	mu     sync.RWMutex
	swaps  map[string]models.SwapTransaction
	logger logrus.FieldLogger
	now    nowFunc
}

// NewSwapStore creates an empty swap store.
func NewSwapStore(logger logrus.FieldLogger) *SwapStore {
	return &SwapStore{
		swaps:  make(map[string]models.SwapTransaction),
		logger: logger,
		now:    time.Now,
	}
}

// Set inserts or overwrites a swap record.
func (s *SwapStore) Set(swap models.SwapTransaction) {
	s.mu.Lock()
	s.swaps[swap.SwapID] = swap
	s.mu.Unlock()
	s.logger.Debugf("swap stored: %s", shortID(swap.SwapID))
}

// Get returns the swap for the given ID.
func (s *SwapStore) Get(swapID string) (models.SwapTransaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	swap, ok := s.swaps[swapID]
	return swap, ok
}

// Update applies mutate to the stored record under the store lock and
// stamps UpdatedAt. It returns the updated record, or false if the swap
// does not exist. The read-mutate-write cycle is atomic.
func (s *SwapStore) Update(swapID string, mutate func(*models.SwapTransaction)) (models.SwapTransaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	swap, ok := s.swaps[swapID]
	if !ok {
		return models.SwapTransaction{}, false
	}
	mutate(&swap)
	swap.UpdatedAt = s.now()
	s.swaps[swapID] = swap
	return swap, true
}

// FindBySession returns every swap owned by the session, most recently
// created first.
func (s *SwapStore) FindBySession(sessionID string) []models.SwapTransaction {
	s.mu.RLock()
	out := make([]models.SwapTransaction, 0)
	for _, swap := range s.swaps {
		if swap.SessionID == sessionID {
			out = append(out, swap)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Count returns the total number of stored swaps.
func (s *SwapStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.swaps)
}

// CountByStatus returns the number of swaps currently in the given status.
func (s *SwapStore) CountByStatus(status models.SwapStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, swap := range s.swaps {
		if swap.Status == status {
			count++
		}
	}
	return count
}
