package store

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zshield/zshield-api/internal/models"
)

type quoteEntry struct {
	quote     models.SwapQuote
	expiresAt time.Time
}

// QuoteStore keeps transient quotes keyed by quote ID. Entries expire
// lazily: a Get that finds an expired entry deletes it and reports absent.
type QuoteStore struct {
	mu     sync.Mutex
	quotes map[string]quoteEntry
	logger logrus.FieldLogger
	now    nowFunc
}

// NewQuoteStore creates an empty quote store.
func NewQuoteStore(logger logrus.FieldLogger) *QuoteStore {
	return &QuoteStore{
		quotes: make(map[string]quoteEntry),
		logger: logger,
		now:    time.Now,
	}
}

// Set stores a quote with the given time-to-live.
func (s *QuoteStore) Set(quote models.SwapQuote, ttl time.Duration) {
	expiresAt := s.now().Add(ttl)
	s.mu.Lock()
	s.quotes[quote.QuoteID] = quoteEntry{quote: quote, expiresAt: expiresAt}
	s.mu.Unlock()
	s.logger.Debugf("quote stored: %s expires in %s", shortID(quote.QuoteID), ttl)
}

// Get returns the quote for the given ID. An already-expired entry is
// deleted and treated as absent.
func (s *QuoteStore) Get(quoteID string) (models.SwapQuote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.quotes[quoteID]
	if !ok {
		return models.SwapQuote{}, false
	}
	if expired(entry.expiresAt, s.now()) {
		delete(s.quotes, quoteID)
		s.logger.Debugf("quote expired: %s", shortID(quoteID))
		return models.SwapQuote{}, false
	}
	return entry.quote, true
}

// Delete removes a quote and reports whether it existed.
func (s *QuoteStore) Delete(quoteID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, existed := s.quotes[quoteID]
	delete(s.quotes, quoteID)
	return existed
}

// Count returns the number of stored quotes, expired or not.
func (s *QuoteStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.quotes)
}

// Cleanup removes all expired quotes and returns how many were dropped.
func (s *QuoteStore) Cleanup() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	cleaned := 0
	for id, entry := range s.quotes {
		if expired(entry.expiresAt, now) {
			delete(s.quotes, id)
			cleaned++
		}
	}
	return cleaned
}
