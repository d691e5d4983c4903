package store

import (
	"sync"
	"time"
)

// RateLimitEntry tracks request counts for one client within a fixed window.
type RateLimitEntry struct {
	Count        int
	FirstRequest time.Time
	LastRequest  time.Time
}

// RateLimitResult is the outcome of recording one request.
type RateLimitResult struct {
	Limited   bool
	Remaining int
	ResetIn   time.Duration
}

// RateLimitStore maintains fixed-window request counters per client.
// Window reset is lazy: the first request after the window has elapsed
// starts a fresh window. The periodic Cleanup only reclaims memory.
type RateLimitStore struct {
	mu      sync.Mutex
	entries map[string]RateLimitEntry
	now     nowFunc
}

// NewRateLimitStore creates an empty rate-limit store.
func NewRateLimitStore() *RateLimitStore {
	return &RateLimitStore{
		entries: make(map[string]RateLimitEntry),
		now:     time.Now,
	}
}

// Hit records one request for the client and reports whether it exceeds
// maxRequests within the window. The read-check-increment cycle is atomic.
func (s *RateLimitStore) Hit(clientID string, maxRequests int, window time.Duration) RateLimitResult {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[clientID]
	if !ok || now.Sub(entry.FirstRequest) > window {
		// First request from this client, or the window has elapsed.
		s.entries[clientID] = RateLimitEntry{Count: 1, FirstRequest: now, LastRequest: now}
		return RateLimitResult{Limited: false, Remaining: maxRequests - 1, ResetIn: window}
	}

	entry.Count++
	entry.LastRequest = now
	s.entries[clientID] = entry

	remaining := maxRequests - entry.Count
	if remaining < 0 {
		remaining = 0
	}
	resetIn := window - now.Sub(entry.FirstRequest)
	if resetIn < 0 {
		resetIn = 0
	}

	return RateLimitResult{
		Limited:   entry.Count > maxRequests,
		Remaining: remaining,
		ResetIn:   resetIn,
	}
}

// Count returns the number of tracked clients.
func (s *RateLimitStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cleanup drops entries whose window has fully elapsed and returns how
// many were removed.
func (s *RateLimitStore) Cleanup(window time.Duration) int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	cleaned := 0
	for id, entry := range s.entries {
		if now.Sub(entry.FirstRequest) > window {
			delete(s.entries, id)
			cleaned++
		}
	}
	return cleaned
}
