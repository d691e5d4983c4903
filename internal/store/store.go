// Package store holds the in-memory keyed stores backing the swap API.
// Every store guards its map with its own mutex; individual operations,
// including cleanup sweeps, are atomic with respect to each other. Records
// are stored and returned by value so callers never share mutable state
// with a store.
package store

import "time"

// nowFunc is an injectable clock, overridden in tests to drive expiry.
type nowFunc func() time.Time

// expired is the single expiry comparison used by every store. An entry is
// expired once now is at or past its expiry instant.
func expired(expiresAt, now time.Time) bool {
	return !now.Before(expiresAt)
}

// shortID truncates an identifier for log output.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8] + "..."
}
