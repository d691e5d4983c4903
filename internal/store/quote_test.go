package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zshield/zshield-api/internal/models"
)

func testQuote(id string) models.SwapQuote {
	return models.SwapQuote{
		QuoteID:    id,
		FromAmount: "10",
		ToAmount:   "0.10092143",
		Rate:       "0.01014286",
	}
}

func TestQuoteStore_GetExpiresLazily(t *testing.T) {
	s := NewQuoteStore(testLogger())

	clock := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	s.Set(testQuote("quote_abc123de"), 15*time.Minute)

	got, ok := s.Get("quote_abc123de")
	require.True(t, ok)
	assert.Equal(t, "10", got.FromAmount)

	// Still valid one instant before expiry.
	clock = clock.Add(15*time.Minute - time.Nanosecond)
	_, ok = s.Get("quote_abc123de")
	assert.True(t, ok)

	// Expiry is inclusive: at exactly expiresAt the quote is gone, and the
	// lookup removes the entry.
	clock = clock.Add(time.Nanosecond)
	_, ok = s.Get("quote_abc123de")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Count())
}

func TestQuoteStore_Delete(t *testing.T) {
	s := NewQuoteStore(testLogger())

	s.Set(testQuote("quote_1"), time.Minute)
	assert.True(t, s.Delete("quote_1"))
	assert.False(t, s.Delete("quote_1"))
}

func TestQuoteStore_Cleanup(t *testing.T) {
	s := NewQuoteStore(testLogger())

	clock := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	s.Set(testQuote("quote_short"), time.Minute)
	s.Set(testQuote("quote_long"), time.Hour)

	clock = clock.Add(5 * time.Minute)

	assert.Equal(t, 1, s.Cleanup())
	assert.Equal(t, 1, s.Count())

	_, ok := s.Get("quote_long")
	assert.True(t, ok)
}
