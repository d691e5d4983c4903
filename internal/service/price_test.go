package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zshield/zshield-api/internal/provider"
)

func newTestPriceService(t *testing.T) *PriceService {
	t.Helper()
	logger := testLogger()
	return NewPriceService(provider.NewCoinGeckoProvider(logger), logger)
}

func TestPriceService_GetAllPrices(t *testing.T) {
	s := newTestPriceService(t)

	all, err := s.GetAllPrices(context.Background())
	require.NoError(t, err)
	require.Len(t, all.Prices, 4)

	zec := all.Prices["ZEC"]
	assert.Equal(t, 35.50, zec.USD)
	assert.Equal(t, 2.5, zec.Change24h)
	assert.Equal(t, 0.0005, zec.BTC)
	assert.Equal(t, 0.01, zec.ETH)
	assert.Equal(t, 1.0, zec.ZEC)

	btc := all.Prices["BTC"]
	assert.Equal(t, 65230.00, btc.USD)
	assert.Equal(t, 1850.0, btc.ZEC)
	assert.False(t, all.LastUpdated.IsZero())
}

func TestPriceService_CachesSnapshot(t *testing.T) {
	s := newTestPriceService(t)

	first, err := s.GetAllPrices(context.Background())
	require.NoError(t, err)

	second, err := s.GetAllPrices(context.Background())
	require.NoError(t, err)

	// Within the cache interval the same snapshot is returned, timestamp
	// included.
	assert.Equal(t, first.LastUpdated, second.LastUpdated)
}

func TestPriceService_GetTokenPrice(t *testing.T) {
	s := newTestPriceService(t)

	price, ok, err := s.GetTokenPrice(context.Background(), "eth")
	require.NoError(t, err)
	require.True(t, ok, "symbol lookup is case-insensitive")
	assert.Equal(t, 3450.00, price.USD)

	_, ok, err = s.GetTokenPrice(context.Background(), "DOGE")
	require.NoError(t, err)
	assert.False(t, ok)
}
