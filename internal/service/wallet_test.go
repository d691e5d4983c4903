package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zshield/zshield-api/internal/models"
	"github.com/zshield/zshield-api/internal/provider"
)

func newTestWalletService(t *testing.T) *WalletService {
	t.Helper()
	logger := testLogger()
	return NewWalletService(provider.NewZcashProvider(logger), newTestPriceService(t), logger)
}

func TestWalletService_ValidateAddress(t *testing.T) {
	s := newTestWalletService(t)

	got := s.ValidateAddress("u1abcdef")
	assert.True(t, got.IsValid)
	assert.Equal(t, models.AddressUnified, got.Type)

	got = s.ValidateAddress("bogus")
	assert.False(t, got.IsValid)
}

func TestWalletService_GetBalances(t *testing.T) {
	s := newTestWalletService(t)

	wallet, err := s.GetBalances(context.Background(), "zs1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq")
	require.NoError(t, err)
	require.Len(t, wallet.Balances, 1)

	position := wallet.Balances[0]
	assert.Equal(t, "ZEC", position.Symbol)
	assert.NotEmpty(t, position.BalanceUSD)

	// USD value is the ZEC balance priced at the snapshot rate.
	amount := decimal.RequireFromString(position.Balance)
	wantUSD := amount.Mul(decimal.RequireFromString("35.50")).StringFixed(2)
	assert.Equal(t, wantUSD, position.BalanceUSD)
	assert.Equal(t, wantUSD, wallet.TotalValueUSD)
}
