package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/zshield/zshield-api/internal/models"
	"github.com/zshield/zshield-api/internal/provider"
)

// WalletService exposes address validation and balance aggregation.
type WalletService struct {
	zcash  *provider.ZcashProvider
	prices *PriceService
	logger logrus.FieldLogger
}

// NewWalletService creates the wallet service.
func NewWalletService(zcash *provider.ZcashProvider, prices *PriceService, logger logrus.FieldLogger) *WalletService {
	return &WalletService{zcash: zcash, prices: prices, logger: logger}
}

// ValidateAddress classifies an address string.
func (s *WalletService) ValidateAddress(address string) models.AddressValidation {
	return s.zcash.ValidateAddress(address)
}

// GetBalances fetches raw balances from the node provider and prices each
// position in USD.
func (s *WalletService) GetBalances(ctx context.Context, address string) (models.WalletBalance, error) {
	s.logger.Debugf("getting balances for %s", address)

	wallet, err := s.zcash.GetBalance(ctx, address)
	if err != nil {
		return models.WalletBalance{}, err
	}

	zecPrice, _, err := s.prices.GetTokenPrice(ctx, "ZEC")
	if err != nil {
		return models.WalletBalance{}, err
	}
	usdRate := decimal.NewFromFloat(zecPrice.USD)

	total := decimal.Zero
	for i, balance := range wallet.Balances {
		amount, err := decimal.NewFromString(balance.Balance)
		if err != nil {
			amount = decimal.Zero
		}
		usdValue := amount.Mul(usdRate)
		wallet.Balances[i].BalanceUSD = usdValue.StringFixed(2)
		total = total.Add(usdValue)
	}
	wallet.TotalValueUSD = total.StringFixed(2)

	return wallet, nil
}
