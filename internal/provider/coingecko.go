package provider

import (
	"context"

	"github.com/sirupsen/logrus"
)

// MarketPrice is one asset's USD snapshot from the price provider.
type MarketPrice struct {
	USD       float64 `json:"usd"`
	Change24h float64 `json:"change_24h"`
}

// CoinGeckoProvider simulates the market data API with a fixed snapshot
// for the supported asset set.
type CoinGeckoProvider struct {
	logger logrus.FieldLogger
}

// NewCoinGeckoProvider creates a simulated price provider.
func NewCoinGeckoProvider(logger logrus.FieldLogger) *CoinGeckoProvider {
	return &CoinGeckoProvider{logger: logger}
}

// GetPrices returns the fixed market snapshot keyed by provider asset ID.
func (p *CoinGeckoProvider) GetPrices(ctx context.Context) (map[string]MarketPrice, error) {
	p.logger.Debug("fetching market prices")

	return map[string]MarketPrice{
		"zcash":    {USD: 35.50, Change24h: 2.5},
		"bitcoin":  {USD: 65230.00, Change24h: -1.2},
		"ethereum": {USD: 3450.00, Change24h: 0.8},
		"usd-coin": {USD: 1.00, Change24h: 0.01},
	}, nil
}

// GetTokenPrice returns the snapshot for one provider asset ID.
func (p *CoinGeckoProvider) GetTokenPrice(ctx context.Context, tokenID string) (MarketPrice, bool, error) {
	prices, err := p.GetPrices(ctx)
	if err != nil {
		return MarketPrice{}, false, err
	}
	price, ok := prices[tokenID]
	return price, ok, nil
}
