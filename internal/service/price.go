package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zshield/zshield-api/internal/models"
	"github.com/zshield/zshield-api/internal/provider"
)

// priceCacheTTL bounds how long a price snapshot is served before the
// provider is asked again.
const priceCacheTTL = 60 * time.Second

// Cross rates are part of the fixed demo snapshot, keyed by symbol.
var crossRates = map[string]struct{ btc, eth, zec float64 }{
	"ZEC":  {btc: 0.0005, eth: 0.01, zec: 1},
	"BTC":  {btc: 1, eth: 18.5, zec: 1850},
	"ETH":  {btc: 0.05, eth: 1, zec: 100},
	"USDC": {btc: 0.000015, eth: 0.0003, zec: 0.03},
}

// providerIDs maps token symbols to the price provider's asset IDs.
var providerIDs = map[string]string{
	"ZEC":  "zcash",
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"USDC": "usd-coin",
}

// PriceService aggregates token prices with a short-lived cache.
type PriceService struct {
	coingecko *provider.CoinGeckoProvider
	logger    logrus.FieldLogger

	mu       sync.Mutex
	cached   *models.TokenPrices
	cachedAt time.Time
}

// NewPriceService creates the price service.
func NewPriceService(coingecko *provider.CoinGeckoProvider, logger logrus.FieldLogger) *PriceService {
	return &PriceService{coingecko: coingecko, logger: logger}
}

// GetAllPrices returns the full price snapshot, refreshing from the
// provider at most once per cache interval.
func (s *PriceService) GetAllPrices(ctx context.Context) (models.TokenPrices, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.cachedAt) < priceCacheTTL {
		return *s.cached, nil
	}

	s.logger.Debug("refreshing prices")

	raw, err := s.coingecko.GetPrices(ctx)
	if err != nil {
		return models.TokenPrices{}, err
	}

	prices := make(map[string]models.PriceData, len(providerIDs))
	for symbol, id := range providerIDs {
		market := raw[id]
		cross := crossRates[symbol]
		prices[symbol] = models.PriceData{
			USD:       market.USD,
			Change24h: market.Change24h,
			BTC:       cross.btc,
			ETH:       cross.eth,
			ZEC:       cross.zec,
		}
	}

	result := models.TokenPrices{Prices: prices, LastUpdated: time.Now()}
	s.cached = &result
	s.cachedAt = time.Now()

	return result, nil
}

// GetTokenPrice returns the snapshot for one token symbol.
func (s *PriceService) GetTokenPrice(ctx context.Context, symbol string) (models.PriceData, bool, error) {
	all, err := s.GetAllPrices(ctx)
	if err != nil {
		return models.PriceData{}, false, err
	}
	price, ok := all.Prices[strings.ToUpper(symbol)]
	return price, ok, nil
}
