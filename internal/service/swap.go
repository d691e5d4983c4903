package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/zshield/zshield-api/internal/apperr"
	"github.com/zshield/zshield-api/internal/metrics"
	"github.com/zshield/zshield-api/internal/models"
	"github.com/zshield/zshield-api/internal/provider"
	"github.com/zshield/zshield-api/internal/repository"
	"github.com/zshield/zshield-api/internal/store"
)

// tokenNames maps symbols to display names for quote assembly.
var tokenNames = map[string]string{
	"ZEC": "Zcash",
}

// SwapHistory is a paginated slice of a session's swaps.
type SwapHistory struct {
	Swaps      []models.SwapTransaction `json:"swaps"`
	Pagination Pagination               `json:"pagination"`
}

// Pagination describes the slice returned by a history query.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// SwapService orchestrates quote generation and swap execution.
type SwapService struct {
	swaps       *repository.SwapRepository
	quotes      *store.QuoteStore
	sideshift   *provider.SideShiftProvider
	quoteExpiry time.Duration
	orderExpiry time.Duration
	feePercent  string
	logger      logrus.FieldLogger
	now         func() time.Time
}

// NewSwapService creates the swap service. orderExpiry bounds the lifetime
// of an executed swap order.
func NewSwapService(swaps *repository.SwapRepository, quotes *store.QuoteStore, sideshift *provider.SideShiftProvider, quoteExpiry, orderExpiry time.Duration, feePercent string, logger logrus.FieldLogger) *SwapService {
	return &SwapService{
		swaps:       swaps,
		quotes:      quotes,
		sideshift:   sideshift,
		quoteExpiry: quoteExpiry,
		orderExpiry: orderExpiry,
		feePercent:  feePercent,
		logger:      logger,
		now:         time.Now,
	}
}

// GetQuote obtains a rate from the settlement provider and assembles the
// full quote payload, persisting it under its own identifier until expiry.
func (s *SwapService) GetQuote(ctx context.Context, fromToken, toToken, amount string) (models.SwapQuote, error) {
	s.logger.Infof("getting quote: %s %s -> %s", amount, fromToken, toToken)

	providerQuote, err := s.sideshift.GetQuote(ctx, fromToken, toToken, amount)
	if err != nil {
		return models.SwapQuote{}, err
	}

	quote := models.SwapQuote{
		QuoteID:     providerQuote.ID,
		FromToken:   tokenInfo(fromToken, "#fbbf24"),
		ToToken:     tokenInfo(toToken, "#6366f1"),
		FromAmount:  amount,
		ToAmount:    providerQuote.SettleAmount,
		Rate:        providerQuote.Rate,
		RateInverse: inverseRate(providerQuote.Rate),
		PriceImpact: "0.05",
		Fee:         providerQuote.NetworkFee,
		FeeUSD:      "0.15",
		FeePercent:  s.feePercent,
		Route: []models.RouteStep{
			{Step: 1, From: fromToken, To: "Pool", Via: "Shielded Pool", Portion: "100%"},
			{Step: 2, From: "Pool", To: toToken, Via: "SideShift", Portion: "100%"},
		},
		EstimatedTime: "5-10 min",
		ExpiresAt:     providerQuote.ExpiresAt,
		PrivacyLevel:  "shielded",
		Warnings:      []string{},
	}

	s.quotes.Set(quote, s.quoteExpiry)
	metrics.QuotesCreated.Inc()

	return quote, nil
}

// ExecuteSwap materializes a deposit order for a stored quote and creates
// the swap record, whose background progression starts immediately.
//
// The quote is deliberately not consumed here: it stays usable until its
// natural expiry, so the same quote ID can back multiple swaps. This
// mirrors upstream behavior and is a documented decision, not an
// oversight.
func (s *SwapService) ExecuteSwap(ctx context.Context, sessionID, quoteID, fromAddress, toAddress string) (models.SwapTransaction, error) {
	s.logger.Infof("executing swap for quote %s", quoteID)

	quote, ok := s.quotes.Get(quoteID)
	if !ok {
		return models.SwapTransaction{}, apperr.QuoteExpired()
	}

	order, err := s.sideshift.CreateOrder(ctx, quoteID, fromAddress, toAddress)
	if err != nil {
		return models.SwapTransaction{}, err
	}

	swap := s.swaps.Create(repository.CreateSwapData{
		SessionID:          sessionID,
		FromToken:          quote.FromToken.Symbol,
		ToToken:            quote.ToToken.Symbol,
		FromAmount:         quote.FromAmount,
		ToAmount:           quote.ToAmount,
		Rate:               quote.Rate,
		Fee:                quote.Fee,
		DepositAddress:     order.DepositAddress,
		DestinationAddress: toAddress,
		ExpiresAt:          s.now().Add(s.orderExpiry),
	})
	metrics.SwapsExecuted.Inc()

	return swap, nil
}

// GetSwapStatus returns the current swap record.
func (s *SwapService) GetSwapStatus(swapID string) (models.SwapTransaction, bool) {
	return s.swaps.FindByID(swapID)
}

// GetUserHistory returns a page of the session's swaps, most recent
// first. Slicing happens in memory over the full per-session set.
func (s *SwapService) GetUserHistory(sessionID string, limit, offset int) SwapHistory {
	all := s.swaps.FindBySession(sessionID)
	total := len(all)

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 10
	}

	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return SwapHistory{
		Swaps: all[start:end],
		Pagination: Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: offset+limit < total,
		},
	}
}

func tokenInfo(symbol, color string) models.TokenInfo {
	name := symbol
	if n, ok := tokenNames[symbol]; ok {
		name = n
	}
	return models.TokenInfo{
		Symbol:   symbol,
		Name:     name,
		Icon:     "/icons/" + strings.ToLower(symbol) + ".svg",
		Decimals: 8,
		Color:    color,
	}
}

func inverseRate(rate string) string {
	r, err := decimal.NewFromString(rate)
	if err != nil || r.IsZero() {
		return "0"
	}
	return decimal.NewFromInt(1).Div(r).StringFixed(8)
}
