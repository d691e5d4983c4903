package provider

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/zshield/zshield-api/internal/apperr"
)

// Fixed rate table standing in for the settlement network's live rates.
var usdRates = map[string]decimal.Decimal{
	"ZEC":  decimal.RequireFromString("35.50"),
	"BTC":  decimal.RequireFromString("65000.00"),
	"ETH":  decimal.RequireFromString("3500.00"),
	"USDC": decimal.RequireFromString("1.00"),
}

// feeMultiplier applies the fixed 0.5% fee/slippage to the settle amount.
var feeMultiplier = decimal.RequireFromString("0.995")

// ProviderQuote is a raw rate proposal from the settlement provider.
type ProviderQuote struct {
	ID            string    `json:"id"`
	Rate          string    `json:"rate"`
	DepositAmount string    `json:"depositAmount"`
	SettleAmount  string    `json:"settleAmount"`
	ExpiresAt     time.Time `json:"expiresAt"`
	NetworkFee    string    `json:"networkFee"`
}

// ProviderOrder is a materialized deposit order.
type ProviderOrder struct {
	ID             string    `json:"id"`
	DepositAddress string    `json:"depositAddress"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// SideShiftProvider simulates the cross-chain settlement network used for
// swaps: it quotes from a fixed rate table and issues synthetic deposit
// addresses.
type SideShiftProvider struct {
	quoteExpiry time.Duration
	logger      logrus.FieldLogger
}

// NewSideShiftProvider creates a simulated settlement provider whose
// quotes expire after quoteExpiry.
func NewSideShiftProvider(quoteExpiry time.Duration, logger logrus.FieldLogger) *SideShiftProvider {
	return &SideShiftProvider{quoteExpiry: quoteExpiry, logger: logger}
}

// GetQuote computes a deposit/settle amount pair from the fixed rate table,
// applying the 0.5% fee. Unknown tokens quote at a 1.0 USD rate, matching
// the upstream's permissive behavior.
func (p *SideShiftProvider) GetQuote(ctx context.Context, fromToken, toToken, amount string) (ProviderQuote, error) {
	p.logger.Debugf("getting quote: %s %s -> %s", amount, fromToken, toToken)

	amountNum, err := decimal.NewFromString(amount)
	if err != nil {
		return ProviderQuote{}, apperr.Validation("Invalid amount", map[string]string{"fromAmount": "must be a decimal number"})
	}

	fromRate, ok := usdRates[fromToken]
	if !ok {
		fromRate = decimal.NewFromInt(1)
	}
	toRate, ok := usdRates[toToken]
	if !ok {
		toRate = decimal.NewFromInt(1)
	}

	usdValue := amountNum.Mul(fromRate)
	estimatedOutput := usdValue.Div(toRate).Mul(feeMultiplier)

	return ProviderQuote{
		ID:            "quote_" + randString(8),
		Rate:          fromRate.Div(toRate).StringFixed(8),
		DepositAmount: amount,
		SettleAmount:  estimatedOutput.StringFixed(8),
		ExpiresAt:     time.Now().Add(p.quoteExpiry),
		NetworkFee:    "0.0001",
	}, nil
}

// CreateOrder materializes a deposit order for a previously issued quote.
// The deposit address is always a synthetic transparent address.
func (p *SideShiftProvider) CreateOrder(ctx context.Context, quoteID, refundAddress, settleAddress string) (ProviderOrder, error) {
	p.logger.Infof("creating order for quote %s", quoteID)

	return ProviderOrder{
		ID:             "order_" + randString(8),
		DepositAddress: "t1" + randString(30),
		Status:         "waiting",
		CreatedAt:      time.Now(),
	}, nil
}
