package provider

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zshield/zshield-api/internal/apperr"
)

func TestSideShiftProvider_GetQuote(t *testing.T) {
	p := NewSideShiftProvider(15*time.Minute, testLogger())

	tests := []struct {
		name       string
		from, to   string
		amount     string
		wantRate   string
		wantSettle string
	}{
		// 10 ZEC = 355 USD; 355/3500 * 0.995
		{"zec to eth", "ZEC", "ETH", "10", "0.01014286", "0.10092143"},
		// 1 BTC = 65000 USD of USDC, minus the 0.5% fee
		{"btc to usdc", "BTC", "USDC", "1", "65000.00000000", "64675.00000000"},
		{"usdc to zec", "USDC", "ZEC", "35.50", "0.02816901", "0.99500000"},
		// Unknown tokens fall back to a 1.0 USD rate
		{"unknown token", "DOGE", "USDC", "100", "1.00000000", "99.50000000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := p.GetQuote(context.Background(), tc.from, tc.to, tc.amount)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(quote.ID, "quote_"))
			assert.Equal(t, tc.wantRate, quote.Rate)
			assert.Equal(t, tc.amount, quote.DepositAmount)
			assert.Equal(t, tc.wantSettle, quote.SettleAmount)
			assert.Equal(t, "0.0001", quote.NetworkFee)
		})
	}
}

func TestSideShiftProvider_GetQuoteRejectsBadAmount(t *testing.T) {
	p := NewSideShiftProvider(15*time.Minute, testLogger())

	_, err := p.GetQuote(context.Background(), "ZEC", "ETH", "not-a-number")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
}

func TestSideShiftProvider_CreateOrder(t *testing.T) {
	p := NewSideShiftProvider(15*time.Minute, testLogger())

	order, err := p.CreateOrder(context.Background(), "quote_abc123de", "zs1refund", "0xsettle")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.ID, "order_"))
	assert.True(t, strings.HasPrefix(order.DepositAddress, "t1"))
	assert.Len(t, order.DepositAddress, 32)
	assert.Equal(t, "waiting", order.Status)
}
