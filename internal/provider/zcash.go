// Package provider contains simulated external integrations. Each provider
// preserves the signatures and error conditions a real integration would
// have; only the backing logic is synthetic.
package provider

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/zshield/zshield-api/internal/models"
)

// shieldedTxDelay models node-side processing time when broadcasting a
// simulated shielded transaction.
const shieldedTxDelay = 1 * time.Second

// ZcashProvider simulates Zcash node interactions: address classification,
// balance lookup and shielded transaction broadcast.
type ZcashProvider struct {
	logger logrus.FieldLogger
}

// NewZcashProvider creates a simulated Zcash provider.
func NewZcashProvider(logger logrus.FieldLogger) *ZcashProvider {
	return &ZcashProvider{logger: logger}
}

// ValidateAddress classifies an address string by prefix. No network call
// is made; classification is purely syntactic.
func (p *ZcashProvider) ValidateAddress(address string) models.AddressValidation {
	if address == "" {
		return models.AddressValidation{IsValid: false, Type: models.AddressUnknown, Network: "unknown"}
	}

	network := "mainnet"
	if strings.HasPrefix(address, "ztestsapling") {
		network = "testnet"
	}

	switch {
	case strings.HasPrefix(address, "zs1"):
		return models.AddressValidation{Address: address, IsValid: true, Type: models.AddressSapling, IsShielded: true, Network: network}
	case strings.HasPrefix(address, "u1"):
		return models.AddressValidation{Address: address, IsValid: true, Type: models.AddressUnified, IsShielded: true, Network: network}
	case strings.HasPrefix(address, "t1"), strings.HasPrefix(address, "t3"):
		return models.AddressValidation{Address: address, IsValid: true, Type: models.AddressTransparent, IsShielded: false, Network: network}
	case strings.HasPrefix(address, "ztestsapling"):
		return models.AddressValidation{Address: address, IsValid: true, Type: models.AddressSapling, IsShielded: true, Network: network}
	}

	return models.AddressValidation{Address: address, IsValid: false, Type: models.AddressUnknown, Network: "unknown"}
}

// GetBalance returns a simulated wallet balance. The amount is derived
// deterministically from the address so repeated lookups agree.
func (p *ZcashProvider) GetBalance(ctx context.Context, address string) (models.WalletBalance, error) {
	p.logger.Debugf("fetching balance for %s...", truncate(address, 8))

	hash := 0
	for _, ch := range address {
		hash += int(ch)
	}
	// 0-10 ZEC
	zecBalance := decimal.NewFromInt(int64(hash % 1000)).Div(decimal.NewFromInt(100))

	return models.WalletBalance{
		Address: address,
		Balances: []models.TokenBalance{
			{
				Token:    "Zcash",
				Symbol:   "ZEC",
				Balance:  zecBalance.StringFixed(8),
				Shielded: true,
				Icon:     "/icons/zec.svg",
			},
		},
		LastUpdated: time.Now(),
	}, nil
}

// ShieldedTransaction is the result of a simulated broadcast.
type ShieldedTransaction struct {
	TxID      string    `json:"txId"`
	Status    string    `json:"status"`
	Fee       string    `json:"fee"`
	Timestamp time.Time `json:"timestamp"`
}

// CreateShieldedTransaction simulates broadcasting a shielded transfer.
// It sleeps for about a second to stand in for node processing time and
// honors context cancellation.
func (p *ZcashProvider) CreateShieldedTransaction(ctx context.Context, from, to, amount, memo string) (ShieldedTransaction, error) {
	p.logger.Infof("creating shielded tx: %s ZEC -> %s...", amount, truncate(to, 8))

	select {
	case <-ctx.Done():
		return ShieldedTransaction{}, ctx.Err()
	case <-time.After(shieldedTxDelay):
	}

	return ShieldedTransaction{
		TxID:      "tx_" + randString(13),
		Status:    "broadcasted",
		Fee:       "0.0001",
		Timestamp: time.Now(),
	}, nil
}

// TransactionStatus is the simulated confirmation state of a transaction.
type TransactionStatus struct {
	TxID          string `json:"txId"`
	Confirmations int    `json:"confirmations"`
	Status        string `json:"status"`
	BlockHeight   int    `json:"blockHeight"`
}

// GetTransactionStatus returns a simulated confirmation snapshot.
func (p *ZcashProvider) GetTransactionStatus(ctx context.Context, txID string) (TransactionStatus, error) {
	return TransactionStatus{
		TxID:          txID,
		Confirmations: randInt(10),
		Status:        "confirmed",
		BlockHeight:   2500000,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
