package models

import "time"

// AddressValidation is the result of classifying an address string.
type AddressValidation struct {
	Address    string      `json:"address"`
	IsValid    bool        `json:"isValid"`
	Type       AddressType `json:"type"`
	IsShielded bool        `json:"isShielded"`
	Network    string      `json:"network"`
}

// TokenBalance is a single token position inside a wallet.
type TokenBalance struct {
	Token      string `json:"token"`
	Symbol     string `json:"symbol"`
	Balance    string `json:"balance"`
	BalanceUSD string `json:"balanceUSD"`
	Shielded   bool   `json:"shielded"`
	Icon       string `json:"icon"`
}

// WalletBalance aggregates all token positions for an address.
type WalletBalance struct {
	Address       string         `json:"address"`
	Balances      []TokenBalance `json:"balances"`
	TotalValueUSD string         `json:"totalValueUSD"`
	LastUpdated   time.Time      `json:"lastUpdated"`
}

// PriceData holds the USD snapshot plus cross rates for one asset.
type PriceData struct {
	USD       float64 `json:"usd"`
	BTC       float64 `json:"btc"`
	ETH       float64 `json:"eth"`
	ZEC       float64 `json:"zec"`
	Change24h float64 `json:"change_24h"`
}

// TokenPrices is the full price snapshot returned by the price service.
type TokenPrices struct {
	Prices      map[string]PriceData `json:"prices"`
	LastUpdated time.Time            `json:"lastUpdated"`
}

// PlatformStats is the aggregate surfaced by the analytics service.
type PlatformStats struct {
	TotalVolumeUSD  string `json:"totalVolumeUSD"`
	TotalSwaps      int    `json:"totalSwaps"`
	PrivateSwaps    int    `json:"privateSwaps"`
	ActiveUsers24h  int    `json:"activeUsers24h"`
	AverageSwapTime string `json:"averageSwapTime"`
	SuccessRate     string `json:"successRate"`
	TVL             string `json:"tvl"`
	SupportedPairs  int    `json:"supportedPairs"`
}
