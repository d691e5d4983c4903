package models

import "time"

// SwapStatus is the state of a swap transaction.
//
// Forward path: pending_deposit -> confirming -> exchanging -> sending -> completed.
// StatusFailed absorbs from any non-terminal state. StatusExpired is part of
// the public enum but no code path currently drives a swap into it; swaps
// that never settle simply stay pending_deposit past their expiry.
type SwapStatus string

const (
	StatusPendingDeposit SwapStatus = "pending_deposit"
	StatusConfirming     SwapStatus = "confirming"
	StatusExchanging     SwapStatus = "exchanging"
	StatusSending        SwapStatus = "sending"
	StatusCompleted      SwapStatus = "completed"
	StatusFailed         SwapStatus = "failed"
	StatusExpired        SwapStatus = "expired"
)

// Terminal reports whether no further auto-progression may occur.
func (s SwapStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusExpired
}

// TokenInfo describes a tradeable token for quote display.
type TokenInfo struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Decimals int    `json:"decimals"`
	Color    string `json:"color"`
}

// RouteStep is one hop of a quoted swap route.
type RouteStep struct {
	Step    int    `json:"step"`
	From    string `json:"from"`
	To      string `json:"to"`
	Via     string `json:"via"`
	Portion string `json:"portion"`
}

// SwapQuote is a time-boxed, non-binding rate proposal. Amounts and rates
// are decimal strings to keep wire precision independent of float64.
type SwapQuote struct {
	QuoteID       string      `json:"quoteId"`
	FromToken     TokenInfo   `json:"fromToken"`
	ToToken       TokenInfo   `json:"toToken"`
	FromAmount    string      `json:"fromAmount"`
	ToAmount      string      `json:"toAmount"`
	Rate          string      `json:"rate"`
	RateInverse   string      `json:"rateInverse"`
	PriceImpact   string      `json:"priceImpact"`
	Fee           string      `json:"fee"`
	FeeUSD        string      `json:"feeUSD"`
	FeePercent    string      `json:"feePercent"`
	Route         []RouteStep `json:"route"`
	EstimatedTime string      `json:"estimatedTime"`
	ExpiresAt     time.Time   `json:"expiresAt"`
	PrivacyLevel  string      `json:"privacyLevel"`
	Warnings      []string    `json:"warnings"`
}

// SwapTransaction is the persisted record of an accepted quote being
// settled. Progress is monotonically non-decreasing while the status moves
// forward; once Terminal() the progression scheduler leaves it alone.
type SwapTransaction struct {
	SwapID             string     `json:"swapId"`
	SessionID          string     `json:"sessionId"`
	Status             SwapStatus `json:"status"`
	StatusMessage      string     `json:"statusMessage"`
	Progress           int        `json:"progress"`
	FromToken          string     `json:"fromToken"`
	ToToken            string     `json:"toToken"`
	FromAmount         string     `json:"fromAmount"`
	ToAmount           string     `json:"toAmount"`
	Rate               string     `json:"rate"`
	Fee                string     `json:"fee"`
	DepositAddress     string     `json:"depositAddress"`
	DepositMemo        string     `json:"depositMemo,omitempty"`
	DestinationAddress string     `json:"destinationAddress"`
	DepositTxHash      string     `json:"depositTxHash,omitempty"`
	SettleTxHash       string     `json:"settleTxHash,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	ExpiresAt          time.Time  `json:"expiresAt"`
}

// TransactionType distinguishes logged chain transactions.
type TransactionType string

const (
	TxDeposit    TransactionType = "deposit"
	TxSettlement TransactionType = "settlement"
)

// TransactionLog is a recorded deposit or settlement transaction hash
// attached to a swap.
type TransactionLog struct {
	TxHash    string          `json:"txHash"`
	Type      TransactionType `json:"type"`
	SwapID    string          `json:"swapId"`
	Timestamp time.Time       `json:"timestamp"`
}
