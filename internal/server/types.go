package server

// ConnectRequest is the body of POST /api/auth/connect.
type ConnectRequest struct {
	Address    string `json:"address"`
	WalletType string `json:"walletType"`
}

// QuoteRequest is the body of POST /api/swap/quote.
type QuoteRequest struct {
	FromToken  string   `json:"fromToken"`
	ToToken    string   `json:"toToken"`
	FromAmount string   `json:"fromAmount"`
	Slippage   *float64 `json:"slippage,omitempty"`
}

// ExecuteRequest is the body of POST /api/swap/execute.
type ExecuteRequest struct {
	QuoteID     string `json:"quoteId"`
	FromAddress string `json:"fromAddress"`
	ToAddress   string `json:"toAddress"`
	FromToken   string `json:"fromToken"`
	ToToken     string `json:"toToken"`
	FromAmount  string `json:"fromAmount"`
}

// ValidateAddressRequest is the body of POST /api/wallet/validate.
type ValidateAddressRequest struct {
	Address string `json:"address"`
}

// DisconnectResponse confirms session teardown.
type DisconnectResponse struct {
	Disconnected bool `json:"disconnected"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	OK bool `json:"ok"`
}
