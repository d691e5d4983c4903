package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/zshield/zshield-api/internal/apperr"
	"github.com/zshield/zshield-api/internal/repository"
	"github.com/zshield/zshield-api/internal/service"
	"github.com/zshield/zshield-api/internal/store"
)

// Handlers contains all dependencies for API endpoint handlers.
type Handlers struct {
	Auth      *service.AuthService
	Swap      *service.SwapService
	Wallet    *service.WalletService
	Price     *service.PriceService
	Analytics *service.AnalyticsService
	Sessions  *repository.SessionRepository
	Limits    *store.RateLimitStore
	Logger    *logrus.Logger
}

// Health returns a simple health check payload.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{OK: true})
}

// Connect validates a wallet address and opens a session for it.
func (h *Handlers) Connect(c echo.Context) error {
	var req ConnectRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("Invalid JSON body", nil)
	}

	details := map[string]string{}
	if strings.TrimSpace(req.Address) == "" {
		details["address"] = "Address is required"
	}
	if strings.TrimSpace(req.WalletType) == "" {
		details["walletType"] = "Wallet type is required"
	}
	if len(details) > 0 {
		return apperr.Validation("Invalid request", details)
	}

	session, err := h.Auth.ConnectWallet(req.Address, req.WalletType)
	if err != nil {
		return err
	}
	return ok(c, session)
}

// Disconnect ends the authenticated session.
func (h *Handlers) Disconnect(c echo.Context) error {
	session, _ := sessionFromContext(c)
	h.Auth.Disconnect(session.SessionID)
	return ok(c, DisconnectResponse{Disconnected: true})
}

// Session returns the authenticated session.
func (h *Handlers) Session(c echo.Context) error {
	session, _ := sessionFromContext(c)
	return ok(c, session)
}

// Prices returns the full price snapshot.
func (h *Handlers) Prices(c echo.Context) error {
	prices, err := h.Price.GetAllPrices(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, prices)
}

// TokenPrice returns the price snapshot for one token symbol.
func (h *Handlers) TokenPrice(c echo.Context) error {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		return apperr.NotFound("Token")
	}

	price, found, err := h.Price.GetTokenPrice(c.Request().Context(), token)
	if err != nil {
		return err
	}
	if !found {
		return apperr.NotFound("Token " + strings.ToUpper(token))
	}
	return ok(c, price)
}

// Stats returns the platform statistics aggregate.
func (h *Handlers) Stats(c echo.Context) error {
	return ok(c, h.Analytics.GetPlatformStats())
}

// Quote issues a swap quote.
func (h *Handlers) Quote(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("Invalid JSON body", nil)
	}

	details := map[string]string{}
	if strings.TrimSpace(req.FromToken) == "" {
		details["fromToken"] = "required"
	}
	if strings.TrimSpace(req.ToToken) == "" {
		details["toToken"] = "required"
	}
	if strings.TrimSpace(req.FromAmount) == "" {
		details["fromAmount"] = "required"
	}
	if len(details) > 0 {
		return apperr.Validation("Invalid request", details)
	}

	quote, err := h.Swap.GetQuote(c.Request().Context(), req.FromToken, req.ToToken, req.FromAmount)
	if err != nil {
		return err
	}
	return ok(c, quote)
}

// Execute accepts a quote and creates the swap.
func (h *Handlers) Execute(c echo.Context) error {
	session, _ := sessionFromContext(c)

	var req ExecuteRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("Invalid JSON body", nil)
	}

	details := map[string]string{}
	if strings.TrimSpace(req.QuoteID) == "" {
		details["quoteId"] = "required"
	}
	if strings.TrimSpace(req.FromAddress) == "" {
		details["fromAddress"] = "required"
	}
	if strings.TrimSpace(req.ToAddress) == "" {
		details["toAddress"] = "required"
	}
	if strings.TrimSpace(req.FromToken) == "" {
		details["fromToken"] = "required"
	}
	if strings.TrimSpace(req.ToToken) == "" {
		details["toToken"] = "required"
	}
	if strings.TrimSpace(req.FromAmount) == "" {
		details["fromAmount"] = "required"
	}
	if len(details) > 0 {
		return apperr.Validation("Invalid request", details)
	}

	swap, err := h.Swap.ExecuteSwap(c.Request().Context(), session.SessionID, req.QuoteID, req.FromAddress, req.ToAddress)
	if err != nil {
		return err
	}
	return ok(c, swap)
}

// SwapByID returns the current state of one swap. Auth is optional here;
// swap IDs are already unguessable.
func (h *Handlers) SwapByID(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return apperr.NotFound("Swap ID")
	}

	swap, found := h.Swap.GetSwapStatus(id)
	if !found {
		return apperr.NotFound("Swap")
	}
	return ok(c, swap)
}

// History returns a page of the session's swaps.
func (h *Handlers) History(c echo.Context) error {
	session, _ := sessionFromContext(c)

	limit, err := intQueryParam(c, "limit", 10)
	if err != nil {
		return err
	}
	offset, err := intQueryParam(c, "offset", 0)
	if err != nil {
		return err
	}

	return ok(c, h.Swap.GetUserHistory(session.SessionID, limit, offset))
}

// Balance returns priced balances for the query address, defaulting to
// the session's wallet address.
func (h *Handlers) Balance(c echo.Context) error {
	session, _ := sessionFromContext(c)

	address := strings.TrimSpace(c.QueryParam("address"))
	if address == "" {
		address = session.Address
	}

	balances, err := h.Wallet.GetBalances(c.Request().Context(), address)
	if err != nil {
		return err
	}
	return ok(c, balances)
}

// ValidateAddress classifies an address string.
func (h *Handlers) ValidateAddress(c echo.Context) error {
	var req ValidateAddressRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("Invalid JSON body", nil)
	}
	if strings.TrimSpace(req.Address) == "" {
		return apperr.Validation("Invalid request", map[string]string{"address": "Address is required"})
	}

	return ok(c, h.Wallet.ValidateAddress(req.Address))
}

func intQueryParam(c echo.Context, name string, defaultVal int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperr.Validation("Invalid "+name, map[string]string{name: "must be a non-negative integer"})
	}
	return n, nil
}
