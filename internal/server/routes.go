package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zshield/zshield-api/internal/apperr"
	"github.com/zshield/zshield-api/internal/metrics"
)

// RegisterRoutes configures all API routes, middleware and error handlers.
func RegisterRoutes(e *echo.Echo, h *Handlers, cfg ServerConfig) {
	e.HTTPErrorHandler = ErrorHandler(h.Logger)

	e.Use(SetJSONContentType)
	e.Use(SetNoCacheHeaders)
	e.Use(countRequests)

	// Operational endpoints stay outside the rate-limited API surface.
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.Use(RateLimit(h.Limits, cfg.RateLimit, h.Logger))

	requireAuth := RequireAuth(h.Sessions, h.Logger)
	optionalAuth := OptionalAuth(h.Sessions)

	auth := api.Group("/auth")
	auth.POST("/connect", h.Connect)
	auth.POST("/disconnect", h.Disconnect, requireAuth)
	auth.GET("/session", h.Session, requireAuth)

	api.GET("/price", h.Prices)
	api.GET("/price/:token", h.TokenPrice)
	api.GET("/stats", h.Stats)

	swap := api.Group("/swap")
	swap.POST("/quote", h.Quote)
	swap.POST("/execute", h.Execute, requireAuth)
	swap.GET("/history", h.History, requireAuth)
	swap.GET("/:id", h.SwapByID, optionalAuth)

	wallet := api.Group("/wallet")
	wallet.GET("/balance", h.Balance, requireAuth)
	wallet.POST("/validate", h.ValidateAddress)

	// Catch-all so unknown paths get the uniform envelope too.
	e.RouteNotFound("/*", func(c echo.Context) error {
		return apperr.NotFound("Route")
	})
}

// countRequests records per-route request counts after the handler runs.
func countRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = apperr.From(err).Status
		}
		path := c.Path()
		if path == "" {
			path = http.StatusText(http.StatusNotFound)
		}
		metrics.RequestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()

		return err
	}
}
