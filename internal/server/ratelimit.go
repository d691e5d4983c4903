package server

import (
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/zshield/zshield-api/internal/apperr"
	"github.com/zshield/zshield-api/internal/metrics"
	"github.com/zshield/zshield-api/internal/store"
)

// RateLimitConfig parameterizes the fixed-window limiter.
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

// RateLimit enforces a fixed-window per-client request quota. Every
// response carries X-RateLimit-* headers; rejected requests additionally
// get Retry-After. Window resets are lazy; the store's periodic sweep only
// reclaims memory.
func RateLimit(limits *store.RateLimitStore, cfg RateLimitConfig, logger logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clientID := clientIdentifier(c)
			result := limits.Hit(clientID, cfg.MaxRequests, cfg.Window)

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
			header.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			header.Set("X-RateLimit-Reset", strconv.Itoa(ceilSeconds(result.ResetIn)))

			if result.Limited {
				logger.Warnf("rate limit exceeded for client: %s", clientID)
				metrics.RateLimited.Inc()
				header.Set("Retry-After", strconv.Itoa(ceilSeconds(result.ResetIn)))
				return apperr.RateLimited("Too many requests. Please try again later.")
			}

			return next(c)
		}
	}
}

// clientIdentifier derives a stable per-client key: the forwarded-for
// chain's first hop, then the real-IP header, then a hash of user agent
// plus accept-language for clients behind anonymizing proxies.
func clientIdentifier(c echo.Context) string {
	req := c.Request()

	if forwarded := req.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.IndexByte(forwarded, ','); idx != -1 {
			return strings.TrimSpace(forwarded[:idx])
		}
		return strings.TrimSpace(forwarded)
	}

	if ip := req.Header.Get("X-Real-IP"); ip != "" {
		return strings.TrimSpace(ip)
	}

	ua := req.Header.Get("User-Agent")
	lang := req.Header.Get("Accept-Language")
	h := fnv.New32a()
	_, _ = h.Write([]byte(ua + lang))
	return fmt.Sprintf("anon:%s", strconv.FormatUint(uint64(h.Sum32()), 36))
}

func ceilSeconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}
