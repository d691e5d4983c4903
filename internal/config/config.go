package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP server
	APIAddr string
	DevMode bool

	// Database (unused in demo mode; kept for the recognized env surface)
	DatabaseURL string

	// Security
	SessionSecret string

	// App mode
	DemoMode   bool
	Production bool

	// API base URLs
	APIBaseURL      string
	CoingeckoAPIURL string

	// Session settings
	SessionExpiry time.Duration

	// Rate limiting
	RateLimitMaxRequests int
	RateLimitWindow      time.Duration

	// Swap settings
	ProtocolFeePercent string
	QuoteExpiry        time.Duration
	OrderExpiry        time.Duration

	// Supported token symbols
	SupportedTokens []string
}

func Load() *Config {
	return &Config{
		// HTTP
		APIAddr: getEnv("API_ADDR", ":8080"),
		DevMode: getBoolEnv("DEV_MODE", false),

		// Database
		DatabaseURL: getEnv("DATABASE_URL", "file:./dev.db"),

		// Security
		SessionSecret: getEnv("SESSION_SECRET", "zshield-hackathon-secret-2024"),

		// Mode
		DemoMode:   getBoolEnv("DEMO_MODE", true),
		Production: getEnv("APP_ENV", "") == "production",

		// APIs
		APIBaseURL:      getEnv("PUBLIC_API_URL", "http://localhost:8080/api"),
		CoingeckoAPIURL: getEnv("COINGECKO_API_URL", "https://api.coingecko.com/api/v3"),

		// Session
		SessionExpiry: time.Duration(getIntEnv("SESSION_EXPIRY_HOURS", 24)) * time.Hour,

		// Rate limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitWindow:      time.Duration(getIntEnv("RATE_LIMIT_WINDOW_MS", 60000)) * time.Millisecond,

		// Swap
		ProtocolFeePercent: "0.5",
		QuoteExpiry:        time.Duration(getIntEnv("QUOTE_EXPIRY_MINUTES", 15)) * time.Minute,
		OrderExpiry:        time.Duration(getIntEnv("ORDER_EXPIRY_HOURS", 1)) * time.Hour,

		// Tokens
		SupportedTokens: getListEnv("SUPPORTED_TOKENS", []string{"ZEC", "ETH", "BTC", "USDC"}),
	}
}

// Validate checks critical settings. In production an invalid configuration
// is a hard error; in other modes callers may log and continue.
func (c *Config) Validate() error {
	if len(c.SessionSecret) < 16 {
		return fmt.Errorf("SESSION_SECRET must be at least 16 characters")
	}
	if c.RateLimitMaxRequests < 1 {
		return fmt.Errorf("RATE_LIMIT_MAX_REQUESTS must be positive")
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW_MS must be positive")
	}
	if len(c.SupportedTokens) == 0 {
		return fmt.Errorf("SUPPORTED_TOKENS must not be empty")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getBoolEnv(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getListEnv(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToUpper(part))
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
