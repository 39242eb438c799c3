// Package tradingstrategy provides a client for the Trading Strategy
// DEX market-data API.
package tradingstrategy

import (
	"os"
	"time"
)

// DefaultBaseURL is the public Trading Strategy API endpoint.
const DefaultBaseURL = "https://tradingstrategy.ai/api/"

// Config holds configuration for the Trading Strategy API client.
type Config struct {
	BaseURL string        // Base URL for the API
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Trading Strategy configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("TRADING_STRATEGY_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		BaseURL: base,
		Timeout: 60 * time.Second,
	}
}
