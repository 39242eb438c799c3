// Package entity defines the domain models for the pairs feature.
package entity

import "github.com/shopspring/decimal"

// Pair represents one trading pair (token-to-token market) on an exchange.
type Pair struct {
	ID           int64           // Upstream-assigned pair ID
	Slug         string          // URL-safe identifier (e.g., "eth-usdc")
	ExchangeSlug string          // Exchange hosting the pair
	VolumeUSD24H decimal.Decimal // Trailing 24-hour USD volume
	TVL          decimal.Decimal // Total value locked in the pool, USD
}
