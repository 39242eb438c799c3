// Package entity defines the domain models for the exchanges feature.
package entity

import "github.com/shopspring/decimal"

// Exchange represents one decentralized exchange on a blockchain.
// Monetary magnitudes are decimals so that large USD volumes survive
// round-tripping without float drift.
type Exchange struct {
	ID           int64           // Upstream-assigned exchange ID
	Slug         string          // URL-safe identifier (e.g., "uniswap-v3")
	VolumeUSD30D decimal.Decimal // Trailing 30-day USD volume
}
