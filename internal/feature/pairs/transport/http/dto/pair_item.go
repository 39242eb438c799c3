// Package dto defines response shapes for the pairs HTTP endpoints.
package dto

import "github.com/shopspring/decimal"

// PairItem is one trading pair row in the /pairs response.
type PairItem struct {
	PairID       int64           `json:"pair_id"`
	Slug         string          `json:"pair_slug"`
	ExchangeSlug string          `json:"exchange_slug"`
	VolumeUSD24H decimal.Decimal `json:"usd_volume_24h"`
	TVL          decimal.Decimal `json:"pair_tvl"`
}
