// Package dto defines response shapes for the exchanges HTTP endpoints.
package dto

import "github.com/shopspring/decimal"

// ExchangeItem is one exchange row in the /exchanges response.
// The volume is a decimal string to avoid float drift on large USD values.
type ExchangeItem struct {
	ExchangeID   int64           `json:"exchange_id"`
	Slug         string          `json:"slug"`
	VolumeUSD30D decimal.Decimal `json:"usd_volume_30d"`
}
