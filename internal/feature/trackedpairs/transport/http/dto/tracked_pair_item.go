// Package dto defines response shapes for the tracked-pairs HTTP endpoints.
package dto

// TrackedPairItem is one row in the /tracked-pairs response.
type TrackedPairItem struct {
	PairID       int64  `json:"pair_id"`
	Slug         string `json:"slug"`
	ExchangeSlug string `json:"exchange_slug"`
}
