// Package dto defines data transfer objects for the Trading Strategy API
// responses. Required identifier fields are pointers so that a missing key
// can be told apart from a zero value at parse time.
package dto

import "github.com/shopspring/decimal"

// ChainItem is one element of the /chains array response.
type ChainItem struct {
	ChainName string `json:"chain_name"`
	ChainSlug string `json:"chain_slug"`
	ChainID   *int64 `json:"chain_id"`
}

// ExchangesResponse is the envelope of the /exchanges response.
type ExchangesResponse struct {
	Exchanges []ExchangeItem `json:"exchanges"`
}

// ExchangeItem is one exchange row inside ExchangesResponse.
type ExchangeItem struct {
	ExchangeSlug string          `json:"exchange_slug"`
	USDVolume30D decimal.Decimal `json:"usd_volume_30d"`
	ExchangeID   *int64          `json:"exchange_id"`
}

// PairsResponse is the envelope of the /pairs response.
type PairsResponse struct {
	Results []PairItem `json:"results"`
}

// PairItem is one trading pair row inside PairsResponse.
type PairItem struct {
	PairID       *int64          `json:"pair_id"`
	PairSlug     string          `json:"pair_slug"`
	ExchangeSlug string          `json:"exchange_slug"`
	USDVolume24H decimal.Decimal `json:"usd_volume_24h"`
	PairTVL      decimal.Decimal `json:"pair_tvl"`
}
