// Package dto defines response shapes for the chains HTTP endpoints.
package dto

// ChainItem is one blockchain row in the /chains response.
type ChainItem struct {
	ChainID int64  `json:"chain_id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
}
