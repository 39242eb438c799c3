// Package entity defines the domain models for the chains feature.
package entity

// Chain represents one blockchain supported by the data source.
type Chain struct {
	ID   int64  // Upstream-assigned chain ID
	Name string // Human-readable name (e.g., "Ethereum")
	Slug string // URL-safe identifier (e.g., "ethereum")
}
