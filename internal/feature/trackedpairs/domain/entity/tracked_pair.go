// Package entity defines the domain models for the trackedpairs feature.
package entity

import "time"

// TrackedPair represents a trading pair the ingest job follows.
// It carries enough metadata to display the pair without another
// round trip to the upstream API.
type TrackedPair struct {
	ID           uint      `gorm:"primaryKey"`
	PairID       int64     `gorm:"not null;uniqueIndex"`
	Slug         string    `gorm:"size:255;not null"`
	ExchangeSlug string    `gorm:"size:255;not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	SortKey      int       `gorm:"not null;default:0"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}
