// Package usecase implements the business logic for tracked-pair operations.
package usecase

import (
	"context"

	"dexdata_backend/internal/feature/trackedpairs/domain/entity"
)

// TrackedPairRepository abstracts the persistence layer for tracked trading pairs.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TrackedPairRepository interface {
	ListActive(ctx context.Context) ([]entity.TrackedPair, error)
	ListActivePairIDs(ctx context.Context) ([]int64, error)
}

// TrackedPairUsecase provides business logic for tracked-pair operations.
type TrackedPairUsecase struct {
	repo TrackedPairRepository
}

// NewTrackedPairUsecase creates a new TrackedPairUsecase with the given repository.
func NewTrackedPairUsecase(r TrackedPairRepository) *TrackedPairUsecase {
	return &TrackedPairUsecase{repo: r}
}

// ListActivePairs returns all pairs the ingest job currently follows.
func (u *TrackedPairUsecase) ListActivePairs(ctx context.Context) ([]entity.TrackedPair, error) {
	return u.repo.ListActive(ctx)
}
