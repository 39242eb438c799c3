// Package adapters はtrackedpairsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"dexdata_backend/internal/feature/trackedpairs/domain/entity"
	"dexdata_backend/internal/feature/trackedpairs/usecase"
)

// trackedPairGorm はTrackedPairRepositoryインターフェースのgorm実装です。
type trackedPairGorm struct {
	db *gorm.DB
}

var _ usecase.TrackedPairRepository = (*trackedPairGorm)(nil)

// NewTrackedPairRepository は指定されたDB接続でtrackedPairGormリポジトリの
// 新しいインスタンスを生成します。
func NewTrackedPairRepository(db *gorm.DB) *trackedPairGorm {
	return &trackedPairGorm{db: db}
}

// ListActive はsort_key順にすべてのアクティブな追跡対象ペアを返します。
func (r *trackedPairGorm) ListActive(ctx context.Context) ([]entity.TrackedPair, error) {
	var pairs []entity.TrackedPair
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&pairs).Error; err != nil {
		return nil, err
	}
	return pairs, nil
}

// ListActivePairIDs はsort_key順にアクティブなペアのIDのみを返します。
func (r *trackedPairGorm) ListActivePairIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&entity.TrackedPair{}).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Pluck("pair_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
