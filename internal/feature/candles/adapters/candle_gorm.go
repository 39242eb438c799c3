// Package adapters はcandlesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dexdata_backend/internal/feature/candles/domain/entity"
	"dexdata_backend/internal/feature/candles/usecase"
)

// candleGorm はCandleRepositoryインターフェースのgorm実装です。
type candleGorm struct {
	db *gorm.DB
}

var _ usecase.CandleRepository = (*candleGorm)(nil)

// NewCandleRepository は指定されたDB接続でcandleGormリポジトリの新しい
// インスタンスを生成します。
func NewCandleRepository(db *gorm.DB) *candleGorm {
	return &candleGorm{db: db}
}

// CandleModel はcandlesテーブルの行を表します。
type CandleModel struct {
	ID     uint      `gorm:"primaryKey"`
	PairID int64     `gorm:"not null;uniqueIndex:candle_pair_bucket_time,priority:1"`
	Bucket string    `gorm:"size:16;not null;uniqueIndex:candle_pair_bucket_time,priority:2"`
	Time   time.Time `gorm:"not null;uniqueIndex:candle_pair_bucket_time,priority:3"`

	Open   float64 `gorm:"not null"`
	High   float64 `gorm:"not null"`
	Low    float64 `gorm:"not null"`
	Close  float64 `gorm:"not null"`
	Volume float64 `gorm:"not null;default:0"`
}

func (CandleModel) TableName() string {
	return "candles"
}

func toModel(e entity.Candle) CandleModel {
	return CandleModel{
		PairID: e.PairID,
		Bucket: e.Bucket,
		Time:   e.Time,
		Open:   e.Open,
		High:   e.High,
		Low:    e.Low,
		Close:  e.Close,
		Volume: e.Volume,
	}
}

// UpsertBatch はローソク足を一括で挿入し、既存の行（同一ペア・集計間隔・
// 時刻）は価格と出来高を更新します。
func (r *candleGorm) UpsertBatch(ctx context.Context, candles []entity.Candle) error {
	if len(candles) == 0 {
		return nil
	}
	ms := make([]CandleModel, 0, len(candles))
	for _, e := range candles {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pair_id"}, {Name: "bucket"}, {Name: "time"}},
		DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume"}),
	}).Create(&ms).Error
}

// Find は指定されたペアと集計間隔のローソク足を新しい順に返します。
func (r *candleGorm) Find(ctx context.Context, pairID int64, bucket string, outputsize int) ([]entity.Candle, error) {
	var rows []CandleModel
	q := r.db.WithContext(ctx).
		Where("pair_id = ? AND bucket = ?", pairID, bucket).
		Order("time DESC")
	if outputsize > 0 {
		q = q.Limit(outputsize)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Candle, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Candle{
			PairID: m.PairID,
			Bucket: m.Bucket,
			Time:   m.Time,
			Open:   m.Open,
			High:   m.High,
			Low:    m.Low,
			Close:  m.Close,
			Volume: m.Volume,
		})
	}
	return out, nil
}
