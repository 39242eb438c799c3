// Package usecase はローソク足データ操作のビジネスロジックを実装します。
package usecase

import (
	"context"

	"dexdata_backend/internal/feature/candles/domain/entity"
)

const (
	// DefaultBucket はローソク足クエリのデフォルト集計間隔です。
	DefaultBucket = "15m"
	// DefaultOutputSize はデフォルトのローソク足返却件数です。
	DefaultOutputSize = 200
	// MaxOutputSize はローソク足の最大返却件数です。
	MaxOutputSize = 5000
)

// CandleRepository はローソク足データの読み書きレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CandleRepository interface {
	// Find はローカルストアからローソク足データを検索します。
	Find(ctx context.Context, pairID int64, bucket string, outputsize int) ([]entity.Candle, error)
	// UpsertBatch はローソク足データを一括で挿入または更新します。
	UpsertBatch(ctx context.Context, candles []entity.Candle) error
}

// CandlesUsecase はローカルストアに対するローソク足クエリのユースケースを定義します。
type CandlesUsecase struct {
	candle CandleRepository
}

// NewCandlesUsecase はCandlesUsecaseの新しいインスタンスを生成します。
func NewCandlesUsecase(candle CandleRepository) *CandlesUsecase {
	return &CandlesUsecase{candle: candle}
}

// GetCandles は指定されたペアと集計間隔のローソク足データを取得します。
func (cu *CandlesUsecase) GetCandles(ctx context.Context, pairID int64, bucket string, outputsize int) ([]entity.Candle, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}
	if outputsize <= 0 || outputsize > MaxOutputSize {
		outputsize = DefaultOutputSize
	}

	cs, err := cu.candle.Find(ctx, pairID, bucket, outputsize)
	if err != nil {
		return nil, err
	}

	return cs, nil
}
