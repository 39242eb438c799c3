package usecase

import (
	"context"
	"errors"

	"dexdata_backend/internal/feature/candles/domain/entity"
)

// ErrNoPairIDs はペアIDが1つも指定されていない場合に返されます。
var ErrNoPairIDs = errors.New("at least one pair id is required")

// MarketRepository は上流APIからOHLCVローソク足を取得するレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// GetOHLCVCandles は指定ペアのローソク足をペアIDごとの時系列として返します。
	// startTimeとendTimeは解釈されずそのまま上流に転送されます。
	// maxBytesが0以下の場合はデフォルト値が使用されます。
	GetOHLCVCandles(ctx context.Context, pairIDs []string, startTime, endTime, timeBucket string, maxBytes int64) (*entity.CandleSeriesCollection, error)
}

// LiveCandlesUsecase は上流APIに対するアドホックなローソク足クエリの
// ユースケースを定義します。結果はローカルストアを経由しません。
type LiveCandlesUsecase struct {
	market MarketRepository
}

// NewLiveCandlesUsecase はLiveCandlesUsecaseの新しいインスタンスを生成します。
func NewLiveCandlesUsecase(market MarketRepository) *LiveCandlesUsecase {
	return &LiveCandlesUsecase{market: market}
}

// FetchRange は指定ペアの指定期間のローソク足を上流から直接取得します。
// pairIDsは重複除去されずそのまま転送されます。
func (u *LiveCandlesUsecase) FetchRange(ctx context.Context, pairIDs []string, startTime, endTime, bucket string) (*entity.CandleSeriesCollection, error) {
	if len(pairIDs) == 0 {
		return nil, ErrNoPairIDs
	}
	return u.market.GetOHLCVCandles(ctx, pairIDs, startTime, endTime, bucket, 0)
}
