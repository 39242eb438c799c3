package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"dexdata_backend/internal/feature/candles/domain/entity"
	"dexdata_backend/internal/shared/ratelimiter"
)

const (
	// ingestLookbackDays は1回の取り込みで遡る日数です。
	ingestLookbackDays = 7
	// 上流に転送する日付のフォーマットです。
	ingestTimeLayout = "2006-01-02"
)

// ingestBuckets はデータ取り込みの対象となる集計間隔のリストです。
var ingestBuckets = []string{"15m", "1h", "1d"}

// CandleSink は取り込んだローソク足バッチの配信先を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CandleSink interface {
	PublishBatch(ctx context.Context, candles []entity.Candle) error
}

// IngestUsecase は上流APIからデータを取得し、ローカルストアに永続化する
// ユースケースを定義します。sinkが設定されている場合は永続化したバッチを
// 配信します。
type IngestUsecase struct {
	market      MarketRepository
	candle      CandleRepository
	sink        CandleSink // nilの場合は配信をスキップ
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(market MarketRepository, candle CandleRepository, sink CandleSink, rateLimiter ratelimiter.RateLimiterInterface) *IngestUsecase {
	return &IngestUsecase{market: market, candle: candle, sink: sink, rateLimiter: rateLimiter}
}

// ingestOne は指定されたペアと集計間隔の時系列データを上流から取得し、
// ローカルストアに一括で挿入（または更新）します。
func (iu *IngestUsecase) ingestOne(ctx context.Context, pairID int64, bucket string) error {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -ingestLookbackDays).Format(ingestTimeLayout)
	end := now.Format(ingestTimeLayout)

	col, err := iu.market.GetOHLCVCandles(ctx, []string{strconv.FormatInt(pairID, 10)}, start, end, bucket, 0)
	if err != nil {
		return err
	}

	series := col.Series[pairID]
	if len(series) == 0 {
		return nil
	}

	if err := iu.candle.UpsertBatch(ctx, series); err != nil {
		return err
	}

	// 配信の失敗は取り込み自体を失敗させません
	if iu.sink != nil {
		if err := iu.sink.PublishBatch(ctx, series); err != nil {
			slog.Warn("failed to publish candle batch", "pair_id", pairID, "bucket", bucket, "error", err)
		}
	}
	return nil
}

// IngestAll は指定された全ペアの時系列データを複数の集計間隔で取得し、
// ローカルストアに永続化します。上流のレートリミットを考慮して、
// リクエスト間に適切な待機時間を設けます。
func (iu *IngestUsecase) IngestAll(ctx context.Context, pairIDs []int64) error {
	for _, id := range pairIDs {
		for _, bucket := range ingestBuckets {
			iu.rateLimiter.WaitIfNeeded()
			if err := iu.ingestOne(ctx, id, bucket); err != nil {
				// 1つのペアでエラーが発生しても処理を止めずにログに出力し、次の処理を続ける
				slog.Error("failed to ingest candles", "pair_id", id, "bucket", bucket, "error", err)
				continue
			}
		}
	}
	return nil
}
