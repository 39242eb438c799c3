// Package usecase はexchangesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"dexdata_backend/internal/feature/exchanges/domain/entity"
)

// ErrChainSlugRequired はチェーンスラッグが指定されていない場合に返されます。
var ErrChainSlugRequired = errors.New("chain slug is required")

// MarketRepository は上流APIから取引所一覧を取得するレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// ListExchanges は指定チェーン上の取引所を取引所IDをキーとして返します。
	// ソートとゼロボリュームのフィルタリングはサーバー側で行われます。
	ListExchanges(ctx context.Context, chainSlug string, filterZeroVolume bool) (map[int64]entity.Exchange, error)
}

// ExchangesUsecase は取引所一覧操作のユースケースを定義します。
type ExchangesUsecase struct {
	market MarketRepository
}

// NewExchangesUsecase はExchangesUsecaseの新しいインスタンスを生成します。
func NewExchangesUsecase(market MarketRepository) *ExchangesUsecase {
	return &ExchangesUsecase{market: market}
}

// ListExchanges は指定されたチェーン上の分散型取引所を取得します。
// filterZeroVolumeフラグはそのまま上流に転送され、クライアント側での
// 追加フィルタリングは行いません。
func (u *ExchangesUsecase) ListExchanges(ctx context.Context, chainSlug string, filterZeroVolume bool) (map[int64]entity.Exchange, error) {
	if chainSlug == "" {
		return nil, ErrChainSlugRequired
	}
	return u.market.ListExchanges(ctx, chainSlug, filterZeroVolume)
}
