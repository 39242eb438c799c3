// Package usecase はpairsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"dexdata_backend/internal/feature/pairs/domain/entity"
)

const (
	// DefaultPairCount はペアクエリのデフォルト返却件数です。
	DefaultPairCount = 5
	// MaxPairCount はペアの最大返却件数です。
	MaxPairCount = 200
	// DefaultSort はデフォルトのソートトークンです。
	DefaultSort = "volume_30d"
	// DefaultFilter はデフォルトの流動性フィルタです。
	DefaultFilter = "min_liquidity_1M"
	// FilterUnfiltered は流動性フィルタなしを意味するセンチネル値です。
	FilterUnfiltered = "unfiltered"
)

// MarketRepository は上流APIから取引ペア一覧を取得するレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// ListPairs は絞り込んだ取引ペアをペアIDをキーとして返します。
	// sortとfilterは不透明なトークンとしてサーバーに転送されます。
	ListPairs(ctx context.Context, exchangeSlugs, chainSlugs []string, pairCount int, sort, filter string) (map[int64]entity.Pair, error)
}

// PairsUsecase は取引ペア一覧操作のユースケースを定義します。
type PairsUsecase struct {
	market MarketRepository
}

// NewPairsUsecase はPairsUsecaseの新しいインスタンスを生成します。
func NewPairsUsecase(market MarketRepository) *PairsUsecase {
	return &PairsUsecase{market: market}
}

// ListPairs は取引所とチェーンで絞り込んだ取引ペアを取得します。
// 未指定のパラメータにはデフォルト値を適用します。filterに
// FilterUnfilteredが指定された場合はそのリテラル値をそのまま転送し、
// デフォルトで置き換えることはしません。
func (u *PairsUsecase) ListPairs(ctx context.Context, exchangeSlugs, chainSlugs []string, pairCount int, sort, filter string) (map[int64]entity.Pair, error) {
	if pairCount <= 0 || pairCount > MaxPairCount {
		pairCount = DefaultPairCount
	}
	if sort == "" {
		sort = DefaultSort
	}
	if filter == "" {
		filter = DefaultFilter
	}
	return u.market.ListPairs(ctx, exchangeSlugs, chainSlugs, pairCount, sort, filter)
}
