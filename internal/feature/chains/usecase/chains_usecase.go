// Package usecase はchainsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"dexdata_backend/internal/feature/chains/domain/entity"
)

// MarketRepository は上流APIからチェーン一覧を取得するレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// ListChains は利用可能な全ブロックチェーンをチェーンIDをキーとして返します。
	ListChains(ctx context.Context) (map[int64]entity.Chain, error)
}

// ChainsUsecase はチェーン一覧操作のユースケースを定義します。
type ChainsUsecase struct {
	market MarketRepository
}

// NewChainsUsecase はChainsUsecaseの新しいインスタンスを生成します。
func NewChainsUsecase(market MarketRepository) *ChainsUsecase {
	return &ChainsUsecase{market: market}
}

// ListChains はデータソースがサポートする全ブロックチェーンを取得します。
func (u *ChainsUsecase) ListChains(ctx context.Context) (map[int64]entity.Chain, error) {
	return u.market.ListChains(ctx)
}
