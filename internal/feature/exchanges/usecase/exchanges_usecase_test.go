package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"dexdata_backend/internal/feature/exchanges/domain/entity"
	"dexdata_backend/internal/feature/exchanges/usecase"
)

// mockMarketRepository はMarketRepositoryインターフェースのモック実装です。
type mockMarketRepository struct {
	ListExchangesFunc func(ctx context.Context, chainSlug string, filterZeroVolume bool) (map[int64]entity.Exchange, error)
}

// ListExchanges はモックのListExchanges関数を呼び出します。
func (m *mockMarketRepository) ListExchanges(ctx context.Context, chainSlug string, filterZeroVolume bool) (map[int64]entity.Exchange, error) {
	if m.ListExchangesFunc != nil {
		return m.ListExchangesFunc(ctx, chainSlug, filterZeroVolume)
	}
	return nil, nil
}

// TestExchangesUsecase_ListExchanges_RequiresChainSlug はチェーンスラッグ未指定時のエラーを検証します。
func TestExchangesUsecase_ListExchanges_RequiresChainSlug(t *testing.T) {
	t.Parallel()

	uc := usecase.NewExchangesUsecase(&mockMarketRepository{})

	_, err := uc.ListExchanges(context.Background(), "", true)

	assert.ErrorIs(t, err, usecase.ErrChainSlugRequired)
}

// TestExchangesUsecase_ListExchanges_FlagPassthrough はfilterZeroVolumeフラグが
// そのままリポジトリに転送され、ローカルでのフィルタリングが行われないことを検証します。
func TestExchangesUsecase_ListExchanges_FlagPassthrough(t *testing.T) {
	t.Parallel()

	zeroVolume := map[int64]entity.Exchange{
		1: {ID: 1, Slug: "uniswap-v3", VolumeUSD30D: decimal.NewFromInt(1000000)},
		2: {ID: 2, Slug: "ghost-dex", VolumeUSD30D: decimal.Zero},
	}

	for _, flag := range []bool{true, false} {
		var gotFlag bool
		mockRepo := &mockMarketRepository{
			ListExchangesFunc: func(ctx context.Context, chainSlug string, filterZeroVolume bool) (map[int64]entity.Exchange, error) {
				gotFlag = filterZeroVolume
				return zeroVolume, nil
			},
		}
		uc := usecase.NewExchangesUsecase(mockRepo)

		exchanges, err := uc.ListExchanges(context.Background(), "ethereum", flag)

		assert.NoError(t, err)
		assert.Equal(t, flag, gotFlag, "flag must be forwarded verbatim")
		// ゼロボリュームの取引所をローカルで除外しない
		assert.Len(t, exchanges, 2, "no local filtering regardless of the flag")
	}
}
