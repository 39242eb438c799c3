// Package handler はexchangesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"dexdata_backend/internal/feature/exchanges/domain/entity"
	"dexdata_backend/internal/feature/exchanges/transport/http/dto"
	"dexdata_backend/internal/feature/exchanges/usecase"
)

// ExchangesUsecase は取引所一覧に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ExchangesUsecase interface {
	ListExchanges(ctx context.Context, chainSlug string, filterZeroVolume bool) (map[int64]entity.Exchange, error)
}

// ExchangeHandler は取引所一覧に関するHTTPリクエストを処理します。
type ExchangeHandler struct {
	uc ExchangesUsecase
}

// NewExchangeHandler は新しい ExchangeHandler を作成します。
func NewExchangeHandler(uc ExchangesUsecase) *ExchangeHandler {
	return &ExchangeHandler{uc: uc}
}

// List は指定チェーン上の分散型取引所の一覧を取得するAPIです。
//
// エンドポイント例:
// GET /exchanges?chain_slug=ethereum&filter_zero_volume=true
func (h *ExchangeHandler) List(c *gin.Context) {
	chainSlug := c.Query("chain_slug")
	// 未指定の場合はデフォルト値を使用
	filterStr := c.DefaultQuery("filter_zero_volume", "true")
	filterZeroVolume, err := strconv.ParseBool(filterStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filter_zero_volume must be a boolean"})
		return
	}

	exchanges, err := h.uc.ListExchanges(c.Request.Context(), chainSlug, filterZeroVolume)
	if err != nil {
		if errors.Is(err, usecase.ErrChainSlugRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	// 上流のソート順（30日ボリューム降順）に合わせて安定化する
	out := make([]dto.ExchangeItem, 0, len(exchanges))
	for _, e := range exchanges {
		out = append(out, dto.ExchangeItem{ExchangeID: e.ID, Slug: e.Slug, VolumeUSD30D: e.VolumeUSD30D})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].VolumeUSD30D.GreaterThan(out[j].VolumeUSD30D)
	})

	c.JSON(http.StatusOK, out)
}
