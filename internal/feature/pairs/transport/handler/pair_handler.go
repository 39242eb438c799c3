// Package handler はpairsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"dexdata_backend/internal/feature/pairs/domain/entity"
	"dexdata_backend/internal/feature/pairs/transport/http/dto"
)

// PairsUsecase は取引ペア一覧に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type PairsUsecase interface {
	ListPairs(ctx context.Context, exchangeSlugs, chainSlugs []string, pairCount int, sort, filter string) (map[int64]entity.Pair, error)
}

// PairHandler は取引ペア一覧に関するHTTPリクエストを処理します。
type PairHandler struct {
	uc PairsUsecase
}

// NewPairHandler は新しい PairHandler を作成します。
func NewPairHandler(uc PairsUsecase) *PairHandler {
	return &PairHandler{uc: uc}
}

// splitCSV はカンマ区切りのクエリ値を分割します。空の値は空スライスになります。
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// List は取引所とチェーンで絞り込んだ取引ペアの一覧を取得するAPIです。
// sortとfilterは不透明なトークンとしてそのまま上流に転送されます。
//
// エンドポイント例:
// GET /pairs?exchange_slugs=uniswap-v3,sushi&chain_slugs=ethereum&count=5&sort=volume_30d&filter=min_liquidity_1M
func (h *PairHandler) List(c *gin.Context) {
	exchangeSlugs := splitCSV(c.Query("exchange_slugs"))
	chainSlugs := splitCSV(c.Query("chain_slugs"))
	countStr := c.DefaultQuery("count", "0")
	// 文字列を整数に変換（不正な値はデフォルト扱い）
	count, _ := strconv.Atoi(countStr)
	sortToken := c.Query("sort")
	filterToken := c.Query("filter")

	pairs, err := h.uc.ListPairs(c.Request.Context(), exchangeSlugs, chainSlugs, count, sortToken, filterToken)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	// マップの反復順序は不定なのでペアIDで安定化する
	out := make([]dto.PairItem, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, dto.PairItem{
			PairID:       p.ID,
			Slug:         p.Slug,
			ExchangeSlug: p.ExchangeSlug,
			VolumeUSD24H: p.VolumeUSD24H,
			TVL:          p.TVL,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PairID < out[j].PairID })

	c.JSON(http.StatusOK, out)
}
