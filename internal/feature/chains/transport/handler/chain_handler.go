// Package handler はchainsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"dexdata_backend/internal/feature/chains/domain/entity"
	"dexdata_backend/internal/feature/chains/transport/http/dto"
)

// ChainsUsecase はチェーン一覧に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ChainsUsecase interface {
	ListChains(ctx context.Context) (map[int64]entity.Chain, error)
}

// ChainHandler はチェーン一覧に関するHTTPリクエストを処理します。
type ChainHandler struct {
	uc ChainsUsecase
}

// NewChainHandler は新しい ChainHandler を作成します。
func NewChainHandler(uc ChainsUsecase) *ChainHandler {
	return &ChainHandler{uc: uc}
}

// List は利用可能なブロックチェーンの一覧を取得するAPIです。
// 上流APIでエラーが発生した場合は502 Bad Gatewayを返します。
//
// エンドポイント例:
// GET /chains
func (h *ChainHandler) List(c *gin.Context) {
	chains, err := h.uc.ListChains(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	// マップの反復順序は不定なのでチェーンIDで安定化する
	out := make([]dto.ChainItem, 0, len(chains))
	for _, ch := range chains {
		out = append(out, dto.ChainItem{ChainID: ch.ID, Name: ch.Name, Slug: ch.Slug})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChainID < out[j].ChainID })

	c.JSON(http.StatusOK, out)
}
