package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"dexdata_backend/internal/feature/trackedpairs/domain/entity"
	"dexdata_backend/internal/feature/trackedpairs/transport/http/dto"
)

// TrackedPairUsecase は追跡対象ペアに関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TrackedPairUsecase interface {
	ListActivePairs(ctx context.Context) ([]entity.TrackedPair, error)
}

// TrackedPairHandler は追跡対象ペアに関するHTTPリクエストを処理します。
type TrackedPairHandler struct {
	uc TrackedPairUsecase
}

// NewTrackedPairHandler は新しい TrackedPairHandler を作成します。
func NewTrackedPairHandler(uc TrackedPairUsecase) *TrackedPairHandler {
	return &TrackedPairHandler{uc: uc}
}

// List は取り込みジョブが追跡しているペアの一覧を取得するAPIです。
// Usecaseでエラーが発生した場合は500 Internal Server Errorを返します。
func (h *TrackedPairHandler) List(c *gin.Context) {
	pairs, err := h.uc.ListActivePairs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.TrackedPairItem, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, dto.TrackedPairItem{PairID: p.PairID, Slug: p.Slug, ExchangeSlug: p.ExchangeSlug})
	}
	c.JSON(http.StatusOK, out)
}
