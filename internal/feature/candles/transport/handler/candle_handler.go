// Package handler はcandlesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"dexdata_backend/internal/feature/candles/domain/entity"
	"dexdata_backend/internal/feature/candles/transport/http/dto"
	"dexdata_backend/internal/feature/candles/usecase"
)

// CandlesUsecase はローカルストアに対するローソク足クエリの
// ユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CandlesUsecase interface {
	GetCandles(ctx context.Context, pairID int64, bucket string, outputsize int) ([]entity.Candle, error)
}

// LiveCandlesUsecase は上流APIに対するアドホックなローソク足クエリの
// ユースケースインターフェースを定義します。
type LiveCandlesUsecase interface {
	FetchRange(ctx context.Context, pairIDs []string, startTime, endTime, bucket string) (*entity.CandleSeriesCollection, error)
}

// CandleHandler はローソク足データのHTTPリクエストを処理します。
type CandleHandler struct {
	uc   CandlesUsecase
	live LiveCandlesUsecase
}

// NewCandleHandler は指定されたusecaseでCandleHandlerの新しいインスタンスを生成します。
func NewCandleHandler(uc CandlesUsecase, live LiveCandlesUsecase) *CandleHandler {
	return &CandleHandler{uc: uc, live: live}
}

// toResponse はドメインのローソク足をレスポンスDTOに変換します。
func toResponse(candles []entity.Candle) []dto.CandleResponse {
	out := make([]dto.CandleResponse, 0, len(candles))
	for _, x := range candles {
		out = append(out, dto.CandleResponse{
			Time:   x.Time.UTC().Format(time.RFC3339),
			Open:   x.Open,
			High:   x.High,
			Low:    x.Low,
			Close:  x.Close,
			Volume: x.Volume,
		})
	}
	return out
}

// GetStored はローカルストアからペアのローソク足データをJSONで返します。
//
// エンドポイント例:
// GET /candles/:pair_id?bucket=15m&outputsize=200
func (h *CandleHandler) GetStored(c *gin.Context) {
	pairID, err := strconv.ParseInt(c.Param("pair_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pair_id must be an integer"})
		return
	}
	// 未指定の場合はデフォルト値を使用
	bucket := c.DefaultQuery("bucket", usecase.DefaultBucket)
	outputsizeStr := c.DefaultQuery("outputsize", "200")
	// 文字列を整数に変換
	outputsize, _ := strconv.Atoi(outputsizeStr)

	candles, err := h.uc.GetCandles(c.Request.Context(), pairID, bucket, outputsize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toResponse(candles))
}

// FetchLive は上流APIから指定期間のローソク足を直接取得し、
// ペアIDをキーとするJSONオブジェクトで返します。
//
// エンドポイント例:
// GET /candles?pair_ids=1,2,3&start=2024-01-01&end=2024-02-01&bucket=15m
func (h *CandleHandler) FetchLive(c *gin.Context) {
	pairIDs := splitCSV(c.Query("pair_ids"))
	start := c.Query("start")
	end := c.Query("end")
	bucket := c.Query("bucket")

	col, err := h.live.FetchRange(c.Request.Context(), pairIDs, start, end, bucket)
	if err != nil {
		if errors.Is(err, usecase.ErrNoPairIDs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	out := make(map[string][]dto.CandleResponse, col.Len())
	for _, id := range col.PairIDs {
		out[strconv.FormatInt(id, 10)] = toResponse(col.Series[id])
	}

	c.JSON(http.StatusOK, out)
}

// splitCSV はカンマ区切りのクエリ値を分割します。空の値は空スライスになります。
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
