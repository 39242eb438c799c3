package router

import (
	"github.com/gin-gonic/gin"

	candleshandler "dexdata_backend/internal/feature/candles/transport/handler"
	chainshandler "dexdata_backend/internal/feature/chains/transport/handler"
	exchangeshandler "dexdata_backend/internal/feature/exchanges/transport/handler"
	pairshandler "dexdata_backend/internal/feature/pairs/transport/handler"
	trackedhandler "dexdata_backend/internal/feature/trackedpairs/transport/handler"
	platformhandler "dexdata_backend/internal/platform/http/handler"
)

// NewRouter は全エンドポイントを登録したginルータを生成します。
func NewRouter(chains *chainshandler.ChainHandler, exchanges *exchangeshandler.ExchangeHandler,
	pairs *pairshandler.PairHandler, candles *candleshandler.CandleHandler,
	tracked *trackedhandler.TrackedPairHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)

	// 上流APIへのプロキシ系エンドポイント
	r.GET("/chains", chains.List)
	r.GET("/exchanges", exchanges.List)
	r.GET("/pairs", pairs.List)
	// 上流から直接取得（pair_idsクエリ必須）
	r.GET("/candles", candles.FetchLive)

	// ローカルストア系エンドポイント
	r.GET("/candles/:pair_id", candles.GetStored)
	r.GET("/tracked-pairs", tracked.List)

	return r
}
