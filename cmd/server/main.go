package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"dexdata_backend/internal/app/di"
	"dexdata_backend/internal/app/router"
	candleadapters "dexdata_backend/internal/feature/candles/adapters"
	candleshandler "dexdata_backend/internal/feature/candles/transport/handler"
	candlesusecase "dexdata_backend/internal/feature/candles/usecase"
	chainshandler "dexdata_backend/internal/feature/chains/transport/handler"
	chainsusecase "dexdata_backend/internal/feature/chains/usecase"
	exchangeshandler "dexdata_backend/internal/feature/exchanges/transport/handler"
	exchangesusecase "dexdata_backend/internal/feature/exchanges/usecase"
	pairshandler "dexdata_backend/internal/feature/pairs/transport/handler"
	pairsusecase "dexdata_backend/internal/feature/pairs/usecase"
	trackedadapters "dexdata_backend/internal/feature/trackedpairs/adapters"
	trackedhandler "dexdata_backend/internal/feature/trackedpairs/transport/handler"
	trackedusecase "dexdata_backend/internal/feature/trackedpairs/usecase"
	"dexdata_backend/internal/platform/cache"
	infradb "dexdata_backend/internal/platform/db"
	infraredis "dexdata_backend/internal/platform/redis"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	market := di.NewMarket()
	candleRepo := candleadapters.NewCandleRepository(db)
	trackedRepo := trackedadapters.NewTrackedPairRepository(db)

	// Redisキャッシュでラップ
	cachedCandleRepo := cache.NewCachingCandleRepository(rdb, 5*time.Minute, candleRepo, "candles")

	// Usecase
	chainsUC := chainsusecase.NewChainsUsecase(market)
	exchangesUC := exchangesusecase.NewExchangesUsecase(market)
	pairsUC := pairsusecase.NewPairsUsecase(market)
	candlesUC := candlesusecase.NewCandlesUsecase(cachedCandleRepo)
	liveUC := candlesusecase.NewLiveCandlesUsecase(market)
	trackedUC := trackedusecase.NewTrackedPairUsecase(trackedRepo)

	// Handler
	chainsH := chainshandler.NewChainHandler(chainsUC)
	exchangesH := exchangeshandler.NewExchangeHandler(exchangesUC)
	pairsH := pairshandler.NewPairHandler(pairsUC)
	candlesH := candleshandler.NewCandleHandler(candlesUC, liveUC)
	trackedH := trackedhandler.NewTrackedPairHandler(trackedUC)

	// ルータ生成
	router := router.NewRouter(chainsH, exchangesH, pairsH, candlesH, trackedH)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
