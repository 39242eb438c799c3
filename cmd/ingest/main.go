package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"dexdata_backend/internal/app/di"
	candleadapters "dexdata_backend/internal/feature/candles/adapters"
	"dexdata_backend/internal/feature/candles/usecase"
	trackedadapters "dexdata_backend/internal/feature/trackedpairs/adapters"
	"dexdata_backend/internal/platform/db"
	"dexdata_backend/internal/platform/kafka"
	"dexdata_backend/internal/shared/ratelimiter"
)

func main() {
	db := db.OpenDB()
	marketRepo := di.NewMarket()
	candleRepo := candleadapters.NewCandleRepository(db)
	trackedRepo := trackedadapters.NewTrackedPairRepository(db)

	// Kafkaは任意。ブローカー未設定なら配信をスキップする
	var sink usecase.CandleSink
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		pub := kafka.NewCandlePublisher(strings.Split(brokers, ","), os.Getenv("KAFKA_CANDLE_TOPIC"))
		defer func() {
			if err := pub.Close(); err != nil {
				log.Println("[ERROR] Failed to close Kafka publisher:", err)
			}
		}()
		sink = pub
	}

	limiter := ratelimiter.NewRateLimiter(30, time.Minute)
	uc := usecase.NewIngestUsecase(marketRepo, candleRepo, sink, limiter)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pairIDs, err := trackedRepo.ListActivePairIDs(ctx)
	if err != nil {
		log.Fatal("failed to load tracked pairs:", err)
	}

	if err := uc.IngestAll(ctx, pairIDs); err != nil {
		log.Fatal(err)
	}
	log.Println("ingest ok")
}
