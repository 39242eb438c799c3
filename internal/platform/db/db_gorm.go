// Package db opens the gorm database connection used by the application.
package db

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	candleadapters "dexdata_backend/internal/feature/candles/adapters"
	trackedentity "dexdata_backend/internal/feature/trackedpairs/domain/entity"
)

// OpenDB はデータベース接続を開きます。DATABASE_URLが設定されていれば
// PostgreSQLに接続し、未設定の場合はローカル開発用のSQLiteファイルに
// フォールバックします。
func OpenDB() *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		// 起動直後はDBコンテナの準備ができていないことがあるためリトライする
		deadline := time.Now().Add(60 * time.Second)
		for {
			db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				log.Fatalf("DB connect failed after 60s: %v", err)
			}
			log.Printf("DB connect failed, retrying...: %v", err)
			time.Sleep(3 * time.Second)
		}
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "dexdata.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open sqlite database: %v", err)
		}
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（Candle, TrackedPair）
		if err := db.AutoMigrate(
			&candleadapters.CandleModel{},
			&trackedentity.TrackedPair{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
