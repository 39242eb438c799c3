package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dexdata_backend/internal/feature/candles/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&CandleModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func makeCandle(pairID int64, bucket string, ts time.Time) entity.Candle {
	return entity.Candle{
		PairID: pairID,
		Bucket: bucket,
		Time:   ts,
		Open:   100.0,
		High:   110.0,
		Low:    90.0,
		Close:  105.0,
		Volume: 1000,
	}
}

func TestNewCandleRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewCandleRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestCandleGorm_UpsertBatch(t *testing.T) {
	t.Parallel()

	baseTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("inserts new candles", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		repo := NewCandleRepository(db)

		candles := []entity.Candle{
			makeCandle(101, "15m", baseTime),
			makeCandle(101, "15m", baseTime.Add(15*time.Minute)),
			makeCandle(202, "1h", baseTime),
		}
		err := repo.UpsertBatch(context.Background(), candles)
		require.NoError(t, err)

		var count int64
		require.NoError(t, db.Model(&CandleModel{}).Count(&count).Error)
		assert.Equal(t, int64(3), count)
	})

	t.Run("updates existing rows on conflict", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		repo := NewCandleRepository(db)

		first := makeCandle(101, "15m", baseTime)
		require.NoError(t, repo.UpsertBatch(context.Background(), []entity.Candle{first}))

		updated := first
		updated.Close = 999.0
		updated.Volume = 42
		require.NoError(t, repo.UpsertBatch(context.Background(), []entity.Candle{updated}))

		var count int64
		require.NoError(t, db.Model(&CandleModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count, "conflict must update, not duplicate")

		got, err := repo.Find(context.Background(), 101, "15m", 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 999.0, got[0].Close)
		assert.Equal(t, 42.0, got[0].Volume)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		repo := NewCandleRepository(db)

		err := repo.UpsertBatch(context.Background(), nil)
		assert.NoError(t, err)
	})
}

func TestCandleGorm_Find(t *testing.T) {
	t.Parallel()

	baseTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	db := setupTestDB(t)
	repo := NewCandleRepository(db)

	seed := []entity.Candle{
		makeCandle(101, "15m", baseTime),
		makeCandle(101, "15m", baseTime.Add(15*time.Minute)),
		makeCandle(101, "15m", baseTime.Add(30*time.Minute)),
		makeCandle(101, "1h", baseTime),
		makeCandle(202, "15m", baseTime),
	}
	require.NoError(t, repo.UpsertBatch(context.Background(), seed))

	t.Run("filters by pair and bucket, newest first", func(t *testing.T) {
		got, err := repo.Find(context.Background(), 101, "15m", 10)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.True(t, got[0].Time.After(got[1].Time), "rows ordered newest first")
		for _, c := range got {
			assert.Equal(t, int64(101), c.PairID)
			assert.Equal(t, "15m", c.Bucket)
		}
	})

	t.Run("respects outputsize limit", func(t *testing.T) {
		got, err := repo.Find(context.Background(), 101, "15m", 2)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("unknown pair yields empty result", func(t *testing.T) {
		got, err := repo.Find(context.Background(), 999, "15m", 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
