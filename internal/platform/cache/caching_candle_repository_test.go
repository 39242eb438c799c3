package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"dexdata_backend/internal/feature/candles/domain/entity"
)

// mockCandleRepository はテスト用のCandleRepositoryモック実装です。
type mockCandleRepository struct {
	findFn        func(ctx context.Context, pairID int64, bucket string, outputsize int) ([]entity.Candle, error)
	upsertBatchFn func(ctx context.Context, candles []entity.Candle) error
}

// Find はモックのFind関数を呼び出します。
func (m *mockCandleRepository) Find(ctx context.Context, pairID int64, bucket string, outputsize int) ([]entity.Candle, error) {
	if m.findFn != nil {
		return m.findFn(ctx, pairID, bucket, outputsize)
	}
	return nil, nil
}

// UpsertBatch はモックのUpsertBatch関数を呼び出します。
func (m *mockCandleRepository) UpsertBatch(ctx context.Context, candles []entity.Candle) error {
	if m.upsertBatchFn != nil {
		return m.upsertBatchFn(ctx, candles)
	}
	return nil
}

// TestNewCachingCandleRepository_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingCandleRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "candles",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -1 * time.Minute,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "candles",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingCandleRepository(nil, tt.ttl, &mockCandleRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

// TestCachingCandleRepository_Find_NilRedis はRedisがnilの場合にキャッシュをバイパスして内部リポジトリを直接呼び出すことを検証します。
func TestCachingCandleRepository_Find_NilRedis(t *testing.T) {
	t.Parallel()

	expectedCandles := []entity.Candle{
		{PairID: 101, Bucket: "15m", Open: 1.0, Close: 1.2},
	}

	inner := &mockCandleRepository{
		findFn: func(ctx context.Context, pairID int64, bucket string, outputsize int) ([]entity.Candle, error) {
			return expectedCandles, nil
		},
	}

	// Redis is nil - should bypass cache and call inner directly
	repo := NewCachingCandleRepository(nil, 5*time.Minute, inner, "candles")

	candles, err := repo.Find(context.Background(), 101, "15m", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candles) != len(expectedCandles) {
		t.Errorf("expected %d candles, got %d", len(expectedCandles), len(candles))
	}
}

// TestCachingCandleRepository_Find_CacheHit はキャッシュヒット時にRedisからデータを返し、内部リポジトリを呼ばないことを検証します。
func TestCachingCandleRepository_Find_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cachedCandles := []entity.Candle{
		{PairID: 101, Bucket: "15m", Open: 1.0, Close: 1.2},
	}
	b, err := json.Marshal(cachedCandles)
	if err != nil {
		t.Fatal(err)
	}
	mock.ExpectGet("candles:101:15m:100").SetVal(string(b))

	innerCalled := false
	inner := &mockCandleRepository{
		findFn: func(ctx context.Context, pairID int64, bucket string, outputsize int) ([]entity.Candle, error) {
			innerCalled = true
			return nil, nil
		},
	}
	repo := NewCachingCandleRepository(rdb, 5*time.Minute, inner, "candles")

	candles, err := repo.Find(context.Background(), 101, "15m", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository must not be called on cache hit")
	}
	if len(candles) != 1 || candles[0].PairID != 101 {
		t.Errorf("unexpected candles from cache: %+v", candles)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// TestCachingCandleRepository_Find_CacheMiss はキャッシュミス時に内部リポジトリへフォールバックし、結果をキャッシュに保存することを検証します。
func TestCachingCandleRepository_Find_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	dbCandles := []entity.Candle{
		{PairID: 101, Bucket: "15m", Open: 2.0, Close: 2.5},
	}
	b, err := json.Marshal(dbCandles)
	if err != nil {
		t.Fatal(err)
	}

	key := "candles:101:15m:100"
	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, b, 5*time.Minute).SetVal("OK")

	inner := &mockCandleRepository{
		findFn: func(ctx context.Context, pairID int64, bucket string, outputsize int) ([]entity.Candle, error) {
			return dbCandles, nil
		},
	}
	repo := NewCachingCandleRepository(rdb, 5*time.Minute, inner, "candles")

	candles, err := repo.Find(context.Background(), 101, "15m", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candles) != 1 || candles[0].Close != 2.5 {
		t.Errorf("unexpected candles: %+v", candles)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// TestCachingCandleRepository_Find_InnerError は内部リポジトリのエラーがそのまま伝播することを検証します。
func TestCachingCandleRepository_Find_InnerError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("db down")
	inner := &mockCandleRepository{
		findFn: func(ctx context.Context, pairID int64, bucket string, outputsize int) ([]entity.Candle, error) {
			return nil, wantErr
		},
	}
	repo := NewCachingCandleRepository(nil, 5*time.Minute, inner, "candles")

	_, err := repo.Find(context.Background(), 101, "15m", 100)
	if !errors.Is(err, wantErr) {
		t.Errorf("expected inner error, got %v", err)
	}
}

// TestCachingCandleRepository_Find_CorruptedCache は破損したキャッシュを検出・削除し、DBにフォールバックすることを検証します。
func TestCachingCandleRepository_Find_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedCandles := []entity.Candle{
		{PairID: 101, Bucket: "15m", Open: 1.0, Close: 1.2},
	}
	expectedJSON, _ := json.Marshal(expectedCandles)

	// Return invalid JSON from cache
	mock.ExpectGet("candles:101:15m:100").SetVal("invalid json")
	// Delete corrupted cache
	mock.ExpectDel("candles:101:15m:100").SetVal(1)
	// Set new cache after fetching from inner
	mock.ExpectSet("candles:101:15m:100", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockCandleRepository{
		findFn: func(ctx context.Context, pairID int64, bucket string, outputsize int) ([]entity.Candle, error) {
			return expectedCandles, nil
		},
	}

	repo := NewCachingCandleRepository(rdb, 5*time.Minute, inner, "candles")
	candles, err := repo.Find(context.Background(), 101, "15m", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candles) != 1 {
		t.Errorf("expected 1 candle, got %d", len(candles))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingCandleRepository_UpsertBatch_NilRedis はRedisなしでもアップサートが内部リポジトリへ委譲されることを検証します。
func TestCachingCandleRepository_UpsertBatch_NilRedis(t *testing.T) {
	t.Parallel()

	var got []entity.Candle
	inner := &mockCandleRepository{
		upsertBatchFn: func(ctx context.Context, candles []entity.Candle) error {
			got = candles
			return nil
		},
	}
	repo := NewCachingCandleRepository(nil, 5*time.Minute, inner, "candles")

	in := []entity.Candle{{PairID: 101, Bucket: "15m"}}
	if err := repo.UpsertBatch(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 candle forwarded, got %d", len(got))
	}
}

// TestCachingCandleRepository_UpsertBatch_InnerError は内部リポジトリのUpsertBatchエラーが伝播されることを検証します。
func TestCachingCandleRepository_UpsertBatch_InnerError(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("upsert error")
	inner := &mockCandleRepository{
		upsertBatchFn: func(ctx context.Context, candles []entity.Candle) error {
			return expectedErr
		},
	}

	repo := NewCachingCandleRepository(nil, 5*time.Minute, inner, "candles")
	err := repo.UpsertBatch(context.Background(), []entity.Candle{
		{PairID: 101, Bucket: "15m"},
	})

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

// TestCachingCandleRepository_UpsertBatch_CacheInvalidation はUpsertBatch後に関連するキャッシュが無効化されることを検証します。
func TestCachingCandleRepository_UpsertBatch_CacheInvalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	inner := &mockCandleRepository{
		upsertBatchFn: func(ctx context.Context, candles []entity.Candle) error {
			return nil
		},
	}

	// Expect cache invalidation via SCAN and DEL
	mock.ExpectScan(0, "candles:101:15m:*", 200).SetVal([]string{"candles:101:15m:100", "candles:101:15m:200"}, 0)
	mock.ExpectDel("candles:101:15m:100", "candles:101:15m:200").SetVal(2)

	repo := NewCachingCandleRepository(rdb, 5*time.Minute, inner, "candles")
	err := repo.UpsertBatch(context.Background(), []entity.Candle{
		{PairID: 101, Bucket: "15m"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingCandleRepository_UpsertBatch_DeduplicatesInvalidation は同一pair+bucketのキャッシュ無効化が重複せず1回のみ実行されることを検証します。
func TestCachingCandleRepository_UpsertBatch_DeduplicatesInvalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	inner := &mockCandleRepository{
		upsertBatchFn: func(ctx context.Context, candles []entity.Candle) error {
			return nil
		},
	}

	// Only expect one SCAN call for 101:15m despite multiple candles
	mock.ExpectScan(0, "candles:101:15m:*", 200).SetVal([]string{}, 0)

	repo := NewCachingCandleRepository(rdb, 5*time.Minute, inner, "candles")
	err := repo.UpsertBatch(context.Background(), []entity.Candle{
		{PairID: 101, Bucket: "15m", Open: 1.0},
		{PairID: 101, Bucket: "15m", Open: 1.1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}
