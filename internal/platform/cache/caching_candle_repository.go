// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"dexdata_backend/internal/feature/candles/domain/entity"
	"dexdata_backend/internal/feature/candles/usecase"
)

const (
	defaultTTL       = 5 * time.Minute
	defaultNamespace = "candles"
	// SCANの1回あたりの走査件数
	scanPageSize = 200
)

// CachingCandleRepository はCandleRepositoryをRedisキャッシュでラップする
// デコレーターです。キャッシュ対象はローカルストアの読み取りのみで、
// 上流APIクライアントの応答はキャッシュしません。
type CachingCandleRepository struct {
	inner     usecase.CandleRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingCandleRepository は指定されたリポジトリをRedisキャッシュで
// ラップします。ttlが0以下の場合は5分、namespaceが空の場合は"candles"を
// 使用します。rdbがnilの場合、すべての操作はキャッシュを経由せず内部
// リポジトリへ直接委譲されます。
func NewCachingCandleRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CandleRepository, namespace string) *CachingCandleRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &CachingCandleRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Find はまずキャッシュを参照し、ミス時はローカルストアから取得して
// 結果をキャッシュに保存します。
func (c *CachingCandleRepository) Find(ctx context.Context, pairID int64, bucket string, outputsize int) ([]entity.Candle, error) {
	if c.rdb == nil {
		return c.inner.Find(ctx, pairID, bucket, outputsize)
	}

	key := c.keyFor(pairID, bucket, outputsize)
	if out, ok := c.readCache(ctx, key); ok {
		return out, nil
	}

	out, err := c.inner.Find(ctx, pairID, bucket, outputsize)
	if err != nil {
		return nil, err
	}

	c.writeCache(ctx, key, out)
	return out, nil
}

// UpsertBatch はローソク足を永続化した後、影響を受けるペア・集計間隔の
// キャッシュエントリを無効化します。無効化の失敗は永続化の成功を
// 覆しません。
func (c *CachingCandleRepository) UpsertBatch(ctx context.Context, candles []entity.Candle) error {
	if err := c.inner.UpsertBatch(ctx, candles); err != nil {
		return err
	}
	if c.rdb == nil || len(candles) == 0 {
		return nil
	}

	// 同一ペア・集計間隔の無効化は1回で十分
	seen := map[string]struct{}{}
	for _, cd := range candles {
		prefix := c.prefixFor(cd.PairID, cd.Bucket)
		if _, ok := seen[prefix]; ok {
			continue
		}
		seen[prefix] = struct{}{}
		_ = c.purge(ctx, prefix+"*")
	}
	return nil
}

// readCache はキーに対応するキャッシュ値を読み、デコードして返します。
// 値が破損している場合はそのエントリを削除し、ミスとして扱います。
func (c *CachingCandleRepository) readCache(ctx context.Context, key string) ([]entity.Candle, bool) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return nil, false
	}
	var out []entity.Candle
	if err := json.Unmarshal(b, &out); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return nil, false
	}
	return out, true
}

// writeCache は結果をTTL付きで保存します。失敗しても呼び出しは成功扱いです。
func (c *CachingCandleRepository) writeCache(ctx context.Context, key string, candles []entity.Candle) {
	if b, err := json.Marshal(candles); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
}

// keyFor は1つのクエリに対応するキャッシュキーを生成します。
func (c *CachingCandleRepository) keyFor(pairID int64, bucket string, outputsize int) string {
	return fmt.Sprintf("%s:%d:%s:%d", c.namespace, pairID, sanitize(bucket), outputsize)
}

// prefixFor は同一ペア・集計間隔の全キーに共通するプレフィックスを生成します。
func (c *CachingCandleRepository) prefixFor(pairID int64, bucket string) string {
	return fmt.Sprintf("%s:%d:%s:", c.namespace, pairID, sanitize(bucket))
}

// purge はパターンに一致する全キーをSCANで列挙しながら削除します。
func (c *CachingCandleRepository) purge(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, scanPageSize).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// sanitize はRedisキーとして問題になる文字を置き換えます。
func sanitize(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, ":", "_")
}
