// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"nethra_backend/internal/feature/mandi/domain/entity"
	"nethra_backend/internal/feature/mandi/usecase"
)

// TTLFunc returns the expiry for a cache entry written now.
type TTLFunc func() time.Duration

// CachingMandiRepository decorates a MandiRepository with Redis caching.
// Mandi prices are refreshed once a day, so entries live until the next refresh.
type CachingMandiRepository struct {
	inner     usecase.MandiRepository
	rdb       *redis.Client
	ttl       TTLFunc
	namespace string
}

var _ usecase.MandiRepository = (*CachingMandiRepository)(nil)

// NewCachingMandiRepository decorates a MandiRepository with Redis caching.
// If ttl is nil, entries expire at the next 08:00 IST. If namespace is empty, it uses "mandi".
func NewCachingMandiRepository(rdb *redis.Client, ttl TTLFunc, inner usecase.MandiRepository, namespace string) *CachingMandiRepository {
	if ttl == nil {
		ttl = TimeUntilNext8AM
	}
	if namespace == "" {
		namespace = "mandi"
	}
	return &CachingMandiRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// UpsertBatch writes prices and invalidates every cached price list.
func (c *CachingMandiRepository) UpsertBatch(ctx context.Context, prices []entity.MandiPrice) error {
	if err := c.inner.UpsertBatch(ctx, prices); err != nil {
		return err
	}
	if c.rdb == nil || len(prices) == 0 {
		return nil
	}

	// Best effort: a stale entry expires at the next refresh anyway
	if err := c.deleteByPattern(ctx, c.namespace+":prices:*"); err != nil {
		slog.Warn("マンディキャッシュの無効化に失敗", "error", err)
	}
	return nil
}

// FindAll returns all prices, checking cache first then falling back to the database.
func (c *CachingMandiRepository) FindAll(ctx context.Context) ([]entity.MandiPrice, error) {
	if c.rdb == nil {
		return c.inner.FindAll(ctx)
	}

	key := c.cacheKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.MandiPrice
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if ttl := c.ttl(); ttl > 0 {
		if b, err := json.Marshal(out); err == nil {
			_ = c.rdb.Set(ctx, key, b, ttl).Err()
		}
	}

	return out, nil
}

func (c *CachingMandiRepository) cacheKey() string {
	return c.namespace + ":prices:all"
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingMandiRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
