// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"stockradar/internal/feature/snapshot/domain/entity"
	"stockradar/internal/feature/snapshot/usecase"
)

// CachingStockRepository decorates a StockRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingStockRepository struct {
	inner     usecase.StockRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.StockRepository = (*CachingStockRepository)(nil)

// NewCachingStockRepository decorates a StockRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "snapshot".
func NewCachingStockRepository(rdb *redis.Client, ttl time.Duration, inner usecase.StockRepository, namespace string) *CachingStockRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "snapshot"
	}
	return &CachingStockRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// UpsertBatch writes the new snapshot through to the database and
// invalidates the cached one.
func (c *CachingStockRepository) UpsertBatch(ctx context.Context, stocks []entity.Stock) error {
	if err := c.inner.UpsertBatch(ctx, stocks); err != nil {
		return err
	}
	if c.rdb == nil || len(stocks) == 0 {
		return nil
	}

	// Best effort: a stale cache entry expires on its own within the TTL.
	_ = c.deleteByPattern(ctx, c.namespace+":*")
	return nil
}

// FindLatest retrieves the snapshot, checking cache first then falling
// back to the database.
func (c *CachingStockRepository) FindLatest(ctx context.Context) ([]entity.Stock, error) {
	if c.rdb == nil {
		return c.inner.FindLatest(ctx)
	}

	key := c.cacheKey()

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Stock
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindLatest(ctx)
	if err != nil {
		return nil, err
	}

	// Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

func (c *CachingStockRepository) cacheKey() string {
	return c.namespace + ":latest"
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingStockRepository) deleteByPattern(ctx context.Context, pattern string) error {
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
