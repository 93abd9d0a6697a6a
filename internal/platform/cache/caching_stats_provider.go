// Package cache provides Redis-backed caching decorators.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"hr_backend/internal/feature/employees/usecase"
)

// StatsProvider is the stats interface this decorator wraps.
type StatsProvider interface {
	GetStats(ctx context.Context) (*usecase.StatsSnapshot, error)
}

// CachingStatsProvider decorates a StatsProvider with Redis caching.
// The stats endpoint recomputes over the whole employee table, so the
// snapshot is kept for a short TTL and dropped on every write.
type CachingStatsProvider struct {
	inner     StatsProvider
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check: employee writes use this as their invalidator.
var _ usecase.StatsInvalidator = (*CachingStatsProvider)(nil)

// NewCachingStatsProvider decorates a StatsProvider with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "stats".
func NewCachingStatsProvider(rdb *redis.Client, ttl time.Duration, inner StatsProvider, namespace string) *CachingStatsProvider {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "stats"
	}
	return &CachingStatsProvider{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// cacheKey returns the single key the snapshot lives under.
func (c *CachingStatsProvider) cacheKey() string {
	return c.namespace + ":snapshot"
}

// GetStats returns the cached snapshot when present, otherwise computes
// it through the inner provider and stores it. Cache failures degrade to
// a recompute; they never fail the request.
func (c *CachingStatsProvider) GetStats(ctx context.Context) (*usecase.StatsSnapshot, error) {
	if c.rdb == nil {
		return c.inner.GetStats(ctx)
	}

	key := c.cacheKey()

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var snap usecase.StatsSnapshot
		if err := json.Unmarshal(b, &snap); err == nil {
			return &snap, nil
		}
		// Corrupt entry: drop it and fall through to a recompute.
		_ = c.rdb.Del(ctx, key).Err()
	}

	snap, err := c.inner.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(snap); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err() // Best effort
	}

	return snap, nil
}

// InvalidateStats drops the cached snapshot after an employee write.
func (c *CachingStatsProvider) InvalidateStats(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.cacheKey()).Err()
}
