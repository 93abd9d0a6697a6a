// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"time"

	"hr_backend/internal/feature/employees/usecase"
	"hr_backend/internal/platform/cache"

	"github.com/redis/go-redis/v9"
)

// NewStatsProvider builds the stats pipeline. If Redis is available the
// aggregation is wrapped in a caching decorator and the returned
// invalidator drops the cache after employee writes. Without Redis the
// aggregation runs on every request and the invalidator is nil.
func NewStatsProvider(rdb *redis.Client, source usecase.StatsSource, ttl time.Duration) (cache.StatsProvider, usecase.StatsInvalidator) {
	statsUC := usecase.NewStatsUsecase(source)
	if rdb == nil {
		return statsUC, nil
	}
	caching := cache.NewCachingStatsProvider(rdb, ttl, statsUC, "stats")
	return caching, caching
}
