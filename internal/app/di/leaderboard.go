// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"tuneeng_backend/internal/feature/leaderboard/adapters"
	"tuneeng_backend/internal/feature/leaderboard/usecase"
	"tuneeng_backend/internal/platform/cache"
)

// NewLeaderboardRepository creates a LeaderboardRepository implementation.
// If Redis is available, the static provider is wrapped with a caching
// decorator. Otherwise the provider is used directly.
func NewLeaderboardRepository(rdb *redis.Client, ttl time.Duration) usecase.LeaderboardRepository {
	inner := adapters.NewStaticLeaderboard()
	if rdb != nil {
		return cache.NewCachingLeaderboardRepository(rdb, ttl, inner, "leaderboard")
	}
	return inner
}
