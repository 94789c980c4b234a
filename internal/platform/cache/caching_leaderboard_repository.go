// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"tuneeng_backend/internal/feature/leaderboard/domain/entity"
	"tuneeng_backend/internal/feature/leaderboard/usecase"
)

// CachingLeaderboardRepository decorates a LeaderboardRepository with Redis
// caching. It implements the decorator pattern, transparently adding caching
// without modifying the underlying repository.
type CachingLeaderboardRepository struct {
	inner     usecase.LeaderboardRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingLeaderboardRepository decorates a LeaderboardRepository with
// Redis caching. If ttl is 0, it defaults to 5 minutes. If namespace is
// empty, it uses "leaderboard".
func NewCachingLeaderboardRepository(rdb *redis.Client, ttl time.Duration, inner usecase.LeaderboardRepository, namespace string) *CachingLeaderboardRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "leaderboard"
	}
	return &CachingLeaderboardRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Top retrieves rankings, checking cache first then falling back to the
// underlying repository.
func (c *CachingLeaderboardRepository) Top(ctx context.Context, skillType string, limit int) ([]entity.Entry, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Top(ctx, skillType, limit)
	}

	key := c.topKey(skillType, limit)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Entry
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the underlying repository
	out, err := c.inner.Top(ctx, skillType, limit)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// UserRank retrieves a single user's rank through the same cache-aside path.
func (c *CachingLeaderboardRepository) UserRank(ctx context.Context, userID uint) (*entity.UserRank, error) {
	if c.rdb == nil {
		return c.inner.UserRank(ctx, userID)
	}

	key := c.rankKey(userID)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.UserRank
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.UserRank(ctx, userID)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

func (c *CachingLeaderboardRepository) topKey(skillType string, limit int) string {
	if skillType == "" {
		skillType = "all"
	}
	return fmt.Sprintf("%s:top:%s:%d", c.namespace, safe(skillType), limit)
}

func (c *CachingLeaderboardRepository) rankKey(userID uint) string {
	return fmt.Sprintf("%s:rank:%d", c.namespace, userID)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
