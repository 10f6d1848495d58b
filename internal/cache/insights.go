package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// InsightsCache holds computed insights payloads for a short TTL. Keys embed
// the max observed record version, so a new extraction run naturally misses
// and stale entries age out on their own.
type InsightsCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewInsightsCache(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *InsightsCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &InsightsCache{rdb: rdb, ttl: ttl, logger: logger}
}

// Key builds the cache key for one application snapshot.
func Key(applicationID string, maxVersion, recordCount int) string {
	return fmt.Sprintf("ocr:insights:%s:v%d:n%d", applicationID, maxVersion, recordCount)
}

// Get returns the cached payload bytes, or ok=false on miss or any Redis
// error. Cache trouble is never allowed to fail a request.
func (c *InsightsCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("insights cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return b, true
}

func (c *InsightsCache) Set(ctx context.Context, key string, payload []byte) {
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("insights cache write failed", "key", key, "error", err)
	}
}
