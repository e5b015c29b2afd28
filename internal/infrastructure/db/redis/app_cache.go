package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/journalapp/admin-service/internal/core/ports"
)

const defaultCacheKey = "app_cache"

// AppCache is a ports.AppCache shared by every replica, stored as a single
// Redis hash so a reset is one MULTI/EXEC transaction.
type AppCache struct {
	client *redis.Client
	source ports.CacheSource
	key    string
}

// NewAppCache creates an AppCache under key. An empty key selects
// defaultCacheKey; a nil source makes Reset clear the hash.
func NewAppCache(client *redis.Client, source ports.CacheSource, key string) *AppCache {
	if key == "" {
		key = defaultCacheKey
	}
	return &AppCache{client: client, source: source, key: key}
}

// Reset replaces the hash with the source's defaults.
func (c *AppCache) Reset(ctx context.Context) error {
	var defaults map[string]string
	if c.source != nil {
		loaded, err := c.source.LoadAll(ctx)
		if err != nil {
			return fmt.Errorf("load cache defaults: %w", err)
		}
		defaults = loaded
	}

	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, c.key)
		if len(defaults) > 0 {
			args := make([]any, 0, 2*len(defaults))
			for k, v := range defaults {
				args = append(args, k, v)
			}
			p.HSet(ctx, c.key, args...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis cache reset: %w", err)
	}
	return nil
}

func (c *AppCache) Get(ctx context.Context, field string) (string, bool, error) {
	v, err := c.client.HGet(ctx, c.key, field).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis cache get: %w", err)
	}
	return v, true, nil
}

func (c *AppCache) Snapshot(ctx context.Context) (map[string]string, error) {
	m, err := c.client.HGetAll(ctx, c.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis cache snapshot: %w", err)
	}
	return m, nil
}
