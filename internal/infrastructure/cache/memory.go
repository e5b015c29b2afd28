// Package cache holds the in-process application cache.
package cache

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/journalapp/admin-service/internal/core/ports"
)

// MemoryCache is an in-process key/value cache seeded from a CacheSource.
// Reset builds a fresh map and swaps it in, so readers never see a partially
// reloaded cache.
type MemoryCache struct {
	source ports.CacheSource

	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryCache returns an empty cache. A nil source makes Reset clear the
// cache to empty.
func NewMemoryCache(source ports.CacheSource) *MemoryCache {
	return &MemoryCache{source: source, entries: map[string]string{}}
}

func (c *MemoryCache) Reset(ctx context.Context) error {
	fresh := map[string]string{}
	if c.source != nil {
		loaded, err := c.source.LoadAll(ctx)
		if err != nil {
			return fmt.Errorf("load cache defaults: %w", err)
		}
		maps.Copy(fresh, loaded)
	}

	c.mu.Lock()
	c.entries = fresh
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok, nil
}

// set overrides one entry until the next Reset. Tests use it to dirty the
// cache; production entries only come from the source.
func (c *MemoryCache) set(key, value string) {
	c.mu.Lock()
	c.entries[key] = value
	c.mu.Unlock()
}

func (c *MemoryCache) Snapshot(context.Context) (map[string]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.entries), nil
}
