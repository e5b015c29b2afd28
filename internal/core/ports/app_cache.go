package ports

import "context"

// AppCache is the process-wide application cache.
//
// Reset re-initialises the cache to its default state; every read issued
// after Reset returns observes that state.
type AppCache interface {
	Reset(ctx context.Context) error
	Get(ctx context.Context, key string) (string, bool, error)
	Snapshot(ctx context.Context) (map[string]string, error)
}

// CacheSource supplies the default contents of the application cache.
type CacheSource interface {
	LoadAll(ctx context.Context) (map[string]string, error)
}
