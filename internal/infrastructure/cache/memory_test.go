package cache

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	entries map[string]string
	err     error
}

func (s *stubSource) LoadAll(context.Context) (map[string]string, error) {
	return s.entries, s.err
}

func TestMemoryCache_ResetWithoutSourceEmptiesCache(t *testing.T) {
	c := NewMemoryCache(nil)
	c.set("weather_api", "x")

	require.NoError(t, c.Reset(context.Background()))

	_, ok, err := c.Get(context.Background(), "weather_api")
	require.NoError(t, err)
	assert.False(t, ok)

	snap, err := c.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestMemoryCache_ResetRestoresDefaults(t *testing.T) {
	src := &stubSource{entries: map[string]string{"weather_api": "https://api.example.com"}}
	c := NewMemoryCache(src)
	require.NoError(t, c.Reset(context.Background()))

	c.set("weather_api", "overridden")
	c.set("session_hint", "x")

	require.NoError(t, c.Reset(context.Background()))

	snap, err := c.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"weather_api": "https://api.example.com"}, snap)
}

func TestMemoryCache_ResetFailureKeepsCurrentEntries(t *testing.T) {
	src := &stubSource{err: errors.New("mongo unavailable")}
	c := NewMemoryCache(src)
	c.set("k", "v")

	err := c.Reset(context.Background())
	require.ErrorIs(t, err, src.err)

	v, ok, _ := c.Get(context.Background(), "k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestMemoryCache_SnapshotIsACopy(t *testing.T) {
	c := NewMemoryCache(nil)
	c.set("k", "v")

	snap, _ := c.Snapshot(context.Background())
	snap["k"] = "mutated"

	v, _, _ := c.Get(context.Background(), "k")
	assert.Equal(t, "v", v)
}

func TestMemoryCache_ConcurrentReadersDuringReset(t *testing.T) {
	src := &stubSource{entries: map[string]string{"k": "v"}}
	c := NewMemoryCache(src)
	require.NoError(t, c.Reset(context.Background()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = c.Reset(context.Background())
		}()
		go func() {
			defer wg.Done()
			v, ok, _ := c.Get(context.Background(), "k")
			assert.True(t, ok)
			assert.Equal(t, "v", v)
		}()
	}
	wg.Wait()
}
