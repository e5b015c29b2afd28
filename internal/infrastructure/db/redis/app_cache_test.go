package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
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

func TestAppCache_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewAppCache(db, nil, "")

	mock.ExpectHGet("app_cache", "weather_api").SetVal("https://api.example.com")
	mock.ExpectHGet("app_cache", "missing").RedisNil()

	v, ok, err := c.Get(context.Background(), "weather_api")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://api.example.com", v)

	_, ok, err = c.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppCache_GetError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewAppCache(db, nil, "cache")

	mock.ExpectHGet("cache", "k").SetErr(errors.New("connection refused"))

	_, _, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestAppCache_Snapshot(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewAppCache(db, nil, "")

	mock.ExpectHGetAll("app_cache").SetVal(map[string]string{"a": "1", "b": "2"})

	snap, err := c.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, snap)
}

func TestAppCache_ResetReplacesHashWithDefaults(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewAppCache(db, &stubSource{entries: map[string]string{"weather_api": "v"}}, "")

	mock.ExpectTxPipeline()
	mock.ExpectDel("app_cache").SetVal(1)
	mock.ExpectHSet("app_cache", "weather_api", "v").SetVal(1)
	mock.ExpectTxPipelineExec()

	require.NoError(t, c.Reset(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppCache_ResetSourceFailureSkipsRedis(t *testing.T) {
	db, mock := redismock.NewClientMock()
	src := &stubSource{err: errors.New("mongo unavailable")}
	c := NewAppCache(db, src, "")

	err := c.Reset(context.Background())
	require.ErrorIs(t, err, src.err)
	require.NoError(t, mock.ExpectationsWereMet())
}
