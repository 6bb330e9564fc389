package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	redisad "stay_directory/internal/adapters/redis"
	"stay_directory/internal/domain"
)

func newTestCache(t *testing.T) *redisad.Cache {
	t.Helper()
	srv := miniredis.RunT(t)
	return redisad.New(srv.Addr(), "", 0)
}

func TestCache_SetGetRoundTrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	in := domain.Property{ID: "p1", Name: "海辺の宿", Type: domain.TypeMinpaku, ViewCount: 7}
	require.NoError(t, cache.Set(ctx, "property:p1", in, 60))

	var out domain.Property
	ok, err := cache.Get(ctx, "property:p1", &out)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, in, out)
}

func TestCache_MissReturnsFalseWithoutError(t *testing.T) {
	cache := newTestCache(t)

	var out domain.Property
	ok, err := cache.Get(context.Background(), "property:absent", &out)
	require.NoError(t, err)
	require.False(t, ok)
	require.Zero(t, out)
}

func TestCache_DelRemovesKey(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "catalog", []string{"p1"}, 0))
	require.NoError(t, cache.Del(ctx, "catalog"))

	var out []string
	ok, err := cache.Get(ctx, "catalog", &out)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCache_ZeroTTLDoesNotExpire(t *testing.T) {
	srv := miniredis.RunT(t)
	cache := redisad.New(srv.Addr(), "", 0)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "myreviews:c1", []string{"rev-1"}, 0))
	require.Equal(t, int64(0), int64(srv.TTL("myreviews:c1")))

	var ids []string
	ok, err := cache.Get(ctx, "myreviews:c1", &ids)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"rev-1"}, ids)
}
