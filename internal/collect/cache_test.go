// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := OpenCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestCache_RoundTrip(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	in := &Finding{Composer: strp("Erroll Garner"), Key: strp("Eb")}
	require.NoError(t, cache.Put(ctx, "wikipedia", "Misty", in))

	out, hit, err := cache.Get(ctx, "wikipedia", "Misty")
	require.NoError(t, err)
	require.True(t, hit)
	require.NotNil(t, out)
	assert.Equal(t, "Erroll Garner", *out.Composer)
	assert.Equal(t, "Eb", *out.Key)
	assert.Nil(t, out.Rhythm)
}

func TestCache_Miss(t *testing.T) {
	cache := testCache(t)

	out, hit, err := cache.Get(context.Background(), "wikipedia", "Misty")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, out)
}

func TestCache_NegativeAnswer(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "wikipedia", "No Such Song", nil))

	out, hit, err := cache.Get(ctx, "wikipedia", "No Such Song")
	require.NoError(t, err)
	assert.True(t, hit, "a cached not-found is still a hit")
	assert.Nil(t, out)
}

func TestCache_PutReplaces(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "wikipedia", "Misty", &Finding{Composer: strp("Wrong")}))
	require.NoError(t, cache.Put(ctx, "wikipedia", "Misty", &Finding{Composer: strp("Erroll Garner")}))

	out, hit, err := cache.Get(ctx, "wikipedia", "Misty")
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "Erroll Garner", *out.Composer)

	n, err := cache.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCache_TitleIgnoresCase(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "wikipedia", "Misty", &Finding{Key: strp("Eb")}))

	_, hit, err := cache.Get(ctx, "wikipedia", "MISTY")
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestCache_SourcesAreIndependent(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "wikipedia", "Misty", &Finding{Key: strp("Eb")}))

	_, hit, err := cache.Get(ctx, "jazzstandards", "Misty")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Put(ctx, "jazzstandards", "Misty", nil))
	n, err := cache.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCache_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	cache, err := OpenCache(path)
	require.NoError(t, err)
	require.NoError(t, cache.Put(ctx, "wikipedia", "Misty", &Finding{Key: strp("Eb")}))
	require.NoError(t, cache.Close())

	cache, err = OpenCache(path)
	require.NoError(t, err)
	defer cache.Close()

	out, hit, err := cache.Get(ctx, "wikipedia", "Misty")
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "Eb", *out.Key)
}
