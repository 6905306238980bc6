package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cashmemo/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedPlan struct {
	Name        string `json:"name"`
	MaxProducts int    `json:"max_products"`
}

func newRedisBackedCache(t *testing.T) (service.ReferenceCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache(client, "cashmemo:", time.Minute), mr
}

func TestReferenceCache_Contract(t *testing.T) {
	redisCache, _ := newRedisBackedCache(t)

	caches := map[string]service.ReferenceCache{
		"memory": NewMemoryCache(16, time.Minute),
		"redis":  redisCache,
	}

	for name, c := range caches {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			var miss cachedPlan
			found, err := c.Get(ctx, "plans", &miss)
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, c.Set(ctx, "plans", cachedPlan{Name: "Pro", MaxProducts: -1}, 0))

			var hit cachedPlan
			found, err = c.Get(ctx, "plans", &hit)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, cachedPlan{Name: "Pro", MaxProducts: -1}, hit)

			require.NoError(t, c.Delete(ctx, "plans"))
			found, err = c.Get(ctx, "plans", &hit)
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestRedisCache_PrefixAndTTL(t *testing.T) {
	c, mr := newRedisBackedCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "ads:home", []string{"a"}, 30*time.Second))

	assert.True(t, mr.Exists("cashmemo:ads:home"))
	assert.Equal(t, 30*time.Second, mr.TTL("cashmemo:ads:home"))

	mr.FastForward(31 * time.Second)

	var ads []string
	found, err := c.Get(ctx, "ads:home", &ads)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(16, time.Minute).(*memoryCache)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", 1, 0))

	var v int
	found, err := c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, v)

	now = now.Add(time.Minute)
	found, err = c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_ShortTTLExpiresBeforeDefault(t *testing.T) {
	c := NewMemoryCache(16, time.Hour).(*memoryCache)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", 1, 10*time.Second))

	now = now.Add(11 * time.Second)
	var v int
	found, err := c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "k", 2, 0))
	found, err = c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, v)
}

func TestMemoryCache_BoundedByMaxEntries(t *testing.T) {
	c := NewMemoryCache(100, time.Hour).(*memoryCache)
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("ads:slot-%d", i), i, 0))
	}

	assert.LessOrEqual(t, c.entries.Len(), 100)

	var v int
	found, err := c.Get(ctx, "ads:slot-0", &v)
	require.NoError(t, err)
	assert.False(t, found, "oldest key should have been evicted")

	found, err = c.Get(ctx, "ads:slot-999", &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 999, v)
}

func TestMemoryCache_ExpiredEntriesAreReclaimed(t *testing.T) {
	c := NewMemoryCache(16, 50*time.Millisecond).(*memoryCache)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("k%d", i), i, 0))
	}
	require.Equal(t, 8, c.entries.Len())

	assert.Eventually(t, func() bool {
		return c.entries.Len() == 0
	}, 2*time.Second, 20*time.Millisecond)
}

func TestMemoryCache_CorruptValue(t *testing.T) {
	c := NewMemoryCache(16, time.Minute)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", "text", 0))

	var n int
	_, err := c.Get(ctx, "k", &n)
	assert.Error(t, err)
}
