package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/trip-service/internal/cache"
	"github.com/voyago/trip-service/internal/trip"
)

func newTestCache(t *testing.T) (*cache.TripCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewTripCache(client), mr
}

func sampleTrips() []trip.Trip {
	return []trip.Trip{
		{ID: "a1", Origin: "SYD", Destination: "GRU", Cost: 625, Duration: 5, Type: "flight", DisplayName: "from SYD to GRU by flight"},
		{ID: "b2", Origin: "SYD", Destination: "GRU", Cost: 1709, Duration: 32, Type: "car", DisplayName: "from SYD to GRU by car"},
	}
}

func TestTripCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "SYD", "GRU", "cheapest", sampleTrips()))

	got, err := c.Get(ctx, "SYD", "GRU", "cheapest")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, 625.0, got[0].Cost)
}

func TestTripCache_Get_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.Get(context.Background(), "SYD", "GRU", "cheapest")
	require.NoError(t, err)
	assert.Nil(t, got, "cache miss should return nil, nil")
}

func TestTripCache_KeyIncludesSortCriterion(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "SYD", "GRU", "cheapest", sampleTrips()))

	assert.True(t, mr.Exists("trips:SYD:GRU:cheapest"))

	// Same route, different sort criterion: a separate entry.
	got, err := c.Get(ctx, "SYD", "GRU", "fastest")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTripCache_EmptyBatchIsNotAMiss(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "SYD", "GRU", "", nil))

	got, err := c.Get(ctx, "SYD", "GRU", "")
	require.NoError(t, err)
	require.NotNil(t, got, "cached empty batch should hit")
	assert.Empty(t, got)
}

func TestTripCache_TTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "SYD", "GRU", "cheapest", sampleTrips()))

	// Fast-forward past the 1-hour TTL.
	mr.FastForward(2 * time.Hour)

	got, err := c.Get(ctx, "SYD", "GRU", "cheapest")
	require.NoError(t, err)
	assert.Nil(t, got, "entry should be expired after TTL")
}

func TestTripCache_CorruptEntry(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, mr.Set("trips:SYD:GRU:cheapest", "not-json"))

	_, err := c.Get(context.Background(), "SYD", "GRU", "cheapest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshaling")
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := cache.Connect(context.Background(), "not-a-url")
	require.Error(t, err)
}

func TestConnect_UnreachableServer(t *testing.T) {
	_, err := cache.Connect(context.Background(), "redis://localhost:19999")
	require.Error(t, err)
}
