package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/voyago/trip-service/internal/trip"
)

const defaultTTL = time.Hour

// TripCache wraps a Redis client and stores serialized trip batches keyed
// by search parameters.
type TripCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTripCache constructs a TripCache with a 1-hour TTL.
func NewTripCache(client *redis.Client) *TripCache {
	return &TripCache{client: client, ttl: defaultTTL}
}

// key returns the Redis key for a search. Entries are keyed by the full
// parameter triple, so the same route with a different sort criterion is a
// separate entry.
func key(origin, destination, sortBy string) string {
	return "trips:" + origin + ":" + destination + ":" + sortBy
}

// Get retrieves a cached trip batch for the given search parameters.
// Returns nil, nil on a cache miss (not an error).
func (c *TripCache) Get(ctx context.Context, origin, destination, sortBy string) ([]trip.Trip, error) {
	k := key(origin, destination, sortBy)

	val, err := c.client.Get(ctx, k).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for %s: %w", k, err)
	}

	var trips []trip.Trip
	if err := json.Unmarshal([]byte(val), &trips); err != nil {
		return nil, fmt.Errorf("unmarshaling cached trips for %s: %w", k, err)
	}

	if trips == nil {
		trips = []trip.Trip{}
	}
	return trips, nil
}

// Set stores a trip batch with the configured TTL. An empty batch is cached
// too; only a missing key counts as a miss.
func (c *TripCache) Set(ctx context.Context, origin, destination, sortBy string, trips []trip.Trip) error {
	k := key(origin, destination, sortBy)

	if trips == nil {
		trips = []trip.Trip{}
	}
	b, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("marshaling trips for %s: %w", k, err)
	}

	if err := c.client.Set(ctx, k, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for %s: %w", k, err)
	}

	return nil
}
