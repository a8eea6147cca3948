package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// WeatherCache stores rendered weather responses in Redis.
// Key format: weather:<endpoint>:<city>
type WeatherCache struct {
	client *redis.Client
}

// NewWeatherCache creates a WeatherCache wrapping the given Redis client.
func NewWeatherCache(client *redis.Client) *WeatherCache {
	return &WeatherCache{client: client}
}

// Get returns the cached value for key and whether it was present.
func (c *WeatherCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return val, true, nil
}

// Set stores value under key, expiring after ttl.
func (c *WeatherCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
