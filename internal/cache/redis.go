package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MisterMaks/go-url-shortener/internal/app"
)

// KeyPrefix prefixes every cache key in redis.
const KeyPrefix string = "short_url:"

// Redis is cache stored in redis.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to redis and checks connection.
func NewRedis(ctx context.Context, opts *redis.Options) (*Redis, error) {
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &Redis{client: client}, nil
}

func key(path string) string {
	return KeyPrefix + path
}

// Get returns cached url.
func (c *Redis) Get(ctx context.Context, path string) (*app.ShortURL, bool, error) {
	data, err := c.client.Get(ctx, key(path)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	url := &app.ShortURL{}
	if err = json.Unmarshal(data, url); err != nil {
		return nil, false, err
	}
	return url, true, nil
}

// Set caches url for ttl.
func (c *Redis) Set(ctx context.Context, url *app.ShortURL, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(url)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(url.Path), data, ttl).Err()
}

// Delete drops path from cache.
func (c *Redis) Delete(ctx context.Context, path string) error {
	return c.client.Del(ctx, key(path)).Err()
}

// Ping checks redis connection.
func (c *Redis) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes redis client.
func (c *Redis) Close() error {
	return c.client.Close()
}
