// Package cache keeps recently resolved short URLs.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/MisterMaks/go-url-shortener/internal/app"
)

// Inmem is in-memory cache with per item TTL.
type Inmem struct {
	items *ttlcache.Cache[string, app.ShortURL]
	once  sync.Once
}

// NewInmem creates *Inmem and starts eviction of expired items. Close stops it.
func NewInmem() *Inmem {
	c := &Inmem{
		items: ttlcache.New[string, app.ShortURL](
			ttlcache.WithDisableTouchOnHit[string, app.ShortURL](),
		),
	}
	go c.items.Start()
	return c
}

// Get returns cached url.
func (c *Inmem) Get(_ context.Context, path string) (*app.ShortURL, bool, error) {
	it := c.items.Get(path)
	if it == nil || it.IsExpired() {
		return nil, false, nil
	}
	url := it.Value()
	return &url, true, nil
}

// Set caches url for ttl.
func (c *Inmem) Set(_ context.Context, url *app.ShortURL, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	c.items.Set(url.Path, *url, ttl)
	return nil
}

// Delete drops path from cache.
func (c *Inmem) Delete(_ context.Context, path string) error {
	c.items.Delete(path)
	return nil
}

// Len returns count of stored items, including expired ones not yet evicted.
func (c *Inmem) Len() int {
	return c.items.Len()
}

// Ping always succeeds.
func (c *Inmem) Ping(_ context.Context) error {
	return nil
}

// Close stops eviction.
func (c *Inmem) Close() error {
	c.once.Do(c.items.Stop)
	return nil
}
