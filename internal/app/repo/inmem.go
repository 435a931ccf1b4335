package repo

import (
	"context"
	"sync"
	"time"

	"github.com/MisterMaks/go-url-shortener/internal/app"
)

// AppRepoInmem short URLs storage in memory.
type AppRepoInmem struct {
	urls map[string]app.ShortURL
	mu   sync.RWMutex
}

// NewAppRepoInmem creates *AppRepoInmem.
func NewAppRepoInmem() *AppRepoInmem {
	return &AppRepoInmem{
		urls: map[string]app.ShortURL{},
		mu:   sync.RWMutex{},
	}
}

// CreateURL stores url. Existing path is never overwritten.
func (ari *AppRepoInmem) CreateURL(ctx context.Context, url *app.ShortURL) (*app.ShortURL, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ari.mu.Lock()
	defer ari.mu.Unlock()
	if _, ok := ari.urls[url.Path]; ok {
		return nil, app.ErrPathExists
	}
	stored := app.ShortURL{
		Path:        url.Path,
		Destination: url.Destination,
		CreatedAt:   time.Now().UTC(),
	}
	ari.urls[url.Path] = stored
	return &stored, nil
}

// GetURL returns url by path.
func (ari *AppRepoInmem) GetURL(ctx context.Context, path string) (*app.ShortURL, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ari.mu.RLock()
	defer ari.mu.RUnlock()
	url, ok := ari.urls[path]
	if !ok {
		return nil, app.ErrPathNotFound
	}
	return &url, nil
}

// DeleteURL removes url by path.
func (ari *AppRepoInmem) DeleteURL(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ari.mu.Lock()
	defer ari.mu.Unlock()
	if _, ok := ari.urls[path]; !ok {
		return app.ErrPathNotFound
	}
	delete(ari.urls, path)
	return nil
}

// Ping always succeeds.
func (ari *AppRepoInmem) Ping(_ context.Context) error {
	return nil
}

// Close does nothing.
func (ari *AppRepoInmem) Close() error {
	return nil
}
