package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/MisterMaks/go-url-shortener/internal/app"
	"github.com/MisterMaks/go-url-shortener/internal/logger"
)

const (
	Symbols      string = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	CountSymbols        = len(Symbols)
)

// Log keys.
const (
	PathKey        string = "path"
	PathLengthKey  string = "path_length"
	DestinationKey string = "destination"
)

var (
	ErrZeroPathLength              = errors.New("path length == 0")
	ErrZeroMaxPathLength           = errors.New("max path length == 0")
	ErrMaxPathLengthLessPathLength = errors.New("max path length is less path length")
	ErrMaxPathLengthTooBig         = errors.New("max path length is greater than path column")
	ErrZeroCountRegenerations      = errors.New("count regenerations == 0")
	ErrPathGenerationExhausted     = errors.New("failed to generate unique path")
	ErrCacheInvalidation           = errors.New("failed to drop URL from cache")
)

func generatePath(length uint) (string, error) {
	if length == 0 {
		return "", ErrZeroPathLength
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = Symbols[rand.IntN(CountSymbols)]
	}
	return string(b), nil
}

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

// AppRepoInterface contains the necessary functions for storage.
type AppRepoInterface interface {
	CreateURL(ctx context.Context, url *app.ShortURL) (*app.ShortURL, error)
	GetURL(ctx context.Context, path string) (*app.ShortURL, error)
	DeleteURL(ctx context.Context, path string) error
	Ping(ctx context.Context) error
	Close() error
}

// CacheInterface is cache of resolved short URLs.
type CacheInterface interface {
	Get(ctx context.Context, path string) (*app.ShortURL, bool, error)
	Set(ctx context.Context, url *app.ShortURL, ttl time.Duration) error
	Delete(ctx context.Context, path string) error
}

// AppUsecase business logic struct.
type AppUsecase struct {
	AppRepo AppRepoInterface
	Cache   CacheInterface

	CountRegenerationsForPathLength uint
	PathLength                      uint
	MaxPathLength                   uint
	CacheTTL                        time.Duration

	GeneratePath func(length uint) (string, error)
}

// NewAppUsecase creates *AppUsecase. cache may be nil.
func NewAppUsecase(
	appRepo AppRepoInterface,
	cache CacheInterface,
	countRegenerationsForPathLength, pathLength, maxPathLength uint,
	cacheTTL time.Duration,
) (*AppUsecase, error) {
	if pathLength == 0 {
		return nil, ErrZeroPathLength
	}
	if maxPathLength == 0 {
		return nil, ErrZeroMaxPathLength
	}
	if maxPathLength < pathLength {
		return nil, ErrMaxPathLengthLessPathLength
	}
	if maxPathLength > app.MaxPathLength {
		return nil, ErrMaxPathLengthTooBig
	}
	if countRegenerationsForPathLength == 0 {
		return nil, ErrZeroCountRegenerations
	}
	return &AppUsecase{
		AppRepo:                         appRepo,
		Cache:                           cache,
		CountRegenerationsForPathLength: countRegenerationsForPathLength,
		PathLength:                      pathLength,
		MaxPathLength:                   maxPathLength,
		CacheTTL:                        cacheTTL,
		GeneratePath:                    generatePath,
	}, nil
}

// CreateURL stores destination under path. Empty path is generated:
// every length from PathLength to MaxPathLength gets CountRegenerationsForPathLength attempts.
func (au *AppUsecase) CreateURL(ctx context.Context, destination, path string) (*app.ShortURL, error) {
	url, err := app.NewShortURL(path, destination)
	if err != nil {
		return nil, err
	}

	if path != "" {
		return au.AppRepo.CreateURL(ctx, url)
	}

	ctxLogger := logger.GetContextLogger(ctx)
	for length := au.PathLength; length <= au.MaxPathLength; length++ {
		for i := uint(0); i < au.CountRegenerationsForPathLength; i++ {
			url.Path, err = au.GeneratePath(length)
			if err != nil {
				return nil, err
			}
			var created *app.ShortURL
			created, err = au.AppRepo.CreateURL(ctx, url)
			if errors.Is(err, app.ErrPathExists) {
				ctxLogger.Debug("Generated path already exists",
					zap.String(PathKey, url.Path),
					zap.Uint(PathLengthKey, length),
				)
				continue
			}
			return created, err
		}
	}

	ctxLogger.Error("Failed to generate unique path",
		zap.String(DestinationKey, destination),
		zap.Uint(PathLengthKey, au.MaxPathLength),
	)
	return nil, ErrPathGenerationExhausted
}

// GetURL resolves path, cache first.
func (au *AppUsecase) GetURL(ctx context.Context, path string) (*app.ShortURL, error) {
	ctxLogger := logger.GetContextLogger(ctx)

	if au.Cache != nil {
		url, ok, err := au.Cache.Get(ctx, path)
		switch {
		case err != nil:
			ctxLogger.Warn("Failed to get URL from cache", zap.String(PathKey, path), zap.Error(err))
		case ok:
			return url, nil
		}
	}

	url, err := au.AppRepo.GetURL(ctx, path)
	if err != nil {
		return nil, err
	}

	if au.Cache != nil {
		if err = au.Cache.Set(ctx, url, au.CacheTTL); err != nil {
			ctxLogger.Warn("Failed to put URL in cache", zap.String(PathKey, path), zap.Error(err))
		}
	}

	return url, nil
}

// DeleteURL deletes path and drops it from cache.
// Path is dropped from cache before and after storage delete; cache failure returns ErrCacheInvalidation.
func (au *AppUsecase) DeleteURL(ctx context.Context, path string) error {
	if err := au.dropCached(ctx, path); err != nil {
		return err
	}

	err := au.AppRepo.DeleteURL(ctx, path)
	if err != nil && !errors.Is(err, app.ErrPathNotFound) {
		return err
	}

	if cacheErr := au.dropCached(ctx, path); cacheErr != nil {
		return cacheErr
	}
	return err
}

func (au *AppUsecase) dropCached(ctx context.Context, path string) error {
	if au.Cache == nil {
		return nil
	}
	if err := au.Cache.Delete(ctx, path); err != nil {
		logger.GetContextLogger(ctx).Error("Failed to delete URL from cache",
			zap.String(PathKey, path),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrCacheInvalidation, err)
	}
	return nil
}

// Ping checks storage.
func (au *AppUsecase) Ping(ctx context.Context) error {
	return au.AppRepo.Ping(ctx)
}
