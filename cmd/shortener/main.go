package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/MisterMaks/go-url-shortener/docs"
	appDeliveryInternal "github.com/MisterMaks/go-url-shortener/internal/app/delivery"
	appRepoInternal "github.com/MisterMaks/go-url-shortener/internal/app/repo"
	appUsecaseInternal "github.com/MisterMaks/go-url-shortener/internal/app/usecase"
	"github.com/MisterMaks/go-url-shortener/internal/cache"
	"github.com/MisterMaks/go-url-shortener/internal/database"
	"github.com/MisterMaks/go-url-shortener/internal/gzip"
	"github.com/MisterMaks/go-url-shortener/internal/health"
	"github.com/MisterMaks/go-url-shortener/internal/logger"
	"github.com/MisterMaks/go-url-shortener/internal/ratelimit"
)

// Health check names.
const (
	DBCheckName    string = "apidb-check"
	CacheCheckName string = "cache-check"
)


// Log keys.
const (
	LogLevelKeyLog string = "log_level"
	AddrKey        string = "addr"
	CacheKindKey   string = "cache"
	StorageKindKey string = "storage"
)

// AppHandlerInterface contains API handlers.
type AppHandlerInterface interface {
	CreateURL(w http.ResponseWriter, r *http.Request)
	GetPath(w http.ResponseWriter, r *http.Request)
	DeleteURL(w http.ResponseWriter, r *http.Request)
}

// Middlewares used by router. Nil middlewares are skipped.
type Middlewares struct {
	RequestLogger func(http.Handler) http.Handler
	Recoverer     func(http.Handler) http.Handler
	CacheHeaders  func(http.Handler) http.Handler
	RateLimit     func(http.Handler) http.Handler
	Gzip          func(http.Handler) http.Handler
}

func (m *Middlewares) list() []func(http.Handler) http.Handler {
	var list []func(http.Handler) http.Handler
	for _, mw := range []func(http.Handler) http.Handler{
		m.RequestLogger,
		m.Recoverer,
		m.CacheHeaders,
		m.RateLimit,
		m.Gzip,
	} {
		if mw != nil {
			list = append(list, mw)
		}
	}
	return list
}

func shortenerRouter(appHandler AppHandlerInterface, checker *health.Checker, middlewares *Middlewares) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.list()...)

	r.Get(`/`, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusFound)
	})
	r.Get(`/swagger/*`, httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Get(`/hc`, checker.Handler(health.All))
	r.Get(`/liveness`, checker.Handler(health.WithTag(health.TagSelf)))

	r.Post(`/`, appHandler.CreateURL)
	r.Post(`/get-path`, appHandler.GetPath)
	r.Delete(`/{`+appDeliveryInternal.PathParam+`}`, appHandler.DeleteURL)
	return r
}

// @title			URL Shortener API
// @version		1.0
// @description	Creates, resolves and deletes short URLs.
// @BasePath		/
func main() {
	if err := run(os.Args[1:]); err != nil {
		logger.Log.Fatal("Failed to run server", zap.Error(err))
	}
}

func run(args []string) error {
	config, err := NewConfig(args)
	if err != nil {
		return err
	}

	if err = logger.Initialize(config.LogLevel); err != nil {
		return err
	}
	defer func() { _ = logger.Log.Sync() }()

	logger.Log.Info("Starting server",
		zap.String(AddrKey, config.ServerAddress),
		zap.String(LogLevelKeyLog, config.LogLevel),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if config.DatabaseDSN != "" {
		db, err = database.Open(ctx, config.DatabaseDriver, config.DatabaseDSN, database.DefaultBackoff())
		if err != nil {
			return err
		}
		if err = database.Migrate(ctx, db, config.DatabaseDriver); err != nil {
			_ = db.Close()
			return err
		}
		logger.Log.Info("Using database storage", zap.String(StorageKindKey, config.DatabaseDriver))
	} else {
		logger.Log.Info("Using in-memory storage", zap.String(StorageKindKey, "inmem"))
	}

	appRepo, err := appRepoInternal.NewAppRepo(db)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := appRepo.Close(); closeErr != nil {
			logger.Log.Warn("Failed to close storage", zap.Error(closeErr))
		}
	}()

	checks := []health.Check{health.Self()}

	var responseCache interface {
		appUsecaseInternal.CacheInterface
		health.Pinger
		Close() error
	}
	if config.RedisAddr != "" {
		var redisCache *cache.Redis
		redisCache, err = cache.NewRedis(ctx, &redis.Options{Addr: config.RedisAddr})
		if err != nil {
			return err
		}
		responseCache = redisCache
		logger.Log.Info("Using redis response cache", zap.String(CacheKindKey, config.RedisAddr))
	} else {
		responseCache = cache.NewInmem()
		logger.Log.Info("Using in-memory response cache", zap.String(CacheKindKey, "inmem"))
	}
	checks = append(checks, health.PingCheck(CacheCheckName, responseCache, health.TagCache))
	defer func() {
		if closeErr := responseCache.Close(); closeErr != nil {
			logger.Log.Warn("Failed to close response cache", zap.Error(closeErr))
		}
	}()

	appUsecase, err := appUsecaseInternal.NewAppUsecase(
		appRepo,
		responseCache,
		config.CountRegenerations,
		config.PathLength,
		config.MaxPathLength,
		config.ResponseCacheTTL,
	)
	if err != nil {
		return err
	}
	checks = append(checks, health.PingCheck(DBCheckName, appUsecase, health.TagDB))

	checker := health.NewChecker(health.DefaultTimeout, checks...)
	appHandler := appDeliveryInternal.NewAppHandler(appUsecase)

	middlewares := &Middlewares{
		RequestLogger: logger.RequestLogger,
		Recoverer:     appDeliveryInternal.Recoverer,
		CacheHeaders:  appDeliveryInternal.CacheHeaders,
		Gzip:          gzip.Middleware(appDeliveryInternal.WriteError),
	}
	if config.RateLimit > 0 {
		limiter := ratelimit.NewLimiter(config.RateLimit, ratelimit.DefaultCleanupInterval)
		defer limiter.Close()
		middlewares.RateLimit = limiter.Middleware(appDeliveryInternal.WriteError)
	}

	server := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           shortenerRouter(appHandler, checker, middlewares),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return serve(ctx, server, config.ShutdownTimeout)
}

// serve runs server until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, server *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String(AddrKey, server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Log.Info("Server stopped")
	return nil
}
