package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/MisterMaks/go-url-shortener/internal/frontend"
	"github.com/MisterMaks/go-url-shortener/internal/logger"
)

// Log keys.
const (
	AddrKey   string = "addr"
	APIURLKey string = "api_url"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		logger.Log.Fatal("Failed to run front end", zap.Error(err))
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

	handler, err := frontend.NewHandler(frontend.NewAPIClient(config.APIURL, config.RequestTimeout))
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              config.FrontendAddress,
		Handler:           handler.Router(logger.RequestLogger, middleware.Recoverer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Front end running",
			zap.String(AddrKey, server.Addr),
			zap.String(APIURLKey, config.APIURL),
		)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err = <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Log.Info("Front end stopped")
	return nil
}
