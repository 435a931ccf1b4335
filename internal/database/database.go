// Package database opens relational storage and applies migrations.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/MisterMaks/go-url-shortener/internal/logger"
	"github.com/MisterMaks/go-url-shortener/migrations"
)

// Supported database/sql drivers.
const (
	DriverPgx    string = "pgx"
	DriverSQLite string = "sqlite3"
)

// Defaults for connection retries.
const (
	MaxRetries     uint64        = 15
	MaxRetryDelay  time.Duration = 30 * time.Second
	BaseRetryDelay time.Duration = 500 * time.Millisecond
)

var ErrUnknownDriver = errors.New("unknown database driver")

// Dialect returns goose dialect for driver.
func Dialect(driver string) (goose.Dialect, error) {
	switch driver {
	case DriverPgx:
		return goose.DialectPostgres, nil
	case DriverSQLite:
		return goose.DialectSQLite3, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
}

// DefaultBackoff is exponential backoff capped at MaxRetryDelay with MaxRetries retries.
func DefaultBackoff() retry.Backoff {
	b := retry.NewExponential(BaseRetryDelay)
	b = retry.WithCappedDuration(MaxRetryDelay, b)
	return retry.WithMaxRetries(MaxRetries, b)
}

// Open opens DB and waits until it answers ping.
func Open(ctx context.Context, driver, dsn string, backoff retry.Backoff) (*sql.DB, error) {
	if _, err := Dialect(driver); err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// sqlite allows one writer
		db.SetMaxOpenConns(1)
	}

	attempt := 0
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if pingErr := db.PingContext(ctx); pingErr != nil {
			logger.Log.Warn("Failed to ping DB",
				zap.String(DriverKey, driver),
				zap.Int(AttemptKey, attempt),
				zap.Error(pingErr),
			)
			return retry.RetryableError(pingErr)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to db: %w", err)
	}

	return db, nil
}

// Migrate applies all embedded migrations.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	provider, err := newProvider(db, driver)
	if err != nil {
		return err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, r := range results {
		logger.Log.Info("Migration applied",
			zap.String(MigrationKey, r.Source.Path),
			zap.Duration(DurationKey, r.Duration),
		)
	}
	return nil
}

// Reset rolls back all embedded migrations.
func Reset(ctx context.Context, db *sql.DB, driver string) error {
	provider, err := newProvider(db, driver)
	if err != nil {
		return err
	}
	_, err = provider.DownTo(ctx, 0)
	return err
}

func newProvider(db *sql.DB, driver string) (*goose.Provider, error) {
	dialect, err := Dialect(driver)
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(dialect, db, migrations.FS)
}

// Log keys.
const (
	DriverKey    string = "driver"
	AttemptKey   string = "attempt"
	MigrationKey string = "migration"
	DurationKey  string = "duration"
)
