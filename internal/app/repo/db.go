package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/MisterMaks/go-url-shortener/internal/app"
)

// AppRepoDB short URLs storage in relational DB (PostgreSQL or SQLite).
type AppRepoDB struct {
	db *sql.DB
}

// NewAppRepoDB creates *AppRepoDB.
func NewAppRepoDB(db *sql.DB) (*AppRepoDB, error) {
	return &AppRepoDB{db: db}, nil
}

// CreateURL inserts url. Duplicate path returns app.ErrPathExists.
func (ard *AppRepoDB) CreateURL(ctx context.Context, url *app.ShortURL) (*app.ShortURL, error) {
	query := `INSERT INTO short_url (path, destination, created_at) VALUES ($1, $2, $3);`
	createdAt := time.Now().UTC().Truncate(time.Microsecond)
	_, err := ard.db.ExecContext(ctx, query, url.Path, url.Destination, createdAt)
	if isUniqueViolation(err) {
		return nil, app.ErrPathExists
	}
	if err != nil {
		return nil, fmt.Errorf("insert short url: %w", err)
	}
	return &app.ShortURL{Path: url.Path, Destination: url.Destination, CreatedAt: createdAt}, nil
}

// GetURL selects url by path.
func (ard *AppRepoDB) GetURL(ctx context.Context, path string) (*app.ShortURL, error) {
	query := `SELECT path, destination, created_at FROM short_url WHERE path = $1;`
	url := &app.ShortURL{}
	err := ard.db.QueryRowContext(ctx, query, path).Scan(&url.Path, &url.Destination, &url.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, app.ErrPathNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select short url: %w", err)
	}
	url.CreatedAt = url.CreatedAt.UTC()
	return url, nil
}

// DeleteURL deletes url by path.
func (ard *AppRepoDB) DeleteURL(ctx context.Context, path string) error {
	query := `DELETE FROM short_url WHERE path = $1;`
	res, err := ard.db.ExecContext(ctx, query, path)
	if err != nil {
		return fmt.Errorf("delete short url: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete short url: %w", err)
	}
	if n == 0 {
		return app.ErrPathNotFound
	}
	return nil
}

// Ping checks DB connection.
func (ard *AppRepoDB) Ping(ctx context.Context) error {
	return ard.db.PingContext(ctx)
}

// Close closes DB.
func (ard *AppRepoDB) Close() error {
	return ard.db.Close()
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
