package repo

import (
	"database/sql"

	"github.com/MisterMaks/go-url-shortener/internal/app/usecase"
)

// NewAppRepo returns in-memory storage when db is nil, otherwise DB storage.
func NewAppRepo(db *sql.DB) (usecase.AppRepoInterface, error) {
	var appRepo usecase.AppRepoInterface
	var err error

	switch db {
	case nil:
		appRepo = NewAppRepoInmem()
	default:
		appRepo, err = NewAppRepoDB(db)
		if err != nil {
			return nil, err
		}
	}

	return appRepo, nil
}
