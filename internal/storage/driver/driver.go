// Package driver opens the storage backend selected in the config.
package driver

import (
	"fmt"
	"io"

	"github.com/aanand-mishra/motoportal-api/internal/config"
	"github.com/aanand-mishra/motoportal-api/internal/storage"
	"github.com/aanand-mishra/motoportal-api/internal/storage/mysql"
	"github.com/aanand-mishra/motoportal-api/internal/storage/sqlite"
	"github.com/aanand-mishra/motoportal-api/internal/storage/sqlstore"
)

// Store is a storage.Storage holding a connection pool that must be closed.
type Store interface {
	storage.Storage
	io.Closer
}

// Open returns the backend named by cfg.StorageDriver.
func Open(cfg *config.Config) (Store, error) {
	var (
		store *sqlstore.Store
		err   error
	)
	switch cfg.StorageDriver {
	case "", "sqlite3":
		store, err = sqlite.New(cfg)
	case "mysql":
		store, err = mysql.New(cfg)
	default:
		return nil, fmt.Errorf("driver.Open: unsupported storage driver %q", cfg.StorageDriver)
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}
