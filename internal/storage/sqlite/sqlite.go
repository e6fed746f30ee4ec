// Package sqlite opens the SQLite backend for the portal.
//
// WHY SQLite?
// ───────────
// SQLite stores everything in a single file on disk. There is no network,
// no separate server process, and no installation beyond the driver. A
// regional portal with a few hundred listings fits comfortably.
//
// The queries themselves live in sqlstore and are shared with the MySQL
// backend. This package only owns the driver registration and the DDL.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/motoportal-api/internal/config"
	"github.com/aanand-mishra/motoportal-api/internal/storage/sqlstore"

	// Blank import: registers the "sqlite3" driver with database/sql.
	_ "github.com/mattn/go-sqlite3"
)

// schema is run on every startup. Every statement is idempotent.
//
// List-valued columns (hours, tags, courses, services, features) hold JSON
// text; created_at holds RFC 3339 text.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS listings (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		kind        TEXT    NOT NULL,
		name        TEXT    NOT NULL,
		description TEXT    NOT NULL DEFAULT '',
		category    TEXT    NOT NULL DEFAULT '',
		location    TEXT    NOT NULL DEFAULT '',
		phone       TEXT    NOT NULL DEFAULT '',
		website     TEXT    NOT NULL DEFAULT '',
		rating      REAL    NOT NULL DEFAULT 0,
		hours       TEXT    NOT NULL DEFAULT '{}',
		tags        TEXT    NOT NULL DEFAULT '[]',
		courses     TEXT    NOT NULL DEFAULT '[]',
		services    TEXT    NOT NULL DEFAULT '[]',
		features    TEXT    NOT NULL DEFAULT '[]',
		created_at  TEXT    NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_listings_kind ON listings (kind)`,
	`CREATE TABLE IF NOT EXISTS events (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT    NOT NULL,
		description TEXT    NOT NULL DEFAULT '',
		event_date  TEXT    NOT NULL,
		event_time  TEXT    NOT NULL DEFAULT '',
		location    TEXT    NOT NULL DEFAULT '',
		price       INTEGER NOT NULL DEFAULT 0,
		category    TEXT    NOT NULL DEFAULT '',
		organizer   TEXT    NOT NULL DEFAULT '',
		featured    INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT    NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS classifieds (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		ad_type        TEXT    NOT NULL,
		title          TEXT    NOT NULL,
		description    TEXT    NOT NULL DEFAULT '',
		category       TEXT    NOT NULL DEFAULT '',
		item_condition TEXT    NOT NULL DEFAULT '',
		price_type     TEXT    NOT NULL DEFAULT '',
		price          INTEGER NOT NULL DEFAULT 0,
		location       TEXT    NOT NULL DEFAULT '',
		tags           TEXT    NOT NULL DEFAULT '[]',
		view_count     INTEGER NOT NULL DEFAULT 0,
		created_at     TEXT    NOT NULL
	)`,
}

// New opens the SQLite database at cfg.StoragePath.
func New(cfg *config.Config) (*sqlstore.Store, error) {
	return Open(cfg.StoragePath)
}

// Open opens (or creates) the database file at path, creates the tables if
// they do not exist yet and returns a ready store.
func Open(path string) (*sqlstore.Store, error) {
	// sql.Open does NOT open a real connection yet. It only validates the
	// driver name; the file is touched on the first query.
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("sqlite.Open: open db: %w", err)
	}

	// SQLite allows one writer at a time. A single connection serialises
	// writes in database/sql instead of surfacing "database is locked".
	db.SetMaxOpenConns(1)

	store, err := sqlstore.New(db, schema)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.Open: %w", err)
	}
	return store, nil
}
