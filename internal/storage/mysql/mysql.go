// Package mysql opens the MySQL backend for the portal.
//
// It shares every query with the SQLite backend through sqlstore; only the
// DDL differs (AUTO_INCREMENT, utf8mb4 tables). Select it with
// storage_driver: mysql and a DSN in storage_path, for example
//
//	moto:secret@tcp(127.0.0.1:3306)/motoportal
package mysql

import (
	"database/sql"
	"fmt"
	"time"

	gomysql "github.com/go-sql-driver/mysql"

	"github.com/aanand-mishra/motoportal-api/internal/config"
	"github.com/aanand-mishra/motoportal-api/internal/storage/sqlstore"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS listings (
		id          BIGINT       NOT NULL AUTO_INCREMENT PRIMARY KEY,
		kind        VARCHAR(16)  NOT NULL,
		name        VARCHAR(255) NOT NULL,
		description TEXT         NOT NULL,
		category    VARCHAR(128) NOT NULL DEFAULT '',
		location    VARCHAR(128) NOT NULL DEFAULT '',
		phone       VARCHAR(64)  NOT NULL DEFAULT '',
		website     VARCHAR(255) NOT NULL DEFAULT '',
		rating      DOUBLE       NOT NULL DEFAULT 0,
		hours       TEXT         NOT NULL,
		tags        TEXT         NOT NULL,
		courses     TEXT         NOT NULL,
		services    TEXT         NOT NULL,
		features    TEXT         NOT NULL,
		created_at  VARCHAR(40)  NOT NULL,
		INDEX idx_listings_kind (kind)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS events (
		id          BIGINT       NOT NULL AUTO_INCREMENT PRIMARY KEY,
		title       VARCHAR(255) NOT NULL,
		description TEXT         NOT NULL,
		event_date  VARCHAR(10)  NOT NULL,
		event_time  VARCHAR(5)   NOT NULL DEFAULT '',
		location    VARCHAR(255) NOT NULL DEFAULT '',
		price       BIGINT       NOT NULL DEFAULT 0,
		category    VARCHAR(128) NOT NULL DEFAULT '',
		organizer   VARCHAR(255) NOT NULL DEFAULT '',
		featured    BOOLEAN      NOT NULL DEFAULT FALSE,
		created_at  VARCHAR(40)  NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS classifieds (
		id             BIGINT       NOT NULL AUTO_INCREMENT PRIMARY KEY,
		ad_type        VARCHAR(16)  NOT NULL,
		title          VARCHAR(255) NOT NULL,
		description    TEXT         NOT NULL,
		category       VARCHAR(128) NOT NULL DEFAULT '',
		item_condition VARCHAR(32)  NOT NULL DEFAULT '',
		price_type     VARCHAR(32)  NOT NULL DEFAULT '',
		price          BIGINT       NOT NULL DEFAULT 0,
		location       VARCHAR(128) NOT NULL DEFAULT '',
		tags           TEXT         NOT NULL,
		view_count     INT          NOT NULL DEFAULT 0,
		created_at     VARCHAR(40)  NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// New connects to the MySQL server named by the DSN in cfg.StoragePath,
// checks the connection and creates the tables if needed.
func New(cfg *config.Config) (*sqlstore.Store, error) {
	dsn, err := gomysql.ParseDSN(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("mysql.New: parse dsn: %w", err)
	}
	// Timestamps are stored as text; the driver must not convert them.
	dsn.ParseTime = false
	if dsn.Params == nil {
		dsn.Params = map[string]string{}
	}
	dsn.Params["charset"] = "utf8mb4"

	connector, err := gomysql.NewConnector(dsn)
	if err != nil {
		return nil, fmt.Errorf("mysql.New: connector: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	// Unlike sql.Open, Ping actually dials the server.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("mysql.New: ping: %w", err)
	}

	store, err := sqlstore.New(db, schema)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("mysql.New: %w", err)
	}
	return store, nil
}
