// Package sqlstore implements storage.Storage on top of database/sql.
//
// The queries use only "?" placeholders and portable column types, so the
// same Store serves both the SQLite and the MySQL backends. Each backend
// package opens its driver and hands over its own CREATE TABLE statements.
//
// List-valued fields (tags, courses, working hours, ...) are stored as JSON
// text in a single column. Timestamps are stored as RFC 3339 text in UTC.
package sqlstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aanand-mishra/motoportal-api/internal/storage"
	"github.com/aanand-mishra/motoportal-api/internal/types"
)

// Store is the database/sql implementation of storage.Storage.
// A single *sql.DB is safe for concurrent use by multiple goroutines.
type Store struct {
	Db *sql.DB

	// now stamps CreatedAt on new records.
	now func() time.Time
}

var _ storage.Storage = (*Store)(nil)

// New runs the schema statements against db and returns a ready Store.
// The statements must be idempotent (CREATE TABLE IF NOT EXISTS).
func New(db *sql.DB, schema []string) (*Store, error) {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("sqlstore.New: create schema: %w", err)
		}
	}
	return &Store{Db: db, now: time.Now}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.Db.Close()
}

const listingColumns = `id, kind, name, description, category, location, phone, website,
	rating, hours, tags, courses, services, features, created_at`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// ─────────────────────────────────────────────────────────────────────────────
// CreateListing inserts a new row into the listings table.
// JSON columns are encoded before the statement runs so an encoding failure
// never leaves a half-written row.
// ─────────────────────────────────────────────────────────────────────────────
func (s *Store) CreateListing(l types.Listing) (int64, error) {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = s.now()
	}

	cols, err := encodeListing(l)
	if err != nil {
		return 0, fmt.Errorf("CreateListing: %w", err)
	}

	stmt, err := s.Db.Prepare(`INSERT INTO listings (kind, name, description, category, location,
		phone, website, rating, hours, tags, courses, services, features, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("CreateListing: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(string(l.Kind), l.Name, l.Description, l.Category, l.Location,
		l.Phone, l.Website, l.Rating, cols.hours, cols.tags, cols.courses, cols.services,
		cols.features, formatTime(l.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("CreateListing: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateListing: last insert id: %w", err)
	}

	return lastID, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// GetListingByID fetches exactly one listing matched by primary key.
// sql.ErrNoRows surfaces only from Scan; it is translated to ErrNotFound so
// handlers can answer 404 without knowing about database/sql.
// ─────────────────────────────────────────────────────────────────────────────
func (s *Store) GetListingByID(id int64) (types.Listing, error) {
	stmt, err := s.Db.Prepare("SELECT " + listingColumns + " FROM listings WHERE id = ? LIMIT 1")
	if err != nil {
		return types.Listing{}, fmt.Errorf("GetListingByID: prepare: %w", err)
	}
	defer stmt.Close()

	l, err := scanListing(stmt.QueryRow(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Listing{}, fmt.Errorf("no listing found with id %d: %w", id, storage.ErrNotFound)
		}
		return types.Listing{}, fmt.Errorf("GetListingByID: scan: %w", err)
	}

	return l, nil
}

// GetListings returns all listings of kind, or every listing when kind is
// empty, ordered by id.
func (s *Store) GetListings(kind types.Kind) ([]types.Listing, error) {
	query := "SELECT " + listingColumns + " FROM listings"
	var args []any
	if kind != "" {
		query += " WHERE kind = ?"
		args = append(args, string(kind))
	}
	query += " ORDER BY id"

	stmt, err := s.Db.Prepare(query)
	if err != nil {
		return nil, fmt.Errorf("GetListings: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(args...)
	if err != nil {
		return nil, fmt.Errorf("GetListings: query: %w", err)
	}
	defer rows.Close()

	listings := make([]types.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("GetListings: scan row: %w", err)
		}
		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetListings: rows iteration: %w", err)
	}

	return listings, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// UpdateListingByID replaces a listing's data with the provided values.
//
// Existence is checked with a read first: MySQL reports zero affected rows
// for an UPDATE that matches a row but changes nothing, so RowsAffected
// cannot tell "missing" from "unchanged".
// ─────────────────────────────────────────────────────────────────────────────
func (s *Store) UpdateListingByID(id int64, l types.Listing) (types.Listing, error) {
	if _, err := s.GetListingByID(id); err != nil {
		return types.Listing{}, err
	}

	cols, err := encodeListing(l)
	if err != nil {
		return types.Listing{}, fmt.Errorf("UpdateListingByID: %w", err)
	}

	stmt, err := s.Db.Prepare(`UPDATE listings SET kind = ?, name = ?, description = ?,
		category = ?, location = ?, phone = ?, website = ?, rating = ?, hours = ?, tags = ?,
		courses = ?, services = ?, features = ? WHERE id = ?`)
	if err != nil {
		return types.Listing{}, fmt.Errorf("UpdateListingByID: prepare: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(string(l.Kind), l.Name, l.Description, l.Category, l.Location,
		l.Phone, l.Website, l.Rating, cols.hours, cols.tags, cols.courses, cols.services,
		cols.features, id)
	if err != nil {
		return types.Listing{}, fmt.Errorf("UpdateListingByID: exec: %w", err)
	}

	return s.GetListingByID(id)
}

// DeleteListingByID removes a listing row by primary key.
func (s *Store) DeleteListingByID(id int64) error {
	stmt, err := s.Db.Prepare("DELETE FROM listings WHERE id = ?")
	if err != nil {
		return fmt.Errorf("DeleteListingByID: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(id)
	if err != nil {
		return fmt.Errorf("DeleteListingByID: exec: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteListingByID: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no listing found with id %d: %w", id, storage.ErrNotFound)
	}

	return nil
}

// CountListings returns the number of rows in the listings table.
func (s *Store) CountListings() (int64, error) {
	var n int64
	if err := s.Db.QueryRow("SELECT COUNT(*) FROM listings").Scan(&n); err != nil {
		return 0, fmt.Errorf("CountListings: %w", err)
	}
	return n, nil
}

type listingJSON struct {
	hours, tags, courses, services, features string
}

func encodeListing(l types.Listing) (listingJSON, error) {
	var out listingJSON
	var err error

	if out.hours, err = encodeJSON(l.Hours); err != nil {
		return out, fmt.Errorf("encode hours: %w", err)
	}
	if out.tags, err = encodeList(l.Tags); err != nil {
		return out, fmt.Errorf("encode tags: %w", err)
	}
	if out.courses, err = encodeList(l.Courses); err != nil {
		return out, fmt.Errorf("encode courses: %w", err)
	}
	if out.services, err = encodeList(l.Services); err != nil {
		return out, fmt.Errorf("encode services: %w", err)
	}
	if out.features, err = encodeList(l.Features); err != nil {
		return out, fmt.Errorf("encode features: %w", err)
	}
	return out, nil
}

func scanListing(row rowScanner) (types.Listing, error) {
	var (
		l                                        types.Listing
		kind, createdAt                          string
		hours, tags, courses, services, features string
	)

	err := row.Scan(&l.ID, &kind, &l.Name, &l.Description, &l.Category, &l.Location,
		&l.Phone, &l.Website, &l.Rating, &hours, &tags, &courses, &services, &features,
		&createdAt)
	if err != nil {
		return types.Listing{}, err
	}

	l.Kind = types.Kind(kind)
	if err := decodeJSON(hours, &l.Hours); err != nil {
		return types.Listing{}, fmt.Errorf("decode hours of listing %d: %w", l.ID, err)
	}
	for _, f := range []struct {
		raw string
		dst *[]string
	}{
		{tags, &l.Tags}, {courses, &l.Courses}, {services, &l.Services}, {features, &l.Features},
	} {
		if err := decodeList(f.raw, f.dst); err != nil {
			return types.Listing{}, fmt.Errorf("decode list of listing %d: %w", l.ID, err)
		}
	}
	if l.CreatedAt, err = parseTime(createdAt); err != nil {
		return types.Listing{}, fmt.Errorf("created_at of listing %d: %w", l.ID, err)
	}

	return l, nil
}

func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// encodeList stores nil as "[]" so reads always produce a non-nil slice.
func encodeList(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	return encodeJSON(v)
}

func decodeJSON(raw string, dst any) error {
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}

func decodeList(raw string, dst *[]string) error {
	if err := decodeJSON(raw, dst); err != nil {
		return err
	}
	if *dst == nil {
		*dst = []string{}
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
