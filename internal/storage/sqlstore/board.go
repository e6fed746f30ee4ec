package sqlstore

import (
	"fmt"

	"github.com/aanand-mishra/motoportal-api/internal/types"
)

const eventColumns = `id, title, description, event_date, event_time, location, price,
	category, organizer, featured, created_at`

// CreateEvent inserts an event and returns its generated ID.
func (s *Store) CreateEvent(e types.Event) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}

	stmt, err := s.Db.Prepare(`INSERT INTO events (title, description, event_date, event_time,
		location, price, category, organizer, featured, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("CreateEvent: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(e.Title, e.Description, e.Date, e.Time, e.Location, e.Price,
		e.Category, e.Organizer, e.Featured, formatTime(e.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("CreateEvent: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateEvent: last insert id: %w", err)
	}
	return lastID, nil
}

// GetEvents returns every event ordered by id.
func (s *Store) GetEvents() ([]types.Event, error) {
	rows, err := s.Db.Query("SELECT " + eventColumns + " FROM events ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("GetEvents: query: %w", err)
	}
	defer rows.Close()

	events := make([]types.Event, 0)
	for rows.Next() {
		var (
			e         types.Event
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location,
			&e.Price, &e.Category, &e.Organizer, &e.Featured, &createdAt); err != nil {
			return nil, fmt.Errorf("GetEvents: scan row: %w", err)
		}
		if e.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("GetEvents: created_at of event %d: %w", e.ID, err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetEvents: rows iteration: %w", err)
	}
	return events, nil
}

const classifiedColumns = `id, ad_type, title, description, category, item_condition,
	price_type, price, location, tags, view_count, created_at`

// CreateClassified inserts a classified ad and returns its generated ID.
func (s *Store) CreateClassified(c types.Classified) (int64, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}

	tags, err := encodeList(c.Tags)
	if err != nil {
		return 0, fmt.Errorf("CreateClassified: encode tags: %w", err)
	}

	stmt, err := s.Db.Prepare(`INSERT INTO classifieds (ad_type, title, description, category,
		item_condition, price_type, price, location, tags, view_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("CreateClassified: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(string(c.Type), c.Title, c.Description, c.Category, c.Condition,
		c.PriceType, c.Price, c.Location, tags, c.ViewCount, formatTime(c.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("CreateClassified: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateClassified: last insert id: %w", err)
	}
	return lastID, nil
}

// GetClassifieds returns every classified ad ordered by id.
func (s *Store) GetClassifieds() ([]types.Classified, error) {
	rows, err := s.Db.Query("SELECT " + classifiedColumns + " FROM classifieds ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("GetClassifieds: query: %w", err)
	}
	defer rows.Close()

	ads := make([]types.Classified, 0)
	for rows.Next() {
		var (
			c               types.Classified
			adType          string
			tags, createdAt string
		)
		if err := rows.Scan(&c.ID, &adType, &c.Title, &c.Description, &c.Category, &c.Condition,
			&c.PriceType, &c.Price, &c.Location, &tags, &c.ViewCount, &createdAt); err != nil {
			return nil, fmt.Errorf("GetClassifieds: scan row: %w", err)
		}
		c.Type = types.ClassifiedType(adType)
		if err := decodeList(tags, &c.Tags); err != nil {
			return nil, fmt.Errorf("GetClassifieds: tags of ad %d: %w", c.ID, err)
		}
		if c.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("GetClassifieds: created_at of ad %d: %w", c.ID, err)
		}
		ads = append(ads, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetClassifieds: rows iteration: %w", err)
	}
	return ads, nil
}
