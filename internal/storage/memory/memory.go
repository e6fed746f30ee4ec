// Package memory is an in-process storage.Storage. The CLI uses it to run
// filters over a seed file without a database, and handler tests use it in
// place of SQLite.
package memory

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/aanand-mishra/motoportal-api/internal/storage"
	"github.com/aanand-mishra/motoportal-api/internal/types"
)

// Store keeps records in slices ordered by id. It is safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	listings    []types.Listing
	events      []types.Event
	classifieds []types.Classified
	nextID      int64
	now         func() time.Time
}

var _ storage.Storage = (*Store)(nil)

// New returns an empty store. A nil now means time.Now.
func New(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{now: now}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) CreateListing(l types.Listing) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l.ID = s.id()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = s.now()
	}
	s.listings = append(s.listings, cloneListing(l))
	return l.ID, nil
}

func (s *Store) index(id int64) int {
	return slices.IndexFunc(s.listings, func(l types.Listing) bool { return l.ID == id })
}

func (s *Store) GetListingByID(id int64) (types.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.index(id)
	if i < 0 {
		return types.Listing{}, fmt.Errorf("no listing found with id %d: %w", id, storage.ErrNotFound)
	}
	return cloneListing(s.listings[i]), nil
}

func (s *Store) GetListings(kind types.Kind) ([]types.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		if kind == "" || l.Kind == kind {
			out = append(out, cloneListing(l))
		}
	}
	return out, nil
}

func (s *Store) UpdateListingByID(id int64, l types.Listing) (types.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return types.Listing{}, fmt.Errorf("no listing found with id %d: %w", id, storage.ErrNotFound)
	}
	l.ID = id
	l.CreatedAt = s.listings[i].CreatedAt
	s.listings[i] = cloneListing(l)
	return cloneListing(l), nil
}

func (s *Store) DeleteListingByID(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("no listing found with id %d: %w", id, storage.ErrNotFound)
	}
	s.listings = slices.Delete(s.listings, i, i+1)
	return nil
}

func (s *Store) CountListings() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.listings)), nil
}

func (s *Store) CreateEvent(e types.Event) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.id()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	s.events = append(s.events, e)
	return e.ID, nil
}

func (s *Store) GetEvents() ([]types.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events), nil
}

func (s *Store) CreateClassified(c types.Classified) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.id()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	c.Tags = slices.Clone(c.Tags)
	s.classifieds = append(s.classifieds, c)
	return c.ID, nil
}

func (s *Store) GetClassifieds() ([]types.Classified, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Classified, len(s.classifieds))
	for i, c := range s.classifieds {
		c.Tags = slices.Clone(c.Tags)
		out[i] = c
	}
	return out, nil
}

// cloneListing copies the slices so callers cannot mutate stored records.
func cloneListing(l types.Listing) types.Listing {
	l.Tags = slices.Clone(l.Tags)
	l.Courses = slices.Clone(l.Courses)
	l.Services = slices.Clone(l.Services)
	l.Features = slices.Clone(l.Features)
	l.Hours.Schedule = slices.Clone(l.Hours.Schedule)
	if l.Hours.OpenTime != nil {
		v := *l.Hours.OpenTime
		l.Hours.OpenTime = &v
	}
	if l.Hours.CloseTime != nil {
		v := *l.Hours.CloseTime
		l.Hours.CloseTime = &v
	}
	return l
}
