// Package status keeps a periodically refreshed open/closed badge for every
// listing, so list pages can show "ОТКРЫТО" without evaluating schedules on
// every request.
package status

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/aanand-mishra/motoportal-api/internal/hours"
	"github.com/aanand-mishra/motoportal-api/internal/types"
)

// ListingSource is the part of storage.Storage the board reads from.
type ListingSource interface {
	GetListings(kind types.Kind) ([]types.Listing, error)
}

// Badge is the computed open/closed state of one listing.
type Badge struct {
	ID        int64      `json:"id"`
	Kind      types.Kind `json:"kind"`
	Name      string     `json:"name"`
	Open      bool       `json:"open"`
	Label     string     `json:"label"`
	Defaulted bool       `json:"defaulted"`
}

// Board holds the latest badge snapshot. It is safe for concurrent use.
type Board struct {
	source    ListingSource
	evaluator *hours.Evaluator
	log       *slog.Logger

	mu        sync.RWMutex
	badges    []Badge
	checkedAt time.Time
}

// NewBoard returns an empty board. Call Refresh or Run to fill it.
func NewBoard(source ListingSource, evaluator *hours.Evaluator, log *slog.Logger) *Board {
	if log == nil {
		log = slog.Default()
	}
	return &Board{source: source, evaluator: evaluator, log: log}
}

// Refresh recomputes every badge at the evaluator's current time. On error
// the previous snapshot is kept.
func (b *Board) Refresh() error {
	listings, err := b.source.GetListings("")
	if err != nil {
		return fmt.Errorf("status.Refresh: %w", err)
	}

	now := b.evaluator.Now()
	badges := make([]Badge, 0, len(listings))
	for _, l := range listings {
		st := b.evaluator.StatusAt(l, now)
		badges = append(badges, Badge{
			ID:        l.ID,
			Kind:      l.Kind,
			Name:      l.Name,
			Open:      st.Open,
			Label:     hours.Label(st.Open),
			Defaulted: st.Defaulted,
		})
	}
	slices.SortFunc(badges, func(a, c Badge) int { return cmp.Compare(a.ID, c.ID) })

	b.mu.Lock()
	previous := b.badges
	b.badges = badges
	b.checkedAt = now
	b.mu.Unlock()

	b.logTransitions(previous, badges)
	return nil
}

// logTransitions reports listings whose state flipped since the last refresh.
// Both slices are sorted by id.
func (b *Board) logTransitions(previous, current []Badge) {
	for _, c := range current {
		i, found := slices.BinarySearchFunc(previous, c.ID, func(p Badge, id int64) int {
			return cmp.Compare(p.ID, id)
		})
		if !found || previous[i].Open == c.Open {
			continue
		}
		b.log.Debug("listing status changed",
			slog.Int64("id", c.ID),
			slog.String("name", c.Name),
			slog.String("label", c.Label),
		)
	}
}

// Run refreshes immediately and then once per interval until ctx is done.
// Refresh failures are logged and do not stop the loop. Run returns nil when
// ctx is cancelled.
func (b *Board) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("status.Run: interval must be positive, got %s", interval)
	}

	if err := b.Refresh(); err != nil {
		b.log.Error("status refresh failed", slog.String("error", err.Error()))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := b.Refresh(); err != nil {
				b.log.Error("status refresh failed", slog.String("error", err.Error()))
			}
		}
	}
}

// Snapshot returns a copy of the current badges, sorted by id, and the time
// they were computed. The time is zero before the first successful Refresh.
func (b *Board) Snapshot() ([]Badge, time.Time) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Badge, len(b.badges))
	copy(out, b.badges)
	return out, b.checkedAt
}

// Lookup returns the badge of one listing from the current snapshot.
func (b *Board) Lookup(id int64) (Badge, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	i, found := slices.BinarySearchFunc(b.badges, id, func(p Badge, id int64) int {
		return cmp.Compare(p.ID, id)
	})
	if !found {
		return Badge{}, false
	}
	return b.badges[i], true
}
