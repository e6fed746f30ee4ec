// Package storage defines the Storage interface, the contract any database
// backend must satisfy to work with this application.
//
// Handlers depend only on this interface, so switching databases means
// implementing it for the new backend and changing one line in main.go.
// Tests pass an in-memory fake instead of a real database.
package storage

import (
	"errors"

	"github.com/aanand-mishra/motoportal-api/internal/types"
)

// ErrNotFound is returned (wrapped) when a record with the requested id does
// not exist. Check it with errors.Is.
var ErrNotFound = errors.New("not found")

// Storage is the database contract.
type Storage interface {
	// CreateListing inserts a listing and returns its generated ID.
	// A zero CreatedAt is set to the current time.
	CreateListing(listing types.Listing) (int64, error)

	// GetListingByID fetches one listing. Wraps ErrNotFound when missing.
	GetListingByID(id int64) (types.Listing, error)

	// GetListings returns listings of the given kind in insertion order,
	// or every listing when kind is empty. Never returns a nil slice.
	GetListings(kind types.Kind) ([]types.Listing, error)

	// UpdateListingByID replaces every field except ID and CreatedAt.
	// The last write wins. Wraps ErrNotFound when missing.
	UpdateListingByID(id int64, listing types.Listing) (types.Listing, error)

	// DeleteListingByID removes a listing. Wraps ErrNotFound when missing.
	DeleteListingByID(id int64) error

	// CountListings returns the number of stored listings.
	CountListings() (int64, error)

	CreateEvent(event types.Event) (int64, error)
	GetEvents() ([]types.Event, error)

	CreateClassified(ad types.Classified) (int64, error)
	GetClassifieds() ([]types.Classified, error)
}
