package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/motoportal-api/internal/storage"
	"github.com/aanand-mishra/motoportal-api/internal/types"
)

func TestListingsLifecycle(t *testing.T) {
	fixed := time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC)
	s := New(func() time.Time { return fixed })

	id, err := s.CreateListing(types.Listing{Kind: types.KindShop, Name: "Shop", Tags: []string{"a"}})
	require.NoError(t, err)
	_, err = s.CreateListing(types.Listing{Kind: types.KindSchool, Name: "School"})
	require.NoError(t, err)

	got, err := s.GetListingByID(id)
	require.NoError(t, err)
	assert.Equal(t, fixed, got.CreatedAt)

	// Returned records are copies.
	got.Tags[0] = "changed"
	again, _ := s.GetListingByID(id)
	assert.Equal(t, []string{"a"}, again.Tags)

	shops, err := s.GetListings(types.KindShop)
	require.NoError(t, err)
	assert.Len(t, shops, 1)

	updated, err := s.UpdateListingByID(id, types.Listing{Kind: types.KindShop, Name: "Shop 2"})
	require.NoError(t, err)
	assert.Equal(t, id, updated.ID)
	assert.Equal(t, fixed, updated.CreatedAt)

	require.NoError(t, s.DeleteListingByID(id))
	n, _ := s.CountListings()
	assert.EqualValues(t, 1, n)

	assert.ErrorIs(t, s.DeleteListingByID(id), storage.ErrNotFound)
	_, err = s.GetListingByID(id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.UpdateListingByID(id, types.Listing{})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestEventsAndClassifieds(t *testing.T) {
	s := New(nil)

	_, err := s.CreateEvent(types.Event{Title: "Ride", Date: "2024-05-01"})
	require.NoError(t, err)
	_, err = s.CreateClassified(types.Classified{Type: types.ClassifiedSale, Title: "Helmet"})
	require.NoError(t, err)

	events, _ := s.GetEvents()
	require.Len(t, events, 1)
	assert.False(t, events[0].CreatedAt.IsZero())

	ads, _ := s.GetClassifieds()
	require.Len(t, ads, 1)
	assert.Equal(t, "Helmet", ads[0].Title)
}
