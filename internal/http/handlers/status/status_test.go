package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/motoportal-api/internal/hours"
	board "github.com/aanand-mishra/motoportal-api/internal/status"
	"github.com/aanand-mishra/motoportal-api/internal/storage/memory"
	"github.com/aanand-mishra/motoportal-api/internal/types"
)

func TestGet(t *testing.T) {
	now := time.Date(2024, time.April, 15, 12, 0, 0, 0, time.UTC)
	store := memory.New(nil)
	for _, l := range []types.Listing{
		{Kind: types.KindSchool, Name: "Открыто", Hours: types.WorkingHours{Text: "10:00-19:00"}},
		{Kind: types.KindSchool, Name: "Закрыто", Hours: types.WorkingHours{Text: "15:00-19:00"}},
	} {
		_, err := store.CreateListing(l)
		require.NoError(t, err)
	}

	b := board.NewBoard(store, hours.NewEvaluator(nil, time.UTC, func() time.Time { return now }), nil)
	h := Get(b)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var empty Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &empty))
	assert.True(t, empty.CheckedAt.IsZero())
	assert.Empty(t, empty.Badges)

	require.NoError(t, b.Refresh())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	var got Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, now, got.CheckedAt)
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, 1, got.Open)
	require.Len(t, got.Badges, 2)
	assert.Equal(t, hours.LabelOpen, got.Badges[0].Label)
	assert.Equal(t, hours.LabelClosed, got.Badges[1].Label)
}
