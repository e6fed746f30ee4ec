package classified

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/motoportal-api/internal/storage/memory"
	"github.com/aanand-mishra/motoportal-api/internal/types"
	"github.com/aanand-mishra/motoportal-api/internal/validation"
)

func fixture(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.New(nil)
	for _, ad := range []types.Classified{
		{Type: types.ClassifiedSale, Title: "Honda CBR600RR", Category: "Мотоциклы", Price: 650000, ViewCount: 40},
		{Type: types.ClassifiedWanted, Title: "Куплю шлем", Category: "Экипировка", ViewCount: 5},
		{Type: types.ClassifiedSale, Title: "Куртка Dainese", Category: "Экипировка", Price: 25000, ViewCount: 123},
	} {
		_, err := store.CreateClassified(ad)
		require.NoError(t, err)
	}
	return store
}

type page struct {
	Data      []types.Classified `json:"data"`
	TotalRows int                `json:"total_rows"`
}

func titles(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	out := make([]string, 0, len(got.Data))
	for _, ad := range got.Data {
		out = append(out, ad.Title)
	}
	return out
}

func TestGetList(t *testing.T) {
	store := fixture(t)
	h := GetList(store)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Honda CBR600RR", "Куплю шлем", "Куртка Dainese"}},
		{"?type=all", []string{"Honda CBR600RR", "Куплю шлем", "Куртка Dainese"}},
		{"?type=sale&sort=price-asc", []string{"Куртка Dainese", "Honda CBR600RR"}},
		{"?sort=popular", []string{"Куртка Dainese", "Honda CBR600RR", "Куплю шлем"}},
		{"?price_range=0-100000", []string{"Куплю шлем", "Куртка Dainese"}},
		{"?price_range=nonsense", []string{"Honda CBR600RR", "Куплю шлем", "Куртка Dainese"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/classifieds"+tt.query, nil))
			assert.Equal(t, tt.want, titles(t, rec))
		})
	}
}

func TestGetListBadRequests(t *testing.T) {
	h := GetList(fixture(t))

	for _, q := range []string{"?type=gift", "?sort=cheapest", "?page_size=many"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/classifieds"+q, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestNew(t *testing.T) {
	store := fixture(t)
	h := New(store, validation.New())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/classifieds",
		strings.NewReader(`{"type":"exchange","title":"Обмен питбайка","price":80000,"view_count":999}`)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	ads, err := store.GetClassifieds()
	require.NoError(t, err)
	require.Len(t, ads, 4)
	assert.Equal(t, types.ClassifiedExchange, ads[3].Type)
	assert.Zero(t, ads[3].ViewCount)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/classifieds",
		strings.NewReader(`{"type":"gift","title":"x"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "field Type must be one of [sale wanted exchange]")
}
