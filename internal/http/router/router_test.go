package router

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/motoportal-api/internal/hours"
	"github.com/aanand-mishra/motoportal-api/internal/http/middleware"
	"github.com/aanand-mishra/motoportal-api/internal/status"
	"github.com/aanand-mishra/motoportal-api/internal/storage/memory"
	"github.com/aanand-mishra/motoportal-api/internal/validation"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	now := func() time.Time { return time.Date(2024, time.April, 15, 12, 0, 0, 0, time.UTC) }

	store := memory.New(now)
	ev := hours.NewEvaluator(nil, time.UTC, now)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := httptest.NewServer(New(Deps{
		Storage:   store,
		Evaluator: ev,
		Board:     status.NewBoard(store, ev, log),
		Validate:  validation.New(),
		Log:       log,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) (int, string, http.Header) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf.String(), resp.Header
}

func TestRoutes(t *testing.T) {
	srv := newServer(t)
	base := srv.URL + "/api/listings"

	code, body, hdr := do(t, http.MethodPost, base, `{"kind":"school","name":"Драйв","category":"Мотошкола","working_hours":{"text":"10:00-19:00"}}`)
	require.Equal(t, http.StatusCreated, code, body)
	assert.JSONEq(t, `{"id":1}`, body)
	assert.NotEmpty(t, hdr.Get(middleware.RequestIDHeader))

	code, body, _ = do(t, http.MethodGet, base+"/facets", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"categories":["Все","Мотошкола"],"locations":[]}`, body)

	code, body, _ = do(t, http.MethodGet, base+"/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"label":"ОТКРЫТО"`)

	code, body, _ = do(t, http.MethodGet, base+"/1/status", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"open":true`)

	code, _, _ = do(t, http.MethodPut, base+"/1", `{"kind":"school","name":"Драйв 2"}`)
	assert.Equal(t, http.StatusOK, code)

	code, _, _ = do(t, http.MethodGet, base, "")
	assert.Equal(t, http.StatusOK, code)

	code, _, _ = do(t, http.MethodDelete, base+"/1", "")
	assert.Equal(t, http.StatusOK, code)

	code, _, _ = do(t, http.MethodGet, base+"/1", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _, _ = do(t, http.MethodPost, srv.URL+"/api/events", `{"title":"Ride","date":"2024-05-01"}`)
	assert.Equal(t, http.StatusCreated, code)
	code, _, _ = do(t, http.MethodGet, srv.URL+"/api/events", "")
	assert.Equal(t, http.StatusOK, code)

	code, _, _ = do(t, http.MethodPost, srv.URL+"/api/classifieds", `{"type":"sale","title":"Helmet"}`)
	assert.Equal(t, http.StatusCreated, code)
	code, _, _ = do(t, http.MethodGet, srv.URL+"/api/classifieds", "")
	assert.Equal(t, http.StatusOK, code)

	code, _, _ = do(t, http.MethodGet, srv.URL+"/api/status", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newServer(t)

	code, _, _ := do(t, http.MethodPatch, srv.URL+"/api/listings/1", "{}")
	assert.Equal(t, http.StatusMethodNotAllowed, code)
}

func TestListPagePastEnd(t *testing.T) {
	srv := newServer(t)

	code, body, _ := do(t, http.MethodPost, srv.URL+"/api/listings", `{"kind":"shop","name":"МотоЭкип","working_hours":{"open_time":600,"close_time":1200}}`)
	require.Equal(t, http.StatusCreated, code, body)

	for _, path := range []string{"/api/listings", "/api/events", "/api/classifieds"} {
		t.Run(path, func(t *testing.T) {
			code, body, _ := do(t, http.MethodGet, srv.URL+path+"?page=461168601842738792", "")
			require.Equal(t, http.StatusOK, code, body)
			assert.Contains(t, body, `"current_page":461168601842738792`)
		})
	}

	_, body, _ = do(t, http.MethodGet, srv.URL+"/api/listings?page=461168601842738792&page_size=100", "")
	assert.Contains(t, body, `"data":[]`)
	assert.Contains(t, body, `"total_rows":1`)
}
