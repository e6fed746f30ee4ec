package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/motoportal-api/internal/catalog"
	"github.com/aanand-mishra/motoportal-api/internal/storage"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NoError(t, WriteJSON(rec, http.StatusCreated, map[string]int64{"id": 7}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":7}`, rec.Body.String())
}

func TestGeneralError(t *testing.T) {
	got := GeneralError(errors.New("boom"))
	assert.Equal(t, Response{Status: StatusError, Error: "boom"}, got)

	b, err := json.Marshal(Response{Status: StatusDeleted})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"deleted"}`, string(b))
}

func TestPaginated(t *testing.T) {
	data, page := catalog.Paginate([]string{"a", "b", "c"}, 2, 2)

	b, err := json.Marshal(Paginated(data, page))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":["c"],"total_rows":3,"total_pages":2,"current_page":2,"page_size":2}`, string(b))
}

type payload struct {
	Name   string  `validate:"required"`
	Kind   string  `validate:"oneof=school shop"`
	Rating float64 `validate:"lte=5"`
	Date   string  `validate:"datetime=2006-01-02"`
}

func TestValidationError(t *testing.T) {
	err := validator.New().Struct(payload{Kind: "garage", Rating: 7, Date: "tomorrow"})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	got := ValidationError(verrs)
	assert.Equal(t, StatusError, got.Status)
	assert.Equal(t,
		"field Name is required, field Kind must be one of [school shop], "+
			"field Rating must be at most 5, field Date must match the layout 2006-01-02",
		got.Error)
}

func TestStorageError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", fmt.Errorf("GetListingByID: %w", storage.ErrNotFound), http.StatusNotFound},
		{"anything else", errors.New("disk I/O error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			require.NoError(t, StorageError(rec, tt.err))

			assert.Equal(t, tt.code, rec.Code)

			var got Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, Response{Status: StatusError, Error: tt.err.Error()}, got)
		})
	}
}
