// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every handler sends JSON back to the client. Rather than repeating the
// same three lines (set header, set status, encode JSON) in every handler,
// they live here, together with the error envelope and the paginated list
// envelope.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/motoportal-api/internal/catalog"
	"github.com/aanand-mishra/motoportal-api/internal/storage"
)

// ─────────────────────────────────────────────────────────────────────────────
// Response is the standard envelope returned for error cases and for
// acknowledgements that carry no data.
//
//	{ "status": "error", "error": "field Name is required" }
//	{ "status": "deleted" }
//
// ─────────────────────────────────────────────────────────────────────────────
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusDeleted = "deleted"
)

// PaginatedResponse wraps one page of a list endpoint.
//
//	{ "data": [...], "total_rows": 45, "total_pages": 3, "current_page": 1, "page_size": 20 }
type PaginatedResponse struct {
	Data        any `json:"data"`
	TotalRows   int `json:"total_rows"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}

// Paginated builds the envelope for data cut by p.
func Paginated(data any, p catalog.Page) PaginatedResponse {
	return PaginatedResponse{
		Data:        data,
		TotalRows:   p.TotalRows,
		TotalPages:  p.TotalPages,
		CurrentPage: p.Number,
		PageSize:    p.Size,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
// ─────────────────────────────────────────────────────────────────────────────
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard Response shape.
// Use it for unexpected errors (DB failures, decode errors, etc.)
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// StorageError writes err with 404 when it wraps storage.ErrNotFound and
// 500 otherwise.
func StorageError(w http.ResponseWriter, err error) error {
	status := http.StatusInternalServerError
	if errors.Is(err, storage.ErrNotFound) {
		status = http.StatusNotFound
	}
	return WriteJSON(w, status, GeneralError(err))
}

// ─────────────────────────────────────────────────────────────────────────────
// ValidationError converts the validator's field errors into a single
// human-readable Response, one sentence per failing field joined by ", ".
//
//	{ "status": "error", "error": "field Name is required, field Rating must be at most 5" }
//
// ─────────────────────────────────────────────────────────────────────────────
func ValidationError(errs validator.ValidationErrors) Response {
	errMessages := make([]string, 0, len(errs))

	for _, e := range errs {
		field := e.Field()
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages, fmt.Sprintf("field %s is required", field))
		case "oneof":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be one of [%s]", field, e.Param()))
		case "gte", "min":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be at least %s", field, e.Param()))
		case "lte", "max":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be at most %s", field, e.Param()))
		case "datetime":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must match the layout %s", field, e.Param()))
		case "weekdays":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must name weekdays, e.g. Пн-Пт", field))
		default:
			errMessages = append(errMessages, fmt.Sprintf("field %s is invalid", field))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
	}
}
