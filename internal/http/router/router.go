// Package router wires every handler to its route.
//
// Go 1.22+ ServeMux patterns carry the method and named path segments, so
// no third-party router is needed:
//
//	"GET /api/listings/{id}"  matches only GET, and r.PathValue("id") reads the segment
//
// A literal segment beats a wildcard, so /api/listings/facets never reaches
// the {id} handler.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/motoportal-api/internal/hours"
	"github.com/aanand-mishra/motoportal-api/internal/http/handlers/classified"
	"github.com/aanand-mishra/motoportal-api/internal/http/handlers/event"
	"github.com/aanand-mishra/motoportal-api/internal/http/handlers/listing"
	statushandler "github.com/aanand-mishra/motoportal-api/internal/http/handlers/status"
	"github.com/aanand-mishra/motoportal-api/internal/http/middleware"
	"github.com/aanand-mishra/motoportal-api/internal/status"
	"github.com/aanand-mishra/motoportal-api/internal/storage"
)

// Deps are the long-lived values the handlers close over.
type Deps struct {
	Storage   storage.Storage
	Evaluator *hours.Evaluator
	Board     *status.Board
	Validate  *validator.Validate
	Log       *slog.Logger
}

// New returns the API handler wrapped in the request-id, access-log and
// panic-recovery middleware.
func New(d Deps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/listings", listing.GetList(d.Storage, d.Evaluator))
	mux.HandleFunc("GET /api/listings/facets", listing.Facets(d.Storage))
	mux.HandleFunc("GET /api/listings/{id}", listing.GetByID(d.Storage, d.Evaluator))
	mux.HandleFunc("GET /api/listings/{id}/status", listing.Status(d.Storage, d.Evaluator))
	mux.HandleFunc("POST /api/listings", listing.New(d.Storage, d.Validate))
	mux.HandleFunc("PUT /api/listings/{id}", listing.Update(d.Storage, d.Validate))
	mux.HandleFunc("DELETE /api/listings/{id}", listing.Delete(d.Storage))

	mux.HandleFunc("GET /api/events", event.GetList(d.Storage, d.Evaluator))
	mux.HandleFunc("POST /api/events", event.New(d.Storage, d.Validate))

	mux.HandleFunc("GET /api/classifieds", classified.GetList(d.Storage))
	mux.HandleFunc("POST /api/classifieds", classified.New(d.Storage, d.Validate))

	mux.HandleFunc("GET /api/status", statushandler.Get(d.Board))

	log := d.Log
	if log == nil {
		log = slog.Default()
	}
	return middleware.RequestID(middleware.Logger(log)(middleware.Recoverer(log)(mux)))
}
