// Package listing contains the HTTP handlers for directory listings:
// riding schools, service centers and shops.
//
// Handlers follow the factory pattern: each exported function takes its
// dependencies once at route registration and returns the
// http.HandlerFunc that runs on every request.
//
//	router.HandleFunc("GET /api/listings", listing.GetList(store, evaluator))
//
// Every listing returned to clients is a View: the stored record plus the
// open/closed badge computed at request time.
package listing

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/motoportal-api/internal/catalog"
	"github.com/aanand-mishra/motoportal-api/internal/hours"
	"github.com/aanand-mishra/motoportal-api/internal/storage"
	"github.com/aanand-mishra/motoportal-api/internal/types"
	"github.com/aanand-mishra/motoportal-api/internal/utils/request"
	"github.com/aanand-mishra/motoportal-api/internal/utils/response"
)

// View is a listing together with its badge at the time of the request.
type View struct {
	types.Listing
	Open      bool   `json:"open"`
	Label     string `json:"label"`
	Defaulted bool   `json:"defaulted"`
}

func newView(l types.Listing, st hours.Status) View {
	return View{Listing: l, Open: st.Open, Label: hours.Label(st.Open), Defaulted: st.Defaulted}
}

// StatusView is the body of GET /api/listings/{id}/status.
type StatusView struct {
	ID        int64     `json:"id"`
	Open      bool      `json:"open"`
	Label     string    `json:"label"`
	Defaulted bool      `json:"defaulted"`
	CheckedAt time.Time `json:"checked_at"`
}

var listingSorts = map[string]bool{
	catalog.SortNone: true, catalog.SortRating: true, catalog.SortName: true, catalog.SortNewest: true,
}

// parseKind reads the optional kind query value.
func parseKind(q *request.Query) (types.Kind, error) {
	kind := types.Kind(q.String("kind"))
	if kind != "" && !kind.Valid() {
		return "", fmt.Errorf("unknown kind %q: use school, service or shop", kind)
	}
	return kind, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /api/listings
//
// Query parameters (all optional):
//
//	kind         school | service | shop
//	q            case-insensitive substring of name or description
//	search_tags  true to also search tags, courses, services and features
//	category     exact category; "Все" or empty means any
//	tags         comma separated, a listing needs at least one
//	location     exact location
//	min_rating   lower bound on rating
//	sort         rating | name | newest
//	page, page_size
//
// Success response (200 OK): a paginated envelope of View.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(store storage.Storage, ev *hours.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := request.NewQuery(r)

		kind, err := parseKind(q)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		criteria := catalog.ListingCriteria{
			Kind:       kind,
			Search:     q.String("q"),
			SearchTags: q.Bool("search_tags"),
			Category:   q.String("category"),
			Tags:       q.List("tags"),
			Location:   q.String("location"),
			MinRating:  q.Float("min_rating"),
		}
		sortKey := q.String("sort")
		page, pageSize := q.Int("page"), q.Int("page_size")

		if err := q.Err(); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		if !listingSorts[sortKey] {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(fmt.Errorf("unknown sort %q", sortKey)))
			return
		}

		slog.Info("getting listings", slog.String("kind", string(kind)), slog.String("q", criteria.Search))

		listings, err := store.GetListings(kind)
		if err != nil {
			slog.Error("error getting listings", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		filtered := catalog.SortListings(catalog.FilterListings(listings, criteria), sortKey)
		items, p := catalog.Paginate(filtered, page, pageSize)

		// One clock reading per request so every badge on the page agrees.
		now := ev.Now()
		views := make([]View, 0, len(items))
		for _, l := range items {
			views = append(views, newView(l, ev.StatusAt(l, now)))
		}

		response.WriteJSON(w, http.StatusOK, response.Paginated(views, p))
	}
}

// Facets handles GET /api/listings/facets?kind=...
// It returns the filter choices for the list page: categories (with "Все"
// first) and locations, in first-seen order.
func Facets(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := parseKind(request.NewQuery(r))
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		listings, err := store.GetListings(kind)
		if err != nil {
			slog.Error("error getting listings", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, catalog.Facets(listings))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /api/listings/{id}
//
// Error responses:
//
//	400 Bad Request: id is not a positive integer
//	404 Not Found:   no listing with that id
//	500 Internal:    database error
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(store storage.Storage, ev *hours.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		slog.Info("getting a listing", slog.Int64("id", id))

		l, err := store.GetListingByID(id)
		if err != nil {
			slog.Error("error getting listing", slog.Int64("id", id), slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, newView(l, ev.Status(l)))
	}
}

// Status handles GET /api/listings/{id}/status
// It evaluates the listing's schedule right now, bypassing the board.
func Status(store storage.Storage, ev *hours.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		l, err := store.GetListingByID(id)
		if err != nil {
			response.StorageError(w, err)
			return
		}

		now := ev.Now()
		st := ev.StatusAt(l, now)
		response.WriteJSON(w, http.StatusOK, StatusView{
			ID:        l.ID,
			Open:      st.Open,
			Label:     hours.Label(st.Open),
			Defaulted: st.Defaulted,
			CheckedAt: now,
		})
	}
}

// decodeListing runs the shared body steps of New and Update. It writes the
// error response itself and reports whether the handler may continue.
func decodeListing(w http.ResponseWriter, r *http.Request, validate *validator.Validate) (types.Listing, bool) {
	var l types.Listing

	if err := request.DecodeJSON(r, &l); err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return l, false
	}

	if err := validate.Struct(l); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(verrs))
		} else {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
		}
		return l, false
	}

	return l, true
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/listings
//
// Request body (JSON):
//
//	{ "kind": "school", "name": "Мотошкола Драйв", "category": "Мотошкола",
//	  "working_hours": { "text": "10:00-19:00" }, "courses": ["Категория A"] }
//
// Success response (201 Created):
//
//	{ "id": 1 }
//
// ─────────────────────────────────────────────────────────────────────────────
func New(store storage.Storage, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a listing")

		l, ok := decodeListing(w, r, validate)
		if !ok {
			return
		}

		lastID, err := store.CreateListing(l)
		if err != nil {
			slog.Error("error creating listing", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		slog.Info("listing created", slog.Int64("id", lastID))
		response.WriteJSON(w, http.StatusCreated, map[string]int64{"id": lastID})
	}
}

// Update handles PUT /api/listings/{id}
// It replaces every field of the listing except id and created_at; the
// last write wins. Responds with the stored record.
func Update(store storage.Storage, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		slog.Info("updating a listing", slog.Int64("id", id))

		l, ok := decodeListing(w, r, validate)
		if !ok {
			return
		}

		updated, err := store.UpdateListingByID(id, l)
		if err != nil {
			slog.Error("error updating listing", slog.Int64("id", id), slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		slog.Info("listing updated", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// Delete handles DELETE /api/listings/{id}
func Delete(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := request.PathID(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		slog.Info("deleting a listing", slog.Int64("id", id))

		if err := store.DeleteListingByID(id); err != nil {
			slog.Error("error deleting listing", slog.Int64("id", id), slog.String("error", err.Error()))
			response.StorageError(w, err)
			return
		}

		slog.Info("listing deleted", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, response.Response{Status: response.StatusDeleted})
	}
}
