// Package event contains the HTTP handlers for community events.
package event

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/motoportal-api/internal/catalog"
	"github.com/aanand-mishra/motoportal-api/internal/hours"
	"github.com/aanand-mishra/motoportal-api/internal/storage"
	"github.com/aanand-mishra/motoportal-api/internal/types"
	"github.com/aanand-mishra/motoportal-api/internal/utils/request"
	"github.com/aanand-mishra/motoportal-api/internal/utils/response"
)

// View is an event with its relative date label ("Сегодня", "Завтра" or "").
type View struct {
	types.Event
	DateLabel string `json:"date_label"`
}

var eventSorts = map[string]bool{
	catalog.SortNone: true, catalog.SortDate: true, catalog.SortPrice: true, catalog.SortNewest: true,
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /api/events
//
// Query parameters (all optional):
//
//	q         case-insensitive substring of title or description
//	category  exact category; "Все" or empty means any
//	featured  true to keep only featured events
//	upcoming  true to drop events dated before today
//	sort      date | price | newest
//	page, page_size
//
// "Today" is read on the portal's clock, so it is the same day the badges use.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(store storage.Storage, ev *hours.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := request.NewQuery(r)
		criteria := catalog.EventCriteria{
			Search:       q.String("q"),
			Category:     q.String("category"),
			FeaturedOnly: q.Bool("featured"),
			UpcomingOnly: q.Bool("upcoming"),
		}
		sortKey := q.String("sort")
		page, pageSize := q.Int("page"), q.Int("page_size")

		if err := q.Err(); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		if !eventSorts[sortKey] {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(fmt.Errorf("unknown sort %q", sortKey)))
			return
		}

		slog.Info("getting events")

		events, err := store.GetEvents()
		if err != nil {
			slog.Error("error getting events", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		now := ev.Now()
		filtered := catalog.SortEvents(catalog.FilterEvents(events, criteria, now), sortKey)
		items, p := catalog.Paginate(filtered, page, pageSize)

		views := make([]View, 0, len(items))
		for _, e := range items {
			views = append(views, View{Event: e, DateLabel: catalog.DateLabel(e.Date, now)})
		}

		response.WriteJSON(w, http.StatusOK, response.Paginated(views, p))
	}
}

// New handles POST /api/events
//
// Request body (JSON):
//
//	{ "title": "Открытие сезона", "date": "2024-04-20", "time": "10:00", "price": 500 }
//
// Success response (201 Created): { "id": 1 }
func New(store storage.Storage, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating an event")

		var e types.Event
		if err := request.DecodeJSON(r, &e); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validate.Struct(e); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(verrs))
				return
			}
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		lastID, err := store.CreateEvent(e)
		if err != nil {
			slog.Error("error creating event", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		slog.Info("event created", slog.Int64("id", lastID))
		response.WriteJSON(w, http.StatusCreated, map[string]int64{"id": lastID})
	}
}
