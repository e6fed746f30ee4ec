// Package classified contains the HTTP handlers for the classified ads board.
package classified

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/motoportal-api/internal/catalog"
	"github.com/aanand-mishra/motoportal-api/internal/storage"
	"github.com/aanand-mishra/motoportal-api/internal/types"
	"github.com/aanand-mishra/motoportal-api/internal/utils/request"
	"github.com/aanand-mishra/motoportal-api/internal/utils/response"
)

var adSorts = map[string]bool{
	catalog.SortNone:      true,
	catalog.SortNewest:    true,
	catalog.SortPriceAsc:  true,
	catalog.SortPriceDesc: true,
	catalog.SortPopular:   true,
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /api/classifieds
//
// Query parameters (all optional):
//
//	type         sale | wanted | exchange | all
//	q            case-insensitive substring of title or description
//	category, condition, price_type, location   exact matches
//	price_range  "min-max" or "N+"; a malformed value does not restrict
//	sort         newest | price-asc | price-desc | popular
//	page, page_size
//
// Ads without a stated price (0) pass any price range.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := request.NewQuery(r)

		adType := q.String("type")
		switch types.ClassifiedType(adType) {
		case "", catalog.AllTypes, types.ClassifiedSale, types.ClassifiedWanted, types.ClassifiedExchange:
		default:
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(fmt.Errorf("unknown type %q: use sale, wanted, exchange or all", adType)))
			return
		}

		criteria := catalog.ClassifiedCriteria{
			Type:       adType,
			Search:     q.String("q"),
			Category:   q.String("category"),
			Condition:  q.String("condition"),
			PriceType:  q.String("price_type"),
			Location:   q.String("location"),
			PriceRange: q.String("price_range"),
		}
		sortKey := q.String("sort")
		page, pageSize := q.Int("page"), q.Int("page_size")

		if err := q.Err(); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		if !adSorts[sortKey] {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(fmt.Errorf("unknown sort %q", sortKey)))
			return
		}

		slog.Info("getting classifieds", slog.String("type", adType))

		ads, err := store.GetClassifieds()
		if err != nil {
			slog.Error("error getting classifieds", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		filtered := catalog.SortClassifieds(catalog.FilterClassifieds(ads, criteria), sortKey)
		items, p := catalog.Paginate(filtered, page, pageSize)

		response.WriteJSON(w, http.StatusOK, response.Paginated(items, p))
	}
}

// New handles POST /api/classifieds
//
// Request body (JSON):
//
//	{ "type": "sale", "title": "Honda CBR600RR", "price": 650000, "condition": "used" }
//
// Success response (201 Created): { "id": 1 }
func New(store storage.Storage, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a classified ad")

		var ad types.Classified
		if err := request.DecodeJSON(r, &ad); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validate.Struct(ad); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(verrs))
				return
			}
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		// View counts are tracked by the portal, not set by the poster.
		ad.ViewCount = 0

		lastID, err := store.CreateClassified(ad)
		if err != nil {
			slog.Error("error creating classified ad", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		slog.Info("classified ad created", slog.Int64("id", lastID))
		response.WriteJSON(w, http.StatusCreated, map[string]int64{"id": lastID})
	}
}
