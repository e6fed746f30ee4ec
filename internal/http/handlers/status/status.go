// Package status exposes the badge board over HTTP.
package status

import (
	"net/http"
	"time"

	board "github.com/aanand-mishra/motoportal-api/internal/status"
	"github.com/aanand-mishra/motoportal-api/internal/utils/response"
)

// Snapshot is the body of GET /api/status.
type Snapshot struct {
	CheckedAt time.Time     `json:"checked_at"`
	Open      int           `json:"open"`
	Total     int           `json:"total"`
	Badges    []board.Badge `json:"badges"`
}

// Get handles GET /api/status
// It serves the board's last snapshot and never evaluates schedules itself.
// checked_at is zero until the board has refreshed once.
func Get(b *board.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		badges, at := b.Snapshot()

		open := 0
		for _, badge := range badges {
			if badge.Open {
				open++
			}
		}

		response.WriteJSON(w, http.StatusOK, Snapshot{CheckedAt: at, Open: open, Total: len(badges), Badges: badges})
	}
}
