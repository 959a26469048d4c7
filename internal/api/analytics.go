package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"backend-go/internal/aggregator"
	"backend-go/internal/journal"
	"backend-go/internal/types"
)

type analyticsResponse struct {
	OK   bool                  `json:"ok"`
	Data analyticsResponseData `json:"data"`
}

type analyticsResponseData struct {
	Players []aggregator.Snapshot `json:"players"`
}

// Analytics returns every tracked player's vocabulary snapshot.
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, analyticsResponse{
		OK:   true,
		Data: analyticsResponseData{Players: h.aggregate.All()},
	})
}

type playerAnalyticsResponse struct {
	OK   bool                 `json:"ok"`
	Data *aggregator.Snapshot `json:"data,omitempty"`
}

// PlayerAnalytics returns one player's vocabulary snapshot by id
// (e.g. "player_0"), or ok:false if that player has never played a word.
func (h *Handler) PlayerAnalytics(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, ok := h.aggregate.Player(id)
	if !ok {
		writeJSON(w, http.StatusOK, playerAnalyticsResponse{OK: false})
		return
	}
	writeJSON(w, http.StatusOK, playerAnalyticsResponse{OK: true, Data: &snap})
}

type moveLogResponse struct {
	OK   bool                `json:"ok"`
	Data moveLogResponseData `json:"data"`
}

type moveLogResponseData struct {
	Events []types.MoveEvent `json:"events"`
}

// MoveLog returns the full persisted event log, oldest first.
func (h *Handler) MoveLog(w http.ResponseWriter, r *http.Request) {
	events, err := journal.ReadEvents(h.eventLogPath)
	if err != nil {
		writeJSON(w, http.StatusOK, moveLogResponse{OK: false})
		return
	}
	writeJSON(w, http.StatusOK, moveLogResponse{OK: true, Data: moveLogResponseData{Events: events}})
}
