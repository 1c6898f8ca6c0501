// Package transport exposes the dashboard HTTP API.
package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/NataliaMilgevskaya/Zapp.ie/internal/model"
)

// ZapAnalytics is the slice of the analytics session the API serves.
type ZapAnalytics interface {
	Snapshot() model.AggregateSnapshot
	SortBy(key model.SortKey) []model.Transaction
	ApplyWindow(since *int64) []model.Transaction
	View() []model.Transaction
	Actors() []string
	ActiveSort() model.SortKey
}

// DashboardHandler serves summary, feed and actor endpoints backed by
// the in-memory analytics session.
type DashboardHandler struct {
	analytics ZapAnalytics
	logger    *zap.Logger
}

// NewDashboardHandler returns a DashboardHandler instance.
func NewDashboardHandler(analytics ZapAnalytics, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		analytics: analytics,
		logger:    logger.Named("dashboard"),
	}
}

// Router wires the API routes.
func (h *DashboardHandler) Router() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/zaps/summary", h.GetSummary).Methods(http.MethodGet)
	api.HandleFunc("/zaps/feed", h.GetFeed).Methods(http.MethodGet)
	api.HandleFunc("/zaps/actors", h.GetActors).Methods(http.MethodGet)

	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	return r
}

type feedResponse struct {
	Transactions []model.Transaction `json:"transactions"`
	Count        int                 `json:"count"`
	SortedBy     string              `json:"sortedBy,omitempty"`
}

type actorsResponse struct {
	Actors []string `json:"actors"`
	Count  int      `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GetSummary returns the aggregate snapshot over every ingested zap.
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.analytics.Snapshot())
}

// GetFeed returns the current working view. A sort query toggles the
// ranked order for that column; a since query narrows the view to zaps
// at or after the given unix timestamp, and since with an empty value
// restores the full feed.
func (h *DashboardHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var view []model.Transaction
	switch {
	case query.Has("since"):
		raw := query.Get("since")
		if raw == "" {
			view = h.analytics.ApplyWindow(nil)
			break
		}
		ts, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "since must be a unix timestamp"})
			return
		}
		view = h.analytics.ApplyWindow(&ts)

	case query.Has("sort"):
		key := model.SortKey(query.Get("sort"))
		if key != model.SortByAmount && key != model.SortByTime {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "sort must be amount or occurredAt"})
			return
		}
		view = h.analytics.SortBy(key)

	default:
		view = h.analytics.View()
	}

	h.writeJSON(w, http.StatusOK, feedResponse{
		Transactions: view,
		Count:        len(view),
		SortedBy:     string(h.analytics.ActiveSort()),
	})
}

// GetActors returns the distinct resolved senders among outbound zaps.
func (h *DashboardHandler) GetActors(w http.ResponseWriter, r *http.Request) {
	actors := h.analytics.Actors()
	h.writeJSON(w, http.StatusOK, actorsResponse{Actors: actors, Count: len(actors)})
}

// Health reports server health.
func (h *DashboardHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *DashboardHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("response not written", zap.Error(err))
	}
}
