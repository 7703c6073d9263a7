package api

import (
	"net/http"
)

// StatsProvider reports the service state shown on /stats.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// StatsHandler serves GET /stats.
type StatsHandler struct {
	statsProvider StatsProvider
}

// NewStatsHandler creates a stats handler. A nil provider answers 503.
func NewStatsHandler(statsProvider StatsProvider) *StatsHandler {
	return &StatsHandler{statsProvider: statsProvider}
}

// HandleStats writes the provider's stats with the request id attached.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if h.statsProvider == nil {
		writeError(w, http.StatusServiceUnavailable, "no_stats", nil)
		return
	}
	stats := h.statsProvider.GetStats()
	if id := RequestID(r.Context()); id != "" {
		stats["request_id"] = id
	}
	writeJSON(w, http.StatusOK, stats)
}
