// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/alpe/internal/app"
	"github.com/okian/alpe/internal/domain/chart"
	"github.com/okian/alpe/internal/domain/model"
)

// Dependencies is what the chart handlers read from the service.
type Dependencies interface {
	Renderer(ctx context.Context) (*chart.Renderer, error)
	Scene(ctx context.Context) (chart.Scene, error)
	Dataset(ctx context.Context) (*model.Dataset, error)
	Tooltip(ctx context.Context, index int, at chart.Pointer) (chart.Tooltip, error)
}

// Server wires HTTP routes for the chart API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	recordsHandler *RecordsHandler
	tooltipHandler *TooltipHandler
	chartHandler   *ChartHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		recordsHandler: NewRecordsHandler(deps),
		tooltipHandler: NewTooltipHandler(deps),
		chartHandler:   NewChartHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", route(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", route(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/records", route(s.recordsHandler.HandleGetRecords, "records"))
	mux.HandleFunc("/api/tooltip", route(s.tooltipHandler.HandleGetTooltip, "tooltip"))
	mux.HandleFunc("/chart.svg", route(s.chartHandler.HandleSVG, "chart_svg"))
	mux.HandleFunc("/chart.png", route(s.chartHandler.HandlePNG, "chart_png"))
	mux.HandleFunc("/chart/interactive", route(s.chartHandler.HandleInteractive, "chart_interactive"))
}

// route applies the standard middleware chain.
func route(h http.HandlerFunc, endpoint string) http.HandlerFunc {
	return RequestIDMiddleware(MetricsMiddleware(getOnly(h), endpoint))
}

func getOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		next(w, r)
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError translates service errors to the JSON envelope.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNoChart):
		writeError(w, http.StatusServiceUnavailable, "no_chart", err)
	case errors.Is(err, chart.ErrPointNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal", err)
	}
}
