package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/okian/alpe/internal/adapters/render/echarts"
	"github.com/okian/alpe/internal/adapters/render/png"
	"github.com/okian/alpe/internal/adapters/render/svg"
	"github.com/okian/alpe/pkg/metrics"
)

// ChartHandler serves the chart in each export format.
type ChartHandler struct {
	deps Dependencies
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(deps Dependencies) *ChartHandler {
	return &ChartHandler{deps: deps}
}

// HandleSVG handles GET /chart.svg requests.
func (h *ChartHandler) HandleSVG(w http.ResponseWriter, r *http.Request) {
	scene, err := h.deps.Scene(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.serve(w, "svg", "image/svg+xml", func(buf *bytes.Buffer) error {
		return svg.Chart(scene).Render(r.Context(), buf)
	})
}

// HandlePNG handles GET /chart.png requests.
func (h *ChartHandler) HandlePNG(w http.ResponseWriter, r *http.Request) {
	rd, err := h.deps.Renderer(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.serve(w, "png", "image/png", func(buf *bytes.Buffer) error {
		return png.Render(buf, rd)
	})
}

// HandleInteractive handles GET /chart/interactive requests.
func (h *ChartHandler) HandleInteractive(w http.ResponseWriter, r *http.Request) {
	rd, err := h.deps.Renderer(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.serve(w, "echarts", "text/html; charset=utf-8", func(buf *bytes.Buffer) error {
		return echarts.Render(buf, rd)
	})
}

// serve renders into a buffer first so a failed render still yields a
// clean error response.
func (h *ChartHandler) serve(w http.ResponseWriter, format, contentType string, render func(*bytes.Buffer) error) {
	start := time.Now()
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		writeError(w, http.StatusInternalServerError, "render_failed", fmt.Errorf("%w: %w", ErrRender, err))
		return
	}
	metrics.RecordRender(format)
	metrics.RecordRenderDuration(format, float64(time.Since(start).Milliseconds()))

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
