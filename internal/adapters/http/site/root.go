// Package site serves the chart page and its static assets.
package site

import (
	"context"
	"errors"
	"net/http"

	"github.com/a-h/templ"

	"github.com/okian/alpe/internal/adapters/render/svg"
	"github.com/okian/alpe/internal/domain/chart"
	"github.com/okian/alpe/pkg/metrics"
)

// Error constants
var (
	ErrAsset = errors.New("static asset unavailable")
)

// ChartSource is what the page needs from the service.
type ChartSource interface {
	Scene(ctx context.Context) (chart.Scene, error)
	Tooltips(ctx context.Context) []chart.Content
	Texts() chart.Texts
}

// Register attaches the page and static asset routes to mux.
func Register(_ context.Context, mux *http.ServeMux, src ChartSource) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(FS())))
	mux.Handle("/", NewRootHandler(src))
}

// BuildPage assembles the page model. Without a chart the scene is nil and
// the page shows an empty container.
func BuildPage(ctx context.Context, src ChartSource) svg.Page {
	page := svg.Page{Title: src.Texts().Title}
	if scene, err := src.Scene(ctx); err == nil {
		page.Scene = &scene
		page.Tooltips = src.Tooltips(ctx)
	}
	return page
}

// RootHandler handles root path requests
type RootHandler struct {
	src ChartSource
}

// NewRootHandler creates a new root handler
func NewRootHandler(src ChartSource) *RootHandler {
	return &RootHandler{src: src}
}

// ServeHTTP renders the chart page at / and 404s everything else.
func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	page := BuildPage(r.Context(), h.src)
	if page.Scene != nil {
		metrics.RecordRender("page")
	}
	templ.Handler(svg.PageComponent(page)).ServeHTTP(w, r)
}
