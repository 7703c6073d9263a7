package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/okian/alpe/internal/adapters/http/api"
	"github.com/okian/alpe/internal/adapters/http/site"
	"github.com/okian/alpe/internal/adapters/http/swagger"
	"github.com/okian/alpe/internal/adapters/render/png"
	"github.com/okian/alpe/internal/adapters/render/svg"
	"github.com/okian/alpe/internal/adapters/source"
	app "github.com/okian/alpe/internal/app"
	"github.com/okian/alpe/internal/config"
	"github.com/okian/alpe/internal/domain/chart"
	"github.com/okian/alpe/pkg/logger"
	"github.com/okian/alpe/pkg/metrics"
)

// newService maps configuration onto the chart service.
func newService(cfg *config.Config, log logger.Logger) *app.Service {
	src := source.New(cfg.DatasetURL,
		source.WithTimeout(cfg.FetchTimeout()),
		source.WithMaxBytes(cfg.MaxDatasetBytes),
	)
	return app.New(
		app.WithLogger(log),
		app.WithSource(src),
		app.WithLayout(layoutFrom(cfg)),
		app.WithPalette(chart.Palette{NonDoping: cfg.ColorNonDoping, Doping: cfg.ColorDoping}),
		app.WithTexts(chart.Texts{Title: cfg.Title, Subtitle: cfg.Subtitle, YAxisTitle: cfg.YAxisTitle}),
	)
}

func layoutFrom(cfg *config.Config) chart.Layout {
	l := chart.DefaultLayout()
	l.Width = float64(cfg.Width)
	l.Height = float64(cfg.Height)
	l.Padding = chart.Padding{
		Top:    float64(cfg.PadTop),
		Right:  float64(cfg.PadRight),
		Bottom: float64(cfg.PadBottom),
		Left:   float64(cfg.PadLeft),
	}
	l.PointRadius = cfg.PointRadius
	l.YearPadding = cfg.YearPadding
	l.TimePadding = cfg.TimePadding()
	return l
}

// newMux registers every route.
func newMux(ctx context.Context, svc *app.Service) *http.ServeMux {
	mux := http.NewServeMux()
	swagger.Register(ctx, mux)
	api.NewServer(svc, svc).Register(ctx, mux)
	site.Register(ctx, mux, svc)
	return mux
}

// exportFile writes the chart once, in the format named by the extension.
func exportFile(ctx context.Context, svc *app.Service, path string) (err error) {
	r, err := svc.Renderer(ctx)
	if err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".svg", ".png", ".html", ".htm":
	default:
		return fmt.Errorf("unsupported export format %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close export: %w", cerr)
		}
	}()

	start := time.Now()
	format := strings.TrimPrefix(ext, ".")
	switch ext {
	case ".svg":
		err = svg.Chart(r.Render()).Render(ctx, f)
	case ".png":
		err = png.Render(f, r)
	default:
		format = "html"
		err = exportPage(ctx, svc, f)
	}
	if err != nil {
		return err
	}
	metrics.RecordRender(format)
	metrics.RecordRenderDuration(format, float64(time.Since(start).Milliseconds()))
	return nil
}

// exportPage writes a self-contained page with inlined assets.
func exportPage(ctx context.Context, svc *app.Service, w io.Writer) error {
	css, err := site.Asset("style.css")
	if err != nil {
		return err
	}
	js, err := site.Asset("tooltip.js")
	if err != nil {
		return err
	}
	page := site.BuildPage(ctx, svc)
	page.InlineCSS = css
	page.InlineJS = js
	return svg.PageComponent(page).Render(ctx, w)
}
