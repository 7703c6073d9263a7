// Package service loads the dataset once and keeps the rendered chart that
// the HTTP handlers and exporters read.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/alpe/internal/adapters/source"
	"github.com/okian/alpe/internal/domain/chart"
	"github.com/okian/alpe/internal/domain/model"
	"github.com/okian/alpe/pkg/logger"
	"github.com/okian/alpe/pkg/metrics"
)

// Service owns the single fetch and the resulting immutable chart.
type Service struct {
	mu sync.RWMutex

	// Components
	source source.Source
	logger logger.Logger

	// Rendering configuration
	layout  chart.Layout
	palette chart.Palette
	texts   chart.Texts

	// State
	started   bool
	startedAt time.Time
	renderer  *chart.Renderer
	scene     *chart.Scene
	lastErr   error
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSource sets where the dataset is read from.
func WithSource(src source.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithLayout sets the chart geometry.
func WithLayout(l chart.Layout) Option {
	return func(s *Service) {
		s.layout = l
	}
}

// WithPalette sets the category colors.
func WithPalette(p chart.Palette) Option {
	return func(s *Service) {
		s.palette = p
	}
}

// WithTexts sets the surface labels.
func WithTexts(t chart.Texts) Option {
	return func(s *Service) {
		s.texts = t
	}
}

// New constructs a Service reading the public dataset by default.
func New(opts ...Option) *Service {
	s := &Service{
		layout:  chart.DefaultLayout(),
		palette: chart.DefaultPalette(),
		texts:   chart.DefaultTexts(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start fetches the dataset and renders the chart. A failed fetch is logged
// and counted; the service keeps running without a chart and Start returns
// nil. Calling Start again is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.source == nil {
		s.source = source.New(source.DefaultLocation)
	}
	s.started = true
	s.startedAt = time.Now()

	s.logger.Info(ctx, "loading dataset", logger.String("location", s.source.Location()))

	r, err := s.load(ctx)
	if err != nil {
		s.lastErr = err
		metrics.RecordDatasetFetch(metrics.OutcomeFailure)
		s.logger.Error(ctx, "dataset unavailable, serving without chart",
			logger.String("location", s.source.Location()),
			logger.Error(err),
		)
		return nil
	}

	start := time.Now()
	scene := r.Render()
	metrics.RecordRender("scene")
	metrics.RecordRenderDuration("scene", float64(time.Since(start).Milliseconds()))

	s.renderer = r
	s.scene = &scene
	metrics.RecordDatasetFetch(metrics.OutcomeSuccess)
	metrics.UpdateDatasetRecords(r.Dataset().Len(), r.Dataset().DopingCount())

	s.logger.Info(ctx, "chart rendered",
		logger.Int("records", r.Dataset().Len()),
		logger.Int("doping", r.Dataset().DopingCount()),
		logger.Int("minYear", r.Domains().MinYear),
		logger.Int("maxYear", r.Domains().MaxYear),
	)
	return nil
}

func (s *Service) load(ctx context.Context) (*chart.Renderer, error) {
	start := time.Now()
	records, err := s.source.Fetch(ctx)
	metrics.RecordDatasetFetchDuration(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return nil, err
	}

	ds, err := model.NewDataset(records)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	r, err := chart.New(ds,
		chart.WithLayout(s.layout),
		chart.WithPalette(s.palette),
		chart.WithTexts(s.texts),
	)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	return r, nil
}

// Stop releases the rendered chart.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.renderer = nil
	s.scene = nil
	s.lastErr = nil
	s.logger.Info(context.Background(), "chart service stopped")
}

// Renderer returns the chart renderer or ErrNoChart.
func (s *Service) Renderer(_ context.Context) (*chart.Renderer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.renderer == nil {
		return nil, ErrNoChart
	}
	return s.renderer, nil
}

// Scene returns the rendered scene or ErrNoChart.
func (s *Service) Scene(_ context.Context) (chart.Scene, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.scene == nil {
		return chart.Scene{}, ErrNoChart
	}
	return *s.scene, nil
}

// Dataset returns the loaded dataset or ErrNoChart.
func (s *Service) Dataset(ctx context.Context) (*model.Dataset, error) {
	r, err := s.Renderer(ctx)
	if err != nil {
		return nil, err
	}
	return r.Dataset(), nil
}

// Tooltip returns the hover state for point index at the pointer position.
func (s *Service) Tooltip(ctx context.Context, index int, at chart.Pointer) (chart.Tooltip, error) {
	r, err := s.Renderer(ctx)
	if err != nil {
		metrics.RecordTooltipLookup(metrics.OutcomeMissing)
		return chart.Tooltip{}, err
	}
	t, err := r.Hover(index, at)
	if err != nil {
		metrics.RecordTooltipLookup(metrics.OutcomeInvalid)
		s.logger.Debug(ctx, "tooltip lookup failed", logger.Int("index", index), logger.Error(err))
		return chart.Tooltip{}, err
	}
	metrics.RecordTooltipLookup(metrics.OutcomeSuccess)
	return t, nil
}

// Tooltips returns the tooltip content of every point; empty without a chart.
func (s *Service) Tooltips(ctx context.Context) []chart.Content {
	r, err := s.Renderer(ctx)
	if err != nil {
		return nil
	}
	return r.Tooltips()
}

// Texts returns the configured surface labels.
func (s *Service) Texts() chart.Texts {
	return s.texts
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":  s.started,
		"hasChart": s.scene != nil,
		"width":    s.layout.Width,
		"height":   s.layout.Height,
	}
	if s.source != nil {
		stats["source"] = s.source.Location()
	}
	if s.started {
		stats["uptimeSeconds"] = int(time.Since(s.startedAt).Seconds())
	}
	if s.lastErr != nil {
		stats["lastError"] = s.lastErr.Error()
	}
	if s.renderer != nil {
		ds := s.renderer.Dataset()
		d := s.renderer.Domains()
		stats["records"] = ds.Len()
		stats["dopingRecords"] = ds.DopingCount()
		stats["minYear"] = d.MinYear
		stats["maxYear"] = d.MaxYear
		stats["fastest"] = d.MinTime.String()
		stats["slowest"] = (d.MaxTime - s.renderer.Layout().TimePadding).String()
	}
	return stats
}
