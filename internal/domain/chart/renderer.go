package chart

import (
	"github.com/okian/alpe/internal/domain/model"
	"github.com/okian/alpe/internal/domain/scale"
)

// Renderer holds a dataset with its derived domains and scales. It is
// immutable after New and safe for concurrent use.
type Renderer struct {
	layout  Layout
	palette Palette
	texts   Texts

	ds      *model.Dataset
	domains Domains
	x       scale.Linear
	y       scale.Duration
}

// Option applies a configuration option to the Renderer.
type Option func(*Renderer)

// WithLayout overrides the default layout.
func WithLayout(l Layout) Option {
	return func(r *Renderer) {
		if l.Width > 0 && l.Height > 0 {
			r.layout = l
		}
	}
}

// WithPalette overrides the category colors.
func WithPalette(p Palette) Option {
	return func(r *Renderer) {
		if p.NonDoping != "" && p.Doping != "" {
			r.palette = p
		}
	}
}

// WithTexts overrides the surface labels.
func WithTexts(t Texts) Option {
	return func(r *Renderer) {
		r.texts = t
	}
}

// New derives domains and scales for ds.
func New(ds *model.Dataset, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		layout:  DefaultLayout(),
		palette: DefaultPalette(),
		texts:   DefaultTexts(),
		ds:      ds,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.layout.TickCount <= 0 {
		r.layout.TickCount = DefaultLayout().TickCount
	}

	d, err := ComputeDomains(ds, r.layout)
	if err != nil {
		return nil, err
	}
	r.domains = d
	r.x = BuildXScale(d, r.layout)
	r.y = BuildYScale(d, r.layout)
	return r, nil
}

// Render runs the whole drawing pass.
func (r *Renderer) Render() Scene {
	xAxis, yAxis := RenderAxes(r.x, r.y, r.layout)
	return Scene{
		Width:   r.layout.Width,
		Height:  r.layout.Height,
		Texts:   renderTexts(r.layout, r.texts),
		XAxis:   xAxis,
		YAxis:   yAxis,
		Points:  RenderPoints(r.ds, r.x, r.y, r.layout, r.palette),
		Legend:  RenderLegend(r.layout, r.palette),
		Tooltip: Tooltip{Index: -1},
	}
}

// Dataset returns the rendered dataset.
func (r *Renderer) Dataset() *model.Dataset { return r.ds }

// Domains returns the padded domains.
func (r *Renderer) Domains() Domains { return r.domains }

// XScale returns the year scale.
func (r *Renderer) XScale() scale.Linear { return r.x }

// YScale returns the time scale.
func (r *Renderer) YScale() scale.Duration { return r.y }

// Layout returns the effective layout.
func (r *Renderer) Layout() Layout { return r.layout }

// Palette returns the category colors.
func (r *Renderer) Palette() Palette { return r.palette }

// Texts returns the surface labels.
func (r *Renderer) Texts() Texts { return r.texts }
