// Package chart builds the declarative scene of the ascent-time scatter
// plot: scales, axes, one circle per record, the legend and the tooltip.
// Renderers in internal/adapters/render consume the Scene.
package chart

import "time"

// Scene describes every visual element of the chart in surface pixels.
type Scene struct {
	Width, Height float64
	Texts         []Text
	XAxis         Axis
	YAxis         Axis
	Points        []Point
	Legend        Legend
	Tooltip       Tooltip
}

// Text is a free label. Rotate is in degrees and applied after translation.
type Text struct {
	ID       string
	Content  string
	X, Y     float64
	Rotate   float64
	FontSize string
}

// Orientation is the side an axis is drawn on.
type Orientation int

const (
	Bottom Orientation = iota
	Left
)

// Axis is a translated group with a domain line and ticks.
type Axis struct {
	ID                   string
	Orient               Orientation
	TranslateX           float64
	TranslateY           float64
	RangeStart, RangeEnd float64
	Ticks                []Tick
}

// Tick is a labeled position along the axis, in pixels.
type Tick struct {
	Offset float64
	Label  string
}

// Point is one rendered record.
type Point struct {
	Index       int
	CX, CY, R   float64
	Class       string
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
	XValue      int
	YValue      time.Time
	Doping      bool
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	ID            string
	X, Y          float64
	Width, Height float64
	Fill          string
	Stroke        string
	StrokeWidth   float64
}

// Swatch is one legend entry.
type Swatch struct {
	Doping bool
	Box    Rect
	Label  Text
}

// Legend is the bordered box explaining the two colors.
type Legend struct {
	Frame    Rect
	Swatches []Swatch
}
