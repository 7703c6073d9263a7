package chart

import "time"

// Padding is the space between the drawing surface edge and the plot area.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Layout groups every geometric constant of the chart.
type Layout struct {
	Width, Height float64
	Padding       Padding
	PointRadius   float64

	// YearPadding widens the year domain on both sides so boundary points
	// are not drawn on the axis edge.
	YearPadding int
	// TimePadding is added to the slowest time.
	TimePadding time.Duration
	// TickCount is the target number of ticks per axis.
	TickCount int
}

// DefaultLayout is the 900x600 surface of the published chart.
func DefaultLayout() Layout {
	return Layout{
		Width:       900,
		Height:      600,
		Padding:     Padding{Top: 100, Right: 20, Bottom: 30, Left: 75},
		PointRadius: 8,
		YearPadding: 1,
		TimePadding: 15 * time.Second,
		TickCount:   10,
	}
}

// Texts are the fixed labels drawn on the surface.
type Texts struct {
	Title      string
	Subtitle   string
	YAxisTitle string
}

// DefaultTexts returns the published chart labels.
func DefaultTexts() Texts {
	return Texts{
		Title:      "Doping in Professional Bike Racing",
		Subtitle:   "35 Fastest times up Alpe d'Huez",
		YAxisTitle: "Time (minutes)",
	}
}

// Legend geometry.
const (
	legendWidth    = 125
	legendHeight   = 68
	legendPadding  = 10
	legendBox      = 18
	legendBaseline = 14
)

// Point styling.
const (
	pointStroke      = "black"
	pointStrokeWidth = 1
	pointOpacity     = 0.9
	pointClass       = "dot"
)
