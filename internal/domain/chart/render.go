package chart

import (
	"github.com/okian/alpe/internal/domain/model"
	"github.com/okian/alpe/internal/domain/scale"
)

// yearDigits is the significant-digit precision of x tick labels.
const yearDigits = 4

// RenderAxes builds the bottom year axis and the left MM:SS axis.
func RenderAxes(x scale.Linear, y scale.Duration, layout Layout) (Axis, Axis) {
	xr0, xr1 := x.Range()
	xAxis := Axis{
		ID:         "x-axis",
		Orient:     Bottom,
		TranslateY: layout.Height - layout.Padding.Bottom,
		RangeStart: xr0,
		RangeEnd:   xr1,
	}
	for _, v := range x.Ticks(layout.TickCount) {
		xAxis.Ticks = append(xAxis.Ticks, Tick{Offset: x.Map(v), Label: scale.FormatSignificant(v, yearDigits)})
	}

	yr0, yr1 := y.Range()
	yAxis := Axis{
		ID:         "y-axis",
		Orient:     Left,
		TranslateX: layout.Padding.Left,
		RangeStart: yr0,
		RangeEnd:   yr1,
	}
	for _, d := range y.Ticks(layout.TickCount) {
		yAxis.Ticks = append(yAxis.Ticks, Tick{Offset: y.Map(d), Label: scale.FormatMinSec(d)})
	}
	return xAxis, yAxis
}

// RenderPoints draws one circle per record, in dataset order.
func RenderPoints(ds *model.Dataset, x scale.Linear, y scale.Duration, layout Layout, palette Palette) []Point {
	points := make([]Point, ds.Len())
	for i := range points {
		rec := ds.Record(i)
		points[i] = Point{
			Index:       i,
			CX:          x.Map(float64(rec.Year)),
			CY:          y.Map(ds.Time(i)),
			R:           layout.PointRadius,
			Class:       pointClass,
			Fill:        palette.ColorOf(rec),
			Stroke:      pointStroke,
			StrokeWidth: pointStrokeWidth,
			Opacity:     pointOpacity,
			XValue:      rec.Year,
			YValue:      model.AnchoredTime(ds.Time(i)),
			Doping:      rec.HasDoping(),
		}
	}
	return points
}

// RenderLegend draws the bordered legend box at the right edge, vertically
// ending at the middle of the surface.
func RenderLegend(layout Layout, palette Palette) Legend {
	w, h, right := layout.Width, layout.Height, layout.Padding.Right
	top := h/2 - legendHeight
	boxX := w - right - legendBox - legendPadding
	labelX := w - right - legendWidth + legendPadding

	swatch := func(doping bool, row int) Swatch {
		offset := float64(row) * (legendBox + legendPadding)
		return Swatch{
			Doping: doping,
			Box: Rect{
				X:      boxX,
				Y:      top + legendPadding + offset,
				Width:  legendBox,
				Height: legendBox,
				Fill:   palette.Color(doping),
			},
			Label: Text{
				Content: Label(doping),
				X:       labelX,
				Y:       top + legendBaseline + legendPadding + offset,
			},
		}
	}

	return Legend{
		Frame: Rect{
			ID:          "legend",
			X:           w - legendWidth - right,
			Y:           top,
			Width:       legendWidth,
			Height:      legendHeight,
			Fill:        "none",
			Stroke:      "black",
			StrokeWidth: 1,
		},
		Swatches: []Swatch{swatch(false, 0), swatch(true, 1)},
	}
}

func renderTexts(layout Layout, texts Texts) []Text {
	return []Text{
		{ID: "title", Content: texts.Title, X: layout.Width / 4, Y: 40, FontSize: "2rem"},
		{ID: "subtitle", Content: texts.Subtitle, X: layout.Width / 3, Y: 70, FontSize: "1.5rem"},
		{
			ID:      "y-axis-title",
			Content: texts.YAxisTitle,
			X:       layout.Padding.Left / 3,
			Y:       (layout.Height - layout.Padding.Bottom) / 2,
			Rotate:  -90,
		},
	}
}
