// Package png renders the chart as a raster image with go-chart.
package png

import (
	"errors"
	"fmt"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/okian/alpe/internal/domain/chart"
	"github.com/okian/alpe/internal/domain/scale"
)

// ErrColor is returned for colors go-chart cannot resolve.
var ErrColor = errors.New("unsupported color")

// dotWidth is the go-chart dot radius matching the SVG circles.
const dotWidth = 8

// Chart builds the go-chart description of r: same domains, ticks and
// colors as the SVG, with faster times on top.
func Chart(r *chart.Renderer) gochart.Chart {
	layout, texts, d := r.Layout(), r.Texts(), r.Domains()
	palette := r.Palette()

	var xTicks []gochart.Tick
	for _, v := range r.XScale().Ticks(layout.TickCount) {
		xTicks = append(xTicks, gochart.Tick{Value: v, Label: scale.FormatSignificant(v, 4)})
	}
	var yTicks []gochart.Tick
	for _, t := range r.YScale().Ticks(layout.TickCount) {
		yTicks = append(yTicks, gochart.Tick{Value: t.Seconds(), Label: scale.FormatMinSec(t)})
	}

	ch := gochart.Chart{
		Title:  texts.Title,
		Width:  int(layout.Width),
		Height: int(layout.Height),
		Background: gochart.Style{Padding: gochart.Box{
			Top:    int(layout.Padding.Top) / 2,
			Left:   int(layout.Padding.Left) / 3,
			Right:  int(layout.Padding.Right),
			Bottom: int(layout.Padding.Bottom),
		}},
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: float64(d.MinYear), Max: float64(d.MaxYear)},
			Ticks: xTicks,
		},
		YAxis: gochart.YAxis{
			Name: texts.YAxisTitle,
			Range: &gochart.ContinuousRange{
				Min:        d.MinTime.Seconds(),
				Max:        d.MaxTime.Seconds(),
				Descending: true,
			},
			Ticks: yTicks,
		},
	}

	ds := r.Dataset()
	for _, doping := range []bool{false, true} {
		var xs, ys []float64
		for i := 0; i < ds.Len(); i++ {
			if ds.Record(i).HasDoping() != doping {
				continue
			}
			xs = append(xs, float64(ds.Record(i).Year))
			ys = append(ys, ds.Time(i).Seconds())
		}
		if len(xs) == 0 {
			continue
		}
		ch.Series = append(ch.Series, gochart.ContinuousSeries{
			Name:    chart.Label(doping),
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(seriesColor(palette, doping)),
		})
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	return ch
}

// pointStyle draws dots only, no connecting line.
func pointStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeWidth: gochart.Disabled,
		DotWidth:    dotWidth,
		DotColor:    col,
	}
}

// seriesColor resolves the category color, falling back to the default
// palette when the configured one is not understood by go-chart.
func seriesColor(p chart.Palette, doping bool) drawing.Color {
	if c, err := ParseColor(p.Color(doping)); err == nil {
		return c
	}
	c, _ := ParseColor(chart.DefaultPalette().Color(doping))
	return c
}

// ParseColor resolves a CSS-style color: #rgb, #rrggbb, rgb(), rgba() or a
// known name.
func ParseColor(s string) (drawing.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return drawing.Color{}, fmt.Errorf("%w: empty", ErrColor)
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if (len(hex) != 3 && len(hex) != 6) || strings.Trim(hex, "0123456789abcdefABCDEF") != "" {
			return drawing.Color{}, fmt.Errorf("%w: %q", ErrColor, s)
		}
		return drawing.ColorFromHex(hex), nil
	}
	c := drawing.ParseColor(strings.ToLower(s))
	if c.IsZero() {
		return drawing.Color{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	return c, nil
}

// Render writes r as a PNG image to w.
func Render(w io.Writer, r *chart.Renderer) error {
	ch := Chart(r)
	if err := ch.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}
