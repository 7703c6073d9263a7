// Package echarts renders the chart as an interactive go-echarts page.
package echarts

import (
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/okian/alpe/internal/domain/chart"
	"github.com/okian/alpe/internal/domain/model"
)

// Scatter builds a scatter chart with one series per category, colored
// from the same palette as the SVG.
func Scatter(r *chart.Renderer) *charts.Scatter {
	layout, texts, d := r.Layout(), r.Texts(), r.Domains()
	palette := r.Palette()

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: texts.Title,
			Width:     fmt.Sprintf("%dpx", int(layout.Width)),
			Height:    fmt.Sprintf("%dpx", int(layout.Height)),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    texts.Title,
			Subtitle: texts.Subtitle,
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:  opts.Bool(true),
			Right: "5%",
			Top:   "middle",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: "{b}",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Year",
			Type: "value",
			Min:  d.MinYear,
			Max:  d.MaxYear,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:    texts.YAxisTitle + " (s)",
			Type:    "value",
			Min:     int(d.MinTime.Seconds()),
			Max:     int(d.MaxTime.Seconds()),
			Inverse: opts.Bool(true),
		}),
	)

	for _, doping := range []bool{false, true} {
		items := seriesData(r.Dataset(), doping)
		if len(items) == 0 {
			continue
		}
		sc.AddSeries(chart.Label(doping), items,
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color:       palette.Color(doping),
				BorderColor: "black",
			}),
		)
	}
	return sc
}

func seriesData(ds *model.Dataset, doping bool) []opts.ScatterData {
	var items []opts.ScatterData
	for i := 0; i < ds.Len(); i++ {
		rec := ds.Record(i)
		if rec.HasDoping() != doping {
			continue
		}
		items = append(items, opts.ScatterData{
			Name:       tooltipHTML(chart.ContentFor(rec)),
			Value:      []any{rec.Year, int(ds.Time(i).Seconds())},
			SymbolSize: 16,
		})
	}
	return items
}

// tooltipHTML joins the escaped tooltip lines with line breaks.
func tooltipHTML(c chart.Content) string {
	lines := c.Lines()
	for i := range lines {
		lines[i] = templ.EscapeString(lines[i])
	}
	return strings.Join(lines, "<br>")
}

// Render writes the interactive page to w.
func Render(w io.Writer, r *chart.Renderer) error {
	if err := Scatter(r).Render(w); err != nil {
		return fmt.Errorf("render echarts: %w", err)
	}
	return nil
}
