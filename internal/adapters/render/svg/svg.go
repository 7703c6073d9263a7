// Package svg renders a chart.Scene as SVG markup and wraps it in an HTML
// page with the hover tooltip.
package svg

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/okian/alpe/internal/domain/chart"
)

// Tick mark geometry, matching d3-axis.
const (
	tickSize    = 6
	tickPadding = 3
)

// Chart renders scene as a standalone <svg> element.
func Chart(scene chart.Scene) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		sw := &stickyWriter{w: w}
		writeChart(sw, scene)
		return sw.err
	})
}

// stickyWriter remembers the first write error so the drawing code can
// stay linear.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func attr(s string) string {
	return templ.EscapeString(s)
}

func writeChart(w *stickyWriter, s chart.Scene) {
	w.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s" style="border: 1px solid black">`,
		num(s.Width), num(s.Height), num(s.Width), num(s.Height))

	for _, t := range s.Texts {
		writeText(w, t)
	}
	writeAxis(w, s.XAxis)
	writeAxis(w, s.YAxis)

	for _, p := range s.Points {
		w.printf(`<circle class="%s" cx="%s" cy="%s" r="%s" fill="%s" stroke="%s" stroke-width="%s" opacity="%s" data-xvalue="%d" data-yvalue="%s" index="%d"/>`,
			attr(p.Class), num(p.CX), num(p.CY), num(p.R), attr(p.Fill), attr(p.Stroke),
			num(p.StrokeWidth), num(p.Opacity), p.XValue, p.YValue.Format(time.RFC3339), p.Index)
	}

	writeRect(w, s.Legend.Frame)
	for _, sw := range s.Legend.Swatches {
		writeRect(w, sw.Box)
		writeText(w, sw.Label)
	}
	w.printf(`</svg>`)
}

func writeText(w *stickyWriter, t chart.Text) {
	var b strings.Builder
	if t.ID != "" {
		b.WriteString(` id="` + attr(t.ID) + `"`)
	}
	if t.Rotate != 0 {
		fmt.Fprintf(&b, ` transform="translate(%s,%s) rotate(%s)"`, num(t.X), num(t.Y), num(t.Rotate))
	} else {
		fmt.Fprintf(&b, ` x="%s" y="%s"`, num(t.X), num(t.Y))
	}
	if t.FontSize != "" {
		b.WriteString(` font-size="` + attr(t.FontSize) + `"`)
	}
	w.printf(`<text%s>%s</text>`, b.String(), attr(t.Content))
}

func writeRect(w *stickyWriter, r chart.Rect) {
	id := ""
	if r.ID != "" {
		id = ` id="` + attr(r.ID) + `"`
	}
	stroke := ""
	if r.Stroke != "" {
		stroke = fmt.Sprintf(` stroke="%s" stroke-width="%s"`, attr(r.Stroke), num(r.StrokeWidth))
	}
	w.printf(`<rect%s x="%s" y="%s" width="%s" height="%s" fill="%s"%s/>`,
		id, num(r.X), num(r.Y), num(r.Width), num(r.Height), attr(r.Fill), stroke)
}

func writeAxis(w *stickyWriter, a chart.Axis) {
	w.printf(`<g id="%s" transform="translate(%s,%s)" fill="none" font-size="10" font-family="sans-serif" text-anchor="%s">`,
		attr(a.ID), num(a.TranslateX), num(a.TranslateY), anchor(a.Orient))

	switch a.Orient {
	case chart.Bottom:
		w.printf(`<path class="domain" stroke="currentColor" d="M%s,%dV0H%sV%d"/>`,
			num(a.RangeStart), tickSize, num(a.RangeEnd), tickSize)
		for _, t := range a.Ticks {
			w.printf(`<g class="tick" opacity="1" transform="translate(%s,0)"><line stroke="currentColor" y2="%d"/><text fill="currentColor" y="%d" dy="0.71em">%s</text></g>`,
				num(t.Offset), tickSize, tickSize+tickPadding, attr(t.Label))
		}
	case chart.Left:
		w.printf(`<path class="domain" stroke="currentColor" d="M-%d,%sH0V%sH-%d"/>`,
			tickSize, num(a.RangeStart), num(a.RangeEnd), tickSize)
		for _, t := range a.Ticks {
			w.printf(`<g class="tick" opacity="1" transform="translate(0,%s)"><line stroke="currentColor" x2="-%d"/><text fill="currentColor" x="-%d" dy="0.32em">%s</text></g>`,
				num(t.Offset), tickSize, tickSize+tickPadding, attr(t.Label))
		}
	}
	w.printf(`</g>`)
}

func anchor(o chart.Orientation) string {
	if o == chart.Left {
		return "end"
	}
	return "middle"
}
