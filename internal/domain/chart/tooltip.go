package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/alpe/internal/domain/model"
)

// tooltipOpacity is the opacity of a visible tooltip.
const tooltipOpacity = 0.8

// Pointer is a pointer position relative to the chart container.
type Pointer struct {
	X, Y float64
}

// Content is the text shown for one record.
type Content struct {
	Heading    string `json:"heading"`
	Detail     string `json:"detail"`
	Allegation string `json:"allegation,omitempty"`
}

// ContentFor formats a record as "Name - Nationality", "Year - Time: MM:SS"
// and the allegation, if any.
func ContentFor(r model.Record) Content {
	return Content{
		Heading:    r.Name + " - " + r.Nationality,
		Detail:     strconv.Itoa(r.Year) + " - Time: " + r.Time,
		Allegation: r.Doping,
	}
}

// Lines returns the content one line per entry. An allegation follows an
// empty separator line.
func (c Content) Lines() []string {
	lines := []string{c.Heading, c.Detail}
	if c.Allegation != "" {
		lines = append(lines, "", c.Allegation)
	}
	return lines
}

// Text joins Lines with newlines.
func (c Content) Text() string {
	return strings.Join(c.Lines(), "\n")
}

// Tooltip is the state of the single tooltip overlay.
type Tooltip struct {
	Visible  bool    `json:"visible"`
	Opacity  float64 `json:"opacity"`
	Left     float64 `json:"left"`
	Top      float64 `json:"top"`
	DataYear int     `json:"data_year,omitempty"`
	Index    int     `json:"index"`
	Content  Content `json:"content"`
}

// Hover returns the tooltip shown while the pointer is over point index.
func (r *Renderer) Hover(index int, at Pointer) (Tooltip, error) {
	if index < 0 || index >= r.ds.Len() {
		return Tooltip{}, fmt.Errorf("%w: index %d of %d", ErrPointNotFound, index, r.ds.Len())
	}
	rec := r.ds.Record(index)
	return Tooltip{
		Visible:  true,
		Opacity:  tooltipOpacity,
		Left:     at.X,
		Top:      at.Y,
		DataYear: rec.Year,
		Index:    index,
		Content:  ContentFor(rec),
	}, nil
}

// Unhover hides t. Position and content are kept; only visibility changes.
func Unhover(t Tooltip) Tooltip {
	t.Visible = false
	t.Opacity = 0
	return t
}

// Tooltips returns the content of every point, indexed like Scene.Points.
func (r *Renderer) Tooltips() []Content {
	out := make([]Content, r.ds.Len())
	for i := range out {
		out[i] = ContentFor(r.ds.Record(i))
	}
	return out
}
