// Package types contains the read shapes served by the HTTP API.
package types

import (
	"time"

	"github.com/okian/alpe/internal/domain/chart"
	"github.com/okian/alpe/internal/domain/model"
)

// RecordView is one plotted record with its position on the surface.
type RecordView struct {
	Index       int     `json:"index"`
	Year        int     `json:"year"`
	Time        string  `json:"time"`
	Seconds     int     `json:"seconds"`
	Name        string  `json:"name"`
	Nationality string  `json:"nationality"`
	Doping      string  `json:"doping,omitempty"`
	URL         string  `json:"url,omitempty"`
	CX          float64 `json:"cx"`
	CY          float64 `json:"cy"`
	Fill        string  `json:"fill"`
}

// RecordsResponse is the body of GET /api/records.
type RecordsResponse struct {
	Count   int          `json:"count"`
	Doping  int          `json:"doping"`
	Records []RecordView `json:"records"`
}

// TooltipView is the body of GET /api/tooltip.
type TooltipView struct {
	Index      int      `json:"index"`
	Visible    bool     `json:"visible"`
	Opacity    float64  `json:"opacity"`
	Left       float64  `json:"left"`
	Top        float64  `json:"top"`
	DataYear   int      `json:"data_year"`
	Lines      []string `json:"lines"`
	Allegation string   `json:"allegation,omitempty"`
}

// NewRecordView joins a record with the circle drawn for it.
func NewRecordView(r model.Record, t time.Duration, p chart.Point) RecordView {
	return RecordView{
		Index:       p.Index,
		Year:        r.Year,
		Time:        r.Time,
		Seconds:     int(t / time.Second),
		Name:        r.Name,
		Nationality: r.Nationality,
		Doping:      r.Doping,
		URL:         r.URL,
		CX:          p.CX,
		CY:          p.CY,
		Fill:        p.Fill,
	}
}

// NewRecordsResponse lists every point of scene with its record from ds.
func NewRecordsResponse(ds *model.Dataset, scene chart.Scene) RecordsResponse {
	views := make([]RecordView, 0, len(scene.Points))
	for _, p := range scene.Points {
		views = append(views, NewRecordView(ds.Record(p.Index), ds.Time(p.Index), p))
	}
	return RecordsResponse{
		Count:   len(views),
		Doping:  ds.DopingCount(),
		Records: views,
	}
}

// NewTooltipView flattens a tooltip state.
func NewTooltipView(t chart.Tooltip) TooltipView {
	return TooltipView{
		Index:      t.Index,
		Visible:    t.Visible,
		Opacity:    t.Opacity,
		Left:       t.Left,
		Top:        t.Top,
		DataYear:   t.DataYear,
		Lines:      t.Content.Lines(),
		Allegation: t.Content.Allegation,
	}
}
