package chart

import (
	"time"

	"github.com/okian/alpe/internal/domain/model"
	"github.com/okian/alpe/internal/domain/scale"
)

// Domains are the padded data bounds both scales are built from.
type Domains struct {
	MinYear, MaxYear int
	MinTime, MaxTime time.Duration
}

// ComputeDomains widens the year bounds by layout.YearPadding on each side
// and adds layout.TimePadding to the slowest time.
func ComputeDomains(ds *model.Dataset, layout Layout) (Domains, error) {
	if ds == nil || ds.Len() == 0 {
		return Domains{}, ErrNoDataset
	}
	first := ds.Record(0)
	d := Domains{
		MinYear: first.Year,
		MaxYear: first.Year,
		MinTime: ds.Time(0),
		MaxTime: ds.Time(0),
	}
	for i := 1; i < ds.Len(); i++ {
		year, t := ds.Record(i).Year, ds.Time(i)
		d.MinYear = min(d.MinYear, year)
		d.MaxYear = max(d.MaxYear, year)
		d.MinTime = min(d.MinTime, t)
		d.MaxTime = max(d.MaxTime, t)
	}
	d.MinYear -= layout.YearPadding
	d.MaxYear += layout.YearPadding
	d.MaxTime += layout.TimePadding
	return d, nil
}

// BuildXScale maps years onto [pad.left, width - pad.left].
func BuildXScale(d Domains, layout Layout) scale.Linear {
	return scale.NewLinear(
		float64(d.MinYear), float64(d.MaxYear),
		layout.Padding.Left, layout.Width-layout.Padding.Left,
	)
}

// BuildYScale maps times onto [pad.top, height - pad.bottom]; faster times
// are drawn higher.
func BuildYScale(d Domains, layout Layout) scale.Duration {
	return scale.NewDuration(
		d.MinTime, d.MaxTime,
		layout.Padding.Top, layout.Height-layout.Padding.Bottom,
	)
}
