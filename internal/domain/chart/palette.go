package chart

import "github.com/okian/alpe/internal/domain/model"

// Palette is the explicit two-entry category mapping shared by points and
// legend.
type Palette struct {
	NonDoping string
	Doping    string
}

// DefaultPalette returns the category10 pair used by the published chart.
func DefaultPalette() Palette {
	return Palette{NonDoping: "#ff7f0e", Doping: "#1f77b4"}
}

// Color returns the fill for a category.
func (p Palette) Color(doping bool) string {
	if doping {
		return p.Doping
	}
	return p.NonDoping
}

// ColorOf returns the fill for a record.
func (p Palette) ColorOf(r model.Record) string {
	return p.Color(r.HasDoping())
}

// Label returns the legend label for a category.
func Label(doping bool) string {
	if doping {
		return "Doping"
	}
	return "Non-doping"
}
