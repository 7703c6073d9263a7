// Package scale maps data values (years, ascent durations) to pixel
// coordinates and generates readable axis ticks for them.
package scale

import (
	"math"
	"strconv"
)

// Linear maps a numeric domain [d0,d1] onto a pixel range [r0,r1].
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear builds a linear scale. The range may be inverted (r0 > r1).
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Domain returns the domain bounds.
func (s Linear) Domain() (float64, float64) { return s.d0, s.d1 }

// Range returns the pixel bounds.
func (s Linear) Range() (float64, float64) { return s.r0, s.r1 }

// Map converts a domain value to a pixel. A collapsed domain maps every
// value to the middle of the range.
func (s Linear) Map(v float64) float64 {
	if s.d1 == s.d0 {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + (v-s.d0)/(s.d1-s.d0)*(s.r1-s.r0)
}

// Invert converts a pixel back to a domain value.
func (s Linear) Invert(px float64) float64 {
	if s.r1 == s.r0 {
		return (s.d0 + s.d1) / 2
	}
	return s.d0 + (px-s.r0)/(s.r1-s.r0)*(s.d1-s.d0)
}

// Ticks returns roughly count evenly spaced values inside the domain using
// 1, 2, 5 multiples of a power of ten.
func (s Linear) Ticks(count int) []float64 {
	lo, hi := math.Min(s.d0, s.d1), math.Max(s.d0, s.d1)
	if count <= 0 {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}
	step := niceStep(hi-lo, count)
	first, last := math.Ceil(lo/step), math.Floor(hi/step)
	ticks := make([]float64, 0, int(last-first)+1)
	for k := first; k <= last; k++ {
		ticks = append(ticks, k*step)
	}
	return ticks
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// niceStep picks the 1/2/5x10^n step closest to span/count.
func niceStep(span float64, count int) float64 {
	step := span / float64(count)
	power := math.Floor(math.Log10(step))
	magnitude := math.Pow(10, power)
	err := step / magnitude
	switch {
	case err >= e10:
		return 10 * magnitude
	case err >= e5:
		return 5 * magnitude
	case err >= e2:
		return 2 * magnitude
	default:
		return magnitude
	}
}

// FormatSignificant renders v with at most digits significant digits and no
// trailing zeros, so years print as "1994".
func FormatSignificant(v float64, digits int) string {
	return strconv.FormatFloat(v, 'g', digits, 64)
}
