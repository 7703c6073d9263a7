package scale

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Duration maps a duration domain onto a pixel range. It is the time scale
// of the y axis: only the duration since the anchor matters.
type Duration struct {
	lin      Linear
	min, max time.Duration
}

// NewDuration builds a duration scale.
func NewDuration(min, max time.Duration, r0, r1 float64) Duration {
	return Duration{
		lin: NewLinear(min.Seconds(), max.Seconds(), r0, r1),
		min: min,
		max: max,
	}
}

// Domain returns the duration bounds.
func (s Duration) Domain() (time.Duration, time.Duration) { return s.min, s.max }

// Range returns the pixel bounds.
func (s Duration) Range() (float64, float64) { return s.lin.Range() }

// Map converts a duration to a pixel.
func (s Duration) Map(d time.Duration) float64 {
	return s.lin.Map(d.Seconds())
}

// Invert converts a pixel back to a duration, rounded to the millisecond.
func (s Duration) Invert(px float64) time.Duration {
	secs := s.lin.Invert(px)
	return time.Duration(math.Round(secs*1000)) * time.Millisecond
}

// tickIntervals are the calendar-like steps a time axis may use.
var tickIntervals = []time.Duration{
	time.Second,
	5 * time.Second,
	15 * time.Second,
	30 * time.Second,
	time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
	time.Hour,
	3 * time.Hour,
	6 * time.Hour,
	12 * time.Hour,
}

// TickInterval picks the interval whose size is closest (by ratio) to
// span/count.
func TickInterval(span time.Duration, count int) time.Duration {
	if count <= 0 || span <= 0 {
		return 0
	}
	target := span / time.Duration(count)
	i := sort.Search(len(tickIntervals), func(i int) bool { return tickIntervals[i] > target })
	switch i {
	case 0:
		ms := niceStep(float64(span)/float64(time.Millisecond), count)
		return max(time.Millisecond, time.Duration(ms*float64(time.Millisecond)))
	case len(tickIntervals):
		hours := niceStep(span.Hours(), count)
		return time.Duration(hours * float64(time.Hour))
	}
	lo, hi := tickIntervals[i-1], tickIntervals[i]
	if float64(target)/float64(lo) < float64(hi)/float64(target) {
		return lo
	}
	return hi
}

// Ticks returns interval-aligned durations inside the domain.
func (s Duration) Ticks(count int) []time.Duration {
	lo, hi := min(s.min, s.max), max(s.min, s.max)
	if lo == hi {
		return []time.Duration{lo}
	}
	step := TickInterval(hi-lo, count)
	if step <= 0 {
		return nil
	}
	first := ((lo + step - 1) / step) * step
	if lo < 0 {
		first = (lo / step) * step
	}
	var ticks []time.Duration
	for t := first; t <= hi; t += step {
		ticks = append(ticks, t)
	}
	return ticks
}

// FormatMinSec renders d as MM:SS, minutes taken modulo the hour.
func FormatMinSec(d time.Duration) string {
	m := int(d/time.Minute) % 60
	sec := int(d/time.Second) % 60
	return fmt.Sprintf("%02d:%02d", m, sec)
}
