// Package model contains the cyclist dataset types shared between layers.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Anchor is the reference instant parsed times are attached to when an
// absolute time is needed (the data-yvalue attribute). Only minutes and
// seconds carry meaning.
var Anchor = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Record is one cyclist's ascent as published in the dataset.
type Record struct {
	Time        string `json:"Time"`
	Place       int    `json:"Place,omitempty"`
	Seconds     int    `json:"Seconds,omitempty"`
	Name        string `json:"Name"`
	Year        int    `json:"Year"`
	Nationality string `json:"Nationality"`
	Doping      string `json:"Doping"`
	URL         string `json:"URL,omitempty"`
}

// HasDoping reports whether the record carries a doping allegation.
func (r Record) HasDoping() bool {
	return r.Doping != ""
}

// ParseTime converts "MM:SS" into a duration. Minutes must be a
// non-negative integer and seconds an integer in [0,60).
func ParseTime(s string) (time.Duration, error) {
	mm, ss, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q is not MM:SS", ErrInvalidTime, s)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("%w: bad minutes in %q", ErrInvalidTime, s)
	}
	seconds, err := strconv.Atoi(ss)
	if err != nil || seconds < 0 || seconds >= 60 {
		return 0, fmt.Errorf("%w: bad seconds in %q", ErrInvalidTime, s)
	}
	return time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second, nil
}

// AnchoredTime places d on the Anchor date.
func AnchoredTime(d time.Duration) time.Time {
	return Anchor.Add(d)
}
