package source

import "errors"

// Sentinel kinds for dataset source errors.
var (
	ErrFetch    = errors.New("dataset fetch failed")
	ErrTooLarge = errors.New("dataset too large")
)
