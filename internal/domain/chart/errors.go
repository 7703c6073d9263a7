package chart

import "errors"

// Sentinel kinds for chart errors.
var (
	ErrNoDataset     = errors.New("no dataset")
	ErrPointNotFound = errors.New("point not found")
)
