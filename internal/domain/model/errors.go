package model

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrInvalidTime  = errors.New("invalid ascent time")
	ErrEmptyDataset = errors.New("empty dataset")
)
