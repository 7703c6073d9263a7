package service

import "errors"

// ErrNoChart is returned by readers when the dataset could not be loaded.
var ErrNoChart = errors.New("no chart available")
