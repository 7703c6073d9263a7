package config

import "errors"

var (
	// ErrInvalidConfig marks a loaded config that cannot drive the chart,
	// such as a plot area with no room left or an unresolvable category color.
	ErrInvalidConfig = errors.New("invalid alpe config")
	// ErrLoadConfig wraps failures reading .env, the ALPE_CONFIG file or ALPE_* vars.
	ErrLoadConfig = errors.New("load alpe config")
)
