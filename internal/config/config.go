// Package config defines service configuration and its loading hooks.
//
// Conventions:
// - New() returns a Config populated with defaults.
// - Load(ctx) layers .env, an optional YAML file and ALPE_* env vars on top.
// - External errors are wrapped with ErrLoadConfig / ErrInvalidConfig.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/okian/alpe/internal/adapters/render/png"
	"github.com/okian/alpe/internal/adapters/source"
)

// DefaultDatasetURL is the public cyclist dataset.
const DefaultDatasetURL = source.DefaultLocation

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat is "text" or "json".
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatasetURL is an http(s) URL, a file:// URL or a local path.
	DatasetURL string `koanf:"dataset_url"`

	// FetchTimeoutMS bounds the single dataset request.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// MaxDatasetBytes caps the decoded response size.
	MaxDatasetBytes int64 `koanf:"max_dataset_bytes"`

	// Drawing surface and padding in pixels.
	Width     int `koanf:"width"`
	Height    int `koanf:"height"`
	PadTop    int `koanf:"pad_top"`
	PadRight  int `koanf:"pad_right"`
	PadBottom int `koanf:"pad_bottom"`
	PadLeft   int `koanf:"pad_left"`

	PointRadius        float64 `koanf:"point_radius"`
	TimePaddingSeconds int     `koanf:"time_padding_seconds"`
	YearPadding        int     `koanf:"year_padding"`

	// Category colors.
	ColorNonDoping string `koanf:"color_non_doping"`
	ColorDoping    string `koanf:"color_doping"`

	Title      string `koanf:"title"`
	Subtitle   string `koanf:"subtitle"`
	YAxisTitle string `koanf:"y_axis_title"`

	// OpenBrowser opens the chart page once the server listens.
	OpenBrowser bool `koanf:"open_browser"`

	// ExportPath switches the process to one-shot export (.svg, .png or .html).
	ExportPath string `koanf:"export_path"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		DatasetURL:         DefaultDatasetURL,
		FetchTimeoutMS:     10_000,
		MaxDatasetBytes:    1 << 20,
		Width:              900,
		Height:             600,
		PadTop:             100,
		PadRight:           20,
		PadBottom:          30,
		PadLeft:            75,
		PointRadius:        8,
		TimePaddingSeconds: 15,
		YearPadding:        1,
		ColorNonDoping:     "#ff7f0e",
		ColorDoping:        "#1f77b4",
		Title:              "Doping in Professional Bike Racing",
		Subtitle:           "35 Fastest times up Alpe d'Huez",
		YAxisTitle:         "Time (minutes)",
	}
}

// FetchTimeout returns FetchTimeoutMS as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutMS) * time.Millisecond
}

// TimePadding returns TimePaddingSeconds as a duration.
func (c *Config) TimePadding() time.Duration {
	return time.Duration(c.TimePaddingSeconds) * time.Second
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.DatasetURL) == "":
		return fmt.Errorf("%w: dataset_url must not be empty", ErrInvalidConfig)
	case c.FetchTimeoutMS <= 0:
		return fmt.Errorf("%w: fetch_timeout_ms must be positive", ErrInvalidConfig)
	case c.MaxDatasetBytes <= 0:
		return fmt.Errorf("%w: max_dataset_bytes must be positive", ErrInvalidConfig)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: width and height must be positive", ErrInvalidConfig)
	case c.PadTop < 0 || c.PadRight < 0 || c.PadBottom < 0 || c.PadLeft < 0:
		return fmt.Errorf("%w: padding must not be negative", ErrInvalidConfig)
	case 2*c.PadLeft >= c.Width:
		return fmt.Errorf("%w: pad_left leaves no horizontal plot area", ErrInvalidConfig)
	case c.PadTop+c.PadBottom >= c.Height:
		return fmt.Errorf("%w: pad_top+pad_bottom leave no vertical plot area", ErrInvalidConfig)
	case c.PointRadius <= 0:
		return fmt.Errorf("%w: point_radius must be positive", ErrInvalidConfig)
	case c.TimePaddingSeconds < 0 || c.YearPadding < 0:
		return fmt.Errorf("%w: axis padding must not be negative", ErrInvalidConfig)
	case c.ColorNonDoping == "" || c.ColorDoping == "":
		return fmt.Errorf("%w: both category colors are required", ErrInvalidConfig)
	case strings.EqualFold(c.ColorNonDoping, c.ColorDoping):
		return fmt.Errorf("%w: category colors must differ", ErrInvalidConfig)
	}
	for key, col := range map[string]string{"color_non_doping": c.ColorNonDoping, "color_doping": c.ColorDoping} {
		if _, err := png.ParseColor(col); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
		}
	}
	return nil
}
