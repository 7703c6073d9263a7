// Package source loads the cyclist dataset from a URL or a local file.
package source

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/okian/alpe/internal/domain/model"
)

// DefaultLocation is the public cyclist dataset.
const DefaultLocation = "https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/cyclist-data.json"

// Defaults applied when an option is absent or invalid.
const (
	DefaultTimeout   = 10 * time.Second
	DefaultMaxBytes  = 1 << 20
	DefaultUserAgent = "alpe/1.0"
)

// Source yields the raw records of the dataset.
type Source interface {
	Fetch(ctx context.Context) ([]model.Record, error)
	Location() string
}

type options struct {
	timeout   time.Duration
	maxBytes  int64
	userAgent string
	client    *http.Client
}

// Option configures a Source.
type Option func(*options)

// WithTimeout bounds a single fetch.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithMaxBytes caps the accepted payload size.
func WithMaxBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBytes = n
		}
	}
}

// WithUserAgent sets the User-Agent header of HTTP requests.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.client = c
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		timeout:   DefaultTimeout,
		maxBytes:  DefaultMaxBytes,
		userAgent: DefaultUserAgent,
		client:    &http.Client{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns a FileSource for file:// URLs and plain paths and an
// HTTPSource otherwise.
func New(location string, opts ...Option) Source {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPSource(location, opts...)
	default:
		return NewFileSource(strings.TrimPrefix(location, "file://"), opts...)
	}
}
