package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/okian/alpe/internal/domain/model"
)

// HTTPSource fetches the dataset with a single GET. No retries.
type HTTPSource struct {
	url  string
	opts options
}

// NewHTTPSource creates a source for rawURL.
func NewHTTPSource(rawURL string, opts ...Option) *HTTPSource {
	return &HTTPSource{url: rawURL, opts: newOptions(opts)}
}

// Location returns the dataset URL.
func (s *HTTPSource) Location() string { return s.url }

// Fetch downloads and decodes the record array. Every failure wraps ErrFetch.
func (s *HTTPSource) Fetch(ctx context.Context) ([]model.Record, error) {
	if _, err := url.ParseRequestURI(s.url); err != nil {
		return nil, fmt.Errorf("%w: invalid url %q: %w", ErrFetch, s.url, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: new request: %w", ErrFetch, err)
	}
	req.Header.Set("User-Agent", s.opts.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.opts.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected http status %s", ErrFetch, resp.Status)
	}
	if resp.ContentLength > s.opts.maxBytes {
		return nil, fmt.Errorf("%w: %w: content-length %d exceeds %d",
			ErrFetch, ErrTooLarge, resp.ContentLength, s.opts.maxBytes)
	}

	return decode(resp.Body, s.opts.maxBytes)
}

// countingReader counts the bytes read through it.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// decode reads at most maxBytes of JSON from r.
func decode(r io.Reader, maxBytes int64) ([]model.Record, error) {
	cr := &countingReader{r: io.LimitReader(r, maxBytes+1)}
	var records []model.Record
	if err := json.NewDecoder(cr).Decode(&records); err != nil {
		if cr.n > maxBytes {
			return nil, fmt.Errorf("%w: %w: body exceeds %d bytes", ErrFetch, ErrTooLarge, maxBytes)
		}
		return nil, fmt.Errorf("%w: decode: %w", ErrFetch, err)
	}
	if cr.n > maxBytes {
		return nil, fmt.Errorf("%w: %w: body exceeds %d bytes", ErrFetch, ErrTooLarge, maxBytes)
	}
	return records, nil
}
