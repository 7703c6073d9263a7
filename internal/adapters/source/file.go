package source

import (
	"context"
	"fmt"
	"os"

	"github.com/okian/alpe/internal/domain/model"
)

// FileSource reads the dataset from a local JSON file.
type FileSource struct {
	path string
	opts options
}

// NewFileSource creates a source for path.
func NewFileSource(path string, opts ...Option) *FileSource {
	return &FileSource{path: path, opts: newOptions(opts)}
}

// Location returns the file path.
func (s *FileSource) Location() string { return s.path }

// Fetch reads and decodes the file. Every failure wraps ErrFetch.
func (s *FileSource) Fetch(ctx context.Context) ([]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer f.Close()

	return decode(f, s.opts.maxBytes)
}
