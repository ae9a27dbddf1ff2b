package csvfile

import (
	"context"
	"fmt"
	"os"

	"github.com/ewilliams-labs/artistscope/internal/core/domain"
	"github.com/ewilliams-labs/artistscope/internal/core/ports"
)

// Source loads the dataset from a CSV file on local disk.
type Source struct {
	path string
}

// compile-time interface assertion
var _ ports.DatasetSource = (*Source)(nil)

// NewSource returns a Source reading path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Name identifies the source in logs.
func (s *Source) Name() string {
	return "csv:" + s.path
}

// Load reads and parses the whole file.
func (s *Source) Load(ctx context.Context) ([]domain.TrackRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewLoadError(s.Name(), err)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, domain.NewLoadError(s.Name(), fmt.Errorf("csvfile: open: %w", err))
	}
	defer f.Close()

	rows, err := Parse(f)
	if err != nil {
		return nil, domain.NewLoadError(s.Name(), err)
	}
	return rows, nil
}
