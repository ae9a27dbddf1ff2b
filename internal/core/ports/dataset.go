package ports

import (
	"context"

	"github.com/ewilliams-labs/artistscope/internal/core/domain"
)

// DatasetSource produces the full dataset in a single call.
type DatasetSource interface {
	// Name identifies the source in logs and load errors.
	Name() string
	Load(ctx context.Context) ([]domain.TrackRow, error)
}

// TrackWriter replaces a stored dataset with rows, keeping their order.
type TrackWriter interface {
	SaveTracks(ctx context.Context, rows []domain.TrackRow) error
}
