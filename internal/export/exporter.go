package export

import (
	"context"

	"tlr/internal/domain"
)

// Exporter publishes a stored run snapshot to an external sink
type Exporter interface {
	Publish(ctx context.Context, output *domain.RunOutput) (int64, error)
}
