package driven

import (
	"context"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

// ScreenshotService captures visual assets for files and nodes. Capture
// mechanics are the service's concern; core only attaches the returned
// descriptor to context documents.
type ScreenshotService interface {
	// Capture renders the file (or a single node when nodeID is set)
	// and returns the asset descriptor.
	Capture(ctx context.Context, fileKey, nodeID string, opts domain.ScreenshotOptions) (*domain.ScreenshotDescriptor, error)
}
