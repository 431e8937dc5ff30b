package driven

import (
	"context"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

// DocumentSource supplies raw design trees for extraction. The payload is
// treated as untrusted: any field may be missing and the pipeline degrades
// rather than failing.
type DocumentSource interface {
	// FetchDocument retrieves the raw tree for one file.
	// Returns domain.ErrNotFound when the source has no such file and
	// domain.ErrRateLimited when the source throttled the request.
	FetchDocument(ctx context.Context, fileKey string) (*domain.RawFile, error)

	// Name identifies the adapter (e.g. "api", "file"). Stamped into
	// metadata.source on extracted documents.
	Name() string
}

// WatchableSource is implemented by sources that can report file changes.
// Only file-based sources support watching; API sources return
// domain.ErrWatchNotSupported.
type WatchableSource interface {
	DocumentSource

	// Watch emits the file key of each changed file until ctx is
	// cancelled. The channel is closed on return.
	Watch(ctx context.Context) (<-chan domain.SourceChange, error)
}
