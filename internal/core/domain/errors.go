package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// At the public API boundary this becomes a structured not-found
	// result, never a thrown failure.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyFileKey indicates an operation was attempted without a file key.
	ErrEmptyFileKey = errors.New("file key is required")

	// ErrConfidenceRange indicates a confidence value outside [0,1].
	ErrConfidenceRange = errors.New("confidence must be between 0 and 1")

	// ErrSourceUnavailable indicates the Document Source is not configured
	// or not reachable. Extraction is disabled without a source.
	ErrSourceUnavailable = errors.New("document source unavailable")

	// ErrScreenshotUnavailable indicates the screenshot service is not
	// configured. Quick-setup skips the capture step without one.
	ErrScreenshotUnavailable = errors.New("screenshot service unavailable")

	// ErrStoreUnavailable indicates the backing store is not configured.
	ErrStoreUnavailable = errors.New("backing store unavailable")

	// ErrRateLimited indicates the Document Source API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrWatchNotSupported indicates the configured Document Source cannot
	// emit change events (only file-based sources can).
	ErrWatchNotSupported = errors.New("watch not supported by this source")
)
