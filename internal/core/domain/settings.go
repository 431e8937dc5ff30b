package domain

const unknownDescription = "Unknown"

// SourceType identifies where raw design trees come from.
type SourceType string

// Available source types.
const (
	// SourceTypeAPI fetches files from the design-tool HTTP API.
	SourceTypeAPI SourceType = "api"

	// SourceTypeFile reads files from a local export directory.
	SourceTypeFile SourceType = "file"
)

// IsValid returns true if the source type is recognised.
func (t SourceType) IsValid() bool {
	switch t {
	case SourceTypeAPI, SourceTypeFile:
		return true
	default:
		return false
	}
}

// SupportsWatch returns true if this source type can emit change events.
func (t SourceType) SupportsWatch() bool {
	return t == SourceTypeFile
}

// String returns the string representation.
func (t SourceType) String() string {
	return string(t)
}

// Description returns a human-readable description of the source type.
func (t SourceType) Description() string {
	switch t {
	case SourceTypeAPI:
		return "Design API (remote)"
	case SourceTypeFile:
		return "Export directory (local)"
	default:
		return unknownDescription
	}
}

// StorageBackend identifies the backing-store implementation.
type StorageBackend string

// Available storage backends.
const (
	// StorageBackendSQLite persists documents in a local SQLite database.
	StorageBackendSQLite StorageBackend = "sqlite"

	// StorageBackendMemory keeps documents in process memory only.
	StorageBackendMemory StorageBackend = "memory"
)

// IsValid returns true if the storage backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageBackendSQLite, StorageBackendMemory:
		return true
	default:
		return false
	}
}

// IsDurable returns true if documents survive process restarts.
func (b StorageBackend) IsDurable() bool {
	return b == StorageBackendSQLite
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageBackendSQLite:
		return "SQLite (durable)"
	case StorageBackendMemory:
		return "Memory (ephemeral)"
	default:
		return unknownDescription
	}
}

// APISettings configure the design-tool HTTP API client.
type APISettings struct {
	// BaseURL is the API root, e.g. "https://api.designtool.example".
	BaseURL string

	// Token authenticates requests; sent as the access-token header.
	Token string

	// TimeoutSeconds bounds each API call.
	TimeoutSeconds int

	// RequestsPerMinute is the proactive client-side rate limit.
	RequestsPerMinute int
}

// SourceSettings configure where raw trees are read from.
type SourceSettings struct {
	// Type selects the Document Source adapter.
	Type SourceType

	// ExportDir is the local export directory for file sources.
	ExportDir string
}

// CacheSettings configure the Context Store's TTL cache.
type CacheSettings struct {
	// TTLSeconds is how long a cache entry stays fresh.
	TTLSeconds int

	// MaxEntries bounds the cache size; oldest entries evict first.
	MaxEntries int
}

// StoreSettings configure persistence and freshness.
type StoreSettings struct {
	// Backend selects the backing-store implementation.
	Backend StorageBackend

	// DataDir is where the sqlite backend keeps its database.
	DataDir string

	// StaleAfterSeconds is the staleness threshold for re-extraction.
	StaleAfterSeconds int
}

// BatchSettings configure batch processing.
type BatchSettings struct {
	// MaxConcurrent is the per-chunk parallelism.
	MaxConcurrent int
}

// ScreenshotSettings configure visual capture requests.
type ScreenshotSettings struct {
	// Format is the requested image format.
	Format string

	// Scale is the requested render scale.
	Scale float64
}

// AppSettings is the complete application configuration.
type AppSettings struct {
	// API configures the design-tool HTTP client.
	API APISettings

	// Source selects and configures the Document Source.
	Source SourceSettings

	// Cache configures the TTL cache.
	Cache CacheSettings

	// Store configures persistence and freshness.
	Store StoreSettings

	// Batch configures batch processing.
	Batch BatchSettings

	// Screenshot configures visual capture.
	Screenshot ScreenshotSettings
}

// DefaultAppSettings returns the built-in defaults. These match the
// documented behaviour: 5 minute cache TTL, 1 hour staleness threshold,
// batch chunks of 3.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			TimeoutSeconds:    30,
			RequestsPerMinute: 60,
		},
		Source: SourceSettings{
			Type: SourceTypeAPI,
		},
		Cache: CacheSettings{
			TTLSeconds: 300,
			MaxEntries: 512,
		},
		Store: StoreSettings{
			Backend:           StorageBackendSQLite,
			StaleAfterSeconds: 3600,
		},
		Batch: BatchSettings{
			MaxConcurrent: DefaultBatchConcurrency,
		},
		Screenshot: ScreenshotSettings{
			Format: "png",
			Scale:  2,
		},
	}
}
