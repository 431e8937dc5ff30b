package domain

// DefaultSearchLimit bounds result sets when the caller does not.
const DefaultSearchLimit = 20

// SearchOptions configures a cross-document context search.
type SearchOptions struct {
	// FileKeys restricts the candidate set to specific files.
	// Empty means all stored documents.
	FileKeys []string

	// NodeTypes restricts node matching to these types (case-insensitive)
	// before scoring. When it names "component" or "style", the flat
	// component/style tables stay in scope as well.
	NodeTypes []string

	// Limit is the maximum number of results. Defaults to DefaultSearchLimit.
	Limit int
}

// SearchHit is a single matched document with its relevance score.
type SearchHit struct {
	// FileKey identifies the matched document.
	FileKey string `json:"fileKey"`

	// NodeID is set when the hit is a node-scoped document.
	NodeID string `json:"nodeId,omitempty"`

	// Score blends substring match strength with the document's confidence.
	Score float64 `json:"score"`

	// Confidence is the matched document's own confidence.
	Confidence float64 `json:"confidence"`

	// FileName is the matched document's display name.
	FileName string `json:"fileName,omitempty"`

	// MatchedNodes lists names of nodes that matched the query.
	MatchedNodes []string `json:"matchedNodes,omitempty"`

	// MatchedComponents lists names of components that matched the query.
	MatchedComponents []string `json:"matchedComponents,omitempty"`

	// MatchedStyles lists names of styles that matched the query.
	MatchedStyles []string `json:"matchedStyles,omitempty"`
}

// SearchReport is the full result of one search call. Zero matches is a
// normal outcome reported through TotalResults and Suggestion, never an
// error.
type SearchReport struct {
	// Query echoes the search query.
	Query string `json:"query"`

	// TotalResults is the number of matched documents before truncation.
	TotalResults int `json:"totalResults"`

	// Results holds the top hits, sorted by descending score.
	Results []SearchHit `json:"results"`

	// Suggestion is a human-readable hint set when nothing matched,
	// recommending the caller process the relevant file first.
	Suggestion string `json:"suggestion,omitempty"`
}
