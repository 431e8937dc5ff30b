package domain

// StyleInfo is one entry of the source's flat style table.
type StyleInfo struct {
	// ID is the style identifier from the source.
	ID string `json:"id"`

	// Name is the human-readable style name.
	Name string `json:"name"`

	// Type is the style kind ("FILL", "TEXT", "EFFECT", "GRID").
	Type string `json:"type"`

	// Description is the author-provided description.
	Description string `json:"description,omitempty"`
}

// ComponentInfo is one entry of the source's flat component table.
type ComponentInfo struct {
	// ID is the component identifier from the source.
	ID string `json:"id"`

	// Name is the human-readable component name.
	Name string `json:"name"`

	// Description is the author-provided description.
	Description string `json:"description,omitempty"`

	// ComponentSetID groups variants, when the component belongs to a set.
	ComponentSetID string `json:"componentSetId,omitempty"`
}
