package domain

// RawFile is the untrusted, possibly incomplete payload returned by a
// Document Source for one design file. Every field is optional; the
// extraction pipeline reads it with safe defaults and never assumes
// completeness.
type RawFile struct {
	// Name is the file's display name.
	Name string `json:"name,omitempty"`

	// LastModified is the source's modification timestamp, verbatim.
	LastModified string `json:"lastModified,omitempty"`

	// Version is the source file version.
	Version string `json:"version,omitempty"`

	// ThumbnailURL points at the file's preview image.
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`

	// EditorType is the editor surface that produced the file.
	EditorType string `json:"editorType,omitempty"`

	// Document is the root node of the design tree. May be nil for
	// malformed exports; extraction then yields a low-confidence
	// document with no nodes rather than failing.
	Document *RawNode `json:"document,omitempty"`

	// Styles is the flat style table keyed by style ID.
	Styles map[string]RawStyle `json:"styles,omitempty"`

	// Components is the flat component table keyed by component ID.
	Components map[string]RawComponent `json:"components,omitempty"`
}

// RawStyle is one entry of the source's flat style table.
type RawStyle struct {
	Name        string `json:"name,omitempty"`
	StyleType   string `json:"styleType,omitempty"`
	Description string `json:"description,omitempty"`
}

// RawComponent is one entry of the source's flat component table.
type RawComponent struct {
	Name           string `json:"name,omitempty"`
	Description    string `json:"description,omitempty"`
	ComponentSetID string `json:"componentSetId,omitempty"`
}

// RawNode is one node of the untrusted design tree. Optional scalars that
// need presence detection (padding, gap, visibility) are pointers so the
// extractors can distinguish "absent" from zero.
type RawNode struct {
	ID       string     `json:"id,omitempty"`
	Type     string     `json:"type,omitempty"`
	Name     string     `json:"name,omitempty"`
	Visible  *bool      `json:"visible,omitempty"`
	Locked   bool       `json:"locked,omitempty"`
	Children []*RawNode `json:"children,omitempty"`

	// AbsoluteBoundingBox is the node's placement on the canvas.
	AbsoluteBoundingBox *Bounds `json:"absoluteBoundingBox,omitempty"`

	// Auto-layout fields read by the frame extractor.
	LayoutMode            string   `json:"layoutMode,omitempty"`
	LayoutWrap            string   `json:"layoutWrap,omitempty"`
	PrimaryAxisSizingMode string   `json:"primaryAxisSizingMode,omitempty"`
	CounterAxisSizingMode string   `json:"counterAxisSizingMode,omitempty"`
	PrimaryAxisAlignItems string   `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems string   `json:"counterAxisAlignItems,omitempty"`
	PaddingLeft           *float64 `json:"paddingLeft,omitempty"`
	PaddingRight          *float64 `json:"paddingRight,omitempty"`
	PaddingTop            *float64 `json:"paddingTop,omitempty"`
	PaddingBottom         *float64 `json:"paddingBottom,omitempty"`
	ItemSpacing           *float64 `json:"itemSpacing,omitempty"`

	// Text fields read by the text extractor.
	Characters string        `json:"characters,omitempty"`
	Style      *RawTypeStyle `json:"style,omitempty"`

	// Paint fields read by the style extractor.
	Fills   []RawPaint  `json:"fills,omitempty"`
	Strokes []RawPaint  `json:"strokes,omitempty"`
	Effects []RawEffect `json:"effects,omitempty"`

	// Vector fields read by the vector extractor.
	StrokeWeight *float64 `json:"strokeWeight,omitempty"`
	StrokeAlign  string   `json:"strokeAlign,omitempty"`
	CornerRadius *float64 `json:"cornerRadius,omitempty"`

	// Component/instance fields read by the component extractors.
	ComponentID    string        `json:"componentId,omitempty"`
	ComponentSetID string        `json:"componentSetId,omitempty"`
	Description    string        `json:"description,omitempty"`
	Overrides      []RawOverride `json:"overrides,omitempty"`
}

// IsVisible reports node visibility, defaulting to true when the source
// omits the flag.
func (n *RawNode) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// RawTypeStyle carries the typography block of a text node.
type RawTypeStyle struct {
	FontFamily          string  `json:"fontFamily,omitempty"`
	FontSize            float64 `json:"fontSize,omitempty"`
	FontWeight          float64 `json:"fontWeight,omitempty"`
	TextAlignHorizontal string  `json:"textAlignHorizontal,omitempty"`
	LineHeightPx        float64 `json:"lineHeightPx,omitempty"`
	LetterSpacing       float64 `json:"letterSpacing,omitempty"`
}

// RawColor is a normalised RGBA colour with channels in [0,1].
type RawColor struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// RawPaint is one fill or stroke as the source represents it.
type RawPaint struct {
	Type    string    `json:"type,omitempty"`
	Visible *bool     `json:"visible,omitempty"`
	Opacity *float64  `json:"opacity,omitempty"`
	Color   *RawColor `json:"color,omitempty"`
}

// IsVisible reports paint visibility, defaulting to true when absent.
func (p *RawPaint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// RawEffect is one effect as the source represents it.
type RawEffect struct {
	Type    string    `json:"type,omitempty"`
	Visible *bool     `json:"visible,omitempty"`
	Radius  float64   `json:"radius,omitempty"`
	Color   *RawColor `json:"color,omitempty"`
}

// RawOverride records an overridden sub-node on an instance.
type RawOverride struct {
	ID               string   `json:"id,omitempty"`
	OverriddenFields []string `json:"overriddenFields,omitempty"`
}

// SourceChange is a change event from a watchable Document Source.
type SourceChange struct {
	// FileKey identifies the changed file.
	FileKey string
}
