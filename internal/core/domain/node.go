package domain

// NodeInfo captures one visited node of the design tree with its base
// fields and any type-specific attributes the matching extractor added.
type NodeInfo struct {
	// ID is unique within a single document's Nodes slice.
	ID string `json:"id"`

	// Type is the node's declared type, verbatim (e.g. "FRAME", "TEXT").
	Type string `json:"type"`

	// Name is the node name, defaulting to "TYPE_id" when absent.
	Name string `json:"name"`

	// Visible defaults to true unless the source marks it false.
	Visible bool `json:"visible"`

	// Locked mirrors the source's locked flag.
	Locked bool `json:"locked"`

	// Depth is the node's distance from the root, starting at 0.
	Depth int `json:"depth"`

	// Bounds is the absolute bounding box, when the source provides one.
	Bounds *Bounds `json:"bounds,omitempty"`

	// Frame holds auto-layout attributes for frame-like nodes.
	Frame *FrameAttrs `json:"frame,omitempty"`

	// Text holds typography attributes for text nodes.
	Text *TextAttrs `json:"text,omitempty"`

	// Component holds component/instance linkage attributes.
	Component *ComponentAttrs `json:"component,omitempty"`

	// Vector holds stroke/corner attributes for vector nodes.
	Vector *VectorAttrs `json:"vector,omitempty"`

	// Paint holds normalised fills, strokes and effects.
	Paint *PaintAttrs `json:"paint,omitempty"`
}

// Bounds is an absolute bounding box in canvas coordinates.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FrameAttrs are the auto-layout attributes contributed by the frame extractor.
type FrameAttrs struct {
	// LayoutMode is the auto-layout direction, "NONE" when unset.
	LayoutMode string `json:"layoutMode"`

	// LayoutWrap controls wrapping, "NO_WRAP" when unset.
	LayoutWrap string `json:"layoutWrap"`

	// PrimaryAxisSizing is the sizing mode along the layout axis.
	PrimaryAxisSizing string `json:"primaryAxisSizing"`

	// CounterAxisSizing is the sizing mode across the layout axis.
	CounterAxisSizing string `json:"counterAxisSizing"`

	// PrimaryAxisAlign is the alignment along the layout axis.
	PrimaryAxisAlign string `json:"primaryAxisAlign"`

	// CounterAxisAlign is the alignment across the layout axis.
	CounterAxisAlign string `json:"counterAxisAlign"`

	// Padding is present only when the source declares padding.
	Padding *Padding `json:"padding,omitempty"`

	// Gap is the item spacing, present only when the source declares it.
	Gap *float64 `json:"gap,omitempty"`
}

// Padding is the per-edge padding of an auto-layout frame.
type Padding struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// TextAttrs are the typography attributes contributed by the text extractor.
type TextAttrs struct {
	// Content is the rendered character string.
	Content string `json:"content"`

	// FontFamily is the typeface name.
	FontFamily string `json:"fontFamily,omitempty"`

	// FontSize is in canvas units.
	FontSize float64 `json:"fontSize,omitempty"`

	// FontWeight is the numeric weight (400, 700, ...).
	FontWeight float64 `json:"fontWeight,omitempty"`

	// TextAlign is the horizontal alignment.
	TextAlign string `json:"textAlign,omitempty"`

	// LineHeight is in pixels.
	LineHeight float64 `json:"lineHeight,omitempty"`

	// LetterSpacing is in pixels.
	LetterSpacing float64 `json:"letterSpacing,omitempty"`

	// Color is the first visible fill converted to hex.
	Color string `json:"color,omitempty"`
}

// ComponentAttrs link a node to the component system.
type ComponentAttrs struct {
	// ComponentID identifies the component definition.
	ComponentID string `json:"componentId"`

	// ComponentSetID groups variants, when the component belongs to a set.
	ComponentSetID string `json:"componentSetId,omitempty"`

	// IsMain is true for component definitions, false for instances.
	IsMain bool `json:"isMainComponent"`

	// Description is the author-provided component description.
	Description string `json:"description,omitempty"`

	// Overrides lists the IDs of overridden sub-nodes on instances.
	Overrides []string `json:"overrides,omitempty"`
}

// VectorAttrs are the stroke attributes contributed by the vector extractor.
type VectorAttrs struct {
	// StrokeWeight is the stroke thickness in canvas units.
	StrokeWeight float64 `json:"strokeWeight"`

	// StrokeAlign is the stroke placement relative to the path.
	StrokeAlign string `json:"strokeAlign,omitempty"`

	// CornerRadius is the uniform corner radius.
	CornerRadius float64 `json:"cornerRadius,omitempty"`
}

// PaintAttrs carry the normalised paint lists of a style-bearing node.
type PaintAttrs struct {
	// Fills are the normalised fill paints.
	Fills []Paint `json:"fills,omitempty"`

	// Strokes are the normalised stroke paints.
	Strokes []Paint `json:"strokes,omitempty"`

	// Effects are the normalised effects (shadows, blurs).
	Effects []Effect `json:"effects,omitempty"`
}

// Paint is one fill or stroke, normalised from the source representation.
type Paint struct {
	// Type is the paint kind ("SOLID", "GRADIENT_LINEAR", ...).
	Type string `json:"type"`

	// Color is the paint colour as "#RRGGBB", present for solid paints.
	Color string `json:"color,omitempty"`

	// Opacity is in [0,1]; 1 when the source omits it.
	Opacity float64 `json:"opacity"`
}

// Effect is one visual effect, normalised from the source representation.
type Effect struct {
	// Type is the effect kind ("DROP_SHADOW", "LAYER_BLUR", ...).
	Type string `json:"type"`

	// Color is the effect colour as "#RRGGBB", when the effect has one.
	Color string `json:"color,omitempty"`

	// Radius is the blur/spread radius.
	Radius float64 `json:"radius"`
}
