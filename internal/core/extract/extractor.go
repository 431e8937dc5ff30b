package extract

import (
	"github.com/custodia-labs/designctx-cli/internal/core/domain"
	"github.com/custodia-labs/designctx-cli/internal/logger"
)

// Extractor adds one kind's type-specific attributes to a NodeInfo. It
// reads the raw node with safe defaults: missing optional fields produce
// zero values, never failures.
type Extractor func(raw *domain.RawNode, info *domain.NodeInfo)

// Registry dispatches nodes to extractors by kind. The set of extractors
// is fixed at construction.
type Registry struct {
	extractors map[Kind]Extractor
}

// NewRegistry builds the registry with the six built-in extractors.
func NewRegistry() *Registry {
	return &Registry{
		extractors: map[Kind]Extractor{
			KindFrame:     extractFrame,
			KindComponent: extractComponent,
			KindInstance:  extractInstance,
			KindText:      extractText,
			KindVector:    extractVector,
			KindStyle:     extractStyle,
		},
	}
}

// Apply resolves the node's kind and runs the matching extractor against
// info. Returns the resolved kind and whether an extractor ran. A
// panicking extractor is recovered and logged; the node then keeps its
// base fields only, and the walk continues.
func (r *Registry) Apply(raw *domain.RawNode, info *domain.NodeInfo) (kind Kind, applied bool) {
	kind = KindFor(raw.Type)
	fn, ok := r.extractors[kind]
	if !ok {
		return kind, false
	}

	// Extractors run against a scratch copy committed only on success,
	// so a recovered panic cannot leave a half-populated node behind.
	applied = true
	scratch := *info
	defer func() {
		if rec := recover(); rec != nil {
			logger.Warn("extractor %q failed on node %s: %v", kind, info.ID, rec)
			applied = false
		}
	}()
	fn(raw, &scratch)
	*info = scratch
	return kind, applied
}

// extractFrame reads auto-layout attributes. Padding and gap are attached
// only when the source declares them.
func extractFrame(raw *domain.RawNode, info *domain.NodeInfo) {
	frame := &domain.FrameAttrs{
		LayoutMode:        defaultString(raw.LayoutMode, "NONE"),
		LayoutWrap:        defaultString(raw.LayoutWrap, "NO_WRAP"),
		PrimaryAxisSizing: defaultString(raw.PrimaryAxisSizingMode, "AUTO"),
		CounterAxisSizing: defaultString(raw.CounterAxisSizingMode, "AUTO"),
		PrimaryAxisAlign:  defaultString(raw.PrimaryAxisAlignItems, "MIN"),
		CounterAxisAlign:  defaultString(raw.CounterAxisAlignItems, "MIN"),
	}

	if raw.PaddingLeft != nil || raw.PaddingRight != nil || raw.PaddingTop != nil || raw.PaddingBottom != nil {
		frame.Padding = &domain.Padding{
			Left:   deref(raw.PaddingLeft),
			Right:  deref(raw.PaddingRight),
			Top:    deref(raw.PaddingTop),
			Bottom: deref(raw.PaddingBottom),
		}
	}
	if raw.ItemSpacing != nil {
		gap := *raw.ItemSpacing
		frame.Gap = &gap
	}

	info.Frame = frame
}

// extractComponent links a component definition. The node's own ID serves
// as the component ID when the source does not set one explicitly.
func extractComponent(raw *domain.RawNode, info *domain.NodeInfo) {
	componentID := raw.ComponentID
	if componentID == "" {
		componentID = raw.ID
	}
	info.Component = &domain.ComponentAttrs{
		ComponentID:    componentID,
		ComponentSetID: raw.ComponentSetID,
		IsMain:         true,
		Description:    raw.Description,
	}
}

// extractInstance links an instance to its component and records override IDs.
func extractInstance(raw *domain.RawNode, info *domain.NodeInfo) {
	attrs := &domain.ComponentAttrs{
		ComponentID:    raw.ComponentID,
		ComponentSetID: raw.ComponentSetID,
		IsMain:         false,
	}
	for _, override := range raw.Overrides {
		if override.ID != "" {
			attrs.Overrides = append(attrs.Overrides, override.ID)
		}
	}
	info.Component = attrs
}

// extractText reads characters, typography and the first visible fill
// colour.
func extractText(raw *domain.RawNode, info *domain.NodeInfo) {
	text := &domain.TextAttrs{
		Content: raw.Characters,
		Color:   firstVisibleFillColor(raw.Fills),
	}
	if style := raw.Style; style != nil {
		text.FontFamily = style.FontFamily
		text.FontSize = style.FontSize
		text.FontWeight = style.FontWeight
		text.TextAlign = style.TextAlignHorizontal
		text.LineHeight = style.LineHeightPx
		text.LetterSpacing = style.LetterSpacing
	}
	info.Text = text
}

// extractVector reads stroke and corner attributes.
func extractVector(raw *domain.RawNode, info *domain.NodeInfo) {
	info.Vector = &domain.VectorAttrs{
		StrokeWeight: deref(raw.StrokeWeight),
		StrokeAlign:  raw.StrokeAlign,
		CornerRadius: deref(raw.CornerRadius),
	}
}

// extractStyle normalises fills, strokes and effects of generic
// fill-bearing nodes. Nodes without any paint keep a nil Paint.
func extractStyle(raw *domain.RawNode, info *domain.NodeInfo) {
	fills := normalisePaints(raw.Fills)
	strokes := normalisePaints(raw.Strokes)
	effects := normaliseEffects(raw.Effects)
	if len(fills) == 0 && len(strokes) == 0 && len(effects) == 0 {
		return
	}
	info.Paint = &domain.PaintAttrs{
		Fills:   fills,
		Strokes: strokes,
		Effects: effects,
	}
}

// normalisePaints converts raw paints to their stored form, dropping
// invisible entries.
func normalisePaints(raw []domain.RawPaint) []domain.Paint {
	var paints []domain.Paint
	for i := range raw {
		p := &raw[i]
		if !p.IsVisible() {
			continue
		}
		opacity := 1.0
		if p.Opacity != nil {
			opacity = *p.Opacity
		}
		paints = append(paints, domain.Paint{
			Type:    p.Type,
			Color:   HexColor(p.Color),
			Opacity: opacity,
		})
	}
	return paints
}

// normaliseEffects converts raw effects to their stored form, dropping
// invisible entries.
func normaliseEffects(raw []domain.RawEffect) []domain.Effect {
	var effects []domain.Effect
	for i := range raw {
		e := &raw[i]
		if e.Visible != nil && !*e.Visible {
			continue
		}
		effects = append(effects, domain.Effect{
			Type:   e.Type,
			Color:  HexColor(e.Color),
			Radius: e.Radius,
		})
	}
	return effects
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
