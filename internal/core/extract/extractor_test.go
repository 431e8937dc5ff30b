package extract

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

func fptr(v float64) *float64 { return &v }
func bptr(v bool) *bool       { return &v }

// TestKindFor tests type-to-kind resolution.
func TestKindFor(t *testing.T) {
	tests := []struct {
		nodeType string
		expected Kind
	}{
		{"FRAME", KindFrame},
		{"frame", KindFrame},
		{"Frame", KindFrame},
		{"COMPONENT", KindComponent},
		{"COMPONENT_SET", KindComponent},
		{"INSTANCE", KindInstance},
		{"TEXT", KindText},
		{"VECTOR", KindVector},
		{"LINE", KindVector},
		{"STAR", KindVector},
		{"POLYGON", KindVector},
		{"BOOLEAN_OPERATION", KindVector},
		{"RECTANGLE", KindStyle},
		{"ELLIPSE", KindStyle},
		{"SECTION", KindStyle},
		{"GROUP", KindUnknown},
		{"DOCUMENT", KindUnknown},
		{"CANVAS", KindUnknown},
		{"", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.nodeType, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindFor(tt.nodeType))
		})
	}
}

// TestHexColor tests RGBA-to-hex conversion.
func TestHexColor(t *testing.T) {
	tests := []struct {
		name     string
		color    *domain.RawColor
		expected string
	}{
		{"nil", nil, ""},
		{"black", &domain.RawColor{R: 0, G: 0, B: 0, A: 1}, "#000000"},
		{"white", &domain.RawColor{R: 1, G: 1, B: 1, A: 1}, "#FFFFFF"},
		{"red", &domain.RawColor{R: 1, G: 0, B: 0, A: 1}, "#FF0000"},
		{"mid grey rounds", &domain.RawColor{R: 0.5, G: 0.5, B: 0.5, A: 1}, "#808080"},
		{"alpha dropped", &domain.RawColor{R: 1, G: 0, B: 0, A: 0.2}, "#FF0000"},
		{"clamped above", &domain.RawColor{R: 2, G: 1.5, B: 0, A: 1}, "#FFFF00"},
		{"clamped below", &domain.RawColor{R: -1, G: 0, B: 0, A: 1}, "#000000"},
		{"nan treated as zero", &domain.RawColor{R: math.NaN(), G: 0, B: 1, A: 1}, "#0000FF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HexColor(tt.color))
		})
	}
}

// TestRegistry_Apply_UnknownType tests that unrecognised types keep base
// fields only.
func TestRegistry_Apply_UnknownType(t *testing.T) {
	registry := NewRegistry()
	raw := &domain.RawNode{ID: "1:1", Type: "CANVAS", Name: "Page 1"}
	info := domain.NodeInfo{ID: "1:1", Type: "CANVAS", Name: "Page 1"}

	kind, applied := registry.Apply(raw, &info)

	assert.Equal(t, KindUnknown, kind)
	assert.False(t, applied)
	assert.Nil(t, info.Frame)
	assert.Nil(t, info.Text)
	assert.Nil(t, info.Component)
}

// TestRegistry_Apply_Frame tests frame extraction defaults and declared
// values.
func TestRegistry_Apply_Frame(t *testing.T) {
	registry := NewRegistry()

	t.Run("defaults when fields absent", func(t *testing.T) {
		raw := &domain.RawNode{ID: "1:1", Type: "FRAME"}
		info := domain.NodeInfo{ID: "1:1"}

		kind, applied := registry.Apply(raw, &info)

		require.True(t, applied)
		assert.Equal(t, KindFrame, kind)
		require.NotNil(t, info.Frame)
		assert.Equal(t, "NONE", info.Frame.LayoutMode)
		assert.Equal(t, "NO_WRAP", info.Frame.LayoutWrap)
		assert.Equal(t, "AUTO", info.Frame.PrimaryAxisSizing)
		assert.Equal(t, "AUTO", info.Frame.CounterAxisSizing)
		assert.Equal(t, "MIN", info.Frame.PrimaryAxisAlign)
		assert.Equal(t, "MIN", info.Frame.CounterAxisAlign)
		assert.Nil(t, info.Frame.Padding)
		assert.Nil(t, info.Frame.Gap)
	})

	t.Run("declared layout with padding and gap", func(t *testing.T) {
		raw := &domain.RawNode{
			ID:                    "1:2",
			Type:                  "FRAME",
			LayoutMode:            "HORIZONTAL",
			PrimaryAxisAlignItems: "SPACE_BETWEEN",
			PaddingLeft:           fptr(16),
			PaddingTop:            fptr(8),
			ItemSpacing:           fptr(12),
		}
		info := domain.NodeInfo{ID: "1:2"}

		_, applied := registry.Apply(raw, &info)

		require.True(t, applied)
		require.NotNil(t, info.Frame)
		assert.Equal(t, "HORIZONTAL", info.Frame.LayoutMode)
		assert.Equal(t, "SPACE_BETWEEN", info.Frame.PrimaryAxisAlign)
		require.NotNil(t, info.Frame.Padding)
		assert.Equal(t, 16.0, info.Frame.Padding.Left)
		assert.Equal(t, 8.0, info.Frame.Padding.Top)
		assert.Equal(t, 0.0, info.Frame.Padding.Right)
		require.NotNil(t, info.Frame.Gap)
		assert.Equal(t, 12.0, *info.Frame.Gap)
	})
}

// TestRegistry_Apply_Component tests component-definition linkage.
func TestRegistry_Apply_Component(t *testing.T) {
	registry := NewRegistry()

	t.Run("explicit component id", func(t *testing.T) {
		raw := &domain.RawNode{
			ID:             "2:1",
			Type:           "COMPONENT",
			ComponentID:    "comp-1",
			ComponentSetID: "set-1",
			Description:    "Primary action",
		}
		info := domain.NodeInfo{ID: "2:1"}

		_, applied := registry.Apply(raw, &info)

		require.True(t, applied)
		require.NotNil(t, info.Component)
		assert.Equal(t, "comp-1", info.Component.ComponentID)
		assert.Equal(t, "set-1", info.Component.ComponentSetID)
		assert.True(t, info.Component.IsMain)
		assert.Equal(t, "Primary action", info.Component.Description)
	})

	t.Run("node id fallback", func(t *testing.T) {
		raw := &domain.RawNode{ID: "2:2", Type: "COMPONENT"}
		info := domain.NodeInfo{ID: "2:2"}

		_, applied := registry.Apply(raw, &info)

		require.True(t, applied)
		require.NotNil(t, info.Component)
		assert.Equal(t, "2:2", info.Component.ComponentID)
	})
}

// TestRegistry_Apply_Instance tests instance linkage and override
// collection.
func TestRegistry_Apply_Instance(t *testing.T) {
	registry := NewRegistry()
	raw := &domain.RawNode{
		ID:          "3:1",
		Type:        "INSTANCE",
		ComponentID: "comp-1",
		Overrides: []domain.RawOverride{
			{ID: "3:2", OverriddenFields: []string{"characters"}},
			{ID: ""},
			{ID: "3:4"},
		},
	}
	info := domain.NodeInfo{ID: "3:1"}

	_, applied := registry.Apply(raw, &info)

	require.True(t, applied)
	require.NotNil(t, info.Component)
	assert.Equal(t, "comp-1", info.Component.ComponentID)
	assert.False(t, info.Component.IsMain)
	assert.Equal(t, []string{"3:2", "3:4"}, info.Component.Overrides)
}

// TestRegistry_Apply_Text tests character, typography and colour
// extraction.
func TestRegistry_Apply_Text(t *testing.T) {
	registry := NewRegistry()

	t.Run("full typography", func(t *testing.T) {
		raw := &domain.RawNode{
			ID:         "4:1",
			Type:       "TEXT",
			Characters: "Hello",
			Style: &domain.RawTypeStyle{
				FontFamily:          "Inter",
				FontSize:            16,
				FontWeight:          600,
				TextAlignHorizontal: "CENTER",
				LineHeightPx:        24,
				LetterSpacing:       0.5,
			},
			Fills: []domain.RawPaint{
				{Type: "SOLID", Visible: bptr(false), Color: &domain.RawColor{R: 1, G: 0, B: 0, A: 1}},
				{Type: "SOLID", Color: &domain.RawColor{R: 0, G: 0, B: 0, A: 1}},
			},
		}
		info := domain.NodeInfo{ID: "4:1"}

		_, applied := registry.Apply(raw, &info)

		require.True(t, applied)
		require.NotNil(t, info.Text)
		assert.Equal(t, "Hello", info.Text.Content)
		assert.Equal(t, "Inter", info.Text.FontFamily)
		assert.Equal(t, 16.0, info.Text.FontSize)
		assert.Equal(t, 600.0, info.Text.FontWeight)
		assert.Equal(t, "CENTER", info.Text.TextAlign)
		assert.Equal(t, 24.0, info.Text.LineHeight)
		assert.Equal(t, 0.5, info.Text.LetterSpacing)
		assert.Equal(t, "#000000", info.Text.Color, "invisible fill must be skipped")
	})

	t.Run("missing style block", func(t *testing.T) {
		raw := &domain.RawNode{ID: "4:2", Type: "TEXT", Characters: "Plain"}
		info := domain.NodeInfo{ID: "4:2"}

		_, applied := registry.Apply(raw, &info)

		require.True(t, applied)
		require.NotNil(t, info.Text)
		assert.Equal(t, "Plain", info.Text.Content)
		assert.Empty(t, info.Text.FontFamily)
		assert.Empty(t, info.Text.Color)
	})
}

// TestRegistry_Apply_Vector tests stroke and corner extraction.
func TestRegistry_Apply_Vector(t *testing.T) {
	registry := NewRegistry()
	raw := &domain.RawNode{
		ID:           "5:1",
		Type:         "VECTOR",
		StrokeWeight: fptr(2),
		StrokeAlign:  "INSIDE",
		CornerRadius: fptr(4),
	}
	info := domain.NodeInfo{ID: "5:1"}

	_, applied := registry.Apply(raw, &info)

	require.True(t, applied)
	require.NotNil(t, info.Vector)
	assert.Equal(t, 2.0, info.Vector.StrokeWeight)
	assert.Equal(t, "INSIDE", info.Vector.StrokeAlign)
	assert.Equal(t, 4.0, info.Vector.CornerRadius)
}

// TestRegistry_Apply_Style tests paint normalisation on fill-bearing
// nodes.
func TestRegistry_Apply_Style(t *testing.T) {
	registry := NewRegistry()

	t.Run("visible paints normalised", func(t *testing.T) {
		raw := &domain.RawNode{
			ID:   "6:1",
			Type: "RECTANGLE",
			Fills: []domain.RawPaint{
				{Type: "SOLID", Opacity: fptr(0.5), Color: &domain.RawColor{R: 1, G: 1, B: 1, A: 1}},
				{Type: "SOLID", Visible: bptr(false), Color: &domain.RawColor{R: 1, G: 0, B: 0, A: 1}},
			},
			Strokes: []domain.RawPaint{
				{Type: "SOLID", Color: &domain.RawColor{R: 0, G: 0, B: 0, A: 1}},
			},
			Effects: []domain.RawEffect{
				{Type: "DROP_SHADOW", Radius: 8, Color: &domain.RawColor{R: 0, G: 0, B: 0, A: 0.25}},
				{Type: "INNER_SHADOW", Visible: bptr(false), Radius: 2},
			},
		}
		info := domain.NodeInfo{ID: "6:1"}

		_, applied := registry.Apply(raw, &info)

		require.True(t, applied)
		require.NotNil(t, info.Paint)
		require.Len(t, info.Paint.Fills, 1)
		assert.Equal(t, "#FFFFFF", info.Paint.Fills[0].Color)
		assert.Equal(t, 0.5, info.Paint.Fills[0].Opacity)
		require.Len(t, info.Paint.Strokes, 1)
		assert.Equal(t, 1.0, info.Paint.Strokes[0].Opacity)
		require.Len(t, info.Paint.Effects, 1)
		assert.Equal(t, "DROP_SHADOW", info.Paint.Effects[0].Type)
		assert.Equal(t, 8.0, info.Paint.Effects[0].Radius)
	})

	t.Run("no paints leaves nil", func(t *testing.T) {
		raw := &domain.RawNode{ID: "6:2", Type: "ELLIPSE"}
		info := domain.NodeInfo{ID: "6:2"}

		_, applied := registry.Apply(raw, &info)

		require.True(t, applied)
		assert.Nil(t, info.Paint)
	})
}

// TestRegistry_Apply_RecoversPanic tests that a panicking extractor is
// contained and reported as not applied.
func TestRegistry_Apply_RecoversPanic(t *testing.T) {
	registry := &Registry{
		extractors: map[Kind]Extractor{
			KindText: func(_ *domain.RawNode, _ *domain.NodeInfo) {
				panic("corrupt typography block")
			},
		},
	}
	raw := &domain.RawNode{ID: "7:1", Type: "TEXT", Characters: "boom"}
	info := domain.NodeInfo{ID: "7:1", Type: "TEXT"}

	kind, applied := registry.Apply(raw, &info)

	assert.Equal(t, KindText, kind)
	assert.False(t, applied)
	assert.Nil(t, info.Text, "node keeps base fields only")
}

// TestRegistry_Apply_PanicDiscardsPartialWrites tests that fields an
// extractor assigned before panicking do not leak into the node.
func TestRegistry_Apply_PanicDiscardsPartialWrites(t *testing.T) {
	registry := &Registry{
		extractors: map[Kind]Extractor{
			KindText: func(_ *domain.RawNode, info *domain.NodeInfo) {
				info.Text = &domain.TextAttrs{Content: "half-written"}
				panic("corrupt typography block")
			},
		},
	}
	raw := &domain.RawNode{ID: "7:2", Type: "TEXT", Characters: "boom"}
	info := domain.NodeInfo{ID: "7:2", Type: "TEXT", Name: "Label"}

	_, applied := registry.Apply(raw, &info)

	assert.False(t, applied)
	assert.Nil(t, info.Text)
	assert.Equal(t, "Label", info.Name, "base fields survive untouched")
}
