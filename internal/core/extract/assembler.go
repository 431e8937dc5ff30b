package extract

import (
	"sort"
	"time"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

// Assemble builds the file-level ContextDocument from the raw file
// header and a walk result. Missing header fields take explicit
// fallbacks so a malformed payload still yields a valid, low-confidence
// document rather than an error.
func Assemble(fileKey string, raw *domain.RawFile, walk WalkResult, source string) domain.ContextDocument {
	doc := domain.ContextDocument{
		FileKey:    fileKey,
		Nodes:      walk.Nodes,
		Extractors: walk.Extractors,
		Metadata: domain.Metadata{
			FileName:   "Unknown",
			Version:    "1.0",
			EditorType: "design",
			Source:     source,
			Extracted:  time.Now().UTC().Format(domain.TimestampLayout),
		},
	}

	if raw != nil {
		if raw.Name != "" {
			doc.Metadata.FileName = raw.Name
		}
		if raw.Version != "" {
			doc.Metadata.Version = raw.Version
		}
		if raw.EditorType != "" {
			doc.Metadata.EditorType = raw.EditorType
		}
		doc.Metadata.LastModified = raw.LastModified
		doc.Metadata.ThumbnailURL = raw.ThumbnailURL

		doc.Styles = assembleStyles(raw.Styles)
		doc.Components = assembleComponents(raw.Components)
	}

	doc.Confidence = Score(doc)
	return doc
}

// assembleStyles flattens the style table into a list sorted by style ID
// so repeated extractions of the same payload are byte-identical.
func assembleStyles(styles map[string]domain.RawStyle) []domain.StyleInfo {
	if len(styles) == 0 {
		return nil
	}
	ids := make([]string, 0, len(styles))
	for id := range styles {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]domain.StyleInfo, 0, len(ids))
	for _, id := range ids {
		style := styles[id]
		out = append(out, domain.StyleInfo{
			ID:          id,
			Name:        style.Name,
			Type:        style.StyleType,
			Description: style.Description,
		})
	}
	return out
}

// assembleComponents flattens the component table into a list sorted by
// component ID.
func assembleComponents(components map[string]domain.RawComponent) []domain.ComponentInfo {
	if len(components) == 0 {
		return nil
	}
	ids := make([]string, 0, len(components))
	for id := range components {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]domain.ComponentInfo, 0, len(ids))
	for _, id := range ids {
		component := components[id]
		out = append(out, domain.ComponentInfo{
			ID:             id,
			Name:           component.Name,
			Description:    component.Description,
			ComponentSetID: component.ComponentSetID,
		})
	}
	return out
}
