package persist

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/five82/composer/internal/catalog"
	"github.com/five82/composer/internal/site"
)

// Encode serializes doc for storage.
func Encode(doc site.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

// Decode parses a stored document. Fields missing from data keep their
// default values and the result is repaired against the default catalog.
func Decode(data []byte) (site.Document, error) {
	doc := site.DefaultDocument()
	if err := json.Unmarshal(data, &doc); err != nil {
		return site.Document{}, fmt.Errorf("decode document: %w", err)
	}
	return Repair(doc, catalog.Default()), nil
}

// Repair returns doc with its structural invariants restored:
//   - the home page exists and holds every required section
//   - page lists and the single-page order only name known sections, once
//   - the single-page order names every known section
//   - the active page exists
//   - the hero gradient has at least two stops and a current CSS value
func Repair(doc site.Document, cat catalog.Catalog) site.Document {
	doc = doc.Clone()
	defaults := site.DefaultDocument()

	if doc.Pages == nil {
		doc.Pages = map[string][]site.SectionID{}
	}
	if _, ok := doc.Pages[site.HomePage]; !ok {
		doc.Pages[site.HomePage] = defaults.Pages[site.HomePage]
	}
	for key, sections := range doc.Pages {
		doc.Pages[key] = knownSections(cat, sections)
	}
	doc.Pages[site.HomePage] = withRequired(cat, doc.Pages[site.HomePage])

	order := knownSections(cat, doc.SinglePageSectionOrder)
	for _, id := range cat.Order() {
		if !slices.Contains(order, id) {
			order = append(order, id)
		}
	}
	doc.SinglePageSectionOrder = order

	if doc.PageLabels == nil {
		doc.PageLabels = map[string]string{}
	}
	for key := range doc.PageLabels {
		if !doc.HasPage(key) {
			delete(doc.PageLabels, key)
		}
	}
	if !doc.HasPage(doc.ActivePage) {
		doc.ActivePage = site.HomePage
	}

	if !site.ValidStops(doc.Layout.HeroGradientStops) {
		doc.Layout.HeroGradientStops = defaults.Layout.HeroGradientStops
	}
	if doc.Layout.HeroGradientType == "" {
		doc.Layout.HeroGradientType = site.GradientLinear
	}
	doc.Layout = doc.Layout.SyncGradient()

	return doc
}

func knownSections(cat catalog.Catalog, sections []site.SectionID) []site.SectionID {
	out := make([]site.SectionID, 0, len(sections))
	for _, id := range sections {
		if cat.Known(id) && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// withRequired inserts each missing required section ahead of the first
// entry that follows it in catalog order.
func withRequired(cat catalog.Catalog, sections []site.SectionID) []site.SectionID {
	rank := make(map[site.SectionID]int)
	for i, id := range cat.Order() {
		rank[id] = i
	}
	out := slices.Clone(sections)
	for _, id := range cat.Required() {
		if slices.Contains(out, id) {
			continue
		}
		at := len(out)
		for i, existing := range out {
			if rank[existing] > rank[id] {
				at = i
				break
			}
		}
		out = slices.Insert(out, at, id)
	}
	return out
}
