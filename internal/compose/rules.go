// Package compose holds the page and section composition rules. It keeps no
// state of its own: the pure list functions compute new section lists and
// Composer applies them to an Editor, one undo step per call.
package compose

import (
	"slices"

	"github.com/five82/composer/internal/catalog"
	"github.com/five82/composer/internal/site"
)

// AddSection returns a copy of sections with id appended. The copy is
// unchanged when id is already present.
func AddSection(sections []site.SectionID, id site.SectionID) []site.SectionID {
	out := slices.Clone(sections)
	if slices.Contains(out, id) {
		return out
	}
	return append(out, id)
}

// RemoveSection returns a copy of sections without id. Required sections are
// never removed.
func RemoveSection(cat catalog.Catalog, sections []site.SectionID, id site.SectionID) []site.SectionID {
	if cat.IsRequired(id) {
		return slices.Clone(sections)
	}
	out := make([]site.SectionID, 0, len(sections))
	for _, s := range sections {
		if s != id {
			out = append(out, s)
		}
	}
	return out
}

// MoveSection returns a copy of sections with id moved to index to. Other
// sections keep their relative order. to is clamped to the list bounds; a
// missing id leaves the copy unchanged.
func MoveSection(sections []site.SectionID, id site.SectionID, to int) []site.SectionID {
	out := slices.Clone(sections)
	from := slices.Index(out, id)
	if from < 0 {
		return out
	}
	to = max(0, min(to, len(out)-1))
	if from == to {
		return out
	}
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, id)
}

// EnabledHome derives the single-page home list: the members of order that
// are enabled or required, deduplicated, in order's sequence. Required
// sections missing from order follow in catalog order.
func EnabledHome(cat catalog.Catalog, order, enabled []site.SectionID) []site.SectionID {
	on := make(map[site.SectionID]bool, len(enabled))
	for _, id := range enabled {
		on[id] = true
	}

	out := make([]site.SectionID, 0, len(order))
	seen := make(map[site.SectionID]bool, len(order))
	for _, id := range order {
		if seen[id] || !(on[id] || cat.IsRequired(id)) {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	for _, id := range cat.Required() {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// ToggleSinglePage flips id in the enabled set given by home and returns the
// recomputed home list. Required sections stay enabled.
func ToggleSinglePage(cat catalog.Catalog, order, home []site.SectionID, id site.SectionID) []site.SectionID {
	enabled := slices.Clone(home)
	switch {
	case cat.IsRequired(id):
	case slices.Contains(enabled, id):
		enabled = slices.DeleteFunc(enabled, func(s site.SectionID) bool { return s == id })
	default:
		enabled = append(enabled, id)
	}
	return EnabledHome(cat, order, enabled)
}

// ReorderSinglePage moves id within order and returns the new order together
// with the home list recomputed from it. Membership of home is preserved.
func ReorderSinglePage(cat catalog.Catalog, order, home []site.SectionID, id site.SectionID, to int) (nextOrder, nextHome []site.SectionID) {
	nextOrder = MoveSection(order, id, to)
	return nextOrder, EnabledHome(cat, nextOrder, home)
}
