// Package site defines the document a page-composition session edits and
// the two pure operations the editing history is built on.
//
// # Overview
//
// A Document is the whole declarative description of a site: theme colors,
// typography, buttons, layout (including the hero gradient), navigation, the
// page map with its per-page section lists, the single-page section order,
// and per-section content settings. It is plain data and carries no behavior
// beyond small read helpers.
//
// # Patches
//
// Edits are described by a Patch, a partial Document. Absent values are nil
// pointers, nil maps or nil slices:
//
//	site.Patch{
//		Layout: &site.LayoutPatch{HeroGradientAngle: site.Ptr(90)},
//	}
//
// Merge applies a Patch with these rules:
//
//   - colors, typography, buttons, layout, navigation: field-by-field merge,
//     unspecified sub-fields survive
//   - sectionSettings: each named section replaces that section's settings,
//     unnamed sections survive
//   - everything else (pages, pageLabels, singlePageSectionOrder, activePage,
//     multiPageLayout, logo, themeName): replaced outright
//
// A full record converts into a patch that sets every sub-field via its Patch
// method, e.g. Colors.Patch().
//
// # Snapshots
//
// Document.Clone is the single structural copy over the schema. Every slice
// and map is copied, as is every present section-settings object, so a clone
// can be stored in a history stack and never observe later edits. Merge is
// built on Clone and therefore never aliases its inputs either.
//
// # Defaults
//
// DefaultDocument is a factory. There is no shared package-level document;
// each editing session and each test gets its own value.
//
// # Gradients
//
// The hero gradient is kept as type, angle and an ordered list of stops.
// Layout.HeroGradient holds the derived CSS string; SyncGradient recomputes
// it. Stop helpers never shrink a gradient below MinGradientStops and clamp
// positions to 0..100.
package site
