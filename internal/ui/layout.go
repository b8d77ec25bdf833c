package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the preview pane is
	// hidden even when enabled.
	LayoutCompactWidth = 100

	// LayoutWideWidth is the threshold above which section descriptions are
	// shown next to labels.
	LayoutWideWidth = 140
)

// Pane sizing.
const (
	// PagesPaneWidth is the fixed width of the pages column.
	PagesPaneWidth = 24

	// PreviewMinWidth is the narrowest the preview pane is drawn.
	PreviewMinWidth = 36

	// chromeHeight is the rows taken by header, command bar and footer.
	chromeHeight = 3
)

// previewPaneWidth returns the preview column width, or 0 when hidden.
func previewPaneWidth(total int, preview bool) int {
	if !preview || total < LayoutCompactWidth {
		return 0
	}
	w := (total - PagesPaneWidth) / 2
	if w < PreviewMinWidth {
		return 0
	}
	return w
}

// sectionsPaneWidth returns the sections column width for the terminal width.
func sectionsPaneWidth(total int, preview bool) int {
	w := total - PagesPaneWidth - previewPaneWidth(total, preview)
	if w < 20 {
		w = 20
	}
	return w
}

// bodyHeight returns the rows available to the panes.
func bodyHeight(total int) int {
	h := total - chromeHeight
	if h < 3 {
		h = 3
	}
	return h
}
