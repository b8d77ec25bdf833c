package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/composer/internal/site"
)

// renderHeader renders the status bar: page, layout mode, preset and save state.
func (m Model) renderHeader() string {
	styles := m.palette.Styles().WithBackground(m.palette.Surface)
	bg := NewBgStyle(m.palette.Surface)
	doc := m.snapshot.Document

	mode := "single-page"
	if doc.MultiPageLayout {
		mode = "multi-page"
	}
	preset := doc.ThemeName
	if preset == "" {
		preset = "custom"
	}

	parts := []string{
		bg.Render("composer", styles.Logo),
		bg.Field("page", doc.PageLabel(editPage(doc)), styles.FaintText, styles.Text),
		bg.Render(mode, styles.MutedText),
		bg.Field("colors", preset, styles.FaintText, styles.AccentText),
		m.renderSaveBadge(styles),
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

func (m Model) renderSaveBadge(styles Styles) string {
	switch {
	case m.snapshot.ReadOnly:
		return styles.Badge("readonly").Render("READ-ONLY")
	case m.snapshot.IsUnsaved:
		return styles.Badge("unsaved").Render(fmt.Sprintf("UNSAVED %d", m.snapshot.ChangesSinceSave))
	default:
		return styles.Badge("live").Render("SAVED")
	}
}

// renderCommandBar renders history depth and the most used keys.
func (m Model) renderCommandBar() string {
	styles := m.palette.Styles()
	bg := NewBgStyle(m.palette.Background)

	history := bg.Field("undo", fmt.Sprint(m.snapshot.UndoDepth), styles.FaintText, styles.Text) +
		bg.Spaces(1) +
		bg.Field("redo", fmt.Sprint(m.snapshot.RedoDepth), styles.FaintText, styles.Text)

	bindings := []struct{ key, desc string }{
		{"space", "toggle"},
		{"J/K", "move"},
		{"a", "page"},
		{"t", "preset"},
		{"u", "undo"},
		{"s", "save"},
		{"P", "publish"},
		{"?", "help"},
	}
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, bg.Field(b.key, b.desc, styles.WarningText, styles.MutedText))
	}

	return bg.FillLine(bg.Spaces(1)+history+bg.Spaces(3)+bg.Join(hints, "  "), m.width)
}

// renderContent lays out the pages, sections and optional preview panes.
func (m Model) renderContent() string {
	h := bodyHeight(m.height)
	cols := []string{
		m.renderPagesPane(PagesPaneWidth, h),
		m.renderSectionsPane(sectionsPaneWidth(m.width, m.preview), h),
	}
	if w := previewPaneWidth(m.width, m.preview); w > 0 {
		cols = append(cols, m.renderPane("Preview", m.previewViewport.View(), w, h, false))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderPane(title, body string, width, height int, focused bool) string {
	styles := m.palette.Styles()
	style := styles.Pane
	titleStyle := styles.MutedText.Bold(true)
	if focused {
		style = styles.FocusedPane
		titleStyle = styles.AccentText.Bold(true)
	}
	content := titleStyle.Render(truncate(title, width-4)) + "\n" + body
	return style.Width(width - 2).Height(height - 2).Render(content)
}

func (m Model) renderPagesPane(width, height int) string {
	styles := m.palette.Styles()
	doc := m.snapshot.Document
	inner := width - 4

	var lines []string
	for i, k := range pageKeys(doc) {
		marker := "  "
		if k == editPage(doc) {
			marker = "● "
		}
		line := padRight(marker+truncate(doc.PageLabel(k), inner-2), inner)
		switch {
		case m.focus == focusPages && i == m.pageCursor:
			line = styles.Selected.Render(line)
		case k == editPage(doc):
			line = styles.AccentText.Render(line)
		default:
			line = styles.Text.Render(line)
		}
		lines = append(lines, line)
	}

	return m.renderPane("Pages", strings.Join(lines, "\n"), width, height, m.focus == focusPages)
}

func (m Model) renderSectionsPane(width, height int) string {
	styles := m.palette.Styles()
	doc := m.snapshot.Document
	inner := width - 4

	title := "Sections · single-page order"
	if doc.MultiPageLayout {
		title = "Sections · " + doc.PageLabel(editPage(doc))
	}

	var lines []string
	for i, row := range sectionRows(doc, m.catalog) {
		lines = append(lines, m.renderSectionRow(styles, row, inner, m.focus == focusSections && i == m.sectionCursor))
	}
	if len(lines) == 0 {
		lines = append(lines, styles.FaintText.Render("No sections"))
	}

	return m.renderPane(title, strings.Join(lines, "\n"), width, height, m.focus == focusSections)
}

func (m Model) renderSectionRow(styles Styles, row sectionRow, width int, selected bool) string {
	check := "[ ]"
	if row.Enabled {
		check = "[x]"
	}
	icon := " "
	if s, ok := m.catalog.Lookup(row.ID); ok && s.Icon != "" {
		icon = s.Icon
	}

	text := fmt.Sprintf("%s %s %s", check, icon, row.Label)
	if row.Required {
		text += "  required"
	}
	if m.width >= LayoutWideWidth {
		if s, ok := m.catalog.Lookup(row.ID); ok && s.Description != "" {
			text += "  " + s.Description
		}
	}
	text = padRight(truncate(text, width), width)

	switch {
	case selected:
		return styles.Selected.Render(text)
	case !row.Enabled:
		return styles.FaintText.Render(text)
	default:
		return styles.Text.Render(text)
	}
}

// renderFooter shows a write failure, the last action's status or key hints.
func (m Model) renderFooter() string {
	styles := m.palette.Styles().WithBackground(m.palette.Surface)

	if m.syncErr != nil {
		if err := m.syncErr(); err != nil {
			return styles.Footer.Width(m.width).Render(styles.DangerText.Render("write failed: " + err.Error()))
		}
	}
	if m.status != "" {
		return styles.Footer.Width(m.width).Render(styles.Text.Render(m.status))
	}
	return styles.Footer.Width(m.width).Render("? help · tab switch pane · q quit")
}

// swatch renders a small block in color, or a placeholder for an empty value.
func swatch(color string) string {
	if color == "" {
		return "  "
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func sectionList(ids []site.SectionID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}
