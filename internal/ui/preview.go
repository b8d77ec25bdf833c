package ui

import (
	"fmt"
	"strings"

	"github.com/five82/composer/internal/catalog"
	"github.com/five82/composer/internal/site"
)

// renderDocument renders a read-only summary of doc for the preview pane.
func renderDocument(doc site.Document, cat catalog.Catalog) string {
	var b strings.Builder
	field := func(label, value string) {
		fmt.Fprintf(&b, "%-11s %s\n", label, value)
	}

	preset := doc.ThemeName
	if preset == "" {
		preset = "custom"
	}
	field("Preset", preset)

	c := doc.Colors
	for _, role := range []struct{ name, value string }{
		{"primary", c.Primary},
		{"secondary", c.Secondary},
		{"accent", c.Accent},
		{"heading", c.Heading},
		{"text", c.Text},
	} {
		field("  "+role.name, swatch(role.value)+" "+role.value)
	}

	logo := doc.Logo
	if logo == "" {
		logo = "(none)"
	}
	field("Logo", truncateMiddle(logo, 40))

	t := doc.Typography
	field("Fonts", fmt.Sprintf("%s / %s · %s", t.HeadingFont, t.BodyFont, t.FontScale))
	field("Buttons", fmt.Sprintf("%s · radius %d", doc.Buttons.Style, doc.Buttons.Radius))

	l := doc.Layout
	field("Layout", fmt.Sprintf("%s spacing · %s width", l.Spacing, l.ContentWidth))
	field("", fmt.Sprintf("radius %s · shadow %s", l.BorderRadius, l.Shadow))
	field("", fmt.Sprintf("animation %s · hover %s", l.Animation, onOff(l.HoverEffects)))
	field("Hero", l.HeroGradient)

	nav := "off"
	if doc.Navigation.Enabled {
		nav = string(doc.Navigation.Style)
	}
	field("Navigation", nav)

	b.WriteString("\n")
	if doc.MultiPageLayout {
		b.WriteString("Pages\n")
		for _, key := range pageKeys(doc) {
			fmt.Fprintf(&b, "  %s (%s)\n", doc.PageLabel(key), key)
			for i, id := range doc.Pages[key] {
				fmt.Fprintf(&b, "    %d. %s%s\n", i+1, cat.Label(id), settingsMark(doc, id))
			}
		}
	} else {
		b.WriteString("Single page\n")
		for i, id := range doc.HomeSections() {
			fmt.Fprintf(&b, "  %d. %s%s\n", i+1, cat.Label(id), settingsMark(doc, id))
		}
		b.WriteString("\n")
		field("Order", sectionList(doc.SinglePageSectionOrder))
	}

	return strings.TrimRight(b.String(), "\n")
}

// settingsMark flags sections that carry their own content.
func settingsMark(doc site.Document, id site.SectionID) string {
	if doc.SectionSettings.Has(id) {
		return " *"
	}
	return ""
}
