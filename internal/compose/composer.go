package compose

import (
	"fmt"
	"slices"
	"strings"

	"github.com/five82/composer/internal/catalog"
	"github.com/five82/composer/internal/site"
)

// Editor is the slice of the state container the composition rules drive.
// *state.Store satisfies it.
type Editor interface {
	Document() site.Document
	Modify(fn func(doc site.Document) site.Patch)
	AddPage(id, label string, sections []site.SectionID)
	DeletePage(id string)
}

// Composer applies the composition rules to an Editor. Each method is at
// most one undo step and reports whether it changed anything.
type Composer struct {
	Editor  Editor
	Catalog catalog.Catalog
}

// New returns a Composer over e using cat.
func New(e Editor, cat catalog.Catalog) *Composer {
	return &Composer{Editor: e, Catalog: cat}
}

// AddSection appends id to page. Unknown sections, missing pages and
// sections already on the page are ignored.
func (c *Composer) AddSection(page string, id site.SectionID) bool {
	if !c.Catalog.Known(id) {
		return false
	}
	return c.editPage(page, func(sections []site.SectionID) []site.SectionID {
		return AddSection(sections, id)
	})
}

// RemoveSection drops id from page unless the section is required.
func (c *Composer) RemoveSection(page string, id site.SectionID) bool {
	return c.editPage(page, func(sections []site.SectionID) []site.SectionID {
		return RemoveSection(c.Catalog, sections, id)
	})
}

// MoveSection moves id to index to within page.
func (c *Composer) MoveSection(page string, id site.SectionID, to int) bool {
	return c.editPage(page, func(sections []site.SectionID) []site.SectionID {
		return MoveSection(sections, id, to)
	})
}

func (c *Composer) editPage(page string, fn func([]site.SectionID) []site.SectionID) bool {
	changed := false
	c.Editor.Modify(func(doc site.Document) site.Patch {
		current, ok := doc.Pages[page]
		if !ok {
			return site.Patch{}
		}
		next := fn(current)
		if slices.Equal(next, current) {
			return site.Patch{}
		}
		doc.Pages[page] = next
		changed = true
		return site.Patch{Pages: doc.Pages}
	})
	return changed
}

// ToggleSection enables or disables id in single-page mode. Required
// sections cannot be disabled. A known section missing from the canonical
// order is appended to it first.
func (c *Composer) ToggleSection(id site.SectionID) bool {
	if !c.Catalog.Known(id) || c.Catalog.IsRequired(id) {
		return false
	}
	changed := false
	c.Editor.Modify(func(doc site.Document) site.Patch {
		order := doc.SinglePageSectionOrder
		var p site.Patch
		if !slices.Contains(order, id) {
			order = append(slices.Clone(order), id)
			p.SinglePageSectionOrder = order
		}
		home := ToggleSinglePage(c.Catalog, order, doc.HomeSections(), id)
		if slices.Equal(home, doc.HomeSections()) && p.SinglePageSectionOrder == nil {
			return site.Patch{}
		}
		p.Pages = withHome(doc.Pages, home)
		changed = true
		return p
	})
	return changed
}

// MoveInOrder moves id to index to in the canonical single-page order and
// recomputes the home page from it.
func (c *Composer) MoveInOrder(id site.SectionID, to int) bool {
	changed := false
	c.Editor.Modify(func(doc site.Document) site.Patch {
		order, home := ReorderSinglePage(c.Catalog, doc.SinglePageSectionOrder, doc.HomeSections(), id, to)
		return c.orderPatch(doc, order, home, &changed)
	})
	return changed
}

// ResetOrder restores the catalog order and recomputes the home page.
func (c *Composer) ResetOrder() bool {
	changed := false
	c.Editor.Modify(func(doc site.Document) site.Patch {
		order := c.Catalog.Order()
		home := EnabledHome(c.Catalog, order, doc.HomeSections())
		return c.orderPatch(doc, order, home, &changed)
	})
	return changed
}

func (c *Composer) orderPatch(doc site.Document, order, home []site.SectionID, changed *bool) site.Patch {
	if slices.Equal(order, doc.SinglePageSectionOrder) && slices.Equal(home, doc.HomeSections()) {
		return site.Patch{}
	}
	*changed = true
	return site.Patch{
		SinglePageSectionOrder: order,
		Pages:                  withHome(doc.Pages, home),
	}
}

// SelectPage makes page active if it exists.
func (c *Composer) SelectPage(page string) bool {
	changed := false
	c.Editor.Modify(func(doc site.Document) site.Patch {
		if !doc.HasPage(page) || doc.ActivePage == page {
			return site.Patch{}
		}
		changed = true
		return site.Patch{ActivePage: site.Ptr(page)}
	})
	return changed
}

// CreatePage adds a page labelled label holding the known sections in
// sections and returns its key. The key is a slug of the label made unique
// against existing pages.
func (c *Composer) CreatePage(label string, sections ...site.SectionID) string {
	label = strings.TrimSpace(label)
	doc := c.Editor.Document()
	key := uniqueKey(doc.Pages, Slugify(label))

	known := make([]site.SectionID, 0, len(sections))
	for _, id := range sections {
		if c.Catalog.Known(id) && !slices.Contains(known, id) {
			known = append(known, id)
		}
	}
	if label == "" {
		label = key
	}
	c.Editor.AddPage(key, label, known)
	return key
}

// RemovePage deletes page. The home page and missing pages are refused.
func (c *Composer) RemovePage(page string) bool {
	if page == site.HomePage || !c.Editor.Document().HasPage(page) {
		return false
	}
	c.Editor.DeletePage(page)
	return true
}

func withHome(pages map[string][]site.SectionID, home []site.SectionID) map[string][]site.SectionID {
	out := make(map[string][]site.SectionID, len(pages)+1)
	for k, v := range pages {
		out[k] = v
	}
	out[site.HomePage] = home
	return out
}

func uniqueKey(pages map[string][]site.SectionID, base string) string {
	if _, taken := pages[base]; !taken {
		return base
	}
	for n := 2; ; n++ {
		key := fmt.Sprintf("%s-%d", base, n)
		if _, taken := pages[key]; !taken {
			return key
		}
	}
}

const maxSlugLen = 40

// Slugify turns a page label into a page key: lowercase ASCII letters and
// digits separated by single hyphens. An empty result becomes "page".
func Slugify(label string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(label) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			hyphen = false
		case !hyphen && b.Len() > 0:
			b.WriteByte('-')
			hyphen = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxSlugLen {
		slug = strings.TrimRight(slug[:maxSlugLen], "-")
	}
	if slug == "" {
		return "page"
	}
	return slug
}
