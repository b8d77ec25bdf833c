// Package catalog is the static table of known sections. It is read-only
// reference data: which sections exist, their display metadata, which ones
// every site must keep, and the canonical order they are declared in.
package catalog

import "github.com/five82/composer/internal/site"

// Section describes one catalog entry.
type Section struct {
	ID          site.SectionID
	Label       string
	Description string
	Icon        string
	Required    bool
}

// Catalog is an ordered, immutable set of sections.
type Catalog struct {
	sections []Section
	index    map[site.SectionID]int
}

// New builds a catalog from entries in declared order. Later duplicates of an
// ID are ignored.
func New(sections []Section) Catalog {
	c := Catalog{index: make(map[site.SectionID]int, len(sections))}
	for _, s := range sections {
		if _, dup := c.index[s.ID]; dup {
			continue
		}
		c.index[s.ID] = len(c.sections)
		c.sections = append(c.sections, s)
	}
	return c
}

// Default returns the built-in section catalog.
func Default() Catalog {
	return New([]Section{
		{ID: site.SectionHero, Label: "Hero", Description: "Headline, call to action and hero gradient", Icon: "★", Required: true},
		{ID: site.SectionAbout, Label: "About", Description: "Company story with an optional image", Icon: "ℹ"},
		{ID: site.SectionBenefits, Label: "Benefits", Description: "Grid of perks and benefits", Icon: "♥"},
		{ID: site.SectionJobs, Label: "Jobs", Description: "Open positions with filters", Icon: "☰"},
		{ID: site.SectionLocations, Label: "Locations", Description: "Office map pins", Icon: "⌖"},
		{ID: site.SectionTestimonials, Label: "Testimonials", Description: "Quotes from the team", Icon: "❝"},
		{ID: site.SectionContact, Label: "Contact", Description: "Email and phone contact block", Icon: "✉"},
		{ID: site.SectionFooter, Label: "Footer", Description: "Footer text and links", Icon: "▁", Required: true},
	})
}

// Sections returns every entry in declared order.
func (c Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// Lookup returns the entry for id.
func (c Catalog) Lookup(id site.SectionID) (Section, bool) {
	i, ok := c.index[id]
	if !ok {
		return Section{}, false
	}
	return c.sections[i], true
}

// Known reports whether id is in the catalog.
func (c Catalog) Known(id site.SectionID) bool {
	_, ok := c.index[id]
	return ok
}

// IsRequired reports whether id must always stay on the home page.
func (c Catalog) IsRequired(id site.SectionID) bool {
	s, ok := c.Lookup(id)
	return ok && s.Required
}

// Order returns section IDs in declared order.
func (c Catalog) Order() []site.SectionID {
	ids := make([]site.SectionID, len(c.sections))
	for i, s := range c.sections {
		ids[i] = s.ID
	}
	return ids
}

// Required returns the required section IDs in declared order.
func (c Catalog) Required() []site.SectionID {
	var ids []site.SectionID
	for _, s := range c.sections {
		if s.Required {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// Label returns the display label for id, or the raw ID when unknown.
func (c Catalog) Label(id site.SectionID) string {
	if s, ok := c.Lookup(id); ok {
		return s.Label
	}
	return string(id)
}
