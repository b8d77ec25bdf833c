package state

import (
	"maps"
	"slices"

	"github.com/five82/composer/internal/site"
)

// Field accessors. Each returns a copy.

func (s *Store) ThemeName() string { return s.Document().ThemeName }

func (s *Store) Colors() site.Colors { return s.Document().Colors }

func (s *Store) Logo() string { return s.Document().Logo }

func (s *Store) Typography() site.Typography { return s.Document().Typography }

func (s *Store) Buttons() site.Buttons { return s.Document().Buttons }

func (s *Store) Layout() site.Layout { return s.Document().Layout }

func (s *Store) Navigation() site.Navigation { return s.Document().Navigation }

func (s *Store) MultiPageLayout() bool { return s.Document().MultiPageLayout }

func (s *Store) SinglePageSectionOrder() []site.SectionID {
	return s.Document().SinglePageSectionOrder
}

func (s *Store) Pages() map[string][]site.SectionID { return s.Document().Pages }

func (s *Store) PageLabels() map[string]string { return s.Document().PageLabels }

func (s *Store) ActivePage() string { return s.Document().ActivePage }

func (s *Store) SectionSettings() site.SectionSettings {
	return s.Document().SectionSettings
}

// SetColors replaces the color roles.
func (s *Store) SetColors(c site.Colors) {
	s.UpdateColors(func(site.Colors) site.Colors { return c })
}

// UpdateColors replaces the color roles with fn(prev). The theme name is
// cleared once the colors stop matching the named preset.
func (s *Store) UpdateColors(fn func(prev site.Colors) site.Colors) {
	s.Modify(func(doc site.Document) site.Patch {
		next := fn(doc.Colors)
		p := site.Patch{Colors: next.Patch()}
		if doc.ThemeName != "" && s.presets != nil {
			if preset, ok := s.presets.Lookup(doc.ThemeName); !ok || preset != next {
				p.ThemeName = site.Ptr("")
			}
		}
		return p
	})
}

func (s *Store) SetLogo(logo string) {
	s.UpdateLogo(func(string) string { return logo })
}

func (s *Store) UpdateLogo(fn func(prev string) string) {
	s.Modify(func(doc site.Document) site.Patch {
		return site.Patch{Logo: site.Ptr(fn(doc.Logo))}
	})
}

func (s *Store) SetTypography(t site.Typography) {
	s.UpdateTypography(func(site.Typography) site.Typography { return t })
}

func (s *Store) UpdateTypography(fn func(prev site.Typography) site.Typography) {
	s.Modify(func(doc site.Document) site.Patch {
		return site.Patch{Typography: fn(doc.Typography).Patch()}
	})
}

func (s *Store) SetButtons(b site.Buttons) {
	s.UpdateButtons(func(site.Buttons) site.Buttons { return b })
}

func (s *Store) UpdateButtons(fn func(prev site.Buttons) site.Buttons) {
	s.Modify(func(doc site.Document) site.Patch {
		return site.Patch{Buttons: fn(doc.Buttons).Patch()}
	})
}

// SetLayout replaces the layout settings. HeroGradient is recomputed from
// the gradient fields.
func (s *Store) SetLayout(l site.Layout) {
	l = l.Clone()
	s.UpdateLayout(func(site.Layout) site.Layout { return l })
}

// UpdateLayout replaces the layout settings with fn(prev). HeroGradient is
// recomputed from the gradient fields.
func (s *Store) UpdateLayout(fn func(prev site.Layout) site.Layout) {
	s.Modify(func(doc site.Document) site.Patch {
		next := fn(doc.Layout)
		next = next.SyncGradient()
		return site.Patch{Layout: next.Patch()}
	})
}

// SetHeroGradient replaces the hero gradient definition.
func (s *Store) SetHeroGradient(kind site.GradientType, angle int, stops []site.GradientStop) {
	stops = slices.Clone(stops)
	s.UpdateLayout(func(l site.Layout) site.Layout {
		l.HeroGradientType = kind
		l.HeroGradientAngle = angle
		l.HeroGradientStops = stops
		return l
	})
}

func (s *Store) SetNavigation(n site.Navigation) {
	s.UpdateNavigation(func(site.Navigation) site.Navigation { return n })
}

func (s *Store) UpdateNavigation(fn func(prev site.Navigation) site.Navigation) {
	s.Modify(func(doc site.Document) site.Patch {
		return site.Patch{Navigation: fn(doc.Navigation).Patch()}
	})
}

func (s *Store) SetMultiPageLayout(on bool) {
	s.UpdateMultiPageLayout(func(bool) bool { return on })
}

func (s *Store) UpdateMultiPageLayout(fn func(prev bool) bool) {
	s.Modify(func(doc site.Document) site.Patch {
		return site.Patch{MultiPageLayout: site.Ptr(fn(doc.MultiPageLayout))}
	})
}

func (s *Store) SetSinglePageSectionOrder(order []site.SectionID) {
	order = slices.Clone(order)
	s.UpdateSinglePageSectionOrder(func([]site.SectionID) []site.SectionID { return order })
}

func (s *Store) UpdateSinglePageSectionOrder(fn func(prev []site.SectionID) []site.SectionID) {
	s.Modify(func(doc site.Document) site.Patch {
		next := fn(doc.SinglePageSectionOrder)
		if next == nil {
			next = []site.SectionID{}
		}
		return site.Patch{SinglePageSectionOrder: next}
	})
}

func (s *Store) SetPages(pages map[string][]site.SectionID) {
	pages = clonePages(pages)
	s.UpdatePages(func(map[string][]site.SectionID) map[string][]site.SectionID { return pages })
}

func (s *Store) UpdatePages(fn func(prev map[string][]site.SectionID) map[string][]site.SectionID) {
	s.Modify(func(doc site.Document) site.Patch {
		next := fn(doc.Pages)
		if next == nil {
			next = map[string][]site.SectionID{}
		}
		return site.Patch{Pages: next}
	})
}

// SetSectionSettings merges settings per section: sections left nil keep
// their current settings.
func (s *Store) SetSectionSettings(settings site.SectionSettings) {
	settings = settings.Clone()
	s.UpdateSectionSettings(func(site.SectionSettings) site.SectionSettings { return settings })
}

func (s *Store) UpdateSectionSettings(fn func(prev site.SectionSettings) site.SectionSettings) {
	s.Modify(func(doc site.Document) site.Patch {
		next := fn(doc.SectionSettings)
		return site.Patch{SectionSettings: &next}
	})
}

// ApplyTheme sets the named preset's colors and the theme name as one undo
// step. It reports false and changes nothing for an unknown name.
func (s *Store) ApplyTheme(name string) bool {
	if s.readOnly || s.presets == nil {
		return false
	}
	colors, ok := s.presets.Lookup(name)
	if !ok {
		return false
	}
	s.ApplyChange(site.Patch{
		ThemeName: site.Ptr(name),
		Colors:    colors.Patch(),
	})
	return true
}

// SetActivePage selects the page being edited. The key is not checked
// against the page map.
func (s *Store) SetActivePage(page string) {
	s.ApplyChange(site.Patch{ActivePage: site.Ptr(page)})
}

// AddPage creates or replaces page id with the given label and sections and
// makes it active, as one undo step.
func (s *Store) AddPage(id, label string, sections []site.SectionID) {
	sections = slices.Clone(sections)
	if sections == nil {
		sections = []site.SectionID{}
	}
	s.Modify(func(doc site.Document) site.Patch {
		pages := clonePages(doc.Pages)
		if pages == nil {
			pages = map[string][]site.SectionID{}
		}
		pages[id] = sections

		labels := maps.Clone(doc.PageLabels)
		if labels == nil {
			labels = map[string]string{}
		}
		labels[id] = label

		return site.Patch{Pages: pages, PageLabels: labels, ActivePage: site.Ptr(id)}
	})
}

// DeletePage removes page id and its label as one undo step. When id was
// active the home page becomes active. Protecting the home page is the
// caller's job.
func (s *Store) DeletePage(id string) {
	s.Modify(func(doc site.Document) site.Patch {
		pages := clonePages(doc.Pages)
		if pages == nil {
			pages = map[string][]site.SectionID{}
		}
		delete(pages, id)

		labels := maps.Clone(doc.PageLabels)
		if labels == nil {
			labels = map[string]string{}
		}
		delete(labels, id)

		active := doc.ActivePage
		if active == id {
			active = site.HomePage
		}
		return site.Patch{Pages: pages, PageLabels: labels, ActivePage: site.Ptr(active)}
	})
}

func clonePages(pages map[string][]site.SectionID) map[string][]site.SectionID {
	if pages == nil {
		return nil
	}
	out := make(map[string][]site.SectionID, len(pages))
	for k, v := range pages {
		out[k] = slices.Clone(v)
	}
	return out
}
