package site

// Clone returns a deep copy of d. Later mutation of either value cannot be
// observed through the other. nil slices and maps stay nil.
func (d Document) Clone() Document {
	out := d
	out.Layout = d.Layout.Clone()
	out.SinglePageSectionOrder = cloneSections(d.SinglePageSectionOrder)
	out.Pages = clonePages(d.Pages)
	out.PageLabels = cloneLabels(d.PageLabels)
	out.SectionSettings = d.SectionSettings.Clone()
	return out
}

// Clone returns a copy of l with its own stop list.
func (l Layout) Clone() Layout {
	out := l
	out.HeroGradientStops = cloneStops(l.HeroGradientStops)
	return out
}

// Clone returns a copy of s where every present section is copied.
func (s SectionSettings) Clone() SectionSettings {
	var out SectionSettings
	if s.Hero != nil {
		hero := *s.Hero
		out.Hero = &hero
	}
	if s.About != nil {
		about := *s.About
		out.About = &about
	}
	if s.Benefits != nil {
		benefits := *s.Benefits
		benefits.Items = cloneSlice(s.Benefits.Items)
		out.Benefits = &benefits
	}
	if s.Jobs != nil {
		jobs := *s.Jobs
		out.Jobs = &jobs
	}
	if s.Locations != nil {
		locations := *s.Locations
		locations.Options = cloneSlice(s.Locations.Options)
		out.Locations = &locations
	}
	if s.Testimonials != nil {
		testimonials := *s.Testimonials
		testimonials.Items = cloneSlice(s.Testimonials.Items)
		out.Testimonials = &testimonials
	}
	if s.Contact != nil {
		contact := *s.Contact
		out.Contact = &contact
	}
	if s.Footer != nil {
		footer := *s.Footer
		footer.Links = cloneSlice(s.Footer.Links)
		out.Footer = &footer
	}
	return out
}

func cloneSections(ids []SectionID) []SectionID {
	return cloneSlice(ids)
}

func cloneStops(stops []GradientStop) []GradientStop {
	return cloneSlice(stops)
}

func clonePages(pages map[string][]SectionID) map[string][]SectionID {
	if pages == nil {
		return nil
	}
	out := make(map[string][]SectionID, len(pages))
	for key, ids := range pages {
		out[key] = cloneSections(ids)
	}
	return out
}

func cloneLabels(labels map[string]string) map[string]string {
	if labels == nil {
		return nil
	}
	out := make(map[string]string, len(labels))
	for key, label := range labels {
		out[key] = label
	}
	return out
}

// cloneSlice copies a slice of value types element by element.
func cloneSlice[T any](items []T) []T {
	if items == nil {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
