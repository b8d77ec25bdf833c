package site

// Merge returns a new Document with p applied over current. Record fields
// (colors, typography, buttons, layout, navigation) merge one level deep;
// section settings merge per section, replacing each named section whole;
// every other field is replaced outright. Neither input is modified and the
// result shares no mutable structure with them.
func Merge(current Document, p Patch) Document {
	out := current.Clone()

	if p.ThemeName != nil {
		out.ThemeName = *p.ThemeName
	}
	if p.Colors != nil {
		out.Colors = mergeColors(out.Colors, *p.Colors)
	}
	if p.Logo != nil {
		out.Logo = *p.Logo
	}
	if p.Typography != nil {
		out.Typography = mergeTypography(out.Typography, *p.Typography)
	}
	if p.Buttons != nil {
		out.Buttons = mergeButtons(out.Buttons, *p.Buttons)
	}
	if p.Layout != nil {
		out.Layout = mergeLayout(out.Layout, *p.Layout)
	}
	if p.Navigation != nil {
		out.Navigation = mergeNavigation(out.Navigation, *p.Navigation)
	}
	if p.MultiPageLayout != nil {
		out.MultiPageLayout = *p.MultiPageLayout
	}
	if p.SinglePageSectionOrder != nil {
		out.SinglePageSectionOrder = cloneSections(p.SinglePageSectionOrder)
	}
	if p.Pages != nil {
		out.Pages = clonePages(p.Pages)
	}
	if p.PageLabels != nil {
		out.PageLabels = cloneLabels(p.PageLabels)
	}
	if p.ActivePage != nil {
		out.ActivePage = *p.ActivePage
	}
	if p.SectionSettings != nil {
		out.SectionSettings = mergeSectionSettings(out.SectionSettings, *p.SectionSettings)
	}
	return out
}

func mergeColors(c Colors, p ColorsPatch) Colors {
	set(&c.Primary, p.Primary)
	set(&c.Secondary, p.Secondary)
	set(&c.Accent, p.Accent)
	set(&c.Heading, p.Heading)
	set(&c.Text, p.Text)
	return c
}

func mergeTypography(t Typography, p TypographyPatch) Typography {
	set(&t.HeadingFont, p.HeadingFont)
	set(&t.BodyFont, p.BodyFont)
	set(&t.FontScale, p.FontScale)
	return t
}

func mergeButtons(b Buttons, p ButtonsPatch) Buttons {
	set(&b.Style, p.Style)
	set(&b.Radius, p.Radius)
	return b
}

func mergeLayout(l Layout, p LayoutPatch) Layout {
	set(&l.Spacing, p.Spacing)
	set(&l.ContentWidth, p.ContentWidth)
	set(&l.BorderRadius, p.BorderRadius)
	set(&l.Shadow, p.Shadow)
	set(&l.Animation, p.Animation)
	set(&l.HoverEffects, p.HoverEffects)
	set(&l.HeroGradientType, p.HeroGradientType)
	set(&l.HeroGradientAngle, p.HeroGradientAngle)
	if p.HeroGradientStops != nil {
		l.HeroGradientStops = cloneStops(p.HeroGradientStops)
	}
	set(&l.HeroGradient, p.HeroGradient)
	return l
}

func mergeNavigation(n Navigation, p NavigationPatch) Navigation {
	set(&n.Enabled, p.Enabled)
	set(&n.Style, p.Style)
	return n
}

func mergeSectionSettings(s SectionSettings, p SectionSettings) SectionSettings {
	patch := p.Clone()
	replace(&s.Hero, patch.Hero)
	replace(&s.About, patch.About)
	replace(&s.Benefits, patch.Benefits)
	replace(&s.Jobs, patch.Jobs)
	replace(&s.Locations, patch.Locations)
	replace(&s.Testimonials, patch.Testimonials)
	replace(&s.Contact, patch.Contact)
	replace(&s.Footer, patch.Footer)
	return s
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func replace[T any](dst **T, v *T) {
	if v != nil {
		*dst = v
	}
}
