package site

// Patch is a partial Document. Nil pointers, nil maps and nil slices are
// absent and leave the current value untouched.
type Patch struct {
	ThemeName              *string                `json:"themeName,omitempty"`
	Colors                 *ColorsPatch           `json:"colors,omitempty"`
	Logo                   *string                `json:"logo,omitempty"`
	Typography             *TypographyPatch       `json:"typography,omitempty"`
	Buttons                *ButtonsPatch          `json:"buttons,omitempty"`
	Layout                 *LayoutPatch           `json:"layout,omitempty"`
	Navigation             *NavigationPatch       `json:"navigation,omitempty"`
	MultiPageLayout        *bool                  `json:"multiPageLayout,omitempty"`
	SinglePageSectionOrder []SectionID            `json:"singlePageSectionOrder,omitempty"`
	Pages                  map[string][]SectionID `json:"pages,omitempty"`
	PageLabels             map[string]string      `json:"pageLabels,omitempty"`
	ActivePage             *string                `json:"activePage,omitempty"`
	SectionSettings        *SectionSettings       `json:"sectionSettings,omitempty"`
}

type ColorsPatch struct {
	Primary   *string `json:"primary,omitempty"`
	Secondary *string `json:"secondary,omitempty"`
	Accent    *string `json:"accent,omitempty"`
	Heading   *string `json:"heading,omitempty"`
	Text      *string `json:"text,omitempty"`
}

type TypographyPatch struct {
	HeadingFont *string    `json:"headingFont,omitempty"`
	BodyFont    *string    `json:"bodyFont,omitempty"`
	FontScale   *FontScale `json:"fontScale,omitempty"`
}

type ButtonsPatch struct {
	Style  *ButtonStyle `json:"style,omitempty"`
	Radius *int         `json:"radius,omitempty"`
}

type LayoutPatch struct {
	Spacing           *Spacing       `json:"spacing,omitempty"`
	ContentWidth      *ContentWidth  `json:"contentWidth,omitempty"`
	BorderRadius      *Radius        `json:"borderRadius,omitempty"`
	Shadow            *Shadow        `json:"shadow,omitempty"`
	Animation         *Animation     `json:"animation,omitempty"`
	HoverEffects      *bool          `json:"hoverEffects,omitempty"`
	HeroGradientType  *GradientType  `json:"heroGradientType,omitempty"`
	HeroGradientAngle *int           `json:"heroGradientAngle,omitempty"`
	HeroGradientStops []GradientStop `json:"heroGradientStops,omitempty"`
	HeroGradient      *string        `json:"heroGradient,omitempty"`
}

type NavigationPatch struct {
	Enabled *bool     `json:"enabled,omitempty"`
	Style   *NavStyle `json:"style,omitempty"`
}

// Ptr returns a pointer to v, for building patches.
func Ptr[T any](v T) *T {
	return &v
}

// IsEmpty reports whether the patch names no fields.
func (p Patch) IsEmpty() bool {
	return p.ThemeName == nil &&
		p.Colors == nil &&
		p.Logo == nil &&
		p.Typography == nil &&
		p.Buttons == nil &&
		p.Layout == nil &&
		p.Navigation == nil &&
		p.MultiPageLayout == nil &&
		p.SinglePageSectionOrder == nil &&
		p.Pages == nil &&
		p.PageLabels == nil &&
		p.ActivePage == nil &&
		p.SectionSettings == nil
}

// Patch returns a sub-patch that sets every color role.
func (c Colors) Patch() *ColorsPatch {
	return &ColorsPatch{
		Primary:   Ptr(c.Primary),
		Secondary: Ptr(c.Secondary),
		Accent:    Ptr(c.Accent),
		Heading:   Ptr(c.Heading),
		Text:      Ptr(c.Text),
	}
}

// Patch returns a sub-patch that sets every typography field.
func (t Typography) Patch() *TypographyPatch {
	return &TypographyPatch{
		HeadingFont: Ptr(t.HeadingFont),
		BodyFont:    Ptr(t.BodyFont),
		FontScale:   Ptr(t.FontScale),
	}
}

// Patch returns a sub-patch that sets every button field.
func (b Buttons) Patch() *ButtonsPatch {
	return &ButtonsPatch{
		Style:  Ptr(b.Style),
		Radius: Ptr(b.Radius),
	}
}

// Patch returns a sub-patch that sets every layout field.
func (l Layout) Patch() *LayoutPatch {
	stops := cloneStops(l.HeroGradientStops)
	if stops == nil {
		stops = []GradientStop{}
	}
	return &LayoutPatch{
		Spacing:           Ptr(l.Spacing),
		ContentWidth:      Ptr(l.ContentWidth),
		BorderRadius:      Ptr(l.BorderRadius),
		Shadow:            Ptr(l.Shadow),
		Animation:         Ptr(l.Animation),
		HoverEffects:      Ptr(l.HoverEffects),
		HeroGradientType:  Ptr(l.HeroGradientType),
		HeroGradientAngle: Ptr(l.HeroGradientAngle),
		HeroGradientStops: stops,
		HeroGradient:      Ptr(l.HeroGradient),
	}
}

// Patch returns a sub-patch that sets every navigation field.
func (n Navigation) Patch() *NavigationPatch {
	return &NavigationPatch{
		Enabled: Ptr(n.Enabled),
		Style:   Ptr(n.Style),
	}
}
