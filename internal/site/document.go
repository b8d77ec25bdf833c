package site

// SectionID names a reusable content block that can be placed on pages.
type SectionID string

// Known section identifiers, in catalog order.
const (
	SectionHero         SectionID = "hero"
	SectionAbout        SectionID = "about"
	SectionBenefits     SectionID = "benefits"
	SectionJobs         SectionID = "jobs"
	SectionLocations    SectionID = "locations"
	SectionTestimonials SectionID = "testimonials"
	SectionContact      SectionID = "contact"
	SectionFooter       SectionID = "footer"
)

// HomePage is the page key that always exists.
const HomePage = "home"

// FontScale controls the base type size.
type FontScale string

const (
	FontScaleSmall  FontScale = "small"
	FontScaleMedium FontScale = "medium"
	FontScaleLarge  FontScale = "large"
)

// ButtonStyle is the visual treatment applied to buttons.
type ButtonStyle string

const (
	ButtonSolid   ButtonStyle = "solid"
	ButtonOutline ButtonStyle = "outline"
	ButtonSoft    ButtonStyle = "soft"
	ButtonPill    ButtonStyle = "pill"
)

// Spacing is the vertical rhythm between sections.
type Spacing string

const (
	SpacingCompact Spacing = "compact"
	SpacingNormal  Spacing = "normal"
	SpacingRelaxed Spacing = "relaxed"
)

// ContentWidth is the maximum width of section content.
type ContentWidth string

const (
	WidthNarrow ContentWidth = "narrow"
	WidthNormal ContentWidth = "normal"
	WidthWide   ContentWidth = "wide"
	WidthFull   ContentWidth = "full"
)

// Radius is a named corner radius for cards and panels.
type Radius string

const (
	RadiusNone   Radius = "none"
	RadiusSmall  Radius = "small"
	RadiusMedium Radius = "medium"
	RadiusLarge  Radius = "large"
)

// Shadow is the elevation applied to cards.
type Shadow string

const (
	ShadowNone   Shadow = "none"
	ShadowSubtle Shadow = "subtle"
	ShadowMedium Shadow = "medium"
	ShadowStrong Shadow = "strong"
)

// Animation is the motion preset used for section entrances.
type Animation string

const (
	AnimationNone    Animation = "none"
	AnimationSubtle  Animation = "subtle"
	AnimationSmooth  Animation = "smooth"
	AnimationPlayful Animation = "playful"
)

// GradientType selects the CSS gradient function.
type GradientType string

const (
	GradientLinear GradientType = "linear"
	GradientRadial GradientType = "radial"
)

// NavStyle is where navigation is rendered.
type NavStyle string

const (
	NavHeader  NavStyle = "header"
	NavSidebar NavStyle = "sidebar"
	NavBoth    NavStyle = "both"
)

// Document is the complete description of a site under edit.
type Document struct {
	ThemeName              string                 `json:"themeName"`
	Colors                 Colors                 `json:"colors"`
	Logo                   string                 `json:"logo"`
	Typography             Typography             `json:"typography"`
	Buttons                Buttons                `json:"buttons"`
	Layout                 Layout                 `json:"layout"`
	Navigation             Navigation             `json:"navigation"`
	MultiPageLayout        bool                   `json:"multiPageLayout"`
	SinglePageSectionOrder []SectionID            `json:"singlePageSectionOrder"`
	Pages                  map[string][]SectionID `json:"pages"`
	PageLabels             map[string]string      `json:"pageLabels,omitempty"`
	ActivePage             string                 `json:"activePage"`
	SectionSettings        SectionSettings        `json:"sectionSettings"`
}

// Colors holds the five named color roles.
type Colors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Heading   string `json:"heading"`
	Text      string `json:"text"`
}

// Typography holds font choices.
type Typography struct {
	HeadingFont string    `json:"headingFont"`
	BodyFont    string    `json:"bodyFont"`
	FontScale   FontScale `json:"fontScale"`
}

// Buttons holds button styling.
type Buttons struct {
	Style  ButtonStyle `json:"style"`
	Radius int         `json:"radius"`
}

// Layout holds spacing, surface and hero gradient settings.
// HeroGradient is the CSS rendition of the gradient fields.
type Layout struct {
	Spacing           Spacing        `json:"spacing"`
	ContentWidth      ContentWidth   `json:"contentWidth"`
	BorderRadius      Radius         `json:"borderRadius"`
	Shadow            Shadow         `json:"shadow"`
	Animation         Animation      `json:"animation"`
	HoverEffects      bool           `json:"hoverEffects"`
	HeroGradientType  GradientType   `json:"heroGradientType"`
	HeroGradientAngle int            `json:"heroGradientAngle"`
	HeroGradientStops []GradientStop `json:"heroGradientStops"`
	HeroGradient      string         `json:"heroGradient"`
}

// GradientStop is one color stop; Position is a percentage.
type GradientStop struct {
	Color    string `json:"color"`
	Position int    `json:"position"`
}

// Navigation holds site navigation settings.
type Navigation struct {
	Enabled bool     `json:"enabled"`
	Style   NavStyle `json:"style"`
}

// HomeSections returns the sections placed on the home page.
func (d Document) HomeSections() []SectionID {
	return d.Pages[HomePage]
}

// HasPage reports whether key names a page.
func (d Document) HasPage(key string) bool {
	_, ok := d.Pages[key]
	return ok
}

// PageLabel returns the display label for a page key.
func (d Document) PageLabel(key string) string {
	if label := d.PageLabels[key]; label != "" {
		return label
	}
	if key == HomePage {
		return "Home"
	}
	return key
}
