package site

// SectionSettings holds each section's own content. A nil field means the
// section has no settings yet. It is also used as a patch: a non-nil field
// replaces that section's settings wholesale.
type SectionSettings struct {
	Hero         *HeroSettings         `json:"hero,omitempty"`
	About        *AboutSettings        `json:"about,omitempty"`
	Benefits     *BenefitsSettings     `json:"benefits,omitempty"`
	Jobs         *JobsSettings         `json:"jobs,omitempty"`
	Locations    *LocationsSettings    `json:"locations,omitempty"`
	Testimonials *TestimonialsSettings `json:"testimonials,omitempty"`
	Contact      *ContactSettings      `json:"contact,omitempty"`
	Footer       *FooterSettings       `json:"footer,omitempty"`
}

type HeroSettings struct {
	Headline        string `json:"headline"`
	Subheadline     string `json:"subheadline"`
	CTALabel        string `json:"ctaLabel"`
	CTAURL          string `json:"ctaUrl"`
	BackgroundImage string `json:"backgroundImage"`
	ShowGradient    bool   `json:"showGradient"`
}

type AboutSettings struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Image string `json:"image"`
}

type BenefitsSettings struct {
	Title string        `json:"title"`
	Items []BenefitItem `json:"items"`
}

type BenefitItem struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type JobsSettings struct {
	Title        string `json:"title"`
	ShowFilters  bool   `json:"showFilters"`
	PageSize     int    `json:"pageSize"`
	EmptyMessage string `json:"emptyMessage"`
}

type LocationsSettings struct {
	Title   string           `json:"title"`
	Options []LocationOption `json:"options"`
}

// LocationOption is a map pin.
type LocationOption struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type TestimonialsSettings struct {
	Title string        `json:"title"`
	Items []Testimonial `json:"items"`
}

type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

type ContactSettings struct {
	Title string `json:"title"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type FooterSettings struct {
	Text  string       `json:"text"`
	Links []FooterLink `json:"links"`
}

type FooterLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Has reports whether settings exist for the section.
func (s SectionSettings) Has(id SectionID) bool {
	switch id {
	case SectionHero:
		return s.Hero != nil
	case SectionAbout:
		return s.About != nil
	case SectionBenefits:
		return s.Benefits != nil
	case SectionJobs:
		return s.Jobs != nil
	case SectionLocations:
		return s.Locations != nil
	case SectionTestimonials:
		return s.Testimonials != nil
	case SectionContact:
		return s.Contact != nil
	case SectionFooter:
		return s.Footer != nil
	}
	return false
}
