package site

// DefaultSectionOrder returns the canonical section order.
func DefaultSectionOrder() []SectionID {
	return []SectionID{
		SectionHero,
		SectionAbout,
		SectionBenefits,
		SectionJobs,
		SectionLocations,
		SectionTestimonials,
		SectionContact,
		SectionFooter,
	}
}

// DefaultDocument returns a fresh starting document for a new authoring
// session. Each call returns an independent value.
func DefaultDocument() Document {
	layout := Layout{
		Spacing:           SpacingNormal,
		ContentWidth:      WidthNormal,
		BorderRadius:      RadiusMedium,
		Shadow:            ShadowSubtle,
		Animation:         AnimationSubtle,
		HoverEffects:      true,
		HeroGradientType:  GradientLinear,
		HeroGradientAngle: 135,
		HeroGradientStops: []GradientStop{
			{Color: "#2563eb", Position: 0},
			{Color: "#7c3aed", Position: 100},
		},
	}
	layout.HeroGradient = layout.GradientCSS()

	return Document{
		ThemeName: "Modern",
		Colors: Colors{
			Primary:   "#2563eb",
			Secondary: "#7c3aed",
			Accent:    "#f59e0b",
			Heading:   "#0f172a",
			Text:      "#334155",
		},
		Typography: Typography{
			HeadingFont: "Inter",
			BodyFont:    "Inter",
			FontScale:   FontScaleMedium,
		},
		Buttons: Buttons{
			Style:  ButtonSolid,
			Radius: 8,
		},
		Layout: layout,
		Navigation: Navigation{
			Enabled: true,
			Style:   NavHeader,
		},
		MultiPageLayout:        false,
		SinglePageSectionOrder: DefaultSectionOrder(),
		Pages: map[string][]SectionID{
			HomePage: {SectionHero, SectionAbout, SectionBenefits, SectionJobs, SectionFooter},
		},
		PageLabels: map[string]string{},
		ActivePage: HomePage,
		SectionSettings: SectionSettings{
			Hero: &HeroSettings{
				Headline:     "Build your career with us",
				Subheadline:  "Join a team that ships.",
				CTALabel:     "View open roles",
				CTAURL:       "#jobs",
				ShowGradient: true,
			},
			Benefits: &BenefitsSettings{
				Title: "Why join us",
				Items: []BenefitItem{
					{Icon: "heart", Title: "Health", Description: "Full medical, dental and vision."},
					{Icon: "clock", Title: "Flexible hours", Description: "Work when you work best."},
					{Icon: "globe", Title: "Remote friendly", Description: "Offices optional."},
				},
			},
			Jobs: &JobsSettings{
				Title:        "Open positions",
				ShowFilters:  true,
				PageSize:     10,
				EmptyMessage: "No open positions right now.",
			},
			Footer: &FooterSettings{
				Text: "All rights reserved.",
			},
		},
	}
}
