// Package theme holds the named site color presets applied by the editor.
package theme

import "github.com/five82/composer/internal/site"

// Preset is a named color bundle.
type Preset struct {
	Name   string
	Colors site.Colors
}

// Presets is a lookup over the built-in presets. The zero value is ready to
// use.
type Presets struct{}

// Lookup returns the named preset's colors.
func (Presets) Lookup(name string) (site.Colors, bool) {
	p, ok := Get(name)
	return p.Colors, ok
}

var presetOrder = []string{"Modern", "Classic", "Minimal", "Bold", "Ocean", "Forest"}

// Get returns a preset by name.
func Get(name string) (Preset, bool) {
	switch name {
	case "Modern":
		return modernPreset(), true
	case "Classic":
		return classicPreset(), true
	case "Minimal":
		return minimalPreset(), true
	case "Bold":
		return boldPreset(), true
	case "Ocean":
		return oceanPreset(), true
	case "Forest":
		return forestPreset(), true
	}
	return Preset{}, false
}

// Next returns the preset name after current in the cycle.
func Next(current string) string {
	for i, name := range presetOrder {
		if name == current {
			return presetOrder[(i+1)%len(presetOrder)]
		}
	}
	return presetOrder[0]
}

// Names returns the preset names in display order.
func Names() []string {
	out := make([]string, len(presetOrder))
	copy(out, presetOrder)
	return out
}

// Match returns the name of the preset whose colors equal c.
func Match(c site.Colors) (string, bool) {
	for _, name := range presetOrder {
		if p, _ := Get(name); p.Colors == c {
			return name, true
		}
	}
	return "", false
}

func modernPreset() Preset {
	// Tailwind blue-600 / violet-600 on slate text
	return Preset{
		Name: "Modern",
		Colors: site.Colors{
			Primary:   "#2563eb",
			Secondary: "#7c3aed",
			Accent:    "#f59e0b",
			Heading:   "#0f172a",
			Text:      "#334155",
		},
	}
}

func classicPreset() Preset {
	return Preset{
		Name: "Classic",
		Colors: site.Colors{
			Primary:   "#1e3a5f",
			Secondary: "#8b5e3c",
			Accent:    "#c9a227",
			Heading:   "#1a1a1a",
			Text:      "#3d3d3d",
		},
	}
}

func minimalPreset() Preset {
	return Preset{
		Name: "Minimal",
		Colors: site.Colors{
			Primary:   "#111827",
			Secondary: "#6b7280",
			Accent:    "#111827",
			Heading:   "#111827",
			Text:      "#4b5563",
		},
	}
}

func boldPreset() Preset {
	return Preset{
		Name: "Bold",
		Colors: site.Colors{
			Primary:   "#dc2626",
			Secondary: "#111827",
			Accent:    "#facc15",
			Heading:   "#111827",
			Text:      "#1f2937",
		},
	}
}

func oceanPreset() Preset {
	// cyan/sky palette
	return Preset{
		Name: "Ocean",
		Colors: site.Colors{
			Primary:   "#0284c7",
			Secondary: "#06b6d4",
			Accent:    "#14b8a6",
			Heading:   "#0c4a6e",
			Text:      "#155e75",
		},
	}
}

func forestPreset() Preset {
	return Preset{
		Name: "Forest",
		Colors: site.Colors{
			Primary:   "#15803d",
			Secondary: "#65a30d",
			Accent:    "#ca8a04",
			Heading:   "#14532d",
			Text:      "#365314",
		},
	}
}
