package ui

import "testing"

func TestPaletteNames(t *testing.T) {
	names := PaletteNames()
	if len(names) != 3 {
		t.Fatalf("PaletteNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Nightfox" || names[1] != "Kanagawa" || names[2] != "Slate" {
		t.Fatalf("PaletteNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}

	names[0] = "changed"
	if PaletteNames()[0] != "Nightfox" {
		t.Fatalf("PaletteNames() should return a copy")
	}
}

func TestNextPalette(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"Unknown", "Nightfox"},
	}
	for _, tc := range tests {
		if got := NextPalette(tc.current); got != tc.want {
			t.Fatalf("NextPalette(%s) = %q, want %q", tc.current, got, tc.want)
		}
	}
}

func TestGetPalette(t *testing.T) {
	for _, name := range PaletteNames() {
		if got := GetPalette(name).Name; got != name {
			t.Fatalf("GetPalette(%s).Name = %q", name, got)
		}
	}

	unknown := GetPalette("Unknown")
	if unknown.Name != "Nightfox" {
		t.Fatalf("GetPalette(Unknown).Name = %q, want Nightfox (fallback)", unknown.Name)
	}
}

func TestPalettesDefineBadges(t *testing.T) {
	for _, name := range PaletteNames() {
		p := GetPalette(name)
		for _, badge := range []string{"required", "live", "unsaved", "readonly"} {
			if p.BadgeColors[badge] == "" {
				t.Fatalf("%s palette missing %s badge color", name, badge)
			}
		}
	}
}
