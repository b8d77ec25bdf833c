package theme

import (
	"testing"

	"github.com/five82/composer/internal/site"
)

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 6 {
		t.Fatalf("Names() returned %d names, want 6", len(names))
	}
	if names[0] != "Modern" {
		t.Fatalf("Names()[0] = %q, want Modern", names[0])
	}
	for _, name := range names {
		p, ok := Get(name)
		if !ok || p.Name != name {
			t.Fatalf("Get(%q) = %#v, %v", name, p, ok)
		}
	}
}

func TestNext(t *testing.T) {
	if got := Next("Modern"); got != "Classic" {
		t.Fatalf("Next(Modern) = %q, want Classic", got)
	}
	if got := Next("Forest"); got != "Modern" {
		t.Fatalf("Next(Forest) = %q, want Modern", got)
	}
	if got := Next("Unknown"); got != "Modern" {
		t.Fatalf("Next(Unknown) = %q, want Modern", got)
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, ok := Get("Unknown"); ok {
		t.Fatalf("Get(Unknown) ok = true, want false")
	}
}

func TestDefaultDocumentUsesModernColors(t *testing.T) {
	doc := site.DefaultDocument()
	p, _ := Get(doc.ThemeName)
	if p.Colors != doc.Colors {
		t.Fatalf("default colors = %#v, want %s preset %#v", doc.Colors, doc.ThemeName, p.Colors)
	}
}

func TestMatch(t *testing.T) {
	ocean, _ := Get("Ocean")
	if name, ok := Match(ocean.Colors); !ok || name != "Ocean" {
		t.Fatalf("Match(ocean) = %q, %v", name, ok)
	}
	if _, ok := Match(site.Colors{Primary: "#abcdef"}); ok {
		t.Fatalf("Match(custom) ok = true, want false")
	}
}

func TestPresets_Lookup(t *testing.T) {
	var p Presets
	colors, ok := p.Lookup("Bold")
	if !ok || colors.Primary != "#dc2626" {
		t.Fatalf("Lookup(Bold) = %#v, %v", colors, ok)
	}
}
