package site

import (
	"fmt"
	"sort"
	"strings"
)

// MinGradientStops is the fewest stops a gradient may have.
const MinGradientStops = 2

// GradientCSS renders the hero gradient fields as a CSS background value.
func (l Layout) GradientCSS() string {
	return GradientCSS(l.HeroGradientType, l.HeroGradientAngle, l.HeroGradientStops)
}

// SyncGradient returns l with HeroGradient recomputed from the other
// gradient fields.
func (l Layout) SyncGradient() Layout {
	l.HeroGradient = l.GradientCSS()
	return l
}

// GradientCSS renders a gradient as a CSS function. Stops are emitted in
// position order.
func GradientCSS(kind GradientType, angle int, stops []GradientStop) string {
	ordered := cloneStops(stops)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})
	parts := make([]string, 0, len(ordered))
	for _, stop := range ordered {
		parts = append(parts, fmt.Sprintf("%s %d%%", strings.TrimSpace(stop.Color), ClampPosition(stop.Position)))
	}
	if kind == GradientRadial {
		return fmt.Sprintf("radial-gradient(circle, %s)", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("linear-gradient(%ddeg, %s)", normalizeAngle(angle), strings.Join(parts, ", "))
}

// ClampPosition bounds a stop position to 0..100.
func ClampPosition(pos int) int {
	switch {
	case pos < 0:
		return 0
	case pos > 100:
		return 100
	default:
		return pos
	}
}

// AddGradientStop returns a copy of stops with a new stop appended.
func AddGradientStop(stops []GradientStop, color string, position int) []GradientStop {
	out := make([]GradientStop, 0, len(stops)+1)
	out = append(out, stops...)
	return append(out, GradientStop{Color: color, Position: ClampPosition(position)})
}

// RemoveGradientStop returns a copy of stops without the stop at index. The
// list is returned unchanged when the index is out of range or the removal
// would leave fewer than MinGradientStops.
func RemoveGradientStop(stops []GradientStop, index int) []GradientStop {
	if index < 0 || index >= len(stops) || len(stops) <= MinGradientStops {
		return cloneStops(stops)
	}
	out := make([]GradientStop, 0, len(stops)-1)
	out = append(out, stops[:index]...)
	return append(out, stops[index+1:]...)
}

// SetStopPosition returns a copy of stops with the position at index replaced.
func SetStopPosition(stops []GradientStop, index, position int) []GradientStop {
	out := cloneStops(stops)
	if index >= 0 && index < len(out) {
		out[index].Position = ClampPosition(position)
	}
	return out
}

// ValidStops reports whether stops satisfy the gradient shape: at least two
// entries, every position within 0..100.
func ValidStops(stops []GradientStop) bool {
	if len(stops) < MinGradientStops {
		return false
	}
	for _, stop := range stops {
		if stop.Position != ClampPosition(stop.Position) {
			return false
		}
	}
	return true
}

func normalizeAngle(angle int) int {
	angle %= 360
	if angle < 0 {
		angle += 360
	}
	return angle
}
