// Package palette maps scalar values onto fixed color ramps.
package palette

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a linear-light RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

func rgb(r, g, b float32) Color { return Color{R: r, G: g, B: b, A: 1} }

// Lerp interpolates componentwise between c and o in linear light.
func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// NRGBA encodes c as 8-bit sRGB.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := colorful.LinearRgb(float64(c.R), float64(c.G), float64(c.B)).Clamped().RGB255()
	a := math32.Max(0, math32.Min(1, c.A))
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

// RGBA implements color.Color using the sRGB encoding of c.
func (c Color) RGBA() (r, g, b, a uint32) { return c.NRGBA().RGBA() }

// Scheme selects one of the built-in palettes.
type Scheme int

const (
	// Incandescent runs from pale cyan through yellow to deep red.
	Incandescent Scheme = iota
	// Rainbow is a full-spectrum ramp from near white through blue, green and
	// yellow to dark red.
	Rainbow
)

var schemeNames = map[Scheme]string{
	Incandescent: "incandescent",
	Rainbow:      "rainbow",
}

func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// ParseScheme resolves a scheme by name, ignoring case.
func ParseScheme(name string) (Scheme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s, n := range schemeNames {
		if n == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("palette: unknown scheme %q", name)
}

func stops(s Scheme) ([]Color, Color) {
	switch s {
	case Rainbow:
		return rainbow[:], rainbowInvalid
	default:
		return incandescent[:], incandescentInvalid
	}
}

// Map converts values in [min, max] to colors of a palette.
type Map struct {
	min, max float32
	colors   []Color
	invalid  Color
}

// New binds scheme to the value range [min, max]. min == max is allowed and
// maps every finite value to the first stop.
func New(min, max float32, scheme Scheme) *Map {
	colors, invalid := stops(scheme)
	return &Map{min: min, max: max, colors: colors, invalid: invalid}
}

// Range returns the bound value range.
func (m *Map) Range() (float32, float32) { return m.min, m.max }

// Stops returns a copy of the palette colors in order.
func (m *Map) Stops() []Color { return append([]Color(nil), m.colors...) }

// Invalid returns the color reported for NaN and infinite values.
func (m *Map) Invalid() Color { return m.invalid }

// Color returns the palette color for value.
func (m *Map) Color(value float32) Color {
	if math32.IsNaN(value) || math32.IsInf(value, 0) {
		return m.invalid
	}
	if m.min == m.max {
		return m.colors[0]
	}

	t := (value - m.min) / (m.max - m.min)
	switch {
	case !(t > 0):
		t = 0
	case t > 1:
		t = 1
	}
	last := len(m.colors) - 1
	s := t * float32(last)
	lower := int(s)
	frac := s - float32(lower)
	upper := lower + 1
	if upper > last {
		upper = last
	}
	return m.colors[lower].Lerp(m.colors[upper], frac)
}
