package render

import (
	"fmt"
	"image/color"
	"strings"

	"meadow/pkg/field"
	"meadow/pkg/palette"

	"github.com/chewxy/math32"
)

// Sampler reads a field at a world position. Field.Nearest and
// Field.Bilinear method values both satisfy it.
type Sampler func(pos field.Vec2) float32

// Filter selects which sampling method a view uses.
type Filter int

const (
	FilterNearest Filter = iota
	FilterBilinear
)

// String returns the flag spelling of the filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterBilinear:
		return "bilinear"
	default:
		return fmt.Sprintf("Filter(%d)", int(f))
	}
}

// ParseFilter accepts "nearest" or "bilinear".
func ParseFilter(name string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nearest":
		return FilterNearest, nil
	case "bilinear":
		return FilterBilinear, nil
	}
	return FilterNearest, fmt.Errorf("render: unknown sampler %q", name)
}

// Bind returns the sampler of f that matches the filter.
func (fl Filter) Bind(f *field.Field[float32]) Sampler {
	if fl == FilterBilinear {
		return f.Bilinear
	}
	return f.Nearest
}

// PixelToWorld maps the centre of pixel (px, py) of a w by h view onto the
// world domain.
func PixelToWorld(px, py, w, h int) field.Vec2 {
	return field.Vec2{
		X: (float32(px) + 0.5) / float32(w) * field.Bounds.Width(),
		Y: (float32(py) + 0.5) / float32(h) * field.Bounds.Height(),
	}
}

// FillField colors a w by h RGBA buffer by sampling the view grid through
// sample and mapping every value with pmap.
func FillField(buf []byte, w, h int, sample Sampler, pmap *palette.Map) {
	FillFunc(buf, w, h, sample, pmap.Color)
}

// FillFunc is FillField with an arbitrary value-to-color mapping.
func FillFunc(buf []byte, w, h int, sample Sampler, colorize func(float32) palette.Color) {
	if w <= 0 || h <= 0 || len(buf) < 4*w*h {
		return
	}
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			c := colorize(sample(PixelToWorld(px, py, w, h))).NRGBA()
			setPixel(buf, (py*w+px)*4, c)
		}
	}
}

// Stamp paints a single pixel at world position pos when it falls inside
// the view.
func Stamp(buf []byte, w, h int, pos field.Vec2, c color.NRGBA) {
	if w <= 0 || h <= 0 || len(buf) < 4*w*h {
		return
	}
	fx := math32.Floor(pos.X / field.Bounds.Width() * float32(w))
	fy := math32.Floor(pos.Y / field.Bounds.Height() * float32(h))
	if !(fx >= 0 && fx < float32(w) && fy >= 0 && fy < float32(h)) {
		return
	}
	px, py := int(fx), int(fy)
	setPixel(buf, (py*w+px)*4, c)
}

func setPixel(buf []byte, base int, c color.NRGBA) {
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}
