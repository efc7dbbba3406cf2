// Package terrain builds the height field the vegetation grows on.
package terrain

import (
	"meadow/pkg/field"
	"meadow/pkg/palette"

	"github.com/chewxy/math32"
)

const (
	// HeightScale converts noise values to world units.
	HeightScale = 2.5
	// NoiseExtent is the span of noise space covered by the world along each
	// axis. It only sets the feature frequency.
	NoiseExtent = float64(field.BaseSize) / 32

	// BoundaryPos and BoundaryWidth place the grey-to-white ramp of BaseColor.
	BoundaryPos   = -0.2
	BoundaryWidth = 0.1

	// Subdivisions is the grid level used for both terrain and surface fields.
	Subdivisions = 3
)

// HeightSource yields the height of grid cell (x, y).
type HeightSource func(x, y int) float32

// NoiseSource samples a hybrid multifractal on a plane spanning NoiseExtent
// with one sample per grid cell of an nx by ny grid.
func NoiseSource(nx, ny int, seed int64) HeightSource {
	noise := NewHybridMulti(seed)
	stepX := NoiseExtent / float64(max(nx, 1))
	stepY := NoiseExtent / float64(max(ny, 1))
	return func(x, y int) float32 {
		return HeightScale * float32(noise.Eval2(float64(x)*stepX, float64(y)*stepY))
	}
}

// Terrain holds the static ground height.
type Terrain struct {
	Height *field.Field[float32]
}

// New generates a terrain at the given subdivision level.
func New(subdivisions int, seed int64) *Terrain {
	height := field.New[float32](subdivisions)
	nx, ny := height.Size()
	height.Populate(NoiseSource(nx, ny, seed))
	return &Terrain{Height: height}
}

// HeightAt returns the interpolated ground height at pos.
func (t *Terrain) HeightAt(pos field.Vec2) float32 { return t.Height.Bilinear(pos) }

// Surface holds the fields that change while the simulation runs.
type Surface struct {
	Density *field.Field[float32]
}

// NewSurface returns an empty surface at the given subdivision level.
func NewSurface(subdivisions int) *Surface {
	return &Surface{Density: field.New[float32](subdivisions)}
}

var (
	groundLow  = palette.Color{R: 0.75, G: 0.75, B: 0.75, A: 1}
	groundHigh = palette.Color{R: 1, G: 1, B: 1, A: 1}
)

// BaseColor returns the neutral ground tint for a height, a linear ramp from
// light grey below BoundaryPos-BoundaryWidth to white one unit above.
func BaseColor(height float32) palette.Color {
	t := height - (BoundaryPos - BoundaryWidth)
	if t != t {
		t = 0
	}
	t = math32.Max(0, math32.Min(1, t))
	return groundLow.Lerp(groundHigh, t)
}
