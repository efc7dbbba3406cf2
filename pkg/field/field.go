// Package field implements scalar grids laid over the fixed world domain.
//
// A Field covers Bounds with BaseSize<<subdivisions cells per axis. World
// positions are converted to grid space with a single multiply by Scale, so
// every sampling and update operation works purely in grid units and never
// needs to know about the caller's entity or transform types.
package field

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

const (
	// BaseSizePow is log2 of the world extent along each axis.
	BaseSizePow = 6
	// BaseSize is the world extent along each axis in world units.
	BaseSize = 1 << BaseSizePow
)

// Bounds is the world rectangle covered by every field.
var Bounds = Rect{Max: Vec2{X: BaseSize, Y: BaseSize}}

// Number lists the element types a Field can hold.
type Number interface {
	int16 | int32 | int64 | float32 | float64
}

// Field stores a 2D grid of values in row-major order.
type Field[T Number] struct {
	nx, ny int
	scale  float32
	data   []T
}

// New allocates a zeroed field with BaseSize*2^subdivisions cells per axis.
// Subdivisions below -BaseSizePow collapse to a single cell.
func New[T Number](subdivisions int) *Field[T] {
	if subdivisions < -BaseSizePow {
		subdivisions = -BaseSizePow
	}
	n := 1 << (BaseSizePow + subdivisions)
	var scale float32
	if subdivisions >= 0 {
		scale = float32(int(1) << subdivisions)
	} else {
		scale = 1 / float32(int(1)<<-subdivisions)
	}
	return &Field[T]{nx: n, ny: n, scale: scale, data: make([]T, n*n)}
}

// FromSource allocates a field and fills every cell from src.
func FromSource[T Number](subdivisions int, src func(x, y int) T) *Field[T] {
	f := New[T](subdivisions)
	f.Populate(src)
	return f
}

// Size returns the grid resolution.
func (f *Field[T]) Size() (int, int) { return f.nx, f.ny }

// Scale returns the number of cells per world unit along each axis.
func (f *Field[T]) Scale() float32 { return f.scale }

// Values exposes the backing slice so callers can read/write cells in bulk.
func (f *Field[T]) Values() []T { return f.data }

// Fill sets every cell to v.
func (f *Field[T]) Fill(v T) {
	for i := range f.data {
		f.data[i] = v
	}
}

// Clear resets every cell to zero.
func (f *Field[T]) Clear() {
	var zero T
	f.Fill(zero)
}

// Clone returns an independent copy of f.
func (f *Field[T]) Clone() *Field[T] {
	c := *f
	c.data = append([]T(nil), f.data...)
	return &c
}

// Populate overwrites every cell with the value src returns for its grid
// coordinates.
func (f *Field[T]) Populate(src func(x, y int) T) {
	for y := 0; y < f.ny; y++ {
		row := y * f.nx
		for x := 0; x < f.nx; x++ {
			f.data[row+x] = src(x, y)
		}
	}
}

// ToWorld returns the world position of grid cell (x, y).
func (f *Field[T]) ToWorld(x, y int) Vec2 {
	return Vec2{X: float32(x) / f.scale, Y: float32(y) / f.scale}
}

// Contains reports whether pos lies inside the world domain.
func (f *Field[T]) Contains(pos Vec2) bool { return Bounds.Contains(pos) }

// At returns the value of cell (x, y). Unlike the sampling methods it does not
// clamp: an index outside the grid is a programming error and panics.
func (f *Field[T]) At(x, y int) T { return f.data[f.index(x, y)] }

// Set stores v in cell (x, y). Out-of-range indices panic.
func (f *Field[T]) Set(x, y int, v T) { f.data[f.index(x, y)] = v }

// Add accumulates v into cell (x, y). Out-of-range indices panic.
func (f *Field[T]) Add(x, y int, v T) { f.data[f.index(x, y)] += v }

func (f *Field[T]) index(x, y int) int {
	if x < 0 || x >= f.nx || y < 0 || y >= f.ny {
		panic(fmt.Sprintf("field: index (%d, %d) out of range %dx%d", x, y, f.nx, f.ny))
	}
	return y*f.nx + x
}

// Nearest returns the value of the cell closest to pos. Positions outside the
// domain read the nearest edge cell.
func (f *Field[T]) Nearest(pos Vec2) T {
	x := clampIndex(math32.Round(pos.X*f.scale), f.nx)
	y := clampIndex(math32.Round(pos.Y*f.scale), f.ny)
	return f.data[y*f.nx+x]
}

// Bilinear blends the four cells surrounding pos. Floor and ceiling indices are
// clamped independently, so along the domain edge both collapse onto the same
// cell and the result matches Nearest there.
func (f *Field[T]) Bilinear(pos Vec2) T {
	px := clampCoord(pos.X*f.scale, f.nx)
	py := clampCoord(pos.Y*f.scale, f.ny)
	fx, fy := math32.Floor(px), math32.Floor(py)
	tx, ty := px-fx, py-fy

	x0, y0 := clampIndex(fx, f.nx), clampIndex(fy, f.ny)
	x1, y1 := clampIndex(math32.Ceil(px), f.nx), clampIndex(math32.Ceil(py), f.ny)

	v00 := f.data[y0*f.nx+x0]
	v10 := f.data[y0*f.nx+x1]
	v01 := f.data[y1*f.nx+x0]
	v11 := f.data[y1*f.nx+x1]

	// along x on both rows, then along y
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}

// AddKernel adds amount weighted by a linear radial falloff to every cell whose
// centre lies strictly within radius (world units) of center. The weight is 1
// at the centre and 0 at the rim; cells outside the circle are untouched.
//
// Adding the same kernel with a negated amount removes the contribution again,
// up to floating point rounding.
func (f *Field[T]) AddKernel(center Vec2, radius float32, amount T) {
	cx, cy := center.X*f.scale, center.Y*f.scale
	r := radius * f.scale
	if !(r > 0) || math32.IsNaN(cx) || math32.IsNaN(cy) {
		return
	}
	x0, x1 := clampIndex(math32.Floor(cx-r), f.nx), clampIndex(math32.Ceil(cx+r), f.nx)
	y0, y1 := clampIndex(math32.Floor(cy-r), f.ny), clampIndex(math32.Ceil(cy+r), f.ny)

	rSq := r * r
	for iy := y0; iy <= y1; iy++ {
		dy := float32(iy) - cy
		row := iy * f.nx
		for ix := x0; ix <= x1; ix++ {
			dx := float32(ix) - cx
			dSq := dx*dx + dy*dy
			if dSq < rSq {
				f.data[row+ix] += scaleBy(amount, 1-dSq/rSq)
			}
		}
	}
}

// MinMax returns the smallest and largest values in the field. NaN cells are
// ignored; a field without any ordered value returns T's upper and lower bound
// respectively.
func (f *Field[T]) MinMax() (T, T) {
	lowest, highest := limits[T]()
	lo, hi := highest, lowest
	for _, v := range f.data {
		if v != v {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// clampIndex converts an integral grid coordinate to a valid index in [0, n).
// NaN maps to 0.
func clampIndex(v float32, n int) int {
	if !(v > 0) {
		return 0
	}
	if v >= float32(n-1) {
		return n - 1
	}
	return int(v)
}

// clampCoord limits a continuous grid coordinate to [0, n-1].
func clampCoord(v float32, n int) float32 {
	if !(v > 0) {
		return 0
	}
	if last := float32(n - 1); v > last {
		return last
	}
	return v
}

func lerp[T Number](a, b T, t float32) T {
	w := float64(t)
	return T(float64(a)*(1-w) + float64(b)*w)
}

func scaleBy[T Number](v T, w float32) T {
	return T(float64(v) * float64(w))
}

func limits[T Number]() (lowest, highest T) {
	var zero T
	switch any(zero).(type) {
	case int16:
		return any(int16(math.MinInt16)).(T), any(int16(math.MaxInt16)).(T)
	case int32:
		return any(int32(math.MinInt32)).(T), any(int32(math.MaxInt32)).(T)
	case int64:
		return any(int64(math.MinInt64)).(T), any(int64(math.MaxInt64)).(T)
	case float32:
		return any(float32(-math.MaxFloat32)).(T), any(float32(math.MaxFloat32)).(T)
	default:
		return any(-math.MaxFloat64).(T), any(math.MaxFloat64).(T)
	}
}
