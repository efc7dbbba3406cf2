package field

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolution(t *testing.T) {
	cases := []struct {
		subdivisions int
		size         int
		scale        float32
	}{
		{subdivisions: 0, size: 64, scale: 1},
		{subdivisions: 3, size: 512, scale: 8},
		{subdivisions: -2, size: 16, scale: 0.25},
		{subdivisions: -10, size: 1, scale: 1.0 / 64},
	}
	for _, tc := range cases {
		f := New[float32](tc.subdivisions)
		nx, ny := f.Size()
		assert.Equal(t, tc.size, nx, "subdivisions %d", tc.subdivisions)
		assert.Equal(t, tc.size, ny, "subdivisions %d", tc.subdivisions)
		assert.Equal(t, tc.scale, f.Scale(), "subdivisions %d", tc.subdivisions)
		assert.Len(t, f.Values(), tc.size*tc.size)
		for _, v := range f.Values() {
			require.Zero(t, v)
		}
	}
}

func TestNearestClampsFarFromCentre(t *testing.T) {
	f := New[float32](3)
	f.Set(511, 511, 7)
	f.Set(0, 0, 3)

	// (256, 256) * 8 addresses cell (2048, 2048), far past the last row.
	assert.Equal(t, float32(7), f.Nearest(V2(256, 256)))
	assert.Equal(t, float32(7), f.Nearest(V2(63.99, 64)))
	assert.Equal(t, float32(3), f.Nearest(V2(-1000, -0.01)))
}

func TestNearestRounds(t *testing.T) {
	f := New[int32](0)
	f.Set(2, 3, 5)
	assert.Equal(t, int32(5), f.Nearest(V2(2.4, 2.6)))
	assert.Equal(t, int32(5), f.Nearest(V2(1.5, 3.49)))
	assert.Equal(t, int32(0), f.Nearest(V2(2.6, 3)))
}

func TestSamplingNeverLeavesGrid(t *testing.T) {
	f := New[float64](-3)
	f.Fill(2)
	inf := math32.Inf(1)
	positions := []Vec2{
		V2(-1e9, -1e9), V2(1e9, 1e9), V2(inf, -inf), V2(-inf, inf),
		V2(math32.NaN(), 3), V2(3, math32.NaN()), V2(64, 64), V2(0, 64),
	}
	for _, p := range positions {
		assert.NotPanics(t, func() { f.Nearest(p) }, "nearest %v", p)
		assert.NotPanics(t, func() { f.Bilinear(p) }, "bilinear %v", p)
		assert.Equal(t, 2.0, f.Nearest(p), "nearest %v", p)
		assert.Equal(t, 2.0, f.Bilinear(p), "bilinear %v", p)
	}
}

func TestBilinearExactAtCells(t *testing.T) {
	f := New[float32](1)
	f.Populate(func(x, y int) float32 { return float32(x*7 - y*3) })

	for _, c := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {17, 42}, {127, 127}} {
		pos := f.ToWorld(c[0], c[1])
		assert.Equal(t, f.At(c[0], c[1]), f.Bilinear(pos), "cell %v", c)
	}
}

func TestBilinearBlend(t *testing.T) {
	f := New[float32](0)
	f.Set(4, 4, 0)
	f.Set(5, 4, 1)
	f.Set(4, 5, 2)
	f.Set(5, 5, 3)

	assert.InDelta(t, 0.5, f.Bilinear(V2(4.5, 4)), 1e-6)
	assert.InDelta(t, 1.0, f.Bilinear(V2(4, 4.5)), 1e-6)
	assert.InDelta(t, 1.5, f.Bilinear(V2(4.5, 4.5)), 1e-6)
	// rows blend to 0.25 and 2.25, then 0.25*0.25 + 2.25*0.75
	assert.InDelta(t, 1.75, f.Bilinear(V2(4.25, 4.75)), 1e-5)
}

func TestBilinearEdgeDegeneratesToNearest(t *testing.T) {
	f := New[float32](0)
	f.Populate(func(x, y int) float32 { return float32(y) })
	assert.Equal(t, float32(63), f.Bilinear(V2(10, 63.5)))
	assert.Equal(t, float32(63), f.Bilinear(V2(10, 80)))
	assert.Equal(t, float32(0), f.Bilinear(V2(10, -5)))
}

func TestAddKernelFalloff(t *testing.T) {
	f := New[float32](0)
	f.AddKernel(V2(10, 10), 2, 1)

	assert.InDelta(t, 1.0, f.At(10, 10), 1e-6)
	assert.InDelta(t, 0.75, f.At(11, 10), 1e-6)
	assert.InDelta(t, 0.5, f.At(11, 11), 1e-6)
	// on the rim: d^2 == r^2 is excluded
	assert.Zero(t, f.At(12, 10))
	assert.Zero(t, f.At(8, 10))
	assert.Zero(t, f.At(13, 13))

	var touched int
	for _, v := range f.Values() {
		if v != 0 {
			touched++
		}
	}
	// centre, four edge neighbours and four diagonals
	assert.Equal(t, 9, touched)
}

func TestAddKernelReachesLastCell(t *testing.T) {
	f := New[float32](0)
	f.AddKernel(V2(63, 63), 1.5, 2)
	assert.InDelta(t, 2.0, f.At(63, 63), 1e-6)
	assert.Greater(t, f.At(62, 63), float32(0))
}

func TestAddKernelInverse(t *testing.T) {
	f := New[float32](3)
	f.Populate(func(x, y int) float32 { return float32((x*31+y*17)%13) * 0.1 })
	before := f.Clone()

	centres := []Vec2{V2(32, 32), V2(0, 0), V2(64, 10), V2(-0.1, 63.9)}
	for _, c := range centres {
		f.AddKernel(c, 0.25, 1)
		f.AddKernel(c, 0.25, -1)
	}
	for i, v := range f.Values() {
		require.InDelta(t, before.Values()[i], v, 1e-6, "cell %d", i)
	}
}

func TestAddKernelIgnoresDegenerateRadius(t *testing.T) {
	f := New[float64](0)
	f.AddKernel(V2(5, 5), 0, 1)
	f.AddKernel(V2(5, 5), -3, 1)
	f.AddKernel(V2(math32.NaN(), 5), 3, 1)
	lo, hi := f.MinMax()
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestMinMax(t *testing.T) {
	f := New[float32](-4)
	f.Fill(0.5)
	f.Set(1, 2, -3)
	f.Set(3, 0, 9)
	lo, hi := f.MinMax()
	assert.Equal(t, float32(-3), lo)
	assert.Equal(t, float32(9), hi)
}

func TestMinMaxSkipsNaN(t *testing.T) {
	f := New[float32](-4)
	f.Fill(1.25)
	f.Set(0, 0, math32.NaN())
	f.Set(2, 3, math32.NaN())
	lo, hi := f.MinMax()
	assert.Equal(t, float32(1.25), lo)
	assert.Equal(t, float32(1.25), hi)
}

func TestMinMaxAllNaNReturnsBounds(t *testing.T) {
	f := New[float64](-5)
	f.Fill(math.NaN())
	lo, hi := f.MinMax()
	assert.Equal(t, math.MaxFloat64, lo)
	assert.Equal(t, -math.MaxFloat64, hi)
}

func TestMinMaxIntegers(t *testing.T) {
	f := New[int16](-5)
	f.Set(0, 1, -7)
	f.Set(1, 1, 12)
	lo, hi := f.MinMax()
	assert.Equal(t, int16(-7), lo)
	assert.Equal(t, int16(12), hi)
}

func TestDirectIndexPanicsOutOfRange(t *testing.T) {
	f := New[float32](-4)
	assert.Panics(t, func() { f.At(4, 0) })
	assert.Panics(t, func() { f.At(0, -1) })
	assert.Panics(t, func() { f.Set(-1, 0, 1) })
	assert.Panics(t, func() { f.Add(0, 4, 1) })
	assert.NotPanics(t, func() { f.Add(3, 3, 1) })
	assert.Equal(t, float32(1), f.At(3, 3))
}

func TestFromSource(t *testing.T) {
	f := FromSource(-3, func(x, y int) float64 { return float64(x + 10*y) })
	assert.Equal(t, 0.0, f.At(0, 0))
	assert.Equal(t, 7.0, f.At(7, 0))
	assert.Equal(t, 77.0, f.At(7, 7))
	assert.Equal(t, V2(56, 56), f.ToWorld(7, 7))
}

func TestBoundsContains(t *testing.T) {
	assert.True(t, Bounds.Contains(V2(0, 0)))
	assert.True(t, Bounds.Contains(V2(64, 64)))
	assert.True(t, Bounds.Contains(V2(12.5, 40)))
	assert.False(t, Bounds.Contains(V2(-0.001, 3)))
	assert.False(t, Bounds.Contains(V2(3, 64.01)))
	assert.Equal(t, V2(32, 32), Bounds.Center())
}
