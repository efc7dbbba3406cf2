package terrain

import (
	"testing"

	"meadow/pkg/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerrainDeterministic(t *testing.T) {
	a := New(1, 42)
	b := New(1, 42)
	c := New(1, 43)
	require.Equal(t, a.Height.Values(), b.Height.Values())
	assert.NotEqual(t, a.Height.Values(), c.Height.Values())
}

func TestTerrainResolutionAndRange(t *testing.T) {
	terr := New(Subdivisions, 7)
	nx, ny := terr.Height.Size()
	assert.Equal(t, 512, nx)
	assert.Equal(t, 512, ny)

	lo, hi := terr.Height.MinMax()
	assert.Less(t, lo, hi, "terrain should not be flat")
	assert.GreaterOrEqual(t, lo, float32(-2*HeightScale))
	assert.LessOrEqual(t, hi, float32(2*HeightScale))

	pos := field.V2(12.5, 40.25)
	assert.Equal(t, terr.Height.Bilinear(pos), terr.HeightAt(pos))
}

func TestNoiseBounded(t *testing.T) {
	n := NewHybridMulti(3)
	for i := 0; i < 500; i++ {
		x := float64(i) * 0.037
		y := float64(i) * 0.051
		v := n.Eval2(x, y)
		assert.False(t, v != v, "NaN at (%f,%f)", x, y)
		assert.LessOrEqual(t, v, 2.0)
		assert.GreaterOrEqual(t, v, -2.0)
	}
	empty := &HybridMulti{}
	assert.Zero(t, empty.Eval2(1, 1))
}

func TestSurfaceStartsEmpty(t *testing.T) {
	s := NewSurface(Subdivisions)
	lo, hi := s.Density.MinMax()
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestBaseColorRamp(t *testing.T) {
	low := BaseColor(-5)
	assert.InDelta(t, 0.75, low.R, 1e-6)
	assert.InDelta(t, 0.75, BaseColor(BoundaryPos-BoundaryWidth).G, 1e-6)

	high := BaseColor(5)
	assert.InDelta(t, 1, high.R, 1e-6)
	assert.InDelta(t, 1, high.B, 1e-6)

	mid := BaseColor(BoundaryPos - BoundaryWidth + 0.5)
	assert.InDelta(t, 0.875, mid.R, 1e-6)
	assert.Equal(t, float32(1), mid.A)
}
