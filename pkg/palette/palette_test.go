package palette

import (
	"image/color"
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopCounts(t *testing.T) {
	assert.Len(t, New(0, 1, Incandescent).Stops(), 11)
	assert.Len(t, New(0, 1, Rainbow).Stops(), 34)
}

func TestClampingLaw(t *testing.T) {
	for _, scheme := range []Scheme{Incandescent, Rainbow} {
		m := New(-2, 3, scheme)
		colors := m.Stops()
		first, last := colors[0], colors[len(colors)-1]
		for _, v := range []float32{-2, -2.0001, -50, -math.MaxFloat32} {
			assert.Equal(t, first, m.Color(v), "%s value %v", scheme, v)
		}
		for _, v := range []float32{3, 3.0001, 1e6, math.MaxFloat32} {
			assert.Equal(t, last, m.Color(v), "%s value %v", scheme, v)
		}
	}
}

func TestDegenerateRange(t *testing.T) {
	m := New(4, 4, Rainbow)
	first := m.Stops()[0]
	for _, v := range []float32{-1, 0, 4, 1000} {
		assert.Equal(t, first, m.Color(v))
	}
}

func TestInvalidValues(t *testing.T) {
	inc := New(0, 1, Incandescent)
	deg := New(1, 1, Rainbow)
	for _, v := range []float32{math32.NaN(), math32.Inf(1), math32.Inf(-1)} {
		assert.Equal(t, rgb(0.5333333333333333, 0.5333333333333333, 0.5333333333333333), inc.Color(v))
		assert.Equal(t, rgb(0.4, 0.4, 0.4), deg.Color(v))
		assert.Equal(t, deg.Invalid(), deg.Color(v))
	}
}

func TestInterpolatesBetweenStops(t *testing.T) {
	m := New(0, 10, Incandescent)
	colors := m.Stops()

	// Each stop sits at value index*1 on a 0..10 range with 11 stops.
	for i, c := range colors {
		got := m.Color(float32(i))
		assert.InDelta(t, c.R, got.R, 1e-6, "stop %d", i)
		assert.InDelta(t, c.G, got.G, 1e-6, "stop %d", i)
		assert.InDelta(t, c.B, got.B, 1e-6, "stop %d", i)
	}

	mid := m.Color(2.5)
	want := colors[2].Lerp(colors[3], 0.5)
	assert.InDelta(t, want.R, mid.R, 1e-6)
	assert.InDelta(t, want.G, mid.G, 1e-6)
	assert.InDelta(t, want.B, mid.B, 1e-6)
	assert.InDelta(t, 1.0, mid.A, 1e-6)
}

func TestReversedRangeStillClamps(t *testing.T) {
	m := New(1, 0, Incandescent)
	colors := m.Stops()
	assert.Equal(t, colors[0], m.Color(1))
	assert.Equal(t, colors[len(colors)-1], m.Color(-1))
}

func TestNRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, rgb(1, 1, 1).NRGBA())
	assert.Equal(t, color.NRGBA{A: 255}, rgb(0, 0, 0).NRGBA())
	// linear 0.214 is roughly sRGB 0.5
	mid := rgb(0.214, 0.214, 0.214).NRGBA()
	assert.InDelta(t, 128, int(mid.R), 1)
	assert.Equal(t, uint8(0), Color{R: -1, G: 2, B: 0.5, A: 0}.NRGBA().A)
	assert.Equal(t, uint8(255), Color{R: -1, G: 2, B: 0.5, A: 0}.NRGBA().G)
}

func TestParseScheme(t *testing.T) {
	s, err := ParseScheme(" Rainbow ")
	require.NoError(t, err)
	assert.Equal(t, Rainbow, s)
	s, err = ParseScheme("incandescent")
	require.NoError(t, err)
	assert.Equal(t, Incandescent, s)
	_, err = ParseScheme("viridis")
	assert.Error(t, err)
	assert.Equal(t, "rainbow", Rainbow.String())
	assert.Equal(t, "Scheme(9)", Scheme(9).String())
}

func TestStopsReturnsCopy(t *testing.T) {
	m := New(0, 1, Rainbow)
	s := m.Stops()
	s[0] = Color{}
	assert.NotEqual(t, Color{}, m.Stops()[0])
}
