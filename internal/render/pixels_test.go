package render

import (
	"image/color"
	"math"
	"testing"

	"meadow/pkg/field"
	"meadow/pkg/palette"
)

func TestFillFieldMapsRangeEnds(t *testing.T) {
	f := field.New[float32](0)
	nx, _ := f.Size()
	f.Populate(func(x, y int) float32 {
		if x < nx/2 {
			return 0
		}
		return 1
	})
	pmap := palette.New(0, 1, palette.Incandescent)
	stops := pmap.Stops()

	const w, h = 8, 4
	buf := make([]byte, 4*w*h)
	FillField(buf, w, h, FilterNearest.Bind(f), pmap)

	left := stops[0].NRGBA()
	right := stops[len(stops)-1].NRGBA()
	for py := 0; py < h; py++ {
		if got := pixel(buf, w, 0, py); got != left {
			t.Fatalf("row %d left pixel %v, want %v", py, got, left)
		}
		if got := pixel(buf, w, w-1, py); got != right {
			t.Fatalf("row %d right pixel %v, want %v", py, got, right)
		}
	}
}

func TestFillFieldInvalidValues(t *testing.T) {
	f := field.New[float32](-4)
	f.Fill(float32(nan()))
	pmap := palette.New(0, 1, palette.Rainbow)

	const w, h = 3, 3
	buf := make([]byte, 4*w*h)
	FillField(buf, w, h, FilterBilinear.Bind(f), pmap)
	want := pmap.Invalid().NRGBA()
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			if got := pixel(buf, w, px, py); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want invalid color %v", px, py, got, want)
			}
		}
	}
}

func TestFillFuncIgnoresShortBuffer(t *testing.T) {
	buf := make([]byte, 4)
	called := false
	FillFunc(buf, 2, 2, func(field.Vec2) float32 { return 0 }, func(float32) palette.Color {
		called = true
		return palette.Color{}
	})
	if called {
		t.Fatal("short buffers must be left alone")
	}
}

func TestPixelToWorldCoversDomain(t *testing.T) {
	first := PixelToWorld(0, 0, 64, 64)
	last := PixelToWorld(63, 63, 64, 64)
	if first.X != 0.5 || first.Y != 0.5 {
		t.Fatalf("first pixel centre %v, want (0.5,0.5)", first)
	}
	if last.X != 63.5 || last.Y != 63.5 {
		t.Fatalf("last pixel centre %v, want (63.5,63.5)", last)
	}
}

func TestStamp(t *testing.T) {
	const w, h = 4, 4
	buf := make([]byte, 4*w*h)
	green := color.NRGBA{G: 200, A: 255}
	Stamp(buf, w, h, field.V2(20, 40), green)
	if got := pixel(buf, w, 1, 2); got != green {
		t.Fatalf("stamped pixel %v, want %v", got, green)
	}
	Stamp(buf, w, h, field.V2(-1, 5), green)
	Stamp(buf, w, h, field.V2(field.BaseSize, 5), green)
	Stamp(buf, w, h, field.V2(5, -0.5), green)
	Stamp(buf, w, h, field.V2(float32(math.NaN()), 5), green)
	painted := 0
	for i := 3; i < len(buf); i += 4 {
		if buf[i] != 0 {
			painted++
		}
	}
	if painted != 1 {
		t.Fatalf("expected out-of-view stamps to be dropped, %d pixels painted", painted)
	}
}

func TestParseFilter(t *testing.T) {
	if f, err := ParseFilter(" Bilinear"); err != nil || f != FilterBilinear {
		t.Fatalf("ParseFilter(bilinear) = %v, %v", f, err)
	}
	if _, err := ParseFilter("cubic"); err == nil {
		t.Fatal("expected an error for an unknown sampler")
	}
	if FilterNearest.String() != "nearest" {
		t.Fatalf("unexpected name %q", FilterNearest.String())
	}
}

func pixel(buf []byte, w, x, y int) color.NRGBA {
	i := (y*w + x) * 4
	return color.NRGBA{R: buf[i], G: buf[i+1], B: buf[i+2], A: buf[i+3]}
}

func nan() float64 {
	var zero float64
	return zero / zero
}
