package meadow

import (
	"fmt"

	"meadow/internal/entities"
	"meadow/internal/render"
	"meadow/internal/terrain"
	"meadow/pkg/palette"
)

// Layer selects what the view shows.
type Layer int

const (
	// LayerTerrain shows the ground tint with organisms on top.
	LayerTerrain Layer = iota
	// LayerDensity shows the vegetation density on a fixed 0..1 range.
	LayerDensity
	// LayerHeight shows the terrain height over its full range.
	LayerHeight

	layerCount
)

var layerNames = [...]string{"terrain", "density", "height"}

func (l Layer) String() string {
	if l < 0 || l >= layerCount {
		return fmt.Sprintf("Layer(%d)", int(l))
	}
	return layerNames[l]
}

var (
	sproutColor = palette.Color{R: 0.35, G: 0.75, B: 0.2, A: 1}
	grownColor  = palette.Color{R: 0.02, G: 0.25, B: 0.03, A: 1}
)

// Layer returns the active view layer.
func (w *World) Layer() Layer { return w.layer }

// SetLayer switches the view layer. Unknown layers are ignored.
func (w *World) SetLayer(l Layer) { w.SelectLayer(int(l)) }

// SelectLayer switches to the layer with the given index.
func (w *World) SelectLayer(index int) bool {
	l := Layer(index)
	if l < 0 || l >= layerCount {
		return false
	}
	w.layer = l
	return true
}

// LayerName describes the active layer and sampler for status lines.
func (w *World) LayerName() string {
	return w.layer.String() + " (" + w.filter.String() + ")"
}

// ToggleFilter flips between nearest and bilinear sampling and returns the
// new filter name.
func (w *World) ToggleFilter() string {
	if w.filter == render.FilterNearest {
		w.filter = render.FilterBilinear
	} else {
		w.filter = render.FilterNearest
	}
	return w.filter.String()
}

// StatsLine returns the one-line world summary.
func (w *World) StatsLine() string { return w.Stats().String() }

// Filter returns the sampling filter used for display.
func (w *World) Filter() render.Filter { return w.filter }

// SetFilter changes the sampling filter used for display.
func (w *World) SetFilter(f render.Filter) { w.filter = f }

// Legend returns the palette map behind the active layer, or nil when the
// layer is not a palette view. The same map is returned until the range
// changes on Reset.
func (w *World) Legend() *palette.Map {
	switch w.layer {
	case LayerDensity:
		return w.densityLegend
	case LayerHeight:
		return w.heightLegend
	default:
		return nil
	}
}

// Paint renders the active layer into an RGBA buffer of the view size.
func (w *World) Paint(buf []byte) {
	width, height := w.cfg.Width, w.cfg.Height
	switch w.layer {
	case LayerDensity:
		render.FillField(buf, width, height, w.filter.Bind(w.surface.Density), w.Legend())
	case LayerHeight:
		render.FillField(buf, width, height, w.filter.Bind(w.terrain.Height), w.Legend())
	default:
		render.FillFunc(buf, width, height, w.filter.Bind(w.terrain.Height), terrain.BaseColor)
		maxSize := w.cfg.Params.MaxVisualSize
		w.store.EachFull(func(pos entities.Position, _ entities.Orientation, org entities.Organism) {
			t := float32(1)
			if maxSize > 0 {
				t = org.Scale / maxSize
			}
			render.Stamp(buf, width, height, pos.Ground(), sproutColor.Lerp(grownColor, t).NRGBA())
		})
	}
}
