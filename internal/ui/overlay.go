//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"meadow/internal/core"
	"meadow/pkg/palette"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type layerSelector interface {
	SelectLayer(index int) bool
	LayerName() string
	ToggleFilter() string
}

type legendProvider interface {
	Legend() *palette.Map
}

type statsProvider interface {
	StatsLine() string
}

const (
	legendWidth  = 128
	legendHeight = 8
	statsEvery   = 30
)

// Overlay draws the layer legend and status lines on top of the view and
// handles the view keys.
type Overlay struct {
	sim   core.Sim
	scale int

	status string
	stats  string
	frames int

	legendImg *ebiten.Image
	legendBuf []byte
	legendFor *palette.Map
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{
		sim:       sim,
		scale:     scale,
		legendImg: ebiten.NewImage(legendWidth, 1),
		legendBuf: make([]byte, 4*legendWidth),
	}
}

// SetStatus replaces the status line shown in the top-left corner.
func (o *Overlay) SetStatus(s string) { o.status = s }

// Update handles layer and sampler keys.
func (o *Overlay) Update() {
	if sel, ok := o.sim.(layerSelector); ok {
		for i, key := range []ebiten.Key{ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3} {
			if inpututil.IsKeyJustPressed(key) {
				sel.SelectLayer(i)
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyB) {
			sel.ToggleFilter()
		}
	}
	if provider, ok := o.sim.(statsProvider); ok {
		if o.frames%statsEvery == 0 {
			o.stats = provider.StatsLine()
		}
		o.frames++
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	fg := color.RGBA{R: 20, G: 20, B: 24, A: 255}
	y := 16
	if sel, ok := o.sim.(layerSelector); ok {
		text.Draw(screen, "layer "+sel.LayerName(), face, 8, y, fg)
		y += 16
	}
	if o.status != "" {
		text.Draw(screen, o.status, face, 8, y, fg)
		y += 16
	}
	if o.stats != "" {
		text.Draw(screen, o.stats, face, 8, y, fg)
	}

	provider, ok := o.sim.(legendProvider)
	if !ok {
		return
	}
	pmap := provider.Legend()
	if pmap == nil {
		return
	}
	o.drawLegend(screen, pmap)
}

func (o *Overlay) drawLegend(screen *ebiten.Image, pmap *palette.Map) {
	lo, hi := pmap.Range()
	if o.legendFor != pmap {
		for i := 0; i < legendWidth; i++ {
			v := lo + (hi-lo)*float32(i)/float32(legendWidth-1)
			c := pmap.Color(v).NRGBA()
			o.legendBuf[i*4+0] = c.R
			o.legendBuf[i*4+1] = c.G
			o.legendBuf[i*4+2] = c.B
			o.legendBuf[i*4+3] = c.A
		}
		o.legendImg.WritePixels(o.legendBuf)
		o.legendFor = pmap
	}

	size := o.sim.Size()
	x := 8
	y := size.H*max(o.scale, 1) - legendHeight - 24
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, legendHeight)
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(o.legendImg, op)

	face := basicfont.Face7x13
	fg := color.RGBA{R: 20, G: 20, B: 24, A: 255}
	text.Draw(screen, fmt.Sprintf("%.2f", lo), face, x, y+legendHeight+14, fg)
	hiLabel := fmt.Sprintf("%.2f", hi)
	text.Draw(screen, hiLabel, face, x+legendWidth-text.BoundString(face, hiLabel).Dx(), y+legendHeight+14, fg)
}
