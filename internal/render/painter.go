//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// FieldPainter owns an RGBA buffer and the image it is uploaded to.
type FieldPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFieldPainter allocates a painter for a view of w by h pixels.
func NewFieldPainter(w, h int) *FieldPainter {
	fp := &FieldPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Buffer exposes the pixel buffer for the sim to paint into.
func (fp *FieldPainter) Buffer() []byte { return fp.buf }

// Blit uploads the buffer and draws it scaled onto dst.
func (fp *FieldPainter) Blit(dst *ebiten.Image, scale int) {
	fp.img.WritePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FieldPainter) Size() (int, int) { return fp.w, fp.h }
