//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter uploads RGBA frames of a fixed-size grid into a single ebiten
// image and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads buf (4*w*h RGBA bytes) and draws it onto dst at the given
// integer scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, buf []byte, scale int) {
	if len(buf) != 4*gp.w*gp.h {
		return
	}
	gp.img.WritePixels(buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
