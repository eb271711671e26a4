package render

import (
	"image"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/Mearkatz/spreading-colors-ca/internal/spread"
)

// BuildImage renders the full grid, border ring included, into an RGBA
// image. Dead cells come out opaque black.
func BuildImage(g *spread.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	g.WritePixels(img.Pix)
	return img
}

// SavePNG encodes the grid as a PNG file at path.
func SavePNG(path string, g *spread.Grid) error {
	return imgio.Save(path, BuildImage(g), imgio.PNGEncoder())
}
