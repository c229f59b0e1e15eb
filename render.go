package freehand

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"
)

// Rendering helpers. Stroke synthesis itself stops at outline rings;
// color and compositing belong to the caller. These helpers are the
// minimal filled-polygon renderer most callers need, built on the
// x/image vector rasterizer.

// RasterizeOver fills the rings onto dst with the given color,
// compositing over existing content. Empty rings are skipped. The rings
// are drawn as sub-paths of one fill, so overlapping multi-stroke passes
// darken only through the color's own alpha.
func RasterizeOver(dst draw.Image, rings [][]Point, c color.Color) {
	b := dst.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return
	}

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	drawn := false
	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		z.MoveTo(float32(ring[0].X), float32(ring[0].Y))
		for _, p := range ring[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
		drawn = true
	}
	if !drawn {
		return
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// Rasterize fills the rings into a fresh transparent RGBA image of the
// given size.
func Rasterize(rings [][]Point, width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	RasterizeOver(img, rings, c)
	return img
}

// SavePNG writes an image to a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
