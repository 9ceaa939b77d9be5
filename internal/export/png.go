// Package export writes rendered bitmaps to image files.
package export

import (
	"image"
	"image/png"
	"os"

	"github.com/san-kum/mandelscope/internal/fractal"
)

// ToImage copies a bitmap into the standard image type.
func ToImage(bm *fractal.Bitmap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bm.Width, bm.Height))
	for i := 0; i < bm.Height; i++ {
		for j := 0; j < bm.Width; j++ {
			r, g, b := bm.RGBAt(i, j)
			o := img.PixOffset(j, i)
			img.Pix[o] = r
			img.Pix[o+1] = g
			img.Pix[o+2] = b
			img.Pix[o+3] = 0xff
		}
	}
	return img
}

// WritePNG encodes a bitmap to the given path.
func WritePNG(path string, bm *fractal.Bitmap) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, ToImage(bm))
}
