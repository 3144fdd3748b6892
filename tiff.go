package sampleelevation

import (
	"image"
	"io"
	"math"

	"golang.org/x/image/tiff"
)

// GrayLevel returns the 16-bit gray level of elevation, mapping
// [MinElevation, MaxElevation] linearly onto [0, math.MaxUint16].
func GrayLevel(elevation float64) uint16 {
	t := (elevation - MinElevation) / (MaxElevation - MinElevation)
	return uint16(math.Round(min(max(t, 0), 1) * math.MaxUint16))
}

// WriteTIFF writes grid to w as a Deflate-compressed 16-bit grayscale TIFF,
// with the grid's origin at the top left.
func WriteTIFF(w io.Writer, grid *Grid) error {
	if err := grid.Validate(); err != nil {
		return err
	}
	img := image.NewGray16(image.Rect(0, 0, grid.Width, grid.Height))
	for y := range grid.Height {
		for x := range grid.Width {
			level := GrayLevel(grid.At(x, y))
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(level >> 8)
			img.Pix[i+1] = uint8(level)
		}
	}
	return tiff.Encode(w, img, &tiff.Options{
		Compression: tiff.Deflate,
	})
}
