package sampleelevation

import (
	"context"
	"math"
)

// InterpolateBilinear returns the bilinearly interpolated values of raster at
// coords, where each coord is an {x, y} pair.
func InterpolateBilinear(ctx context.Context, raster Raster, coords [][]float64) ([]float64, error) {
	scaleX, scaleY := raster.Scale()
	rasterCoords := make([]Coord, 4*len(coords))
	for i, coord := range coords {
		x0 := scaleX * (int(math.Floor(coord[0])) / scaleX)
		y0 := scaleY * (int(math.Floor(coord[1])) / scaleY)
		x1 := x0 + scaleX
		y1 := y0 + scaleY
		rasterCoords[4*i+0] = Coord{X: x0, Y: y0}
		rasterCoords[4*i+1] = Coord{X: x1, Y: y0}
		rasterCoords[4*i+2] = Coord{X: x0, Y: y1}
		rasterCoords[4*i+3] = Coord{X: x1, Y: y1}
	}
	samples, err := raster.Samples(ctx, rasterCoords)
	if err != nil {
		return nil, err
	}
	result := make([]float64, len(coords))
	for i, coord := range coords {
		dx := (coord[0] - float64(rasterCoords[4*i].X)) / float64(scaleX)
		dy := (coord[1] - float64(rasterCoords[4*i].Y)) / float64(scaleY)
		result[i] = 0 +
			lerpTerm(samples[4*i+0], (1-dx)*(1-dy)) +
			lerpTerm(samples[4*i+1], dx*(1-dy)) +
			lerpTerm(samples[4*i+2], (1-dx)*dy) +
			lerpTerm(samples[4*i+3], dx*dy)
	}
	return result, nil
}

// lerpTerm returns sample*weight, treating zero-weighted samples as zero so
// that NaNs just beyond the edge of a raster do not poison exact hits.
func lerpTerm(sample, weight float64) float64 {
	if weight == 0 {
		return 0
	}
	return sample * weight
}
