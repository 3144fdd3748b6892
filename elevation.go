package sampleelevation

import "context"

const (
	MinElevation  = 0
	MaxElevation  = 100
	MaxBaseHeight = 80
	MaxVariation  = 20
)

// A Coord is a cell coordinate.
type Coord struct {
	X int
	Y int
}

// A Raster returns samples at coordinates.
type Raster interface {
	Samples(ctx context.Context, coords []Coord) ([]float64, error)
	Scale() (int, int)
}

// A Rand is a source of uniformly distributed random numbers in [0, 1).
// *math/rand/v2.Rand is a Rand.
type Rand interface {
	Float64() float64
}
