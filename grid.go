package sampleelevation

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidDimensions   = errors.New("invalid dimensions")
	ErrInvalidDataLength   = errors.New("invalid data length")
	ErrElevationOutOfRange = errors.New("elevation out of range")
)

// A Grid is a row-major grid of elevations. It marshals to and from a sample
// document.
type Grid struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Data   []float64 `json:"data"`
}

// NewGrid returns a new zero-valued Grid with the given dimensions.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &Grid{
		Width:  width,
		Height: height,
		Data:   make([]float64, width*height),
	}, nil
}

// At returns the elevation at x, y.
func (g *Grid) At(x, y int) float64 {
	return g.Data[g.index(x, y)]
}

// Set sets the elevation at x, y.
func (g *Grid) Set(x, y int, elevation float64) {
	g.Data[g.index(x, y)] = elevation
}

// Samples returns the elevations at coords. Coordinates outside g are
// represented by NaNs.
func (g *Grid) Samples(ctx context.Context, coords []Coord) ([]float64, error) {
	samples := make([]float64, len(coords))
	for i, coord := range coords {
		if !g.contains(coord) {
			samples[i] = math.NaN()
			continue
		}
		samples[i] = g.At(coord.X, coord.Y)
	}
	return samples, nil
}

// Scale returns g's scale. Every cell is one unit wide.
func (g *Grid) Scale() (int, int) {
	return 1, 1
}

// Validate returns an error if g's dimensions, data length, or elevations are
// invalid.
func (g *Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", g.Width, g.Height, ErrInvalidDimensions)
	}
	if len(g.Data) != g.Width*g.Height {
		return fmt.Errorf("got %d, want %d: %w", len(g.Data), g.Width*g.Height, ErrInvalidDataLength)
	}
	for i, elevation := range g.Data {
		if !(MinElevation <= elevation && elevation <= MaxElevation) {
			return fmt.Errorf("index %d: %v: %w", i, elevation, ErrElevationOutOfRange)
		}
	}
	return nil
}

func (g *Grid) contains(coord Coord) bool {
	return 0 <= coord.X && coord.X < g.Width && 0 <= coord.Y && coord.Y < g.Height
}

func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}
