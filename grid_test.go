package sampleelevation_test

import (
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/twpayne/go-sampleelevation"
)

func TestNewGrid(t *testing.T) {
	grid, err := sampleelevation.NewGrid(3, 2)
	assert.NoError(t, err)
	assert.Equal(t, 6, len(grid.Data))

	grid.Set(2, 1, 42)
	assert.Equal(t, 42, grid.Data[5])
	assert.Equal(t, 42, grid.At(2, 1))

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 5}} {
		_, err := sampleelevation.NewGrid(dims[0], dims[1])
		assert.IsError(t, err, sampleelevation.ErrInvalidDimensions)
	}
}

func TestGrid_Samples(t *testing.T) {
	grid := &sampleelevation.Grid{
		Width:  2,
		Height: 2,
		Data:   []float64{1, 2, 3, 4},
	}
	actual, err := grid.Samples(t.Context(), []sampleelevation.Coord{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: 1, Y: 1},
		{X: 2, Y: 0},
		{X: 0, Y: -1},
	})
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, actual[:4])
	assert.True(t, math.IsNaN(actual[4]))
	assert.True(t, math.IsNaN(actual[5]))
}

func TestGrid_Validate(t *testing.T) {
	for _, tc := range []struct {
		name        string
		grid        sampleelevation.Grid
		expectedErr error
	}{
		{
			name: "valid",
			grid: sampleelevation.Grid{Width: 2, Height: 1, Data: []float64{0, 100}},
		},
		{
			name:        "zero_width",
			grid:        sampleelevation.Grid{Width: 0, Height: 1},
			expectedErr: sampleelevation.ErrInvalidDimensions,
		},
		{
			name:        "short_data",
			grid:        sampleelevation.Grid{Width: 2, Height: 2, Data: []float64{1, 2, 3}},
			expectedErr: sampleelevation.ErrInvalidDataLength,
		},
		{
			name:        "too_high",
			grid:        sampleelevation.Grid{Width: 1, Height: 1, Data: []float64{100.5}},
			expectedErr: sampleelevation.ErrElevationOutOfRange,
		},
		{
			name:        "negative",
			grid:        sampleelevation.Grid{Width: 1, Height: 1, Data: []float64{-1}},
			expectedErr: sampleelevation.ErrElevationOutOfRange,
		},
		{
			name:        "nan",
			grid:        sampleelevation.Grid{Width: 1, Height: 1, Data: []float64{math.NaN()}},
			expectedErr: sampleelevation.ErrElevationOutOfRange,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.grid.Validate()
			if tc.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.IsError(t, err, tc.expectedErr)
			}
		})
	}
}
