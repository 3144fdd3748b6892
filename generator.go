package sampleelevation

import (
	"math/rand/v2"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cellsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sampleelevation_cells_generated_total",
		Help: "The total number of elevation cells generated",
	})
	gridsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sampleelevation_grids_generated_total",
		Help: "The total number of elevation grids generated",
	})
)

// A Generator generates sample elevation grids.
type Generator struct {
	rand Rand
}

// A GeneratorOption sets an option on a Generator.
type GeneratorOption func(*Generator)

// NewGenerator returns a new Generator with the given options. Without options
// the Generator uses an unseeded random source.
func NewGenerator(options ...GeneratorOption) *Generator {
	g := &Generator{}
	for _, option := range options {
		option(g)
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// WithRand sets the random source.
func WithRand(r Rand) GeneratorOption {
	return func(g *Generator) {
		g.rand = r
	}
}

// WithSeed seeds a PCG random source, making the generated grids
// reproducible.
func WithSeed(seed1, seed2 uint64) GeneratorOption {
	return func(g *Generator) {
		g.rand = rand.New(rand.NewPCG(seed1, seed2))
	}
}

// GenerateGrid returns a new width by height grid. Cells are visited in
// row-major order, which fixes the sequence of draws from g's random source.
func (g *Generator) GenerateGrid(width, height int) (*Grid, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	for y := range height {
		for x := range width {
			grid.Set(x, y, ComputeElevation(g.rand, x, y, width, height))
		}
	}
	cellsGenerated.Add(float64(width * height))
	gridsGenerated.Inc()
	return grid, nil
}

// GenerateGrid returns a new width by height grid using an unseeded random
// source.
func GenerateGrid(width, height int) (*Grid, error) {
	return NewGenerator().GenerateGrid(width, height)
}

// BaseHeight returns the deterministic component of the elevation at x, y: a
// linear ramp from 0 at the origin towards MaxBaseHeight at the opposite
// corner.
func BaseHeight(x, y, width, height int) float64 {
	return float64(x+y) / float64(width+height) * MaxBaseHeight
}

// ComputeElevation returns the elevation at x, y, which is its base height
// plus a uniform variation in [0, MaxVariation) drawn from r, clamped to
// [MinElevation, MaxElevation].
func ComputeElevation(r Rand, x, y, width, height int) float64 {
	variation := r.Float64() * MaxVariation
	return min(max(BaseHeight(x, y, width, height)+variation, MinElevation), MaxElevation)
}
