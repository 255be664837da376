package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucashuguet/goatland/internal/noise"
	"github.com/lucashuguet/goatland/internal/profiling"
)

const (
	// DefaultDensity scales the column sample into blocks.
	DefaultDensity = 10.0
	// BaseHeight is the lowest surface any column can have.
	BaseHeight = 10
	// SampleDivisor converts world blocks into noise-space units.
	SampleDivisor = 10.0
)

// ErrInvalidDensity is returned for a negative, NaN or infinite density.
var ErrInvalidDensity = errors.New("world: density must be finite and non-negative")

// TerrainGenerator fills a voxel grid from a per-column surface height.
type TerrainGenerator interface {
	HeightAt(worldX, worldZ int) int
	Populate(g *VoxelGrid)
}

// Options configures a Generator.
type Options struct {
	Seed    uint32
	Density float64
	Column  noise.ColumnKind
	// Planet is only used when Column is noise.ColumnPlanet.
	Planet noise.PlanetParams
}

// DefaultOptions samples single-octave OpenSimplex with the default density.
func DefaultOptions(seed uint32) Options {
	return Options{
		Seed:    seed,
		Density: DefaultDensity,
		Column:  noise.ColumnOpenSimplex,
		Planet:  noise.DefaultPlanetParams(seed),
	}
}

// Generator builds heightmap terrain: a column is solid from y=0 up to and
// including its surface height. It is not safe for concurrent use when the
// column sampler caches (the planet field); give each goroutine its own.
type Generator struct {
	sampler noise.Sampler2D
	density float64
}

// NewGenerator validates opts and builds the column sampler.
func NewGenerator(opts Options) (*Generator, error) {
	if math.IsNaN(opts.Density) || math.IsInf(opts.Density, 0) || opts.Density < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDensity, opts.Density)
	}
	sampler, err := noise.NewColumnSampler(opts.Column, opts.Seed, opts.Planet)
	if err != nil {
		return nil, err
	}
	return &Generator{sampler: sampler, density: opts.Density}, nil
}

// NewGeneratorWithSampler wraps an existing column sampler.
func NewGeneratorWithSampler(sampler noise.Sampler2D, density float64) *Generator {
	return &Generator{sampler: sampler, density: density}
}

// HeightAt returns the surface height of the column at world (X, Z).
// Negative samples floor at BaseHeight.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	n := g.sampler.Sample2(float64(worldX)/SampleDivisor, float64(worldZ)/SampleDivisor) * g.density
	return BaseHeight + saturate(n)
}

// saturate truncates toward zero, saturating at both ends; NaN maps to 0.
func saturate(v float64) int {
	switch {
	case !(v > 0):
		return 0
	case v >= math.MaxInt32-BaseHeight:
		return math.MaxInt32 - BaseHeight
	}
	return int(v)
}

// Populate fills g, padding included, from its chunk coordinate.
func (gen *Generator) Populate(g *VoxelGrid) {
	ox, oz := g.Coord.Origin()
	for z := range ChunkSizeZ {
		for x := range ChunkSizeX {
			top := gen.HeightAt(ox+x, oz+z)
			for y := range ChunkSizeY {
				g.voxels[Linearize(x, y, z)] = y <= top
			}
		}
	}
}

// Generate returns the voxel grid of chunk (cx, cz).
func (gen *Generator) Generate(cx, cz int) *VoxelGrid {
	defer profiling.Track("world.Generate")()
	g := NewVoxelGrid(ChunkCoord{X: cx, Z: cz})
	gen.Populate(g)
	return g
}

// GenerateChunk builds the grid of chunk (cx, cz) with the default column
// sampler.
func GenerateChunk(cx, cz int, seed uint32, density float64) (*VoxelGrid, error) {
	opts := DefaultOptions(seed)
	opts.Density = density
	gen, err := NewGenerator(opts)
	if err != nil {
		return nil, err
	}
	return gen.Generate(cx, cz), nil
}

// FlatGenerator produces a constant surface height everywhere.
type FlatGenerator struct {
	Height int
}

// NewFlatGenerator creates a generator with a constant surface height.
func NewFlatGenerator(height int) *FlatGenerator {
	return &FlatGenerator{Height: height}
}

func (f *FlatGenerator) HeightAt(_, _ int) int { return f.Height }

func (f *FlatGenerator) Populate(g *VoxelGrid) {
	for i := range g.voxels {
		_, y, _ := Delinearize(i)
		g.voxels[i] = y <= f.Height
	}
}
