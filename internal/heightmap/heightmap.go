// Package heightmap samples a noise field over a rectangle of the plane.
package heightmap

import (
	"context"
	"fmt"
	"runtime"

	"github.com/alitto/pond/v2"

	"github.com/lucashuguet/goatland/internal/noise"
	"github.com/lucashuguet/goatland/internal/profiling"
)

// Default map size and bounds: 100x100 samples over [-1,1]x[-1,1].
const (
	DefaultWidth  = 100
	DefaultHeight = 100
)

// SourceFactory builds a fresh source graph. Graphs with caches are not safe
// for concurrent use, so every worker gets its own.
type SourceFactory func() (noise.Source, error)

// Builder describes the sampled rectangle. Cell (x, y) is sampled at
// (X0 + x*(X1-X0)/Width, Y0 + y*(Y1-Y0)/Height, 0).
type Builder struct {
	Width, Height int
	XBounds       [2]float64
	YBounds       [2]float64
	// Workers caps concurrent row bands; zero means GOMAXPROCS.
	Workers int
}

// NewBuilder returns the default 100x100 builder over [-1,1]x[-1,1].
func NewBuilder() Builder {
	return Builder{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		XBounds: [2]float64{-1, 1},
		YBounds: [2]float64{-1, 1},
	}
}

// Validate rejects empty sizes, reversed bounds and negative worker counts.
func (b Builder) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("heightmap: size %dx%d must be positive", b.Width, b.Height)
	}
	if !(b.XBounds[1] > b.XBounds[0]) || !(b.YBounds[1] > b.YBounds[0]) {
		return fmt.Errorf("heightmap: bounds x=%v y=%v must be increasing", b.XBounds, b.YBounds)
	}
	if b.Workers < 0 {
		return fmt.Errorf("heightmap: workers %d must not be negative", b.Workers)
	}
	return nil
}

// Build samples the rectangle. Rows are split into bands sampled
// concurrently; the result does not depend on the split.
func (b Builder) Build(ctx context.Context, factory SourceFactory) (*Map, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	defer profiling.Track("heightmap.Build")()

	workers := b.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, b.Height)

	m := &Map{Width: b.Width, Height: b.Height, values: make([]float64, b.Width*b.Height)}
	stepX := (b.XBounds[1] - b.XBounds[0]) / float64(b.Width)
	stepY := (b.YBounds[1] - b.YBounds[0]) / float64(b.Height)

	pool := pond.NewPool(workers, pond.WithContext(ctx))
	defer pool.StopAndWait()
	group := pool.NewGroup()

	band := (b.Height + workers - 1) / workers
	for y0 := 0; y0 < b.Height; y0 += band {
		y1 := min(y0+band, b.Height)
		group.SubmitErr(func() error {
			src, err := factory()
			if err != nil {
				return err
			}
			for y := y0; y < y1; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				py := b.YBounds[0] + stepY*float64(y)
				row := m.values[y*b.Width : (y+1)*b.Width]
				for x := range row {
					px := b.XBounds[0] + stepX*float64(x)
					row[x] = src.Sample(px, py, 0)
				}
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("sample heightmap: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sample heightmap: %w", err)
	}
	return m, nil
}

// Map is a row-major grid of samples.
type Map struct {
	Width, Height int
	values        []float64
}

// Value returns the sample at (x, y), or 0 outside the map.
func (m *Map) Value(x, y int) float64 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.values[y*m.Width+x]
}

// Bounds returns the smallest and largest sample.
func (m *Map) Bounds() (lo, hi float64) {
	if len(m.values) == 0 {
		return 0, 0
	}
	lo, hi = m.values[0], m.values[0]
	for _, v := range m.values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
