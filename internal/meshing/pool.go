package meshing

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/alitto/pond/v2"

	"github.com/lucashuguet/goatland/internal/world"
)

// GeneratorFactory builds a chunk generator. Each job gets its own, since
// generators over cached noise graphs are not safe to share.
type GeneratorFactory func() (*world.Generator, error)

// ChunkResult is one generated and meshed chunk.
type ChunkResult struct {
	Coord  world.ChunkCoord
	Solid  int
	Quads  QuadBuffer
	Greedy bool
}

// WorkerPool generates and meshes chunks on a bounded set of goroutines.
type WorkerPool struct {
	pool    pond.Pool
	factory GeneratorFactory
	mode    Mode
	logger  *slog.Logger
	store   *world.ChunkStore
}

// NewWorkerPool starts a pool of the given size; zero means GOMAXPROCS.
func NewWorkerPool(workers int, factory GeneratorFactory, mode Mode, logger *slog.Logger) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkerPool{
		pool:    pond.NewPool(workers),
		factory: factory,
		mode:    mode,
		logger:  logger,
	}
}

// WithStore makes the pool reuse grids kept in store and keep the ones it
// generates there. The store must only ever be fed by one configuration.
func (p *WorkerPool) WithStore(store *world.ChunkStore) *WorkerPool {
	p.store = store
	return p
}

// GenerateRegion generates every coordinate and returns the results in the
// same order. The first failure cancels the chunks not yet started; no
// partial result is returned.
func (p *WorkerPool) GenerateRegion(ctx context.Context, coords []world.ChunkCoord) ([]ChunkResult, error) {
	if len(coords) == 0 {
		return nil, ctx.Err()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]ChunkResult, len(coords))
	group := p.pool.NewGroup()
	for i, c := range coords {
		group.SubmitErr(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := p.generate(c)
			if err != nil {
				cancel()
				return fmt.Errorf("chunk (%d,%d): %w", c.X, c.Z, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		p.logger.Error("region generation failed", "chunks", len(coords), "err", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (p *WorkerPool) grid(c world.ChunkCoord) (*world.VoxelGrid, error) {
	generate := func() (*world.VoxelGrid, error) {
		gen, err := p.factory()
		if err != nil {
			return nil, err
		}
		return gen.Generate(c.X, c.Z), nil
	}
	if p.store == nil {
		return generate()
	}
	return p.store.GetOrGenerate(c, generate)
}

func (p *WorkerPool) generate(c world.ChunkCoord) (ChunkResult, error) {
	grid, err := p.grid(c)
	if err != nil {
		return ChunkResult{}, err
	}
	quads := Chunk(grid, p.mode)
	p.logger.Debug("chunk meshed", "x", c.X, "z", c.Z, "mode", p.mode, "quads", quads.NumQuads())
	return ChunkResult{
		Coord:  c,
		Solid:  grid.SolidCount(),
		Quads:  quads,
		Greedy: p.mode == ModeGreedy,
	}, nil
}

// QueueLength returns the number of chunks waiting for a worker.
func (p *WorkerPool) QueueLength() uint64 {
	return p.pool.WaitingTasks()
}

// Shutdown waits for running chunks and stops the workers.
func (p *WorkerPool) Shutdown() {
	p.pool.StopAndWait()
}

// Region returns the coordinates of the square of chunks within radius of
// the centre, row by row.
func Region(center world.ChunkCoord, radius int) []world.ChunkCoord {
	coords := make([]world.ChunkCoord, 0, (2*radius+1)*(2*radius+1))
	for z := center.Z - radius; z <= center.Z+radius; z++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			coords = append(coords, world.ChunkCoord{X: x, Z: z})
		}
	}
	return coords
}
