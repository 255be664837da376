// Command goatland generates a square region of terrain chunks, meshes them
// and reports quad counts. It can also render the planet heightmap to PNG
// and dump the quad placements of the centre chunk.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/xlab/closer"

	"github.com/lucashuguet/goatland/internal/config"
	"github.com/lucashuguet/goatland/internal/meshing"
	"github.com/lucashuguet/goatland/internal/profiling"
	"github.com/lucashuguet/goatland/internal/world"
	"github.com/lucashuguet/goatland/pkg/goatland"
)

type options struct {
	configPath string
	seed       uint
	radius     int
	centerX    int
	centerZ    int
	mode       string
	heightmap  string
	scale      int
	placements string
	verbose    bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configPath, "config", "", "YAML settings file")
	flag.UintVar(&o.seed, "seed", 0, "world seed (overrides the config)")
	flag.IntVar(&o.radius, "radius", 1, "chunks generated around the centre")
	flag.IntVar(&o.centerX, "x", 0, "centre chunk X")
	flag.IntVar(&o.centerZ, "z", 0, "centre chunk Z")
	flag.StringVar(&o.mode, "mode", "", "mesher: unmerged or greedy (overrides the config)")
	flag.StringVar(&o.heightmap, "heightmap", "", "write the planet heightmap PNG to this path")
	flag.IntVar(&o.scale, "scale", 4, "heightmap PNG upscale factor")
	flag.StringVar(&o.placements, "placements", "", "write centre chunk placements to this path, - for stdout")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.Parse()
	return o
}

func (o options) validate() error {
	if o.radius < 0 {
		return fmt.Errorf("radius %d must not be negative", o.radius)
	}
	if o.scale < 1 {
		return fmt.Errorf("scale %d must be at least 1", o.scale)
	}
	return nil
}

func loadConfig(o options) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = uint32(o.seed)
		case "mode":
			cfg.Mesher = o.mode
		}
	})
	return cfg, cfg.Validate()
}

func main() {
	o := parseFlags()

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	closer.Bind(cancel)

	if err := run(ctx, o, logger); err != nil {
		logger.Error("goatland failed", "err", err)
		closer.Exit(1)
	}
	closer.Close()
}

func run(ctx context.Context, o options, logger *slog.Logger) error {
	if err := o.validate(); err != nil {
		return err
	}
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	mode, _ := cfg.Mode()
	logger.Info("config", "seed", cfg.Seed, "density", cfg.Density, "mode", mode, "column", cfg.Column)

	store := world.NewChunkStore()
	pool := meshing.NewWorkerPool(cfg.Workers, cfg.NewGenerator, mode, logger).WithStore(store)
	closer.Bind(pool.Shutdown)

	center := world.ChunkCoord{X: o.centerX, Z: o.centerZ}
	coords := meshing.Region(center, o.radius)
	start := time.Now()
	results, err := pool.GenerateRegion(ctx, coords)
	if err != nil {
		return err
	}
	quads, solid := 0, 0
	for _, r := range results {
		quads += r.Quads.NumQuads()
		solid += r.Solid
	}
	logger.Info("region generated",
		"chunks", len(results), "stored", store.Len(), "quads", quads, "solid", solid,
		"elapsed", time.Since(start).Round(time.Microsecond))

	if o.placements != "" {
		if err := writePlacements(o.placements, results[len(results)/2].Quads); err != nil {
			return err
		}
	}
	if o.heightmap != "" {
		if err := writeHeightMap(ctx, cfg, o.heightmap, o.scale, logger); err != nil {
			return err
		}
	}

	logger.Info("profile", "top", profiling.TopN(5))
	return nil
}

func writeHeightMap(ctx context.Context, cfg config.Config, path string, scale int, logger *slog.Logger) error {
	m, err := goatland.SampleHeightMapWith(ctx, cfg)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("heightmap: %w", err)
	}
	defer f.Close()
	if err := m.Render(f, scale); err != nil {
		return err
	}
	lo, hi := m.Bounds()
	logger.Info("heightmap written", "path", path, "width", m.Width*scale, "height", m.Height*scale, "min", lo, "max", hi)
	return f.Close()
}

func writePlacements(path string, buf meshing.QuadBuffer) error {
	ps, err := goatland.Placements(buf)
	if err != nil {
		return err
	}
	var out io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("placements: %w", err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	for _, p := range ps {
		t, r := p.Translation, p.Rotation
		fmt.Fprintf(w, "%-6s %3d %3d %3d  %gx%g  t=(%g, %g, %g) r=(%.4f, %.4f, %.4f, %.4f)\n",
			p.Orientation, p.Quad.Minimum[0], p.Quad.Minimum[1], p.Quad.Minimum[2],
			p.Size.X(), p.Size.Y(), t.X(), t.Y(), t.Z(), r.W, r.V.X(), r.V.Y(), r.V.Z())
	}
	return w.Flush()
}
