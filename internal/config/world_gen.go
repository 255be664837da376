package config

import (
	"github.com/lucashuguet/goatland/internal/heightmap"
	"github.com/lucashuguet/goatland/internal/noise"
	"github.com/lucashuguet/goatland/internal/world"
)

// PlanetParams returns the planet constants seeded with the config seed.
func (c Config) PlanetParams() noise.PlanetParams {
	p := c.Planet
	p.Seed = c.Seed
	return p
}

// WorldOptions returns the chunk generator options.
func (c Config) WorldOptions() world.Options {
	return world.Options{
		Seed:    c.Seed,
		Density: c.Density,
		Column:  c.Column,
		Planet:  c.PlanetParams(),
	}
}

// NewGenerator builds a chunk generator. Call it once per goroutine.
func (c Config) NewGenerator() (*world.Generator, error) {
	return world.NewGenerator(c.WorldOptions())
}

// HeightMapBuilder returns the planet preview rectangle.
func (c Config) HeightMapBuilder() heightmap.Builder {
	return heightmap.Builder{
		Width:   c.HeightMap.Width,
		Height:  c.HeightMap.Height,
		XBounds: c.HeightMap.XBounds,
		YBounds: c.HeightMap.YBounds,
		Workers: c.Workers,
	}
}

// PlanetFactory builds a fresh planet graph per call, for heightmap workers.
func (c Config) PlanetFactory() heightmap.SourceFactory {
	p := c.PlanetParams()
	return func() (noise.Source, error) {
		return noise.BuildPlanet(p)
	}
}
