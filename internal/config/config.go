// Package config holds the generation settings shared by the CLI and the
// public facade. A Config is a plain value; nothing here is global.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lucashuguet/goatland/internal/heightmap"
	"github.com/lucashuguet/goatland/internal/meshing"
	"github.com/lucashuguet/goatland/internal/noise"
	"github.com/lucashuguet/goatland/internal/world"
)

// ErrInvalidConfig wraps every decoding and validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config holds generation settings
type Config struct {
	Seed    uint32           `yaml:"seed"`
	Density float64          `yaml:"density"`
	Mesher  string           `yaml:"mesher"`
	Column  noise.ColumnKind `yaml:"column"`
	// Workers caps chunk and heightmap concurrency; zero means GOMAXPROCS.
	Workers int `yaml:"workers"`

	HeightMap HeightMap `yaml:"heightmap"`
	// Planet.Seed is ignored; the top-level seed drives every field.
	Planet noise.PlanetParams `yaml:"planet"`
}

// HeightMap describes the sampled rectangle of the planet preview.
type HeightMap struct {
	Width   int        `yaml:"width"`
	Height  int        `yaml:"height"`
	XBounds [2]float64 `yaml:"x_bounds"`
	YBounds [2]float64 `yaml:"y_bounds"`
}

// Default returns the settings the fixtures were recorded with.
func Default() Config {
	hm := heightmap.NewBuilder()
	return Config{
		Seed:    0,
		Density: world.DefaultDensity,
		Mesher:  meshing.ModeUnmerged.String(),
		Column:  noise.ColumnOpenSimplex,
		HeightMap: HeightMap{
			Width:   hm.Width,
			Height:  hm.Height,
			XBounds: hm.XBounds,
			YBounds: hm.YBounds,
		},
		Planet: noise.DefaultPlanetParams(0),
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(raw)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(raw []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every setting, including the planet constants.
func (c Config) Validate() error {
	if _, err := c.Mode(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !c.Column.Valid() {
		return fmt.Errorf("%w: unknown column primitive %q", ErrInvalidConfig, c.Column)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d must not be negative", ErrInvalidConfig, c.Workers)
	}
	if _, err := world.NewGenerator(c.WorldOptions()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.HeightMapBuilder().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.PlanetParams().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Mode parses the mesher name.
func (c Config) Mode() (meshing.Mode, error) {
	return meshing.ParseMode(c.Mesher)
}

// Marshal renders c as YAML, as Load would read it back.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
