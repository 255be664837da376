// Package goatland generates heightmap voxel terrain and meshes it into
// quads ready to be placed by a renderer.
//
// A chunk is a 16x16 column of blocks surrounded by one block of padding
// taken from its neighbours, so faces on chunk borders are culled without
// looking at other chunks:
//
//	quads, err := goatland.GenerateChunk(0, 0, seed)
//	placements, err := goatland.Placements(quads)
package goatland

import (
	"context"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lucashuguet/goatland/internal/config"
	"github.com/lucashuguet/goatland/internal/heightmap"
	"github.com/lucashuguet/goatland/internal/meshing"
	"github.com/lucashuguet/goatland/internal/orientation"
)

// GenerateChunk builds and meshes chunk (coordX, coordZ) with the default
// settings: OpenSimplex columns, density 10, one quad per visible face.
func GenerateChunk(coordX, coordZ int, seed uint32) (meshing.QuadBuffer, error) {
	cfg := config.Default()
	cfg.Seed = seed
	return GenerateChunkWith(cfg, coordX, coordZ)
}

// GenerateChunkWith builds and meshes a chunk with explicit settings.
func GenerateChunkWith(cfg config.Config, coordX, coordZ int) (meshing.QuadBuffer, error) {
	if err := cfg.Validate(); err != nil {
		return meshing.QuadBuffer{}, err
	}
	mode, _ := cfg.Mode()
	gen, err := cfg.NewGenerator()
	if err != nil {
		return meshing.QuadBuffer{}, err
	}
	return meshing.Chunk(gen.Generate(coordX, coordZ), mode), nil
}

// SampleHeightMap samples the planet field over the default 100x100 grid
// spanning [-1, 1] on both axes.
func SampleHeightMap(seed uint32) (*heightmap.Map, error) {
	cfg := config.Default()
	cfg.Seed = seed
	return SampleHeightMapWith(context.Background(), cfg)
}

// SampleHeightMapWith samples the planet field over the configured grid.
func SampleHeightMapWith(ctx context.Context, cfg config.Config) (*heightmap.Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg.HeightMapBuilder().Build(ctx, cfg.PlanetFactory())
}

// OrientationOf resolves the orientation of a quad-buffer direction, or of
// override when it is set.
func OrientationOf(directionIndex int, override *[3]int) (orientation.Orientation, error) {
	return orientation.Of(directionIndex, override)
}

// PlacementOf returns the translation and rotation of a quad.
func PlacementOf(minimum [3]int, size [2]float64, o orientation.Orientation) (mgl64.Vec3, mgl64.Quat) {
	m := mgl64.Vec3{float64(minimum[0]), float64(minimum[1]), float64(minimum[2])}
	return orientation.Place(m, mgl64.Vec2{size[0], size[1]}, o)
}

// Placement is the transform of one quad.
type Placement struct {
	Direction   int
	Orientation orientation.Orientation
	Quad        meshing.Quad
	Size        mgl64.Vec2
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
}

// Placements resolves the transform of every quad in buf, direction by
// direction. Merged quads get a panel covering exactly their unit faces.
// An unresolvable direction fails the whole buffer.
func Placements(buf meshing.QuadBuffer) ([]Placement, error) {
	out := make([]Placement, 0, buf.NumQuads())
	for dir, quads := range buf.Groups {
		if len(quads) == 0 {
			continue
		}
		o, err := orientation.FromDirection(dir)
		if err != nil {
			return nil, fmt.Errorf("goatland: direction %d: %w", dir, err)
		}
		for _, q := range quads {
			t, r, err := orientation.PlaceQuad(dir, q)
			if err != nil {
				return nil, fmt.Errorf("goatland: direction %d: %w", dir, err)
			}
			size := orientation.QuadSize(dir, q)
			out = append(out, Placement{
				Direction:   dir,
				Orientation: o,
				Quad:        q,
				Size:        size,
				Translation: t,
				Rotation:    r,
			})
		}
	}
	return out, nil
}
