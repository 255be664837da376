package noise

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// ColumnKind names a 2D sampler that can drive chunk column heights.
type ColumnKind string

const (
	// ColumnOpenSimplex is the in-tree OpenSimplex port. Chunk fixtures are
	// locked against it.
	ColumnOpenSimplex ColumnKind = "opensimplex"
	// ColumnOpenSimplexKS is Kurt Spencer's reference OpenSimplex.
	ColumnOpenSimplexKS ColumnKind = "opensimplex-ks"
	// ColumnPerlin is classic 2D Perlin noise.
	ColumnPerlin ColumnKind = "perlin"
	// ColumnPlanet samples the composite planet field on its z=0 plane.
	ColumnPlanet ColumnKind = "planet"
)

// ColumnKinds lists every supported column sampler.
var ColumnKinds = []ColumnKind{ColumnOpenSimplex, ColumnOpenSimplexKS, ColumnPerlin, ColumnPlanet}

// Valid reports whether k names a supported column sampler.
func (k ColumnKind) Valid() bool {
	for _, c := range ColumnKinds {
		if c == k {
			return true
		}
	}
	return false
}

type openSimplexKS struct {
	n opensimplex.Noise
}

func (o openSimplexKS) Sample2(x, y float64) float64 { return o.n.Eval2(x, y) }

type perlin2D struct {
	p *perlin.Perlin
}

func (p perlin2D) Sample2(x, y float64) float64 { return p.p.Noise2D(x, y) }

// Perlin column parameters: alpha is the octave weight divisor, beta the
// frequency multiplier.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
)

// NewColumnSampler builds the sampler for kind. planet is only consulted for
// ColumnPlanet; its Seed is overridden by seed.
func NewColumnSampler(kind ColumnKind, seed uint32, planet PlanetParams) (Sampler2D, error) {
	switch kind {
	case ColumnOpenSimplex, "":
		return NewOpenSimplex(seed), nil
	case ColumnOpenSimplexKS:
		return openSimplexKS{n: opensimplex.New(int64(seed))}, nil
	case ColumnPerlin:
		return perlin2D{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, int64(seed))}, nil
	case ColumnPlanet:
		planet.Seed = seed
		src, err := BuildPlanet(planet)
		if err != nil {
			return nil, fmt.Errorf("build planet column sampler: %w", err)
		}
		return Plane{Source: src}, nil
	}
	return nil, fmt.Errorf("noise: unknown column sampler %q", kind)
}
