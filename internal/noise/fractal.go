package noise

import "math"

// Defaults shared by the fractal modules.
const (
	DefaultFrequency   = 1.0
	DefaultLacunarity  = math.Pi * 2 / 3
	DefaultPersistence = 0.5
	DefaultOctaves     = 6
	MaxOctaves         = 32
)

// FractalParams configures a sum of Perlin octaves. Octave i is seeded with
// Seed+i, sampled at Frequency*Lacunarity^i and weighted by Persistence^(i+1).
type FractalParams struct {
	Seed        uint32
	Frequency   float64
	Lacunarity  float64
	Persistence float64
	Octaves     int
}

// Fractal returns params with the default frequency, lacunarity,
// persistence and octave count.
func Fractal(seed uint32) FractalParams {
	return FractalParams{
		Seed:        seed,
		Frequency:   DefaultFrequency,
		Lacunarity:  DefaultLacunarity,
		Persistence: DefaultPersistence,
		Octaves:     DefaultOctaves,
	}
}

// Validate returns a ParameterError, tagged with module, for the first
// parameter out of range.
func (p FractalParams) Validate(module string) error {
	switch {
	case !(p.Frequency > 0) || math.IsInf(p.Frequency, 0):
		return &ParameterError{Module: module, Param: "frequency", Value: p.Frequency, Reason: "must be positive and finite"}
	case !(p.Lacunarity > 0) || math.IsInf(p.Lacunarity, 0):
		return &ParameterError{Module: module, Param: "lacunarity", Value: p.Lacunarity, Reason: "must be positive and finite"}
	case math.IsNaN(p.Persistence) || math.IsInf(p.Persistence, 0):
		return &ParameterError{Module: module, Param: "persistence", Value: p.Persistence, Reason: "must be finite"}
	case p.Octaves < 1 || p.Octaves > MaxOctaves:
		return &ParameterError{Module: module, Param: "octaves", Value: float64(p.Octaves), Reason: "must be within [1, 32]"}
	}
	return nil
}

func (p FractalParams) octaves() []*Perlin {
	out := make([]*Perlin, p.Octaves)
	for i := range out {
		out[i] = NewPerlin(p.Seed + uint32(i))
	}
	return out
}

// weightSum is sum(persistence^k) for k in 1..octaves.
func (p FractalParams) weightSum() float64 {
	sum, amp := 0.0, p.Persistence
	for range p.Octaves {
		sum += amp
		amp *= p.Persistence
	}
	return sum
}

// Fbm is fractal Brownian motion: a normalized sum of Perlin octaves.
type Fbm struct {
	FractalParams
	sources []*Perlin
	scale   float64
}

// NewFbm creates fractal Brownian motion over Perlin octaves.
func NewFbm(p FractalParams) (*Fbm, error) {
	if err := p.Validate("fbm"); err != nil {
		return nil, err
	}
	return &Fbm{FractalParams: p, sources: p.octaves(), scale: 1 / p.weightSum()}, nil
}

func (f *Fbm) Sample(x, y, z float64) float64 {
	x, y, z = x*f.Frequency, y*f.Frequency, z*f.Frequency
	result, amp := 0.0, f.Persistence
	for _, src := range f.sources {
		result += src.Sample(x, y, z) * amp
		x, y, z = x*f.Lacunarity, y*f.Lacunarity, z*f.Lacunarity
		amp *= f.Persistence
	}
	return result * f.scale
}

// Billow folds each octave with 2|n|-1, giving rounded lumps instead of
// smooth hills.
type Billow struct {
	FractalParams
	sources []*Perlin
	scale   float64
}

// NewBillow creates billowy noise from folded Perlin octaves.
func NewBillow(p FractalParams) (*Billow, error) {
	if err := p.Validate("billow"); err != nil {
		return nil, err
	}
	return &Billow{FractalParams: p, sources: p.octaves(), scale: 1 / p.weightSum()}, nil
}

func (b *Billow) Sample(x, y, z float64) float64 {
	x, y, z = x*b.Frequency, y*b.Frequency, z*b.Frequency
	result, amp := 0.0, b.Persistence
	for _, src := range b.sources {
		signal := math.Abs(src.Sample(x, y, z))*2 - 1
		result += signal * amp
		x, y, z = x*b.Lacunarity, y*b.Lacunarity, z*b.Lacunarity
		amp *= b.Persistence
	}
	result += 0.5
	return result * b.scale
}

// RidgedMulti inverts and squares each octave so the zero crossings become
// sharp ridges. Each octave is weighted by the previous one, which keeps
// valleys smooth while ridges gain detail.
type RidgedMulti struct {
	FractalParams
	Attenuation float64
	sources     []*Perlin
	scale       float64
}

// Ridged returns params for RidgedMulti: its persistence defaults to 1 and
// its attenuation to 2.
func Ridged(seed uint32) (FractalParams, float64) {
	p := Fractal(seed)
	p.Persistence = 1
	return p, 2
}

// NewRidgedMulti creates ridged multifractal noise.
func NewRidgedMulti(p FractalParams, attenuation float64) (*RidgedMulti, error) {
	if err := p.Validate("ridged"); err != nil {
		return nil, err
	}
	if !(attenuation > 0) {
		return nil, &ParameterError{Module: "ridged", Param: "attenuation", Value: attenuation, Reason: "must be positive"}
	}
	return &RidgedMulti{
		FractalParams: p,
		Attenuation:   attenuation,
		sources:       p.octaves(),
		scale:         2 / (2 - math.Pow(0.5, float64(p.Octaves-1))),
	}, nil
}

func (r *RidgedMulti) Sample(x, y, z float64) float64 {
	x, y, z = x*r.Frequency, y*r.Frequency, z*r.Frequency
	result, weight, amp := 0.0, 1.0, 1.0
	for _, src := range r.sources {
		signal := 1 - math.Abs(src.Sample(x, y, z))
		signal *= signal
		signal *= weight
		weight = clamp(signal/r.Attenuation, 0, 1)
		result += signal * amp
		x, y, z = x*r.Lacunarity, y*r.Lacunarity, z*r.Lacunarity
		amp *= r.Persistence
	}
	return math.Abs(result)*r.scale - 1
}
