package noise

// Offsets keep the three displacement fields from sampling the same lattice
// point as the wrapped source.
var turbulenceOffsets = [3][3]float64{
	{12414.0 / 65536.0, 65124.0 / 65536.0, 31337.0 / 65536.0},
	{26519.0 / 65536.0, 18128.0 / 65536.0, 60943.0 / 65536.0},
	{53820.0 / 65536.0, 11213.0 / 65536.0, 44845.0 / 65536.0},
}

// Turbulence warps the input position by Power times three independent Fbm
// fields before sampling Source. Roughness is the octave count of those
// fields.
type Turbulence struct {
	Source Source
	Power  float64
	dx     *Fbm
	dy     *Fbm
	dz     *Fbm
}

// NewTurbulence seeds the x, y and z displacement with seed, seed+1, seed+2.
func NewTurbulence(src Source, seed uint32, frequency, power float64, roughness int) (*Turbulence, error) {
	field := func(s uint32) (*Fbm, error) {
		p := Fractal(s)
		p.Frequency = frequency
		p.Octaves = roughness
		return NewFbm(p)
	}
	t := &Turbulence{Source: src, Power: power}
	var err error
	if t.dx, err = field(seed); err != nil {
		return nil, err
	}
	if t.dy, err = field(seed + 1); err != nil {
		return nil, err
	}
	if t.dz, err = field(seed + 2); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Turbulence) Sample(x, y, z float64) float64 {
	o := &turbulenceOffsets
	xd := x + t.dx.Sample(x+o[0][0], y+o[0][1], z+o[0][2])*t.Power
	yd := y + t.dy.Sample(x+o[1][0], y+o[1][1], z+o[1][2])*t.Power
	zd := z + t.dz.Sample(x+o[2][0], y+o[2][1], z+o[2][2])*t.Power
	return t.Source.Sample(xd, yd, zd)
}
