package noise

import "math"

// perlinScale stretches the raw gradient sum towards [-1, 1] (2/sqrt(3)).
const perlinScale = 1.1547005383792515

// Perlin is 3D gradient noise on the integer lattice.
type Perlin struct {
	seed uint32
	perm *PermutationTable
}

// NewPerlin creates 3D gradient noise for seed.
func NewPerlin(seed uint32) *Perlin {
	return &Perlin{seed: seed, perm: NewPermutationTable(seed)}
}

// Seed returns the seed the permutation table was built from.
func (p *Perlin) Seed() uint32 { return p.seed }

func (p *Perlin) Sample(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	ix, iy, iz := int(fx), int(fy), int(fz)
	dx, dy, dz := x-fx, y-fy, z-fz

	g := func(ox, oy, oz int) float64 {
		h := p.perm.hash3(ix+ox, iy+oy, iz+oz)
		return gradientDot(h, dx-float64(ox), dy-float64(oy), dz-float64(oz))
	}
	g000, g100, g010, g110 := g(0, 0, 0), g(1, 0, 0), g(0, 1, 0), g(1, 1, 0)
	g001, g101, g011, g111 := g(0, 0, 1), g(1, 0, 1), g(0, 1, 1), g(1, 1, 1)

	u, v, w := fade(dx), fade(dy), fade(dz)

	k0 := g000
	k1 := g100 - g000
	k2 := g010 - g000
	k3 := g001 - g000
	k4 := g000 + g110 - g100 - g010
	k5 := g000 + g101 - g100 - g001
	k6 := g000 + g011 - g010 - g001
	k7 := g100 + g010 + g001 + g111 - g000 - g110 - g101 - g011

	r := k0 + k1*u + k2*v + k3*w + k4*u*v + k5*u*w + k6*v*w + k7*u*v*w
	return clamp(r*perlinScale, -1, 1)
}

// gradientDot dots the offset with one of the 12 cube-edge gradients; the
// last four repeat to fill 16 slots.
func gradientDot(hash int, x, y, z float64) float64 {
	switch hash & 15 {
	case 0, 12:
		return x + y
	case 1, 13:
		return -x + y
	case 2:
		return x - y
	case 3:
		return -x - y
	case 4:
		return x + z
	case 5:
		return -x + z
	case 6:
		return x - z
	case 7:
		return -x - z
	case 8:
		return y + z
	case 9, 14:
		return -y + z
	case 10:
		return y - z
	default: // 11, 15
		return -y - z
	}
}
