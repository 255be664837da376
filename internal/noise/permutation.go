package noise

import "math/bits"

// PermutationSize is the number of entries in a permutation table.
const PermutationSize = 256

// xorShift is a 128-bit xorshift generator. Given the same seed words it
// yields the same stream on every platform.
type xorShift struct {
	x, y, z, w uint32
}

func newXorShift(x, y, z, w uint32) *xorShift {
	if x == 0 && y == 0 && z == 0 && w == 0 {
		x, y, z, w = 0x0BAD5EED, 0x0BAD5EED, 0x0BAD5EED, 0x0BAD5EED
	}
	return &xorShift{x: x, y: y, z: z, w: w}
}

func (r *xorShift) next() uint32 {
	t := r.x ^ (r.x << 11)
	r.x, r.y, r.z = r.y, r.z, r.w
	r.w = r.w ^ (r.w >> 19) ^ (t ^ (t >> 8))
	return r.w
}

// below returns a uniform value in [0, n) using widening multiply with
// rejection of the biased zone.
func (r *xorShift) below(n uint32) uint32 {
	zone := (n << bits.LeadingZeros32(n)) - 1
	for {
		hi, lo := bits.Mul32(r.next(), n)
		if lo <= zone {
			return hi
		}
	}
}

// PermutationTable is a seeded shuffle of 0..255 used to hash lattice points.
type PermutationTable struct {
	values [PermutationSize]uint8
}

// NewPermutationTable shuffles the identity permutation with a generator
// seeded from the words {1, seed, seed, seed}.
func NewPermutationTable(seed uint32) *PermutationTable {
	rng := newXorShift(1, seed, seed, seed)
	p := &PermutationTable{}
	for i := range p.values {
		p.values[i] = uint8(i)
	}
	for i := PermutationSize - 1; i > 0; i-- {
		j := rng.below(uint32(i + 1))
		p.values[i], p.values[j] = p.values[j], p.values[i]
	}
	return p
}

// hash2 and hash3 fold lattice coordinates through the table. Only the low
// 8 bits of each coordinate matter, so the lattice repeats every 256 cells.
func (p *PermutationTable) hash2(x, y int) int {
	return int(p.values[int(p.values[x&0xff])^(y&0xff)])
}

func (p *PermutationTable) hash3(x, y, z int) int {
	idx := int(p.values[x&0xff]) ^ (y & 0xff)
	return int(p.values[int(p.values[idx])^(z&0xff)])
}
