package noise

import "math"

// Worley is cellular noise: the distance from the sample point to the
// nearest feature point, one feature point per lattice cell, remapped so a
// point sitting on a feature returns -1.
type Worley struct {
	Frequency float64
	perm      *PermutationTable
}

// NewWorley returns cellular noise at the given frequency.
func NewWorley(seed uint32, frequency float64) (*Worley, error) {
	if !(frequency > 0) {
		return nil, &ParameterError{Module: "worley", Param: "frequency", Value: frequency, Reason: "must be positive"}
	}
	return &Worley{Frequency: frequency, perm: NewPermutationTable(seed)}, nil
}

// Sample returns the remapped distance to the nearest feature point.
func (w *Worley) Sample(x, y, z float64) float64 {
	x, y, z = x*w.Frequency, y*w.Frequency, z*w.Frequency
	cx, cy, cz := math.Floor(x), math.Floor(y), math.Floor(z)

	// a feature point lies within 0.5 of its lattice point, so the nearest
	// one belongs to a lattice point within one cell of the enclosing cell
	ix0, iy0, iz0 := int(cx), int(cy), int(cz)

	best := math.Inf(1)
	for ix := ix0 - 1; ix <= ix0+2; ix++ {
		for iy := iy0 - 1; iy <= iy0+2; iy++ {
			for iz := iz0 - 1; iz <= iz0+2; iz++ {
				fx, fy, fz := w.featurePoint(ix, iy, iz)
				dx, dy, dz := x-fx, y-fy, z-fz
				if d := math.Sqrt(dx*dx + dy*dy + dz*dz); d < best {
					best = d
				}
			}
		}
	}
	return best*2 - 1
}

// featurePoint places a jittered point around the cell corner. The hash
// picks one of 8 diagonal directions and a length in [0, 0.5].
func (w *Worley) featurePoint(ix, iy, iz int) (float64, float64, float64) {
	h := w.perm.hash3(ix, iy, iz)
	length := float64((h&0xf8)>>3) * 0.5 / 31
	d := length * math.Sqrt2 / 2
	var ox, oy, oz float64
	switch h & 7 {
	case 0:
		ox, oy = d, d
	case 1:
		ox, oy = d, -d
	case 2:
		ox, oy = -d, d
	case 3:
		ox, oy = -d, -d
	case 4:
		ox, oz = d, d
	case 5:
		ox, oz = d, -d
	case 6:
		ox, oz = -d, d
	default:
		ox, oz = -d, -d
	}
	return float64(ix) + ox, float64(iy) + oy, float64(iz) + oz
}
