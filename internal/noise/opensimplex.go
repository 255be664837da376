package noise

import "math"

const (
	stretch2D = -0.211324865405187 // (1/sqrt(2+1) - 1) / 2
	squish2D  = 0.366025403784439  // (sqrt(2+1) - 1) / 2
	norm2D    = 1.0 / 14.0
)

var grad2D = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{math.Sqrt2 / 2, math.Sqrt2 / 2}, {-math.Sqrt2 / 2, math.Sqrt2 / 2},
	{math.Sqrt2 / 2, -math.Sqrt2 / 2}, {-math.Sqrt2 / 2, -math.Sqrt2 / 2},
}

// OpenSimplex is single-octave 2D OpenSimplex noise. It is the column
// sampler behind chunk heights; its output lies roughly in [-1, 1].
type OpenSimplex struct {
	perm *PermutationTable
}

// NewOpenSimplex creates 2D OpenSimplex noise for seed.
func NewOpenSimplex(seed uint32) *OpenSimplex {
	return &OpenSimplex{perm: NewPermutationTable(seed)}
}

func (o *OpenSimplex) Sample2(x, y float64) float64 {
	offset := (x + y) * stretch2D
	sx, sy := x+offset, y+offset

	fx, fy := math.Floor(sx), math.Floor(sy)
	squish := (fx + fy) * squish2D
	rx, ry := sx-fx, sy-fy
	regionSum := rx + ry

	// position relative to the origin vertex of the rhombus
	px := x - (fx + squish)
	py := y - (fy + squish)

	const (
		t0 = squish2D
		t1 = squish2D + 1
		t2 = squish2D + t1
	)
	ix, iy := int(fx), int(fy)

	v := o.surflet(ix+1, iy, px-t1, py-t0)
	v += o.surflet(ix, iy+1, px-t0, py-t1)
	if regionSum > 1 {
		v += o.surflet(ix+1, iy+1, px-t2, py-t2)
	} else {
		v += o.surflet(ix, iy, px, py)
	}
	return v * norm2D
}

func (o *OpenSimplex) surflet(vx, vy int, dx, dy float64) float64 {
	attn := 2 - (dx*dx + dy*dy)
	if attn <= 0 {
		return 0
	}
	g := grad2D[o.perm.hash2(vx, vy)%8]
	attn *= attn
	return attn * attn * (dx*g[0] + dy*g[1])
}
