package noise

import "math"

// Constant returns the same value everywhere.
type Constant float64

func (c Constant) Sample(_, _, _ float64) float64 { return float64(c) }

// Min outputs the smaller of A and B.
type Min struct{ A, B Source }

func (m *Min) Sample(x, y, z float64) float64 {
	return math.Min(m.A.Sample(x, y, z), m.B.Sample(x, y, z))
}

// Max outputs the larger of A and B.
type Max struct{ A, B Source }

func (m *Max) Sample(x, y, z float64) float64 {
	return math.Max(m.A.Sample(x, y, z), m.B.Sample(x, y, z))
}

// Add outputs the sum of A and B.
type Add struct{ A, B Source }

func (a *Add) Sample(x, y, z float64) float64 {
	return a.A.Sample(x, y, z) + a.B.Sample(x, y, z)
}

// Multiply outputs the product of A and B.
type Multiply struct{ A, B Source }

func (m *Multiply) Sample(x, y, z float64) float64 {
	return m.A.Sample(x, y, z) * m.B.Sample(x, y, z)
}

// Blend interpolates from A to B by the raw value of Control.
type Blend struct {
	A, B, Control Source
}

func (b *Blend) Sample(x, y, z float64) float64 {
	lower := b.A.Sample(x, y, z)
	upper := b.B.Sample(x, y, z)
	return lerp(lower, upper, b.Control.Sample(x, y, z))
}

// Select outputs A where Control lies outside [Lower, Upper] and B inside.
// Within Falloff of either bound the two are blended with an S-curve.
type Select struct {
	A, B, Control Source
	Lower, Upper  float64
	Falloff       float64
}

// NewSelect checks the bounds and clamps falloff to half the bound width.
func NewSelect(a, b, control Source, lower, upper, falloff float64) (*Select, error) {
	if !(upper > lower) {
		return nil, &ParameterError{Module: "select", Param: "upper", Value: upper, Reason: "must exceed lower bound"}
	}
	if falloff < 0 || math.IsNaN(falloff) {
		return nil, &ParameterError{Module: "select", Param: "falloff", Value: falloff, Reason: "must be non-negative"}
	}
	falloff = math.Min(falloff, (upper-lower)/2)
	return &Select{A: a, B: b, Control: control, Lower: lower, Upper: upper, Falloff: falloff}, nil
}

func (s *Select) Sample(x, y, z float64) float64 {
	c := s.Control.Sample(x, y, z)
	f := s.Falloff

	if f > 0 {
		switch {
		case c < s.Lower-f:
			return s.A.Sample(x, y, z)
		case c < s.Lower+f:
			lo, hi := s.Lower-f, s.Lower+f
			alpha := sCurve3((c - lo) / (hi - lo))
			return lerp(s.A.Sample(x, y, z), s.B.Sample(x, y, z), alpha)
		case c < s.Upper-f:
			return s.B.Sample(x, y, z)
		case c < s.Upper+f:
			lo, hi := s.Upper-f, s.Upper+f
			alpha := sCurve3((c - lo) / (hi - lo))
			return lerp(s.B.Sample(x, y, z), s.A.Sample(x, y, z), alpha)
		default:
			return s.A.Sample(x, y, z)
		}
	}
	if c < s.Lower || c > s.Upper {
		return s.A.Sample(x, y, z)
	}
	return s.B.Sample(x, y, z)
}
