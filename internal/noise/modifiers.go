package noise

import (
	"math"
	"sort"
)

// ScaleBias maps v to v*Scale + Bias.
type ScaleBias struct {
	Source      Source
	Scale, Bias float64
}

func (s *ScaleBias) Sample(x, y, z float64) float64 {
	return s.Source.Sample(x, y, z)*s.Scale + s.Bias
}

// Clamp bounds the source output to [Lower, Upper].
type Clamp struct {
	Source       Source
	Lower, Upper float64
}

func (c *Clamp) Sample(x, y, z float64) float64 {
	return clamp(c.Source.Sample(x, y, z), c.Lower, c.Upper)
}

// Exponent raises the source, mapped to [0, 1], to a power and maps the
// result back to [-1, 1].
type Exponent struct {
	Source   Source
	Exponent float64
}

func (e *Exponent) Sample(x, y, z float64) float64 {
	v := math.Abs((e.Source.Sample(x, y, z) + 1) / 2)
	return math.Pow(v, e.Exponent)*2 - 1
}

// ControlPoint maps an input value to an output value on a Curve.
type ControlPoint struct {
	In, Out float64
}

// Curve remaps the source through a piecewise-linear function. Inputs
// outside the control points take the nearest endpoint's output.
type Curve struct {
	Source Source
	points []ControlPoint
}

// NewCurve requires at least four control points with strictly increasing
// inputs.
func NewCurve(src Source, points ...ControlPoint) (*Curve, error) {
	if len(points) < 4 {
		return nil, &ParameterError{Module: "curve", Param: "points", Value: float64(len(points)), Reason: "need at least 4 control points"}
	}
	for i := 1; i < len(points); i++ {
		if !(points[i].In > points[i-1].In) {
			return nil, &ParameterError{Module: "curve", Param: "in", Value: points[i].In, Reason: "control point inputs must be strictly increasing"}
		}
	}
	return &Curve{Source: src, points: append([]ControlPoint(nil), points...)}, nil
}

func (c *Curve) Sample(x, y, z float64) float64 {
	v := c.Source.Sample(x, y, z)
	n := len(c.points)
	pos := sort.Search(n, func(i int) bool { return c.points[i].In >= v })
	i0 := min(max(pos-1, 0), n-1)
	i1 := min(max(pos, 0), n-1)
	if i0 == i1 {
		return c.points[i1].Out
	}
	p0, p1 := c.points[i0], c.points[i1]
	alpha := (v - p0.In) / (p1.In - p0.In)
	return lerp(p0.Out, p1.Out, alpha)
}

// Terrace quantizes the source into steps at the control points. Between two
// points the output eases in quadratically, so each step has a flat top and
// a steep riser.
type Terrace struct {
	Source Source
	Invert bool
	points []float64
}

// NewTerrace requires at least two strictly increasing control points.
func NewTerrace(src Source, points ...float64) (*Terrace, error) {
	if len(points) < 2 {
		return nil, &ParameterError{Module: "terrace", Param: "points", Value: float64(len(points)), Reason: "need at least 2 control points"}
	}
	for i := 1; i < len(points); i++ {
		if !(points[i] > points[i-1]) {
			return nil, &ParameterError{Module: "terrace", Param: "point", Value: points[i], Reason: "control points must be strictly increasing"}
		}
	}
	return &Terrace{Source: src, points: append([]float64(nil), points...)}, nil
}

func (t *Terrace) Sample(x, y, z float64) float64 {
	v := t.Source.Sample(x, y, z)
	n := len(t.points)
	pos := sort.SearchFloat64s(t.points, v)
	i0 := min(max(pos-1, 0), n-1)
	i1 := min(max(pos, 0), n-1)
	if i0 == i1 {
		return t.points[i1]
	}
	lo, hi := t.points[i0], t.points[i1]
	alpha := (v - lo) / (hi - lo)
	if t.Invert {
		alpha = 1 - alpha
		lo, hi = hi, lo
	}
	return lerp(lo, hi, alpha*alpha)
}
