// Package noise implements deterministic noise primitives and the modules
// used to compose them into terrain fields.
//
// Every module implements Source. Modules own their upstream sources, so a
// terrain field is a tree of values built once and sampled many times. Graphs
// that contain a Cache are not safe for concurrent use; build one per
// goroutine.
package noise

import "math"

// Source is a scalar field over 3D space.
type Source interface {
	Sample(x, y, z float64) float64
}

// Sampler2D is a scalar field over the plane. Column samplers used for chunk
// heights implement it.
type Sampler2D interface {
	Sample2(x, y float64) float64
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(x, y, z float64) float64

func (f SourceFunc) Sample(x, y, z float64) float64 { return f(x, y, z) }

// Plane samples a 3D source on its z=0 plane.
type Plane struct {
	Source Source
}

func (p Plane) Sample2(x, y float64) float64 { return p.Source.Sample(x, y, 0) }

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// sCurve3 is the cubic smoothstep 3t^2 - 2t^3.
func sCurve3(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
