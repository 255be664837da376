package meshing

import (
	"github.com/lucashuguet/goatland/internal/profiling"
	"github.com/lucashuguet/goatland/internal/world"
)

// Greedy sweeps each direction slice by slice along its normal axis. Per
// slice it builds a mask of faces that need a quad, then repeatedly takes
// the first set cell, grows it along U as far as the mask allows, grows that
// run along V while every cell of the next row is set, emits the rectangle
// and clears it from the mask.
func Greedy(g *world.VoxelGrid, lo, hi [3]int) QuadBuffer {
	defer profiling.Track("meshing.Greedy")()
	var buf QuadBuffer
	for dir, f := range Faces {
		buf.Groups[dir] = greedyDirection(g, lo, hi, f)
	}
	return buf
}

func greedyDirection(g *world.VoxelGrid, lo, hi [3]int, f Face) []Quad {
	var quads []Quad

	// interior extent along each axis of the face frame
	n0, n1 := lo[f.Axis]+1, hi[f.Axis]
	u0, v0 := lo[f.U]+1, lo[f.V]+1
	su := hi[f.U] - u0
	sv := hi[f.V] - v0
	if su <= 0 || sv <= 0 {
		return nil
	}

	mask := make([]bool, su*sv)
	for n := n0; n < n1; n++ {
		// Build the mask for this slice
		for v := 0; v < sv; v++ {
			for u := 0; u < su; u++ {
				var p [3]int
				p[f.Axis], p[f.U], p[f.V] = n, u0+u, v0+v
				mask[v*su+u] = faceVisible(g, p, f)
			}
		}

		// Greedy merge over mask (width along u, height along v)
		for i := 0; i < su*sv; i++ {
			if !mask[i] {
				continue
			}
			u, v := i%su, i/su

			width := 1
			for u+width < su && mask[v*su+u+width] {
				width++
			}

			height := 1
		grow:
			for v+height < sv {
				row := (v + height) * su
				for k := u; k < u+width; k++ {
					if !mask[row+k] {
						break grow
					}
				}
				height++
			}

			var p [3]int
			p[f.Axis], p[f.U], p[f.V] = n, u0+u, v0+v
			quads = append(quads, Quad{Minimum: p, Width: width, Height: height})

			// zero-out mask region
			for vv := v; vv < v+height; vv++ {
				for uu := u; uu < u+width; uu++ {
					mask[vv*su+uu] = false
				}
			}
		}
	}
	return quads
}
