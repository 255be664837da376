package meshing

import (
	"fmt"
	"strings"

	"github.com/lucashuguet/goatland/internal/profiling"
	"github.com/lucashuguet/goatland/internal/world"
)

// Mode selects how visible faces become quads.
type Mode int

const (
	// ModeUnmerged emits one unit quad per visible face.
	ModeUnmerged Mode = iota
	// ModeGreedy merges coplanar visible faces into maximal rectangles.
	ModeGreedy
)

func (m Mode) String() string {
	switch m {
	case ModeUnmerged:
		return "unmerged"
	case ModeGreedy:
		return "greedy"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the names returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unmerged", "":
		return ModeUnmerged, nil
	case "greedy":
		return ModeGreedy, nil
	}
	return 0, fmt.Errorf("meshing: unknown mode %q", s)
}

// Standard extent of a chunk grid: everything inside the padding is meshed.
var (
	ChunkMin = [3]int{0, 0, 0}
	ChunkMax = [3]int{world.ChunkSizeX - 1, world.ChunkSizeY - 1, world.ChunkSizeZ - 1}
)

// faceVisible reports whether voxel p shows its face in direction f: p is
// solid and the neighbour across the face is empty. Neighbours outside the
// grid count as empty.
func faceVisible(g *world.VoxelGrid, p [3]int, f Face) bool {
	if !g.IsSolid(p[0], p[1], p[2]) {
		return false
	}
	return !g.IsSolid(p[0]+f.Normal[0], p[1]+f.Normal[1], p[2]+f.Normal[2])
}

// Mesh emits the visible faces of the voxels strictly inside (lo, hi).
// Voxels on lo and hi themselves are only read as neighbours.
func Mesh(g *world.VoxelGrid, lo, hi [3]int, mode Mode) QuadBuffer {
	if mode == ModeGreedy {
		return Greedy(g, lo, hi)
	}
	return Unmerged(g, lo, hi)
}

// Chunk meshes the interior of a chunk grid.
func Chunk(g *world.VoxelGrid, mode Mode) QuadBuffer {
	return Mesh(g, ChunkMin, ChunkMax, mode)
}

// Unmerged emits one unit quad for every visible face.
func Unmerged(g *world.VoxelGrid, lo, hi [3]int) QuadBuffer {
	defer profiling.Track("meshing.Unmerged")()
	var buf QuadBuffer
	for z := lo[2] + 1; z < hi[2]; z++ {
		for y := lo[1] + 1; y < hi[1]; y++ {
			for x := lo[0] + 1; x < hi[0]; x++ {
				p := [3]int{x, y, z}
				for dir, f := range Faces {
					if faceVisible(g, p, f) {
						buf.Groups[dir] = append(buf.Groups[dir], Quad{Minimum: p, Width: 1, Height: 1})
					}
				}
			}
		}
	}
	return buf
}
