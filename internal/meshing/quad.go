package meshing

import "fmt"

// Face is one of the six cardinal face directions. Axis is the axis the
// normal points along; U and V span the face plane.
type Face struct {
	Normal     [3]int
	Axis, U, V int
}

// Faces is the direction table shared by the meshers and the orientation
// mapper: right-handed, Y up, negative directions first.
var Faces = [6]Face{
	{Normal: [3]int{-1, 0, 0}, Axis: 0, U: 2, V: 1},
	{Normal: [3]int{0, -1, 0}, Axis: 1, U: 2, V: 0},
	{Normal: [3]int{0, 0, -1}, Axis: 2, U: 0, V: 1},
	{Normal: [3]int{1, 0, 0}, Axis: 0, U: 2, V: 1},
	{Normal: [3]int{0, 1, 0}, Axis: 1, U: 2, V: 0},
	{Normal: [3]int{0, 0, 1}, Axis: 2, U: 0, V: 1},
}

// Quad is an axis-aligned rectangle of voxel faces. Minimum is the voxel
// with the smallest coordinates among those the quad covers; Width runs
// along the face's U axis and Height along V. Unit quads are 1x1.
type Quad struct {
	Minimum       [3]int
	Width, Height int
}

// Voxels calls fn for every voxel whose face the quad covers.
func (q Quad) Voxels(f Face, fn func(p [3]int)) {
	for dv := 0; dv < q.Height; dv++ {
		for du := 0; du < q.Width; du++ {
			p := q.Minimum
			p[f.U] += du
			p[f.V] += dv
			fn(p)
		}
	}
}

// QuadBuffer holds quads grouped by face direction index.
type QuadBuffer struct {
	Groups [6][]Quad
}

// NumQuads returns the quad count over all directions.
func (b QuadBuffer) NumQuads() int {
	n := 0
	for _, g := range b.Groups {
		n += len(g)
	}
	return n
}

// Area returns the number of unit faces covered in direction dir.
func (b QuadBuffer) Area(dir int) int {
	n := 0
	for _, q := range b.Groups[dir] {
		n += q.Width * q.Height
	}
	return n
}

// Expand splits every quad into unit quads.
func (b QuadBuffer) Expand() QuadBuffer {
	var out QuadBuffer
	for dir, g := range b.Groups {
		for _, q := range g {
			q.Voxels(Faces[dir], func(p [3]int) {
				out.Groups[dir] = append(out.Groups[dir], Quad{Minimum: p, Width: 1, Height: 1})
			})
		}
	}
	return out
}

func (b QuadBuffer) String() string {
	return fmt.Sprintf("QuadBuffer{-x:%d -y:%d -z:%d +x:%d +y:%d +z:%d}",
		len(b.Groups[0]), len(b.Groups[1]), len(b.Groups[2]),
		len(b.Groups[3]), len(b.Groups[4]), len(b.Groups[5]))
}
