// Package orientation maps mesh face directions to named orientations and
// turns quads into placement transforms for a renderer.
package orientation

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lucashuguet/goatland/internal/meshing"
)

// Orientation names the side of a voxel a quad faces.
type Orientation int

const (
	Top Orientation = iota
	Bottom
	Left
	Right
	Front
	Back
)

var (
	ErrInvalidNormal    = errors.New("orientation: invalid normal")
	ErrInvalidDirection = errors.New("orientation: invalid direction index")
)

var names = [...]string{"Top", "Bottom", "Left", "Right", "Front", "Back"}

var normals = [...][3]int{
	Top:    {0, 1, 0},
	Bottom: {0, -1, 0},
	Left:   {-1, 0, 0},
	Right:  {1, 0, 0},
	Front:  {0, 0, 1},
	Back:   {0, 0, -1},
}

// All lists every orientation in declaration order.
var All = []Orientation{Top, Bottom, Left, Right, Front, Back}

func (o Orientation) String() string {
	if o < 0 || int(o) >= len(names) {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return names[o]
}

// Normal returns the unit normal of o, or the zero vector when o is not a
// valid orientation.
func (o Orientation) Normal() [3]int {
	if o < 0 || int(o) >= len(normals) {
		return [3]int{}
	}
	return normals[o]
}

// FromNormal maps an axis-aligned unit normal to its orientation.
func FromNormal(n [3]int) (Orientation, error) {
	for o, v := range normals {
		if v == n {
			return Orientation(o), nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidNormal, n)
}

// FromDirection looks up the normal of a quad-buffer direction index.
func FromDirection(index int) (Orientation, error) {
	if index < 0 || index >= len(meshing.Faces) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDirection, index)
	}
	return FromNormal(meshing.Faces[index].Normal)
}

// Of resolves the orientation of direction index, or of override when it is
// set.
func Of(index int, override *[3]int) (Orientation, error) {
	if override != nil {
		return FromNormal(*override)
	}
	return FromDirection(index)
}

// DegToRad converts whole degrees to radians.
func DegToRad(deg int) float64 {
	return float64(deg) / 180 * math.Pi
}

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
)

// Rotation turns a quad lying in the XY plane facing +Z so that it faces o.
func Rotation(o Orientation) mgl64.Quat {
	switch o {
	case Top:
		return mgl64.QuatRotate(DegToRad(-90), axisX)
	case Bottom:
		return mgl64.QuatRotate(DegToRad(90), axisX)
	case Left:
		return mgl64.QuatRotate(DegToRad(-90), axisY)
	case Right:
		return mgl64.QuatRotate(DegToRad(90), axisY)
	case Back:
		return mgl64.QuatRotate(DegToRad(180), axisY)
	}
	return mgl64.QuatIdent()
}

// Place returns the translation and rotation of a quad whose minimum voxel
// is minimum and whose extent in the placement frame is size. The
// translation is the quad centre on the voxel face, in block units.
func Place(minimum mgl64.Vec3, size mgl64.Vec2, o Orientation) (mgl64.Vec3, mgl64.Quat) {
	sx, sy := size.X(), size.Y()
	t := minimum.Add(mgl64.Vec3{sx/2 - 0.5, sy/2 - 0.5, 0.5})

	var d mgl64.Vec3
	switch o {
	case Top:
		d = mgl64.Vec3{0, sy / 2, -sy / 2}
	case Bottom:
		d = mgl64.Vec3{0, -sy / 2, sy/2 - 1}
	case Left:
		d = mgl64.Vec3{-sx / 2, 0, sx/2 - 1}
	case Right:
		d = mgl64.Vec3{-sx/2 + 1, 0, -sx / 2}
	case Back:
		d = mgl64.Vec3{-sx + 1, 0, -1}
	}
	return t.Add(d), Rotation(o)
}

// PlaceQuad returns the transform of a quad of direction dir, merged or
// not. Place anchors its panel for unit quads; for Right, Back and Top a
// larger panel would grow away from the faces it covers, so the anchor is
// shifted back by the extra extent first.
func PlaceQuad(dir int, q meshing.Quad) (mgl64.Vec3, mgl64.Quat, error) {
	o, err := FromDirection(dir)
	if err != nil {
		return mgl64.Vec3{}, mgl64.Quat{}, err
	}
	size := QuadSize(dir, q)
	sx, sy := size.X(), size.Y()
	m := mgl64.Vec3{float64(q.Minimum[0]), float64(q.Minimum[1]), float64(q.Minimum[2])}
	switch o {
	case Right:
		m[2] += sx - 1
	case Back:
		m[0] += sx - 1
	case Top:
		m[1] -= sy - 1
		m[2] += sy - 1
	}
	t, r := Place(m, size, o)
	return t, r, nil
}

// QuadSize maps a quad's Width (along the face U axis) and Height (along V)
// to the placement frame of direction dir. The Y faces span (Z, X), so their
// extents swap.
func QuadSize(dir int, q meshing.Quad) mgl64.Vec2 {
	w, h := float64(q.Width), float64(q.Height)
	if meshing.Faces[dir].Axis == 1 {
		return mgl64.Vec2{h, w}
	}
	return mgl64.Vec2{w, h}
}
