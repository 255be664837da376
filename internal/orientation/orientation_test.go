package orientation

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lucashuguet/goatland/internal/meshing"
)

func TestFromDirection(t *testing.T) {
	want := []Orientation{Left, Bottom, Back, Right, Top, Front}
	for i, w := range want {
		got, err := FromDirection(i)
		if err != nil {
			t.Fatalf("FromDirection(%d): %v", i, err)
		}
		if got != w {
			t.Errorf("FromDirection(%d) = %v, want %v", i, got, w)
		}
	}
	for _, i := range []int{-1, 6} {
		if _, err := FromDirection(i); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("FromDirection(%d) error = %v, want ErrInvalidDirection", i, err)
		}
	}
}

func TestNormalBijection(t *testing.T) {
	seen := make(map[[3]int]bool)
	for _, o := range All {
		n := o.Normal()
		if seen[n] {
			t.Fatalf("normal %v used twice", n)
		}
		seen[n] = true
		back, err := FromNormal(n)
		if err != nil || back != o {
			t.Errorf("FromNormal(%v) = %v, %v; want %v", n, back, err, o)
		}
	}
	for dir, f := range meshing.Faces {
		o, err := FromDirection(dir)
		if err != nil {
			t.Fatalf("FromDirection(%d): %v", dir, err)
		}
		if o.Normal() != f.Normal {
			t.Errorf("direction %d: %v normal %v, face normal %v", dir, o, o.Normal(), f.Normal)
		}
	}
}

func TestInvalidNormal(t *testing.T) {
	for _, n := range [][3]int{{-1, 1, 0}, {0, 0, 0}, {2, 0, 0}, {1, 1, 1}} {
		if _, err := FromNormal(n); !errors.Is(err, ErrInvalidNormal) {
			t.Errorf("FromNormal(%v) error = %v, want ErrInvalidNormal", n, err)
		}
	}
}

func TestOfOverride(t *testing.T) {
	up := [3]int{0, 1, 0}
	if o, err := Of(0, &up); err != nil || o != Top {
		t.Fatalf("Of(0, up) = %v, %v; want Top", o, err)
	}
	if o, err := Of(0, nil); err != nil || o != Left {
		t.Fatalf("Of(0, nil) = %v, %v; want Left", o, err)
	}
	bad := [3]int{-1, 1, 0}
	if _, err := Of(4, &bad); !errors.Is(err, ErrInvalidNormal) {
		t.Fatalf("Of(4, bad) error = %v, want ErrInvalidNormal", err)
	}
}

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); got != math.Pi {
		t.Fatalf("DegToRad(180) = %v, want π", got)
	}
	if got := DegToRad(-90); got != -math.Pi/2 {
		t.Fatalf("DegToRad(-90) = %v, want -π/2", got)
	}
	if got := DegToRad(0); got != 0 {
		t.Fatalf("DegToRad(0) = %v", got)
	}
}

func TestPlaceRegression(t *testing.T) {
	tests := []struct {
		o    Orientation
		want mgl64.Vec3
	}{
		{Top, mgl64.Vec3{0.5, 1.5, -0.5}},
		{Bottom, mgl64.Vec3{0.5, -0.5, 0.5}},
		{Left, mgl64.Vec3{-0.5, 0.5, 0.5}},
		{Right, mgl64.Vec3{0.5, 0.5, -0.5}},
		{Front, mgl64.Vec3{0.5, 0.5, 0.5}},
		{Back, mgl64.Vec3{-0.5, 0.5, -0.5}},
	}
	for _, tt := range tests {
		got, _ := Place(mgl64.Vec3{}, mgl64.Vec2{2, 2}, tt.o)
		if !got.ApproxEqual(tt.want) {
			t.Errorf("Place(%v) = %v, want %v", tt.o, got, tt.want)
		}
	}
}

func TestPlaceTranslatesWithMinimum(t *testing.T) {
	minimum := mgl64.Vec3{3, 11, -7}
	for _, o := range All {
		base, _ := Place(mgl64.Vec3{}, mgl64.Vec2{1, 1}, o)
		got, _ := Place(minimum, mgl64.Vec2{1, 1}, o)
		if !got.ApproxEqual(base.Add(minimum)) {
			t.Errorf("%v: Place(%v) = %v, want %v", o, minimum, got, base.Add(minimum))
		}
	}
}

func TestRotationFacesNormal(t *testing.T) {
	front := mgl64.Vec3{0, 0, 1}
	for _, o := range All {
		n := o.Normal()
		want := mgl64.Vec3{float64(n[0]), float64(n[1]), float64(n[2])}
		_, q := Place(mgl64.Vec3{}, mgl64.Vec2{1, 1}, o)
		got := q.Rotate(front)
		for i := range got {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Errorf("%v: rotated +Z = %v, want %v", o, got, want)
				break
			}
		}
	}
	if q := Rotation(Front); q != mgl64.QuatIdent() {
		t.Errorf("Front rotation = %v, want identity", q)
	}
}

func TestQuadSize(t *testing.T) {
	q := meshing.Quad{Width: 3, Height: 5}
	tests := []struct {
		dir  int
		want mgl64.Vec2
	}{
		{0, mgl64.Vec2{3, 5}},
		{1, mgl64.Vec2{5, 3}},
		{2, mgl64.Vec2{3, 5}},
		{3, mgl64.Vec2{3, 5}},
		{4, mgl64.Vec2{5, 3}},
		{5, mgl64.Vec2{3, 5}},
	}
	for _, tt := range tests {
		if got := QuadSize(tt.dir, q); got != tt.want {
			t.Errorf("QuadSize(%d) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	if Top.String() != "Top" || Back.String() != "Back" {
		t.Fatalf("unexpected names %q %q", Top, Back)
	}
	if s := Orientation(9).String(); s != "Orientation(9)" {
		t.Fatalf("out of range String = %q", s)
	}
	for _, o := range []Orientation{-1, 6, 9} {
		if n := o.Normal(); n != ([3]int{}) {
			t.Errorf("%v.Normal() = %v, want zero", o, n)
		}
	}
}

// panelBounds returns the axis-aligned box of a placed panel: a size.X by
// size.Y rectangle in the local XY plane, rotated then translated.
func panelBounds(t mgl64.Vec3, r mgl64.Quat, size mgl64.Vec2) (lo, hi mgl64.Vec3) {
	hx := r.Rotate(mgl64.Vec3{size.X() / 2, 0, 0})
	hy := r.Rotate(mgl64.Vec3{0, size.Y() / 2, 0})
	for i := 0; i < 4; i++ {
		sx, sy := float64(i&1*2-1), float64(i>>1*2-1)
		c := t.Add(hx.Mul(sx)).Add(hy.Mul(sy))
		for k := range c {
			if i == 0 || c[k] < lo[k] {
				lo[k] = c[k]
			}
			if i == 0 || c[k] > hi[k] {
				hi[k] = c[k]
			}
		}
	}
	return lo, hi
}

func vecNear(a, b mgl64.Vec3) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestPlaceQuadCoversItsUnitFaces(t *testing.T) {
	sizes := [][2]int{{1, 1}, {2, 1}, {1, 3}, {3, 2}, {4, 5}}
	for dir, f := range meshing.Faces {
		for _, wh := range sizes {
			q := meshing.Quad{Minimum: [3]int{2, 7, -3}, Width: wh[0], Height: wh[1]}
			tr, r, err := PlaceQuad(dir, q)
			if err != nil {
				t.Fatalf("PlaceQuad(%d): %v", dir, err)
			}
			lo, hi := panelBounds(tr, r, QuadSize(dir, q))

			first := true
			var ulo, uhi mgl64.Vec3
			q.Voxels(f, func(p [3]int) {
				unit := meshing.Quad{Minimum: p, Width: 1, Height: 1}
				ut, ur, _ := PlaceQuad(dir, unit)
				l, h := panelBounds(ut, ur, mgl64.Vec2{1, 1})
				for k := 0; k < 3; k++ {
					if first || l[k] < ulo[k] {
						ulo[k] = l[k]
					}
					if first || h[k] > uhi[k] {
						uhi[k] = h[k]
					}
				}
				first = false
			})
			if !vecNear(lo, ulo) || !vecNear(hi, uhi) {
				t.Errorf("dir %d quad %dx%d: panel %v..%v, unit faces %v..%v", dir, wh[0], wh[1], lo, hi, ulo, uhi)
			}
		}
	}
}

func TestPlaceQuadUnitMatchesPlace(t *testing.T) {
	for dir := range meshing.Faces {
		q := meshing.Quad{Minimum: [3]int{4, 12, 9}, Width: 1, Height: 1}
		got, gotR, err := PlaceQuad(dir, q)
		if err != nil {
			t.Fatalf("PlaceQuad(%d): %v", dir, err)
		}
		o, _ := FromDirection(dir)
		want, wantR := Place(mgl64.Vec3{4, 12, 9}, mgl64.Vec2{1, 1}, o)
		if got != want || gotR != wantR {
			t.Errorf("dir %d: PlaceQuad = %v %v, Place = %v %v", dir, got, gotR, want, wantR)
		}
	}
	if _, _, err := PlaceQuad(6, meshing.Quad{Width: 1, Height: 1}); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("PlaceQuad(6) error = %v, want ErrInvalidDirection", err)
	}
}
