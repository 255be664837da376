package world

import "testing"

func TestLinearizeRoundTrip(t *testing.T) {
	seen := make([]bool, ChunkVolume)
	for z := 0; z < ChunkSizeZ; z++ {
		for y := 0; y < ChunkSizeY; y++ {
			for x := 0; x < ChunkSizeX; x++ {
				i := Linearize(x, y, z)
				if i < 0 || i >= ChunkVolume {
					t.Fatalf("Linearize(%d,%d,%d) = %d out of range", x, y, z, i)
				}
				if seen[i] {
					t.Fatalf("Linearize(%d,%d,%d) = %d collides", x, y, z, i)
				}
				seen[i] = true
				if gx, gy, gz := Delinearize(i); gx != x || gy != y || gz != z {
					t.Fatalf("Delinearize(%d) = (%d,%d,%d), want (%d,%d,%d)", i, gx, gy, gz, x, y, z)
				}
			}
		}
	}
}

func TestGridOutOfBoundsIsEmpty(t *testing.T) {
	g := NewVoxelGrid(ChunkCoord{})
	NewFlatGenerator(ChunkSizeY).Populate(g)
	for _, p := range [][3]int{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}, {ChunkSizeX, 0, 0}, {0, ChunkSizeY, 0}, {0, 0, ChunkSizeZ}} {
		if g.IsSolid(p[0], p[1], p[2]) {
			t.Errorf("IsSolid%v = true outside the grid", p)
		}
		g.Set(p[0], p[1], p[2], true) // ignored
	}
	if got := g.SolidCount(); got != ChunkVolume {
		t.Fatalf("solid count = %d, want %d", got, ChunkVolume)
	}
}

func TestChunkOrigin(t *testing.T) {
	x, z := ChunkCoord{X: -2, Z: 3}.Origin()
	if x != -32 || z != 48 {
		t.Fatalf("Origin = (%d,%d), want (-32,48)", x, z)
	}
}
