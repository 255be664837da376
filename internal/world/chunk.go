package world

const (
	// ChunkWidth is the playable width of a chunk along X and Z.
	ChunkWidth = 16

	// Grid dimensions. X and Z carry one cell of padding on each side so
	// faces on the chunk border see the neighbouring columns; Y carries one
	// extra cell at each end.
	ChunkSizeX = ChunkWidth + 2
	ChunkSizeY = 130
	ChunkSizeZ = ChunkWidth + 2

	ChunkVolume = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

// ChunkCoord identifies a chunk in the chunk grid.
type ChunkCoord struct {
	X, Z int
}

// Origin returns the world-space position of the chunk's grid cell (0,0,0).
func (c ChunkCoord) Origin() (x, z int) {
	return c.X * ChunkWidth, c.Z * ChunkWidth
}

// Linearize maps grid coordinates to a flat index, X varying fastest.
func Linearize(x, y, z int) int {
	return x + ChunkSizeX*(y+ChunkSizeY*z)
}

// Delinearize is the inverse of Linearize.
func Delinearize(i int) (x, y, z int) {
	x = i % ChunkSizeX
	i /= ChunkSizeX
	y = i % ChunkSizeY
	z = i / ChunkSizeY
	return x, y, z
}

// InBounds reports whether (x, y, z) lies inside the grid.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

// VoxelGrid is the solid/empty occupancy of one chunk, padding included.
type VoxelGrid struct {
	Coord  ChunkCoord
	voxels []bool
}

// NewVoxelGrid returns an all-empty grid.
func NewVoxelGrid(coord ChunkCoord) *VoxelGrid {
	return &VoxelGrid{Coord: coord, voxels: make([]bool, ChunkVolume)}
}

// IsSolid reports the voxel at (x, y, z). Cells outside the grid are empty.
func (g *VoxelGrid) IsSolid(x, y, z int) bool {
	if !InBounds(x, y, z) {
		return false
	}
	return g.voxels[Linearize(x, y, z)]
}

// Set marks the voxel at (x, y, z). Writes outside the grid are ignored.
func (g *VoxelGrid) Set(x, y, z int, solid bool) {
	if !InBounds(x, y, z) {
		return
	}
	g.voxels[Linearize(x, y, z)] = solid
}

// SolidCount returns the number of solid voxels.
func (g *VoxelGrid) SolidCount() int {
	n := 0
	for _, v := range g.voxels {
		if v {
			n++
		}
	}
	return n
}

// Equal reports whether two grids have identical occupancy.
func (g *VoxelGrid) Equal(o *VoxelGrid) bool {
	if len(g.voxels) != len(o.voxels) {
		return false
	}
	for i := range g.voxels {
		if g.voxels[i] != o.voxels[i] {
			return false
		}
	}
	return true
}
