package world

import (
	"sync"

	"github.com/lucashuguet/goatland/internal/profiling"
)

// ChunkStore keeps generated voxel grids by chunk coordinate so a region can
// be meshed again without regenerating it. Safe for concurrent use.
type ChunkStore struct {
	grids    map[ChunkCoord]*VoxelGrid
	mu       sync.RWMutex
	modCount uint64 // increases on any add/remove
}

// NewChunkStore creates an empty chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{grids: make(map[ChunkCoord]*VoxelGrid)}
}

// Get returns the stored grid of coord, or nil.
func (cs *ChunkStore) Get(coord ChunkCoord) *VoxelGrid {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.grids[coord]
}

// Has reports whether coord is stored.
func (cs *ChunkStore) Has(coord ChunkCoord) bool {
	cs.mu.RLock()
	_, ok := cs.grids[coord]
	cs.mu.RUnlock()
	return ok
}

// GetOrGenerate returns the stored grid of coord, generating and storing it
// on a miss. When two goroutines race on the same coord both may generate,
// but the first stored grid wins and is returned to both.
func (cs *ChunkStore) GetOrGenerate(coord ChunkCoord, generate func() (*VoxelGrid, error)) (*VoxelGrid, error) {
	if g := cs.Get(coord); g != nil {
		return g, nil
	}
	g, err := generate()
	if err != nil {
		return nil, err
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	// double-check: another goroutine may have stored it meanwhile
	if existing, ok := cs.grids[coord]; ok {
		return existing, nil
	}
	cs.grids[coord] = g
	cs.modCount++
	return g, nil
}

// Add stores g under its own coordinate unless one is already stored.
func (cs *ChunkStore) Add(g *VoxelGrid) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if _, ok := cs.grids[g.Coord]; !ok {
		cs.grids[g.Coord] = g
		cs.modCount++
	}
}

// Len returns the number of stored grids.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.grids)
}

// ModCount returns the modification count of the store.
func (cs *ChunkStore) ModCount() uint64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.modCount
}

// EvictFarChunks removes grids outside the circle of radius (in chunks)
// around (cx, cz) and returns how many were removed.
func (cs *ChunkStore) EvictFarChunks(cx, cz, radius int) int {
	defer profiling.Track("world.EvictFarChunks")()
	removed := 0
	cs.mu.Lock()
	for coord := range cs.grids {
		dx := coord.X - cx
		dz := coord.Z - cz
		if dx*dx+dz*dz > radius*radius {
			delete(cs.grids, coord)
			cs.modCount++
			removed++
		}
	}
	cs.mu.Unlock()
	return removed
}
