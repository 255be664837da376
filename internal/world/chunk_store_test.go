package world

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestChunkStoreGetOrGenerate(t *testing.T) {
	cs := NewChunkStore()
	gen, err := NewGenerator(DefaultOptions(0))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	var calls atomic.Int32
	generate := func(c ChunkCoord) func() (*VoxelGrid, error) {
		return func() (*VoxelGrid, error) {
			calls.Add(1)
			return gen.Generate(c.X, c.Z), nil
		}
	}

	c := ChunkCoord{X: 2, Z: -1}
	first, err := cs.GetOrGenerate(c, generate(c))
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	second, _ := cs.GetOrGenerate(c, generate(c))
	if first != second {
		t.Fatalf("second lookup returned a different grid")
	}
	if calls.Load() != 1 {
		t.Fatalf("generated %d times, want 1", calls.Load())
	}
	if !cs.Has(c) || cs.Len() != 1 || cs.ModCount() != 1 {
		t.Fatalf("store state: has=%v len=%d mod=%d", cs.Has(c), cs.Len(), cs.ModCount())
	}
}

func TestChunkStoreGenerateError(t *testing.T) {
	cs := NewChunkStore()
	errBoom := errors.New("boom")
	if _, err := cs.GetOrGenerate(ChunkCoord{}, func() (*VoxelGrid, error) { return nil, errBoom }); !errors.Is(err, errBoom) {
		t.Fatalf("got %v, want errBoom", err)
	}
	if cs.Len() != 0 {
		t.Fatalf("failed generation was stored")
	}
}

func TestChunkStoreConcurrent(t *testing.T) {
	cs := NewChunkStore()
	c := ChunkCoord{X: 1}
	var wg sync.WaitGroup
	grids := make([]*VoxelGrid, 8)
	for i := range grids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			grids[i], _ = cs.GetOrGenerate(c, func() (*VoxelGrid, error) {
				return NewVoxelGrid(c), nil
			})
		}()
	}
	wg.Wait()
	for _, g := range grids {
		if g != grids[0] {
			t.Fatalf("racing lookups returned different grids")
		}
	}
}

func TestChunkStoreEvictFarChunks(t *testing.T) {
	cs := NewChunkStore()
	for x := -3; x <= 3; x++ {
		cs.Add(NewVoxelGrid(ChunkCoord{X: x}))
	}
	cs.Add(NewVoxelGrid(ChunkCoord{X: 0})) // duplicate ignored
	if cs.Len() != 7 {
		t.Fatalf("len = %d, want 7", cs.Len())
	}
	if removed := cs.EvictFarChunks(0, 0, 2); removed != 2 {
		t.Fatalf("removed %d, want 2", removed)
	}
	if cs.Has(ChunkCoord{X: 3}) || !cs.Has(ChunkCoord{X: -2}) {
		t.Fatalf("wrong chunks evicted")
	}
	if cs.Get(ChunkCoord{X: 9}) != nil {
		t.Fatalf("Get of a missing chunk returned a grid")
	}
}
