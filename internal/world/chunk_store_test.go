package world

import "testing"

// Neighbor links are symmetric regardless
// of instantiation order.
func TestInstantiateChunkLinksNeighborsSymmetrically(t *testing.T) {
	s := NewChunkStore()
	a := s.InstantiateChunk(0, 0)
	b := s.InstantiateChunk(1, 0)

	if a.Neighbor(DirXPOS) != b {
		t.Fatalf("chunk(0,0).neighbor[XPOS] = %v, want chunk(1,0)", a.Neighbor(DirXPOS))
	}
	if b.Neighbor(DirXNEG) != a {
		t.Fatalf("chunk(1,0).neighbor[XNEG] = %v, want chunk(0,0)", b.Neighbor(DirXNEG))
	}

	c := s.InstantiateChunk(0, 1)
	if a.Neighbor(DirZPOS) != c {
		t.Errorf("chunk(0,0).neighbor[ZPOS] = %v, want chunk(0,1)", a.Neighbor(DirZPOS))
	}
	if c.Neighbor(DirZNEG) != a {
		t.Errorf("chunk(0,1).neighbor[ZNEG] = %v, want chunk(0,0)", c.Neighbor(DirZNEG))
	}
}

// A chunk at minX=-16 is keyed and retrieved the same way
// as one at minX=0 -- negative chunk-grid coordinates round-trip.
func TestChunkKeyRoundTripsNegativeCoordinates(t *testing.T) {
	s := NewChunkStore()
	neg := s.InstantiateChunk(-1, 0)
	if neg.MinX != -16 {
		t.Fatalf("chunk(-1,0).MinX = %d, want -16", neg.MinX)
	}
	if got := s.GetChunkByIndex(-1, 0); got != neg {
		t.Fatalf("GetChunkByIndex(-1,0) did not return the instantiated chunk")
	}
	if got := s.GetChunk(-16, 0); got != neg {
		t.Fatalf("GetChunk(-16,0) did not return the instantiated chunk")
	}
}

// A write to a chunk's boundary slab marks the adjacent
// neighbor dirty.
func TestSetLocalBlockPropagatesNeedsUpdateToNeighbor(t *testing.T) {
	s := NewChunkStore()
	a := s.InstantiateChunk(0, 0)
	b := s.InstantiateChunk(1, 0)
	a.ClaimMeshWork()
	b.ClaimMeshWork()
	if a.NeedsUpdate() || b.NeedsUpdate() {
		t.Fatalf("expected both chunks clean after claiming mesh work")
	}

	a.SetLocalBlock(ChunkSizeX-1, 10, 5, BlockStone)

	if !a.NeedsUpdate() {
		t.Errorf("chunk written to should be dirty")
	}
	if !b.NeedsUpdate() {
		t.Errorf("XPOS neighbor across the written max-X slab should be dirty")
	}
}

func TestSetLocalBlockInteriorDoesNotDirtyNeighbor(t *testing.T) {
	s := NewChunkStore()
	a := s.InstantiateChunk(0, 0)
	b := s.InstantiateChunk(1, 0)
	a.ClaimMeshWork()
	b.ClaimMeshWork()

	a.SetLocalBlock(8, 10, 8, BlockStone)

	if !a.NeedsUpdate() {
		t.Errorf("written chunk should be dirty")
	}
	if b.NeedsUpdate() {
		t.Errorf("neighbor should stay clean for an interior write")
	}
}

func TestSetLODDirtiesSelfAndNeighbors(t *testing.T) {
	s := NewChunkStore()
	a := s.InstantiateChunk(0, 0)
	b := s.InstantiateChunk(1, 0)
	a.ClaimMeshWork()
	b.ClaimMeshWork()

	a.SetLOD(1)

	if !a.NeedsUpdate() {
		t.Errorf("LOD change should dirty self")
	}
	if !b.NeedsUpdate() {
		t.Errorf("LOD change should dirty linked neighbors (seam geometry changes)")
	}
}

// Reads before hasBlockData is set return STONE so the player cannot
// fall through unloaded ground.
func TestGetReturnsStoneBeforeBlockDataReady(t *testing.T) {
	s := NewChunkStore()
	s.InstantiateChunk(0, 0)
	if got := s.Get(5, 50, 5); got != BlockStone {
		t.Fatalf("Get on ungenerated chunk = %v, want STONE", got)
	}
}

func TestGetPanicsWithNoChunkPresent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Get to panic when no chunk is present")
		}
	}()
	s := NewChunkStore()
	s.Get(500, 50, 500)
}
