package meshing

import (
	"testing"

	"mini-mc/internal/world"
)

func soloChunk(t *testing.T) *world.Chunk {
	t.Helper()
	s := world.NewChunkStore()
	c := s.InstantiateChunk(0, 0)
	c.SetLOD(0) // tests reason about single-block cells; force 1x1x1 aggregation
	c.MarkBlockDataReady()
	return c
}

// Two adjacent DIRT cells at LOD 0 must not mesh the
// shared face between them -- only the outward-facing boundary of the
// cluster is emitted.
func TestBuildMeshCullsSharedInteriorFace(t *testing.T) {
	c := soloChunk(t)
	c.SetLocalBlock(5, 50, 5, world.BlockDirt)
	c.SetLocalBlock(6, 50, 5, world.BlockDirt)

	res := BuildMesh(c)

	// A lone DIRT cube has 6 faces -> 12 triangles -> 6*6=36 indices. Two
	// adjacent DIRT cubes sharing one face expose 10 faces total (6+6-2,
	// since each loses the shared face) -> 20 triangles -> 60 indices.
	wantIndices := 10 * 6
	if len(res.OpaqueIndices) != wantIndices {
		t.Fatalf("opaque indices = %d, want %d (two cubes, shared face culled both sides)", len(res.OpaqueIndices), wantIndices)
	}
	if len(res.OpaqueVertices) != 10*4 {
		t.Fatalf("opaque vertices = %d, want %d", len(res.OpaqueVertices), 10*4)
	}
	if len(res.TransparentIndices) != 0 || len(res.TransparentVertices) != 0 {
		t.Fatalf("expected no transparent geometry for DIRT cells")
	}
}

func TestBuildMeshEmitsNothingForEmptyChunk(t *testing.T) {
	c := soloChunk(t)
	res := BuildMesh(c)
	if len(res.OpaqueVertices) != 0 || len(res.TransparentVertices) != 0 {
		t.Fatalf("expected no geometry for an all-EMPTY chunk")
	}
}

// A lone cube at the edge of a chunk with no neighbor linked renders all six
// faces: where no neighbor chunk exists, every face is emitted.
func TestBuildMeshEmitsAllFacesAtUnlinkedBoundary(t *testing.T) {
	c := soloChunk(t)
	c.SetLocalBlock(0, 50, 5, world.BlockStone)
	res := BuildMesh(c)
	if len(res.OpaqueIndices) != 6*6 {
		t.Fatalf("opaque indices = %d, want %d (all 6 faces)", len(res.OpaqueIndices), 6*6)
	}
}

// LAVA is opaque for culling but animated, so it belongs in the opaque
// arrays with animated=1 on every vertex.
func TestBuildMeshLavaIsOpaqueButAnimated(t *testing.T) {
	c := soloChunk(t)
	c.SetLocalBlock(5, 50, 5, world.BlockLava)
	res := BuildMesh(c)
	if len(res.OpaqueVertices) == 0 {
		t.Fatalf("expected LAVA geometry in the opaque buffer")
	}
	if len(res.TransparentVertices) != 0 {
		t.Fatalf("LAVA must not appear in the transparent buffer")
	}
	for _, v := range res.OpaqueVertices {
		if v.Animated != 1 {
			t.Errorf("LAVA vertex Animated = %v, want 1", v.Animated)
		}
	}
}

// WATER and ICE are transparent sources; a lone WATER cube with no opaque
// neighbor still emits its outward faces into the transparent buffer.
func TestBuildMeshWaterGoesToTransparentBuffer(t *testing.T) {
	c := soloChunk(t)
	c.SetLocalBlock(5, 50, 5, world.BlockWater)
	res := BuildMesh(c)
	if len(res.TransparentVertices) == 0 {
		t.Fatalf("expected WATER geometry in the transparent buffer")
	}
	if len(res.OpaqueVertices) != 0 {
		t.Fatalf("WATER must not appear in the opaque buffer")
	}
}

// A LAVA cell next to a WATER cell: culling classifies LAVA like a
// transparent source (any non-EMPTY neighbor hides the shared face), yet
// its geometry still lands in the opaque buffers. Each cube loses exactly
// the one face it shares with the other.
func TestBuildMeshLavaNextToWaterCullsSharedFaceIntoOpaqueBuffer(t *testing.T) {
	c := soloChunk(t)
	c.SetLocalBlock(5, 50, 5, world.BlockLava)
	c.SetLocalBlock(6, 50, 5, world.BlockWater)
	res := BuildMesh(c)

	// LAVA emits 5 faces (its XPOS face against the water is culled), all
	// opaque and animated.
	if got, want := len(res.OpaqueIndices), 5*6; got != want {
		t.Fatalf("opaque indices = %d, want %d (LAVA face against water culled)", got, want)
	}
	for _, v := range res.OpaqueVertices {
		if v.Animated != 1 {
			t.Errorf("LAVA vertex Animated = %v, want 1", v.Animated)
		}
	}
	// WATER likewise loses only the face it shares with the lava.
	if got, want := len(res.TransparentIndices), 5*6; got != want {
		t.Fatalf("transparent indices = %d, want %d (WATER face against lava culled)", got, want)
	}
}
