package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"mini-mc/internal/world"
)

func flatStore(t *testing.T, surfaceY int) *world.ChunkStore {
	t.Helper()
	s := world.NewChunkStore()
	c := s.InstantiateChunk(0, 0)
	for x := 0; x < world.ChunkSizeX; x++ {
		for z := 0; z < world.ChunkSizeZ; z++ {
			c.SetLocalBlock(x, surfaceY, z, world.BlockStone)
		}
	}
	c.MarkBlockDataReady()
	return s
}

func TestGridMarchHitsFloor(t *testing.T) {
	s := flatStore(t, 10)
	res := GridMarch(mgl32.Vec3{8, 15, 8}, mgl32.Vec3{0, -10, 0}, s)
	if !res.Hit {
		t.Fatalf("expected a hit")
	}
	if res.Cell[1] != 10 {
		t.Errorf("hit cell Y = %d, want 10", res.Cell[1])
	}
	if res.Face != world.DirYPOS {
		t.Errorf("face = %v, want DirYPOS (entered through the top face)", res.Face)
	}
}

func TestGridMarchMissesShortRay(t *testing.T) {
	s := flatStore(t, 10)
	res := GridMarch(mgl32.Vec3{8, 15, 8}, mgl32.Vec3{0, -4, 0}, s)
	if res.Hit {
		t.Fatalf("ray shorter than the gap should miss, got hit at %v", res.Cell)
	}
}

func TestGridMarchHorizontalEntryFace(t *testing.T) {
	s := world.NewChunkStore()
	c := s.InstantiateChunk(0, 0)
	c.SetLocalBlock(5, 50, 5, world.BlockStone)
	c.MarkBlockDataReady()

	res := GridMarch(mgl32.Vec3{2, 50.5, 5.5}, mgl32.Vec3{10, 0, 0}, s)
	if !res.Hit {
		t.Fatalf("expected a hit")
	}
	if res.Cell != [3]int{5, 50, 5} {
		t.Errorf("hit cell = %v, want {5,50,5}", res.Cell)
	}
	if res.Face != world.DirXNEG {
		t.Errorf("face = %v, want DirXNEG (entered from -X)", res.Face)
	}
}

func TestGridMarchZeroLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic on a zero-length ray")
		}
	}()
	s := flatStore(t, 10)
	GridMarch(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 0}, s)
}
