package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"mini-mc/internal/world"
)

func platform(t *testing.T, floorY int) *world.ChunkStore {
	t.Helper()
	s := world.NewChunkStore()
	c := s.InstantiateChunk(0, 0)
	for x := 0; x < world.ChunkSizeX; x++ {
		for z := 0; z < world.ChunkSizeZ; z++ {
			c.SetLocalBlock(x, floorY, z, world.BlockStone)
		}
	}
	c.MarkBlockDataReady()
	return s
}

func TestSweepAxisStopsAtFloor(t *testing.T) {
	s := platform(t, 10)
	pos := mgl32.Vec3{8, 12, 8}
	allowed := SweepAxis(pos, 1.8, mgl32.Vec3{0, -5, 0}, s)
	if allowed > 1.02 {
		t.Errorf("allowed fall distance = %v, want ~1.01 (feet stop at y=11)", allowed)
	}
}

func TestSweepAxisUnobstructed(t *testing.T) {
	s := world.NewChunkStore()
	c := s.InstantiateChunk(0, 0)
	c.MarkBlockDataReady()
	allowed := SweepAxis(mgl32.Vec3{8, 50, 8}, 1.8, mgl32.Vec3{0, -10, 0}, s)
	if allowed < 9.999 {
		t.Errorf("allowed = %v, want ~10 in open air", allowed)
	}
}

func TestSweepAxisIgnoresLiquid(t *testing.T) {
	s := world.NewChunkStore()
	c := s.InstantiateChunk(0, 0)
	for x := 0; x < world.ChunkSizeX; x++ {
		for z := 0; z < world.ChunkSizeZ; z++ {
			c.SetLocalBlock(x, 10, z, world.BlockWater)
			c.SetLocalBlock(x, 9, z, world.BlockStone)
		}
	}
	c.MarkBlockDataReady()
	allowed := SweepAxis(mgl32.Vec3{8, 15, 8}, 1.8, mgl32.Vec3{0, -10, 0}, s)
	// Water at y=10 should not stop the fall; stone at y=9 should, one
	// block lower than in the no-liquid case.
	if allowed > 5.02 {
		t.Errorf("allowed = %v, want ~5.01 (feet stop at y=10 on top of stone)", allowed)
	}
}

func TestOnFloorDetection(t *testing.T) {
	s := platform(t, 10)
	if !OnFloor(mgl32.Vec3{8, 11, 8}, s) {
		t.Errorf("expected OnFloor true standing on y=11 above a y=10 floor")
	}
	if OnFloor(mgl32.Vec3{8, 20, 8}, s) {
		t.Errorf("expected OnFloor false high above the floor")
	}
}

func TestInLiquidDetection(t *testing.T) {
	s := world.NewChunkStore()
	c := s.InstantiateChunk(0, 0)
	c.SetLocalBlock(8, 10, 8, world.BlockWater)
	c.MarkBlockDataReady()

	if _, ok := InLiquid(mgl32.Vec3{8, 8.3, 8}, 1.8, s); !ok {
		t.Errorf("expected eye position at y=10.1 to be in liquid")
	}
	if _, ok := InLiquid(mgl32.Vec3{8, 0, 8}, 1.8, s); ok {
		t.Errorf("expected eye position at y=1.79 to not be in liquid")
	}
}
