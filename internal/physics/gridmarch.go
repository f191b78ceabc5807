// Package physics implements the player's swept-AABB collision and
// grid-march block picking against the voxel grid.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"mini-mc/internal/profiling"
	"mini-mc/internal/world"
)

// BlockSource is the minimal read surface physics needs from the chunk
// store, kept narrow so this package does not depend on Terrain's zone
// machinery.
type BlockSource interface {
	TryGet(x, y, z int) (world.BlockType, error)
}

// MarchResult is the outcome of a single gridMarch call.
type MarchResult struct {
	Hit      bool
	Distance float32
	Cell     [3]int
	Face     world.Direction
}

// GridMarch steps a ray of length |rayDirection| from rayOrigin through the
// voxel grid, stopping at the first non-EMPTY cell. At each step it finds
// the nearest of the three axis-boundary crossings, advances to it, then
// reads the block in the cell just entered (offsetting by the travel
// direction's sign so a ray entering from the negative side lands in the
// correct cell, not the one it came from).
//
// Finding no axis to step along can only happen if rayDirection is the zero
// vector, which callers must never pass.
func GridMarch(rayOrigin mgl32.Vec3, rayDirection mgl32.Vec3, src BlockSource) MarchResult {
	defer profiling.Track("physics.GridMarch")()

	maxLen := rayDirection.Len()
	if maxLen == 0 {
		panic("physics: GridMarch called with a zero-length ray direction")
	}
	dir := rayDirection.Mul(1.0 / maxLen)

	curr := rayOrigin
	currT := float32(0)

	for currT < maxLen {
		bestT := float32(math.Inf(1))
		bestAxis := -1

		for axis := 0; axis < 3; axis++ {
			d := dir[axis]
			if d == 0 {
				continue
			}
			var offset float32
			if d > 0 {
				offset = 1
			}
			boundary := float32(math.Floor(float64(curr[axis]))) + offset
			if offset == 0 && curr[axis] == float32(math.Floor(float64(curr[axis]))) {
				// Exactly on a boundary heading negatively: the next
				// crossing is one full unit behind, not the same cell.
				boundary -= 1
			}
			axisT := (boundary - curr[axis]) / d
			if axisT < 1e-6 {
				axisT = 1e-6 / float32(math.Abs(float64(d)))
			}
			if axisT < bestT {
				bestT = axisT
				bestAxis = axis
			}
		}

		if bestAxis < 0 {
			panic("physics: gridMarch found no axis to step along")
		}

		step := bestT
		if currT+step > maxLen {
			step = maxLen - currT
		}
		curr = curr.Add(dir.Mul(step))
		currT += step

		if currT >= maxLen-1e-5 {
			break
		}

		cellOffset := [3]float32{0, 0, 0}
		if dir[bestAxis] < 0 {
			cellOffset[bestAxis] = -1
		}
		cellX := int(math.Floor(float64(curr[0] + cellOffset[0])))
		cellY := int(math.Floor(float64(curr[1] + cellOffset[1])))
		cellZ := int(math.Floor(float64(curr[2] + cellOffset[2])))

		t, err := src.TryGet(cellX, cellY, cellZ)
		if err != nil {
			continue
		}
		if t != world.BlockEmpty {
			return MarchResult{
				Hit:      true,
				Distance: float32(math.Min(float64(maxLen), float64(currT))),
				Cell:     [3]int{cellX, cellY, cellZ},
				Face:     faceFromAxis(bestAxis, dir[bestAxis]),
			}
		}
	}
	return MarchResult{Hit: false}
}

func faceFromAxis(axis int, dirSign float32) world.Direction {
	switch axis {
	case 0:
		if dirSign > 0 {
			return world.DirXNEG
		}
		return world.DirXPOS
	case 1:
		if dirSign > 0 {
			return world.DirYNEG
		}
		return world.DirYPOS
	default:
		if dirSign > 0 {
			return world.DirZNEG
		}
		return world.DirZPOS
	}
}
