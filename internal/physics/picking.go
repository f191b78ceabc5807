package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"mini-mc/internal/world"
)

// MaxReachDistance is the farthest a player can target a block for
// breaking or placing.
const MaxReachDistance = 3.0

// PickResult describes what a reach-distance grid march found.
type PickResult struct {
	Hit      bool
	Cell     [3]int
	Face     world.Direction
	Distance float32
}

// Pick marches a ray of length MaxReachDistance from eye along look,
// returning the first solid block struck and the face the ray entered
// through (so callers can place against that face).
func Pick(eye, look mgl32.Vec3, src BlockSource) PickResult {
	dir := look.Normalize().Mul(MaxReachDistance)
	res := GridMarch(eye, dir, src)
	if !res.Hit {
		return PickResult{}
	}
	return PickResult{Hit: true, Cell: res.Cell, Face: res.Face, Distance: res.Distance}
}
