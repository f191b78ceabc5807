package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"mini-mc/internal/profiling"
	"mini-mc/internal/world"
)

// probeRadius is the player's horizontal collision radius. Every upward
// probe starts at head height rather than the feet, so ceilings are
// detected the same way regardless of crouch state.
const (
	probeRadius  = 0.4
	probeEpsilon = 0.01
)

// corners are the four horizontal offsets of the probeRadius square used to
// build the 12-probe cage (4 corners x {bottom, mid, top}).
var corners = [4][2]float32{
	{probeRadius, probeRadius},
	{probeRadius, -probeRadius},
	{-probeRadius, probeRadius},
	{-probeRadius, -probeRadius},
}

// marchIgnoringLiquid behaves like GridMarch but treats WATER/LAVA cells as
// transparent to movement (liquids never block), continuing the march from
// just past the liquid cell.
func marchIgnoringLiquid(origin, dir mgl32.Vec3, src BlockSource) MarchResult {
	const maxBounces = 8
	o := origin
	traveled := float32(0)
	remaining := dir

	for i := 0; i < maxBounces; i++ {
		res := GridMarch(o, remaining, src)
		if !res.Hit {
			res.Distance += traveled
			return res
		}
		t, err := src.TryGet(res.Cell[0], res.Cell[1], res.Cell[2])
		if err != nil || !t.IsLiquid() {
			res.Distance += traveled
			return res
		}
		step := res.Distance + 1e-4
		o = o.Add(remaining.Normalize().Mul(step))
		traveled += step
		leftLen := remaining.Len() - step
		if leftLen <= 0 {
			return MarchResult{Hit: false}
		}
		remaining = remaining.Normalize().Mul(leftLen)
	}
	return MarchResult{Hit: false}
}

// SweepAxis clamps a displacement along a single world axis (dir must be one
// of +/-X, +/-Y, +/-Z, unnormalized) so the player's AABB (anchored at feet
// position pos, with height and the package's fixed probeRadius) does not
// enter solid geometry. It probes from the twelve cage corners (four
// horizontal corners at bottom/mid/top heights; an upward sweep starts all
// of them at head height) in the direction of travel and returns whichever
// allowed distance is smallest.
func SweepAxis(pos mgl32.Vec3, height float32, dir mgl32.Vec3, src BlockSource) float32 {
	defer profiling.Track("physics.SweepAxis")()

	want := dir.Len()
	if want == 0 {
		return 0
	}

	heights := [3]float32{probeEpsilon, height / 2, height - probeEpsilon}
	if dir[1] > 0 {
		head := height - probeEpsilon
		heights = [3]float32{head, head, head}
	}
	allowed := want

	for _, h := range heights {
		for _, c := range corners {
			origin := pos.Add(mgl32.Vec3{c[0], h, c[1]})
			res := marchIgnoringLiquid(origin, dir, src)
			if res.Hit && res.Distance < allowed {
				allowed = res.Distance
				if allowed < 0 {
					allowed = 0
				}
			}
		}
	}
	return allowed
}

// OnFloor reports whether the player's feet rest on solid ground: the block
// cell a hair's breadth below pos, sampled directly rather than via
// GridMarch, since feet resting exactly on a block boundary would otherwise
// have to step a full cell before finding it.
func OnFloor(pos mgl32.Vec3, src BlockSource) bool {
	defer profiling.Track("physics.OnFloor")()

	const probe = 0.05
	for _, c := range corners {
		wx := int(mgl32floor(pos[0] + c[0]))
		wy := int(mgl32floor(pos[1] - probe))
		wz := int(mgl32floor(pos[2] + c[1]))
		t, err := src.TryGet(wx, wy, wz)
		if err == nil && t != world.BlockEmpty && !t.IsLiquid() {
			return true
		}
	}
	return false
}

// InLiquid reports whether the player's eye position (pos + height) is
// submerged in a WATER or LAVA block.
func InLiquid(pos mgl32.Vec3, height float32, src BlockSource) (world.BlockType, bool) {
	eye := pos.Add(mgl32.Vec3{0, height - probeEpsilon, 0})
	t, err := src.TryGet(int(mgl32floor(eye[0])), int(mgl32floor(eye[1])), int(mgl32floor(eye[2])))
	if err != nil || !t.IsLiquid() {
		return world.BlockEmpty, false
	}
	return t, true
}

func mgl32floor(v float32) float32 {
	i := float32(int(v))
	if v < 0 && i != v {
		return i - 1
	}
	return i
}
