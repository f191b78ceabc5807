package player

import (
	"mini-mc/internal/physics"
	"mini-mc/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// placementBlock is what RMB places against a hovered face. The palette is
// intentionally fixed rather than inventory-driven.
const placementBlock = world.BlockSnow

func (p *Player) HandleMouseButton(button glfw.MouseButton, action glfw.Action) {
	if action != glfw.Press || !p.HasHoveredBlock {
		return
	}
	if button == glfw.MouseButtonRight {
		p.placeBlock()
	}
}

func (p *Player) placeBlock() {
	eye := p.GetEyePosition()
	front := p.GetFrontVector()
	res := physics.Pick(eye, front, p.World)
	if !res.Hit {
		return
	}

	target := res.Cell
	switch res.Face {
	case world.DirXPOS:
		target[0]++
	case world.DirXNEG:
		target[0]--
	case world.DirYPOS:
		target[1]++
	case world.DirYNEG:
		target[1]--
	case world.DirZPOS:
		target[2]++
	case world.DirZNEG:
		target[2]--
	}

	if target[1] < 0 || target[1] > 255 {
		return
	}
	if !p.World.IsAir(target[0], target[1], target[2]) {
		return
	}

	width, height := p.GetBounds()
	placingUnderFeet := float32(target[1]) <= p.Position[1]+0.001
	if !placingUnderFeet && blockIntersectsPlayer(p.Position, width, height, target) {
		return
	}

	p.World.Set(target[0], target[1], target[2], placementBlock)
	p.TriggerHandSwing()
}

func blockIntersectsPlayer(pos mgl32.Vec3, width, height float32, cell [3]int) bool {
	half := width / 2
	minX, maxX := pos[0]-half, pos[0]+half
	minY, maxY := pos[1], pos[1]+height
	minZ, maxZ := pos[2]-half, pos[2]+half

	bx, by, bz := float32(cell[0]), float32(cell[1]), float32(cell[2])
	return maxX > bx && minX < bx+1 && maxY > by && minY < by+1 && maxZ > bz && minZ < bz+1
}

func (p *Player) UpdateHoveredBlock() {
	front := p.GetFrontVector()
	eye := p.GetEyePosition()
	res := physics.Pick(eye, front, p.World)

	p.HasHoveredBlock = res.Hit
	if res.Hit {
		p.HoveredBlock = res.Cell
		p.HoveredFace = res.Face
	}
}
