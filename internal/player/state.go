package player

import (
	"mini-mc/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	PlayerEyeHeight = 1.62
	PlayerHeight    = 1.8
	PlayerWidth     = 0.6
)

type GameMode int

const (
	GameModeSurvival GameMode = iota
	GameModeCreative
)

// Player holds all per-frame movement, camera, and interaction state for
// the local player.
type Player struct {
	GameMode     GameMode
	PrevPosition mgl32.Vec3
	Position     mgl32.Vec3
	Velocity     mgl32.Vec3
	OnGround     bool
	IsSprinting  bool
	IsSneaking   bool
	IsFlying     bool
	InLiquid     bool

	PrevHeadBobYaw   float64
	HeadBobYaw       float64
	PrevHeadBobPitch float64
	HeadBobPitch     float64
	CamYaw           float64
	CamPitch         float64
	FirstMouse       bool

	DistanceWalkedModified     float64
	PrevDistanceWalkedModified float64

	PrevCameraYaw   float32
	CameraYaw       float32
	PrevCameraPitch float32
	CameraPitch     float32

	PrevRenderArmYaw   float32
	RenderArmYaw       float32
	PrevRenderArmPitch float32
	RenderArmPitch     float32

	HoveredBlock    [3]int
	HoveredFace     world.Direction
	HasHoveredBlock bool

	IsBreaking    bool
	BreakingBlock [3]int
	BreakProgress float32

	World *world.ChunkStore

	handSwingTimer    float64
	handSwingDuration float64
	HandSwingProgress float32

	breakCooldown float64

	lastForwardPressTime float64

	Health       float32
	MaxHealth    float32
	FallDistance float32

	JumpStartY    float32
	MaxJumpHeight float32
}

func New(store *world.ChunkStore, mode GameMode) *Player {
	return &Player{
		GameMode:             mode,
		Position:             mgl32.Vec3{0, 160, 0},
		FirstMouse:           true,
		World:                store,
		handSwingDuration:    0.25,
		lastForwardPressTime: -1,
		Health:               20.0,
		MaxHealth:            20.0,
	}
}

// GetBounds returns the player's fixed collision width and height.
func (p *Player) GetBounds() (width, height float32) {
	return PlayerWidth, PlayerHeight
}

func (p *Player) GetEyePosition() mgl32.Vec3 {
	eyeOffset := PlayerEyeHeight
	if p.IsSneaking {
		eyeOffset -= 0.08
	}
	return p.Position.Add(mgl32.Vec3{0, float32(eyeOffset), 0})
}

func (p *Player) ApplyDamage(amount float32) {
	if p.GameMode == GameModeCreative {
		return
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}
