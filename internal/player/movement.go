package player

import (
	"math"
	"mini-mc/internal/input"
	"mini-mc/internal/physics"
	"mini-mc/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Movement constants are expressed per tick of a 60 Hz timer; TickRate
// converts a frame's elapsed dt into a tick count so the same multiplier
// applies regardless of actual frame pacing.
const (
	TickRate = 60.0

	HorizontalFriction = 0.95
	GravityPerTick     = 0.5
	LiquidScale        = 2.0 / 3.0 // applied to accel, friction and gravity while swimming

	WalkAccel        = 28.0 // blocks/s^2
	SprintMultiplier = 1.3
	SneakMultiplier  = 0.3
	FlyAccel         = 28.0

	FloorJumpImpulse   = 20.0
	LiquidJumpVelocity = 4.0 // gentle paddle, well under the floor jump
)

func (p *Player) UpdatePosition(dt float64, im *input.InputManager) {
	defer profiling.Track("player.Update.Position")()

	if p.handSwingTimer > 0 {
		p.handSwingTimer -= dt
	}
	p.HandSwingProgress = float32(p.handSwingTimer / p.handSwingDuration)
	if p.HandSwingProgress < 0 {
		p.HandSwingProgress = 0
	}
	if p.breakCooldown > 0 {
		p.breakCooldown -= dt
	}

	if p.GameMode == GameModeCreative {
		if im.JustPressed(input.ActionToggleFly) {
			p.IsFlying = !p.IsFlying
			if p.IsFlying {
				p.Velocity[1] = 0
			}
		}
	} else {
		p.IsFlying = false
	}

	if p.lastForwardPressTime >= 0 {
		p.lastForwardPressTime += dt
		if p.lastForwardPressTime > 0.5 {
			p.lastForwardPressTime = -1
		}
	}

	forwardJustPressed := im.JustPressed(input.ActionMoveForward)
	if im.IsActive(input.ActionSprint) {
		p.IsSprinting = true
	}
	if forwardJustPressed {
		if p.lastForwardPressTime >= 0 && p.lastForwardPressTime < 0.3 {
			p.IsSprinting = true
			p.lastForwardPressTime = -1
		} else {
			p.lastForwardPressTime = 0
		}
	}
	if im.IsActive(input.ActionSneak) {
		p.IsSneaking = true
		p.IsSprinting = false
	} else {
		p.IsSneaking = false
	}

	p.PrevPosition = p.Position
	p.PrevDistanceWalkedModified = p.DistanceWalkedModified

	forward := float32(0)
	strafe := float32(0)
	if im.IsActive(input.ActionMoveForward) {
		forward += 1
	}
	if im.IsActive(input.ActionMoveBackward) {
		forward -= 1
	}
	if im.IsActive(input.ActionMoveLeft) {
		strafe -= 1
	}
	if im.IsActive(input.ActionMoveRight) {
		strafe += 1
	}
	if forward <= 0 {
		p.IsSprinting = false
	}

	yaw := float32(p.CamYaw)
	yawRad := float64(mgl32.DegToRad(yaw))
	frontX := float32(math.Cos(yawRad))
	frontZ := float32(math.Sin(yawRad))
	strafeX := float32(math.Cos(yawRad + math.Pi/2))
	strafeZ := float32(math.Sin(yawRad + math.Pi/2))

	_, inLiquid := physics.InLiquid(p.Position, PlayerHeight, p.World)
	p.InLiquid = inLiquid

	ticks := float32(dt * TickRate)

	// Camera-aligned acceleration from input.
	accelMag := float32(WalkAccel)
	if p.IsFlying {
		accelMag = FlyAccel
	} else if p.IsSprinting {
		accelMag *= SprintMultiplier
	} else if p.IsSneaking {
		accelMag *= SneakMultiplier
	}
	if inLiquid {
		accelMag *= LiquidScale
	}

	dist := strafe*strafe + forward*forward
	if dist > 0.0001 {
		dist = float32(math.Sqrt(float64(dist)))
		ax := (strafe*strafeX + forward*frontX) / dist * accelMag
		az := (strafe*strafeZ + forward*frontZ) / dist * accelMag
		p.Velocity[0] += ax * float32(dt)
		p.Velocity[2] += az * float32(dt)
	}

	switch {
	case p.IsFlying:
		if im.IsActive(input.ActionFlyUp) {
			p.Velocity[1] += FlyAccel * float32(dt)
		} else if im.IsActive(input.ActionFlyDown) {
			p.Velocity[1] -= FlyAccel * float32(dt)
		}
	case inLiquid:
		if im.IsActive(input.ActionJump) {
			p.Velocity[1] = LiquidJumpVelocity
		} else {
			p.Velocity[1] -= GravityPerTick * LiquidScale * ticks
		}
	default:
		if im.IsActive(input.ActionJump) && p.OnGround {
			p.Velocity[1] = FloorJumpImpulse
			p.OnGround = false
			p.JumpStartY = p.Position[1]
			p.MaxJumpHeight = 0
		} else {
			p.Velocity[1] -= GravityPerTick * ticks
		}
	}

	// Friction 0.95x per tick, scaled down in liquid.
	friction := HorizontalFriction
	if inLiquid {
		friction *= LiquidScale
	}
	frictionFactor := float32(math.Pow(friction, float64(ticks)))
	p.Velocity[0] *= frictionFactor
	p.Velocity[2] *= frictionFactor

	if math.Abs(float64(p.Velocity[0])) < 0.005 {
		p.Velocity[0] = 0
	}
	if math.Abs(float64(p.Velocity[2])) < 0.005 {
		p.Velocity[2] = 0
	}

	p.resolveMotion(dt)

	positionChange := p.Position.Sub(p.PrevPosition)
	distanceMoved := math.Sqrt(float64(positionChange.X()*positionChange.X() + positionChange.Z()*positionChange.Z()))
	p.DistanceWalkedModified += distanceMoved * 0.6

	dy := p.Position.Y() - p.PrevPosition[1]
	p.UpdateFallState(float64(dy), p.OnGround)

	if !p.OnGround {
		currentHeight := p.Position[1] - p.JumpStartY
		if currentHeight > p.MaxJumpHeight {
			p.MaxJumpHeight = currentHeight
		}
	}
}

// resolveMotion applies the tick's displacement one axis at a time (Y, then
// X, then Z), clamped against solid geometry via physics.SweepAxis; Y first
// avoids stepping up walls on sloped ground. Integration is semi-implicit:
// acceleration is already folded into velocity before this runs, so the
// displacement is just v*dT.
func (p *Player) resolveMotion(dt float64) {
	_, height := p.GetBounds()
	want := p.Velocity.Mul(float32(dt))

	moveY := mgl32.Vec3{0, want[1], 0}
	allowedY := physics.SweepAxis(p.Position, height, moveY, p.World)
	p.Position[1] += sameSign(allowedY, want[1])
	if allowedY+1e-4 < float32(math.Abs(float64(want[1]))) {
		if want[1] < 0 {
			p.OnGround = true
		}
		p.Velocity[1] = 0
	} else if want[1] < 0 {
		p.OnGround = false
	}

	moveX := mgl32.Vec3{want[0], 0, 0}
	allowedX := physics.SweepAxis(p.Position, height, moveX, p.World)
	p.Position[0] += sameSign(allowedX, want[0])
	if allowedX+1e-4 < float32(math.Abs(float64(want[0]))) {
		p.Velocity[0] = 0
		p.IsSprinting = false
	}

	moveZ := mgl32.Vec3{0, 0, want[2]}
	allowedZ := physics.SweepAxis(p.Position, height, moveZ, p.World)
	p.Position[2] += sameSign(allowedZ, want[2])
	if allowedZ+1e-4 < float32(math.Abs(float64(want[2]))) {
		p.Velocity[2] = 0
		p.IsSprinting = false
	}

	if !p.IsFlying && !p.OnGround {
		p.OnGround = physics.OnFloor(p.Position, p.World)
	}
}

// sameSign returns a magnitude with the sign of the requested displacement.
func sameSign(magnitude, requested float32) float32 {
	if requested < 0 {
		return -magnitude
	}
	return magnitude
}

func (p *Player) UpdateFallState(dy float64, onGround bool) {
	if p.IsFlying || p.InLiquid {
		p.FallDistance = 0
		return
	}

	if onGround {
		if p.FallDistance > 0 {
			p.Fall(p.FallDistance, 1.0)
			p.FallDistance = 0
		}
	} else if dy < 0 {
		p.FallDistance -= float32(dy)
	}
}

// Fall applies fall damage: distances under three blocks are free,
// everything past that rounds up to whole health points (half-hearts) of damage.
func (p *Player) Fall(distance float32, damageMultiplier float32) {
	mcDistance := float64(distance)*0.82 + 0.2
	damage := int(math.Ceil((mcDistance - 3.0) * float64(damageMultiplier)))
	if damage > 0 {
		p.ApplyDamage(float32(damage))
	}
}
