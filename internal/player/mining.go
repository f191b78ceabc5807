package player

import (
	"mini-mc/internal/registry"
	"mini-mc/internal/world"
)

func (p *Player) ResetMining() {
	p.IsBreaking = false
	p.BreakProgress = 0
}

// UpdateMining deletes the hovered block on left-click unless it is
// unbreakable, paced by each block's registered hardness in survival mode
// and instantaneous (with a short cooldown) in creative.
func (p *Player) UpdateMining(dt float64, justPressed bool) {
	if !p.HasHoveredBlock {
		p.ResetMining()
		return
	}

	if p.GameMode == GameModeCreative {
		if justPressed || p.breakCooldown <= 0 {
			p.BreakingBlock = p.HoveredBlock
			p.IsBreaking = true
			p.TriggerHandSwing()
			p.BreakBlock()
			if !justPressed {
				p.breakCooldown = 0.15
			}
		}
		return
	}

	if p.IsBreaking {
		if p.BreakingBlock != p.HoveredBlock {
			p.BreakProgress = 0
			p.BreakingBlock = p.HoveredBlock
		}
	} else {
		p.IsBreaking = true
		p.BreakingBlock = p.HoveredBlock
		p.BreakProgress = 0
	}

	if p.handSwingTimer <= 0 {
		p.TriggerHandSwing()
	}

	blockType, err := p.World.TryGet(p.BreakingBlock[0], p.BreakingBlock[1], p.BreakingBlock[2])
	if err != nil || blockType == world.BlockEmpty {
		p.ResetMining()
		return
	}

	if !registry.Breakable(blockType) {
		p.BreakProgress = 0
		return
	}

	hardness := registry.Hardness(blockType)
	if hardness <= 0 {
		hardness = 1.0
	}

	breakSpeed := float32(1.0)
	if p.IsFlying {
		breakSpeed *= 5.0
	}

	p.BreakProgress += float32(dt) * breakSpeed / hardness
	if p.BreakProgress >= 1.0 {
		p.BreakBlock()
	}
}

func (p *Player) BreakBlock() {
	x, y, z := p.BreakingBlock[0], p.BreakingBlock[1], p.BreakingBlock[2]
	blockType, err := p.World.TryGet(x, y, z)
	if err != nil || blockType == world.BlockEmpty || !registry.Breakable(blockType) {
		return
	}

	p.World.Set(x, y, z, world.BlockEmpty)
	p.ResetMining()
}
