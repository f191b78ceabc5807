// Package registry holds the static, non-rendering properties of each
// block type (name and break hardness) used by mining. The atlas coordinates themselves live with the mesher
// (internal/meshing), since only meshing consumes them.
package registry

import "mini-mc/internal/world"

// BlockDefinition describes a block type's gameplay properties.
type BlockDefinition struct {
	ID       world.BlockType
	Name     string
	Hardness float32 // seconds to break; negative means unbreakable
}

var Blocks = make(map[world.BlockType]*BlockDefinition)
var BlockNames = make(map[string]world.BlockType)

func RegisterBlock(def *BlockDefinition) {
	Blocks[def.ID] = def
	BlockNames[def.Name] = def.ID
}

func InitRegistry() {
	RegisterBlock(&BlockDefinition{ID: world.BlockEmpty, Name: "empty", Hardness: 0})
	RegisterBlock(&BlockDefinition{ID: world.BlockGrass, Name: "grass", Hardness: 0.6})
	RegisterBlock(&BlockDefinition{ID: world.BlockDirt, Name: "dirt", Hardness: 0.5})
	RegisterBlock(&BlockDefinition{ID: world.BlockStone, Name: "stone", Hardness: 1.5})
	RegisterBlock(&BlockDefinition{ID: world.BlockWater, Name: "water", Hardness: -1})
	RegisterBlock(&BlockDefinition{ID: world.BlockLava, Name: "lava", Hardness: -1})
	RegisterBlock(&BlockDefinition{ID: world.BlockBedrock, Name: "bedrock", Hardness: -1})
	RegisterBlock(&BlockDefinition{ID: world.BlockIce, Name: "ice", Hardness: 0.5})
	RegisterBlock(&BlockDefinition{ID: world.BlockSnow, Name: "snow", Hardness: 0.1})
	RegisterBlock(&BlockDefinition{ID: world.BlockSnowDirt, Name: "snowy_dirt", Hardness: 0.5})
}

// Hardness returns how long block t takes to break, or -1 if unbreakable.
func Hardness(t world.BlockType) float32 {
	if def, ok := Blocks[t]; ok {
		return def.Hardness
	}
	return 0
}

func Breakable(t world.BlockType) bool {
	return Hardness(t) >= 0
}
