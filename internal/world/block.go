package world

// BlockType is an 8-bit tag identifying the contents of a voxel cell. The
// set is closed: generator, mesher and persistence all switch exhaustively
// over these ten values.
type BlockType uint8

const (
	BlockEmpty BlockType = iota
	BlockGrass
	BlockDirt
	BlockStone
	BlockWater
	BlockLava
	BlockBedrock
	BlockIce
	BlockSnow
	BlockSnowDirt

	numBlockTypes = int(BlockSnowDirt) + 1
)

func (b BlockType) String() string {
	switch b {
	case BlockEmpty:
		return "EMPTY"
	case BlockGrass:
		return "GRASS"
	case BlockDirt:
		return "DIRT"
	case BlockStone:
		return "STONE"
	case BlockWater:
		return "WATER"
	case BlockLava:
		return "LAVA"
	case BlockBedrock:
		return "BEDROCK"
	case BlockIce:
		return "ICE"
	case BlockSnow:
		return "SNOW"
	case BlockSnowDirt:
		return "SNOW_DIRT"
	default:
		return "UNKNOWN"
	}
}

// IsOpaque reports whether a block fully occludes adjacent faces. EMPTY,
// WATER and ICE are the only non-opaque types.
func (b BlockType) IsOpaque() bool {
	return b != BlockEmpty && b != BlockWater && b != BlockIce
}

// IsOpaqueOrLava is IsOpaque minus LAVA: lava is opaque for rendering but is
// excluded from this culling predicate, so faces between lava and its
// neighbors still get meshed.
func (b BlockType) IsOpaqueOrLava() bool {
	return b.IsOpaque() && b != BlockLava
}

// IsAnimated reports whether the block's vertices carry the animated flag.
func (b BlockType) IsAnimated() bool {
	return b == BlockWater || b == BlockLava
}

// IsLiquid reports whether the block is traversable but movement-resistant.
func (b BlockType) IsLiquid() bool {
	return b == BlockWater || b == BlockLava
}
