package world

const (
	caveMinHeight = 40
	caveMaxHeight = 80
	oceanLevel    = 138
	riverLevel    = 140 // rivers only carve where heightAt > this; water fills riverLevel-riverDepth < y < heightAt
	riverDepth    = 4
)

// Generator composes noise, biome classification and the river set into a
// single pure function: the block type at a world cell. It holds no mutable
// state once constructed; save files diff against its output, so the same
// (seed, x, y, z) must always yield the same base block.
type Generator struct {
	noise *Noise
	seed  int64
}

// NewGenerator builds a generator for seed. The permutation table is built
// once here and reused for every query.
func NewGenerator(seed int64) *Generator {
	return &Generator{noise: NewNoise(seed), seed: seed}
}

// Seed returns the seed this generator was built with.
func (g *Generator) Seed() int64 { return g.seed }

// HeightAt exposes the noise-derived surface height.
func (g *Generator) HeightAt(x, z int) uint8 { return g.noise.HeightAt(x, z) }

// BiomeAt exposes the biome classification.
func (g *Generator) BiomeAt(x, z int) Biome { return g.noise.BiomeAt(x, z) }

// GenerateBlock decides the block at a single cell: bedrock floor, then
// caves, then river carving, then ocean fill, then the biome's surface and
// subsurface material, in that order. It is independent of any chunk
// instance: given the same (seed, x, y, z) and river set it always returns
// the same block.
func (g *Generator) GenerateBlock(x, y, z int, rivers RiverSet) BlockType {
	// 1. Out-of-range y.
	if y < 0 || y > 255 {
		return BlockEmpty
	}
	// 2. Bedrock floor.
	if y == 0 {
		return BlockBedrock
	}

	height := int(g.HeightAt(x, z))
	biome := g.BiomeAt(x, z)

	// 3. Caves.
	if y >= caveMinHeight && y < caveMaxHeight {
		if g.noise.Perlin3D(float64(x)*0.1, float64(y)*0.1, float64(z)*0.1) < 0 {
			if y < caveMinHeight+5 {
				return BlockLava
			}
			return BlockEmpty
		}
	}

	// 4. Rivers.
	if height > riverLevel && rivers.IsRiverAt(x, z) {
		switch {
		case y >= height:
			return BlockEmpty
		case y > riverLevel-riverDepth:
			return BlockWater
		case y == riverLevel-riverDepth-1:
			return BlockDirt
		}
	}

	// 5. Above surface.
	if y > height {
		floor := height + 1
		if caveMaxHeight+1 > floor {
			floor = caveMaxHeight + 1
		}
		if height < oceanLevel && y <= oceanLevel && y >= floor {
			return BlockWater
		}
		return BlockEmpty
	}

	// 6. At surface.
	if y == height {
		switch biome {
		case BiomeGrassland:
			return BlockGrass
		case BiomeMountain:
			if height > mountainSnowlineHeight {
				return BlockSnow
			}
			return BlockStone
		}
	}

	// 7. Below surface.
	if biome == BiomeGrassland {
		return BlockDirt
	}
	return BlockStone
}

// Generate fills every cell of c by evaluating GenerateBlock, then marks the
// chunk's block data ready. Used for fresh chunks; loaded chunks also call
// this first (as the deterministic baseline) before applying saved diffs.
func (g *Generator) Generate(c *Chunk, rivers RiverSet) {
	for lx := 0; lx < ChunkSizeX; lx++ {
		wx := c.MinX + lx
		for lz := 0; lz < ChunkSizeZ; lz++ {
			wz := c.MinZ + lz
			for y := 0; y < ChunkSizeY; y++ {
				c.SetLocalBlock(lx, y, lz, g.GenerateBlock(wx, y, wz, rivers))
			}
		}
	}
	c.MarkBlockDataReady()
}
