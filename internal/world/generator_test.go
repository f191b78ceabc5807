package world

import "testing"

// heightAt is always in [0, 255].
func TestHeightAtIsBounded(t *testing.T) {
	n := NewNoise(1)
	for x := -500; x <= 500; x += 37 {
		for z := -500; z <= 500; z += 41 {
			h := n.HeightAt(x, z)
			if int(h) < 0 || int(h) > 255 {
				t.Fatalf("HeightAt(%d,%d) = %d, out of [0,255]", x, z, h)
			}
		}
	}
}

// Determinism: the same seed and coordinates must always produce
// the same height, across independent Noise instances.
func TestHeightAtIsDeterministic(t *testing.T) {
	a := NewNoise(1).HeightAt(0, 0)
	b := NewNoise(1).HeightAt(0, 0)
	c := NewNoise(1).HeightAt(0, 0)
	if a != b || b != c {
		t.Fatalf("HeightAt(0,0) not deterministic across runs: %d, %d, %d", a, b, c)
	}
}

// Cave cells: where the 3D noise sample is negative inside the
// cave band, the generator must return EMPTY above y=45 and LAVA below it,
// and never the surface block.
func TestGenerateBlockCaveCells(t *testing.T) {
	g := NewGenerator(1)
	var rivers RiverSet

	foundEmpty := false
	foundLava := false
	for x := 0; x < 64 && !(foundEmpty && foundLava); x++ {
		for z := 0; z < 64 && !(foundEmpty && foundLava); z++ {
			if g.noise.Perlin3D(float64(x)*0.1, 5.0, float64(z)*0.1) < 0 {
				if g.GenerateBlock(x, 50, z, rivers) != BlockEmpty {
					t.Fatalf("cave cell (%d,50,%d) expected EMPTY", x, z)
				}
				foundEmpty = true
			}
			if g.noise.Perlin3D(float64(x)*0.1, 4.2, float64(z)*0.1) < 0 {
				if g.GenerateBlock(x, 42, z, rivers) != BlockLava {
					t.Fatalf("cave cell (%d,42,%d) expected LAVA", x, z)
				}
				foundLava = true
			}
		}
	}
	if !foundEmpty || !foundLava {
		t.Fatalf("did not find both an EMPTY and a LAVA cave cell in the sampled range (empty=%v lava=%v)", foundEmpty, foundLava)
	}
}

// The surface block at (0, heightAt(0,0), 0) is always one of the
// allowed types and is never hollowed out by the cave rule, since caves only
// apply in [40,80) and the generator tests height strictly after caves.
func TestGenerateBlockSurfaceIsAllowedType(t *testing.T) {
	g := NewGenerator(1)
	var rivers RiverSet
	h := int(g.HeightAt(0, 0))
	got := g.GenerateBlock(0, h, 0, rivers)
	switch got {
	case BlockGrass, BlockStone, BlockSnow:
	default:
		t.Fatalf("surface block at (0,%d,0) = %v, want GRASS, STONE or SNOW", h, got)
	}
}

// Pure function of (seed, x, y, z) -- same inputs, same
// output, run to run.
func TestGenerateBlockIsPure(t *testing.T) {
	var rivers RiverSet
	for _, seed := range []int64{1, 2, 42} {
		g1 := NewGenerator(seed)
		g2 := NewGenerator(seed)
		for _, p := range [][3]int{{0, 0, 0}, {5, 60, -5}, {100, 145, 100}, {-16, 0, -16}} {
			a := g1.GenerateBlock(p[0], p[1], p[2], rivers)
			b := g2.GenerateBlock(p[0], p[1], p[2], rivers)
			if a != b {
				t.Fatalf("seed %d: GenerateBlock%v not pure: %v != %v", seed, p, a, b)
			}
		}
	}
}

func TestGenerateBlockBedrockAndOutOfRange(t *testing.T) {
	g := NewGenerator(1)
	var rivers RiverSet
	if got := g.GenerateBlock(3, 0, 9, rivers); got != BlockBedrock {
		t.Errorf("y=0 expected BEDROCK, got %v", got)
	}
	if got := g.GenerateBlock(3, -1, 9, rivers); got != BlockEmpty {
		t.Errorf("y=-1 expected EMPTY, got %v", got)
	}
	if got := g.GenerateBlock(3, 256, 9, rivers); got != BlockEmpty {
		t.Errorf("y=256 expected EMPTY, got %v", got)
	}
}

// A chunk at minX=-16 must generate symmetrically with one
// at minX=0 -- the generator must not special-case the sign of x.
func TestGenerateIsSymmetricAcrossNegativeX(t *testing.T) {
	g := NewGenerator(1)
	var rivers RiverSet
	cNeg := NewChunk(-16, 0)
	cPos := NewChunk(0, 0)
	g.Generate(cNeg, rivers)
	g.Generate(cPos, rivers)
	if !cNeg.HasBlockData() || !cPos.HasBlockData() {
		t.Fatalf("Generate did not mark block data ready")
	}
	// Spot check a few cells resolve to whatever GenerateBlock independently
	// returns for the same world coordinates -- the chunk offset is just a
	// coordinate translation, not a different code path.
	for _, lx := range []int{0, 5, 15} {
		for _, lz := range []int{0, 5, 15} {
			want := g.GenerateBlock(-16+lx, 50, lz, rivers)
			got := cNeg.GetLocalBlock(lx, 50, lz)
			if got != want {
				t.Errorf("chunk(-16,0) local(%d,50,%d) = %v, want %v", lx, lz, got, want)
			}
		}
	}
}
