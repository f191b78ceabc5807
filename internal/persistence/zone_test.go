package persistence

import (
	"testing"

	"mini-mc/internal/world"
)

// Save then load must round-trip modified blocks exactly,
// leaving everything else at the generator's baseline.
func TestSaveLoadZoneRoundTrips(t *testing.T) {
	dir := t.TempDir()
	gen := world.NewGenerator(1)
	var rivers world.RiverSet

	store := world.NewChunkStore()
	get := func(cx, cz int) *world.Chunk { return store.InstantiateChunk(cx, cz) }

	// Populate and modify the zone at (0,0): chunks (0,0)-(3,3).
	for cx := 0; cx < zoneChunksPerSide; cx++ {
		for cz := 0; cz < zoneChunksPerSide; cz++ {
			c := get(cx, cz)
			gen.Generate(c, rivers)
		}
	}
	origin := get(0, 0)
	origin.SetLocalBlock(3, 200, 7, world.BlockSnow)

	if err := SaveZone(dir, 0, 0, get, gen, rivers); err != nil {
		t.Fatalf("SaveZone: %v", err)
	}
	if !ZoneFileExists(dir, 0, 0) {
		t.Fatalf("ZoneFileExists false right after save")
	}

	// Drop the chunk map and reload into a fresh store.
	store2 := world.NewChunkStore()
	get2 := func(cx, cz int) *world.Chunk { return store2.InstantiateChunk(cx, cz) }
	if err := LoadZone(dir, 0, 0, get2, gen, rivers); err != nil {
		t.Fatalf("LoadZone: %v", err)
	}

	reloaded := get2(0, 0)
	if got := reloaded.GetLocalBlock(3, 200, 7); got != world.BlockSnow {
		t.Fatalf("reloaded (3,200,7) = %v, want SNOW", got)
	}
	// Elsewhere, the reload must match the generator's default exactly.
	if got := reloaded.GetLocalBlock(3, 199, 7); got != gen.GenerateBlock(3, 199, 7, rivers) {
		t.Fatalf("reloaded (3,199,7) = %v, want generator default %v", got, gen.GenerateBlock(3, 199, 7, rivers))
	}
	if !reloaded.HasBlockData() {
		t.Errorf("reloaded chunk should have HasBlockData set")
	}
	if !reloaded.NeedsUpdate() {
		t.Errorf("reloaded chunk should have NeedsUpdate set")
	}
}

func TestZoneFileExistsFalseOnEmptyFolder(t *testing.T) {
	dir := t.TempDir()
	if ZoneFileExists(dir, 0, 0) {
		t.Fatalf("expected false for an empty world folder")
	}
}

func TestZonePathLayout(t *testing.T) {
	got := ZonePath("/w", 5, -3)
	want := "/w/Region_1_-1/Zone_5_-3.dat"
	if got != want {
		t.Fatalf("ZonePath = %q, want %q", got, want)
	}
}

// An unmodified zone (nothing differs from the generator) still round-trips
// -- a save with zero diffs per chunk followed by a load reproduces the
// generator's baseline exactly.
func TestSaveLoadZoneWithNoModifications(t *testing.T) {
	dir := t.TempDir()
	gen := world.NewGenerator(7)
	var rivers world.RiverSet

	store := world.NewChunkStore()
	get := func(cx, cz int) *world.Chunk { return store.InstantiateChunk(cx, cz) }
	base := 2 * zoneChunksPerSide // zone (2,2) owns chunks (8,8)-(11,11)
	for cx := base; cx < base+zoneChunksPerSide; cx++ {
		for cz := base; cz < base+zoneChunksPerSide; cz++ {
			gen.Generate(get(cx, cz), rivers)
		}
	}
	if err := SaveZone(dir, 2, 2, get, gen, rivers); err != nil {
		t.Fatalf("SaveZone: %v", err)
	}

	store2 := world.NewChunkStore()
	get2 := func(cx, cz int) *world.Chunk { return store2.InstantiateChunk(cx, cz) }
	if err := LoadZone(dir, 2, 2, get2, gen, rivers); err != nil {
		t.Fatalf("LoadZone: %v", err)
	}
	c := get2(8, 8) // zone (2,2) base chunk index
	want := gen.GenerateBlock(8*world.ChunkSizeX, 100, 8*world.ChunkSizeZ, rivers)
	if got := c.GetLocalBlock(0, 100, 0); got != want {
		t.Fatalf("loaded (0,100,0) = %v, want %v", got, want)
	}
}
