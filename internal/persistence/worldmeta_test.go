package persistence

import "testing"

func TestWorldSeedRoundTrips(t *testing.T) {
	dir := t.TempDir()
	if err := SaveWorldSeed(dir, 99); err != nil {
		t.Fatalf("SaveWorldSeed: %v", err)
	}
	seed, ok, err := LoadWorldSeed(dir)
	if err != nil {
		t.Fatalf("LoadWorldSeed: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true after saving")
	}
	if seed != 99 {
		t.Fatalf("seed = %d, want 99", seed)
	}
}

func TestWorldSeedMissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	seed, ok, err := LoadWorldSeed(dir)
	if err != nil {
		t.Fatalf("unexpected error on missing world.meta: %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false when world.meta is absent")
	}
	if seed != 0 {
		t.Fatalf("seed = %d, want 0 default", seed)
	}
}
