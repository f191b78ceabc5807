// Package terrain owns the Terrain struct that ties the chunk store,
// generator, rivers, zone persistence, and worker pool together: the
// per-frame chunk sweep and the zone-load-or-generate decision. It sits
// above internal/world (never the reverse) since it is the only layer that
// needs to know about both block state and file I/O, which keeps
// internal/world free of an import cycle on internal/persistence.
package terrain

import (
	"log"
	"math/rand"
	"sync"

	"github.com/pkg/errors"

	"mini-mc/internal/persistence"
	"mini-mc/internal/worker"
	"mini-mc/internal/world"
)

const (
	zoneChunksPerSide = 4
	zoneSizeBlocks    = zoneChunksPerSide * world.ChunkSizeX // 64

	riverChance = 0.1 // a newly generated zone has a 1-in-10 chance of spawning a river
)

// Terrain is the single owner of chunk/zone state for one world folder.
type Terrain struct {
	WorldDir string

	store *world.ChunkStore
	gen   *world.Generator
	pool  *worker.Pool

	mu             sync.Mutex
	generatedZones map[[2]int]struct{}
	rivers         world.RiverSet
	rnd            *rand.Rand
}

// New creates a Terrain rooted at worldDir, loading (or defaulting) its
// seed from world.meta.
func New(worldDir string, defaultSeed int64) (*Terrain, error) {
	seed, ok, err := persistence.LoadWorldSeed(worldDir)
	if err != nil {
		return nil, errors.Wrap(err, "terrain: load world seed")
	}
	if !ok {
		seed = defaultSeed
		if err := persistence.SaveWorldSeed(worldDir, seed); err != nil {
			return nil, errors.Wrap(err, "terrain: save world seed")
		}
	}

	return &Terrain{
		WorldDir:       worldDir,
		store:          world.NewChunkStore(),
		gen:            world.NewGenerator(seed),
		pool:           worker.New(4, 256),
		generatedZones: make(map[[2]int]struct{}),
		rnd:            rand.New(rand.NewSource(seed ^ 0x5bd1e995)),
	}, nil
}

func (t *Terrain) Store() *world.ChunkStore { return t.store }
func (t *Terrain) Generator() *world.Generator { return t.gen }
func (t *Terrain) Pool() *worker.Pool { return t.pool }

func (t *Terrain) Close() { t.pool.Close() }

func zoneOf(worldX, worldZ int) (zx, zz int) {
	return floorDiv(worldX, zoneSizeBlocks), floorDiv(worldZ, zoneSizeBlocks)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// EnsureZonesAround guarantees every zone within a 3x3 window centered on
// the zone containing (centerX, centerZ) is generated or loaded.
func (t *Terrain) EnsureZonesAround(centerX, centerZ int) {
	czx, czz := zoneOf(centerX, centerZ)
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			t.ensureZone(czx+dx, czz+dz)
		}
	}
}

func (t *Terrain) ensureZone(zx, zz int) {
	t.mu.Lock()
	key := [2]int{zx, zz}
	if _, done := t.generatedZones[key]; done {
		t.mu.Unlock()
		return
	}
	t.generatedZones[key] = struct{}{}
	t.mu.Unlock()

	baseCX := zx * zoneChunksPerSide
	baseCZ := zz * zoneChunksPerSide

	// Instantiate and symmetrically link every chunk in the zone before
	// any generation happens, so neighbor references are always valid by
	// the time meshing reads them.
	for lcx := 0; lcx < zoneChunksPerSide; lcx++ {
		for lcz := 0; lcz < zoneChunksPerSide; lcz++ {
			t.store.InstantiateChunk(baseCX+lcx, baseCZ+lcz)
		}
	}

	if persistence.ZoneFileExists(t.WorldDir, zx, zz) {
		load := t.loadZoneTask(zx, zz, baseCX, baseCZ)
		if !t.pool.Submit(load) {
			// Queue full; load inline rather than dropping the zone.
			if err := load.Run(); err != nil {
				log.Printf("terrain: load zone (%d,%d): %v", zx, zz, err)
			}
		}
		return
	}

	t.maybeSpawnRiver(zx, zz)
	t.generateZone(baseCX, baseCZ)
}

// loadZoneTask builds the pool task that deserializes zone (zx, zz),
// falling back to fresh generation if the file turns out to be unreadable.
func (t *Terrain) loadZoneTask(zx, zz, baseCX, baseCZ int) *SaveLoadTask {
	t.mu.Lock()
	rivers := t.rivers
	t.mu.Unlock()

	get := func(cx, cz int) *world.Chunk { return t.store.GetChunkByIndex(cx, cz) }
	return &SaveLoadTask{
		key: [3]any{"zone-load", zx, zz},
		run: func() error {
			if err := persistence.LoadZone(t.WorldDir, zx, zz, get, t.gen, rivers); err != nil {
				log.Printf("terrain: load zone (%d,%d) failed, regenerating: %v", zx, zz, err)
				t.generateZone(baseCX, baseCZ)
			}
			return nil
		},
	}
}

func (t *Terrain) maybeSpawnRiver(zx, zz int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.rnd.Float64() >= riverChance {
		return
	}
	startX := zx*zoneSizeBlocks + zoneSizeBlocks/2
	startZ := zz*zoneSizeBlocks + zoneSizeBlocks/2
	t.rivers = append(t.rivers, world.NewDefaultRiver(startX, startZ, t.rnd.Float64))
}

func (t *Terrain) generateZone(baseCX, baseCZ int) {
	t.mu.Lock()
	rivers := t.rivers
	t.mu.Unlock()

	for lcx := 0; lcx < zoneChunksPerSide; lcx++ {
		for lcz := 0; lcz < zoneChunksPerSide; lcz++ {
			c := t.store.GetChunkByIndex(baseCX+lcx, baseCZ+lcz)
			t.pool.Submit(&BlockTypeTask{chunk: c, gen: t.gen, rivers: rivers})
		}
	}
}

// SaveZonesAround persists every zone in the 3x3 window around (centerX,
// centerZ), diffing against the generator baseline. The pool is drained
// first so no generation or mesh worker is still mutating a chunk's blocks
// while it is snapshotted.
func (t *Terrain) SaveZonesAround(centerX, centerZ int) error {
	t.pool.Drain()

	czx, czz := zoneOf(centerX, centerZ)
	t.mu.Lock()
	rivers := t.rivers
	t.mu.Unlock()

	get := func(cx, cz int) *world.Chunk { return t.store.GetChunkByIndex(cx, cz) }
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			zx, zz := czx+dx, czz+dz
			if err := persistence.SaveZone(t.WorldDir, zx, zz, get, t.gen, rivers); err != nil {
				return err
			}
		}
	}
	return nil
}

// EvictFarZones saves and unloads every generated zone outside the 3x3
// window EnsureZonesAround keeps live around (centerX, centerZ), freeing
// memory for zones the player has streamed away from.
func (t *Terrain) EvictFarZones(centerX, centerZ int) error {
	czx, czz := zoneOf(centerX, centerZ)

	t.mu.Lock()
	far := make([][2]int, 0)
	for key := range t.generatedZones {
		if key[0] < czx-1 || key[0] > czx+1 || key[1] < czz-1 || key[1] > czz+1 {
			far = append(far, key)
		}
	}
	t.mu.Unlock()

	for _, key := range far {
		if err := t.UnloadZone(key[0], key[1]); err != nil {
			return err
		}
	}
	return nil
}

// UnloadZone removes every chunk belonging to zone (zx, zz) from the store
// after saving it, freeing memory for zones that have scrolled out of
// range. Drains the pool first, same as SaveZonesAround, so no outstanding
// worker still holds a pointer into a chunk this call is about to remove.
func (t *Terrain) UnloadZone(zx, zz int) error {
	t.pool.Drain()

	t.mu.Lock()
	rivers := t.rivers
	t.mu.Unlock()
	get := func(cx, cz int) *world.Chunk { return t.store.GetChunkByIndex(cx, cz) }
	if err := persistence.SaveZone(t.WorldDir, zx, zz, get, t.gen, rivers); err != nil {
		return err
	}

	baseCX := zx * zoneChunksPerSide
	baseCZ := zz * zoneChunksPerSide
	for lcx := 0; lcx < zoneChunksPerSide; lcx++ {
		for lcz := 0; lcz < zoneChunksPerSide; lcz++ {
			t.store.RemoveChunk(baseCX+lcx, baseCZ+lcz)
		}
	}

	t.mu.Lock()
	delete(t.generatedZones, [2]int{zx, zz})
	t.mu.Unlock()
	return nil
}
