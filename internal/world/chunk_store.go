package world

import "sync"

// chunkKey packs chunk-grid coordinates (worldX/16, worldZ/16) into a single
// int64: upper 32 bits hold X, lower 32 bits hold Z, sign-extended so
// negative coordinates round-trip correctly (a chunk at minX=-16 must load
// symmetrically with one at +0).
func chunkKey(chunkX, chunkZ int) int64 {
	return int64(uint32(int32(chunkX)))<<32 | int64(uint32(int32(chunkZ)))
}

func unpackChunkKey(key int64) (chunkX, chunkZ int) {
	chunkX = int(int32(uint32(key >> 32)))
	chunkZ = int(int32(uint32(key & 0xFFFFFFFF)))
	return
}

// floorDiv performs integer division that rounds toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod returns a non-negative remainder of a/b.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// ChunkStore owns every loaded chunk by key. Insertion and erasure happen
// only on the main thread, but GetChunk is still safe to call concurrently
// for lookups.
type ChunkStore struct {
	mu     sync.RWMutex
	chunks map[int64]*Chunk
}

// NewChunkStore creates an empty store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{chunks: make(map[int64]*Chunk)}
}

// GetChunk returns the chunk containing world column (worldX, worldZ), or nil
// if absent. worldX/worldZ need not be pre-snapped to 16; they are
// floor-divided internally.
func (s *ChunkStore) GetChunk(worldX, worldZ int) *Chunk {
	cx := floorDiv(worldX, ChunkSizeX)
	cz := floorDiv(worldZ, ChunkSizeZ)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chunks[chunkKey(cx, cz)]
}

// GetChunkByIndex returns the chunk at chunk-grid coordinates (cx, cz).
func (s *ChunkStore) GetChunkByIndex(cx, cz int) *Chunk {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chunks[chunkKey(cx, cz)]
}

// HasChunk reports whether a chunk is present at chunk-grid (cx, cz).
func (s *ChunkStore) HasChunk(cx, cz int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.chunks[chunkKey(cx, cz)]
	return ok
}

// InstantiateChunk creates a chunk at chunk-grid (cx, cz) if absent, links it
// symmetrically to any of its four horizontal neighbors that already exist,
// and returns it. The caller (main thread) is responsible for then
// submitting a generation task.
func (s *ChunkStore) InstantiateChunk(cx, cz int) *Chunk {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := chunkKey(cx, cz)
	if existing, ok := s.chunks[key]; ok {
		return existing
	}

	c := NewChunk(cx*ChunkSizeX, cz*ChunkSizeZ)
	s.chunks[key] = c

	type offset struct {
		dx, dz int
		dir    Direction
	}
	offsets := []offset{
		{1, 0, DirXPOS},
		{-1, 0, DirXNEG},
		{0, 1, DirZPOS},
		{0, -1, DirZNEG},
	}
	for _, o := range offsets {
		if n, ok := s.chunks[chunkKey(cx+o.dx, cz+o.dz)]; ok {
			LinkNeighbor(c, n, o.dir)
		}
	}
	return c
}

// RemoveChunk deletes the chunk entry at (cx, cz), if present, and returns
// it so the caller can release its GPU buffers. It does not unlink it from
// neighbors (neighbors simply hold a now-dangling-but-otherwise-valid
// pointer until they too are dropped or the pointer is overwritten by a
// future InstantiateChunk at the same slot).
func (s *ChunkStore) RemoveChunk(cx, cz int) *Chunk {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := chunkKey(cx, cz)
	c := s.chunks[key]
	delete(s.chunks, key)
	return c
}

// Get returns the block type at world coordinates, or STONE if the owning
// chunk exists but has not finished generating yet; a not-ready read never
// propagates as an error, so the player cannot fall through unloaded
// ground. Panics if no chunk is present at all; callers that might cross an
// unloaded boundary should use TryGet.
func (s *ChunkStore) Get(x, y, z int) BlockType {
	t, err := s.TryGet(x, y, z)
	if err != nil {
		panic(err)
	}
	return t
}

// ErrChunkNotPresent is returned by TryGet when no chunk owns the queried
// column at all.
type ErrChunkNotPresent struct{ X, Z int }

func (e *ErrChunkNotPresent) Error() string {
	return "world: no chunk present for the requested column"
}

// TryGet is the non-panicking form of Get.
func (s *ChunkStore) TryGet(x, y, z int) (BlockType, error) {
	if y < 0 || y >= ChunkSizeY {
		return BlockEmpty, nil
	}
	c := s.GetChunk(x, z)
	if c == nil {
		return BlockEmpty, &ErrChunkNotPresent{X: x, Z: z}
	}
	if !c.HasBlockData() {
		return BlockStone, nil
	}
	lx := mod(x, ChunkSizeX)
	lz := mod(z, ChunkSizeZ)
	return c.GetLocalBlock(lx, y, lz), nil
}

// Set writes a block at world coordinates. The owning chunk must already
// exist; Set panics otherwise (matching Get's OutOfRange policy).
func (s *ChunkStore) Set(x, y, z int, t BlockType) {
	if y < 0 || y >= ChunkSizeY {
		return
	}
	c := s.GetChunk(x, z)
	if c == nil {
		panic(&ErrChunkNotPresent{X: x, Z: z})
	}
	lx := mod(x, ChunkSizeX)
	lz := mod(z, ChunkSizeZ)
	c.SetLocalBlock(lx, y, lz, t)
}

// IsAir reports whether the cell at world coordinates holds nothing at all.
// Liquids are not air: physics needs them for buoyancy, and placement must
// not overwrite them silently.
func (s *ChunkStore) IsAir(x, y, z int) bool {
	t, err := s.TryGet(x, y, z)
	if err != nil {
		return true
	}
	return t == BlockEmpty
}

// ForEach calls fn for every currently loaded chunk with its chunk-grid
// coordinates. fn must not mutate the store.
func (s *ChunkStore) ForEach(fn func(cx, cz int, c *Chunk)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for key, c := range s.chunks {
		cx, cz := unpackChunkKey(key)
		fn(cx, cz, c)
	}
}

// Count returns the number of currently loaded chunks.
func (s *ChunkStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}
