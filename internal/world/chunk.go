package world

import (
	"sync"
	"sync/atomic"
)

// Direction identifies one of the six faces of a cube. Chunks only link
// neighbors along the four horizontal directions; YPOS/YNEG have no chunk
// neighbor since a chunk spans the full world height.
type Direction int

const (
	DirXPOS Direction = iota
	DirXNEG
	DirYPOS
	DirYNEG
	DirZPOS
	DirZNEG
)

// Opposite returns the direction that faces back the way d came from.
func (d Direction) Opposite() Direction {
	switch d {
	case DirXPOS:
		return DirXNEG
	case DirXNEG:
		return DirXPOS
	case DirYPOS:
		return DirYNEG
	case DirYNEG:
		return DirYPOS
	case DirZPOS:
		return DirZNEG
	case DirZNEG:
		return DirZPOS
	}
	panic("world: invalid direction")
}

// horizontalDirs are the four directions a Chunk keeps neighbor links for.
var horizontalDirs = [4]Direction{DirXPOS, DirXNEG, DirZPOS, DirZNEG}

const (
	ChunkSizeX = 16
	ChunkSizeY = 256
	ChunkSizeZ = 16
	blockCount = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

// Vertex matches the interleaved stream the GPU upload sink expects:
// position, normal, color (unused by the shader but present), uv, and an
// animated flag used by the fragment shader to scroll water/lava UVs.
type Vertex struct {
	Position [4]float32
	Normal   [4]float32
	Color    [4]float32
	UV       [2]float32
	Animated float32
}

// Chunk is a 16x256x16 voxel column identified by its lower-left world
// corner (MinX, MinZ), both multiples of 16.
type Chunk struct {
	MinX, MinZ int

	blocks  [blockCount]BlockType
	blockMu sync.RWMutex

	neighborMu sync.Mutex
	neighbors  [4]*Chunk // indexed by horizontalDirs position, not Direction value

	lod int32 // 0, 1 or 2; set by the main thread, read by mesh workers, so accessed atomically

	meshMu              sync.Mutex
	OpaqueVertices      []Vertex
	OpaqueIndices       []uint32
	TransparentVertices []Vertex
	TransparentIndices  []uint32

	hasBlockData atomic.Bool
	needsUpdate  atomic.Bool
	hasVBOData   atomic.Bool
	hasGPUData   atomic.Bool
}

// NewChunk allocates a chunk at the given lower-left world corner, filled
// with EMPTY. LOD starts at the coarsest level and needsUpdate starts true
// so the first mesh pass always runs once block data arrives.
func NewChunk(minX, minZ int) *Chunk {
	c := &Chunk{MinX: minX, MinZ: minZ, lod: 2}
	c.needsUpdate.Store(true)
	return c
}

func localIndex(x, y, z int) int {
	return x + ChunkSizeX*y + ChunkSizeX*ChunkSizeY*z
}

// InBounds reports whether local coordinates fall within the chunk.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

// GetLocalBlock reads the block at local coordinates. Callers outside the
// owning worker must either have observed HasBlockData()==true with an
// acquire barrier (atomic.Bool.Load already gives this) or rely on this
// method's own RLock.
func (c *Chunk) GetLocalBlock(x, y, z int) BlockType {
	if !InBounds(x, y, z) {
		panic("world: local coordinates out of chunk bounds")
	}
	c.blockMu.RLock()
	defer c.blockMu.RUnlock()
	return c.blocks[localIndex(x, y, z)]
}

// SetLocalBlock writes a block, marks the chunk dirty, and propagates
// needsUpdate to whichever neighbor shares the edge just written: a write on
// the min/max X or Z slab marks the corresponding neighbor so its seam
// geometry stays correct.
func (c *Chunk) SetLocalBlock(x, y, z int, t BlockType) {
	if !InBounds(x, y, z) {
		panic("world: local coordinates out of chunk bounds")
	}
	c.blockMu.Lock()
	c.blocks[localIndex(x, y, z)] = t
	c.blockMu.Unlock()

	c.needsUpdate.Store(true)

	c.neighborMu.Lock()
	defer c.neighborMu.Unlock()
	if x == 0 {
		if n := c.neighborLocked(DirXNEG); n != nil {
			n.needsUpdate.Store(true)
		}
	}
	if x == ChunkSizeX-1 {
		if n := c.neighborLocked(DirXPOS); n != nil {
			n.needsUpdate.Store(true)
		}
	}
	if z == 0 {
		if n := c.neighborLocked(DirZNEG); n != nil {
			n.needsUpdate.Store(true)
		}
	}
	if z == ChunkSizeZ-1 {
		if n := c.neighborLocked(DirZPOS); n != nil {
			n.needsUpdate.Store(true)
		}
	}
}

func horizontalSlot(d Direction) int {
	for i, hd := range horizontalDirs {
		if hd == d {
			return i
		}
	}
	panic("world: not a horizontal direction")
}

func (c *Chunk) neighborLocked(d Direction) *Chunk {
	return c.neighbors[horizontalSlot(d)]
}

// Neighbor returns the chunk linked in direction d, or nil.
func (c *Chunk) Neighbor(d Direction) *Chunk {
	c.neighborMu.Lock()
	defer c.neighborMu.Unlock()
	return c.neighborLocked(d)
}

// LinkNeighbor sets both directions symmetrically: c.neighbor[d] = other and
// other.neighbor[opp(d)] = c. Link symmetry depends on every link going
// through this method.
func LinkNeighbor(c, other *Chunk, d Direction) {
	c.neighborMu.Lock()
	c.neighbors[horizontalSlot(d)] = other
	c.neighborMu.Unlock()

	opp := d.Opposite()
	other.neighborMu.Lock()
	other.neighbors[horizontalSlot(opp)] = c
	other.neighborMu.Unlock()
}

// LOD returns the chunk's current level of detail.
func (c *Chunk) LOD() int {
	return int(atomic.LoadInt32(&c.lod))
}

// SetLOD updates the level of detail. If it actually changes, needsUpdate is
// set on this chunk and on every linked neighbor, since seam geometry
// between adjacent LODs differs.
func (c *Chunk) SetLOD(lod int) {
	old := atomic.SwapInt32(&c.lod, int32(lod))
	if old == int32(lod) {
		return
	}
	c.needsUpdate.Store(true)
	c.neighborMu.Lock()
	neighbors := c.neighbors
	c.neighborMu.Unlock()
	for _, n := range neighbors {
		if n != nil {
			n.needsUpdate.Store(true)
		}
	}
}

func (c *Chunk) HasBlockData() bool { return c.hasBlockData.Load() }
func (c *Chunk) NeedsUpdate() bool  { return c.needsUpdate.Load() }
func (c *Chunk) HasVBOData() bool   { return c.hasVBOData.Load() }
func (c *Chunk) HasGPUData() bool   { return c.hasGPUData.Load() }

// ClaimMeshWork atomically clears needsUpdate, acting as the scheduler's
// compare-and-claim token: only the worker that flips it from true to false
// may proceed with meshing this cycle.
func (c *Chunk) ClaimMeshWork() bool {
	return c.needsUpdate.CompareAndSwap(true, false)
}

// MarkDirty re-flags the chunk for meshing, used when a claimed mesh build
// fails and the claim must be returned.
func (c *Chunk) MarkDirty() {
	c.needsUpdate.Store(true)
}

// MarkBlockDataReady sets hasBlockData and needsUpdate; called exactly once
// per chunk load, by generation or by deserialization.
func (c *Chunk) MarkBlockDataReady() {
	c.hasBlockData.Store(true)
	c.needsUpdate.Store(true)
}

// SetMeshData installs freshly built CPU mesh buffers under the mesh mutex
// and flips hasVBOData. Called by a VBOWorker.
func (c *Chunk) SetMeshData(opaqueV []Vertex, opaqueI []uint32, transV []Vertex, transI []uint32) {
	c.meshMu.Lock()
	c.OpaqueVertices = opaqueV
	c.OpaqueIndices = opaqueI
	c.TransparentVertices = transV
	c.TransparentIndices = transI
	c.meshMu.Unlock()
	c.hasVBOData.Store(true)
}

// ConsumeMeshData is called by the render thread: it locks the mesh mutex,
// returns the CPU buffers for upload, clears the CPU copies, and flips
// hasVBOData/hasGPUData.
func (c *Chunk) ConsumeMeshData() (opaqueV []Vertex, opaqueI []uint32, transV []Vertex, transI []uint32) {
	c.meshMu.Lock()
	defer c.meshMu.Unlock()
	opaqueV, opaqueI = c.OpaqueVertices, c.OpaqueIndices
	transV, transI = c.TransparentVertices, c.TransparentIndices
	c.OpaqueVertices, c.OpaqueIndices = nil, nil
	c.TransparentVertices, c.TransparentIndices = nil, nil
	c.hasVBOData.Store(false)
	c.hasGPUData.Store(true)
	return
}

// ReleaseGPUData marks the chunk as no longer holding GPU buffers (used when
// it is dropped for distance or unloaded with its zone). The GPU buffers
// themselves are released by the render collaborator; this only clears the
// flag so the draw driver stops trying to draw it.
func (c *Chunk) ReleaseGPUData() {
	c.hasGPUData.Store(false)
}

// Center returns the XZ world-space center of the chunk's footprint.
func (c *Chunk) Center() (float64, float64) {
	return float64(c.MinX) + ChunkSizeX/2, float64(c.MinZ) + ChunkSizeZ/2
}
