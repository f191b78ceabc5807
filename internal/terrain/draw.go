package terrain

import (
	"mini-mc/internal/config"
	"mini-mc/internal/frustum"
	"mini-mc/internal/world"
)

// lod0Distance / lod1Distance are the cutoffs (in blocks) for LOD
// assignment: 0 within lod0Distance, 1 within lod1Distance, 2 beyond.
// maxCullDistance is the hard ceiling past which GPU buffers are dropped;
// the configured render distance can pull the cull in tighter but never
// push it out.
const (
	lod0Distance    = 64.0
	lod1Distance    = 128.0
	maxCullDistance = 256.0
)

func cullDistanceBlocks() float64 {
	d := float64(config.GetRenderDistance() * world.ChunkSizeX)
	if d > maxCullDistance {
		return maxCullDistance
	}
	return d
}

// DrawItem is one chunk the render thread should draw this frame, already
// past distance/frustum culling with up-to-date GPU-ready buffers.
type DrawItem struct {
	Chunk *world.Chunk
}

// Sweep makes the per-frame passes over every loaded chunk:
//  1. skip chunks with no block data yet;
//  2. distance cull: beyond the cull distance, mark for GPU-buffer release
//     and drop from this frame's work;
//  3. frustum cull: skip (but keep loaded) chunks outside the camera
//     frustum;
//  4. assign LOD by distance band;
//  5. chunks with NeedsUpdate get a VBO-build task submitted;
//  6. chunks with HasVBOData are returned so the caller can upload them to
//     the GPU (terrain has no GL dependency, so the actual upload is the
//     caller's job).
func (t *Terrain) Sweep(camX, camY, camZ float64, planes frustum.Planes) (visible []DrawItem, needsUpload []*world.Chunk, dropped []*world.Chunk) {
	cull := cullDistanceBlocks()
	t.store.ForEach(func(cx, cz int, c *world.Chunk) {
		if !c.HasBlockData() {
			return
		}

		centerX, centerZ := c.Center()
		dx := centerX - camX
		dz := centerZ - camZ
		distSq := dx*dx + dz*dz

		if distSq > cull*cull {
			if c.HasGPUData() {
				c.ReleaseGPUData()
				dropped = append(dropped, c)
			}
			return
		}

		minX := float32(c.MinX)
		minZ := float32(c.MinZ)
		if !planes.AABBVisible(minX, 0, minZ, minX+world.ChunkSizeX, world.ChunkSizeY, minZ+world.ChunkSizeZ) {
			return
		}

		switch {
		case distSq <= lod0Distance*lod0Distance:
			c.SetLOD(0)
		case distSq <= lod1Distance*lod1Distance:
			c.SetLOD(1)
		default:
			c.SetLOD(2)
		}

		if c.ClaimMeshWork() {
			if !t.pool.Submit(&VBOTask{chunk: c}) {
				// Queue full; hand the claim back so a later sweep retries.
				c.MarkDirty()
			}
		}

		if c.HasVBOData() {
			needsUpload = append(needsUpload, c)
		}

		visible = append(visible, DrawItem{Chunk: c})
	})
	return visible, needsUpload, dropped
}
