// Package meshing builds the per-chunk, per-LOD vertex/index buffers: a
// chunk is swept in blockSize-sized cells, each cell contributes at most
// one "dominant block" worth of cube faces, and each face is culled against
// the matching region in whichever chunk (or LOD) borders it. Unlike a
// greedy mesher, runs of identical cells are never merged; coarser LODs get
// cheaper geometry from the larger cell size alone.
package meshing

import "mini-mc/internal/world"

// Result holds the four buffers a mesh pass produces.
type Result struct {
	OpaqueVertices      []world.Vertex
	OpaqueIndices       []uint32
	TransparentVertices []world.Vertex
	TransparentIndices  []uint32
}

// faceVertices is the canonical unit-cube corner order per face direction,
// before scale/translate.
var faceVertices = map[world.Direction][4][3]float32{
	world.DirXPOS: {{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
	world.DirXNEG: {{0, 0, 1}, {0, 1, 1}, {0, 1, 0}, {0, 0, 0}},
	world.DirYPOS: {{0, 1, 0}, {1, 1, 0}, {1, 1, 1}, {0, 1, 1}},
	world.DirYNEG: {{0, 0, 1}, {1, 0, 1}, {1, 0, 0}, {0, 0, 0}},
	world.DirZPOS: {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	world.DirZNEG: {{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}},
}

var faceNormals = map[world.Direction][3]float32{
	world.DirXPOS: {1, 0, 0},
	world.DirXNEG: {-1, 0, 0},
	world.DirYPOS: {0, 1, 0},
	world.DirYNEG: {0, -1, 0},
	world.DirZPOS: {0, 0, 1},
	world.DirZNEG: {0, 0, -1},
}

var allDirections = [6]world.Direction{
	world.DirXPOS, world.DirXNEG, world.DirYPOS, world.DirYNEG, world.DirZPOS, world.DirZNEG,
}

// atlasTile is a (col, row) cell of the 16x16 terrain atlas.
type atlasTile struct{ col, row int }

var atlasTable = map[world.BlockType]struct{ top, bottom, sides atlasTile }{
	world.BlockGrass:    {atlasTile{8, 2}, atlasTile{2, 0}, atlasTile{3, 0}},
	world.BlockDirt:     {atlasTile{2, 0}, atlasTile{2, 0}, atlasTile{2, 0}},
	world.BlockStone:    {atlasTile{1, 0}, atlasTile{1, 0}, atlasTile{1, 0}},
	world.BlockBedrock:  {atlasTile{1, 1}, atlasTile{1, 1}, atlasTile{1, 1}},
	world.BlockLava:     {atlasTile{15, 14}, atlasTile{15, 14}, atlasTile{15, 14}},
	world.BlockSnow:     {atlasTile{2, 4}, atlasTile{2, 4}, atlasTile{2, 4}},
	world.BlockSnowDirt: {atlasTile{2, 4}, atlasTile{4, 4}, atlasTile{4, 4}},
	world.BlockWater:    {atlasTile{15, 12}, atlasTile{15, 12}, atlasTile{15, 12}},
	world.BlockIce:       {atlasTile{3, 4}, atlasTile{3, 4}, atlasTile{3, 4}},
}

func tileFor(t world.BlockType, dir world.Direction) atlasTile {
	e := atlasTable[t]
	switch dir {
	case world.DirYPOS:
		return e.top
	case world.DirYNEG:
		return e.bottom
	default:
		return e.sides
	}
}

const atlasStep = 1.0 / 16.0

// bottomRightFirst directions use winding [max,min][max,max][min,max][min,min];
// the rest use [min,min][max,min][max,max][min,max].
func bottomRightFirst(dir world.Direction) bool {
	return dir == world.DirYPOS || dir == world.DirXPOS || dir == world.DirXNEG
}

func uvForFace(tile atlasTile, dir world.Direction) [4][2]float32 {
	uMin := float32(tile.col) * atlasStep
	vMin := 1 - float32(tile.row+1)*atlasStep
	uMax := uMin + atlasStep
	vMax := 1 - float32(tile.row)*atlasStep

	if bottomRightFirst(dir) {
		return [4][2]float32{{uMax, vMin}, {uMax, vMax}, {uMin, vMax}, {uMin, vMin}}
	}
	return [4][2]float32{{uMin, vMin}, {uMax, vMin}, {uMax, vMax}, {uMin, vMax}}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// BuildMesh meshes chunk c at its current LOD and returns the four buffers.
// Block reads go through the chunk's shared lock; a write racing with this
// pass may be missed for one cycle but re-flags the chunk, so the next
// sweep picks it up.
func BuildMesh(c *world.Chunk) Result {
	lod := c.LOD()
	blockSizeXZ := 1 << uint(lod)
	blockSizeY := clampInt(blockSizeXZ/2, 1, 256)

	var res Result

	for startX := 0; startX < world.ChunkSizeX; startX += blockSizeXZ {
		for startZ := 0; startZ < world.ChunkSizeZ; startZ += blockSizeXZ {
			for startY := 0; startY < world.ChunkSizeY; startY += blockSizeY {
				dominant := dominantBlockInChunk(c, startX, startY, startZ, blockSizeXZ, blockSizeY)
				if dominant == world.BlockEmpty {
					continue
				}
				emitCell(c, &res, startX, startY, startZ, blockSizeXZ, blockSizeY, dominant)
			}
		}
	}
	return res
}

// dominantBlockInChunk counts non-EMPTY block types inside the region
// clipped to this chunk's bounds and returns the most frequent, with ties
// stable toward the lower enum index (strict '>' comparison, iterated in
// enum order).
func dominantBlockInChunk(c *world.Chunk, startX, startY, startZ, sizeXZ, sizeY int) world.BlockType {
	var counts [10]int
	endX := min(startX+sizeXZ, world.ChunkSizeX)
	endZ := min(startZ+sizeXZ, world.ChunkSizeZ)
	endY := min(startY+sizeY, world.ChunkSizeY)

	for z := startZ; z < endZ; z++ {
		for x := startX; x < endX; x++ {
			for y := startY; y < endY; y++ {
				t := c.GetLocalBlock(x, y, z)
				if t != world.BlockEmpty {
					counts[t]++
				}
			}
		}
	}
	best := world.BlockEmpty
	bestCount := 0
	for t := 1; t < 10; t++ {
		if counts[t] > bestCount {
			bestCount = counts[t]
			best = world.BlockType(t)
		}
	}
	return best
}

func emitCell(c *world.Chunk, res *Result, startX, startY, startZ, sizeXZ, sizeY int, block world.BlockType) {
	wx := float32(c.MinX + startX)
	wy := float32(startY)
	wz := float32(c.MinZ + startZ)

	for _, dir := range allDirections {
		if !shouldRenderFace(c, block, startX, startY, startZ, dir, sizeXZ, sizeY) {
			continue
		}
		corners := faceVertices[dir]
		normal := faceNormals[dir]
		uvs := uvForFace(tileFor(block, dir), dir)
		animated := float32(0)
		if block.IsAnimated() {
			animated = 1
		}

		var verts [4]world.Vertex
		for i, corner := range corners {
			verts[i] = world.Vertex{
				Position: [4]float32{
					wx + corner[0]*float32(sizeXZ),
					wy + corner[1]*float32(sizeY),
					wz + corner[2]*float32(sizeXZ),
					1,
				},
				Normal:   [4]float32{normal[0], normal[1], normal[2], 0},
				UV:       uvs[i],
				Animated: animated,
			}
		}

		if block.IsOpaque() {
			base := uint32(len(res.OpaqueVertices))
			res.OpaqueVertices = append(res.OpaqueVertices, verts[:]...)
			res.OpaqueIndices = append(res.OpaqueIndices, base, base+1, base+2, base, base+2, base+3)
		} else {
			base := uint32(len(res.TransparentVertices))
			res.TransparentVertices = append(res.TransparentVertices, verts[:]...)
			res.TransparentIndices = append(res.TransparentIndices, base, base+1, base+2, base, base+2, base+3)
		}
	}
}

// shouldRenderFace emits the face unless the bordering region's dominant
// block occludes it (opaque test for opaque sources, EMPTY test for
// transparent sources). A neighbor region that crosses a chunk boundary is
// resolved via the linked neighbor chunk; a lower-LOD neighbor always gets
// the face (seam complexity avoided); a missing neighbor chunk always gets
// the face.
func shouldRenderFace(c *world.Chunk, self world.BlockType, startX, startY, startZ int, dir world.Direction, sizeXZ, sizeY int) bool {
	nx, ny, nz := startX, startY, startZ
	switch dir {
	case world.DirXPOS:
		nx += sizeXZ
	case world.DirXNEG:
		nx -= sizeXZ
	case world.DirYPOS:
		ny += sizeY
	case world.DirYNEG:
		ny -= sizeY
	case world.DirZPOS:
		nz += sizeXZ
	case world.DirZNEG:
		nz -= sizeXZ
	}

	transparentSource := !self.IsOpaqueOrLava()

	inBoundsX := nx >= 0 && nx < world.ChunkSizeX
	inBoundsZ := nz >= 0 && nz < world.ChunkSizeZ
	inBoundsY := ny >= 0 && ny < world.ChunkSizeY

	if inBoundsX && inBoundsZ && inBoundsY {
		neighborDominant := dominantBlockInChunk(c, nx, ny, nz, sizeXZ, sizeY)
		return !blocksFace(neighborDominant, transparentSource)
	}

	// Vertical out-of-chunk: no Y neighbor chunk exists; always emit.
	if !inBoundsY {
		return true
	}

	// Horizontal out-of-chunk: resolve via linked neighbor chunk.
	var nd world.Direction
	var wrappedX, wrappedZ int
	switch {
	case nx < 0:
		nd, wrappedX, wrappedZ = world.DirXNEG, nx+world.ChunkSizeX, nz
	case nx >= world.ChunkSizeX:
		nd, wrappedX, wrappedZ = world.DirXPOS, nx-world.ChunkSizeX, nz
	case nz < 0:
		nd, wrappedX, wrappedZ = world.DirZNEG, nx, nz+world.ChunkSizeZ
	default:
		nd, wrappedX, wrappedZ = world.DirZPOS, nx, nz-world.ChunkSizeZ
	}

	neighbor := c.Neighbor(nd)
	if neighbor == nil {
		return true
	}
	if neighbor.LOD() < c.LOD() {
		// Neighbor has finer detail than us: always emit, avoiding
		// seam complexity between mismatched LODs.
		return true
	}
	neighborDominant := dominantBlockInChunk(neighbor, wrappedX, startY, wrappedZ, sizeXZ, sizeY)
	return !blocksFace(neighborDominant, transparentSource)
}

// blocksFace reports whether the neighbor region's dominant block occludes
// the face: for an opaque source, any opaque-or-lava neighbor blocks it; for
// a transparent source, any non-EMPTY neighbor blocks it.
func blocksFace(neighborDominant world.BlockType, transparentSource bool) bool {
	if transparentSource {
		return neighborDominant != world.BlockEmpty
	}
	return neighborDominant.IsOpaqueOrLava()
}
