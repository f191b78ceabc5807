// Package blocks draws every chunk the terrain sweep hands back: one
// opaque and one transparent VAO per chunk, rebuilt whenever the mesher produces fresh vertex data and
// drawn in two passes (opaque, then transparent) against a single 16x16
// terrain atlas.
package blocks

import (
	"mini-mc/internal/config"
	"mini-mc/internal/frustum"
	"mini-mc/internal/graphics"
	renderer "mini-mc/internal/graphics/renderer"
	"mini-mc/internal/profiling"
	"mini-mc/internal/terrain"
	"mini-mc/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// chunkBuffers is the GPU-side half of a world.Chunk: one VAO/VBO/EBO pair
// per buffer kind, rebuilt whenever ConsumeMeshData hands us new data.
type chunkBuffers struct {
	opaqueVAO, opaqueVBO, opaqueEBO          uint32
	opaqueCount                              int32
	transparentVAO, transparentVBO, transparentEBO uint32
	transparentCount                         int32
}

func (b *chunkBuffers) dispose() {
	if b.opaqueVAO != 0 {
		gl.DeleteVertexArrays(1, &b.opaqueVAO)
	}
	if b.opaqueVBO != 0 {
		gl.DeleteBuffers(1, &b.opaqueVBO)
	}
	if b.opaqueEBO != 0 {
		gl.DeleteBuffers(1, &b.opaqueEBO)
	}
	if b.transparentVAO != 0 {
		gl.DeleteVertexArrays(1, &b.transparentVAO)
	}
	if b.transparentVBO != 0 {
		gl.DeleteBuffers(1, &b.transparentVBO)
	}
	if b.transparentEBO != 0 {
		gl.DeleteBuffers(1, &b.transparentEBO)
	}
}

// Blocks implements the block-geometry rendering feature.
type Blocks struct {
	mainShader *graphics.Shader
	atlas      uint32

	buffers map[[2]int]*chunkBuffers

	// elapsed drives the shader's water/lava UV scroll.
	elapsed float64
}

func keyOf(c *world.Chunk) [2]int { return [2]int{c.MinX, c.MinZ} }

// NewBlocks creates a new blocks renderable.
func NewBlocks() *Blocks {
	return &Blocks{
		buffers: make(map[[2]int]*chunkBuffers),
	}
}

// Init initializes the blocks rendering system: shader and terrain atlas.
func (b *Blocks) Init() error {
	var err error
	b.mainShader, err = graphics.NewShader(MainVertShader, MainFragShader)
	if err != nil {
		return err
	}

	tex, _, _, err := graphics.LoadTexture(TerrainAtlas)
	if err != nil {
		return err
	}
	b.atlas = tex

	return nil
}

// Render draws every chunk the terrain sweep returns: upload any chunk
// with fresh mesh data, then draw all visible chunks in two passes.
func (b *Blocks) Render(ctx renderer.RenderContext) {
	if config.GetWireframeMode() {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	defer profiling.Track("renderer.renderBlocks")()

	camX, camY, camZ := float64(ctx.Player.Position[0]), float64(ctx.Player.Position[1]), float64(ctx.Player.Position[2])
	clip := ctx.Proj.Mul4(ctx.View)
	planes := frustum.Extract(clip)

	visible, needsUpload, dropped := ctx.Terrain.Sweep(camX, camY, camZ, planes)

	for _, c := range dropped {
		if bufs, ok := b.buffers[keyOf(c)]; ok {
			bufs.dispose()
			delete(b.buffers, keyOf(c))
		}
	}

	func() {
		defer profiling.Track("renderer.renderBlocks.upload")()
		for _, c := range needsUpload {
			b.upload(c)
		}
	}()

	b.mainShader.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.atlas)
	b.mainShader.SetInt("terrainAtlas", 0)
	b.mainShader.SetMatrix4("proj", &ctx.Proj[0])
	b.mainShader.SetMatrix4("view", &ctx.View[0])
	light := mgl32.Vec3{0.3, 1.0, 0.3}.Normalize()
	b.mainShader.SetVector3("lightDir", light.X(), light.Y(), light.Z())
	b.elapsed += ctx.DT
	b.mainShader.SetFloat("time", float32(b.elapsed))

	func() {
		defer profiling.Track("renderer.renderBlocks.opaque")()
		for _, item := range visible {
			bufs := b.buffers[keyOf(item.Chunk)]
			if bufs == nil || bufs.opaqueCount == 0 {
				continue
			}
			gl.BindVertexArray(bufs.opaqueVAO)
			gl.DrawElements(gl.TRIANGLES, bufs.opaqueCount, gl.UNSIGNED_INT, nil)
		}
	}()

	func() {
		defer profiling.Track("renderer.renderBlocks.transparent")()
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.DepthMask(false)
		// Two passes with opposite face culling: far (back-facing) water
		// surfaces first, then near ones, so the surface reads correctly
		// both from above and from underneath.
		gl.CullFace(gl.FRONT)
		b.drawTransparent(visible)
		gl.CullFace(gl.BACK)
		b.drawTransparent(visible)
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}()

	gl.BindVertexArray(0)
}

func (b *Blocks) drawTransparent(visible []terrain.DrawItem) {
	for _, item := range visible {
		bufs := b.buffers[keyOf(item.Chunk)]
		if bufs == nil || bufs.transparentCount == 0 {
			continue
		}
		gl.BindVertexArray(bufs.transparentVAO)
		gl.DrawElements(gl.TRIANGLES, bufs.transparentCount, gl.UNSIGNED_INT, nil)
	}
}

// upload consumes the chunk's pending mesh data and (re)builds its GPU
// buffers, creating them on first use.
func (b *Blocks) upload(c *world.Chunk) {
	key := keyOf(c)
	bufs := b.buffers[key]
	if bufs == nil {
		bufs = &chunkBuffers{}
		b.buffers[key] = bufs
	}

	opaqueV, opaqueI, transV, transI := c.ConsumeMeshData()

	uploadBuffer(&bufs.opaqueVAO, &bufs.opaqueVBO, &bufs.opaqueEBO, &bufs.opaqueCount, opaqueV, opaqueI)
	uploadBuffer(&bufs.transparentVAO, &bufs.transparentVBO, &bufs.transparentEBO, &bufs.transparentCount, transV, transI)
}

func uploadBuffer(vao, vbo, ebo *uint32, count *int32, verts []world.Vertex, indices []uint32) {
	if len(verts) == 0 || len(indices) == 0 {
		*count = 0
		return
	}

	if *vao == 0 {
		gl.GenVertexArrays(1, vao)
		gl.GenBuffers(1, vbo)
		gl.GenBuffers(1, ebo)
	}

	gl.BindVertexArray(*vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, *vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*vertexStride, gl.Ptr(verts), gl.DYNAMIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, *ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.DYNAMIC_DRAW)

	const stride = int32(vertexStride)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 4*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 8*4)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointerWithOffset(3, 2, gl.FLOAT, false, stride, 12*4)
	gl.EnableVertexAttribArray(4)
	gl.VertexAttribPointerWithOffset(4, 1, gl.FLOAT, false, stride, 14*4)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	*count = int32(len(indices))
}

// Dispose cleans up every chunk's GPU buffers.
func (b *Blocks) Dispose() {
	for _, bufs := range b.buffers {
		bufs.dispose()
	}
}

// SetViewport is a no-op: block rendering only depends on the shared
// view/projection matrices, not the screen's pixel dimensions.
func (b *Blocks) SetViewport(width, height int) {}

// Prune drops and disposes the GPU buffers of any chunk no longer present
// in store, called after the terrain evicts a zone.
func (b *Blocks) Prune(store *world.ChunkStore) {
	for key, bufs := range b.buffers {
		cx := key[0] / world.ChunkSizeX
		cz := key[1] / world.ChunkSizeZ
		if !store.HasChunk(cx, cz) {
			bufs.dispose()
			delete(b.buffers, key)
		}
	}
}
