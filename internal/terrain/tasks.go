package terrain

import (
	"github.com/pkg/errors"

	"mini-mc/internal/meshing"
	"mini-mc/internal/world"
)

// BlockTypeTask generates a chunk's block data off the main thread.
type BlockTypeTask struct {
	chunk  *world.Chunk
	gen    *world.Generator
	rivers world.RiverSet
}

func (t *BlockTypeTask) Key() any { return [3]any{"blocktype", t.chunk.MinX, t.chunk.MinZ} }

func (t *BlockTypeTask) Run() error {
	t.gen.Generate(t.chunk, t.rivers)
	return nil
}

// VBOTask builds a chunk's CPU-side mesh buffers off the main thread. The
// result is retrieved by the draw driver via ConsumeMeshData once
// HasVBOData is set.
type VBOTask struct {
	chunk *world.Chunk
}

func (t *VBOTask) Key() any { return [3]any{"vbo", t.chunk.MinX, t.chunk.MinZ} }

func (t *VBOTask) Run() (err error) {
	// ClaimMeshWork cleared needsUpdate when this task was scheduled; if the
	// build dies the claim must be handed back so a later sweep retries.
	defer func() {
		if r := recover(); r != nil {
			t.chunk.MarkDirty()
			err = errors.Errorf("mesh build panicked: %v", r)
		}
	}()
	result := meshing.BuildMesh(t.chunk)
	t.chunk.SetMeshData(result.OpaqueVertices, result.OpaqueIndices, result.TransparentVertices, result.TransparentIndices)
	return nil
}

// SaveLoadTask performs a zone save or load off the main thread.
type SaveLoadTask struct {
	run func() error
	key any
}

func (t *SaveLoadTask) Key() any  { return t.key }
func (t *SaveLoadTask) Run() error { return t.run() }
