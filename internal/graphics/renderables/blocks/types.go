package blocks

import "path/filepath"

const (
	ShadersDir = "assets/shaders/blocks"
)

var (
	MainVertShader = filepath.Join(ShadersDir, "main.vert")
	MainFragShader = filepath.Join(ShadersDir, "main.frag")
	TerrainAtlas   = filepath.Join("assets", "textures", "terrain.png")
)

// vertexStride is the byte size of world.Vertex: position(4)+normal(4)+
// color(4)+uv(2)+animated(1) float32s.
const vertexStride = 15 * 4
