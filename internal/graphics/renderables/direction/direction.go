// Package direction draws the compass needle at the bottom of the screen:
// an arrow rotated to the player's yaw plus the current cardinal letter,
// both rendered as line strips in screen space.
package direction

import (
	"mini-mc/internal/graphics"
	renderer "mini-mc/internal/graphics/renderer"
	"mini-mc/internal/player"
	"mini-mc/internal/profiling"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const ShadersDir = "assets/shaders/direction"

var (
	DirectionVertShader = filepath.Join(ShadersDir, "direction.vert")
	DirectionFragShader = filepath.Join(ShadersDir, "direction.frag")
)

// arrowVertices is the needle shape: a rectangular body (drawn as a line
// loop) followed by a triangular head.
var arrowVertices = []float32{
	-0.01, -0.08,
	0.01, -0.08,
	0.01, -0.02,
	-0.01, -0.02,

	-0.03, -0.02,
	0.03, -0.02,
	0.0, 0.02,
}

// cardinalLetters holds the line-segment glyph for each of the four
// cardinal directions, drawn with gl.LINES.
var cardinalLetters = map[string][]float32{
	"N": {
		-0.02, -0.02, -0.02, 0.02,
		-0.02, 0.02, 0.02, -0.02,
		0.02, -0.02, 0.02, 0.02,
	},
	"E": {
		-0.02, -0.02, -0.02, 0.02,
		-0.02, 0.02, 0.02, 0.02,
		-0.02, 0.0, 0.01, 0.0,
		-0.02, -0.02, 0.02, -0.02,
	},
	"S": {
		0.02, 0.02, -0.02, 0.02,
		-0.02, 0.02, -0.02, 0.0,
		-0.02, 0.0, 0.02, 0.0,
		0.02, 0.0, 0.02, -0.02,
		0.02, -0.02, -0.02, -0.02,
	},
	"W": {
		-0.02, 0.02, -0.02, -0.02,
		-0.02, -0.02, -0.01, 0.0,
		-0.01, 0.0, 0.01, -0.02,
		0.01, -0.02, 0.02, 0.0,
		0.02, 0.0, 0.02, 0.02,
	},
}

// cardinalOrder names the four compass letters in yaw order, starting at
// the east boundary, so cardinalFor can index it by yaw sector.
var cardinalOrder = [4]string{"E", "N", "W", "S"}

// Direction implements the compass-needle HUD element.
type Direction struct {
	shader    *graphics.Shader
	arrowVAO  uint32
	arrowVBO  uint32
	letterVAO uint32
	letterVBO uint32
}

// NewDirection creates a new compass-needle renderable.
func NewDirection() *Direction {
	return &Direction{}
}

func (d *Direction) Init() error {
	var err error
	d.shader, err = graphics.NewShader(DirectionVertShader, DirectionFragShader)
	if err != nil {
		return err
	}

	d.arrowVAO, d.arrowVBO = newLineVAO(arrowVertices, gl.STATIC_DRAW)
	d.letterVAO, d.letterVBO = newLineVAO(nil, gl.DYNAMIC_DRAW)

	return nil
}

func newLineVAO(initial []float32, usage uint32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(initial) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(initial)*4, gl.Ptr(initial), usage)
	}

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	return vao, vbo
}

func (d *Direction) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderDirection")()
	d.shader.Use()
	d.shader.SetFloat("aspectRatio", ctx.Camera.AspectRatio)
	d.draw(ctx.Player)
}

func (d *Direction) Dispose() {
	if d.arrowVAO != 0 {
		gl.DeleteVertexArrays(1, &d.arrowVAO)
	}
	if d.arrowVBO != 0 {
		gl.DeleteBuffers(1, &d.arrowVBO)
	}
	if d.letterVAO != 0 {
		gl.DeleteVertexArrays(1, &d.letterVAO)
	}
	if d.letterVBO != 0 {
		gl.DeleteBuffers(1, &d.letterVBO)
	}
}

// SetViewport is a no-op: the compass is laid out in NDC, corrected only by
// the camera's aspect ratio already passed through the shader.
func (d *Direction) SetViewport(width, height int) {}

func cardinalFor(yawDeg float64) string {
	normalized := float64(int(yawDeg+360) % 360)
	sector := int((normalized+45)/90) % 4
	return cardinalOrder[sector]
}

func (d *Direction) drawLetter(letter string) {
	vertices, ok := cardinalLetters[letter]
	if !ok {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, d.letterVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)

	gl.BindVertexArray(d.letterVAO)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, int32(len(vertices)/2))
}

func (d *Direction) draw(p *player.Player) {
	d.shader.SetVector3("directionColor", 1.0, 0.0, 0.0)

	d.shader.SetFloat("positionX", 0.0)
	d.shader.SetFloat("positionY", -0.85)

	// Yaw 0 faces +X (the "E" sector of cardinalFor); the arrow points up
	// at rest, and the shader rotation is yaw + 90 degrees.
	yawRadians := float32(mgl32.DegToRad(float32(p.CamYaw + 90.0)))
	d.shader.SetFloat("rotation", yawRadians)

	gl.BindVertexArray(d.arrowVAO)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINE_LOOP, 0, 4)
	gl.DrawArrays(gl.LINE_LOOP, 4, 3)

	d.shader.SetFloat("positionX", 0.0)
	d.shader.SetFloat("positionY", -0.75)
	d.shader.SetFloat("rotation", 0.0)

	d.drawLetter(cardinalFor(p.CamYaw))
}
