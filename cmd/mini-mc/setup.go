package main

import (
	"path/filepath"

	"mini-mc/internal/config"
	"mini-mc/internal/graphics"
	"mini-mc/internal/graphics/renderables/blocks"
	"mini-mc/internal/graphics/renderables/breaking"
	"mini-mc/internal/graphics/renderables/crosshair"
	"mini-mc/internal/graphics/renderables/direction"
	"mini-mc/internal/graphics/renderables/hud"
	"mini-mc/internal/graphics/renderables/ui"
	"mini-mc/internal/graphics/renderables/wireframe"
	renderer "mini-mc/internal/graphics/renderer"
	"mini-mc/internal/input"
	"mini-mc/internal/player"
	"mini-mc/internal/terrain"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	windowWidth  = 900
	windowHeight = 600
)

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "mini-mc", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, err
	}

	glfw.SwapInterval(0)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

// menuScreen owns the stand-alone UI + font pipeline used to draw the main
// menu and the in-game pause overlay, outside the terrain/player render
// pipeline so it can run before a world even exists.
type menuScreen struct {
	ui *ui.UI
}

func newMenuScreen() (*menuScreen, error) {
	uiRenderer := ui.NewUI()
	if err := uiRenderer.Init(); err != nil {
		return nil, err
	}

	fontPath := filepath.Join("assets", "fonts", "OpenSans-Regular.ttf")
	atlas, err := graphics.BuildFontAtlas(fontPath, 48)
	if err != nil {
		return nil, err
	}
	fontRenderer, err := graphics.NewFontRenderer(atlas)
	if err != nil {
		return nil, err
	}
	uiRenderer.SetFontRenderer(fontRenderer)

	return &menuScreen{ui: uiRenderer}, nil
}

func (m *menuScreen) setViewport(width, height int) {
	m.ui.SetViewport(width, height)
}

func (m *menuScreen) dispose() {
	m.ui.Dispose()
}

// gameSession bundles everything the running-world game loop touches.
type gameSession struct {
	terrain  *terrain.Terrain
	player   *player.Player
	input    *input.InputManager
	renderer *renderer.Renderer

	blocksRenderer *blocks.Blocks
	hudRenderer    *hud.HUD
}

// newGameSession loads (or generates) worldDir and spawns a player of the
// given mode at its surface height.
func newGameSession(worldDir string, mode player.GameMode) (*gameSession, error) {
	t, err := terrain.New(worldDir, config.GetDefaultSeed())
	if err != nil {
		return nil, err
	}

	blocksRenderer := blocks.NewBlocks()
	breakingRenderer := breaking.NewBreaking()
	wireframeRenderer := wireframe.NewWireframe()
	crosshairRenderer := crosshair.NewCrosshair()
	directionRenderer := direction.NewDirection()
	hudRenderer := hud.NewHUD()

	r, err := renderer.NewRenderer(
		blocksRenderer,
		breakingRenderer,
		wireframeRenderer,
		crosshairRenderer,
		directionRenderer,
		hudRenderer,
	)
	if err != nil {
		return nil, err
	}

	spawnX, spawnZ := 0, 0
	t.EnsureZonesAround(spawnX, spawnZ)
	t.Pool().Drain()

	groundY := t.Generator().HeightAt(spawnX, spawnZ)

	p := player.New(t.Store(), mode)
	p.Position = mgl32.Vec3{float32(spawnX) + 0.5, float32(groundY) + 1, float32(spawnZ) + 0.5}
	p.OnGround = true

	im := input.NewInputManager()

	return &gameSession{
		terrain:        t,
		player:         p,
		input:          im,
		renderer:       r,
		blocksRenderer: blocksRenderer,
		hudRenderer:    hudRenderer,
	}, nil
}

func (s *gameSession) dispose() {
	s.renderer.Dispose()
	s.terrain.Close()
}
