// Package hud draws the always-on-screen overlay: player health, an
// optional profiling readout, and (toggled via V) a frame-timing dump. It
// owns its own internal UI renderer rather than sharing the main UI
// renderable passed to the renderer.
package hud

import (
	"mini-mc/internal/graphics"
	"mini-mc/internal/graphics/renderables/ui"
	renderer "mini-mc/internal/graphics/renderer"
	"mini-mc/internal/profiling"
	"path/filepath"
	"time"
)

// HUD implements HUD rendering: health bar and profiling overlay.
type HUD struct {
	fontAtlas    *graphics.FontAtlasInfo
	fontRenderer *graphics.FontRenderer
	uiRenderer   *ui.UI

	showProfiling bool

	width  float32
	height float32

	iconsTexture uint32

	frames       int
	lastFPSCheck time.Time
	currentFPS   int

	profilingStats ProfilingStats
}

// NewHUD creates a new HUD renderable.
func NewHUD() *HUD {
	return &HUD{
		width:  900,
		height: 600,
	}
}

// Init initializes the HUD rendering system.
func (h *HUD) Init() error {
	fontPath := filepath.Join("assets", "fonts", "OpenSans-Regular.ttf")
	atlas, err := graphics.BuildFontAtlas(fontPath, 48)
	if err != nil {
		return err
	}

	fontRenderer, err := graphics.NewFontRenderer(atlas)
	if err != nil {
		return err
	}

	uiRenderer := ui.NewUI()
	if err := uiRenderer.Init(); err != nil {
		return err
	}
	uiRenderer.SetFontRenderer(fontRenderer)

	h.fontAtlas = atlas
	h.fontRenderer = fontRenderer
	h.uiRenderer = uiRenderer

	iconsPath := filepath.Join("assets", "textures", "gui", "icons.png")
	tex, _, _, err := graphics.LoadTexture(iconsPath)
	if err != nil {
		return err
	}
	h.iconsTexture = tex

	h.lastFPSCheck = time.Now()
	return nil
}

// Render renders the HUD elements.
func (h *HUD) Render(ctx renderer.RenderContext) {
	h.frames++
	if time.Since(h.lastFPSCheck) >= time.Second {
		h.currentFPS = h.frames
		h.lastFPSCheck = time.Now()
		h.frames = 0
	}

	h.uiRenderer.BeginFrame()

	h.renderPlayerPosition(ctx.Player)
	h.renderFPS()
	h.renderHealth(ctx.Player)

	if h.showProfiling {
		func() {
			defer profiling.Track("renderer.hud")()
			h.RenderProfilingInfo()
		}()
	}

	h.uiRenderer.Flush()
}

// Dispose cleans up OpenGL resources.
func (h *HUD) Dispose() {
	h.uiRenderer.Dispose()
}

// SetViewport updates the HUD's tracked viewport dimensions.
func (h *HUD) SetViewport(width, height int) {
	h.width = float32(width)
	h.height = float32(height)
	h.uiRenderer.SetViewport(width, height)
}
