package main

import (
	"log"
	"time"

	"mini-mc/internal/config"
	"mini-mc/internal/input"
	"mini-mc/internal/player"
	"mini-mc/internal/ui/menu"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type gameState int

const (
	stateMainMenu gameState = iota
	statePlaying
	statePaused
)

// GameLoop drives the top-level state machine (main menu, playing, paused)
// and paces frames with an FPSLimiter.
type GameLoop struct {
	window     *glfw.Window
	menuScreen *menuScreen
	input      *input.InputManager
	fps        *FPSLimiter

	mainMenu  *menu.MainMenu
	pauseMenu *menu.PauseMenu
	session   *gameSession

	state         gameState
	lastTime      float64
	sinceAutosave time.Duration
}

// NewGameLoop builds a loop parked in the main menu; no world is loaded
// until the player picks a game mode.
func NewGameLoop(window *glfw.Window, ms *menuScreen, im *input.InputManager) *GameLoop {
	return &GameLoop{
		window:     window,
		menuScreen: ms,
		input:      im,
		fps:        NewFPSLimiter(),
		mainMenu:   menu.NewMainMenu(),
		state:      stateMainMenu,
	}
}

// Run blocks until the window is closed, tearing down whatever session and
// UI state is live at that point.
func (g *GameLoop) Run() {
	g.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	g.lastTime = glfw.GetTime()

	for !g.window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - g.lastTime
		g.lastTime = now

		g.tick(dt)

		g.window.SwapBuffers()
		glfw.PollEvents()
		g.input.PostUpdate()
		g.fps.Wait(g.state != statePlaying)
	}

	if g.session != nil {
		g.quitToMenu()
	}
	g.menuScreen.dispose()
}

func (g *GameLoop) tick(dt float64) {
	justClickedLeft := g.input.JustPressed(input.ActionMouseLeft)

	switch g.state {
	case stateMainMenu:
		gl.ClearColor(0.1, 0.1, 0.1, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		g.menuScreen.ui.BeginFrame()
		action := g.mainMenu.Update(g.window, justClickedLeft)
		g.mainMenu.Render(g.menuScreen.ui, g.window)
		g.menuScreen.ui.Flush()
		g.applyMenuAction(action)

	case statePlaying:
		g.tickPlaying(dt)
		if g.input.JustPressed(input.ActionPause) {
			g.enterPause()
		}

	case statePaused:
		g.session.renderer.Render(g.session.terrain, g.session.player, dt)
		g.menuScreen.ui.BeginFrame()
		action := g.pauseMenu.Update(g.window, justClickedLeft)
		g.pauseMenu.Render(g.menuScreen.ui, g.window)
		g.menuScreen.ui.Flush()
		g.applyPauseAction(action)
	}
}

func (g *GameLoop) tickPlaying(dt float64) {
	s := g.session
	im := g.input

	playerStart := time.Now()
	width, height := g.window.GetSize()
	s.player.UpdateMouseLook(g.window, width, height)
	s.player.UpdateKeyLook(dt, im)
	s.player.UpdatePosition(dt, im)
	s.player.UpdateHeadBob()
	s.player.UpdateCameraBob()
	s.player.UpdateRenderArm(dt)
	s.player.UpdateHoveredBlock()
	s.player.UpdateMining(dt, im.JustPressed(input.ActionMouseLeft))
	if im.JustPressed(input.ActionMouseRight) {
		s.player.HandleMouseButton(glfw.MouseButtonRight, glfw.Press)
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		s.hudRenderer.ToggleProfiling()
	}
	playerDur := time.Since(playerStart)

	worldStart := time.Now()
	centerX, centerZ := int(s.player.Position[0]), int(s.player.Position[2])
	s.terrain.EnsureZonesAround(centerX, centerZ)
	if err := s.terrain.EvictFarZones(centerX, centerZ); err != nil {
		log.Printf("game: evict zones: %v", err)
	}
	worldDur := time.Since(worldStart)

	pruneStart := time.Now()
	s.blocksRenderer.Prune(s.terrain.Store())
	pruneDur := time.Since(pruneStart)

	renderStart := time.Now()
	s.renderer.Render(s.terrain, s.player, dt)
	renderDur := time.Since(renderStart)

	s.hudRenderer.ProfilingSetBreakdown(playerDur, worldDur, 0, 0, pruneDur)
	s.hudRenderer.ProfilingSetLastUpdateDuration(playerDur + worldDur + pruneDur)
	s.hudRenderer.ProfilingSetRenderDuration(renderDur)
	s.hudRenderer.ProfilingSetLastTotalFrameDuration(playerDur + worldDur + pruneDur + renderDur)

	g.sinceAutosave += time.Duration(dt * float64(time.Second))
	manualSave := im.IsActive(input.ActionModControl) && im.JustPressed(input.ActionSaveWorld)
	if manualSave || g.sinceAutosave >= time.Duration(config.GetAutosaveSeconds())*time.Second {
		g.sinceAutosave = 0
		if err := s.terrain.SaveZonesAround(centerX, centerZ); err != nil {
			log.Printf("game: save failed: %v", err)
		}
	}
}

func (g *GameLoop) applyMenuAction(action menu.Action) {
	switch action {
	case menu.ActionStartSurvival:
		g.startSession(player.GameModeSurvival)
	case menu.ActionStartCreative:
		g.startSession(player.GameModeCreative)
	}
}

func (g *GameLoop) applyPauseAction(action menu.Action) {
	switch action {
	case menu.ActionResume:
		g.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		g.state = statePlaying
	case menu.ActionQuitToMenu:
		g.quitToMenu()
	}
}

func (g *GameLoop) startSession(mode player.GameMode) {
	session, err := newGameSession(config.GetWorldDir(), mode)
	if err != nil {
		log.Printf("game: failed to start session: %v", err)
		return
	}
	width, height := g.window.GetSize()
	session.renderer.UpdateViewport(width, height)
	session.hudRenderer.SetViewport(width, height)

	g.session = session
	g.sinceAutosave = 0
	g.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	g.state = statePlaying
}

func (g *GameLoop) enterPause() {
	g.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	g.pauseMenu = menu.NewPauseMenu()
	g.state = statePaused
}

func (g *GameLoop) quitToMenu() {
	s := g.session
	centerX, centerZ := int(s.player.Position[0]), int(s.player.Position[2])
	if err := s.terrain.SaveZonesAround(centerX, centerZ); err != nil {
		log.Printf("game: save on quit failed: %v", err)
	}
	s.dispose()

	g.session = nil
	g.pauseMenu = nil
	g.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	g.state = stateMainMenu
}

// onResize propagates a window resize to whatever is currently rendering.
func (g *GameLoop) onResize(width, height int) {
	if g.session != nil {
		g.session.renderer.UpdateViewport(width, height)
		g.session.hudRenderer.SetViewport(width, height)
	}
	g.menuScreen.setViewport(width, height)
}

// RefreshRender redraws a single frame immediately, used while the window
// is being interactively resized and GLFW withholds regular PollEvents
// delivery until the drag ends.
func (g *GameLoop) RefreshRender() {
	g.tick(0)
	g.window.SwapBuffers()
}
