package config

import "sync"

// RenderSettings holds render configuration
type RenderSettings struct {
	mu             sync.RWMutex
	renderDistance int  // in chunks; 16 chunks = the 256-block drop distance
	fpsLimit       int  // 0 means uncapped, otherwise target FPS
	wireframeMode  bool // wireframe rendering mode
	viewBobbing    bool // view bobbing animation
}

var globalRenderSettings = &RenderSettings{
	renderDistance: 16,  // full drop distance by default
	fpsLimit:       180, // default FPS cap
	wireframeMode:  false,
	viewBobbing:    true, // default enabled
}

// GetRenderDistance returns the current render distance in chunks
func GetRenderDistance() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.renderDistance
}

// SetRenderDistance sets the render distance in chunks. The ceiling is 16:
// chunks past 256 blocks are dropped by the terrain sweep regardless, so a
// larger setting would never draw anything extra.
func SetRenderDistance(distance int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if distance < 4 {
		distance = 4
	}
	if distance > 16 {
		distance = 16
	}

	globalRenderSettings.renderDistance = distance
}

// GetFPSLimit returns the configured FPS cap (0 means uncapped)
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the FPS cap; 0 disables the cap (uncapped)
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	if limit > 240 {
		limit = 240
	}
	globalRenderSettings.fpsLimit = limit
}

// GetWireframeMode returns whether wireframe mode is enabled
func GetWireframeMode() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.wireframeMode
}

// SetWireframeMode sets the wireframe mode
func SetWireframeMode(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.wireframeMode = enabled
}

// GetViewBobbing returns whether view bobbing is enabled
func GetViewBobbing() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.viewBobbing
}

// SetViewBobbing sets the view bobbing setting
func SetViewBobbing(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.viewBobbing = enabled
}
