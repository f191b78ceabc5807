package main

import (
	"mini-mc/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// wireCallbacks hooks raw GLFW window events into the shared InputManager
// and the active render target's viewport, plus a refresh callback so a
// frame still gets drawn while the window is being interactively resized.
func wireCallbacks(window *glfw.Window, im *input.InputManager, loop *GameLoop) {
	im.SetKeyCallback(window)

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		loop.onResize(width, height)
	})
	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		loop.onResize(width, height)
	})
	window.SetRefreshCallback(func(w *glfw.Window) {
		loop.RefreshRender()
	})
}
