package main

import (
	"log"
	"runtime"

	"mini-mc/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW must run on the OS thread that created the window.
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		log.Fatalf("window setup: %v", err)
	}

	ms, err := newMenuScreen()
	if err != nil {
		log.Fatalf("menu screen setup: %v", err)
	}

	im := input.NewInputManager()
	loop := NewGameLoop(window, ms, im)
	wireCallbacks(window, im, loop)

	loop.Run()
}
