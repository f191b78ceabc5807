// Package menu implements the two full-screen menus: the main menu (pick a
// game mode, which opens or creates the world) and the in-game pause menu
// with its render settings.
package menu

// Action is what a menu's per-frame Update asks the game loop to do.
type Action int

const (
	ActionNone Action = iota
	ActionStartSurvival
	ActionStartCreative
	ActionResume
	ActionQuitToMenu
	ActionQuitGame
)
