//go:build !ebiten

// Package ui renders the text layer: scores, menu, settings, pause and
// game-over screens.
package ui

import "pong/internal/game"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD constructs a stub HUD.
func NewHUD() *HUD { return &HUD{} }

// Settings carries the not-yet-confirmed choices shown on the settings
// screen.
type Settings struct {
	Points     int
	Difficulty string
}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, game.Snapshot, Settings) {}
