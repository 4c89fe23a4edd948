//go:build !ebiten

package ui

import (
	"testing"

	"pong/internal/game"
)

// The headless build must still provide a usable HUD so importers compile
// without the ebiten tag.
func TestStubHUDIsHeadlessSafe(t *testing.T) {
	h := NewHUD()
	if h == nil {
		t.Fatalf("NewHUD returned nil")
	}
	h.Draw(nil, game.Snapshot{State: "menu"}, Settings{Points: 10, Difficulty: "medium"})
}
