//go:build !ebiten

package render

import (
	"testing"

	"pong/internal/game"
)

// The headless build must still provide a usable Painter so importers
// compile without the ebiten tag.
func TestStubPainterIsHeadlessSafe(t *testing.T) {
	p := NewPainter()
	if p == nil {
		t.Fatalf("NewPainter returned nil")
	}
	p.Draw(nil, game.Snapshot{State: "in_game"})
}
