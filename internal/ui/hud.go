//go:build ebiten

// Package ui renders the text layer: scores, menu, settings, pause and
// game-over screens.
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"pong/internal/game"
)

var (
	titleColor = color.RGBA{0, 255, 255, 255}
	textColor  = color.RGBA{255, 255, 255, 255}
	hintColor  = color.RGBA{128, 128, 128, 255}
)

// HUD draws every non-playfield element from a snapshot plus the settings
// screen's pending selections.
type HUD struct {
	face font.Face
}

// NewHUD returns a HUD using the built-in bitmap face, so no font files
// ship with the game.
func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

// Settings carries the not-yet-confirmed choices shown on the settings
// screen.
type Settings struct {
	Points     int
	Difficulty string
}

// Draw renders the text layer for the current state.
func (h *HUD) Draw(screen *ebiten.Image, snap game.Snapshot, sel Settings) {
	switch snap.State {
	case "menu":
		h.centered(screen, "PONG", snap.FieldH/2-60, titleColor)
		h.centered(screen, "press enter to play", snap.FieldH/2, textColor)
		h.centered(screen, "w/s move - space pause - esc menu", snap.FieldH-80, hintColor)
	case "settings":
		h.centered(screen, "MATCH SETTINGS", snap.FieldH/2-80, titleColor)
		h.centered(screen, fmt.Sprintf("first to: %d  (up/down)", sel.Points), snap.FieldH/2-20, textColor)
		h.centered(screen, fmt.Sprintf("difficulty: %s  (left/right)", sel.Difficulty), snap.FieldH/2+10, textColor)
		h.centered(screen, "enter to start", snap.FieldH-80, hintColor)
	case "in_game":
		h.scores(screen, snap)
	case "paused":
		h.scores(screen, snap)
		h.centered(screen, "PAUSED", snap.FieldH/2, titleColor)
		h.centered(screen, "space to resume - esc for menu", snap.FieldH/2+30, hintColor)
	case "game_over":
		h.scores(screen, snap)
		if snap.PlayerWon {
			h.centered(screen, "YOU WIN!", snap.FieldH/2-20, titleColor)
		} else {
			h.centered(screen, "GAME OVER", snap.FieldH/2-20, titleColor)
		}
		h.centered(screen, "space to play again - esc for menu", snap.FieldH/2+30, hintColor)
	}
}

func (h *HUD) scores(screen *ebiten.Image, snap game.Snapshot) {
	const margin = 50
	player := fmt.Sprintf("%d", snap.PlayerScore)
	cpu := fmt.Sprintf("%d", snap.CPUScore)
	text.Draw(screen, player, h.face, margin, 50, textColor)
	w := text.BoundString(h.face, cpu).Dx()
	text.Draw(screen, cpu, h.face, int(snap.FieldW)-margin-w, 50, textColor)
}

func (h *HUD) centered(screen *ebiten.Image, s string, y float64, c color.Color) {
	w := text.BoundString(h.face, s).Dx()
	b := screen.Bounds()
	text.Draw(screen, s, h.face, (b.Dx()-w)/2, int(y), c)
}
