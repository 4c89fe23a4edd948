//go:build ebiten

// Package render draws the playfield from a frame snapshot. It never
// touches match state beyond what the snapshot carries.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"pong/internal/game"
)

var (
	paddleColor = color.RGBA{0, 255, 255, 255}
	ballColor   = color.RGBA{255, 255, 255, 255}
	lineColor   = color.RGBA{128, 128, 128, 255}
)

const (
	centerLineWidth = 2
	centerLineDash  = 10
)

// Painter renders paddles, ball and the center line.
type Painter struct {
	pixel *ebiten.Image
}

// NewPainter constructs a painter and its shared 1×1 brush.
func NewPainter() *Painter {
	p := &Painter{pixel: ebiten.NewImage(1, 1)}
	p.pixel.Fill(color.White)
	return p
}

// Draw renders one frame. The playfield is only shown for states where a
// match exists; menu and settings screens are text-only.
func (p *Painter) Draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(color.Black)

	switch snap.State {
	case "in_game", "paused", "game_over":
	default:
		return
	}

	p.centerLine(screen, snap)
	p.rect(screen, snap.PlayerX, snap.PlayerY, snap.PaddleW, snap.PaddleH, paddleColor)
	p.rect(screen, snap.CPUX, snap.CPUY, snap.PaddleW, snap.PaddleH, paddleColor)
	p.rect(screen, snap.BallX, snap.BallY, snap.BallSize, snap.BallSize, ballColor)
}

func (p *Painter) centerLine(screen *ebiten.Image, snap game.Snapshot) {
	x := snap.FieldW/2 - centerLineWidth/2
	for y := 0.0; y < snap.FieldH; y += centerLineDash * 2 {
		p.rect(screen, x, y, centerLineWidth, centerLineDash, lineColor)
	}
}

func (p *Painter) rect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(p.pixel, op)
}
