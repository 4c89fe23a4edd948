//go:build !ebiten

// Package render draws the playfield from a frame snapshot. It never
// touches match state beyond what the snapshot carries.
package render

import "pong/internal/game"

// Painter is a no-op placeholder for headless builds.
type Painter struct{}

// NewPainter constructs a stub painter.
func NewPainter() *Painter { return &Painter{} }

// Draw is a no-op in the headless build.
func (p *Painter) Draw(any, game.Snapshot) {}
