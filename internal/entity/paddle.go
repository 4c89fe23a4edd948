package entity

import "pong/internal/core"

// Paddle is one of the two vertical bats. Pos is the top-left corner; only
// the vertical velocity ever changes, the x coordinate is fixed for the
// whole match.
type Paddle struct {
	Pos core.Vec2
	W   float64
	H   float64
	VY  float64
}

// NewPaddle places a paddle with its center at centerY.
func NewPaddle(x, centerY, w, h float64) Paddle {
	return Paddle{Pos: core.Vec2{X: x, Y: centerY - h/2}, W: w, H: h}
}

// Rect returns the paddle's bounding rectangle.
func (p *Paddle) Rect() core.Rect {
	return core.Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.W, H: p.H}
}

// CenterY returns the vertical center of the paddle.
func (p *Paddle) CenterY() float64 {
	return p.Pos.Y + p.H/2
}

// Step advances the paddle by its velocity and clamps it into the field.
// A paddle pressed into a wall loses its velocity so it does not keep
// "pushing" once stopped.
func (p *Paddle) Step(dt, fieldH float64) {
	p.Pos = core.Advance(p.Pos, core.Vec2{Y: p.VY}, dt)
	maxY := fieldH - p.H
	p.Pos.Y = core.Clamp(p.Pos.Y, 0, maxY)
	if p.Pos.Y <= 0 || p.Pos.Y >= maxY {
		p.VY = 0
	}
}

// Recenter moves the paddle back to the vertical middle of the field and
// stops it.
func (p *Paddle) Recenter(fieldH float64) {
	p.Pos.Y = fieldH/2 - p.H/2
	p.VY = 0
}
