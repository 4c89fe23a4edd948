package entity

import (
	"math"

	"pong/internal/core"
)

// maxLaunchAngle bounds the serve direction to ±60° off horizontal so a
// fresh rally never starts as a near-vertical wall bounce loop.
const maxLaunchAngle = math.Pi / 3

// Ball is the puck. Pos is the top-left corner of its square bounding box.
// Speed is the scalar magnitude the velocity is kept at; the collision
// resolver grows it on paddle hits and Reset restores the base value.
type Ball struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Size  float64
	Speed float64
}

// NewBall returns a stationary ball of the given size. Call Reset to place
// and launch it.
func NewBall(size float64) Ball {
	return Ball{Size: size}
}

// Rect returns the ball's bounding rectangle.
func (b *Ball) Rect() core.Rect {
	return core.Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Size, H: b.Size}
}

// CenterY returns the vertical center of the ball.
func (b *Ball) CenterY() float64 {
	return b.Pos.Y + b.Size/2
}

// Step advances the ball by its velocity. Wall reflection and paddle
// response are the collision resolver's job, so the position is not
// clamped here.
func (b *Ball) Step(dt float64) {
	b.Pos = core.Advance(b.Pos, b.Vel, dt)
}

// Reset centers the ball in the field and launches it at baseSpeed toward
// the right (toLeft=false) or left (toLeft=true) side, at a random angle
// drawn from the provided generator.
func (b *Ball) Reset(fieldW, fieldH, baseSpeed float64, rng *core.RNG, toLeft bool) {
	b.Pos = core.Vec2{X: fieldW/2 - b.Size/2, Y: fieldH/2 - b.Size/2}
	b.Speed = baseSpeed

	angle := rng.FloatN(maxLaunchAngle)
	vx := baseSpeed * math.Cos(angle)
	if toLeft {
		vx = -vx
	}
	b.Vel = core.Vec2{X: vx, Y: baseSpeed * math.Sin(angle)}
}
