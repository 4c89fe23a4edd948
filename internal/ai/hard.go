package ai

import (
	"math"

	"pong/internal/entity"
)

// hard projects where the ball will cross the CPU paddle's plane and camps
// the intercept. The projection is closed-form: straight-line travel with
// wall bounces folded into a mirrored repeating interval, no stepping.
// While the ball moves away it drifts back toward the field's middle.
type hard struct {
	cfg Config
}

func (h *hard) Decide(ball entity.Ball, paddle entity.Paddle, dt float64) float64 {
	speedCap := h.cfg.PaddleSpeed * hardSpeedFactor

	// The CPU guards the right side; a ball with vx <= 0 is outbound.
	if ball.Vel.X <= 0 {
		return seek(paddle, h.cfg.FieldH/2, speedCap*driftBackFactor, dt, h.cfg.FieldH)
	}

	dist := paddle.Pos.X - (ball.Pos.X + ball.Size)
	if dist < 0 {
		dist = 0
	}
	raw := ball.CenterY() + ball.Vel.Y*(dist/ball.Vel.X)
	target := foldY(raw, h.cfg.FieldH)
	return seek(paddle, target, speedCap, dt, h.cfg.FieldH)
}

// foldY maps an unbounded straight-line y onto [0, h] as if the interval
// were mirrored end to end, which is exactly what repeated top/bottom wall
// reflections do to the ball's height.
func foldY(y, h float64) float64 {
	if h <= 0 {
		return y
	}
	m := math.Mod(y, 2*h)
	if m < 0 {
		m += 2 * h
	}
	if m > h {
		m = 2*h - m
	}
	return m
}
