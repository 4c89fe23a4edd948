package ai

import (
	"pong/internal/core"
	"pong/internal/entity"
)

// medium tracks the ball like easy but through a noisy perception: every
// decision re-samples an offset in [-JitterPx, +JitterPx] on the perceived
// ball height, so it wobbles instead of locking on.
type medium struct {
	cfg Config
	rng *core.RNG
}

func (m *medium) Decide(ball entity.Ball, paddle entity.Paddle, dt float64) float64 {
	speedCap := m.cfg.PaddleSpeed * mediumSpeedFactor
	perceived := ball.CenterY() + m.rng.FloatN(m.cfg.JitterPx)
	return seek(paddle, perceived, speedCap, dt, m.cfg.FieldH)
}
