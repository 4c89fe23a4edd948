package ai

import "pong/internal/entity"

// easy tracks the ball's current height at a generous speed handicap.
type easy struct {
	cfg Config
}

func (e *easy) Decide(ball entity.Ball, paddle entity.Paddle, dt float64) float64 {
	speedCap := e.cfg.PaddleSpeed * easySpeedFactor
	return seek(paddle, ball.CenterY(), speedCap, dt, e.cfg.FieldH)
}
