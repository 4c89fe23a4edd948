package game

import (
	"pong/internal/ai"
	"pong/internal/core"
	"pong/internal/physics"
)

// Config controls the playfield dimensions, physics tunables and rules of a
// match. Values are pixels and pixels per second.
type Config struct {
	FieldW float64
	FieldH float64

	BallSize      float64
	BallBaseSpeed float64
	BallMaxSpeed  float64

	// SpeedIncrement is the per-paddle-hit speed multiplier.
	SpeedIncrement float64
	// SpinFactor is the vertical velocity imparted by an edge hit.
	SpinFactor float64
	// PushOut is the separation gap after a paddle collision.
	PushOut float64

	PaddleW      float64
	PaddleH      float64
	PaddleSpeed  float64
	PaddleMargin float64

	// AIJitterPx is the medium difficulty's perception error.
	AIJitterPx float64

	DefaultTargetPoints int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		FieldW: 1280,
		FieldH: 720,

		BallSize:      15,
		BallBaseSpeed: 250,
		BallMaxSpeed:  500,

		SpeedIncrement: 1.05,
		SpinFactor:     300,
		PushOut:        5,

		PaddleW:      20,
		PaddleH:      100,
		PaddleSpeed:  400,
		PaddleMargin: 30,

		AIJitterPx: 20,

		DefaultTargetPoints: 10,
	}
}

// Field returns the playfield rectangle.
func (c Config) Field() core.Rect {
	return core.Rect{W: c.FieldW, H: c.FieldH}
}

func (c Config) physicsParams() physics.Params {
	return physics.Params{
		SpinFactor:     c.SpinFactor,
		SpeedIncrement: c.SpeedIncrement,
		MaxSpeed:       c.BallMaxSpeed,
		PushOut:        c.PushOut,
	}
}

func (c Config) aiConfig() ai.Config {
	return ai.Config{
		FieldH:      c.FieldH,
		PaddleSpeed: c.PaddleSpeed,
		JitterPx:    c.AIJitterPx,
	}
}
