// Package ai implements the computer opponent. One Strategy is selected per
// match by difficulty and never swapped mid-game.
package ai

import (
	"fmt"
	"strings"

	"pong/internal/core"
	"pong/internal/entity"
)

// Difficulty selects which strategy drives the CPU paddle.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// String returns the lowercase difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts a flag value into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("unknown difficulty %q", s)
	}
}

// Speed caps as a fraction of the paddle's maximum speed, per difficulty.
const (
	easySpeedFactor   = 0.60
	mediumSpeedFactor = 0.80
	hardSpeedFactor   = 0.95

	// driftBackFactor slows Hard's return to center while the ball travels
	// away from it.
	driftBackFactor = 0.5
)

// Config carries the playfield facts a strategy needs.
type Config struct {
	FieldH      float64
	PaddleSpeed float64
	JitterPx    float64
}

// Strategy produces a target vertical velocity for the CPU paddle, one
// decision per tick.
type Strategy interface {
	Decide(ball entity.Ball, paddle entity.Paddle, dt float64) float64
}

// New returns the strategy for the given difficulty. The RNG is shared with
// the rest of the game and injected so a seeded generator drives tests.
func New(d Difficulty, cfg Config, rng *core.RNG) Strategy {
	switch d {
	case Medium:
		return &medium{cfg: cfg, rng: rng}
	case Hard:
		return &hard{cfg: cfg}
	default:
		return &easy{cfg: cfg}
	}
}

// seek returns the velocity that moves the paddle center toward targetY,
// capped at maxSpeed and additionally limited so one dt step cannot carry
// the paddle outside the field.
func seek(paddle entity.Paddle, targetY, maxSpeed, dt, fieldH float64) float64 {
	if dt <= 0 {
		return 0
	}
	v := core.Clamp((targetY-paddle.CenterY())/dt, -maxSpeed, maxSpeed)

	lo := (0 - paddle.Pos.Y) / dt
	hi := (fieldH - paddle.H - paddle.Pos.Y) / dt
	return core.Clamp(v, lo, hi)
}
