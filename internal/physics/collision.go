// Package physics resolves ball/wall and ball/paddle collisions for one
// fixed-timestep tick. It mutates ball velocity and speed only; scoring is
// reported back to the match controller as an Outcome, never handled here.
package physics

import (
	"math"

	"pong/internal/core"
	"pong/internal/entity"
)

// Outcome signals whether the tick ended with the ball leaving the field.
type Outcome int

const (
	// OutcomeNone means the rally continues.
	OutcomeNone Outcome = iota
	// OutcomePlayerPoint means the ball fully exited the right edge.
	OutcomePlayerPoint
	// OutcomeCPUPoint means the ball fully exited the left edge.
	OutcomeCPUPoint
)

// maxBounceSin caps the vertical share of a paddle bounce at sin(60°). Full
// spin cannot always coexist with the speed magnitude near base speed; the
// cap keeps the horizontal component from degenerating.
var maxBounceSin = math.Sin(math.Pi / 3)

// Params holds the tunables of the collision response.
type Params struct {
	// SpinFactor is the vertical velocity in px/s imparted by a hit at the
	// very edge of a paddle (offset ±1).
	SpinFactor float64
	// SpeedIncrement scales the ball speed on every paddle hit (1.05 = +5%).
	SpeedIncrement float64
	// MaxSpeed caps the ball speed in px/s.
	MaxSpeed float64
	// PushOut is the gap left between ball and paddle after separation.
	PushOut float64
}

// Result reports what one resolver pass did. The hit flags exist for the
// frontends (sound cues); only Outcome feeds back into match state.
type Result struct {
	Outcome   Outcome
	WallHit   bool
	PaddleHit bool
}

// Resolve runs one tick of collision handling in the order wall → paddle →
// out-of-bounds. The wall check runs first so a ball exiting through a
// corner reflects before the paddle overlap is evaluated. player guards the
// left edge, cpu the right.
func Resolve(b *entity.Ball, player, cpu *entity.Paddle, field core.Rect, p Params) Result {
	var res Result
	res.WallHit = resolveWalls(b, field)

	if b.Rect().Intersects(player.Rect()) {
		bounce(b, player, p, true)
		res.PaddleHit = true
	} else if b.Rect().Intersects(cpu.Rect()) {
		bounce(b, cpu, p, false)
		res.PaddleHit = true
	}

	switch {
	case b.Pos.X+b.Size < field.X:
		res.Outcome = OutcomeCPUPoint
	case b.Pos.X > field.Right():
		res.Outcome = OutcomePlayerPoint
	}
	return res
}

// resolveWalls reflects the vertical velocity off the top and bottom edges
// and clamps the ball out of the wall. Only a ball moving into the wall is
// reflected, so an already-resolved bounce is not undone next tick.
func resolveWalls(b *entity.Ball, field core.Rect) bool {
	if b.Pos.Y <= field.Y && b.Vel.Y < 0 {
		b.Pos.Y = field.Y
		b.Vel.Y = -b.Vel.Y
		return true
	}
	if b.Pos.Y+b.Size >= field.Bottom() && b.Vel.Y > 0 {
		b.Pos.Y = field.Bottom() - b.Size
		b.Vel.Y = -b.Vel.Y
		return true
	}
	return false
}

// bounce applies the paddle collision response: spin from the hit offset,
// 5% speed growth capped at MaxSpeed, horizontal direction away from the
// paddle with the overall magnitude equal to the ball speed, and a push-out
// so the same overlap cannot re-trigger next tick.
func bounce(b *entity.Ball, paddle *entity.Paddle, p Params, fromLeft bool) {
	offset := (b.CenterY() - paddle.CenterY()) / (paddle.H / 2)
	offset = core.Clamp(offset, -1, 1)

	b.Speed = math.Min(b.Speed*p.SpeedIncrement, p.MaxSpeed)

	vy := offset * p.SpinFactor
	limit := b.Speed * maxBounceSin
	vy = core.Clamp(vy, -limit, limit)

	vx := math.Sqrt(b.Speed*b.Speed - vy*vy)
	if !fromLeft {
		vx = -vx
	}
	b.Vel = core.Vec2{X: vx, Y: vy}

	if fromLeft {
		b.Pos.X = paddle.Rect().Right() + p.PushOut
	} else {
		b.Pos.X = paddle.Rect().X - b.Size - p.PushOut
	}
}
