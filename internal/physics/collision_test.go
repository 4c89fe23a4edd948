package physics

import (
	"math"
	"testing"

	"pong/internal/core"
	"pong/internal/entity"
)

var testField = core.Rect{X: 0, Y: 0, W: 1280, H: 720}

func testParams() Params {
	return Params{
		SpinFactor:     300,
		SpeedIncrement: 1.05,
		MaxSpeed:       500,
		PushOut:        5,
	}
}

// paddles parked at the field edges, vertically centered.
func testPaddles() (player, cpu entity.Paddle) {
	player = entity.NewPaddle(30, 360, 20, 100)
	cpu = entity.NewPaddle(1280-30-20, 360, 20, 100)
	return
}

func ballAt(x, y float64, vel core.Vec2, speed float64) entity.Ball {
	b := entity.NewBall(15)
	b.Pos = core.Vec2{X: x, Y: y}
	b.Vel = vel
	b.Speed = speed
	return b
}

func TestWallReflectionExact(t *testing.T) {
	player, cpu := testPaddles()

	b := ballAt(600, -2, core.Vec2{X: 173, Y: -210}, 250)
	if out := Resolve(&b, &player, &cpu, testField, testParams()); out.Outcome != OutcomeNone {
		t.Fatalf("wall bounce must not score, got %v", out)
	}
	if b.Vel.X != 173 {
		t.Fatalf("horizontal velocity must be preserved, got %v", b.Vel.X)
	}
	if b.Vel.Y != 210 {
		t.Fatalf("vertical velocity must be negated exactly, got %v", b.Vel.Y)
	}
	if b.Pos.Y != 0 {
		t.Fatalf("ball must be clamped out of the wall, y=%v", b.Pos.Y)
	}

	b = ballAt(600, 710, core.Vec2{X: -100, Y: 180}, 250)
	Resolve(&b, &player, &cpu, testField, testParams())
	if b.Vel.Y != -180 || b.Pos.Y != 720-b.Size {
		t.Fatalf("bottom wall: vy=%v y=%v", b.Vel.Y, b.Pos.Y)
	}
}

func TestWallReflectionNotSticky(t *testing.T) {
	player, cpu := testPaddles()
	b := ballAt(600, 0, core.Vec2{X: 100, Y: 50}, 250)
	Resolve(&b, &player, &cpu, testField, testParams())
	if b.Vel.Y != 50 {
		t.Fatalf("ball already leaving the wall must not re-reflect, vy=%v", b.Vel.Y)
	}
}

func TestCenterHitNoSpin(t *testing.T) {
	player, cpu := testPaddles()
	// Ball center aligned with the player paddle center, moving left at 200.
	b := ballAt(40, 360-7.5, core.Vec2{X: -200, Y: 0}, 200)

	if out := Resolve(&b, &player, &cpu, testField, testParams()); out.Outcome != OutcomeNone {
		t.Fatalf("paddle hit must not score, got %v", out)
	}
	if b.Vel.X <= 0 {
		t.Fatalf("ball must reflect away from the left paddle, vx=%v", b.Vel.X)
	}
	if b.Vel.Y != 0 {
		t.Fatalf("center hit must carry no spin, vy=%v", b.Vel.Y)
	}
	if math.Abs(b.Speed-210) > 1e-9 {
		t.Fatalf("speed must grow 5%%: got %v, want 210", b.Speed)
	}
	if math.Abs(b.Vel.X-210) > 1e-9 {
		t.Fatalf("velocity magnitude must equal the speed scalar, vx=%v", b.Vel.X)
	}
}

func TestEdgeHitFullSpin(t *testing.T) {
	player, cpu := testPaddles()
	// Ball center at the paddle's top edge: offset -1. Speed high enough
	// that the full spin factor fits under the bounce-angle cap.
	b := ballAt(40, 310-7.5, core.Vec2{X: -450, Y: 0}, 450)

	Resolve(&b, &player, &cpu, testField, testParams())

	if b.Vel.Y != -300 {
		t.Fatalf("top-edge hit must impart -SpinFactor, vy=%v", b.Vel.Y)
	}
	mag := math.Hypot(b.Vel.X, b.Vel.Y)
	if math.Abs(mag-b.Speed) > 1e-9 {
		t.Fatalf("velocity magnitude %v must match speed %v", mag, b.Speed)
	}
}

func TestSpeedCapped(t *testing.T) {
	player, cpu := testPaddles()
	b := ballAt(40, 360-7.5, core.Vec2{X: -490, Y: 0}, 490)
	Resolve(&b, &player, &cpu, testField, testParams())
	if b.Speed != 500 {
		t.Fatalf("speed must cap at 500, got %v", b.Speed)
	}
}

func TestSpinCappedNearBaseSpeed(t *testing.T) {
	player, cpu := testPaddles()
	b := ballAt(40, 310-7.5, core.Vec2{X: -250, Y: 0}, 250)
	Resolve(&b, &player, &cpu, testField, testParams())

	// 250*1.05 = 262.5 < SpinFactor; the bounce-angle cap has to bite.
	limit := b.Speed * maxBounceSin
	if math.Abs(b.Vel.Y) > limit+1e-9 {
		t.Fatalf("spin must be capped to %v, vy=%v", limit, b.Vel.Y)
	}
	if b.Vel.X <= 0 {
		t.Fatalf("horizontal component must never degenerate, vx=%v", b.Vel.X)
	}
}

func TestPushOutPreventsRetrigger(t *testing.T) {
	player, cpu := testPaddles()
	b := ballAt(40, 360-7.5, core.Vec2{X: -200, Y: 0}, 200)

	Resolve(&b, &player, &cpu, testField, testParams())
	if b.Rect().Intersects(player.Rect()) {
		t.Fatal("ball must be pushed out of the paddle after resolution")
	}

	vel, speed := b.Vel, b.Speed
	Resolve(&b, &player, &cpu, testField, testParams())
	if b.Vel != vel || b.Speed != speed {
		t.Fatal("a resolved collision must not re-trigger on the next tick")
	}
}

func TestCPUPaddleReflectsLeft(t *testing.T) {
	player, cpu := testPaddles()
	b := ballAt(1280-30-20-10, 360-7.5, core.Vec2{X: 200, Y: 0}, 200)
	Resolve(&b, &player, &cpu, testField, testParams())
	if b.Vel.X >= 0 {
		t.Fatalf("ball must reflect away from the right paddle, vx=%v", b.Vel.X)
	}
	if b.Rect().Intersects(cpu.Rect()) {
		t.Fatal("ball must be pushed out of the cpu paddle")
	}
}

func TestOutOfBounds(t *testing.T) {
	player, cpu := testPaddles()

	b := ballAt(-30, 360, core.Vec2{X: -250, Y: 0}, 250)
	if out := Resolve(&b, &player, &cpu, testField, testParams()); out.Outcome != OutcomeCPUPoint {
		t.Fatalf("left exit must score for the cpu, got %v", out)
	}

	b = ballAt(1290, 360, core.Vec2{X: 250, Y: 0}, 250)
	if out := Resolve(&b, &player, &cpu, testField, testParams()); out.Outcome != OutcomePlayerPoint {
		t.Fatalf("right exit must score for the player, got %v", out)
	}

	// Partially out is still in play.
	b = ballAt(-5, 360, core.Vec2{X: -250, Y: 0}, 250)
	if out := Resolve(&b, &player, &cpu, testField, testParams()); out.Outcome != OutcomeNone {
		t.Fatalf("partially exited ball is still in play, got %v", out)
	}
}

func TestResultFlags(t *testing.T) {
	player, cpu := testPaddles()

	b := ballAt(600, -2, core.Vec2{X: 173, Y: -210}, 250)
	res := Resolve(&b, &player, &cpu, testField, testParams())
	if !res.WallHit || res.PaddleHit {
		t.Fatalf("wall bounce flags wrong: %+v", res)
	}

	b = ballAt(40, 360-7.5, core.Vec2{X: -200, Y: 0}, 200)
	res = Resolve(&b, &player, &cpu, testField, testParams())
	if !res.PaddleHit || res.WallHit {
		t.Fatalf("paddle bounce flags wrong: %+v", res)
	}
}
