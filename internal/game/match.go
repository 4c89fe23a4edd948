// Package game owns the match: entities, score, the state machine, and the
// fixed-timestep tick that strings kinematics, AI, collision resolution and
// scoring together. Frontends talk to it through commands, Step and
// Snapshot; it never sees a renderer.
package game

import (
	"pong/internal/ai"
	"pong/internal/core"
	"pong/internal/entity"
	"pong/internal/physics"
)

// Input carries the player-side signals sampled once per frame.
type Input struct {
	// PaddleVY is the requested player paddle velocity in px/s, derived
	// from held keys. It is clamped to the paddle's maximum speed.
	PaddleVY float64
}

// TickEvents reports what the last Step did, for sound and UI cues.
type TickEvents struct {
	WallHit      bool
	PaddleHit    bool
	PlayerScored bool
	CPUScored    bool
	GameOver     bool
}

// Match is the single mutator of ball, paddles and score. It is not safe
// for concurrent use; the game loop drives it from one goroutine.
type Match struct {
	cfg Config
	rng *core.RNG

	state State
	tick  uint64

	player entity.Paddle
	cpu    entity.Paddle
	ball   entity.Ball
	score  entity.Score

	difficulty ai.Difficulty
	strategy   ai.Strategy
}

// NewMatch creates a match sitting at the menu. The RNG seeds the serve
// directions and the medium AI's jitter for the whole process lifetime.
func NewMatch(cfg Config, rng *core.RNG) *Match {
	m := &Match{
		cfg:   cfg,
		rng:   rng,
		state: StateMenu,
		score: entity.NewScore(cfg.DefaultTargetPoints),
	}
	m.resetEntities()
	return m
}

// State returns the current state-machine tag.
func (m *Match) State() State { return m.state }

// transition moves to the target state if the edge is legal.
func (m *Match) transition(to State) bool {
	if !canTransition(m.state, to) {
		return false
	}
	m.state = to
	return true
}

// OpenSettings enters the settings screen from the menu or the game-over
// screen.
func (m *Match) OpenSettings() bool {
	return m.transition(StateSettings)
}

// Begin starts a match with the chosen rules. Out-of-range target points
// are rejected and the match stays in settings.
func (m *Match) Begin(targetPoints int, d ai.Difficulty) bool {
	if m.state != StateSettings {
		return false
	}
	if targetPoints < entity.MinTargetPoints || targetPoints > entity.MaxTargetPoints {
		return false
	}
	m.score = entity.NewScore(targetPoints)
	m.difficulty = d
	m.strategy = ai.New(d, m.cfg.aiConfig(), m.rng)
	m.resetEntities()
	return m.transition(StateInGame)
}

// PlayAgain restarts from the game-over screen with the same rules.
func (m *Match) PlayAgain() bool {
	if m.state != StateGameOver {
		return false
	}
	m.score = entity.NewScore(m.score.Target)
	m.resetEntities()
	return m.transition(StateInGame)
}

// TogglePause flips between playing and paused.
func (m *Match) TogglePause() bool {
	switch m.state {
	case StateInGame:
		return m.transition(StatePaused)
	case StatePaused:
		return m.transition(StateInGame)
	default:
		return false
	}
}

// ToMenu abandons the current match. All match state is in memory only, so
// leaving discards it.
func (m *Match) ToMenu() bool {
	return m.transition(StateMenu)
}

// resetEntities places both paddles at the vertical center and serves the
// ball from the middle toward a random side.
func (m *Match) resetEntities() {
	c := m.cfg
	m.player = entity.NewPaddle(c.PaddleMargin, c.FieldH/2, c.PaddleW, c.PaddleH)
	m.cpu = entity.NewPaddle(c.FieldW-c.PaddleMargin-c.PaddleW, c.FieldH/2, c.PaddleW, c.PaddleH)
	m.ball = entity.NewBall(c.BallSize)
	if m.rng != nil {
		m.ball.Reset(c.FieldW, c.FieldH, c.BallBaseSpeed, m.rng, m.rng.Sign() < 0)
	}
}

// Step advances the simulation by one fixed tick. Outside IN_GAME it is a
// pure no-op: entities, score and tick counter are untouched, so pausing
// freezes the world while rendering continues.
func (m *Match) Step(in Input, dt float64) TickEvents {
	var ev TickEvents
	if m.state != StateInGame {
		return ev
	}
	m.tick++

	m.player.VY = core.Clamp(in.PaddleVY, -m.cfg.PaddleSpeed, m.cfg.PaddleSpeed)
	m.player.Step(dt, m.cfg.FieldH)

	m.cpu.VY = m.strategy.Decide(m.ball, m.cpu, dt)
	m.cpu.Step(dt, m.cfg.FieldH)

	m.ball.Step(dt)

	res := physics.Resolve(&m.ball, &m.player, &m.cpu, m.cfg.Field(), m.cfg.physicsParams())
	ev.WallHit = res.WallHit
	ev.PaddleHit = res.PaddleHit

	switch res.Outcome {
	case physics.OutcomePlayerPoint:
		m.score.Player++
		ev.PlayerScored = true
		m.serve(true)
	case physics.OutcomeCPUPoint:
		m.score.CPU++
		ev.CPUScored = true
		m.serve(false)
	}

	if m.score.Winner() != entity.NoWinner {
		m.transition(StateGameOver)
		ev.GameOver = true
	}
	return ev
}

// serve resets the ball after a point, launching toward the side that just
// conceded. towardCPU is true when the player scored.
func (m *Match) serve(towardCPU bool) {
	m.ball.Reset(m.cfg.FieldW, m.cfg.FieldH, m.cfg.BallBaseSpeed, m.rng, !towardCPU)
}
