package game

import "pong/internal/entity"

// Snapshot is the read-only view of one frame, everything a renderer or the
// spectator feed needs. Primitive fields only, so it serializes stably and
// no renderer can reach back into live match state.
type Snapshot struct {
	Tick  uint64 `json:"tick"`
	State string `json:"state"`

	FieldW float64 `json:"fieldW"`
	FieldH float64 `json:"fieldH"`

	BallX    float64 `json:"ballX"`
	BallY    float64 `json:"ballY"`
	BallSize float64 `json:"ballSize"`

	PlayerX float64 `json:"playerX"`
	PlayerY float64 `json:"playerY"`
	CPUX    float64 `json:"cpuX"`
	CPUY    float64 `json:"cpuY"`
	PaddleW float64 `json:"paddleW"`
	PaddleH float64 `json:"paddleH"`

	PlayerScore  int    `json:"playerScore"`
	CPUScore     int    `json:"cpuScore"`
	TargetPoints int    `json:"targetPoints"`
	Difficulty   string `json:"difficulty"`
	PlayerWon    bool   `json:"playerWon"`
}

// Snapshot captures the current frame.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Tick:  m.tick,
		State: m.state.String(),

		FieldW: m.cfg.FieldW,
		FieldH: m.cfg.FieldH,

		BallX:    m.ball.Pos.X,
		BallY:    m.ball.Pos.Y,
		BallSize: m.ball.Size,

		PlayerX: m.player.Pos.X,
		PlayerY: m.player.Pos.Y,
		CPUX:    m.cpu.Pos.X,
		CPUY:    m.cpu.Pos.Y,
		PaddleW: m.cfg.PaddleW,
		PaddleH: m.cfg.PaddleH,

		PlayerScore:  m.score.Player,
		CPUScore:     m.score.CPU,
		TargetPoints: m.score.Target,
		Difficulty:   m.difficulty.String(),
		PlayerWon:    m.score.Winner() == entity.PlayerWins,
	}
}
