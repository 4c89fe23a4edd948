//go:build ebiten

// Package app adapts the match to the ebiten game loop: it polls input,
// advances the simulation once per tick, fans events out to the sound
// player and the spectator feed, and draws the frame.
package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pong/internal/ai"
	"pong/internal/audio"
	"pong/internal/entity"
	"pong/internal/game"
	"pong/internal/render"
	"pong/internal/spectator"
	"pong/internal/ui"
)

// Game wires the match into the ebiten.Game interface.
type Game struct {
	match   *game.Match
	cfg     game.Config
	painter *render.Painter
	hud     *ui.HUD
	sound   *audio.Player
	hub     *spectator.Hub
	dt      float64

	// settings screen selections, applied on confirm
	points     int
	difficulty ai.Difficulty
}

// New constructs the adapter. hub may be nil when the spectator feed is
// disabled.
func New(match *game.Match, cfg game.Config, sound *audio.Player, hub *spectator.Hub, tps int, points int, difficulty ai.Difficulty) *Game {
	if tps <= 0 {
		tps = 60
	}
	return &Game{
		match:      match,
		cfg:        cfg,
		painter:    render.NewPainter(),
		hud:        ui.NewHUD(),
		sound:      sound,
		hub:        hub,
		dt:         1.0 / float64(tps),
		points:     points,
		difficulty: difficulty,
	}
}

// Update handles one tick: commands first, then the simulation step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	switch g.match.State() {
	case game.StateMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.match.OpenSettings()
		}
	case game.StateSettings:
		g.updateSettings()
	case game.StateInGame:
		g.updatePlaying()
	case game.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.match.TogglePause()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.match.ToMenu()
		}
	case game.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.match.PlayAgain()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.match.ToMenu()
		}
	}

	if g.hub != nil {
		g.hub.Publish(g.match.Snapshot())
	}
	return nil
}

func (g *Game) updateSettings() {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		if g.points < entity.MaxTargetPoints {
			g.points++
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if g.points > entity.MinTargetPoints {
			g.points--
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.difficulty = prevDifficulty(g.difficulty)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.difficulty = nextDifficulty(g.difficulty)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.match.Begin(g.points, g.difficulty)
	}
}

func (g *Game) updatePlaying() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.match.TogglePause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.match.ToMenu()
		return
	}

	var in game.Input
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp):
		in.PaddleVY = -g.cfg.PaddleSpeed
	case ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown):
		in.PaddleVY = g.cfg.PaddleSpeed
	}

	ev := g.match.Step(in, g.dt)
	g.playCues(ev)
}

func (g *Game) playCues(ev game.TickEvents) {
	if g.sound == nil {
		return
	}
	switch {
	case ev.GameOver:
		g.sound.Play(audio.CueGameOver)
	case ev.PlayerScored || ev.CPUScored:
		g.sound.Play(audio.CuePointScored)
	case ev.PaddleHit:
		g.sound.Play(audio.CuePaddleHit)
	case ev.WallHit:
		g.sound.Play(audio.CueWallBounce)
	}
}

// Draw renders the playfield and the text layer.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.match.Snapshot()
	g.painter.Draw(screen, snap)
	g.hud.Draw(screen, snap, ui.Settings{Points: g.points, Difficulty: g.difficulty.String()})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.FieldW), int(g.cfg.FieldH)
}

func nextDifficulty(d ai.Difficulty) ai.Difficulty {
	switch d {
	case ai.Easy:
		return ai.Medium
	case ai.Medium:
		return ai.Hard
	default:
		return ai.Hard
	}
}

func prevDifficulty(d ai.Difficulty) ai.Difficulty {
	switch d {
	case ai.Hard:
		return ai.Medium
	case ai.Medium:
		return ai.Easy
	default:
		return ai.Easy
	}
}
