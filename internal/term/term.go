// Package term is the terminal frontend: the same match core rendered with
// tcell cells instead of pixels. It exists on its own loop, driven by
// core.FixedStep, and consumes only the frame snapshot.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"pong/internal/ai"
	"pong/internal/audio"
	"pong/internal/core"
	"pong/internal/entity"
	"pong/internal/game"
	"pong/internal/spectator"
)

// holdTicks is how many simulation ticks a single keypress keeps the paddle
// moving. Terminals deliver repeats, not key-up events, so movement decays
// unless the key is held and autorepeat refreshes it.
const holdTicks = 6

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	stylePaddle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorAqua)
	styleHint    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
)

// UI runs the terminal frontend around one match.
type UI struct {
	screen tcell.Screen
	match  *game.Match
	cfg    game.Config
	sound  *audio.Player
	hub    *spectator.Hub
	step   *core.FixedStep

	moveDir   int // -1 up, +1 down, 0 idle
	moveTicks int

	points     int
	difficulty ai.Difficulty
}

// New initializes the terminal screen. hub may be nil.
func New(match *game.Match, cfg game.Config, sound *audio.Player, hub *spectator.Hub, tps, points int, difficulty ai.Difficulty) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	return &UI{
		screen:     screen,
		match:      match,
		cfg:        cfg,
		sound:      sound,
		hub:        hub,
		step:       core.NewFixedStep(tps),
		points:     points,
		difficulty: difficulty,
	}, nil
}

// Run drives the loop until the player quits. It always restores the
// terminal before returning.
func (u *UI) Run() error {
	defer u.screen.Fini()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go u.screen.ChannelEvents(events, quit)

	frame := time.NewTicker(time.Second / 60)
	defer frame.Stop()

	for {
		select {
		case ev := <-events:
			if done := u.handleEvent(ev); done {
				close(quit)
				return nil
			}
		case <-frame.C:
			for i := u.step.Steps(); i > 0; i-- {
				u.tick(u.step.Dt())
			}
			u.draw()
		}
	}
}

// handleEvent applies one input event, returning true on quit.
func (u *UI) handleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		if _, resized := ev.(*tcell.EventResize); resized {
			u.screen.Sync()
		}
		return false
	}

	if key.Key() == tcell.KeyCtrlC || key.Rune() == 'q' {
		return true
	}

	switch u.match.State() {
	case game.StateMenu:
		if key.Key() == tcell.KeyEnter || key.Rune() == ' ' {
			u.match.OpenSettings()
		}
	case game.StateSettings:
		u.handleSettingsKey(key)
	case game.StateInGame:
		u.handlePlayKey(key)
	case game.StatePaused:
		if key.Rune() == ' ' {
			u.match.TogglePause()
		}
		if key.Key() == tcell.KeyEscape {
			u.match.ToMenu()
		}
	case game.StateGameOver:
		if key.Rune() == ' ' || key.Key() == tcell.KeyEnter {
			u.match.PlayAgain()
		}
		if key.Key() == tcell.KeyEscape {
			u.match.ToMenu()
		}
	}
	return false
}

func (u *UI) handleSettingsKey(key *tcell.EventKey) {
	switch {
	case key.Key() == tcell.KeyUp || key.Rune() == 'w' || key.Rune() == '+':
		if u.points < entity.MaxTargetPoints {
			u.points++
		}
	case key.Key() == tcell.KeyDown || key.Rune() == 's' || key.Rune() == '-':
		if u.points > entity.MinTargetPoints {
			u.points--
		}
	case key.Key() == tcell.KeyLeft:
		if u.difficulty > ai.Easy {
			u.difficulty--
		}
	case key.Key() == tcell.KeyRight:
		if u.difficulty < ai.Hard {
			u.difficulty++
		}
	case key.Key() == tcell.KeyEnter:
		u.match.Begin(u.points, u.difficulty)
	}
}

func (u *UI) handlePlayKey(key *tcell.EventKey) {
	switch {
	case key.Key() == tcell.KeyUp || key.Rune() == 'w' || key.Rune() == 'k':
		u.moveDir, u.moveTicks = -1, holdTicks
	case key.Key() == tcell.KeyDown || key.Rune() == 's' || key.Rune() == 'j':
		u.moveDir, u.moveTicks = 1, holdTicks
	case key.Rune() == ' ':
		u.match.TogglePause()
	case key.Key() == tcell.KeyEscape:
		u.match.ToMenu()
	}
}

func (u *UI) tick(dt float64) {
	var in game.Input
	if u.moveTicks > 0 {
		u.moveTicks--
		in.PaddleVY = float64(u.moveDir) * u.cfg.PaddleSpeed
	}

	ev := u.match.Step(in, dt)
	u.playCues(ev)

	if u.hub != nil {
		u.hub.Publish(u.match.Snapshot())
	}
}

func (u *UI) playCues(ev game.TickEvents) {
	if u.sound == nil {
		return
	}
	switch {
	case ev.GameOver:
		u.sound.Play(audio.CueGameOver)
	case ev.PlayerScored || ev.CPUScored:
		u.sound.Play(audio.CuePointScored)
	case ev.PaddleHit:
		u.sound.Play(audio.CuePaddleHit)
	case ev.WallHit:
		u.sound.Play(audio.CueWallBounce)
	}
}

func (u *UI) draw() {
	u.screen.Clear()
	snap := u.match.Snapshot()
	w, h := u.screen.Size()

	switch snap.State {
	case "menu":
		u.centered(w, h/2-2, "P O N G", styleDefault)
		u.centered(w, h/2, "enter to play, q to quit", styleHint)
	case "settings":
		u.centered(w, h/2-2, "match settings", styleDefault)
		u.centered(w, h/2, fmt.Sprintf("first to %d (up/down), %s (left/right)", u.points, u.difficulty), styleDefault)
		u.centered(w, h/2+2, "enter to start", styleHint)
	default:
		u.drawField(snap, w, h)
	}
	u.screen.Show()
}

// drawField maps playfield coordinates onto terminal cells.
func (u *UI) drawField(snap game.Snapshot, w, h int) {
	sx := float64(w) / snap.FieldW
	sy := float64(h-1) / snap.FieldH

	for y := 1; y < h; y += 2 {
		u.screen.SetContent(w/2, y, '|', nil, styleHint)
	}

	u.drawPaddle(snap.PlayerX, snap.PlayerY, snap, sx, sy, h)
	u.drawPaddle(snap.CPUX, snap.CPUY, snap, sx, sy, h)

	bx := int((snap.BallX + snap.BallSize/2) * sx)
	by := 1 + int((snap.BallY+snap.BallSize/2)*sy)
	if by >= 1 && by < h {
		u.screen.SetContent(bx, by, 'O', nil, styleDefault)
	}

	score := fmt.Sprintf("%d : %d", snap.PlayerScore, snap.CPUScore)
	u.centered(w, 0, score, styleDefault)

	switch snap.State {
	case "paused":
		u.centered(w, h/2, "paused", styleDefault)
	case "game_over":
		if snap.PlayerWon {
			u.centered(w, h/2, "you win!", styleDefault)
		} else {
			u.centered(w, h/2, "game over", styleDefault)
		}
		u.centered(w, h/2+1, "space to play again, esc for menu", styleHint)
	}
}

func (u *UI) drawPaddle(px, py float64, snap game.Snapshot, sx, sy float64, h int) {
	x := int((px + snap.PaddleW/2) * sx)
	top := 1 + int(py*sy)
	bottom := 1 + int((py+snap.PaddleH)*sy)
	for y := top; y <= bottom && y < h; y++ {
		u.screen.SetContent(x, y, '█', nil, stylePaddle)
	}
}

func (u *UI) centered(w, y int, s string, style tcell.Style) {
	x := (w - len(s)) / 2
	for i, r := range s {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}
