//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"pong/internal/ai"
	"pong/internal/app"
	"pong/internal/audio"
	"pong/internal/core"
	"pong/internal/game"
	"pong/internal/spectator"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	difficulty, err := ai.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		log.Fatalf("bad -difficulty: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := core.NewRNG(seed)

	gameCfg := game.DefaultConfig()
	match := game.NewMatch(gameCfg, rng)

	var hub *spectator.Hub
	if cfg.Listen != "" {
		hub = spectator.NewHub()
		mux := http.NewServeMux()
		mux.Handle("/watch", hub)
		go func() {
			log.Printf("spectator feed on ws://%s/watch", cfg.Listen)
			log.Fatal(http.ListenAndServe(cfg.Listen, mux))
		}()
	}

	sound := audio.NewPlayer()
	if !cfg.Mute {
		if err := sound.Init(); err != nil {
			log.Printf("sound disabled: %v", err)
		}
	}

	g := app.New(match, gameCfg, sound, hub, cfg.TPS, cfg.Points, difficulty)

	ebiten.SetWindowTitle("pong")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(int(gameCfg.FieldW), int(gameCfg.FieldH))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
