package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"pong/internal/ai"
	"pong/internal/app"
	"pong/internal/audio"
	"pong/internal/core"
	"pong/internal/game"
	"pong/internal/spectator"
	"pong/internal/term"
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

	ui, err := term.New(match, gameCfg, sound, hub, cfg.TPS, cfg.Points, difficulty)
	if err != nil {
		log.Fatalf("terminal init: %v", err)
	}
	if err := ui.Run(); err != nil {
		log.Fatal(err)
	}
}
