package app

import "flag"

// Config represents the command-line parameters for the game.
type Config struct {
	Points     int
	Difficulty string
	Seed       int64
	TPS        int
	Listen     string
	Mute       bool
}

// NewConfig returns a Config populated with sensible defaults. Seed 0 means
// seed from the clock at startup.
func NewConfig() *Config {
	return &Config{Points: 10, Difficulty: "medium", Seed: 0, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Points, "points", c.Points, "points needed to win (1-50)")
	fs.StringVar(&c.Difficulty, "difficulty", c.Difficulty, "cpu difficulty: easy, medium or hard")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "rng seed, 0 for time-based")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.StringVar(&c.Listen, "listen", c.Listen, "spectator feed address (e.g. :8080), empty to disable")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound")
}
