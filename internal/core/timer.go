package core

import "time"

// maxCatchUpSteps caps how many simulation ticks a single frame may run so a
// stalled frontend does not spiral trying to catch up.
const maxCatchUpSteps = 5

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Dt returns the fixed per-tick delta in seconds.
func (f *FixedStep) Dt() float64 {
	return f.step.Seconds()
}

// Steps reports how many simulation ticks should run this frame, draining
// the accumulator. The result is capped at maxCatchUpSteps; any excess lag
// is dropped rather than replayed.
func (f *FixedStep) Steps() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta

	n := 0
	for f.accumulator >= f.step && n < maxCatchUpSteps {
		f.accumulator -= f.step
		n++
	}
	if f.accumulator >= f.step {
		f.accumulator = 0
	}
	return n
}
