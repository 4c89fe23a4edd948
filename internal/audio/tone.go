package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType selects the oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// tone is a finite beep.Streamer generating one wave. A short linear
// fade-out at the tail avoids the click of cutting the wave mid-cycle.
type tone struct {
	freq     float64
	gain     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewTone returns a streamer playing freq for the given duration.
func NewTone(freq float64, d time.Duration, wave WaveType, gain float64, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		gain:     gain,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		default:
			val = math.Sin(2 * math.Pi * t.phase)
		}

		val *= t.gain
		if remaining := t.duration - t.position; remaining < fadeSamples {
			val *= float64(remaining) / fadeSamples
		}

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

const fadeSamples = 512
