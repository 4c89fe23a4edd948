package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestToneFillsAndDrains(t *testing.T) {
	rate := beep.SampleRate(48000)
	dur := 10 * time.Millisecond
	s := NewTone(440, dur, WaveSine, 0.5, rate)

	total := 0
	buf := make([][2]float64, 64)
	for {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v < -0.5 || v > 0.5 {
				t.Fatalf("sample %v exceeds gain", v)
			}
			if buf[i][0] != buf[i][1] {
				t.Fatal("tone must be mono across both channels")
			}
		}
		if !ok {
			break
		}
	}
	if want := rate.N(dur); total != want {
		t.Fatalf("streamed %d samples, want %d", total, want)
	}
	if err := s.Err(); err != nil {
		t.Fatalf("tone reported error: %v", err)
	}
}

func TestToneFadesOut(t *testing.T) {
	rate := beep.SampleRate(48000)
	s := NewTone(440, 20*time.Millisecond, WaveSquare, 1, rate)

	var last [2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		if n > 0 {
			last = buf[n-1]
		}
		if !ok {
			break
		}
	}
	// The final sample sits at the very end of the fade ramp.
	if v := last[0]; v > 0.01 || v < -0.01 {
		t.Fatalf("tail sample %v should be faded to silence", v)
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer()
	// Must not panic or touch the audio device.
	p.Play(CuePaddleHit)
	p.SetMuted(true)
	p.Play(CueGameOver)
}
