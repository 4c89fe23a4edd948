// Package audio plays short synthesized cues for game events. Every sound
// is generated from an oscillator, so the repo ships no audio assets.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Cue names one game event with a sound attached.
type Cue int

const (
	CueWallBounce Cue = iota
	CuePaddleHit
	CuePointScored
	CueGameOver
)

type cueSpec struct {
	freq float64
	dur  time.Duration
	wave WaveType
}

// cues maps each event to its tone.
var cues = map[Cue]cueSpec{
	CueWallBounce:  {freq: 220, dur: 40 * time.Millisecond, wave: WaveSquare},
	CuePaddleHit:   {freq: 440, dur: 50 * time.Millisecond, wave: WaveSquare},
	CuePointScored: {freq: 660, dur: 150 * time.Millisecond, wave: WaveSine},
	CueGameOver:    {freq: 330, dur: 600 * time.Millisecond, wave: WaveSine},
}

// Player owns the speaker and the mixer cue streams are added to. The zero
// of everything is silent: a Player that was never initialized, or is
// muted, drops cues without error.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer returns a silent player; call Init to open the speaker.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device and starts the mixer. Calling it twice is a
// no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted silences future cues without tearing the speaker down.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Play queues the cue's tone. Mixer mutation happens under the speaker
// lock, which beep requires once the mixer is playing.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	ready := p.initialized && !p.muted
	p.mu.Unlock()
	if !ready {
		return
	}

	spec, ok := cues[c]
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(NewTone(spec.freq, spec.dur, spec.wave, 0.4, sampleRate))
	speaker.Unlock()
}
