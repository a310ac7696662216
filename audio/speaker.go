package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tile-input/event"
)

const speakerBuffer = 100 * time.Millisecond

// SpeakerPlayer mixes cues into the system speaker
// Degrades to a no-op when the device cannot be opened
type SpeakerPlayer struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeakerPlayer creates an unopened player at rate
func NewSpeakerPlayer(rate int) *SpeakerPlayer {
	return &SpeakerPlayer{
		rate:  beep.SampleRate(rate),
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer
func (p *SpeakerPlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play adds s to the mix; dropped if the speaker is not open
func (p *SpeakerPlayer) Play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Setup wires cues for cfg onto bus
// Returns a cleanup func; disabled or unavailable audio yields a no-op
func Setup(bus *event.Bus, cfg Config) (func(), error) {
	cfg = cfg.normalize()
	if !cfg.Enabled {
		return func() {}, nil
	}

	player := NewSpeakerPlayer(cfg.SampleRate)
	if err := player.Init(); err != nil {
		return func() {}, err
	}
	NewCues(player, cfg).Attach(bus)
	return player.Close, nil
}
