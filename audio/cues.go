package audio

import (
	"log"
	"math"
	"math/bits"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/tile-input/event"
)

const (
	noteAttack  = 5 * time.Millisecond
	noteRelease = 30 * time.Millisecond

	moveDuration  = 40 * time.Millisecond
	placeDuration = 90 * time.Millisecond
	chimeDuration = 120 * time.Millisecond

	// Placement pitch climbs one semitone per doubling from this base
	placeBaseFreq = 440.0
)

// Move blips, indexed by direction ordinal
var moveFreqs = [4]float64{
	event.DirUp:    659.25, // E5
	event.DirRight: 587.33, // D5
	event.DirDown:  523.25, // C5
	event.DirLeft:  493.88, // B4
}

// Player accepts finished sound streams
type Player interface {
	Play(s beep.Streamer)
}

// Cues turns broadcast events into short sounds
type Cues struct {
	player Player
	rate   beep.SampleRate
	volume float64
}

// NewCues creates cues played through player at cfg's rate and volume
func NewCues(player Player, cfg Config) *Cues {
	cfg = cfg.normalize()
	return &Cues{
		player: player,
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
	}
}

// Attach subscribes the cues to every event variant on bus
func (c *Cues) Attach(bus *event.Bus) {
	event.On(bus, func(ev event.Move) { c.play(c.MoveSound(ev.Direction)) })
	event.On(bus, func(ev event.PlaceTile) { c.play(c.PlaceSound(ev.Value)) })
	event.On(bus, func(event.Restart) { c.play(c.RestartSound()) })
	event.On(bus, func(event.Think) { c.play(c.ThinkSound()) })
	event.On(bus, func(event.Run) { c.play(c.RunSound()) })
}

func (c *Cues) play(s beep.Streamer) {
	if s == nil {
		return
	}
	c.player.Play(newVolume(s, c.volume))
}

// MoveSound is a short square blip pitched by direction
func (c *Cues) MoveSound(dir event.Direction) beep.Streamer {
	if !dir.Valid() {
		log.Printf("audio: no cue for direction %d", dir)
		return nil
	}
	return newVolume(note(moveFreqs[dir], moveDuration, WaveSquare, c.rate), 0.4)
}

// PlaceFreq returns the tone for a placed value, rising with log2(value)
func PlaceFreq(value int) float64 {
	if value < 1 {
		value = 1
	}
	step := bits.Len(uint(value)) - 1
	return placeBaseFreq * math.Pow(2, float64(step)/12)
}

// PlaceSound is a sine tone pitched by the placed value
func (c *Cues) PlaceSound(value int) beep.Streamer {
	freq := PlaceFreq(value)
	sine, err := generators.SineTone(c.rate, freq)
	if err != nil {
		log.Printf("audio: sine tone %.1fHz: %v", freq, err)
		return note(freq, placeDuration, WaveSine, c.rate)
	}
	tone := beep.Take(c.rate.N(placeDuration), sine)
	return NewEnvelope(tone, placeDuration, noteAttack, noteRelease, c.rate)
}

// RestartSound is a falling three-note arpeggio
func (c *Cues) RestartSound() beep.Streamer {
	return beep.Seq(
		note(783.99, moveDuration, WaveSaw, c.rate), // G5
		note(659.25, moveDuration, WaveSaw, c.rate), // E5
		note(523.25, moveDuration, WaveSaw, c.rate), // C5
	)
}

// ThinkSound is a bell: fundamental plus octave
func (c *Cues) ThinkSound() beep.Streamer {
	return beep.Mix(
		newVolume(note(880, chimeDuration, WaveSine, c.rate), 0.7),
		newVolume(note(1760, chimeDuration, WaveSine, c.rate), 0.3),
	)
}

// RunSound is a rising two-note chime
func (c *Cues) RunSound() beep.Streamer {
	return beep.Seq(
		note(987.77, moveDuration, WaveSquare, c.rate),   // B5
		note(1318.51, chimeDuration, WaveSquare, c.rate), // E6
	)
}
