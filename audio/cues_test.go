package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/tile-input/event"
)

type recordingPlayer struct {
	played []beep.Streamer
}

func (p *recordingPlayer) Play(s beep.Streamer) { p.played = append(p.played, s) }

// drain streams s to completion and returns sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func testConfig() Config {
	return Config{Enabled: true, Volume: 1, SampleRate: 8000}
}

func TestCuesPlayPerEvent(t *testing.T) {
	player := &recordingPlayer{}
	bus := event.NewBus()
	NewCues(player, testConfig()).Attach(bus)

	bus.Broadcast(event.Move{Direction: event.DirLeft})
	bus.Broadcast(event.PlaceTile{X: 1, Y: 1, Value: 16})
	bus.Broadcast(event.Restart{})
	bus.Broadcast(event.Think{})
	bus.Broadcast(event.Run{})

	if len(player.played) != 5 {
		t.Fatalf("Expected 5 sounds, got %d", len(player.played))
	}

	rate := beep.SampleRate(8000)
	wantLen := []int{
		rate.N(moveDuration),
		rate.N(placeDuration),
		3 * rate.N(moveDuration),
		rate.N(chimeDuration),
		rate.N(moveDuration) + rate.N(chimeDuration),
	}
	for i, s := range player.played {
		n, peak := drain(s)
		if n != wantLen[i] {
			t.Errorf("Sound %d: expected %d samples, got %d", i, wantLen[i], n)
		}
		if peak == 0 {
			t.Errorf("Sound %d: expected audible output", i)
		}
	}
}

func TestCuesInvalidDirectionSilent(t *testing.T) {
	player := &recordingPlayer{}
	bus := event.NewBus()
	NewCues(player, testConfig()).Attach(bus)

	bus.Broadcast(event.Move{Direction: event.Direction(9)})
	if len(player.played) != 0 {
		t.Errorf("Expected no sound for invalid direction, got %d", len(player.played))
	}
}

func TestCuesZeroVolumeSilent(t *testing.T) {
	player := &recordingPlayer{}
	cfg := testConfig()
	cfg.Volume = 0
	bus := event.NewBus()
	NewCues(player, cfg).Attach(bus)

	bus.Broadcast(event.Think{})
	if len(player.played) != 1 {
		t.Fatalf("Expected 1 sound, got %d", len(player.played))
	}
	if _, peak := drain(player.played[0]); peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}

func TestPlaceFreqRises(t *testing.T) {
	prev := 0.0
	for v := 2; v <= 1024; v *= 2 {
		f := PlaceFreq(v)
		if f <= prev {
			t.Errorf("Expected PlaceFreq(%d) above %f, got %f", v, prev, f)
		}
		prev = f
	}
	if got := PlaceFreq(1); got != placeBaseFreq {
		t.Errorf("Expected base frequency for 1, got %f", got)
	}
	if got := PlaceFreq(4096); got != 2*placeBaseFreq {
		t.Errorf("Expected an octave up for 4096, got %f", got)
	}
}

func TestConfigNormalize(t *testing.T) {
	c := Config{Volume: 3, SampleRate: 0}.normalize()
	if c.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", c.Volume)
	}
	if c.SampleRate != DefaultConfig().SampleRate {
		t.Errorf("Expected default sample rate, got %d", c.SampleRate)
	}
	if c := (Config{Volume: -1}).normalize(); c.Volume != 0 {
		t.Errorf("Expected volume clamped to 0, got %f", c.Volume)
	}
}

func TestSetupDisabled(t *testing.T) {
	bus := event.NewBus()
	cleanup, err := Setup(bus, DefaultConfig())
	if err != nil {
		t.Fatalf("Expected no error for disabled audio, got %v", err)
	}
	cleanup()
	if n := bus.HandlerCount(event.EventMove); n != 0 {
		t.Errorf("Expected no subscriptions when disabled, got %d", n)
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		n, peak := drain(NewOscillator(440, 25*time.Millisecond, wave, rate))
		if n != rate.N(25*time.Millisecond) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, rate.N(25*time.Millisecond), n)
		}
		if peak > 1 {
			t.Errorf("Wave %d: sample out of range: %f", wave, peak)
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("Expected full sustain, got %f", buf[50][0])
	}
	if buf[99][0] >= buf[90][0] {
		t.Errorf("Expected release to fall, got %f then %f", buf[90][0], buf[99][0])
	}
}
