package audio

// Config controls cue playback
type Config struct {
	Enabled    bool
	Volume     float64 // Linear gain, 0 is silent
	SampleRate int
}

// DefaultConfig returns muted cues at 44.1kHz
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		Volume:     0.5,
		SampleRate: 44100,
	}
}

// normalize clamps volume to [0, 1] and fills a missing rate
func (c Config) normalize() Config {
	if c.Volume < 0 {
		c.Volume = 0
	} else if c.Volume > 1 {
		c.Volume = 1
	}
	if c.SampleRate <= 0 {
		c.SampleRate = DefaultConfig().SampleRate
	}
	return c
}
