// Package config loads settings from defaults, an optional TOML file and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/lixenwraith/tile-input/audio"
	"github.com/lixenwraith/tile-input/input"
)

const (
	envPrefix  = "TILE_INPUT"
	envConfig  = "TILE_INPUT_CONFIG"
	appDirName = "tile-input"
)

// UI backends
const (
	BackendTcell     = "tcell"
	BackendBubbletea = "bubbletea"
)

// Config holds application configuration
type Config struct {
	UI     UIConfig       `mapstructure:"ui"`
	Audio  AudioConfig    `mapstructure:"audio"`
	Log    LogConfig      `mapstructure:"log"`
	Keymap map[string]any `mapstructure:"keymap"`
}

// UIConfig selects the front end
type UIConfig struct {
	Backend        string `mapstructure:"backend"`
	SwipeThreshold int    `mapstructure:"swipe_threshold"`
}

// AudioConfig controls sound cues
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Dir   string `mapstructure:"dir"`
}

// Load reads configuration from path, or the default location when path is empty
// Env var overrides use prefix TILE_INPUT_; a missing default file is not an error
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.backend", BackendTcell)
	v.SetDefault("ui.swipe_threshold", 3)
	v.SetDefault("audio.enabled", false)
	v.SetDefault("audio.volume", audio.DefaultConfig().Volume)
	v.SetDefault("log.debug", false)
	v.SetDefault("log.dir", "logs")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", appDirName))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else if err := checkRuneCase(v.ConfigFileUsed()); err != nil {
		return Config{}, err
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Keymap = v.GetStringMap("keymap")

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// checkRuneCase rejects upper case keys in [keymap.runes]
// viper folds map keys to lower case, so "K" would silently rebind "k"
func checkRuneCase(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var raw struct {
		Keymap struct {
			Runes map[string]any `toml:"runes"`
		} `toml:"keymap"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	for key := range raw.Keymap.Runes {
		if lower := strings.ToLower(key); lower != key {
			return fmt.Errorf("keymap.runes: key %q is case-folded to %q; upper case runes cannot be bound", key, lower)
		}
	}
	return nil
}

// Validate checks enumerated and ranged values
func (c Config) Validate() error {
	switch c.UI.Backend {
	case BackendTcell, BackendBubbletea:
	default:
		return fmt.Errorf("ui.backend: unknown backend %q (want %s or %s)", c.UI.Backend, BackendTcell, BackendBubbletea)
	}
	if c.UI.SwipeThreshold < 1 {
		return fmt.Errorf("ui.swipe_threshold: must be positive, got %d", c.UI.SwipeThreshold)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume: must be within [0, 1], got %g", c.Audio.Volume)
	}
	return nil
}

// KeyTable returns the default bindings with the keymap section applied
func (c Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if len(c.Keymap) == 0 {
		return base, nil
	}
	override, err := input.LoadKeyConfig(c.Keymap)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	return input.MergeKeyTable(base, override), nil
}

// AudioSettings converts the audio section for the audio package
func (c Config) AudioSettings() audio.Config {
	cfg := audio.DefaultConfig()
	cfg.Enabled = c.Audio.Enabled
	cfg.Volume = c.Audio.Volume
	return cfg
}
