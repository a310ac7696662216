package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/tile-input/event"
	"github.com/lixenwraith/tile-input/input"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(envConfig, "")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.UI.Backend != BackendTcell {
		t.Errorf("Expected backend %q, got %q", BackendTcell, c.UI.Backend)
	}
	if c.UI.SwipeThreshold != 3 {
		t.Errorf("Expected swipe threshold 3, got %d", c.UI.SwipeThreshold)
	}
	if c.Audio.Enabled {
		t.Error("Expected audio disabled by default")
	}
	if c.Log.Dir != "logs" {
		t.Errorf("Expected log dir logs, got %q", c.Log.Dir)
	}

	kt, err := c.KeyTable()
	if err != nil {
		t.Fatalf("KeyTable failed: %v", err)
	}
	if len(kt.ValueMap()) != len(input.DefaultKeyTable().ValueMap()) {
		t.Error("Expected default value bindings")
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
[ui]
backend = "bubbletea"
swipe_threshold = 5

[audio]
enabled = true
volume = 0.25

[keymap.keys]
home = "restart"

[keymap.runes]
w = "move_up"
space = "none"
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.UI.Backend != BackendBubbletea || c.UI.SwipeThreshold != 5 {
		t.Errorf("Expected bubbletea with threshold 5, got %+v", c.UI)
	}
	if a := c.AudioSettings(); !a.Enabled || a.Volume != 0.25 {
		t.Errorf("Expected enabled audio at 0.25, got %+v", a)
	}

	kt, err := c.KeyTable()
	if err != nil {
		t.Fatalf("KeyTable failed: %v", err)
	}

	if e, ok := kt.Lookup(input.RuneKey('w', 0)); !ok || e.Behavior != input.BehaviorMove || e.Direction != event.DirUp {
		t.Errorf("Expected w bound to move up, got %+v %v", e, ok)
	}
	if e, ok := kt.Lookup(input.NamedKey(input.KeyHome, 0)); !ok || e.Behavior != input.BehaviorRestart {
		t.Errorf("Expected home bound to restart, got %+v %v", e, ok)
	}
	if _, ok := kt.Lookup(input.RuneKey(' ', 0)); ok {
		t.Error("Expected space binding removed")
	}
	if _, ok := kt.Lookup(input.RuneKey('k', 0)); !ok {
		t.Error("Expected defaults kept alongside overrides")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "[ui]\nbackend = \"bubbletea\"\n")
	t.Setenv("TILE_INPUT_UI_BACKEND", "tcell")
	t.Setenv("TILE_INPUT_AUDIO_ENABLED", "true")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.UI.Backend != BackendTcell {
		t.Errorf("Expected env to override backend, got %q", c.UI.Backend)
	}
	if !c.Audio.Enabled {
		t.Error("Expected env to enable audio")
	}
}

func TestLoadConfigEnvPath(t *testing.T) {
	isolate(t)
	t.Setenv(envConfig, writeConfig(t, "[log]\ndebug = true\n"))

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !c.Log.Debug {
		t.Error("Expected debug from file named by env")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"Unknown backend", "[ui]\nbackend = \"gtk\"\n", "ui.backend"},
		{"Bad threshold", "[ui]\nswipe_threshold = 0\n", "ui.swipe_threshold"},
		{"Loud volume", "[audio]\nvolume = 2.0\n", "audio.volume"},
		{"Malformed", "[ui\n", "read config"},
		{"Upper case rune", "[keymap.runes]\nK = \"none\"\n", "keymap.runes"},
		{"Quoted upper case rune", "[keymap.runes]\n\"W\" = \"move_up\"\n", "case-folded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Expected error for missing explicit file")
	}
}

func TestKeyTableBadAction(t *testing.T) {
	isolate(t)
	c, err := Load(writeConfig(t, "[keymap.runes]\nw = \"move_upp\"\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	_, err = c.KeyTable()
	if err == nil || !strings.Contains(err.Error(), `did you mean "move_up"`) {
		t.Errorf("Expected suggestion for move_up, got %v", err)
	}
}
