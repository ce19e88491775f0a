package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/marquee/internal/anim"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Banner.Style != "rainbow" {
		t.Errorf("expected style rainbow, got %s", cfg.Banner.Style)
	}
	if cfg.Banner.Font != "standard" {
		t.Errorf("expected font standard, got %s", cfg.Banner.Font)
	}
	if cfg.Banner.DurationMillis <= 0 {
		t.Error("cycle duration should be positive")
	}
	if !cfg.Banner.Loop {
		t.Error("banners should loop by default")
	}
	if cfg.Playback.Speed != 1.0 {
		t.Errorf("expected speed 1.0, got %f", cfg.Playback.Speed)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marquee.yaml")

	cfg := DefaultConfig()
	cfg.Banner.Style = "plasma"
	cfg.Banner.DurationMillis = 3500
	cfg.Playback.Speed = 2.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Banner.Style != "plasma" {
		t.Errorf("expected style plasma, got %s", loaded.Banner.Style)
	}
	if loaded.Banner.DurationMillis != 3500 {
		t.Errorf("expected duration 3500, got %d", loaded.Banner.DurationMillis)
	}
	if loaded.Playback.Speed != 2.5 {
		t.Errorf("expected speed 2.5, got %f", loaded.Playback.Speed)
	}
}

func TestLoad_MergesIntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	partial := "banner:\n  style: fire\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Banner.Style != "fire" {
		t.Errorf("expected style fire, got %s", cfg.Banner.Style)
	}
	if cfg.Banner.Font != DefaultFont {
		t.Error("unset fields should keep their defaults")
	}
}

func TestCycleDuration_Floor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Banner.DurationMillis = 0
	if cfg.CycleDuration() != time.Millisecond {
		t.Error("cycle duration must be floored at 1ms")
	}

	cfg.Banner.DurationMillis = 2000
	if cfg.CycleDuration() != 2*time.Second {
		t.Errorf("expected 2s, got %v", cfg.CycleDuration())
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("hacker")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Banner.Style != "matrix" {
		t.Errorf("expected style matrix, got %s", cfg.Banner.Style)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets()) == 0 {
		t.Error("expected at least one preset")
	}
}

func TestPresets_StylesParse(t *testing.T) {
	for name, cfg := range Presets {
		if _, err := anim.ParseStyle(cfg.Banner.Style); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}
