package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStyle          = "rainbow"
	DefaultFont           = "standard"
	DefaultDurationMillis = 2000
	DefaultAlignment      = "center"
	DefaultSpeed          = 1.0
)

type Config struct {
	Banner   BannerConfig   `yaml:"banner"`
	Playback PlaybackConfig `yaml:"playback"`
}

type BannerConfig struct {
	Style          string   `yaml:"style"`
	Font           string   `yaml:"font"`
	DurationMillis int      `yaml:"animation_duration_millis"`
	Loop           bool     `yaml:"loop"`
	Alignment      string   `yaml:"alignment"`
	FontDirs       []string `yaml:"font_dirs"`
}

type PlaybackConfig struct {
	Speed float64 `yaml:"speed"`
	Loop  bool    `yaml:"loop"`
}

func DefaultConfig() *Config {
	return &Config{
		Banner: BannerConfig{
			Style:          DefaultStyle,
			Font:           DefaultFont,
			DurationMillis: DefaultDurationMillis,
			Loop:           true,
			Alignment:      DefaultAlignment,
		},
		Playback: PlaybackConfig{
			Speed: DefaultSpeed,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CycleDuration converts the configured cycle length to a duration, floored
// at one millisecond.
func (c *Config) CycleDuration() time.Duration {
	d := time.Duration(c.Banner.DurationMillis) * time.Millisecond
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}
