package config

var Presets = map[string]*Config{
	"party": {
		Banner:   BannerConfig{Style: "rainbow", Font: "standard", DurationMillis: 2000, Loop: true, Alignment: "center"},
		Playback: PlaybackConfig{Speed: 1.0},
	},
	"retro": {
		Banner:   BannerConfig{Style: "crt", Font: "standard", DurationMillis: 3000, Loop: true, Alignment: "center"},
		Playback: PlaybackConfig{Speed: 1.0},
	},
	"hacker": {
		Banner:   BannerConfig{Style: "matrix", Font: "standard", DurationMillis: 4000, Loop: true, Alignment: "left"},
		Playback: PlaybackConfig{Speed: 1.5},
	},
	"calm": {
		Banner:   BannerConfig{Style: "breathe", Font: "standard", DurationMillis: 5000, Loop: true, Alignment: "center"},
		Playback: PlaybackConfig{Speed: 0.75},
	},
	"boot": {
		Banner:   BannerConfig{Style: "typewriter", Font: "standard", DurationMillis: 2500, Loop: false, Alignment: "left"},
		Playback: PlaybackConfig{Speed: 1.0},
	},
	"storm": {
		Banner:   BannerConfig{Style: "glitch", Font: "standard", DurationMillis: 1500, Loop: true, Alignment: "center"},
		Playback: PlaybackConfig{Speed: 2.0},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
