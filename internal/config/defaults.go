package config

import (
	_ "embed"
)

//go:embed defaults/patrol.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Maps: MapsConfig{
			Dir: "./maps",
		},
		Log: LogConfig{
			Level: "info",
		},
		Render: RenderConfig{
			Color: string(ColorAuto),
			Theme: "default",
		},
		Watch: WatchConfig{
			TickRate: 20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
