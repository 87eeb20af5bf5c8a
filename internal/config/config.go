// Package config provides YAML-based configuration loading for the patrol
// command-line tools.
package config

import "fmt"

// Config contains all configuration for the patrol tools.
type Config struct {
	Maps   MapsConfig   `yaml:"maps"`
	Log    LogConfig    `yaml:"log"`
	Render RenderConfig `yaml:"render"`
	Watch  WatchConfig  `yaml:"watch"`
}

// MapsConfig defines where map files are looked up.
type MapsConfig struct {
	Dir         string `yaml:"dir"`          // Directory scanned in addition to the builtin maps
	SkipBuiltin bool   `yaml:"skip_builtin"` // Hide the maps compiled into the binary
}

// LogConfig defines logging output.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn or error
	Timestamps bool   `yaml:"timestamps"`
}

// RenderConfig defines how maps are drawn by show and watch.
type RenderConfig struct {
	Color string `yaml:"color"` // auto, always or never
	Theme string `yaml:"theme"` // default or mono
	Trail bool   `yaml:"trail"` // Draw |, - and + instead of X
}

// WatchConfig defines the interactive viewer.
type WatchConfig struct {
	TickRate int `yaml:"tick_rate"` // Steps per second
}

// ColorMode selects whether styled output is produced.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	colorModes = []string{string(ColorAuto), string(ColorAlways), string(ColorNever)}
	themes     = []string{"default", "mono"}
)

// Validate checks that enumerated settings hold known values.
func (c Config) Validate() error {
	if !oneOf(c.Log.Level, logLevels) {
		return fmt.Errorf("config: log.level %q must be one of %v", c.Log.Level, logLevels)
	}
	if !oneOf(c.Render.Color, colorModes) {
		return fmt.Errorf("config: render.color %q must be one of %v", c.Render.Color, colorModes)
	}
	if !oneOf(c.Render.Theme, themes) {
		return fmt.Errorf("config: render.theme %q must be one of %v", c.Render.Theme, themes)
	}
	if c.Watch.TickRate <= 0 || c.Watch.TickRate > 240 {
		return fmt.Errorf("config: watch.tick_rate %d must be between 1 and 240", c.Watch.TickRate)
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
