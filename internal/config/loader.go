package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvMapsDir  = "PATROL_MAPS_DIR"
	EnvLogLevel = "PATROL_LOG_LEVEL"
	EnvColor    = "PATROL_COLOR"
	EnvTrail    = "PATROL_TRAIL"
)

// Load loads the patrol configuration.
// Search order: customPath -> ~/.patrol/config.yaml -> ./configs/patrol.yaml -> embedded default
// Settings missing from the file keep their default values. The result is
// not validated; callers merge their overrides first and then call Validate.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = Default()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/patrol.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".patrol", filename)
}

// LoadEnvFile reads KEY=VALUE pairs from a dotenv file. A missing file
// yields an empty map.
func LoadEnvFile(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("config: failed to read env file %s: %w", path, err)
	}
	return env, nil
}

// ApplyEnv overrides settings from environment variables. Values in the
// process environment take precedence over values in fileEnv. Only values
// that cannot be decoded are reported; ranges are checked by Validate.
func ApplyEnv(cfg *Config, fileEnv map[string]string) error {
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	if v, ok := lookup(EnvMapsDir); ok {
		cfg.Maps.Dir = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvColor); ok {
		cfg.Render.Color = v
	}
	if v, ok := lookup(EnvTrail); ok {
		trail, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s must be a boolean: %w", EnvTrail, err)
		}
		cfg.Render.Trail = trail
	}

	return nil
}
