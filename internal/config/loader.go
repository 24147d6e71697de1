package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMatch loads the match configuration.
// Search order: customPath -> ~/.matchday/configs/match.yaml -> ./configs/match.yaml -> embedded default
func LoadMatch(customPath string) (MatchConfig, error) {
	cfg, err := load("match", customPath, DefaultMatchConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLeague loads the league configuration.
// Search order: customPath -> ~/.matchday/configs/league.yaml -> ./configs/league.yaml -> embedded default
func LoadLeague(customPath string) (LeagueConfig, error) {
	cfg, err := load("league", customPath, func() LeagueConfig { return LeagueConfig{} })
	if err != nil {
		return cfg, err
	}
	if len(cfg.Clubs) == 0 {
		cfg = DefaultLeagueConfig()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load overlays the first readable document onto base(). A custom path must
// exist and parse; the user and local directories are skipped on any error.
func load[T any](name, customPath string, base func() T) (T, error) {
	filename := name + ".yaml"

	if customPath != "" {
		cfg := base()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := tryFile[T](userCfgPath, base); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile[T](filepath.Join("configs", filename), base); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := base()
	if err := yaml.Unmarshal(GetDefaultYAML(name), &cfg); err != nil {
		return base(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryFile[T any](path string, base func() T) (T, bool) {
	cfg := base()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".matchday", "configs", filename)
}

// WriteMatch writes cfg as YAML, creating parent directories.
func WriteMatch(path string, cfg MatchConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
