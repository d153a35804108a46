package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadZombies loads the zombie arena configuration.
// Search order: customPath -> ~/.arcade/configs/zombies.yaml -> ./configs/zombies.yaml
// -> embedded default -> DefaultZombiesConfig.
// Custom paths ending in .toml are decoded as TOML. Values missing from a
// file keep their defaults.
func LoadZombies(customPath string) (ZombiesConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ZombiesConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decodeZombies(customPath, data)
		if err != nil {
			return ZombiesConfig{}, err
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("zombies.yaml"), filepath.Join("configs", "zombies.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeZombies(path, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeZombies("zombies.yaml", defaultZombiesYAML)
	if err != nil {
		return DefaultZombiesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeZombies parses data on top of the defaults and validates the result.
func decodeZombies(name string, data []byte) (ZombiesConfig, error) {
	cfg := DefaultZombiesConfig()

	var err error
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return ZombiesConfig{}, fmt.Errorf("config: parse %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return ZombiesConfig{}, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyZombiesPreset modifies the config based on a difficulty preset.
func ApplyZombiesPreset(cfg *ZombiesConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Health = 1
	case DifficultyHard:
		cfg.Enemies.Health = 3
	}
}
