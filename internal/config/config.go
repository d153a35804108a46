// Package config provides YAML/TOML game configuration loading and
// difficulty management for the arcade.
package config

import (
	"errors"
	"fmt"
)

// ZombiesConfig contains all configuration for the zombie arena.
type ZombiesConfig struct {
	Arena      ArenaConfig      `yaml:"arena" toml:"arena"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Weapons    []WeaponConfig   `yaml:"weapons" toml:"weapons"`
	Enemies    EnemyConfig      `yaml:"enemies" toml:"enemies"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// ArenaConfig defines the world extents in world units.
type ArenaConfig struct {
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	CullMargin float64 `yaml:"cull_margin" toml:"cull_margin"` // projectiles are dropped this far outside
}

// PlayerConfig defines the player's spawn and movement tunables.
type PlayerConfig struct {
	StartX           float64 `yaml:"start_x" toml:"start_x"`
	StartY           float64 `yaml:"start_y" toml:"start_y"`
	Speed            float64 `yaml:"speed" toml:"speed"`
	SprintMultiplier float64 `yaml:"sprint_multiplier" toml:"sprint_multiplier"`
	AnimRate         float64 `yaml:"anim_rate" toml:"anim_rate"` // frames per tick at speed 1
}

// WeaponConfig defines one weapon. The first weapon is selected at start.
type WeaponConfig struct {
	Name            string  `yaml:"name" toml:"name"`
	Interval        int     `yaml:"interval" toml:"interval"` // ticks between shots
	ProjectileSpeed float64 `yaml:"projectile_speed" toml:"projectile_speed"`
	Damage          int     `yaml:"damage" toml:"damage"`
	Sound           string  `yaml:"sound" toml:"sound"`
}

// EnemyConfig defines spawning and pursuit tunables.
type EnemyConfig struct {
	SpawnInterval int     `yaml:"spawn_interval" toml:"spawn_interval"`
	MinInterval   int     `yaml:"min_interval" toml:"min_interval"` // floor when difficulty shortens the interval
	Health        int     `yaml:"health" toml:"health"`
	Speed         float64 `yaml:"speed" toml:"speed"`
	AnimRate      float64 `yaml:"anim_rate" toml:"anim_rate"`
	SpawnPoints   []Point `yaml:"spawn_points" toml:"spawn_points"` // bottom-centre of the spawned enemy
}

// Point is a world position.
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "kills", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Kills/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`     // Added to enemy speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction" toml:"interval_reduction"` // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned by LookupPreset for names outside the presets.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// LookupPreset validates a CLI value. An empty string means no preset.
func LookupPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: %q: %w (want easy, normal, hard or fixed)", s, ErrUnknownPreset)
	}
}

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	p, _ := LookupPreset(s)
	return p
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the values the simulation relies on.
func (c ZombiesConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("config: arena %vx%v: %w", c.Arena.Width, c.Arena.Height, ErrInvalid)
	case c.Arena.CullMargin < 0:
		return fmt.Errorf("config: negative cull_margin: %w", ErrInvalid)
	case len(c.Weapons) != 2:
		return fmt.Errorf("config: need exactly 2 weapons, got %d: %w", len(c.Weapons), ErrInvalid)
	case c.Enemies.SpawnInterval < 0:
		return fmt.Errorf("config: negative spawn_interval: %w", ErrInvalid)
	case c.Enemies.Health <= 0:
		return fmt.Errorf("config: enemy health must be positive: %w", ErrInvalid)
	case len(c.Enemies.SpawnPoints) == 0:
		return fmt.Errorf("config: no spawn_points: %w", ErrInvalid)
	}
	for _, w := range c.Weapons {
		if w.Interval < 0 || w.Damage <= 0 || w.ProjectileSpeed <= 0 {
			return fmt.Errorf("config: weapon %q: %w", w.Name, ErrInvalid)
		}
	}
	return nil
}
