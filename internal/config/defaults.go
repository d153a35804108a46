package config

import (
	_ "embed"
)

//go:embed defaults/zombies.yaml
var defaultZombiesYAML []byte

// DefaultZombiesConfig returns the built-in zombie arena configuration.
func DefaultZombiesConfig() ZombiesConfig {
	return ZombiesConfig{
		Arena: ArenaConfig{
			Width:      1024,
			Height:     512,
			CullMargin: 16,
		},
		Player: PlayerConfig{
			StartX:           360,
			StartY:           360,
			Speed:            1,
			SprintMultiplier: 2,
			AnimRate:         0.05,
		},
		Weapons: []WeaponConfig{
			{Name: "Pistol", Interval: 20, ProjectileSpeed: 10, Damage: 2, Sound: "gunShot"},
			{Name: "Machine gun", Interval: 8, ProjectileSpeed: 7, Damage: 1, Sound: "machineGun"},
		},
		Enemies: EnemyConfig{
			SpawnInterval: 30,
			MinInterval:   10,
			Health:        2,
			Speed:         1,
			AnimRate:      0.05,
			SpawnPoints: []Point{
				{X: 240, Y: 160},
				{X: 240, Y: 368},
				{X: 784, Y: 160},
				{X: 784, Y: 368},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "kills",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 15,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "zombies":
		return defaultZombiesYAML
	default:
		return nil
	}
}
