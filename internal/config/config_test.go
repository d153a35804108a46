package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decodeZombies("zombies.yaml", GetDefaultYAML("zombies"))
	if err != nil {
		t.Fatalf("embedded default does not decode: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultZombiesConfig()) {
		t.Errorf("embedded YAML drifted from DefaultZombiesConfig:\n%+v\n%+v", cfg, DefaultZombiesConfig())
	}
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadZombiesSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := LoadZombies("")
	if err != nil {
		t.Fatalf("LoadZombies() error: %v", err)
	}
	if cfg.Enemies.SpawnInterval != 30 {
		t.Errorf("expected embedded default, got spawn_interval %d", cfg.Enemies.SpawnInterval)
	}

	writeFile(t, work, "configs/zombies.yaml", "enemies:\n  spawn_interval: 40\n")
	cfg, _ = LoadZombies("")
	if cfg.Enemies.SpawnInterval != 40 {
		t.Errorf("local config not used, spawn_interval %d", cfg.Enemies.SpawnInterval)
	}
	if cfg.Enemies.Health != 2 || len(cfg.Enemies.SpawnPoints) != 4 {
		t.Error("fields missing from the file should keep their defaults")
	}

	writeFile(t, home, ".arcade/configs/zombies.yaml", "enemies:\n  spawn_interval: 50\n")
	cfg, _ = LoadZombies("")
	if cfg.Enemies.SpawnInterval != 50 {
		t.Errorf("user config should win over local, spawn_interval %d", cfg.Enemies.SpawnInterval)
	}

	// Broken user config falls through to the local one
	writeFile(t, home, ".arcade/configs/zombies.yaml", "weapons: []\n")
	cfg, _ = LoadZombies("")
	if cfg.Enemies.SpawnInterval != 40 {
		t.Errorf("invalid user config should be skipped, spawn_interval %d", cfg.Enemies.SpawnInterval)
	}
}

func TestLoadZombiesCustomPath(t *testing.T) {
	dir := t.TempDir()

	yamlPath := writeFile(t, dir, "arena.yaml", `
arena:
  width: 640
  height: 480
weapons:
  - {name: Rifle, interval: 30, projectile_speed: 12, damage: 3, sound: gunShot}
  - {name: SMG, interval: 4, projectile_speed: 6, damage: 1, sound: machineGun}
`)
	cfg, err := LoadZombies(yamlPath)
	if err != nil {
		t.Fatalf("LoadZombies(yaml) error: %v", err)
	}
	if cfg.Arena.Width != 640 || cfg.Weapons[0].Name != "Rifle" || cfg.Weapons[1].Interval != 4 {
		t.Errorf("yaml not applied: %+v", cfg)
	}
	if cfg.Arena.CullMargin != 16 {
		t.Errorf("cull_margin should keep its default, got %v", cfg.Arena.CullMargin)
	}

	tomlPath := writeFile(t, dir, "arena.toml", `
[enemies]
spawn_interval = 12
health = 5

[difficulty]
enabled = true
`)
	cfg, err = LoadZombies(tomlPath)
	if err != nil {
		t.Fatalf("LoadZombies(toml) error: %v", err)
	}
	if cfg.Enemies.SpawnInterval != 12 || cfg.Enemies.Health != 5 || !cfg.Difficulty.Enabled {
		t.Errorf("toml not applied: %+v", cfg.Enemies)
	}
	if len(cfg.Weapons) != 2 {
		t.Errorf("weapons should keep defaults, got %d", len(cfg.Weapons))
	}
}

func TestLoadZombiesErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadZombies(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := writeFile(t, dir, "bad.yaml", "arena: [not, a, map]\n")
	if _, err := LoadZombies(bad); err == nil {
		t.Error("malformed yaml should fail")
	}

	invalid := writeFile(t, dir, "invalid.yaml", "enemies:\n  health: 0\n")
	_, err := LoadZombies(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ZombiesConfig)
		ok     bool
	}{
		{"defaults", func(*ZombiesConfig) {}, true},
		{"zero arena", func(c *ZombiesConfig) { c.Arena.Width = 0 }, false},
		{"one weapon", func(c *ZombiesConfig) { c.Weapons = c.Weapons[:1] }, false},
		{"no spawn points", func(c *ZombiesConfig) { c.Enemies.SpawnPoints = nil }, false},
		{"zero damage", func(c *ZombiesConfig) { c.Weapons[1].Damage = 0 }, false},
		{"zero interval allowed", func(c *ZombiesConfig) { c.Weapons[0].Interval = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultZombiesConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestApplyZombiesPreset(t *testing.T) {
	cfg := DefaultZombiesConfig()
	ApplyZombiesPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 || cfg.Enemies.Health != 3 {
		t.Errorf("hard preset not applied: %+v", cfg.Difficulty)
	}

	ApplyZombiesPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	if ParsePreset("normal") != DifficultyNormal || ParsePreset("insane") != "" {
		t.Error("ParsePreset wrong")
	}
}

func TestLookupPreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"hrad", "", true},
		{"Hard", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := LookupPreset(tt.in)
			if got != tt.want {
				t.Errorf("LookupPreset(%q) = %q, expected %q", tt.in, got, tt.want)
			}
			if tt.wantErr != errors.Is(err, ErrUnknownPreset) {
				t.Errorf("LookupPreset(%q) error = %v", tt.in, err)
			}
		})
	}
}
