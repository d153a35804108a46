package window

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the window frontend preferences. They are global, not per
// player, and survive between runs.
type Settings struct {
	MusicVolume  float64 `yaml:"musicVolume"` // 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"`
	SoundEnabled bool    `yaml:"soundEnabled"`
	Fullscreen   bool    `yaml:"fullscreen"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		MusicVolume:  0.6,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
	}
}

const (
	appName          = "zombie-arcade"
	settingsObject   = "settings"
	settingsProperty = "window"
)

// SettingsManager loads and saves Settings through gdata.
// A nil gdata manager keeps settings in memory only.
type SettingsManager struct {
	store    *gdata.Manager
	settings Settings
	logger   *log.Logger
}

// NewSettingsManager creates a manager and loads whatever was saved.
// A load failure is logged and the defaults are used.
func NewSettingsManager(store *gdata.Manager, logger *log.Logger) *SettingsManager {
	if logger == nil {
		logger = log.Default()
	}
	sm := &SettingsManager{
		store:    store,
		settings: DefaultSettings(),
		logger:   logger,
	}
	if err := sm.Load(); err != nil {
		logger.Warn("could not load settings, using defaults", "error", err)
	}
	return sm
}

// OpenSettings opens the per-user data directory and loads the settings
// from it. If the directory cannot be opened the settings live in memory.
func OpenSettings(logger *log.Logger) *SettingsManager {
	if logger == nil {
		logger = log.Default()
	}
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("settings will not persist", "error", err)
		store = nil
	}
	return NewSettingsManager(store, logger)
}

// Load reads saved settings. Missing settings are not an error.
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("window: load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("window: decode settings: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	sm.settings = loaded
	return nil
}

// Save writes the current settings. It is a no-op without a store.
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("window: encode settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("window: save settings: %w", err)
	}
	return nil
}

// Settings returns a copy of the current settings.
func (sm *SettingsManager) Settings() Settings {
	return sm.settings
}

func (sm *SettingsManager) SetMusicVolume(v float64) {
	sm.settings.MusicVolume = clampVolume(v)
}

func (sm *SettingsManager) SetSoundVolume(v float64) {
	sm.settings.SoundVolume = clampVolume(v)
}

func (sm *SettingsManager) SetFullscreen(on bool) {
	sm.settings.Fullscreen = on
}

// ToggleMute silences music and sound together, or restores both.
func (sm *SettingsManager) ToggleMute() {
	on := !(sm.settings.MusicEnabled || sm.settings.SoundEnabled)
	sm.settings.MusicEnabled = on
	sm.settings.SoundEnabled = on
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
