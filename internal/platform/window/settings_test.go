package window

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
)

func openTestData(t *testing.T, name string) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	m, err := gdata.Open(gdata.Config{AppName: name})
	if err != nil {
		t.Fatalf("gdata.Open() failed: %v", err)
	}
	return m
}

func TestSettingsDefaultsWithoutStore(t *testing.T) {
	sm := NewSettingsManager(nil, log.New(io.Discard))

	if got := sm.Settings(); got != DefaultSettings() {
		t.Errorf("Settings() = %+v, expected defaults", got)
	}
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() without a store should be a no-op, got %v", err)
	}
}

func TestSettingsLoadSave(t *testing.T) {
	store := openTestData(t, "zombie_arcade_settings_test")
	logger := log.New(io.Discard)

	sm := NewSettingsManager(store, logger)
	sm.SetMusicVolume(0.25)
	sm.SetSoundVolume(0.5)
	sm.SetFullscreen(true)
	sm.ToggleMute()
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	reloaded := NewSettingsManager(store, logger).Settings()
	expected := Settings{
		MusicVolume: 0.25,
		SoundVolume: 0.5,
		Fullscreen:  true,
	}
	if reloaded != expected {
		t.Errorf("reloaded = %+v, expected %+v", reloaded, expected)
	}
}

func TestSettingsCorruptFallsBack(t *testing.T) {
	store := openTestData(t, "zombie_arcade_settings_corrupt")
	if err := store.SaveObjectProp(settingsObject, settingsProperty, []byte("musicVolume: [")); err != nil {
		t.Fatalf("SaveObjectProp() failed: %v", err)
	}

	sm := NewSettingsManager(store, log.New(io.Discard))
	if got := sm.Settings(); got != DefaultSettings() {
		t.Errorf("Settings() = %+v, expected defaults after a bad file", got)
	}
}

func TestToggleMute(t *testing.T) {
	sm := NewSettingsManager(nil, log.New(io.Discard))

	sm.ToggleMute()
	s := sm.Settings()
	if s.MusicEnabled || s.SoundEnabled {
		t.Errorf("first toggle should mute everything, got %+v", s)
	}

	sm.ToggleMute()
	s = sm.Settings()
	if !s.MusicEnabled || !s.SoundEnabled {
		t.Errorf("second toggle should unmute everything, got %+v", s)
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.4, 0.4},
		{1, 1},
		{3, 1},
	}

	for _, tt := range tests {
		if got := clampVolume(tt.in); got != tt.expected {
			t.Errorf("clampVolume(%v) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}
