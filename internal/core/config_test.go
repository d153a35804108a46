package core

import "testing"

func TestWithDefaults(t *testing.T) {
	got := RuntimeConfig{ScreenW: 10, ScreenH: 5}.WithDefaults()
	if got.TickRate != DefaultTickRate {
		t.Errorf("TickRate = %d, expected %d", got.TickRate, DefaultTickRate)
	}
	if got.Seed == 0 {
		t.Error("a zero seed should be replaced")
	}
	if got.ScreenW != 10 || got.ScreenH != 5 {
		t.Errorf("screen size changed: %dx%d", got.ScreenW, got.ScreenH)
	}

	kept := RuntimeConfig{TickRate: 60, Seed: 42}.WithDefaults()
	if kept.TickRate != 60 || kept.Seed != 42 {
		t.Errorf("explicit values should be kept, got %+v", kept)
	}
}
