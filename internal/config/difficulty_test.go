package config

import (
	"math"
	"testing"
)

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	dm := NewDifficultyManager(DefaultZombiesConfig().Difficulty)

	if dm.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := dm.Interval(30, 10, 500, 100000); got != 30 {
		t.Errorf("Interval() = %d, expected constant 30", got)
	}
	if got := dm.Speed(1, 500, 100000); got != 1 {
		t.Errorf("Speed() = %f, expected 1", got)
	}
}

func TestDifficultyProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "kills", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5, IntervalReduction: 20},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		kills    int
		level    float64
		interval int
		speed    float64
	}{
		{0, 0, 30, 1},
		{50, 0.5, 20, 1.25},
		{100, 1, 10, 1.5},
		{1000, 1, 10, 1.5},
	}

	for _, tc := range tests {
		if got := dm.Level(tc.kills, 0); math.Abs(got-tc.level) > 1e-9 {
			t.Errorf("Level(%d) = %f, expected %f", tc.kills, got, tc.level)
		}
		if got := dm.Interval(30, 5, tc.kills, 0); got != tc.interval {
			t.Errorf("Interval(kills=%d) = %d, expected %d", tc.kills, got, tc.interval)
		}
		if got := dm.Speed(1, tc.kills, 0); math.Abs(got-tc.speed) > 1e-9 {
			t.Errorf("Speed(kills=%d) = %f, expected %f", tc.kills, got, tc.speed)
		}
	}
}

func TestDifficultyIntervalFloor(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 10},
		Scaling:     ScalingConfig{IntervalReduction: 100},
	})

	if got := dm.Interval(30, 10, 0, 10); got != 10 {
		t.Errorf("Interval() = %d, expected floor 10", got)
	}
	if got := dm.Interval(5, 10, 0, 10); got != 5 {
		t.Errorf("Interval() = %d, floor must not raise a short base", got)
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "kills", MaxAt: 0},
	})
	dm.SetInitialLevel(1.7)

	if got := dm.Level(0, 0); got != 1 {
		t.Errorf("initial level should clamp to 1, got %f", got)
	}

	dm.SetEnabled(false)
	if dm.Level(0, 0) != 0 {
		t.Error("disabled manager should report level 0")
	}
}
