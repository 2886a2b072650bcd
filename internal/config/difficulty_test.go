package config

import "testing"

func TestDifficultyDisabledUsesBaseValues(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 1.0,
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, ExtraPursuers: 4},
	})

	if d.Level() != 0 {
		t.Errorf("Level() = %v, expected 0 when disabled", d.Level())
	}
	if got := d.PursuerSpeed(1, 5); got != 1 {
		t.Errorf("PursuerSpeed = %v, expected 1", got)
	}
	if got := d.PursuerCount(3); got != 3 {
		t.Errorf("PursuerCount = %v, expected 3", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, ExtraPursuers: 4},
	})

	if got := d.PursuerSpeed(2, 5); got != 3 {
		t.Errorf("PursuerSpeed = %v, expected 3", got)
	}
	if got := d.PursuerCount(3); got != 5 {
		t.Errorf("PursuerCount = %v, expected 5", got)
	}
}

func TestDifficultyKeepsPursuersSlower(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Scaling:      ScalingConfig{SpeedMultiplier: 10},
	})

	if got := d.PursuerSpeed(1, 5); got >= 5 {
		t.Errorf("PursuerSpeed = %v, expected below the avatar speed 5", got)
	}
}

func TestDifficultyApply(t *testing.T) {
	cfg := DefaultChaseConfig()
	cfg.Difficulty.InitialLevel = 1.0

	scaled := NewDifficultyManager(cfg.Difficulty).Apply(cfg)

	if scaled.Pursuers.Count != cfg.Pursuers.Count+cfg.Difficulty.Scaling.ExtraPursuers {
		t.Errorf("count = %d, expected %d", scaled.Pursuers.Count, cfg.Pursuers.Count+cfg.Difficulty.Scaling.ExtraPursuers)
	}
	if scaled.Pursuers.Speed != 1.5 {
		t.Errorf("speed = %v, expected 1.5", scaled.Pursuers.Speed)
	}
	if cfg.Pursuers.Speed != 1 {
		t.Error("Apply must not modify its argument")
	}
	if err := scaled.Validate(); err != nil {
		t.Errorf("scaled config should stay valid: %v", err)
	}
}

func TestDifficultyClampsLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true, InitialLevel: 3})
	if d.Level() != 1 {
		t.Errorf("Level() = %v, expected clamp to 1", d.Level())
	}
}
