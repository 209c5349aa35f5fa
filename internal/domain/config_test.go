package domain

import "testing"

func TestEffectiveFor_LaneDefaults(t *testing.T) {
	lane := LaneConfig{StartTime: "10:00", StartNumber: 100, Interval: 2, AffiliationSplit: true}

	cfg := EffectiveFor("M21A", lane, nil)
	if cfg.StartTime != "10:00" || cfg.StartNumber != 100 || cfg.Interval != 2 || !cfg.AffiliationSplit {
		t.Fatalf("expected lane defaults, got %+v", cfg)
	}
}

func TestEffectiveFor_OverrideWins(t *testing.T) {
	lane := LaneConfig{StartTime: "10:00", StartNumber: 100, Interval: 2, AffiliationSplit: true}

	startTime := "12:30"
	startNumber := 500
	interval := 3
	split := false
	overrides := map[string]ClassOverride{
		"M21A": {
			StartTime:        &startTime,
			StartNumber:      &startNumber,
			Interval:         &interval,
			AffiliationSplit: &split,
		},
	}

	cfg := EffectiveFor("M21A", lane, overrides)
	if cfg.StartTime != "12:30" || cfg.StartNumber != 500 || cfg.Interval != 3 || cfg.AffiliationSplit {
		t.Fatalf("expected override values, got %+v", cfg)
	}

	// Other classes keep lane defaults.
	cfg = EffectiveFor("W21A", lane, overrides)
	if cfg.StartTime != "10:00" || cfg.Interval != 2 {
		t.Fatalf("override leaked to other class: %+v", cfg)
	}
}

func TestEffectiveFor_PartialOverride(t *testing.T) {
	lane := LaneConfig{StartTime: "10:00", StartNumber: 100, Interval: 2, AffiliationSplit: true}

	interval := 4
	overrides := map[string]ClassOverride{"M21A": {Interval: &interval}}

	cfg := EffectiveFor("M21A", lane, overrides)
	if cfg.Interval != 4 {
		t.Fatalf("expected interval override, got %+v", cfg)
	}
	if cfg.StartTime != "10:00" || cfg.StartNumber != 100 || !cfg.AffiliationSplit {
		t.Fatalf("unset override fields must keep lane values: %+v", cfg)
	}
}

func TestEffectiveFor_ZeroIntervalDefaultsToOne(t *testing.T) {
	lane := LaneConfig{StartTime: "10:00", StartNumber: 100}
	if cfg := EffectiveFor("M21A", lane, nil); cfg.Interval != 1 {
		t.Fatalf("expected interval fallback to 1, got %d", cfg.Interval)
	}
}
