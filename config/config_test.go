package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TICKETRUSH_DECAY_RATE", "")
	t.Setenv("TICKETRUSH_PRESOLD_PROB", "")
	t.Setenv("TICKETRUSH_MAX_PRICE", "")
	t.Setenv("TICKETRUSH_SEED", "")
	t.Setenv("TICKETRUSH_NAME", "")

	cfg := Load()
	if cfg.Demand.DecayRate != 0.15 {
		t.Fatalf("expected default decay 0.15, got %v", cfg.Demand.DecayRate)
	}
	if cfg.Demand.PresoldProb != 0.2 {
		t.Fatalf("expected default presold 0.2, got %v", cfg.Demand.PresoldProb)
	}
	if cfg.MaxPrice != 1221 {
		t.Fatalf("expected default max price 1221, got %v", cfg.MaxPrice)
	}
	if cfg.Seed != 0 {
		t.Fatalf("expected zero seed, got %v", cfg.Seed)
	}
	if cfg.Name != "anonymous" {
		t.Fatalf("expected anonymous name, got %q", cfg.Name)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TICKETRUSH_DECAY_RATE", "0.05")
	t.Setenv("TICKETRUSH_PRESOLD_PROB", "0.5")
	t.Setenv("TICKETRUSH_MAX_PRICE", "600")
	t.Setenv("TICKETRUSH_SEED", "42")
	t.Setenv("TICKETRUSH_NAME", "speedrunner")

	cfg := Load()
	if cfg.Demand.DecayRate != 0.05 {
		t.Fatalf("expected decay 0.05, got %v", cfg.Demand.DecayRate)
	}
	if cfg.Demand.PresoldProb != 0.5 {
		t.Fatalf("expected presold 0.5, got %v", cfg.Demand.PresoldProb)
	}
	if cfg.MaxPrice != 600 {
		t.Fatalf("expected max price 600, got %v", cfg.MaxPrice)
	}
	if cfg.Seed != 42 {
		t.Fatalf("expected seed 42, got %v", cfg.Seed)
	}
	if cfg.Name != "speedrunner" {
		t.Fatalf("expected name speedrunner, got %q", cfg.Name)
	}
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("TICKETRUSH_DECAY_RATE", "not-a-number")
	t.Setenv("TICKETRUSH_MAX_PRICE", "-5")

	cfg := Load()
	if cfg.Demand.DecayRate != 0.15 {
		t.Fatalf("expected fallback decay, got %v", cfg.Demand.DecayRate)
	}
	if cfg.MaxPrice != 1221 {
		t.Fatalf("expected fallback max price, got %v", cfg.MaxPrice)
	}
}
