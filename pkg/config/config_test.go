package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Dock.Policy != "collapse" {
		t.Errorf("default policy = %q, want collapse", cfg.Dock.Policy)
	}
	if cfg.Dock.HoldThreshold.Duration != 250*time.Millisecond {
		t.Errorf("default hold threshold = %v, want 250ms", cfg.Dock.HoldThreshold.Duration)
	}
}

func TestLoadFromReader(t *testing.T) {
	input := `
[general]
log_level = "debug"

[dock]
policy = "fade"
hold_threshold = "100ms"
items = ["a", "b", "c"]
cell_width = 10

[theme]
name = "gruvbox"
`
	cfg, err := LoadFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("parsed config invalid: %v", err)
	}

	if cfg.Dock.Policy != "fade" {
		t.Errorf("policy = %q, want fade", cfg.Dock.Policy)
	}
	if cfg.Dock.HoldThreshold.Duration != 100*time.Millisecond {
		t.Errorf("hold threshold = %v, want 100ms", cfg.Dock.HoldThreshold.Duration)
	}
	if len(cfg.Dock.Items) != 3 || cfg.Dock.Items[0] != "a" {
		t.Errorf("items = %v, want [a b c]", cfg.Dock.Items)
	}
	if cfg.Dock.CellWidth != 10 {
		t.Errorf("cell width = %d, want 10", cfg.Dock.CellWidth)
	}
	if cfg.Theme.Name != "gruvbox" {
		t.Errorf("theme = %q, want gruvbox", cfg.Theme.Name)
	}
}

func TestLoadFromReaderKeepsDefaults(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(`[theme]` + "\n" + `name = "light"`))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Dock.Policy != "collapse" {
		t.Errorf("partial config lost default policy, got %q", cfg.Dock.Policy)
	}
	if cfg.Theme.Name != "light" {
		t.Errorf("theme = %q, want light", cfg.Theme.Name)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DOCKLINE_THEME", "tokyonight")
	t.Setenv("DOCKLINE_POLICY", "fade")
	t.Setenv("DOCKLINE_HOLD", "1s")

	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}

	if cfg.Theme.Name != "tokyonight" {
		t.Errorf("theme = %q, want env override tokyonight", cfg.Theme.Name)
	}
	if cfg.Dock.Policy != "fade" {
		t.Errorf("policy = %q, want env override fade", cfg.Dock.Policy)
	}
	if cfg.Dock.HoldThreshold.Duration != time.Second {
		t.Errorf("hold threshold = %v, want 1s", cfg.Dock.HoldThreshold.Duration)
	}
}

func TestValidateRejectsBadPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dock.Policy = "teleport"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestValidateRejectsDuplicateItems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dock.Items = []string{"a", "b", "a"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for duplicate items")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error %q should mention the duplicate", err)
	}
}

func TestValidateRejectsEmptyItems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dock.Items = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty item list")
	}
}

func TestDurationRejectsNegative(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("-5s")); err == nil {
		t.Fatal("expected error for negative duration")
	}
}

func TestDurationRoundTrip(t *testing.T) {
	d := Duration{750 * time.Millisecond}
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var back Duration
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q): %v", text, err)
	}
	if back.Duration != d.Duration {
		t.Errorf("round trip: got %v, want %v", back.Duration, d.Duration)
	}
}
