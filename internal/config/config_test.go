package config

import (
	"testing"

	"github.com/tsawler/sections/sections"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Sections.WidthRatio != 0.9 || cfg.Sections.MergeScope != sections.ScopeDocument {
		t.Errorf("unexpected defaults: %+v", cfg.Sections)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SECTIONS_WIDTH_RATIO", "0.8")
	t.Setenv("SECTIONS_LETTER_RATIO_RULE", "true")
	t.Setenv("SECTIONS_MERGE_SCOPE", "column")
	t.Setenv("SECTIONS_PAGE_ORDER", "first-seen")
	t.Setenv("SECTIONS_CONTENT_TYPES", "1")
	t.Setenv("SECTIONS_LOG_LEVEL", "debug")
	t.Setenv("SECTIONS_BODY_CONTENT_THRESHOLD", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	sc := cfg.Sections
	if sc.WidthRatio != 0.8 || !sc.LetterRatioRule || !sc.ContentTypes {
		t.Errorf("environment not applied: %+v", sc)
	}
	if sc.MergeScope != sections.ScopeColumn || sc.PageOrder != sections.PageOrderFirstSeen {
		t.Errorf("scope/order not applied: %v %v", sc.MergeScope, sc.PageOrder)
	}
	if sc.BodyContentThreshold != 0.25 {
		t.Errorf("invalid number should fall back to default, got %v", sc.BodyContentThreshold)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadInvalidScope(t *testing.T) {
	t.Setenv("SECTIONS_MERGE_SCOPE", "sideways")
	if _, err := Load(); err == nil {
		t.Error("expected error for unknown merge scope")
	}
}

func TestLoadInvalidPageOrder(t *testing.T) {
	t.Setenv("SECTIONS_PAGE_ORDER", "frist-seen")
	if _, err := Load(); err == nil {
		t.Error("expected error for unknown page order")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Sections: sections.DefaultConfig()}

	cfg.Sections.WidthRatio = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for width ratio above 1")
	}

	cfg.Sections = sections.DefaultConfig()
	cfg.Sections.BodyContentThreshold = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero body threshold")
	}

	cfg.Sections = sections.DefaultConfig()
	cfg.Sections.LetterRatioThreshold = -0.1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative letter ratio threshold")
	}
}
