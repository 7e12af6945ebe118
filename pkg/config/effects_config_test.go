package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultEffectsConfigIsValid(t *testing.T) {
	cfg := DefaultEffectsConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	if cfg.Field.Spring != 0.06 {
		t.Errorf("Spring: got %v, want 0.06", cfg.Field.Spring)
	}
	if cfg.Field.Friction != 0.85 {
		t.Errorf("Friction: got %v, want 0.85", cfg.Field.Friction)
	}
	if cfg.Field.ScrollImpulse != 0.4 {
		t.Errorf("ScrollImpulse: got %v, want 0.4", cfg.Field.ScrollImpulse)
	}
}

func TestParseEffectsConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *EffectsConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
field:
  spacing: 32
cursor:
  hoverTags: [p, a]
`,
			validate: func(t *testing.T, cfg *EffectsConfig) {
				if cfg.Field.Spacing != 32 {
					t.Errorf("expected spacing = 32, got %v", cfg.Field.Spacing)
				}
				if cfg.Field.NarrowSpacing != 60 {
					t.Errorf("expected default narrowSpacing = 60, got %v", cfg.Field.NarrowSpacing)
				}
				if len(cfg.Cursor.HoverTags) != 2 {
					t.Errorf("expected 2 hover tags, got %v", cfg.Cursor.HoverTags)
				}
				if cfg.Cursor.HighlightClass != "text-glow-hover" {
					t.Errorf("expected default highlight class, got %q", cfg.Cursor.HighlightClass)
				}
			},
		},
		{
			name: "friction out of range",
			yamlContent: `
field:
  friction: 1.2
`,
			wantErr:     true,
			errContains: "friction",
		},
		{
			name: "zero spacing",
			yamlContent: `
field:
  narrowSpacing: 0
`,
			wantErr:     true,
			errContains: "spacing",
		},
		{
			name: "zero mass spring",
			yamlContent: `
cursor:
  velocity: { damping: 20, stiffness: 200, mass: 0 }
`,
			wantErr:     true,
			errContains: "velocity spring invalid",
		},
		{
			name:        "malformed yaml",
			yamlContent: "field: [1, 2",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseEffectsConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadEffectsConfigFromRepository(t *testing.T) {
	cfg, err := LoadEffectsConfig(filepath.Join("..", "..", "data", "config", "effects.yaml"))
	if err != nil {
		t.Fatalf("failed to load data/config/effects.yaml: %v", err)
	}

	def := DefaultEffectsConfig()
	if cfg.Field != def.Field {
		t.Errorf("field config in data/ drifted from defaults:\n got  %+v\n want %+v", cfg.Field, def.Field)
	}
	if cfg.Page != def.Page {
		t.Errorf("page config in data/ drifted from defaults:\n got  %+v\n want %+v", cfg.Page, def.Page)
	}
}

func TestLoadEffectsConfigMissingFile(t *testing.T) {
	_, err := LoadEffectsConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSpacingFor(t *testing.T) {
	f := DefaultEffectsConfig().Field

	tests := []struct {
		width int
		want  float64
	}{
		{width: 320, want: 60},
		{width: 767, want: 60},
		{width: 768, want: 40},
		{width: 1920, want: 40},
	}
	for _, tt := range tests {
		if got := f.SpacingFor(tt.width); got != tt.want {
			t.Errorf("SpacingFor(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestSpringConfigConversion(t *testing.T) {
	s := SpringConfig{Damping: 20, Stiffness: 200, Mass: 1}

	if got, want := s.AngularFrequency(), math.Sqrt(200); math.Abs(got-want) > 1e-9 {
		t.Errorf("AngularFrequency = %v, want %v", got, want)
	}
	if got, want := s.DampingRatio(), 20/(2*math.Sqrt(200)); math.Abs(got-want) > 1e-9 {
		t.Errorf("DampingRatio = %v, want %v", got, want)
	}
}

func TestRGBAWithAlphaClamps(t *testing.T) {
	c := RGBA{R: 1, G: 2, B: 3}
	if got := c.WithAlpha(2).A; got != 255 {
		t.Errorf("alpha 2 should clamp to 255, got %d", got)
	}
	if got := c.WithAlpha(-1).A; got != 0 {
		t.Errorf("alpha -1 should clamp to 0, got %d", got)
	}
	if got := c.WithAlpha(0.2).A; got != 51 {
		t.Errorf("alpha 0.2 should be 51, got %d", got)
	}
}
