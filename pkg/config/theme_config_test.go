package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/modfly/pkg/embedded"
)

func TestDefaultThemeConfigValid(t *testing.T) {
	if err := DefaultThemeConfig().Validate(); err != nil {
		t.Fatalf("default theme invalid: %v", err)
	}
}

func TestParseThemeConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *ThemeConfig)
	}{
		{
			name: "alpha defaults to opaque",
			yamlContent: `
name: test
upper:
  - {offset: 0, dl: 10}
  - {offset: 1, dl: -10, alpha: 0.5}
background: {h: 10, s: 5, l: 3}
`,
			validate: func(t *testing.T, c *ThemeConfig) {
				if len(c.Upper) != 2 {
					t.Fatalf("expected 2 upper stops, got %d", len(c.Upper))
				}
				if c.Upper[0].Alpha != 1 || c.Upper[1].Alpha != 0.5 {
					t.Errorf("unexpected alphas %v/%v", c.Upper[0].Alpha, c.Upper[1].Alpha)
				}
				if c.Background.A != 1 || c.Background.H != 10 {
					t.Errorf("background = %+v", c.Background)
				}
				if len(c.Lower) != 4 {
					t.Error("lower stops should keep defaults")
				}
			},
		},
		{
			name:        "unknown mode",
			yamlContent: "mode: spiral\n",
			wantErr:     true,
			errContains: "mode",
		},
		{
			name:        "empty stops",
			yamlContent: "upper: []\n",
			wantErr:     true,
			errContains: "no stops",
		},
		{
			name:        "unsorted stops",
			yamlContent: "lower:\n  - {offset: 0.8}\n  - {offset: 0.2}\n",
			wantErr:     true,
			errContains: "sorted",
		},
		{
			name:        "offset out of range",
			yamlContent: "upper:\n  - {offset: 1.5}\n",
			wantErr:     true,
			errContains: "offset",
		},
		{
			name:        "wrong scheme count",
			yamlContent: "schemes: [0, 90]\n",
			wantErr:     true,
			errContains: "schemes",
		},
		{
			name:        "bad ambient value",
			yamlContent: "ambient:\n  count: 3\n  fallSpeed: \"[1 2\"\n",
			wantErr:     true,
			errContains: "fallSpeed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseThemeConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
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

func TestSchemeHueShift(t *testing.T) {
	c := DefaultThemeConfig()
	if c.SchemeHueShift(3) != 0 {
		t.Error("no schemes should mean no shift")
	}
	c.Schemes = []float64{0, 90, 180, 270}
	if c.SchemeHueShift(2) != 180 || c.SchemeHueShift(5) != 90 || c.SchemeHueShift(-1) != 0 {
		t.Error("scheme shift lookup wrong")
	}
}

// TestShippedThemes 仓库自带的每个主题都必须通过校验
func TestShippedThemes(t *testing.T) {
	embedded.Init(nil)
	files, err := filepath.Glob(filepath.Join("..", "..", "data", "themes", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) < 4 {
		t.Fatalf("expected at least 4 shipped themes, found %d", len(files))
	}
	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			cfg, err := LoadThemeConfig(f)
			if err != nil {
				t.Fatalf("LoadThemeConfig(%s): %v", f, err)
			}
			want := strings.TrimSuffix(filepath.Base(f), ".yaml")
			if cfg.Name != want {
				t.Errorf("theme name %q does not match file %q", cfg.Name, want)
			}
		})
	}
}

func TestLoadNamedThemeFromEmbedded(t *testing.T) {
	gothic, err := os.ReadFile(filepath.Join("..", "..", "data", "themes", "gothic.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	embedded.Init(fstest.MapFS{
		ThemePath("gothic"):   {Data: gothic},
		ThemePath("nameless"): {Data: []byte("mode: curve\n")},
	})
	defer embedded.Init(nil)

	cfg, err := LoadNamedTheme("gothic")
	if err != nil {
		t.Fatalf("LoadNamedTheme: %v", err)
	}
	if cfg.Mode != "bezier" || !cfg.Outline.Enabled {
		t.Errorf("unexpected gothic theme %+v", cfg)
	}

	// 主题名以文件名为准
	nameless, err := LoadNamedTheme("nameless")
	if err != nil {
		t.Fatalf("LoadNamedTheme(nameless): %v", err)
	}
	if nameless.Mode != "curve" || nameless.Name != "nameless" {
		t.Errorf("unexpected theme %q mode %q", nameless.Name, nameless.Mode)
	}

	names, err := ThemeNames()
	if err != nil || len(names) != 2 {
		t.Errorf("ThemeNames = %v, %v", names, err)
	}

	if _, err := LoadNamedTheme("missing"); err == nil || !strings.Contains(err.Error(), "missing") {
		t.Errorf("expected error naming the missing theme, got %v", err)
	}
}
