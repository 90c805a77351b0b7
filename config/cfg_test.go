package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"

	"syncope/common"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return configPath
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	r := cfg.Rhythm
	if r.BaseFontSize != 16 || r.BaseLineHeight != 1.6 || r.CapHeight != 0.68 || r.Scale != 1.5 {
		t.Errorf("unexpected rhythm defaults: %+v", r)
	}
	want := map[string]int{"h1": 4, "h2": 3, "h3": 2, "h4": 1, "p": 0}
	if len(r.Factors) != len(want) {
		t.Fatalf("Factors = %v, want %v", r.Factors, want)
	}
	for k, v := range want {
		if r.Factors[k] != v {
			t.Errorf("Factors[%s] = %d, want %d", k, r.Factors[k], v)
		}
	}
	if cfg.Font.Family != "Helvetica" || !cfg.Font.BoldHeaders {
		t.Errorf("unexpected font defaults: %+v", cfg.Font)
	}
	if cfg.Output.Unit != common.OutputUnitEm || cfg.Output.Syntax != common.OutputSyntaxCss {
		t.Errorf("unexpected output defaults: %+v", cfg.Output)
	}
	// template fields must survive configuration processing unexpanded
	if !strings.Contains(cfg.Output.HeaderTemplate, "{{ .App }}") {
		t.Errorf("HeaderTemplate was expanded: %q", cfg.Output.HeaderTemplate)
	}
	if !strings.Contains(cfg.Output.NameTemplate, "slug") {
		t.Errorf("NameTemplate was expanded: %q", cfg.Output.NameTemplate)
	}
	if cfg.Preview.TextWidth != 40 || !cfg.Preview.ShowGrid {
		t.Errorf("unexpected preview defaults: %+v", cfg.Preview)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	configPath := writeConfig(t, `version: 1
rhythm:
  base_font_size: 18
  base_line_height: 1.5
  scale: 1.25
  header_spacing:
    before: 1
    after: 1
font:
  family: Georgia
  bold_headers: false
output:
  unit: px
  syntax: scss
logging:
  console:
    level: normal
`)

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Rhythm.BaseFontSize != 18 || cfg.Rhythm.BaseLineHeight != 1.5 || cfg.Rhythm.Scale != 1.25 {
		t.Errorf("rhythm = %+v", cfg.Rhythm)
	}
	// not present in file - default
	if cfg.Rhythm.CapHeight != 0.68 {
		t.Errorf("CapHeight = %v, want default 0.68", cfg.Rhythm.CapHeight)
	}
	if len(cfg.Rhythm.Factors) != 5 {
		t.Errorf("default factors lost: %v", cfg.Rhythm.Factors)
	}
	if cfg.Rhythm.HeaderSpacing.Before != 1 || cfg.Rhythm.HeaderSpacing.After != 1 {
		t.Errorf("HeaderSpacing = %+v", cfg.Rhythm.HeaderSpacing)
	}
	if cfg.Font.Family != "Georgia" || cfg.Font.BoldHeaders {
		t.Errorf("Font = %+v", cfg.Font)
	}
	if cfg.Output.Unit != common.OutputUnitPx || cfg.Output.Syntax != common.OutputSyntaxScss {
		t.Errorf("Output = %+v", cfg.Output)
	}
}

func TestLoadConfiguration_FactorsReplaceDefaults(t *testing.T) {
	configPath := writeConfig(t, `version: 1
rhythm:
  factors:
    h1: 3
    h2: 2
    body: 0
`)

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if len(cfg.Rhythm.Factors) != 3 {
		t.Fatalf("Factors = %v, want exactly levels from file", cfg.Rhythm.Factors)
	}
	if cfg.Rhythm.Factors["h1"] != 3 || cfg.Rhythm.Factors["body"] != 0 {
		t.Errorf("Factors = %v", cfg.Rhythm.Factors)
	}
	if _, ok := cfg.Rhythm.Factors["p"]; ok {
		t.Error("default level p must not be merged in")
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, `version: 1
rhythm:
  base_font_size: 16
  invalid indent
`)

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	configPath := writeConfig(t, `version: 1
unknown_field: value
rhythm:
  base_font_size: 16
`)

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"version", "version: 2\n"},
		{"zero base font size", "version: 1\nrhythm:\n  base_font_size: 0\n"},
		{"negative line height", "version: 1\nrhythm:\n  base_line_height: -1\n"},
		{"cap height too big", "version: 1\nrhythm:\n  cap_height: 1.2\n"},
		{"negative spacing", "version: 1\nrhythm:\n  header_spacing:\n    before: -1\n"},
		{"empty factors", "version: 1\nrhythm:\n  factors: {}\n"},
		{"bad unit", "version: 1\noutput:\n  unit: pt\n"},
		{"bad syntax", "version: 1\noutput:\n  syntax: less\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	// Verify it's valid YAML by trying to unmarshal
	cfg := &Config{}
	_, err = unmarshalConfig(data, cfg, true)
	if err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Output.Unit = common.OutputUnitRem

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "unit: rem") {
		t.Errorf("Dump() does not contain enum as text:\n%s", data)
	}

	// Verify we can load it back
	cfg2, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Output.Unit != common.OutputUnitRem {
		t.Errorf("Unit after dump/load = %v", cfg2.Output.Unit)
	}
	if cfg2.Output.HeaderTemplate != cfg.Output.HeaderTemplate {
		t.Error("HeaderTemplate changed after dump/load")
	}
}

func TestUnmarshalConfig(t *testing.T) {
	t.Run("valid config without processing", func(t *testing.T) {
		result, err := unmarshalConfig([]byte(`version: 1`), &Config{}, false)
		if err != nil {
			t.Errorf("unmarshalConfig() error = %v", err)
		}
		if result == nil || result.Version != 1 {
			t.Fatalf("unmarshalConfig() = %+v", result)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := unmarshalConfig([]byte(`invalid: [yaml`), &Config{}, false); err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}

func TestConfig_Typography(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Rhythm.HeaderSpacing = HeaderSpacingConfig{Before: 2, After: 1}

	tc := cfg.Typography()
	if tc.BaseFontSize != 16 || tc.ScaleRatio != 1.5 || tc.CapHeight != 0.68 {
		t.Errorf("Typography() = %+v", tc)
	}
	if tc.RhythmUnit() != 26 {
		t.Errorf("RhythmUnit() = %d, want 26", tc.RhythmUnit())
	}
	if tc.HeaderSpacing.Before != 2 || tc.HeaderSpacing.After != 1 {
		t.Errorf("HeaderSpacing = %+v", tc.HeaderSpacing)
	}

	// snapshot must not share factors with configuration
	cfg.Rhythm.Factors["h5"] = 0
	if _, ok := tc.Factors["h5"]; ok {
		t.Error("Typography() shares factors map with configuration")
	}
	if err := tc.Validate(); err != nil {
		t.Errorf("default typography is invalid: %v", err)
	}
}

func TestConfig_PreviewLanguage(t *testing.T) {
	cfg := &Config{Preview: PreviewConfig{Language: "en-us"}}
	tag, err := cfg.PreviewLanguage()
	if err != nil {
		t.Fatalf("PreviewLanguage() error = %v", err)
	}
	if tag.String() != "en-US" {
		t.Errorf("PreviewLanguage() = %s, want en-US", tag)
	}

	cfg.Preview.Language = "not a language"
	if _, err := cfg.PreviewLanguage(); err == nil {
		t.Error("expected error for malformed language")
	}
}
