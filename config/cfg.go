package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"maps"
	"os"

	"golang.org/x/text/language"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"syncope/common"
	"syncope/rhythm"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	HeaderSpacingConfig struct {
		Before int `yaml:"before" validate:"gte=0"`
		After  int `yaml:"after" validate:"gte=0"`
	}

	RhythmConfig struct {
		BaseFontSize   float64             `yaml:"base_font_size" validate:"gt=0"`
		BaseLineHeight float64             `yaml:"base_line_height" validate:"gt=0"`
		CapHeight      float64             `yaml:"cap_height" validate:"gt=0,lt=1"`
		Scale          float64             `yaml:"scale" validate:"gt=0"`
		Factors        map[string]int      `yaml:"factors" validate:"required,min=1"`
		HeaderSpacing  HeaderSpacingConfig `yaml:"header_spacing"`
	}

	FontConfig struct {
		Family      string `yaml:"family" validate:"required"`
		File        string `yaml:"file"`
		BoldHeaders bool   `yaml:"bold_headers"`
	}

	OutputConfig struct {
		Unit           common.OutputUnit   `yaml:"unit" validate:"oneof=px em rem"`
		Syntax         common.OutputSyntax `yaml:"syntax" validate:"oneof=css scss"`
		Minify         bool                `yaml:"minify"`
		HeaderTemplate string              `yaml:"header_template"`
		NameTemplate   string              `yaml:"name_template" validate:"required"`
	}

	PreviewConfig struct {
		TextWidth  float64 `yaml:"text_width" validate:"gt=0"`
		ShowGrid   bool    `yaml:"show_grid"`
		Language   string  `yaml:"language" validate:"required"`
		SampleText string  `yaml:"sample_text" validate:"required"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Rhythm    RhythmConfig   `yaml:"rhythm"`
		Font      FontConfig     `yaml:"font"`
		Output    OutputConfig   `yaml:"output"`
		Preview   PreviewConfig  `yaml:"preview"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	HeaderTemplateFieldName TemplateFieldName = "header_template"
	NameTemplateFieldName   TemplateFieldName = "name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(HeaderTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(NameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// yaml merges maps into existing ones, levels from file must replace
	// default levels rather than extend them
	defaultFactors := cfg.Rhythm.Factors
	cfg.Rhythm.Factors = nil

	cfg, err = unmarshalConfig(data, cfg, false)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	if cfg.Rhythm.Factors == nil {
		cfg.Rhythm.Factors = defaultFactors
	}
	if err := gencfg.Sanitize(cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	if err := gencfg.Validate(cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// Typography returns snapshot of rhythm settings for computation. Factors map
// is copied so later changes to configuration do not leak into it.
func (cfg *Config) Typography() rhythm.Config {
	return rhythm.Config{
		BaseFontSize:   cfg.Rhythm.BaseFontSize,
		BaseLineHeight: cfg.Rhythm.BaseLineHeight,
		CapHeight:      cfg.Rhythm.CapHeight,
		ScaleRatio:     cfg.Rhythm.Scale,
		Factors:        maps.Clone(cfg.Rhythm.Factors),
		HeaderSpacing: rhythm.HeaderSpacing{
			Before: cfg.Rhythm.HeaderSpacing.Before,
			After:  cfg.Rhythm.HeaderSpacing.After,
		},
	}
}

// PreviewLanguage returns canonical language tag for preview page.
func (cfg *Config) PreviewLanguage() (language.Tag, error) {
	tag, err := language.Parse(cfg.Preview.Language)
	if err != nil {
		return language.Und, fmt.Errorf("bad preview language %q: %w", cfg.Preview.Language, err)
	}
	return tag, nil
}
