// Package config loads lsts settings from YAML files.
//
// A configuration file mirrors the pipeline options plus the CLI's input and
// archive settings:
//
//	metric: active users
//	smoothing: ema
//	eps: 0.01
//	alpha: "0.5"
//	weekly: true
//	input:
//	  date_column: ds
//	  value_column: y
//	archive:
//	  path: out.lsts
//	  compression: zstd
//	log_level: debug
//
// Numeric settings accept numbers as well as quoted strings. Settings left
// out keep the pipeline defaults.
package config

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/lsts/errs"
	"github.com/arloliu/lsts/format"
	"github.com/arloliu/lsts/pipeline"
)

// Config represents an lsts configuration file.
type Config struct {
	Metric             string  `yaml:"metric"`
	Title              string  `yaml:"title"`
	Smoothing          string  `yaml:"smoothing"` // "none", "ema" or "centered"
	Eps                any     `yaml:"eps"`
	Alpha              any     `yaml:"alpha"`
	Window             any     `yaml:"window"`
	MergeThreshold     any     `yaml:"merge_threshold"`
	ParagraphThreshold any     `yaml:"paragraph_threshold"`
	NormalizeY         *bool   `yaml:"normalize_y"`
	Weekly             bool    `yaml:"weekly"`
	Input              Input   `yaml:"input"`
	Archive            Archive `yaml:"archive"`
	LogLevel           string  `yaml:"log_level"`
}

// Input describes the CSV input columns.
type Input struct {
	DateColumn  string `yaml:"date_column"`
	ValueColumn string `yaml:"value_column"`
	DateFormat  string `yaml:"date_format"`
	Delimiter   string `yaml:"delimiter"`
}

// Archive describes where summaries are archived.
type Archive struct {
	Path        string `yaml:"path"`
	Compression string `yaml:"compression"` // "none", "zstd", "s2" or "lz4"
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()

	return cfg
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse parses YAML configuration data and fills in defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}
	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Smoothing == "" {
		c.Smoothing = "ema"
	}
	if c.Archive.Compression == "" {
		c.Archive.Compression = "zstd"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Input.Delimiter == "" {
		c.Input.Delimiter = ","
	}
}

// Options converts the configuration into pipeline options.
//
// Returns:
//   - []pipeline.Option: Options for the settings present in the file
//   - error: ErrInvalidConfig wrapping the conversion error of a malformed value
func (c *Config) Options() ([]pipeline.Option, error) {
	smoothing, ok := format.ParseSmoothing(c.Smoothing)
	if !ok {
		return nil, fmt.Errorf("%w: %w: %q", errs.ErrInvalidConfig, errs.ErrInvalidSmoothing, c.Smoothing)
	}

	opts := []pipeline.Option{
		pipeline.WithSmoothing(smoothing),
		pipeline.WithMetric(c.Metric),
		pipeline.WithTitle(c.Title),
	}

	floats := []struct {
		name  string
		value any
		opt   func(float64) pipeline.Option
	}{
		{"eps", c.Eps, pipeline.WithEps},
		{"alpha", c.Alpha, pipeline.WithAlpha},
		{"merge_threshold", c.MergeThreshold, pipeline.WithMergeThreshold},
		{"paragraph_threshold", c.ParagraphThreshold, pipeline.WithParagraphThreshold},
	}
	for _, f := range floats {
		if f.value == nil {
			continue
		}
		v, err := cast.ToFloat64E(f.value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", errs.ErrInvalidConfig, f.name, err)
		}
		opts = append(opts, f.opt(v))
	}

	if c.Window != nil {
		k, err := cast.ToIntE(c.Window)
		if err != nil {
			return nil, fmt.Errorf("%w: window: %w", errs.ErrInvalidConfig, err)
		}
		opts = append(opts, pipeline.WithWindow(k))
	}
	if c.NormalizeY != nil && !*c.NormalizeY {
		opts = append(opts, pipeline.WithoutNormalizeY())
	}
	if c.Weekly {
		opts = append(opts, pipeline.WithWeeklyComparison())
	}

	return opts, nil
}

// Compression returns the archive compression type.
func (c *Config) Compression() (format.CompressionType, error) {
	ct, ok := format.ParseCompression(c.Archive.Compression)
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, c.Archive.Compression)
	}

	return ct, nil
}

// Level returns the configured log level.
func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}

	return level, nil
}

// Comma returns the first rune of the configured CSV delimiter.
func (i Input) Comma() rune {
	for _, r := range i.Delimiter {
		return r
	}

	return ','
}
