// SPDX-License-Identifier: MIT
// Package config: the Config type and its loaders.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Precision selects the storage element type of the batch buffers.
// Internal arithmetic is always float64 regardless of this setting.
const (
	PrecisionFloat32 = "float32"
	PrecisionFloat64 = "float64"
)

var (
	// ErrInvalidConfig wraps every validation failure; match with errors.Is.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnreadableFile is returned when a named config file cannot be read
	// or parsed. A missing file selected by FindConfigFile is not an error.
	ErrUnreadableFile = errors.New("config: unreadable config file")
)

// Config holds one batch run's parameters. Load with LoadFromFile (or
// LoadFromEnv), then Validate before use. The zero value is not usable;
// start from Defaults.
type Config struct {
	// Samples is the number of observations per dataset (n).
	Samples int `yaml:"samples"`

	// Features is the number of features per observation (p).
	Features int `yaml:"features"`

	// MatrixCount is the number of independent datasets in the batch.
	MatrixCount int `yaml:"matrix_count"`

	// Workers bounds the per-phase worker pool; 0 selects GOMAXPROCS.
	Workers int `yaml:"workers"`

	// Debug enables verbose narration of intermediate results.
	Debug bool `yaml:"debug"`

	// Relaxed suppresses sweep-budget warnings (benchmark mode).
	Relaxed bool `yaml:"relaxed"`

	// Precision is the storage element type: "float32" or "float64".
	Precision string `yaml:"precision"`

	// Dataset is the path of a CSV file holding the n×p input rows.
	// Empty means the CLI must receive the path as an argument.
	Dataset string `yaml:"dataset"`
}

// Defaults returns the built-in configuration: an 8-feature float64 batch
// with strict warnings and a GOMAXPROCS worker pool.
func Defaults() *Config {
	return &Config{
		Samples:     4096,
		Features:    8,
		MatrixCount: 8,
		Workers:     0,
		Debug:       false,
		Relaxed:     false,
		Precision:   PrecisionFloat64,
		Dataset:     "",
	}
}

// LoadFromEnv builds a Config from defaults overridden by EIGENREF_*
// environment variables. Prefer LoadFromFile, which layers the file
// between defaults and environment.
func LoadFromEnv() *Config {
	cfg := Defaults()
	applyEnv(cfg)

	return cfg
}

// LoadFromFile loads path (YAML) over the defaults, then applies
// EIGENREF_* environment overrides. An empty path skips the file layer.
//
// Stage 1 (Prepare): start from Defaults.
// Stage 2 (Execute): unmarshal the file, if any, over the defaults.
// Stage 3 (Finalize): apply environment overrides and validate.
func LoadFromFile(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableFile, path, err)
		}
		if err = yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableFile, path, err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile returns the first existing candidate config file, checking
// EIGENREF_CONFIG, then ./eigenref.yaml, then ./eigenref.yml. Returns ""
// when none exists, which LoadFromFile treats as "defaults plus env".
func FindConfigFile() string {
	candidates := []string{
		os.Getenv("EIGENREF_CONFIG"),
		"eigenref.yaml",
		"eigenref.yml",
	}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}

	return ""
}

// Validate checks that the configuration describes a runnable batch.
// Every failure wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidConfig, c.Samples)
	}
	if c.Features <= 0 {
		return fmt.Errorf("%w: features must be positive, got %d", ErrInvalidConfig, c.Features)
	}
	if c.MatrixCount <= 0 {
		return fmt.Errorf("%w: matrix_count must be positive, got %d", ErrInvalidConfig, c.MatrixCount)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Precision != PrecisionFloat32 && c.Precision != PrecisionFloat64 {
		return fmt.Errorf("%w: precision must be %q or %q, got %q",
			ErrInvalidConfig, PrecisionFloat32, PrecisionFloat64, c.Precision)
	}

	return nil
}

// applyEnv overrides cfg in place from EIGENREF_* environment variables.
// Unset or malformed values leave the existing field untouched.
func applyEnv(cfg *Config) {
	cfg.Samples = getEnvInt("EIGENREF_SAMPLES", cfg.Samples)
	cfg.Features = getEnvInt("EIGENREF_FEATURES", cfg.Features)
	cfg.MatrixCount = getEnvInt("EIGENREF_MATRIX_COUNT", cfg.MatrixCount)
	cfg.Workers = getEnvInt("EIGENREF_WORKERS", cfg.Workers)
	cfg.Debug = getEnvBool("EIGENREF_DEBUG", cfg.Debug)
	cfg.Relaxed = getEnvBool("EIGENREF_RELAXED", cfg.Relaxed)
	cfg.Precision = getEnv("EIGENREF_PRECISION", cfg.Precision)
	cfg.Dataset = getEnv("EIGENREF_DATASET", cfg.Dataset)
}

// getEnv returns the named variable or defaultVal when unset/empty.
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return defaultVal
}

// getEnvInt parses the named variable as an int, falling back on
// defaultVal when unset or malformed.
func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}

	return n
}

// getEnvBool parses the named variable as a bool ("true"/"1" vs
// "false"/"0"), falling back on defaultVal when unset or malformed.
func getEnvBool(key string, defaultVal bool) bool {
	switch os.Getenv(key) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	default:
		return defaultVal
	}
}
