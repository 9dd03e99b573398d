// Package config loads experiment configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joeydtaylor/acoustofield/pkg/internal/utils"
)

// Environment variables that override file values.
const (
	EnvLogLevel       = "ACOUSTOFIELD_LOG_LEVEL"
	EnvGridResolution = "ACOUSTOFIELD_GRID_RESOLUTION"
	EnvWaveformDir    = "ACOUSTOFIELD_WAVEFORM_DIR"
	EnvCompression    = "ACOUSTOFIELD_COMPRESSION"
)

// ─── Sections ───────────────────────────────────────────────────────────

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	File        string `yaml:"file"`
}

type BandpassSection struct {
	Enabled    bool    `yaml:"enabled"`
	LowCutMHz  float64 `yaml:"low_cut_mhz"`
	HighCutMHz float64 `yaml:"high_cut_mhz"`
	Order      int     `yaml:"order"`
}

type DenoiseSection struct {
	Enabled       bool   `yaml:"enabled"`
	Wavelet       string `yaml:"wavelet"`
	Level         int    `yaml:"level"`
	ThresholdRule string `yaml:"threshold_rule"`
	ThresholdMode string `yaml:"threshold_mode"`
}

type ConditionerConfig struct {
	Bandpass BandpassSection `yaml:"bandpass"`
	Denoise  DenoiseSection  `yaml:"denoise"`
}

// CalibrationConfig takes, in priority order, a coefficient file, a direct k
// in MPa/ns, or a regression slope in s/MPa.
type CalibrationConfig struct {
	File           string  `yaml:"file"`
	K              float64 `yaml:"k"`
	Slope          float64 `yaml:"slope"`
	Intercept      float64 `yaml:"intercept"`
	RSquared       float64 `yaml:"r_squared"`
	BaselineStress float64 `yaml:"baseline_stress"`
	Source         string  `yaml:"source"`
	Direction      string  `yaml:"direction"`
}

type ValidationConfig struct {
	MaxTimeShiftNs     float64 `yaml:"max_time_shift_ns"`
	StressWindowMPa    float64 `yaml:"stress_window_mpa"`
	MaxNeighborDiffMPa float64 `yaml:"max_neighbor_diff_mpa"`
}

type InterpolationConfig struct {
	Resolution  int     `yaml:"resolution"`
	Method      string  `yaml:"method"`
	Smooth      bool    `yaml:"smooth"`
	SmoothSigma float64 `yaml:"smooth_sigma"`
}

type StorageConfig struct {
	WaveformDir   string `yaml:"waveform_dir"`
	Compression   string `yaml:"compression"`
	EncryptionKey string `yaml:"encryption_key"`
	ResultsDir    string `yaml:"results_dir"`
	ParquetCodec  string `yaml:"parquet_compression"`
}

// Config is the top-level structure of an experiment file.
type Config struct {
	Name          string              `yaml:"name"`
	BaselinePoint int                 `yaml:"baseline_point"`
	Logging       LoggingConfig       `yaml:"logging"`
	Conditioner   ConditionerConfig   `yaml:"conditioner"`
	Calibration   CalibrationConfig   `yaml:"calibration"`
	Shape         ShapeConfig         `yaml:"shape"`
	Layout        LayoutConfig        `yaml:"layout"`
	Validation    ValidationConfig    `yaml:"validation"`
	Interpolation InterpolationConfig `yaml:"interpolation"`
	Storage       StorageConfig       `yaml:"storage"`
}

// ─── Loaders ────────────────────────────────────────────────────────────

// Default returns the documented defaults: 1.5 to 3.5 MHz order 6 band-pass,
// sym6 level 5 heursure soft denoise, a 100×100 auto grid with σ=1 smoothing,
// a 5×5 zigzag grid layout and uncompressed in-memory waveform storage.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Conditioner: ConditionerConfig{
			Bandpass: BandpassSection{Enabled: true, LowCutMHz: 1.5, HighCutMHz: 3.5, Order: 6},
			Denoise:  DenoiseSection{Enabled: true, Wavelet: "sym6", Level: 5, ThresholdRule: "heursure", ThresholdMode: "soft"},
		},
		Layout: LayoutConfig{
			Type:  "grid",
			Order: "zigzag",
			Grid:  GridSection{Rows: 5, Cols: 5},
		},
		Validation: ValidationConfig{
			MaxTimeShiftNs:     1000,
			StressWindowMPa:    1000,
			MaxNeighborDiffMPa: 200,
		},
		Interpolation: InterpolationConfig{Resolution: 100, Method: "auto", Smooth: true, SmoothSigma: 1},
		Storage:       StorageConfig{Compression: "none", ParquetCodec: "snappy"},
	}
}

// Parse decodes YAML over the defaults, so omitted keys keep their default
// values, then applies environment overrides.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse experiment config: %w", err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// Load reads and parses an experiment file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read experiment config: %w", err)
	}
	return Parse(data)
}

func (c *Config) applyEnv() {
	c.Logging.Level = utils.EnvOr(EnvLogLevel, c.Logging.Level)
	c.Interpolation.Resolution = utils.EnvIntOr(EnvGridResolution, c.Interpolation.Resolution)
	c.Storage.WaveformDir = utils.EnvOr(EnvWaveformDir, c.Storage.WaveformDir)
	c.Storage.Compression = utils.EnvOr(EnvCompression, c.Storage.Compression)
}
