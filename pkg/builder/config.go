package builder

import (
	"fmt"

	"github.com/joeydtaylor/acoustofield/pkg/internal/codec"
	"github.com/joeydtaylor/acoustofield/pkg/internal/conditioner"
	"github.com/joeydtaylor/acoustofield/pkg/internal/config"
	"github.com/joeydtaylor/acoustofield/pkg/internal/experiment"
	"github.com/joeydtaylor/acoustofield/pkg/internal/interpolate"
	"github.com/joeydtaylor/acoustofield/pkg/internal/meter"
	"github.com/joeydtaylor/acoustofield/pkg/internal/parquetsink"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/validator"
)

type Config = config.Config

// LoadConfig reads a YAML experiment file over the defaults and applies
// ACOUSTOFIELD_* environment overrides.
func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}

// ParseConfig decodes YAML bytes the same way LoadConfig does.
func ParseConfig(data []byte) (Config, error) {
	return config.Parse(data)
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return config.Default()
}

// NewLoggerFromConfig builds a logger at the configured level and adds a file
// sink when a log file is set.
func NewLoggerFromConfig(cfg Config) (types.Logger, error) {
	logger := NewLogger(
		LoggerWithLevel(cfg.Logging.Level),
		LoggerWithDevelopment(cfg.Logging.Development),
	)
	if cfg.Logging.File != "" {
		err := logger.AddSink("file", types.SinkConfig{
			Type:   string(types.FileSink),
			Config: map[string]interface{}{"path": cfg.Logging.File},
		})
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
	}
	return logger, nil
}

// Setup is an experiment assembled from configuration, together with the
// layout it was built over.
type Setup struct {
	Config     Config
	Experiment *experiment.Experiment
	Layout     Layout
	Path       PathReport
	Store      WaveformStore
	Sink       *parquetsink.Sink
	Warnings   []string
}

// Close closes the experiment's result sinks.
func (s *Setup) Close() error {
	if s == nil || s.Experiment == nil {
		return nil
	}
	return s.Experiment.Close()
}

// NewExperimentFromConfig builds the region and layout, then an experiment
// whose conditioner, validator, interpolator, calibration, waveform store
// and Parquet sink all follow cfg. Shape and calibration warnings are
// returned on the Setup, not as errors.
func NewExperimentFromConfig(cfg Config, loggers ...types.Logger) (*Setup, error) {
	region, warnings, err := cfg.Shape.Region()
	if err != nil {
		return nil, fmt.Errorf("shape: %w", err)
	}
	lay, report, err := cfg.Layout.Generate(region)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	opts := []types.Option[*experiment.Experiment]{
		experiment.WithLogger(loggers...),
		experiment.WithComponentMetadata(cfg.Name),
		experiment.WithRegion(region),
		experiment.WithConditioner(conditioner.NewConditioner(
			conditioner.WithLogger(loggers...),
			conditioner.WithBandpass(cfg.Conditioner.BandpassConfig()),
			conditioner.WithDenoise(cfg.Conditioner.DenoiseConfig()),
		)),
		experiment.WithValidator(validator.NewValidator(
			validator.WithLogger(loggers...),
			validator.WithLimits(cfg.Validation.Limits()),
		)),
		experiment.WithInterpolator(interpolate.NewInterpolator(
			interpolate.WithLogger(loggers...),
			interpolate.WithParams(cfg.Interpolation.Params()),
		)),
		experiment.WithMeter(meter.NewMeter(meter.WithLogger(loggers...))),
	}

	if cfg.Calibration.Configured() {
		m, err := cfg.Calibration.Model()
		if err != nil {
			return nil, fmt.Errorf("calibration: %w", err)
		}
		warnings = append(warnings, m.Warnings()...)
		opts = append(opts, experiment.WithCalibration(m))
	}
	if cfg.BaselinePoint > 0 {
		opts = append(opts, experiment.WithBaselinePoint(cfg.BaselinePoint))
	}

	var store types.WaveformStore
	if cfg.Storage.WaveformDir != "" {
		c, err := cfg.Storage.WaveformCompression()
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		fs, err := codec.NewFileStore(cfg.Storage.WaveformDir, c, cfg.Storage.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		store = fs
		opts = append(opts, experiment.WithStore(fs))
	}

	exp := experiment.NewExperiment(lay.Points, opts...)
	setup := &Setup{
		Config:     cfg,
		Experiment: exp,
		Layout:     lay,
		Path:       report,
		Store:      store,
		Warnings:   warnings,
	}

	if cfg.Storage.ResultsDir != "" {
		sink, err := parquetsink.NewSink(cfg.Storage.ResultsDir,
			parquetsink.WithLogger(loggers...),
			parquetsink.WithExperimentID(exp.ID()),
			parquetsink.WithCompression(cfg.Storage.ParquetCodec),
		)
		if err != nil {
			return nil, fmt.Errorf("results: %w", err)
		}
		exp.ConnectResultSink(sink)
		setup.Sink = sink
	}
	return setup, nil
}
