package builder

import (
	"github.com/joeydtaylor/acoustofield/pkg/internal/conditioner"
	"github.com/joeydtaylor/acoustofield/pkg/internal/experiment"
	"github.com/joeydtaylor/acoustofield/pkg/internal/interpolate"
	"github.com/joeydtaylor/acoustofield/pkg/internal/meter"
	"github.com/joeydtaylor/acoustofield/pkg/internal/sensor"
	"github.com/joeydtaylor/acoustofield/pkg/internal/tof"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/validator"
)

type Experiment = experiment.Experiment

type ExperimentStatus = experiment.Status

type ExperimentStatistics = experiment.Statistics

type BaselineReport = experiment.BaselineReport

const (
	StatusCreated    = experiment.StatusCreated
	StatusCollecting = experiment.StatusCollecting
	StatusCompleted  = experiment.StatusCompleted
)

// Errors returned by experiment operations, for use with errors.Is.
var (
	ErrPointNotFound    = experiment.ErrPointNotFound
	ErrNoBaseline       = experiment.ErrNoBaseline
	ErrPoorBaseline     = experiment.ErrPoorBaseline
	ErrNoCalibration    = experiment.ErrNoCalibration
	ErrPointNotMeasured = experiment.ErrPointNotMeasured
	ErrInvalidWaveform  = experiment.ErrInvalidWaveform
)

// NewExperiment creates an experiment over a point layout. Collaborators not
// supplied through options get defaults sharing the experiment's loggers.
func NewExperiment(points []MeasurementPoint, options ...types.Option[*experiment.Experiment]) *experiment.Experiment {
	return experiment.NewExperiment(points, options...)
}

func ExperimentWithLogger(loggers ...types.Logger) types.Option[*experiment.Experiment] {
	return experiment.WithLogger(loggers...)
}

func ExperimentWithName(name string) types.Option[*experiment.Experiment] {
	return experiment.WithComponentMetadata(name)
}

func ExperimentWithRegion(r Region) types.Option[*experiment.Experiment] {
	return experiment.WithRegion(r)
}

func ExperimentWithCalibration(m CalibrationModel) types.Option[*experiment.Experiment] {
	return experiment.WithCalibration(m)
}

// ExperimentWithBaselinePoint designates the point whose first capture becomes the baseline.
func ExperimentWithBaselinePoint(index int) types.Option[*experiment.Experiment] {
	return experiment.WithBaselinePoint(index)
}

func ExperimentWithStore(s WaveformStore) types.Option[*experiment.Experiment] {
	return experiment.WithStore(s)
}

func ExperimentWithResultSink(s ResultSink) types.Option[*experiment.Experiment] {
	return experiment.WithResultSink(s)
}

// ExperimentWithSensor attaches event hooks.
func ExperimentWithSensor(s ...*sensor.Sensor) types.Option[*experiment.Experiment] {
	return experiment.WithSensor(s...)
}

func ExperimentWithConditioner(c *conditioner.Conditioner) types.Option[*experiment.Experiment] {
	return experiment.WithConditioner(c)
}

func ExperimentWithExtractor(x *tof.Extractor) types.Option[*experiment.Experiment] {
	return experiment.WithExtractor(x)
}

func ExperimentWithValidator(v *validator.Validator) types.Option[*experiment.Experiment] {
	return experiment.WithValidator(v)
}

func ExperimentWithInterpolator(in *interpolate.Interpolator) types.Option[*experiment.Experiment] {
	return experiment.WithInterpolator(in)
}

func ExperimentWithMeter(m *meter.Meter) types.Option[*experiment.Experiment] {
	return experiment.WithMeter(m)
}

// NewMemoryStore keeps waveforms in process memory.
func NewMemoryStore() *experiment.MemoryStore {
	return experiment.NewMemoryStore()
}
