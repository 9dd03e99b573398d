package experiment

import (
	"github.com/joeydtaylor/acoustofield/pkg/internal/calibration"
	"github.com/joeydtaylor/acoustofield/pkg/internal/conditioner"
	"github.com/joeydtaylor/acoustofield/pkg/internal/interpolate"
	"github.com/joeydtaylor/acoustofield/pkg/internal/meter"
	"github.com/joeydtaylor/acoustofield/pkg/internal/sensor"
	"github.com/joeydtaylor/acoustofield/pkg/internal/shape"
	"github.com/joeydtaylor/acoustofield/pkg/internal/tof"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/validator"
)

// WithLogger attaches loggers. Default collaborators created by NewExperiment
// share them.
func WithLogger(logger ...types.Logger) types.Option[*Experiment] {
	return func(e *Experiment) {
		e.ConnectLogger(logger...)
	}
}

// WithComponentMetadata sets a human-readable name. The ID stays the experiment UUID.
func WithComponentMetadata(name string) types.Option[*Experiment] {
	return func(e *Experiment) {
		e.componentMetadata.Name = name
	}
}

// WithRegion sets the specimen region used for field masking.
func WithRegion(r shape.Region) types.Option[*Experiment] {
	return func(e *Experiment) {
		e.region = r
	}
}

// WithCalibration sets the calibration model.
func WithCalibration(m calibration.Model) types.Option[*Experiment] {
	return func(e *Experiment) {
		e.model = &m
	}
}

// WithBaselinePoint designates which point's capture becomes the baseline.
func WithBaselinePoint(index int) types.Option[*Experiment] {
	return func(e *Experiment) {
		e.designatedBaseline = index
	}
}

// WithStore replaces the in-memory waveform store.
func WithStore(s types.WaveformStore) types.Option[*Experiment] {
	return func(e *Experiment) {
		e.store = s
	}
}

// WithResultSink adds a sink that receives every point result and generated field.
func WithResultSink(s types.ResultSink) types.Option[*Experiment] {
	return func(e *Experiment) {
		e.ConnectResultSink(s)
	}
}

// WithSensor attaches event hooks.
func WithSensor(s ...*sensor.Sensor) types.Option[*Experiment] {
	return func(e *Experiment) {
		e.ConnectSensor(s...)
	}
}

func WithConditioner(c *conditioner.Conditioner) types.Option[*Experiment] {
	return func(e *Experiment) { e.conditioner = c }
}

func WithExtractor(x *tof.Extractor) types.Option[*Experiment] {
	return func(e *Experiment) { e.extractor = x }
}

func WithValidator(v *validator.Validator) types.Option[*Experiment] {
	return func(e *Experiment) { e.validator = v }
}

func WithInterpolator(in *interpolate.Interpolator) types.Option[*Experiment] {
	return func(e *Experiment) { e.interpolator = in }
}

func WithMeter(m *meter.Meter) types.Option[*Experiment] {
	return func(e *Experiment) { e.meter = m }
}
