// Package experiment holds the per-specimen measurement context: the point
// layout, the baseline waveform, the calibration model and the results of every
// capture. One Experiment serialises its own mutations; separate experiments
// share nothing and may run in parallel.
package experiment

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joeydtaylor/acoustofield/pkg/internal/calibration"
	"github.com/joeydtaylor/acoustofield/pkg/internal/conditioner"
	"github.com/joeydtaylor/acoustofield/pkg/internal/interpolate"
	"github.com/joeydtaylor/acoustofield/pkg/internal/meter"
	"github.com/joeydtaylor/acoustofield/pkg/internal/sensor"
	"github.com/joeydtaylor/acoustofield/pkg/internal/shape"
	"github.com/joeydtaylor/acoustofield/pkg/internal/tof"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/validator"
	"github.com/joeydtaylor/acoustofield/pkg/logschema"
)

// Status is the experiment lifecycle state.
type Status string

const (
	StatusCreated    Status = "created"
	StatusCollecting Status = "collecting"
	StatusCompleted  Status = "completed"
)

// Experiment is safe for concurrent use. Captures and baseline changes take
// the write lock; queries take the read lock.
type Experiment struct {
	componentMetadata types.ComponentMetadata
	id                string
	createdAt         time.Time

	mu                 sync.RWMutex
	status             Status
	points             []types.MeasurementPoint
	pos                map[int]int
	region             shape.Region
	designatedBaseline int
	baselineIndex      int
	baseline           types.Waveform
	model              *calibration.Model

	conditioner  *conditioner.Conditioner
	extractor    *tof.Extractor
	validator    *validator.Validator
	interpolator *interpolate.Interpolator
	meter        *meter.Meter
	store        types.WaveformStore

	sinks       []types.ResultSink
	sinksLock   sync.Mutex
	sensors     []*sensor.Sensor
	sensorsLock sync.Mutex

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewExperiment creates an experiment over points, normally the output of a
// layout generator. Points are copied and reset to pending.
func NewExperiment(points []types.MeasurementPoint, options ...types.Option[*Experiment]) *Experiment {
	id := uuid.NewString()
	e := &Experiment{
		componentMetadata: types.ComponentMetadata{ID: id, Type: "EXPERIMENT"},
		id:                id,
		createdAt:         time.Now(),
		status:            StatusCreated,
		points:            make([]types.MeasurementPoint, len(points)),
		pos:               make(map[int]int, len(points)),
		loggers:           make([]types.Logger, 0),
	}
	for i, p := range points {
		e.points[i] = pending(p)
		e.pos[p.Index] = i
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}

	if e.store == nil {
		e.store = NewMemoryStore()
	}
	if e.conditioner == nil {
		e.conditioner = conditioner.NewConditioner(conditioner.WithLogger(e.loggers...))
	}
	if e.extractor == nil {
		e.extractor = tof.NewExtractor(tof.WithLogger(e.loggers...))
	}
	if e.validator == nil {
		e.validator = validator.NewValidator(validator.WithLogger(e.loggers...))
	}
	if e.interpolator == nil {
		e.interpolator = interpolate.NewInterpolator(interpolate.WithLogger(e.loggers...))
	}
	if e.meter == nil {
		e.meter = meter.NewMeter()
	}
	return e
}

// pending clears every measurement field and keeps the coordinates.
func pending(p types.MeasurementPoint) types.MeasurementPoint {
	return types.MeasurementPoint{
		Index:    p.Index,
		X:        p.X,
		Y:        p.Y,
		HasPolar: p.HasPolar,
		R:        p.R,
		Theta:    p.Theta,
		Status:   types.PointPending,
	}
}

// ID returns the experiment's UUID.
func (e *Experiment) ID() string { return e.id }

// CreatedAt returns when the experiment was constructed.
func (e *Experiment) CreatedAt() time.Time { return e.createdAt }

// GetComponentMetadata returns the experiment's identity.
func (e *Experiment) GetComponentMetadata() types.ComponentMetadata {
	return e.componentMetadata
}

// Status returns the lifecycle state.
func (e *Experiment) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status
}

// Meter returns the meter that records this experiment's pipeline activity.
func (e *Experiment) Meter() *meter.Meter { return e.meter }

// Conditioner returns the conditioner applied to every capture.
func (e *Experiment) Conditioner() *conditioner.Conditioner { return e.conditioner }

// Interpolator returns the field interpolator.
func (e *Experiment) Interpolator() *interpolate.Interpolator { return e.interpolator }

// Region returns the specimen region.
func (e *Experiment) Region() shape.Region {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.region
}

// SetRegion replaces the specimen region wholesale. Points are not regenerated.
func (e *Experiment) SetRegion(r shape.Region) {
	e.mu.Lock()
	e.region = r
	e.mu.Unlock()
}

// Complete marks the experiment completed.
func (e *Experiment) Complete() {
	e.mu.Lock()
	e.status = StatusCompleted
	e.mu.Unlock()
	e.logKV(types.InfoLevel, "Experiment completed",
		"event", "Complete",
		"result", "SUCCESS",
		logschema.FieldExperimentID, e.id,
	)
}

// Close closes every attached result sink.
func (e *Experiment) Close() error {
	var first error
	for _, s := range e.snapshotSinks() {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
