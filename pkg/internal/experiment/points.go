package experiment

import (
	"fmt"

	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/logschema"
)

// Points returns a copy of every point in layout order.
func (e *Experiment) Points() []types.MeasurementPoint {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]types.MeasurementPoint, len(e.points))
	copy(out, e.points)
	return out
}

// Point returns one point by index.
func (e *Experiment) Point(index int) (types.MeasurementPoint, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	at, ok := e.pos[index]
	if !ok {
		return types.MeasurementPoint{}, fmt.Errorf("point %d: %w", index, ErrPointNotFound)
	}
	return e.points[at], nil
}

// Skip marks a point skipped and records why. Any previous measurement is
// discarded. Skipping the baseline point leaves the baseline waveform in place.
func (e *Experiment) Skip(index int, reason string) error {
	e.mu.Lock()
	at, ok := e.pos[index]
	if !ok {
		e.mu.Unlock()
		return fmt.Errorf("point %d: %w", index, ErrPointNotFound)
	}
	p := pending(e.points[at])
	p.Status = types.PointSkipped
	p.SkipReason = reason
	e.points[at] = p
	e.mu.Unlock()

	e.meter.IncrementCount(types.MetricSkippedPointCount)
	e.logKV(types.InfoLevel, "Point skipped",
		"event", "Skip",
		"result", "SUCCESS",
		logschema.FieldExperimentID, e.id,
		logschema.FieldPointIndex, index,
		"reason", reason,
	)
	for _, s := range e.snapshotSensors() {
		s.InvokeOnSkip(e.componentMetadata, index, reason)
	}
	return nil
}

// Reset returns every point to pending, forgets the baseline and clears the
// waveform store. The designated baseline point and calibration are kept.
func (e *Experiment) Reset() error {
	e.mu.Lock()
	if err := e.store.Clear(); err != nil {
		e.mu.Unlock()
		return fmt.Errorf("clear store: %w", err)
	}
	for i := range e.points {
		e.points[i] = pending(e.points[i])
	}
	e.baseline = types.Waveform{}
	e.baselineIndex = 0
	e.status = StatusCreated
	e.mu.Unlock()

	e.logKV(types.InfoLevel, "Experiment reset",
		"event", "Reset",
		"result", "SUCCESS",
		logschema.FieldExperimentID, e.id,
		"points", len(e.points),
	)
	for _, s := range e.snapshotSensors() {
		s.InvokeOnReset(e.componentMetadata)
	}
	return nil
}
