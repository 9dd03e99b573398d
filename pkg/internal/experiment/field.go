package experiment

import (
	"fmt"

	"github.com/joeydtaylor/acoustofield/pkg/internal/shape"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/logschema"
)

// Field interpolates the measured points over the experiment's region and
// forwards the grid to every result sink. A region must be set.
func (e *Experiment) Field() (types.StressGrid, error) {
	points := e.Points()
	region := e.Region()
	if region.Base == nil {
		return types.StressGrid{}, fmt.Errorf("field: %w", shape.ErrUnknownShape)
	}

	stop := e.meter.StartTimer(types.StageInterpolate)
	grid, err := e.interpolator.Field(points, region)
	stop()
	if err != nil {
		return grid, err
	}
	e.meter.IncrementCount(types.MetricFieldGenerationCount)

	for _, s := range e.snapshotSinks() {
		if werr := s.WriteGrid(grid); werr != nil {
			e.logKV(types.WarnLevel, "Result sink write failed",
				"event", "WriteGrid",
				"result", "FAILURE",
				logschema.FieldExperimentID, e.id,
				"error", werr,
			)
		}
	}
	for _, s := range e.snapshotSensors() {
		s.InvokeOnField(e.componentMetadata, grid)
	}
	return grid, nil
}

// ValueAt estimates stress at (x, y) from measured points using the
// interpolator's point query ("idw" or "nearest").
func (e *Experiment) ValueAt(x, y float64, method string) (float64, bool) {
	return e.interpolator.ValueAt(e.Points(), x, y, method)
}
