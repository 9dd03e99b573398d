package interpolate

import (
	"sync"

	"github.com/joeydtaylor/acoustofield/pkg/internal/shape"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
	"github.com/joeydtaylor/acoustofield/pkg/internal/utils"
	"github.com/joeydtaylor/acoustofield/pkg/logschema"
)

// Interpolator holds field parameters and logs each build.
type Interpolator struct {
	componentMetadata types.ComponentMetadata
	params            Params
	configLock        sync.RWMutex

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewInterpolator constructs an interpolator with DefaultParams.
func NewInterpolator(options ...types.Option[*Interpolator]) *Interpolator {
	in := &Interpolator{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "INTERPOLATOR",
		},
		params: DefaultParams(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(in)
		}
	}
	return in
}

// WithLogger attaches loggers.
func WithLogger(logger ...types.Logger) types.Option[*Interpolator] {
	return func(in *Interpolator) {
		in.ConnectLogger(logger...)
	}
}

// WithParams replaces every field parameter at once.
func WithParams(p Params) types.Option[*Interpolator] {
	return func(in *Interpolator) {
		in.params = p
	}
}

// WithResolution sets the grid size per side.
func WithResolution(n int) types.Option[*Interpolator] {
	return func(in *Interpolator) {
		in.params.Resolution = n
	}
}

// WithMethod sets the interpolation method.
func WithMethod(m types.InterpolationMethod) types.Option[*Interpolator] {
	return func(in *Interpolator) {
		in.params.Method = m
	}
}

// WithSmoothing enables or disables Gaussian smoothing with the given sigma in cells.
func WithSmoothing(enabled bool, sigma float64) types.Option[*Interpolator] {
	return func(in *Interpolator) {
		in.params.Smooth = enabled
		in.params.SmoothSigma = sigma
	}
}

// WithComponentMetadata overrides the generated name and ID.
func WithComponentMetadata(name string, id string) types.Option[*Interpolator] {
	return func(in *Interpolator) {
		in.componentMetadata.Name = name
		in.componentMetadata.ID = id
	}
}

// GetComponentMetadata returns the interpolator's identity.
func (in *Interpolator) GetComponentMetadata() types.ComponentMetadata {
	in.configLock.RLock()
	defer in.configLock.RUnlock()
	return in.componentMetadata
}

// Params returns the active parameters.
func (in *Interpolator) Params() Params {
	in.configLock.RLock()
	defer in.configLock.RUnlock()
	return in.params
}

// SetParams replaces the active parameters.
func (in *Interpolator) SetParams(p Params) {
	in.configLock.Lock()
	in.params = p
	in.configLock.Unlock()
}

// ConnectLogger registers loggers, ignoring nils.
func (in *Interpolator) ConnectLogger(loggers ...types.Logger) {
	in.loggersLock.Lock()
	defer in.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			in.loggers = append(in.loggers, l)
		}
	}
}

// Field interpolates the measured points of a layout.
func (in *Interpolator) Field(points []types.MeasurementPoint, region shape.Region) (types.StressGrid, error) {
	return in.Interpolate(SamplesFromPoints(points), region)
}

// Interpolate runs Interpolate with the active parameters and logs the outcome.
func (in *Interpolator) Interpolate(samples []Sample, region shape.Region) (types.StressGrid, error) {
	g, err := Interpolate(samples, region, in.Params())
	switch {
	case err != nil:
		in.logKV(types.WarnLevel, "Field interpolation failed",
			"event", "Interpolate",
			"result", "FAILURE",
			logschema.FieldStage, types.StageInterpolate,
			"points", len(samples),
			"error", err,
		)
	case g.Downgraded:
		in.logKV(types.WarnLevel, "Cubic interpolation fell back to linear",
			"event", "Interpolate",
			"result", "FALLBACK",
			logschema.FieldStage, types.StageInterpolate,
			"points", g.NPoints,
		)
	case g.Mode != types.ModeContour:
		in.logKV(types.InfoLevel, "Too few points for a field",
			"event", "Interpolate",
			"result", "WARNING",
			logschema.FieldStage, types.StageInterpolate,
			"mode", string(g.Mode),
			"points", g.NPoints,
		)
	default:
		in.logKV(types.DebugLevel, "Field interpolated",
			"event", "Interpolate",
			"result", "SUCCESS",
			logschema.FieldStage, types.StageInterpolate,
			"method", string(g.Method),
			"confidence", string(g.Confidence),
			"points", g.NPoints,
			"valid_cells", g.Stats.ValidCells,
		)
	}
	return g, err
}

// ValueAt estimates stress at (x, y) from the measured points; see Index.ValueAt.
func (in *Interpolator) ValueAt(points []types.MeasurementPoint, x, y float64, method string) (float64, bool) {
	return NewIndex(SamplesFromPoints(points)).ValueAt(x, y, method)
}

func (in *Interpolator) logKV(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	in.loggersLock.Lock()
	loggers := append([]types.Logger(nil), in.loggers...)
	in.loggersLock.Unlock()

	fields := append([]interface{}{"component", in.GetComponentMetadata()}, keysAndValues...)
	for _, logger := range loggers {
		if logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, fields...)
		case types.InfoLevel:
			logger.Info(msg, fields...)
		case types.WarnLevel:
			logger.Warn(msg, fields...)
		default:
			logger.Error(msg, fields...)
		}
	}
}
