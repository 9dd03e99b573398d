package builder

import (
	"github.com/joeydtaylor/acoustofield/pkg/internal/interpolate"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

type Interpolator = interpolate.Interpolator

type InterpolationParams = interpolate.Params

type InterpolationMethod = types.InterpolationMethod

type StressGrid = types.StressGrid

type GridStats = types.GridStats

const (
	MethodAuto    = types.MethodAuto
	MethodLinear  = types.MethodLinear
	MethodCubic   = types.MethodCubic
	MethodNearest = types.MethodNearest
)

func DefaultInterpolationParams() InterpolationParams { return interpolate.DefaultParams() }

func NewInterpolator(options ...types.Option[*interpolate.Interpolator]) *interpolate.Interpolator {
	return interpolate.NewInterpolator(options...)
}

func InterpolatorWithLogger(loggers ...types.Logger) types.Option[*interpolate.Interpolator] {
	return interpolate.WithLogger(loggers...)
}

func InterpolatorWithParams(p InterpolationParams) types.Option[*interpolate.Interpolator] {
	return interpolate.WithParams(p)
}

func InterpolatorWithResolution(n int) types.Option[*interpolate.Interpolator] {
	return interpolate.WithResolution(n)
}

func InterpolatorWithMethod(m InterpolationMethod) types.Option[*interpolate.Interpolator] {
	return interpolate.WithMethod(m)
}

func InterpolatorWithSmoothing(enabled bool, sigma float64) types.Option[*interpolate.Interpolator] {
	return interpolate.WithSmoothing(enabled, sigma)
}

func InterpolatorWithComponentMetadata(name string, id string) types.Option[*interpolate.Interpolator] {
	return interpolate.WithComponentMetadata(name, id)
}

// RangeChanged reports whether the stress range moved by more than threshold (0.3 = 30%).
func RangeChanged(old, cur GridStats, threshold float64) bool {
	return interpolate.RangeChanged(old, cur, threshold)
}
