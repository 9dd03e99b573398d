package interpolate

import "github.com/joeydtaylor/acoustofield/pkg/internal/types"

// Sample counts that unlock each method under MethodAuto.
const (
	MinPointsLinear = 3
	MinPointsCubic  = 9
)

// AutoMethod picks none, linear or cubic from the sample count.
func AutoMethod(n int) types.InterpolationMethod {
	switch {
	case n < MinPointsLinear:
		return types.MethodNone
	case n < MinPointsCubic:
		return types.MethodLinear
	default:
		return types.MethodCubic
	}
}

// ConfidenceFor labels how much a field built from n samples can be trusted.
func ConfidenceFor(n int) types.Confidence {
	switch {
	case n < 3:
		return types.ConfidenceNone
	case n < 9:
		return types.ConfidenceLow
	case n < 16:
		return types.ConfidenceMedium
	case n < 25:
		return types.ConfidenceHigh
	default:
		return types.ConfidenceFull
	}
}

func knownMethod(m types.InterpolationMethod) bool {
	switch m {
	case types.MethodAuto, types.MethodNone, types.MethodLinear, types.MethodCubic, types.MethodNearest:
		return true
	}
	return false
}
