package types

// InterpolationMethod names a scattered-data method.
type InterpolationMethod string

const (
	MethodAuto    InterpolationMethod = "auto"
	MethodNone    InterpolationMethod = "none"
	MethodLinear  InterpolationMethod = "linear"
	MethodCubic   InterpolationMethod = "cubic"
	MethodNearest InterpolationMethod = "nearest"
)

// Confidence is the qualitative reliability label of a field.
type Confidence string

const (
	ConfidenceNone   Confidence = "none"
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
	ConfidenceFull   Confidence = "full"
)

// GridMode tells callers whether a dense field was produced.
type GridMode string

const (
	ModeContour    GridMode = "contour"
	ModePointsOnly GridMode = "points_only"
	ModeNoData     GridMode = "no_data"
)

// GridStats summarises valid (non-NaN) cells.
type GridStats struct {
	VMin       float64
	VMax       float64
	Mean       float64
	Std        float64
	ValidCells int
}

// StressGrid is a dense interpolated field. Xi, Yi and Zi share the same
// resolution×resolution shape; Zi holds NaN outside the specimen.
type StressGrid struct {
	Xi, Yi, Zi [][]float64
	Stats      GridStats
	Mode       GridMode
	Method     InterpolationMethod
	Confidence Confidence
	Downgraded bool // cubic failed and linear was used instead
	NPoints    int
	Message    string
}
