package types

import "time"

// PointStatus is the lifecycle state of a measurement point.
type PointStatus string

const (
	PointPending  PointStatus = "pending"
	PointMeasured PointStatus = "measured"
	PointSkipped  PointStatus = "skipped"
)

// Severity grades a validation warning.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Validation warning types.
const (
	WarningTimeShiftRange = "time_diff_out_of_range"
	WarningStressRange    = "stress_out_of_range"
	WarningNeighborDiff   = "neighbor_diff_too_large"
)

// ValidationWarning is one violated point check.
type ValidationWarning struct {
	Type     string
	Severity Severity
	Message  string
	Value    float64
}

// MeasurementPoint is one spatial sample location and, once measured, its results.
// Index is the 1-based position in the layout order.
type MeasurementPoint struct {
	Index    int
	X, Y     float64 // mm
	HasPolar bool
	R        float64 // mm
	Theta    float64 // degrees

	Status       PointStatus
	TimeShiftNs  float64
	StressMPa    float64
	QualityScore float64
	SNR          float64
	Suspicious   bool
	Warnings     []ValidationWarning
	IsBaseline   bool
	SkipReason   string
	MeasuredAt   time.Time
}

// Measured reports whether the point carries a stress value.
func (p MeasurementPoint) Measured() bool { return p.Status == PointMeasured }

// PointResult is the per-point record handed to storage and export collaborators.
type PointResult struct {
	Index        int
	X, Y         float64
	TimeShiftNs  float64
	StressMPa    float64
	QualityScore float64
	SNR          float64
	Suspicious   bool
	IsBaseline   bool
	Warnings     []ValidationWarning
	Quality      Quality
}
