package types

// Metric names tracked by the pipeline meter.
const (
	MetricCaptureCount          = "capture_count"
	MetricCaptureErrorCount     = "capture_error_count"
	MetricBaselineCaptureCount  = "baseline_capture_count"
	MetricSuspiciousPointCount  = "suspicious_point_count"
	MetricSkippedPointCount     = "skipped_point_count"
	MetricRecomputedPointCount  = "recomputed_point_count"
	MetricFieldGenerationCount  = "field_generation_count"
	MetricBandpassFallbackCount = "bandpass_fallback_count"

	StageCondition   = "condition"
	StageExtract     = "extract"
	StageValidate    = "validate"
	StageInterpolate = "interpolate"
)

// StageTiming aggregates wall-clock durations for one pipeline stage.
type StageTiming struct {
	Count   uint64
	TotalNs int64
	MaxNs   int64
}

// MeterSnapshot is a point-in-time copy of the meter's state.
type MeterSnapshot struct {
	Counts        map[string]uint64
	Stages        map[string]StageTiming
	CPUPercent    float64
	MemoryPercent float64
	Goroutines    int
	UptimeSeconds float64
}
