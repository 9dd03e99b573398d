package types

// ToFResult is the acoustic time shift extracted from one (baseline, measurement) pair.
// A positive TimeShiftNs means the measurement arrives later than the baseline.
type ToFResult struct {
	TimeShiftNs     float64 // sub-sample time shift in nanoseconds
	LagSamples      float64 // refined lag in samples
	CorrelationPeak float64 // raw correlation value at the integer peak
	Samples         int     // samples per signal after alignment
	Aligned         bool    // true when the explicit time axes were used to align
}

// TimeShiftSeconds returns the shift in seconds.
func (r ToFResult) TimeShiftSeconds() float64 { return r.TimeShiftNs * 1e-9 }

// Quality thresholds.
const (
	SNRGood           = 20.0
	SNRWarning        = 15.0
	QualityGood       = 0.8
	QualityAcceptable = 0.6
)

// Quality is the scored assessment of one conditioned waveform.
type Quality struct {
	Score         float64
	SNR           float64 // dB, clamped to [0, 60]
	PeakAmplitude float64
	StdDev        float64
	Good          bool
	Acceptable    bool
	Issues        []string
}
