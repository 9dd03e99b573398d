package experiment

import "errors"

var (
	// ErrPointNotFound is returned for an index outside the experiment's layout.
	ErrPointNotFound = errors.New("experiment: point not found")
	// ErrNoBaseline is returned when a non-baseline point is captured before any baseline exists.
	ErrNoBaseline = errors.New("experiment: baseline point has not been captured")
	// ErrPoorBaseline is returned when a point's waveform is too noisy to serve as the baseline.
	ErrPoorBaseline = errors.New("experiment: baseline waveform SNR too low")
	// ErrNoCalibration is returned when a capture is attempted without a calibration model.
	ErrNoCalibration = errors.New("experiment: no calibration loaded")
	// ErrPointNotMeasured is returned when an operation needs a measured point's waveform.
	ErrPointNotMeasured = errors.New("experiment: point has not been measured")
	// ErrInvalidWaveform is returned for empty waveforms, waveforms without a sample rate
	// and waveforms holding NaN or infinite samples.
	ErrInvalidWaveform = errors.New("experiment: invalid waveform")
)
