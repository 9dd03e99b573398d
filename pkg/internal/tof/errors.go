package tof

import "errors"

var (
	// ErrEmptyWaveform is returned when either signal has fewer than two samples.
	ErrEmptyWaveform = errors.New("tof: empty waveform")
	// ErrInvalidSampleRate is returned when neither waveform carries a positive sample rate.
	ErrInvalidSampleRate = errors.New("tof: sample rate must be positive")
	// ErrNonFiniteSample is returned when either signal holds a NaN or infinite voltage.
	ErrNonFiniteSample = errors.New("tof: non-finite sample")
)
