package conditioner

import "errors"

var (
	// ErrInvalidSampleRate is returned when the sample rate is not positive.
	ErrInvalidSampleRate = errors.New("conditioner: sample rate must be positive")
	// ErrInvalidCutoff is returned for non-positive, inverted or out-of-band cutoffs.
	ErrInvalidCutoff = errors.New("conditioner: invalid bandpass cutoff")
	// ErrSignalTooShort is returned when a signal cannot be filtered at all.
	ErrSignalTooShort = errors.New("conditioner: signal too short")
)
