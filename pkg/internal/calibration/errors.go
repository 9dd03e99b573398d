package calibration

import "errors"

var (
	// ErrZeroSlope is returned when the fitted slope is zero and k is undefined.
	ErrZeroSlope = errors.New("calibration: slope is zero")
	// ErrInsufficientData is returned when a fit has fewer than two usable points.
	ErrInsufficientData = errors.New("calibration: at least two points are required")
	// ErrUnsupportedFormat is returned for coefficient files that are neither JSON nor CSV.
	ErrUnsupportedFormat = errors.New("calibration: unsupported file format")
	// ErrMissingCoefficient is returned when an imported file carries no usable k.
	ErrMissingCoefficient = errors.New("calibration: no valid stress coefficient")
)
