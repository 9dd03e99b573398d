package layout

import "errors"

var (
	// ErrEmptyRegion is returned when margins leave no area to place points in.
	ErrEmptyRegion = errors.New("layout: margins leave no usable area")
	// ErrInvalidParams is returned for negative or inconsistent generator parameters.
	ErrInvalidParams = errors.New("layout: invalid parameters")
	// ErrNoPoints is returned when a custom point source has no readable coordinates.
	ErrNoPoints = errors.New("layout: no points in source")
	// ErrUnknownStrategy is returned for an unrecognised ordering strategy.
	ErrUnknownStrategy = errors.New("layout: unknown ordering strategy")
)
