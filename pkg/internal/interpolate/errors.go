package interpolate

import "errors"

var (
	// ErrInvalidResolution is returned when the grid has fewer than 2 cells per side.
	ErrInvalidResolution = errors.New("interpolate: resolution must be at least 2")
	// ErrUnknownMethod is returned for unrecognised interpolation methods.
	ErrUnknownMethod = errors.New("interpolate: unknown method")
	// ErrTriangulation is returned when the samples admit no triangulation, e.g. all collinear.
	ErrTriangulation = errors.New("interpolate: samples cannot be triangulated")
	// ErrSingularSystem is returned when the spline system cannot be solved.
	ErrSingularSystem = errors.New("interpolate: singular spline system")
)
