package shape

import "errors"

var (
	// ErrInvalidDimension is returned for non-positive sizes or radii, or an inner radius not below the outer one.
	ErrInvalidDimension = errors.New("shape: invalid dimension")
	// ErrTooFewVertices is returned for polygons with fewer than three vertices.
	ErrTooFewVertices = errors.New("shape: polygon needs at least 3 vertices")
	// ErrSelfIntersecting is returned when two non-adjacent polygon edges cross.
	ErrSelfIntersecting = errors.New("shape: polygon is self-intersecting")
	// ErrNonPositiveArea is returned when a region's net area is zero or negative.
	ErrNonPositiveArea = errors.New("shape: area is not positive")
	// ErrUnknownShape is returned for unrecognised shape kinds or a missing base shape.
	ErrUnknownShape = errors.New("shape: unknown shape")
)
