package shape

import "fmt"

// Region is a base outline with zero or more holes subtracted from it.
type Region struct {
	Base  Shape
	Holes []Shape
}

// NewRegion returns a region over base with the given holes.
func NewRegion(base Shape, holes ...Shape) Region {
	return Region{Base: base, Holes: holes}
}

// IsInside reports whether (x, y) is inside the base and outside every hole.
func (r Region) IsInside(x, y float64) bool {
	if r.Base == nil || !r.Base.Contains(x, y) {
		return false
	}
	for _, h := range r.Holes {
		if h.Contains(x, y) {
			return false
		}
	}
	return true
}

// Area is the base area minus the hole areas.
func (r Region) Area() float64 {
	if r.Base == nil {
		return 0
	}
	area := r.Base.Area()
	for _, h := range r.Holes {
		area -= h.Area()
	}
	return area
}

// BoundingBox is the base shape's box; holes never enlarge it.
func (r Region) BoundingBox() BBox {
	if r.Base == nil {
		return BBox{}
	}
	return r.Base.BoundingBox()
}

// Centroid is the base shape's centroid. It may fall inside a hole.
func (r Region) Centroid() Point {
	if r.Base == nil {
		return Point{}
	}
	return r.Base.Centroid()
}

// Center is the base shape's layout centre. See Center.
func (r Region) Center() Point {
	if r.Base == nil {
		return Point{}
	}
	return Center(r.Base)
}

// Validate rejects impossible geometry and returns data-quality warnings for
// geometry that is usable but suspicious.
func (r Region) Validate() ([]string, error) {
	if r.Base == nil {
		return nil, ErrUnknownShape
	}
	warnings, err := r.Base.validate()
	if err != nil {
		return nil, err
	}
	for i, h := range r.Holes {
		if h == nil {
			return nil, fmt.Errorf("hole %d: %w", i, ErrUnknownShape)
		}
		if _, err := h.validate(); err != nil {
			return nil, fmt.Errorf("hole %d: %w", i, err)
		}
		c := Center(h)
		if !r.Base.Contains(c.X, c.Y) {
			warnings = append(warnings, fmt.Sprintf("hole %d centre (%.1f, %.1f) lies outside the base shape", i, c.X, c.Y))
		}
	}
	area := r.Area()
	if area <= 0 {
		return nil, fmt.Errorf("%w: %.3f mm²", ErrNonPositiveArea, area)
	}
	if area < MinArea {
		warnings = append(warnings, fmt.Sprintf("small area %.1f mm²", area))
	}
	return warnings, nil
}
