// Package shape models specimen geometry: rectangles, circles (annuli and
// sectors) and polygons, optionally with holes cut out of them.
package shape

import "math"

// Kind names a shape variant.
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindPolygon   Kind = "polygon"
)

// MinArea is the net area in mm² below which a region is flagged as small.
const MinArea = 100.0

// Point is a planar coordinate in millimetres.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of the box.
func (b BBox) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Center is the point polar layouts radiate from: the geometric centre for
// circles, the centroid otherwise.
func Center(s Shape) Point {
	if c, ok := s.(Circle); ok {
		return c.Center()
	}
	return s.Centroid()
}

// Shape is the closed set of specimen outlines. Only Rectangle, Circle and
// Polygon implement it.
type Shape interface {
	Kind() Kind
	Contains(x, y float64) bool
	Area() float64
	BoundingBox() BBox
	Centroid() Point

	// validate checks the variant's own parameters and returns non-fatal warnings.
	validate() ([]string, error)
}
