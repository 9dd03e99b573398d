package shape

import (
	"fmt"
	"math"
)

// MaxAspectRatio is the side ratio above which a rectangle is flagged.
const MaxAspectRatio = 10.0

// Rectangle is anchored at its lower-left corner (X, Y). A specimen outline
// normally leaves X and Y at zero.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rectangle) Kind() Kind { return KindRectangle }

// Contains reports whether (x, y) lies in the rectangle, edges included.
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

func (r Rectangle) Area() float64 { return r.Width * r.Height }

func (r Rectangle) BoundingBox() BBox {
	return BBox{MinX: r.X, MinY: r.Y, MaxX: r.X + r.Width, MaxY: r.Y + r.Height}
}

func (r Rectangle) Centroid() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func (r Rectangle) validate() ([]string, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("%w: rectangle %gx%g", ErrInvalidDimension, r.Width, r.Height)
	}
	var warnings []string
	ratio := math.Max(r.Width, r.Height) / math.Min(r.Width, r.Height)
	if ratio > MaxAspectRatio {
		warnings = append(warnings, fmt.Sprintf("extreme aspect ratio %.1f:1", ratio))
	}
	return warnings, nil
}
