package shape

import (
	"fmt"
	"math"
)

// MinAngleSpan is the sector span in degrees below which a circle is flagged.
const MinAngleSpan = 30.0

const radiusTolerance = 1e-6

// Circle covers disks, annuli (Inner > 0) and sectors. Angles are in degrees,
// counter-clockwise from +X. StartAngle == EndAngle == 0 means a full circle,
// as does any span of 360° or more.
type Circle struct {
	CenterX    float64
	CenterY    float64
	Outer      float64
	Inner      float64
	StartAngle float64
	EndAngle   float64
}

func (c Circle) Kind() Kind { return KindCircle }

// Span returns the angular extent in degrees, swept counter-clockwise from
// StartAngle to EndAngle, so 315 to 45 spans 90.
func (c Circle) Span() float64 {
	if (c.StartAngle == 0 && c.EndAngle == 0) || math.Abs(c.EndAngle-c.StartAngle) >= 360 {
		return 360
	}
	return normalizeDegrees(c.EndAngle - c.StartAngle)
}

// Contains checks the radius range with a small tolerance, then the angular
// range, which may wrap across 0°.
func (c Circle) Contains(x, y float64) bool {
	d := math.Hypot(x-c.CenterX, y-c.CenterY)
	if d < c.Inner-radiusTolerance || d > c.Outer+radiusTolerance {
		return false
	}
	if c.Span() >= 360 {
		return true
	}
	angle := normalizeDegrees(math.Atan2(y-c.CenterY, x-c.CenterX) * 180 / math.Pi)
	start := normalizeDegrees(c.StartAngle)
	end := normalizeDegrees(c.EndAngle)
	if start <= end {
		return angle >= start && angle <= end
	}
	return angle >= start || angle <= end
}

func (c Circle) Area() float64 {
	return math.Pi * (c.Outer*c.Outer - c.Inner*c.Inner) * c.Span() / 360
}

func (c Circle) BoundingBox() BBox {
	return BBox{
		MinX: c.CenterX - c.Outer, MinY: c.CenterY - c.Outer,
		MaxX: c.CenterX + c.Outer, MaxY: c.CenterY + c.Outer,
	}
}

// Centroid is the area centroid. For a sector it sits on the bisector at
// (2/3)(R³-r³)/(R²-r²)·sin(α)/α from the centre, α being the half-span. A full
// circle or annulus returns the centre, which for an annulus lies in the bore.
func (c Circle) Centroid() Point {
	span := c.Span()
	if span >= 360 {
		return c.Center()
	}
	alpha := span / 2 * math.Pi / 180
	r2 := c.Outer*c.Outer - c.Inner*c.Inner
	if alpha == 0 || r2 <= 0 {
		return c.Center()
	}
	d := 2.0 / 3.0 * (c.Outer*c.Outer*c.Outer - c.Inner*c.Inner*c.Inner) / r2 * math.Sin(alpha) / alpha
	bisector := (c.StartAngle + span/2) * math.Pi / 180
	return Point{X: c.CenterX + d*math.Cos(bisector), Y: c.CenterY + d*math.Sin(bisector)}
}

// Center is the circle's geometric centre.
func (c Circle) Center() Point { return Point{X: c.CenterX, Y: c.CenterY} }

func (c Circle) validate() ([]string, error) {
	switch {
	case c.Outer <= 0:
		return nil, fmt.Errorf("%w: outer radius %g", ErrInvalidDimension, c.Outer)
	case c.Inner < 0:
		return nil, fmt.Errorf("%w: inner radius %g", ErrInvalidDimension, c.Inner)
	case c.Inner >= c.Outer:
		return nil, fmt.Errorf("%w: inner radius %g not below outer radius %g", ErrInvalidDimension, c.Inner, c.Outer)
	}
	var warnings []string
	if span := c.Span(); span < MinAngleSpan {
		warnings = append(warnings, fmt.Sprintf("small angular span %.1f°", span))
	}
	return warnings, nil
}

// normalizeDegrees maps a into [0, 360).
func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
