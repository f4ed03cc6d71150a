package curvy

import (
	"fmt"
)

// Point is a position in the plane. Both coordinates are always finite.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y). It panics if either coordinate is not finite.
func Pt(x, y float64) Point {
	return Point{X: finite(x), Y: finite(y)}
}

// Origin returns the point (0, 0).
func Origin() Point {
	return Point{}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Add translates the point by d.
func (pt Point) Add(d Delta) Point {
	return Point{
		X: pt.X + d.DX,
		Y: pt.Y + d.DY,
	}
}

// Sub computes pt−o as a vector.
func (pt Point) Sub(o Point) Delta {
	return Delta{
		DX: pt.X - o.X,
		DY: pt.Y - o.Y,
	}
}

// Midpoint returns the point halfway between two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Magnitude()
}

// RotateAbout rotates the point by angle around the pivot o.
func (pt Point) RotateAbout(o Point, angle Angle) Point {
	return o.Add(pt.Sub(o).Rotate(angle))
}
