package curvy

import (
	"fmt"
	"math"
)

var (
	quarterTurn = AngleDiff{math.Pi / 2}
	halfTurn    = AngleDiff{math.Pi}
)

// Line is a bounded segment of an infinite line. The infinite line's
// identity is its direction together with its signed perpendicular distance
// from the origin; the bounded segment is a sub-range along it, measured
// from the foot point (the point on the infinite line nearest the origin).
//
// This representation makes offsetting at right angles to the line a single
// field update: only DistanceFromOrigin changes, see [Line.Offset].
type Line struct {
	// Angle is the direction of the line.
	Angle Angle
	// DistanceFromOrigin is the signed perpendicular distance of the
	// infinite line from the origin. Lines of opposite orientation in the
	// same place have distances of opposite sign.
	DistanceFromOrigin float64

	// begin and end bound the segment, as signed distances from the foot
	// point. end < begin denotes a degenerate segment containing no points;
	// the offset re-stitching algorithm uses this as a sentinel for
	// segments that have been entirely consumed.
	begin float64
	end   float64
}

// NewLine returns the line segment from start to stop. It fails with
// [ErrCoincidentPoints] if the two points are equal.
func NewLine(start, stop Point) (Line, error) {
	if start == stop {
		return Line{}, fmt.Errorf("line at %v: %w", start, ErrCoincidentPoints)
	}

	angle := stop.Sub(start).Angle()

	// Rotating the frame by −angle lays the line horizontal: both points
	// then share a y coordinate, the signed distance from the origin, and
	// their x coordinates bound the segment. The direction maps onto +x, so
	// start projects below stop.
	d1 := start.Sub(Origin()).Rotate(angle.Neg())
	d2 := stop.Sub(Origin()).Rotate(angle.Neg())

	return Line{
		Angle:              angle,
		DistanceFromOrigin: d1.DY,
		begin:              d1.DX,
		end:                d2.DX,
	}, nil
}

// LineFromPointAngle returns the line segment of the given length starting
// at start and pointing in the given direction.
func LineFromPointAngle(start Point, angle Angle, length float64) (Line, error) {
	stop := start.Add(DelFromPolar(length, angle))
	return NewLine(start, stop)
}

// FootPoint returns the point on the infinite line nearest the origin.
func (l Line) FootPoint() Point {
	return Origin().Add(DelFromPolar(l.DistanceFromOrigin, l.Angle.Add(quarterTurn)))
}

// Eval maps a signed distance from the foot point to a point on the
// infinite line.
func (l Line) Eval(t float64) Point {
	return l.FootPoint().Add(DelFromPolar(t, l.Angle))
}

// EvalBounded is like [Line.Eval], but reports false when t falls outside
// the segment's bounds.
func (l Line) EvalBounded(t float64) (Point, bool) {
	if t < l.begin || t > l.end {
		return Point{}, false
	}
	return l.Eval(t), true
}

// SignedDistance returns the coordinate of point along the line's
// direction, relative to the foot point. The point need not lie on the
// line.
func (l Line) SignedDistance(point Point) float64 {
	return point.Sub(l.FootPoint()).Rotate(l.Angle.Neg()).DX
}

// Begin returns the lower bound of the segment, as a signed distance from
// the foot point.
func (l Line) Begin() float64 {
	return l.begin
}

// End returns the upper bound of the segment, as a signed distance from the
// foot point.
func (l Line) End() float64 {
	return l.end
}

// Length returns the length of the segment. It is negative for a degenerate
// segment.
func (l Line) Length() float64 {
	return l.end - l.begin
}

// Start returns the first endpoint of the segment.
func (l Line) Start() Point {
	return l.Eval(l.begin)
}

// Stop returns the second endpoint of the segment.
func (l Line) Stop() Point {
	return l.Eval(l.end)
}

// From clips the leading bound of the segment to the given point's position
// along the line.
func (l Line) From(point Point) Line {
	l.begin = l.SignedDistance(point)
	return l
}

// Until clips the trailing bound of the segment to the given point's
// position along the line. The result is degenerate if the point projects
// before the segment's begin.
func (l Line) Until(point Point) Line {
	l.end = l.SignedDistance(point)
	return l
}

// Reversed returns a line occupying the same points with the opposite
// directionality.
func (l Line) Reversed() Line {
	return Line{
		Angle:              l.Angle.Add(halfTurn),
		DistanceFromOrigin: -l.DistanceFromOrigin,
		begin:              -l.end,
		end:                -l.begin,
	}
}

// Offset translates the line perpendicular to its direction by the signed
// distance. A positive offset moves the line towards its direction rotated
// by +90°. The direction and segment bounds are unchanged; only the
// distance from the origin moves.
func (l Line) Offset(distance float64) Line {
	l.DistanceFromOrigin += finite(distance)
	return l
}

type LineIntersectionKind int

const (
	// IntersectionNone: the lines are parallel and never meet.
	IntersectionNone LineIntersectionKind = iota + 1
	// IntersectionOutOfBounds: the infinite lines cross at a single point,
	// but it lies outside at least one segment's bounds.
	IntersectionOutOfBounds
	// IntersectionOnePoint: the segments meet at a single point.
	IntersectionOnePoint
	// IntersectionMany: the segments are collinear and overlap over more
	// than one point.
	IntersectionMany
	// IntersectionManyOutOfBounds: the segments are collinear but disjoint.
	IntersectionManyOutOfBounds
)

// LineIntersection is the result of intersecting two line segments. Point
// is meaningful for the OnePoint and OutOfBounds kinds.
type LineIntersection struct {
	Kind  LineIntersectionKind
	Point Point
}

// IntersectLine intersects two line segments.
//
// Collinear segments are classified as ManyOutOfBounds (disjoint), OnePoint
// (touching at exactly one endpoint), or Many (overlapping). Parallel but
// distinct lines yield None. Otherwise the unique crossing of the two
// infinite lines is computed and classified as OnePoint when it lies within
// both segments' bounds, else OutOfBounds; callers re-stitching offset
// segments rely on that distinction.
func (l Line) IntersectLine(o Line) LineIntersection {
	if o.Angle == l.Angle.Add(halfTurn) {
		// Opposite orientation, same slope. Reverse one operand so the
		// parallel cases below apply.
		o = o.Reversed()
	}
	if l.Angle == o.Angle {
		if l.DistanceFromOrigin != o.DistanceFromOrigin {
			// Parallel lines that never meet.
			return LineIntersection{Kind: IntersectionNone}
		}
		switch {
		case l.begin > o.end || o.begin > l.end:
			return LineIntersection{Kind: IntersectionManyOutOfBounds}
		case l.begin == o.end:
			return LineIntersection{Kind: IntersectionOnePoint, Point: l.Eval(l.begin)}
		case o.begin == l.end:
			return LineIntersection{Kind: IntersectionOnePoint, Point: o.Eval(o.begin)}
		default:
			// An overlapping collinear range has no unique point to report.
			return LineIntersection{Kind: IntersectionMany}
		}
	}

	// Exactly one crossing exists on the infinite lines. Solve the two
	// normal-form equations x·cos α + y·sin α = p, where α is the normal
	// direction and p the signed distance from the origin.
	sinA, cosA := math.Sincos(l.Angle.Add(quarterTurn).Radians())
	sinB, cosB := math.Sincos(o.Angle.Add(quarterTurn).Radians())
	p := l.DistanceFromOrigin
	q := o.DistanceFromOrigin
	den := cosA*sinB - sinA*cosB
	point := Pt(
		(p*sinB-q*sinA)/den,
		(q*cosA-p*cosB)/den,
	)

	if t := l.SignedDistance(point); t < l.begin || t > l.end {
		return LineIntersection{Kind: IntersectionOutOfBounds, Point: point}
	}
	if t := o.SignedDistance(point); t < o.begin || t > o.end {
		return LineIntersection{Kind: IntersectionOutOfBounds, Point: point}
	}
	return LineIntersection{Kind: IntersectionOnePoint, Point: point}
}

// IntersectArc intersects the line segment with a circular arc. See
// [Arc.IntersectLine].
func (l Line) IntersectArc(a Arc) ([2]ArcLineIntersection, int) {
	return a.IntersectLine(l)
}
