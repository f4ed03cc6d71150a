package curvy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance for the equidistance check in [ArcFromCenter]. The constructor
// is overspecified, so the redundant input is only required to agree with
// the derived radius to within rounding error of the caller's own
// computation, not exactly.
const arcRadiusTolerance = 1e-9

// Arc is a circular arc. Its start and stop points are derived, never
// stored: the arc is a center, a signed radius, the direction from the
// center to the arc's start point, and a signed angular span.
//
// This representation makes offsetting at right angles to the arc's
// tangents a single field update: only Radius changes, see [Arc.Offset].
// The sign of the radius carries orientation; offsetting past the center
// negates it, flipping the derived begin/end ordering and length.
type Arc struct {
	Center Point
	// Radius is the signed radius. Positive as constructed; it becomes
	// negative when an offset pushes the arc through its own center.
	Radius float64
	// StartAngle is the direction from the center to the arc's start point.
	StartAngle Angle
	// StopDiff is the signed angular span from the start point to the stop
	// point.
	StopDiff AngleDiff
}

// NewArc returns the circular arc from start to stop whose tangent at start
// points in the given direction.
//
// The center is found by intersecting two perpendiculars: one through start
// (the tangent direction rotated by 90°) and one through the midpoint of
// start and stop (the start→stop direction rotated by 90°). It fails with
// [ErrCoincidentPoints] if start equals stop and with [ErrUndefinableArc]
// if the perpendiculars do not meet at a unique point.
func NewArc(start, stop Point, tangent Angle) (Arc, error) {
	if start == stop {
		return Arc{}, fmt.Errorf("arc at %v: %w", start, ErrCoincidentPoints)
	}

	// The perpendiculars' lengths are irrelevant; only the infinite lines
	// matter.
	startPerp, err := LineFromPointAngle(start, tangent.Add(quarterTurn), 1)
	if err != nil {
		return Arc{}, err
	}
	midAngle := stop.Sub(start).Angle()
	midPerp, err := LineFromPointAngle(start.Midpoint(stop), midAngle.Add(quarterTurn), 1)
	if err != nil {
		return Arc{}, err
	}

	var center Point
	switch x := startPerp.IntersectLine(midPerp); x.Kind {
	case IntersectionOnePoint, IntersectionOutOfBounds:
		center = x.Point
	default:
		return Arc{}, fmt.Errorf("arc from %v to %v: %w", start, stop, ErrUndefinableArc)
	}

	startDelta := start.Sub(center)
	startAngle := startDelta.Angle()
	return Arc{
		Center:     center,
		Radius:     startDelta.Magnitude(),
		StartAngle: startAngle,
		StopDiff:   stop.Sub(center).Angle().Sub(startAngle),
	}, nil
}

// ArcFromCenter returns the circular arc about center from start to stop.
// The constructor is overspecified: the radius is derived from start, and
// stop is verified to be equidistant from the center within a tolerance.
// It fails with [ErrUndefinableArc] otherwise.
func ArcFromCenter(center, start, stop Point) (Arc, error) {
	startDelta := start.Sub(center)
	radius := startDelta.Magnitude()
	stopDelta := stop.Sub(center)
	if !scalar.EqualWithinAbsOrRel(radius, stopDelta.Magnitude(), arcRadiusTolerance, arcRadiusTolerance) {
		return Arc{}, fmt.Errorf("arc about %v from %v to %v: %w", center, start, stop, ErrUndefinableArc)
	}
	startAngle := startDelta.Angle()
	return Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		StopDiff:   stopDelta.Angle().Sub(startAngle),
	}, nil
}

// EvalAngle maps an absolute angle to the point on the arc's circle in that
// direction from the center.
func (a Arc) EvalAngle(angle Angle) Point {
	return a.Center.Add(DelFromPolar(a.Radius, angle))
}

// Eval maps an arc-length parameter to a point on the arc's circle.
func (a Arc) Eval(t float64) Point {
	return a.EvalAngle(AngleDiff{t / a.Radius}.Angle())
}

// EvalBounded is like [Arc.Eval], but reports false when t falls outside
// [Arc.Begin], [Arc.End].
func (a Arc) EvalBounded(t float64) (Point, bool) {
	if t < a.Begin() || t > a.End() {
		return Point{}, false
	}
	return a.Eval(t), true
}

// SignedDistance returns the arc-length coordinate of the direction from
// the center to the given point.
func (a Arc) SignedDistance(point Point) float64 {
	return point.Sub(a.Center).Angle().Radians() * a.Radius
}

// Begin returns the arc-length coordinate of the start point. It is
// negative when the radius is negative.
func (a Arc) Begin() float64 {
	return a.StartAngle.Radians() * a.Radius
}

// End returns the arc-length coordinate of the stop point.
func (a Arc) End() float64 {
	return a.StopAngle().Radians() * a.Radius
}

// StopAngle returns the direction from the center to the arc's stop point.
func (a Arc) StopAngle() Angle {
	return a.StartAngle.Add(a.StopDiff)
}

// Length returns the signed length of the arc.
func (a Arc) Length() float64 {
	return a.StopDiff.Radians() * a.Radius
}

// Start returns the arc's start point.
func (a Arc) Start() Point {
	return a.Eval(a.Begin())
}

// Stop returns the arc's stop point.
func (a Arc) Stop() Point {
	return a.Eval(a.End())
}

// ControlPoint returns the intersection of the tangent lines at the arc's
// start and stop points. It panics when the tangents are parallel, which
// happens only for a span of exactly π.
func (a Arc) ControlPoint() Point {
	startTangent, err := LineFromPointAngle(a.Start(), a.StartAngle.Add(quarterTurn.Neg()), 1)
	if err != nil {
		panic(err)
	}
	stopTangent, err := LineFromPointAngle(a.Stop(), a.StopAngle().Add(quarterTurn.Neg()), 1)
	if err != nil {
		panic(err)
	}
	switch x := startTangent.IntersectLine(stopTangent); x.Kind {
	case IntersectionOnePoint, IntersectionOutOfBounds:
		return x.Point
	default:
		panic("curvy: arc tangents do not meet at a unique point")
	}
}

// CurveSize returns the distance from the arc's start point to the
// intersection of the tangent lines at its endpoints: the "bulge" size of
// the arc when used as a corner fillet.
func (a Arc) CurveSize() float64 {
	return a.Start().Distance(a.ControlPoint())
}

// SweepFlag reports whether the rotation from the start angle to the stop
// angle is counterclockwise, as needed by SVG-style path consumers.
func (a Arc) SweepFlag() bool {
	return a.StartAngle.Direction(a.StopAngle()) == Counterclockwise
}

// Offset translates the arc perpendicular to its tangents by the signed
// distance: the radius changes and everything else is constant. Offsetting
// past the center flips the sign of the radius and with it the arc's
// orientation.
func (a Arc) Offset(distance float64) Arc {
	a.Radius += finite(distance)
	return a
}

type ArcLineIntersectionKind int

const (
	// ArcIntersectionInBounds: within both the line's segment bounds and
	// the arc's angular span.
	ArcIntersectionInBounds ArcLineIntersectionKind = iota + 1
	// ArcIntersectionInArcBounds: within the arc's angular span only.
	ArcIntersectionInArcBounds
	// ArcIntersectionInLineBounds: within the line's segment bounds only.
	ArcIntersectionInLineBounds
	// ArcIntersectionOutOfBounds: on both infinite extensions, within
	// neither bound.
	ArcIntersectionOutOfBounds
)

// ArcLineIntersection is one crossing of a circular arc and a line,
// classified by which of the two shapes' bounds it falls within.
type ArcLineIntersection struct {
	Kind  ArcLineIntersectionKind
	Point Point
}

func classifyArcLine(onLine, onArc bool, point Point) ArcLineIntersection {
	var kind ArcLineIntersectionKind
	switch {
	case onLine && onArc:
		kind = ArcIntersectionInBounds
	case onArc:
		kind = ArcIntersectionInArcBounds
	case onLine:
		kind = ArcIntersectionInLineBounds
	default:
		kind = ArcIntersectionOutOfBounds
	}
	return ArcLineIntersection{Kind: kind, Point: point}
}

// IntersectLine intersects the arc's circle with the line, returning up to
// two crossings and their count. A count of zero means the circle and the
// infinite line do not meet; a count of one means the line is tangent to
// the circle. Each crossing is classified independently against the line's
// segment bounds and the arc's angular span.
func (a Arc) IntersectLine(l Line) ([2]ArcLineIntersection, int) {
	// Points on the line are foot + t·dir with dir a unit vector, so
	// |P(t)−C|² = r² reduces to t² + 2bt + c = 0.
	delta := l.FootPoint().Sub(a.Center)
	dir := DelFromPolar(1, l.Angle)
	b := delta.DX*dir.DX + delta.DY*dir.DY
	c := delta.DX*delta.DX + delta.DY*delta.DY - a.Radius*a.Radius

	radicand := b*b - c
	if radicand < 0 {
		return [2]ArcLineIntersection{}, 0
	}

	onLine := func(t float64) bool {
		return t >= l.Begin() && t < l.End()
	}
	onArc := func(point Point) bool {
		theta := point.Sub(a.Center).Angle()
		return theta.Between(a.StartAngle, a.StopAngle())
	}

	if radicand == 0 {
		// The line is tangent: one double root.
		t := -b
		point := l.Eval(t)
		if onLine(t) && onArc(point) {
			return [2]ArcLineIntersection{{Kind: ArcIntersectionInBounds, Point: point}}, 1
		}
		return [2]ArcLineIntersection{{Kind: ArcIntersectionOutOfBounds, Point: point}}, 1
	}

	sqrt := math.Sqrt(radicand)
	t1 := -b + sqrt
	t2 := -b - sqrt
	point1 := l.Eval(t1)
	point2 := l.Eval(t2)
	return [2]ArcLineIntersection{
		classifyArcLine(onLine(t1), onArc(point1), point1),
		classifyArcLine(onLine(t2), onArc(point2), point2),
	}, 2
}

// IntersectArc would intersect two circular arcs. It is not implemented.
func (a Arc) IntersectArc(o Arc) ([2]ArcLineIntersection, int) {
	panic("not implemented")
}
