package curvy

import (
	"iter"
)

// Polyline is an open chain of at least two points. There is no implicit
// closing edge.
type Polyline []Point

// Polygon is an implicitly closed sequence of at least three points; the
// last point connects back to the first.
type Polygon []Point

// Start returns the polyline's first point.
func (p Polyline) Start() Point {
	return p[0]
}

// Stop returns the polyline's last point.
func (p Polyline) Stop() Point {
	return p[len(p)-1]
}

// Start returns the polygon's first point.
func (p Polygon) Start() Point {
	return p[0]
}

// Stop returns the polygon's first point, the closed outline's start and
// stop being one and the same.
func (p Polygon) Stop() Point {
	return p[0]
}

// Segments iterates over the polyline's edges in order. It panics when two
// consecutive points coincide.
func (p Polyline) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 0; i+1 < len(p); i++ {
			l, err := NewLine(p[i], p[i+1])
			if err != nil {
				panic(err)
			}
			if !yield(l) {
				return
			}
		}
	}
}

// Segments iterates over the polygon's edges in order, including the
// closing edge from the last point back to the first. It panics when two
// consecutive points coincide.
func (p Polygon) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := range p {
			l, err := NewLine(p[i], p[(i+1)%len(p)])
			if err != nil {
				panic(err)
			}
			if !yield(l) {
				return
			}
		}
	}
}

// stitch joins the next offset line onto the accepted list. The previous
// line's trailing bound is clipped to the crossing with next; if that
// inverts the previous line's bound interval, the previous line has been
// entirely consumed by the offset and is discarded, retrying against the
// line before it. The accepted line has its leading bound clipped to the
// crossing.
func stitch(accepted []Line, next Line) []Line {
	for len(accepted) > 0 {
		prev := accepted[len(accepted)-1]
		x := next.IntersectLine(prev)
		switch x.Kind {
		case IntersectionOnePoint, IntersectionOutOfBounds:
		default:
			panic("curvy: cannot join parallel offset segments")
		}
		if prev.Until(x.Point).Length() < 0 {
			accepted = accepted[:len(accepted)-1]
			continue
		}
		return append(accepted, next.From(x.Point))
	}
	return append(accepted, next)
}

// Offset translates every edge perpendicular to its direction by the signed
// distance and re-stitches the result into a consistent chain. Corners
// entirely consumed by the offset are discarded, so the result may have
// fewer points than the input; it always has at least two.
//
// See the package documentation for the sign convention.
func (p Polyline) Offset(distance float64) Polyline {
	if len(p) < 2 {
		panic("curvy: polyline needs at least two points")
	}
	var lines []Line
	for l := range p.Segments() {
		lines = stitch(lines, l.Offset(distance))
	}
	out := make(Polyline, 0, len(lines)+1)
	for _, l := range lines {
		out = append(out, l.Start())
	}
	return append(out, lines[len(lines)-1].Stop())
}

// Offset translates every edge perpendicular to its direction by the signed
// distance and re-stitches the result into a consistent closed outline,
// including one extra join between the last accepted edge and the first to
// close the loop. Corners entirely consumed by the offset are discarded, so
// the result may have fewer points than the input.
//
// See the package documentation for the sign convention.
func (p Polygon) Offset(distance float64) Polygon {
	if len(p) < 3 {
		panic("curvy: polygon needs at least three points")
	}
	var lines []Line
	for l := range p.Segments() {
		lines = stitch(lines, l.Offset(distance))
	}
	// Revisit the first edge to close the loop: its leading bound is only
	// correct once it has been joined to the last accepted edge.
	lines = stitch(lines, lines[0])
	lines[0] = lines[len(lines)-1]
	lines = lines[:len(lines)-1]

	out := make(Polygon, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Start())
	}
	return out
}

// Polyarc is a [Polyline] together with the amount of each corner to devote
// to smoothing by circular arc. The first and last points have no interior
// corner, so CurveSizes has two fewer entries than the polyline has points.
type Polyarc struct {
	Polyline   Polyline
	CurveSizes []float64
}

// Polycurve is a [Polygon] together with the amount of each corner to
// devote to smoothing by circular arc. Every vertex of a closed polygon has
// a corner, so CurveSizes has exactly as many entries as the polygon has
// points.
type Polycurve struct {
	Polygon    Polygon
	CurveSizes []float64
}

// Start returns the underlying polyline's first point.
func (p Polyarc) Start() Point { return p.Polyline.Start() }

// Stop returns the underlying polyline's last point.
func (p Polyarc) Stop() Point { return p.Polyline.Stop() }

// Start returns the underlying polygon's first point.
func (p Polycurve) Start() Point { return p.Polygon.Start() }

// Stop returns the underlying polygon's first point.
func (p Polycurve) Stop() Point { return p.Polygon.Stop() }

// Curve sizes a fillet for each interior corner: the smaller of the
// requested size and half the shorter adjacent edge, so that a fillet never
// consumes more than half of either neighboring edge and adjacent fillets
// cannot overlap.
func (p Polyline) Curve(size float64) Polyarc {
	if len(p) < 2 {
		panic("curvy: polyline needs at least two points")
	}
	finite(size)
	lengths := make([]float64, 0, len(p)-1)
	for l := range p.Segments() {
		lengths = append(lengths, l.Length())
	}
	curveSizes := make([]float64, len(lengths)-1)
	for i := range curveSizes {
		curveSizes[i] = min(min(lengths[i], lengths[i+1])/2, size)
	}
	return Polyarc{Polyline: p, CurveSizes: curveSizes}
}

// Curve sizes a fillet for each corner of the closed outline, wrapping
// around to the corner between the last and first edges. Each size is the
// smaller of the requested size and half the shorter adjacent edge.
func (p Polygon) Curve(size float64) Polycurve {
	if len(p) < 3 {
		panic("curvy: polygon needs at least three points")
	}
	finite(size)
	lengths := make([]float64, 0, len(p))
	for l := range p.Segments() {
		lengths = append(lengths, l.Length())
	}
	n := len(lengths)
	curveSizes := make([]float64, n)
	for i := range curveSizes {
		// The corner at point i sits between edge i−1 (wrapping) and edge i.
		curveSizes[i] = min(min(lengths[(i+n-1)%n], lengths[i])/2, size)
	}
	return Polycurve{Polygon: p, CurveSizes: curveSizes}
}

// Offset would offset the polyarc, turning corner fillets at convex corners
// into true offset arcs. It is not implemented.
func (p Polyarc) Offset(distance float64) Polyarc {
	panic("not implemented")
}

// Offset would offset the polycurve, turning corner fillets at convex
// corners into true offset arcs. It is not implemented.
func (p Polycurve) Offset(distance float64) Polycurve {
	panic("not implemented")
}
