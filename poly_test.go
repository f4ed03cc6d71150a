package curvy

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPolylineSegments(t *testing.T) {
	p := Polyline{Pt(0, 0), Pt(2, 0), Pt(2, 2)}
	var starts, stops []Point
	for l := range p.Segments() {
		starts = append(starts, l.Start())
		stops = append(stops, l.Stop())
	}
	diff(t, []Point{Pt(0, 0), Pt(2, 0)}, starts, cmpopts.EquateApprox(0, 1e-10))
	diff(t, []Point{Pt(2, 0), Pt(2, 2)}, stops, cmpopts.EquateApprox(0, 1e-10))
}

func TestPolygonSegmentsWrap(t *testing.T) {
	p := Polygon{Pt(0, 0), Pt(1, 0), Pt(0, 1)}
	var n int
	var last Line
	for l := range p.Segments() {
		n++
		last = l
	}
	if n != 3 {
		t.Fatalf("got %d segments, want 3", n)
	}
	diff(t, Pt(0, 1), last.Start(), cmpopts.EquateApprox(0, 1e-10))
	diff(t, Pt(0, 0), last.Stop(), cmpopts.EquateApprox(0, 1e-10))
}

func TestPolylineOffset(t *testing.T) {
	p := Polyline{Pt(0, 0), Pt(2, 0), Pt(2, 2)}
	got := p.Offset(0.25)
	want := Polyline{Pt(0, 0.25), Pt(1.75, 0.25), Pt(1.75, 2)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-10))
}

func TestPolygonOffsetOutset(t *testing.T) {
	// Clockwise winding, so a positive offset moves every edge outward.
	p := Polygon{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}
	got := p.Offset(0.25)
	want := Polygon{Pt(-0.25, -0.25), Pt(-0.25, 1.25), Pt(1.25, 1.25), Pt(1.25, -0.25)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-10))
}

// chamferedSquare is a 3×3 clockwise square with one corner cut by a short
// diagonal edge.
func chamferedSquare() Polygon {
	return Polygon{Pt(0, 0), Pt(0, 3), Pt(2.8, 3), Pt(3, 2.8), Pt(3, 0)}
}

func TestPolygonOffsetPreservesVertices(t *testing.T) {
	got := chamferedSquare().Offset(0.25)
	if len(got) != 5 {
		t.Errorf("got %d points, want 5: %v", len(got), got)
	}
}

func TestPolygonOffsetDropsConsumedCorner(t *testing.T) {
	// An inset deeper than the chamfer's extent consumes its offset
	// segment; the re-stitch must discard it and heal the outline.
	got := chamferedSquare().Offset(-0.5)
	want := Polygon{Pt(0.5, 0.5), Pt(0.5, 2.5), Pt(2.5, 2.5), Pt(2.5, 0.5)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-10))
}

func TestPolylineOffsetTooFewPoints(t *testing.T) {
	wantPanic(t, func() { Polyline{Pt(0, 0)}.Offset(1) })
	wantPanic(t, func() { Polygon{Pt(0, 0), Pt(1, 0)}.Offset(1) })
}

func TestPolylineCurve(t *testing.T) {
	p := Polyline{Pt(0, 0), Pt(1, 0), Pt(1, 2)}
	// The fillet may use at most half of the shorter adjacent edge.
	diff(t, []float64{0.5}, p.Curve(10).CurveSizes)
	diff(t, []float64{0.3}, p.Curve(0.3).CurveSizes)
}

func TestPolygonCurve(t *testing.T) {
	p := Polygon{Pt(0, 0), Pt(4, 0), Pt(0, 3)}
	// Edge lengths 4, 5, 3; the corner at each point is bounded by half its
	// shorter adjacent edge, wrapping around at point 0.
	diff(t, []float64{1.5, 2, 1.5}, p.Curve(10).CurveSizes)
	diff(t, []float64{1, 1, 1}, p.Curve(1).CurveSizes)
}

func TestCurveSizeNeverExceedsHalfEdge(t *testing.T) {
	p := Polygon{Pt(0, 0), Pt(0, 3), Pt(2.8, 3), Pt(3, 2.8), Pt(3, 0)}
	var lengths []float64
	for l := range p.Segments() {
		lengths = append(lengths, l.Length())
	}
	for _, size := range []float64{0.01, 0.2, 5, 100} {
		pc := p.Curve(size)
		n := len(lengths)
		for i, cs := range pc.CurveSizes {
			limit := min(lengths[(i+n-1)%n], lengths[i]) / 2
			if cs > limit || cs > size {
				t.Errorf("size %g at point %d: fillet %g exceeds limit %g", size, i, cs, limit)
			}
		}
	}
}

func TestPolyarcOffsetUnimplemented(t *testing.T) {
	pa := Polyline{Pt(0, 0), Pt(1, 0), Pt(1, 2)}.Curve(0.25)
	wantPanic(t, func() { pa.Offset(0.1) })

	pc := Polygon{Pt(0, 0), Pt(4, 0), Pt(0, 3)}.Curve(0.25)
	wantPanic(t, func() { pc.Offset(0.1) })
}
