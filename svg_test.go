package curvy

import (
	"strings"
	"testing"
)

func TestLineSVG(t *testing.T) {
	got := SVG(mustLine(t, Pt(1, 1), Pt(5, 3)), SVGOptions{MaxPrecision: 6})
	diff(t, "M1,1 L5,3", got)
}

func TestArcSVG(t *testing.T) {
	a, err := ArcFromCenter(Pt(0, 0), Pt(1, 0), Pt(0, 1))
	if err != nil {
		t.Fatal(err)
	}
	got := SVG(a, SVGOptions{MaxPrecision: 6})
	diff(t, "M1,0 A1,1 0 0,1 0,1", got)
}

func TestArcSVGClockwise(t *testing.T) {
	a, err := ArcFromCenter(Pt(0, 0), Pt(0, 1), Pt(1, 0))
	if err != nil {
		t.Fatal(err)
	}
	got := SVG(a, SVGOptions{MaxPrecision: 6})
	diff(t, "M0,1 A1,1 0 0,0 1,0", got)
}

func TestPolylineSVG(t *testing.T) {
	p := Polyline{Pt(0, 0), Pt(2, 0), Pt(2, 2)}
	got := SVG(p, SVGOptions{MaxPrecision: 6})
	diff(t, "M0,0 L2,0 L2,2", got)
}

func TestPolygonSVG(t *testing.T) {
	p := Polygon{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}
	got := SVG(p, SVGOptions{MaxPrecision: 6})
	diff(t, "M0,0 L0,1 L1,1 L1,0 Z", got)
}

func TestSVGPrecision(t *testing.T) {
	p := Polyline{Pt(1.0/3, 0), Pt(2, 2.0/3)}
	got := SVG(p, SVGOptions{MaxPrecision: 2})
	diff(t, "M0.33,0 L2,0.67", got)

	// Zero precision falls back to the shortest exact representation.
	got = SVG(p, SVGOptions{})
	diff(t, "M0.3333333333333333,0 L2,0.6666666666666666", got)
}

func TestSVGUnsupportedShape(t *testing.T) {
	pa := Polyline{Pt(0, 0), Pt(1, 0), Pt(1, 2)}.Curve(0.25)
	if err := WriteSVG(&strings.Builder{}, pa, SVGOptions{}); err == nil {
		t.Error("rendering a polyarc should report an error")
	}
}

func TestWriteDocument(t *testing.T) {
	var sb strings.Builder
	err := WriteDocument(&sb, ViewBox{MinX: -1, MinY: -1, Width: 4, Height: 4}, SVGOptions{MaxPrecision: 6},
		Polygon{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)},
		mustLine(t, Pt(0, 0), Pt(2, 2)),
	)
	if err != nil {
		t.Fatal(err)
	}
	got := sb.String()
	if !strings.HasPrefix(got, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-1 -1 4 4">`) {
		t.Errorf("missing svg element:\n%s", got)
	}
	if n := strings.Count(got, "<path"); n != 2 {
		t.Errorf("got %d path elements, want 2", n)
	}
	if !strings.Contains(got, `d="M0,0 L0,1 L1,1 L1,0 Z"`) {
		t.Errorf("missing polygon path data:\n%s", got)
	}
	if !strings.HasSuffix(got, "</svg>\n") {
		t.Errorf("missing closing tag:\n%s", got)
	}
}
