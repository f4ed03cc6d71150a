package curvy

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Shape is the surface a path-drawing consumer needs from any shape in this
// package: its start and stop points, and for arcs additionally the radius
// and sweep direction. Rendering depends on nothing else.
type Shape interface {
	Start() Point
	Stop() Point
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent
	// any given coordinate.
	MaxPrecision int
}

// SVG converts a shape to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(s Shape, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, s, opts)
	return sb.String()
}

// WriteSVG converts a shape to SVG path commands and writes them to w:
// "M … L …" for a [Line] or [Polyline], the same closed with "Z" for a
// [Polygon], and "M … A …" for an [Arc]. An arc's span is always a
// shortest-path rotation, so the large-arc flag is always 0 and the sweep
// flag follows [Arc.SweepFlag].
//
// [Polyarc] and [Polycurve] rendering is not supported and reports an
// error.
func WriteSVG(w io.Writer, s Shape, opts SVGOptions) error {
	pw := pathWriter{w: w, maxPrecision: opts.MaxPrecision}
	switch s := s.(type) {
	case Line:
		pw.writef("M%s L%s", pw.point(s.Start()), pw.point(s.Stop()))
	case Arc:
		// SVG wants an unsigned radius; orientation is already carried by
		// the sweep flag.
		r := pw.coord(math.Abs(s.Radius))
		sweep := 0
		if s.SweepFlag() {
			sweep = 1
		}
		pw.writef("M%s A%s,%s 0 0,%d %s", pw.point(s.Start()), r, r, sweep, pw.point(s.Stop()))
	case Polyline:
		pw.writef("M%s", pw.point(s[0]))
		for _, pt := range s[1:] {
			pw.writef(" L%s", pw.point(pt))
		}
	case Polygon:
		pw.writef("M%s", pw.point(s[0]))
		for _, pt := range s[1:] {
			pw.writef(" L%s", pw.point(pt))
		}
		pw.writef(" Z")
	default:
		return fmt.Errorf("curvy: cannot render %T as an SVG path", s)
	}
	return pw.err
}

// ViewBox is the visible region of an SVG document.
type ViewBox struct {
	MinX   float64
	MinY   float64
	Width  float64
	Height float64
}

// WriteDocument wraps the shapes' path data in a minimal standalone SVG
// document, one stroked path element per shape.
func WriteDocument(w io.Writer, viewBox ViewBox, opts SVGOptions, shapes ...Shape) error {
	_, err := fmt.Fprintf(w, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%g %g %g %g\">\n",
		viewBox.MinX, viewBox.MinY, viewBox.Width, viewBox.Height)
	if err != nil {
		return err
	}
	for _, s := range shapes {
		if _, err := io.WriteString(w, "  <path d=\""); err != nil {
			return err
		}
		if err := WriteSVG(w, s, opts); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\" fill=\"none\" stroke=\"black\"/>\n"); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "</svg>\n")
	return err
}

type pathWriter struct {
	w            io.Writer
	maxPrecision int
	err          error
}

func (pw *pathWriter) writef(format string, args ...any) {
	if pw.err != nil {
		return
	}
	_, pw.err = fmt.Fprintf(pw.w, format, args...)
}

func (pw *pathWriter) coord(n float64) string {
	if pw.maxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', pw.maxPrecision, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func (pw *pathWriter) point(p Point) string {
	return pw.coord(p.X) + "," + pw.coord(p.Y)
}
