// Package curvy is a planar computational-geometry kernel: canonical
// representations of angles, points, vectors, line segments, and circular
// arcs, together with algorithms for intersection testing, constant-distance
// perpendicular offsetting, and fillet-style corner smoothing of polylines
// and polygons. It is aimed at tool-path-like uses (shape inset/outset,
// rounded-corner generation) where robust geometric construction matters
// more than raw throughput.
//
// # Canonical representations
//
// [Line] and [Arc] are both stored in a form chosen so that a perpendicular
// offset is a single scalar update. A line is its infinite-line identity (a
// direction [Angle] plus a signed distance from the origin) and a bounded
// sub-range along that infinite line; offsetting adjusts the distance and
// nothing else. An arc is a center, a signed radius, a start angle, and a
// signed angular span; offsetting adjusts the radius and nothing else. The
// sign of the radius carries orientation: offsetting an arc past its center
// negates the radius and naturally flips the derived begin/end ordering and
// length.
//
// # Offsetting
//
// [Polyline.Offset] and [Polygon.Offset] perturb every edge perpendicular to
// its direction by a signed distance, then re-stitch the result by
// intersecting consecutive offset lines. When an inset distance exceeds a
// corner's local geometry, the consumed segment is detected (its clipped
// bound interval inverts) and discarded, backtracking to the segment before
// it. The output is therefore always a valid polyline or polygon, possibly
// with fewer vertices than the input.
//
// A positive offset translates each segment towards its direction rotated by
// +90°, i.e. to the left when looking along the segment. For a polygon wound
// clockwise (in y-up coordinates) a positive offset is an outset, a negative
// one an inset.
//
// # Values and failure modes
//
// Every type in this package is an immutable value; operations are pure
// functions and independent computations are safe to run concurrently.
//
// All scalars held by the package's types are finite. Constructors taking
// raw floats ([Pt], [Del], [Rad], [RadDiff]) panic when handed NaN or an
// infinity, as does [Rad] for an angle outside [0, 2π); these are programmer
// errors. Geometric degeneracies that depend on the input data, such as
// coincident construction points or an undefinable circular arc, are
// reported as errors instead.
//
// Arc×arc intersection and the offsetting of fillet-tagged shapes ([Polyarc],
// [Polycurve]) are not implemented; invoking them panics.
package curvy
