package curvy

import (
	"fmt"
	"math"
)

// Angle is a canonical rotation value in [0, 2π). Use this unless you need
// to distinguish, say, +180° from −180°, in which case you want [AngleDiff].
//
// Equality of two Angles is equality modulo 2π; because the representative
// is canonical, == does the right thing. Two Angles cannot be added to one
// another; they compose only through AngleDiff.
type Angle struct {
	rad float64
}

// Rad returns the angle of theta radians. It panics if theta is not finite
// or not already in [0, 2π); callers are responsible for pre-normalizing raw
// angles, for instance via [AngleDiff.Angle].
func Rad(theta float64) Angle {
	finite(theta)
	if theta < 0 || theta >= 2*math.Pi {
		panic(fmt.Sprintf("curvy: angle %g out of range [0, 2π)", theta))
	}
	return Angle{theta}
}

// Radians returns the angle in radians, in [0, 2π).
func (a Angle) Radians() float64 {
	return a.rad
}

func (a Angle) String() string {
	return fmt.Sprintf("%g (%gdeg)", a.rad, a.rad*(180/math.Pi))
}

// Neg returns the reflection of the angle, 2π − θ, wrapped into [0, 2π).
func (a Angle) Neg() Angle {
	return Angle{mod2Pi(2*math.Pi - a.rad)}
}

// Add rotates the angle by d, wrapping the result back into [0, 2π).
func (a Angle) Add(d AngleDiff) Angle {
	return Angle{mod2Pi(a.rad + d.rad)}
}

// Sub returns the shortest-path signed difference between two angles,
// always in (−π, π].
func (a Angle) Sub(o Angle) AngleDiff {
	m := mod2Pi(a.rad - o.rad + math.Pi)
	if m == 0 {
		m = 2 * math.Pi
	}
	return AngleDiff{m - math.Pi}
}

// Diff reinterprets the angle as a signed rotation from zero.
func (a Angle) Diff() AngleDiff {
	return AngleDiff{a.rad}
}

// Direction is the sense of a rotation.
type Direction int

const (
	// NoDirection means neither rotation sense is shorter than the other,
	// i.e. the two angles differ by exactly π.
	NoDirection Direction = iota + 1
	Clockwise
	Counterclockwise
)

func (d Direction) String() string {
	switch d {
	case NoDirection:
		return "none"
	case Clockwise:
		return "clockwise"
	case Counterclockwise:
		return "counterclockwise"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Direction classifies the shortest rotation from a to o. It returns
// NoDirection when the two angles differ by exactly π.
func (a Angle) Direction(o Angle) Direction {
	switch d := mod2Pi(a.rad - o.rad); {
	case d == math.Pi:
		return NoDirection
	case d > math.Pi:
		return Counterclockwise
	default:
		return Clockwise
	}
}

// Between reports whether rotating from start to a goes the same way as
// rotating from start to stop, both by their shortest paths. It is used to
// test whether a point's angle lies within an arc's angular span without
// explicit interval arithmetic.
func (a Angle) Between(start, stop Angle) bool {
	return start.Direction(a) == start.Direction(stop)
}

// AngleDiff is a signed rotation. Arithmetic keeps it within (−2π, 2π) by
// convention, though construction does not constrain it.
type AngleDiff struct {
	rad float64
}

// RadDiff returns the signed rotation of theta radians. It panics if theta
// is not finite.
func RadDiff(theta float64) AngleDiff {
	return AngleDiff{finite(theta)}
}

// Radians returns the signed rotation in radians.
func (d AngleDiff) Radians() float64 {
	return d.rad
}

func (d AngleDiff) String() string {
	return fmt.Sprintf("%g (%gdeg)", d.rad, d.rad*(180/math.Pi))
}

// Neg returns the rotation in the opposite sense.
func (d AngleDiff) Neg() AngleDiff {
	return AngleDiff{-d.rad}
}

// Add returns the combined rotation d + o.
func (d AngleDiff) Add(o AngleDiff) AngleDiff {
	return AngleDiff{d.rad + o.rad}
}

// Angle wraps the rotation into the canonical range [0, 2π).
func (d AngleDiff) Angle() Angle {
	return Angle{mod2Pi(d.rad)}
}
