package curvy

import (
	"fmt"
	"math"
)

// Delta is a displacement in the plane, the difference of two [Point]s.
// Both components are always finite.
type Delta struct {
	DX float64
	DY float64
}

// Del returns the vector ⟨dx, dy⟩. It panics if either component is not
// finite.
func Del(dx, dy float64) Delta {
	return Delta{DX: finite(dx), DY: finite(dy)}
}

// DelFromPolar returns the vector of the given magnitude pointing in the
// given direction. This is the fundamental operation for placing a point
// "radius away, at this angle".
func DelFromPolar(magnitude float64, angle Angle) Delta {
	sin, cos := math.Sincos(angle.Radians())
	return Delta{
		DX: magnitude * cos,
		DY: magnitude * sin,
	}
}

func (d Delta) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", d.DX, d.DY)
}

// Add adds two vectors.
func (d Delta) Add(o Delta) Delta {
	return Delta{
		DX: d.DX + o.DX,
		DY: d.DY + o.DY,
	}
}

// Sub subtracts two vectors.
func (d Delta) Sub(o Delta) Delta {
	return Delta{
		DX: d.DX - o.DX,
		DY: d.DY - o.DY,
	}
}

// Mul scales the vector by f.
func (d Delta) Mul(f float64) Delta {
	return Delta{
		DX: d.DX * f,
		DY: d.DY * f,
	}
}

// Div scales the vector by 1/f. It panics if f is zero.
func (d Delta) Div(f float64) Delta {
	return Delta{
		DX: finite(d.DX / f),
		DY: finite(d.DY / f),
	}
}

// Neg returns the vector with both components negated.
func (d Delta) Neg() Delta {
	return Delta{
		DX: -d.DX,
		DY: -d.DY,
	}
}

// Magnitude returns the euclidean norm of the vector.
func (d Delta) Magnitude() float64 {
	return math.Hypot(d.DX, d.DY)
}

// Angle returns the direction of the vector, atan2 wrapped into [0, 2π).
func (d Delta) Angle() Angle {
	return Angle{mod2Pi(math.Atan2(d.DY, d.DX))}
}

// ArcLength treats the vector as a point on the circle drawn about its
// origin and returns how far along that circle the point is from (1, 0),
// measured counterclockwise.
func (d Delta) ArcLength() float64 {
	return d.Magnitude() * d.Angle().Radians()
}

// Rotate rotates the vector by angle.
func (d Delta) Rotate(angle Angle) Delta {
	sin, cos := math.Sincos(angle.Radians())
	return Delta{
		DX: d.DX*cos - d.DY*sin,
		DY: d.DX*sin + d.DY*cos,
	}
}
