package curvy

import (
	"math"
)

// finite returns v unchanged, panicking if v is NaN or infinite. Every
// constructor that accepts raw floats routes them through this check, so
// downstream types only ever hold finite values.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("curvy: non-finite value")
	}
	return v
}

// mod2Pi wraps v into [0, 2π). Unlike math.Mod, the result is never
// negative.
func mod2Pi(v float64) float64 {
	m := math.Mod(v, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
		// Adding 2π to a tiny negative remainder rounds up to exactly 2π.
		if m == 2*math.Pi {
			m = 0
		}
	}
	return m
}
