package curvy

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestPointAlgebra(t *testing.T) {
	p := Pt(2, 3)
	q := Pt(-1, 7)
	diff(t, Del(3, -4), p.Sub(q))
	diff(t, q, p.Add(q.Sub(p)))
	diff(t, Pt(0.5, 5), p.Midpoint(q))
	if got := p.Distance(q); got != 5 {
		t.Errorf("got %g, want 5", got)
	}
}

func TestRotateAbout(t *testing.T) {
	got := Pt(2, 1).RotateAbout(Pt(1, 1), Rad(math.Pi/2))
	diff(t, Pt(1, 2), got, cmpopts.EquateApprox(0, 1e-12))
}

func TestDelFromPolar(t *testing.T) {
	got := DelFromPolar(2, Rad(math.Pi/2))
	diff(t, Del(0, 2), got, cmpopts.EquateApprox(0, 1e-12))

	// Polar round trip.
	d := Del(-3, 4)
	diff(t, d, DelFromPolar(d.Magnitude(), d.Angle()), cmpopts.EquateApprox(0, 1e-12))
}

func TestDeltaRotate(t *testing.T) {
	got := Del(1, 0).Rotate(Rad(math.Pi / 2))
	diff(t, Del(0, 1), got, cmpopts.EquateApprox(0, 1e-12))

	// Rotating by an angle and then its reflection is the identity.
	d := Del(3, -2)
	a := Rad(1.25)
	diff(t, d, d.Rotate(a).Rotate(a.Neg()), cmpopts.EquateApprox(0, 1e-12))
}

func TestDeltaArcLength(t *testing.T) {
	got := Del(0, 2).ArcLength()
	if !scalar.EqualWithinAbs(got, 2*math.Pi/2, 1e-12) {
		t.Errorf("got %g, want π", got)
	}
}

func TestNonFiniteConstruction(t *testing.T) {
	wantPanic(t, func() { Pt(math.NaN(), 0) })
	wantPanic(t, func() { Pt(0, math.Inf(-1)) })
	wantPanic(t, func() { Del(math.Inf(1), 0) })
}
