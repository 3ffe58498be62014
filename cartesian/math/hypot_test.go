package math

import (
	stdmath "math"
	"math/rand"
	"testing"
)

func TestAbs(t *testing.T) {
	tests := []struct {
		name   string
		re, im float64
		want   float64
	}{
		{"abs(3, 4) = 5", 3, 4, 5},
		{"abs(-3, 4) = 5", -3, 4, 5},
		{"abs(3, -4) = 5", 3, -4, 5},
		{"abs(-3, -4) = 5", -3, -4, 5},
		{"abs(5, 12) = 13", 5, 12, 13},
		{"abs(8, -15) = 17", 8, -15, 17},
		{"abs(0, 0) = 0", 0, 0, 0},
		{"abs(-0, -0) = 0", stdmath.Copysign(0, -1), stdmath.Copysign(0, -1), 0},
		{"abs(1, 0) = 1", 1, 0, 1},
		{"abs(0, -1) = 1", 0, -1, 1},
		{"abs(1, 1) = sqrt(2)", 1, 1, stdmath.Sqrt2},
		// Power-of-two scalings of a 3-4-5 triple stay exact through the
		// internal rescaling, high and low.
		{"huge triple", 3 * 0x1p900, 4 * 0x1p900, 5 * 0x1p900},
		{"top of range", 3 * 0x1p1020, 4 * 0x1p1020, 5 * 0x1p1020},
		{"subnormal triple", 3 * 0x1p-1060, 4 * 0x1p-1060, 5 * 0x1p-1060},
		// The 54-exponent gap shortcut returns the larger magnitude.
		{"negligible small part", 1, 0x1p-60, 1},
		{"negligible real", 0x1p-60, -2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Abs(tt.re, tt.im); got != tt.want {
				t.Errorf("Abs(%g, %g) = %g, want %g", tt.re, tt.im, got, tt.want)
			}
		})
	}
}

func TestAbs_SpecialCases(t *testing.T) {
	inf := stdmath.Inf(1)
	nan := stdmath.NaN()
	tests := []struct {
		name    string
		re, im  float64
		wantInf bool
	}{
		{"(+Inf, 1)", inf, 1, true},
		{"(-Inf, 1)", -inf, 1, true},
		{"(1, +Inf)", 1, inf, true},
		{"(1, -Inf)", 1, -inf, true},
		{"(+Inf, NaN)", inf, nan, true},
		{"(NaN, -Inf)", nan, -inf, true},
		{"(NaN, 1)", nan, 1, false},
		{"(1, NaN)", 1, nan, false},
		{"(NaN, NaN)", nan, nan, false},
		{"(NaN, 0)", nan, 0, false},
		{"(NaN, huge)", nan, stdmath.MaxFloat64, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Abs(tt.re, tt.im)
			if tt.wantInf && !stdmath.IsInf(got, 1) {
				t.Errorf("Abs(%v, %v) = %v, want +Inf", tt.re, tt.im, got)
			}
			if !tt.wantInf && !stdmath.IsNaN(got) {
				t.Errorf("Abs(%v, %v) = %v, want NaN", tt.re, tt.im, got)
			}
		})
	}
}

// TestAbs_Reflection: the modulus ignores component order and component
// signs. The kernel works on sign-stripped bits, so the agreement is
// bit-exact, not merely approximate.
func TestAbs_Reflection(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 10000; i++ {
		re := (rng.Float64() - 0.5) * stdmath.Ldexp(1, rng.Intn(600)-300)
		im := (rng.Float64() - 0.5) * stdmath.Ldexp(1, rng.Intn(600)-300)
		want := Abs(re, im)
		if Abs(im, re) != want || Abs(re, -im) != want || Abs(-re, im) != want {
			t.Fatalf("Abs reflection mismatch at (%g, %g)", re, im)
		}
	}
}

// TestAbs_AgainstHypot: the kernel must stay within two ulps of the stdlib
// scalar hypot across a wide exponent range (the stdlib routine itself is
// not correctly rounded, so exact agreement is not expected).
func TestAbs_AgainstHypot(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100000; i++ {
		re := (rng.Float64() - 0.5) * stdmath.Ldexp(1, rng.Intn(1200)-600)
		im := (rng.Float64() - 0.5) * stdmath.Ldexp(1, rng.Intn(1200)-600)
		got := Abs(re, im)
		want := stdmath.Hypot(re, im)
		step := stdmath.Nextafter(got, want)
		if got == want || step == want || stdmath.Nextafter(step, want) == want {
			continue
		}
		t.Fatalf("Abs(%g, %g) = %.17g, hypot = %.17g", re, im, got, want)
	}
}

func TestArg(t *testing.T) {
	negZero := stdmath.Copysign(0, -1)
	tests := []struct {
		name   string
		re, im float64
		want   float64
	}{
		{"positive real axis", 1, 0, 0},
		{"negative real axis above", -1, 0, stdmath.Pi},
		{"negative real axis below", -1, negZero, -stdmath.Pi},
		{"positive imaginary axis", 0, 1, halfPi},
		{"negative imaginary axis", 0, -1, -halfPi},
		{"first quadrant diagonal", 1, 1, quarterPi},
		{"third quadrant diagonal", -1, -1, -threeQuartPi},
		{"origin", 0, 0, 0},
		{"origin from the left", negZero, 0, stdmath.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Arg(tt.re, tt.im); got != tt.want {
				t.Errorf("Arg(%g, %g) = %g, want %g", tt.re, tt.im, got, tt.want)
			}
		})
	}
}
