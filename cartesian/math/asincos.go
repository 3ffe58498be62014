// Copyright 2025 go-cartesian Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package math

import stdmath "math"

// Asin and Acos implement the Hull, Fairgrieve and Tang algorithm. Both
// work on the first-quadrant point (x, y) = (|re|, |im|) and map the result
// back by symmetry at the end: Asin is odd in re and conjugate symmetric,
// Acos reflects through (Pi/2, 0). The workhorse quantities are
//
//	r = sqrt((x+1)^2 + y^2)    s = sqrt((x-1)^2 + y^2)
//	a = (r + s) / 2            b = x / a
//
// a is the half-sum of distances to the branch points ±1 (so a >= 1 and
// asin's imaginary magnitude is acosh(a)), and b = sin(asin real part) with
// b <= 1. Near the crossovers where asin(b) and acosh(a) lose precision,
// algebraically equivalent forms computed from r and s take over. Outside
// the safe box (components not in (asinSafeMin, asinSafeMax)) the squares
// in r and s would overflow or vanish, and six asymptotic regimes keyed on
// the distance to the branch points apply instead.

// Asin computes the principal complex arc sine, delivering the result
// through sink. The real part lies in [-Pi/2, Pi/2]; branch cuts run along
// the real axis outside [-1, 1], and the sign of the imaginary zero selects
// the side: Asin(2, +0) has a positive imaginary part, Asin(2, -0) a
// negative one.
//
// Special cases:
//
//	Asin(±0, +0) = (±0, +0)
//	Asin(re, ±Inf) = (±0, ±Inf) for finite re, real sign matching re
//	Asin(±Inf, im) = (±Pi/2, ±Inf) for finite im, signs from re and im
//	Asin(±Inf, ±Inf) = (±Pi/4, ±Inf)
//	Asin(±Inf, NaN) = (NaN, +Inf)
//	Asin(NaN, ±0) = (NaN, ±0)
//	Asin(NaN, ±Inf) = (NaN, ±Inf)
//	Asin(NaN, im) = (NaN, NaN) for finite nonzero im
//	Asin(±0, NaN) = (±0, NaN)
//	Asin(re, NaN) = (NaN, NaN) for finite nonzero re
func Asin[R any](re, im float64, sink Sink[R]) R {
	a, b := asinKernel(re, im)
	return sink(stdmath.Copysign(a, re), stdmath.Copysign(b, im))
}

// Acos computes the principal complex arc cosine, delivering the result
// through sink. The real part lies in [0, Pi]; branch cuts and their zero
// sign selection match Asin. Acos(z) + Asin(z) = Pi/2 on the whole plane.
//
// Special cases:
//
//	Acos(±0, ±0) = (Pi/2, ∓0)
//	Acos(re, ±Inf) = (Pi/2, ∓Inf) for finite re
//	Acos(-Inf, im) = (Pi, ∓Inf) for finite im
//	Acos(+Inf, im) = (+0, ∓Inf) for finite im
//	Acos(-Inf, ±Inf) = (3*Pi/4, ∓Inf)
//	Acos(+Inf, ±Inf) = (Pi/4, ∓Inf)
//	Acos(±Inf, NaN) = (NaN, -Inf)
//	Acos(NaN, ±Inf) = (NaN, ∓Inf)
//	Acos(±0, NaN) = (Pi/2, NaN)
//	Acos(re, NaN) = (NaN, NaN) for finite nonzero re
//	Acos(NaN, im) = (NaN, NaN) for finite im
func Acos[R any](re, im float64, sink Sink[R]) R {
	if stdmath.IsNaN(re) {
		if stdmath.IsInf(im, 0) {
			return sink(stdmath.NaN(), -im)
		}
		return sink(stdmath.NaN(), stdmath.NaN())
	}
	if stdmath.IsInf(re, 0) {
		switch {
		case stdmath.IsNaN(im):
			return sink(stdmath.NaN(), -stdmath.Copysign(stdmath.Inf(1), im))
		case stdmath.IsInf(im, 0):
			a := quarterPi
			if re < 0 {
				a = threeQuartPi
			}
			return sink(a, -im)
		case re < 0:
			return sink(stdmath.Pi, -stdmath.Copysign(stdmath.Inf(1), im))
		default:
			return sink(0, -stdmath.Copysign(stdmath.Inf(1), im))
		}
	}
	if stdmath.IsInf(im, 0) {
		return sink(halfPi, -im)
	}
	if stdmath.IsNaN(im) {
		if re == 0 {
			return sink(halfPi, stdmath.NaN())
		}
		return sink(stdmath.NaN(), stdmath.NaN())
	}
	a, b := acosKernel(stdmath.Abs(re), stdmath.Abs(im))
	if stdmath.Signbit(re) {
		a = stdmath.Pi - a
	}
	if !stdmath.Signbit(im) {
		b = -b
	}
	return sink(a, b)
}

// Asinh computes the principal complex inverse hyperbolic sine, delivering
// the result through sink. Asinh is odd and conjugate symmetric with branch
// cuts along the imaginary axis outside [-i, i]; it is Asin rotated by
// asinh(z) = -i*asin(i*z), so the special-case table is the rotation of
// Asin's.
func Asinh[R any](re, im float64, sink Sink[R]) R {
	return Asin(-im, re, func(are, aim float64) R {
		return sink(aim, -are)
	})
}

// Acosh computes the principal complex inverse hyperbolic cosine, delivering
// the result through sink. The real part is non-negative and the imaginary
// part lies in [-Pi, Pi]; the branch cut runs along the real axis left of 1.
// It is Acos rotated onto the right half plane via acosh(z) = ±i*acos(z),
// picking the sign that makes the real part non-negative.
//
// Special cases include Acosh(±0, +0) = (+0, Pi/2), Acosh(-Inf, im) =
// (+Inf, Pi) for finite im, and Acosh(NaN, ±Inf) = (+Inf, NaN).
// Acosh(±0, NaN) is (NaN, NaN) directly: the rotation would turn Acos's
// (Pi/2, NaN) row into a spurious finite imaginary part.
func Acosh[R any](re, im float64, sink Sink[R]) R {
	if re == 0 && stdmath.IsNaN(im) {
		return sink(stdmath.NaN(), stdmath.NaN())
	}
	return Acos(re, im, func(are, aim float64) R {
		if stdmath.Signbit(aim) {
			return sink(-aim, are)
		}
		return sink(aim, -are)
	})
}

// asinKernel evaluates asin on (|re|, |im|) and returns non-negative real
// and imaginary magnitudes; the caller restores both signs by symmetry.
// NaN magnitudes pass through copysign unchanged, so the non-finite rows
// are folded into the same magnitude form.
func asinKernel(re, im float64) (float64, float64) {
	x := stdmath.Abs(re)
	y := stdmath.Abs(im)
	switch {
	case stdmath.IsNaN(x):
		switch {
		case im == 0:
			return stdmath.NaN(), 0
		case stdmath.IsInf(y, 0):
			return stdmath.NaN(), stdmath.Inf(1)
		default:
			return stdmath.NaN(), stdmath.NaN()
		}
	case stdmath.IsInf(x, 0):
		switch {
		case stdmath.IsNaN(y):
			return stdmath.NaN(), stdmath.Inf(1)
		case stdmath.IsInf(y, 0):
			return quarterPi, stdmath.Inf(1)
		default:
			return halfPi, stdmath.Inf(1)
		}
	case stdmath.IsInf(y, 0):
		return 0, stdmath.Inf(1)
	case stdmath.IsNaN(y):
		if x == 0 {
			return 0, stdmath.NaN()
		}
		return stdmath.NaN(), stdmath.NaN()
	}

	xp1 := x + 1
	xm1 := x - 1
	if x < asinSafeMax && x > asinSafeMin && y < asinSafeMax && y > asinSafeMin {
		yy := y * y
		r := stdmath.Sqrt(xp1*xp1 + yy)
		s := stdmath.Sqrt(xm1*xm1 + yy)
		a := 0.5 * (r + s)
		return hullReal(x, y, yy, r, s, a, xp1, xm1), hullImag(yy, r, s, a, xp1, xm1)
	}

	// Outside the safe box: asymptotic regimes, ordered from the real axis
	// near the branch points out to the far field.
	switch {
	case y <= epsilon*stdmath.Abs(xm1):
		if x < 1 {
			return stdmath.Asin(x), y / stdmath.Sqrt(xp1*(1-x))
		}
		if stdmath.MaxFloat64/xp1 > xm1 {
			return halfPi, stdmath.Log1p(xm1 + stdmath.Sqrt(xp1*xm1))
		}
		return halfPi, ln2 + stdmath.Log(x)
	case y <= asinSafeMin:
		// x == 1 to within y/epsilon here: asin(1+iy) ~ Pi/2 - sqrt(y)(1-i).
		return halfPi - stdmath.Sqrt(y), stdmath.Sqrt(y)
	case epsilon*y-1 >= x:
		return x / y, ln2 + stdmath.Log(y)
	case x > 1:
		xoy := x / y
		return stdmath.Atan(xoy), ln2 + stdmath.Log(y) + 0.5*stdmath.Log1p(xoy*xoy)
	default:
		a := stdmath.Sqrt(1 + y*y)
		return x / a, 0.5 * stdmath.Log1p(2*y*(y+a))
	}
}

// acosKernel evaluates acos on the first-quadrant point (x, y), x and y
// finite and non-negative, returning real and imaginary magnitudes. The
// caller reflects the real part through Pi/2 for negative re and restores
// the imaginary sign (negative for im >= 0).
func acosKernel(x, y float64) (float64, float64) {
	xp1 := x + 1
	xm1 := x - 1
	if x < asinSafeMax && x > asinSafeMin && y < asinSafeMax && y > asinSafeMin {
		yy := y * y
		r := stdmath.Sqrt(xp1*xp1 + yy)
		s := stdmath.Sqrt(xm1*xm1 + yy)
		a := 0.5 * (r + s)
		b := x / a
		var real float64
		if b <= asinBCrossover {
			real = stdmath.Acos(b)
		} else {
			apx := a + x
			if x <= 1 {
				real = stdmath.Atan(stdmath.Sqrt(0.5*apx*(yy/(r+xp1)+(s-xm1))) / x)
			} else {
				real = stdmath.Atan((y * stdmath.Sqrt(0.5*(apx/(r+xp1)+apx/(s+xm1)))) / x)
			}
		}
		return real, hullImag(yy, r, s, a, xp1, xm1)
	}

	switch {
	case y <= epsilon*stdmath.Abs(xm1):
		if x < 1 {
			return stdmath.Acos(x), y / stdmath.Sqrt(xp1*(1-x))
		}
		if stdmath.MaxFloat64/xp1 > xm1 {
			real := 0.0
			if x > 1 {
				real = y / stdmath.Sqrt(xm1*xp1)
			}
			return real, stdmath.Log1p(xm1 + stdmath.Sqrt(xp1*xm1))
		}
		return y / x, ln2 + stdmath.Log(x)
	case y <= asinSafeMin:
		return stdmath.Sqrt(y), stdmath.Sqrt(y)
	case epsilon*y-1 >= x:
		return halfPi, ln2 + stdmath.Log(y)
	case x > 1:
		xoy := x / y
		return stdmath.Atan(y / x), ln2 + stdmath.Log(y) + 0.5*stdmath.Log1p(xoy*xoy)
	default:
		a := stdmath.Sqrt(1 + y*y)
		return halfPi, 0.5 * stdmath.Log1p(2*y*(y+a))
	}
}

// hullReal is the safe-box real part of asin: asin(b) up to the crossover,
// then an arctangent form built from r and s that stays accurate as b
// approaches 1.
func hullReal(x, y, yy, r, s, a, xp1, xm1 float64) float64 {
	b := x / a
	if b <= asinBCrossover {
		return stdmath.Asin(b)
	}
	apx := a + x
	if x <= 1 {
		return stdmath.Atan(x / stdmath.Sqrt(0.5*apx*(yy/(r+xp1)+(s-xm1))))
	}
	return stdmath.Atan(x / (y * stdmath.Sqrt(0.5*(apx/(r+xp1)+apx/(s+xm1)))))
}

// hullImag is the safe-box imaginary magnitude acosh(a), expanded as
// log1p(a-1 + sqrt((a-1)*(a+1))) below the crossover so that a near 1
// keeps full precision. The a-1 term is reassembled from r and s, which
// carry it without cancellation.
func hullImag(yy, r, s, a, xp1, xm1 float64) float64 {
	if a <= asinACrossover {
		var am1 float64
		if xm1 < 0 { // x < 1: both distance terms shrink with y
			am1 = 0.5 * (yy/(r+xp1) + yy/(s-xm1))
		} else {
			am1 = 0.5 * (yy/(r+xp1) + (s + xm1))
		}
		return stdmath.Log1p(am1 + stdmath.Sqrt(am1*(a+1)))
	}
	return stdmath.Log(a + stdmath.Sqrt(a*a-1))
}
