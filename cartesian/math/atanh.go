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

// Atanh computes the principal complex inverse hyperbolic tangent,
// delivering the result through sink. Atanh is odd and conjugate symmetric;
// branch cuts run along the real axis outside [-1, 1], and the sign of the
// imaginary zero selects the side. The real part diverges to ±Inf at the
// poles z = ±1.
//
// Algorithm: on the first-quadrant point (x, y) the exact forms are
//
//	real = log1p(4x / ((1-x)^2 + y^2)) / 4
//	imag = atan2(2y, (1-x)(1+x) - y^2) / 2
//
// Inside the safe box ((atanhSafeLower, atanhSafeUpper) componentwise) the
// denominator 1 - x^2 - y^2 is computed in extended precision so the angle
// stays accurate near the unit circle. Outside it, huge operands collapse
// the angle to Pi and feed the log through a scale-free ratio, the x == 1
// pole uses log(2/y)/2 directly, and a negligible y^2 drops out of the
// denominator.
//
// Special cases:
//
//	Atanh(±1, +0) = (±Inf, +0)
//	Atanh(±0, ±0) = (±0, ±0)
//	Atanh(re, ±Inf) = (±0, ±Pi/2) for any re including NaN, signs from re, im
//	Atanh(±Inf, im) = (±0, ±Pi/2) for any finite im
//	Atanh(±Inf, NaN) = (±0, NaN)
//	Atanh(±0, NaN) = (±0, NaN)
//	Atanh(re, NaN) = (NaN, NaN) for finite nonzero re
//	Atanh(NaN, im) = (NaN, NaN) for finite im
func Atanh[R any](re, im float64, sink Sink[R]) R {
	if stdmath.IsNaN(re) {
		if stdmath.IsInf(im, 0) {
			return sink(stdmath.Copysign(0, re), stdmath.Copysign(halfPi, im))
		}
		return sink(stdmath.NaN(), stdmath.NaN())
	}
	if stdmath.IsNaN(im) {
		if stdmath.IsInf(re, 0) || re == 0 {
			return sink(stdmath.Copysign(0, re), stdmath.NaN())
		}
		return sink(stdmath.NaN(), stdmath.NaN())
	}
	if stdmath.IsInf(re, 0) || stdmath.IsInf(im, 0) {
		return sink(stdmath.Copysign(0, re), stdmath.Copysign(halfPi, im))
	}

	x := stdmath.Abs(re)
	y := stdmath.Abs(im)
	var a, b float64
	switch {
	case x > atanhSafeLower && x < atanhSafeUpper && y > atanhSafeLower && y < atanhSafeUpper:
		mxm1 := 1 - x
		a = 0.25 * stdmath.Log1p(4*x/(mxm1*mxm1+y*y))
		var d float64 // 1 - x^2 - y^2, extended precision
		if x >= y {
			d = -x2y2m1(x, y)
		} else {
			d = -x2y2m1(y, x)
		}
		b = 0.5 * stdmath.Atan2(2*y, d)
	case x >= atanhSafeUpper || y >= atanhSafeUpper:
		// Far field: 4x/((1-x)^2+y^2) ~ 4x/(x^2+y^2), scale-free ratios.
		if x >= y {
			t := y / x
			a = 0.25 * stdmath.Log1p((4/x)/(1+t*t))
		} else {
			t := x / y
			a = 0.25 * stdmath.Log1p((4*t/y)/(1+t*t))
		}
		b = 0.5 * stdmath.Pi
	case x == 1:
		// At the pole: atanh(1+iy) ~ log(2/y)/2 + i*(Pi/2 - atan-ish)/... the
		// angle denominator (1-x)(1+x) is an exact +0 here, putting y == 0 on
		// the +Inf pole and any other y on the quarter turn.
		a = 0.5 * (ln2 - stdmath.Log(y))
		b = 0.5 * stdmath.Atan2(2*y, (1-x)*(1+x))
	default:
		mxm1 := 1 - x
		a = 0.25 * stdmath.Log1p(4*x/(mxm1*mxm1+y*y))
		if y <= atanhSafeLower {
			b = 0.5 * stdmath.Atan2(2*y, mxm1*(1+x))
		} else {
			b = 0.5 * stdmath.Atan2(2*y, mxm1*(1+x)-y*y)
		}
	}
	return sink(stdmath.Copysign(a, re), stdmath.Copysign(b, im))
}

// Atan computes the principal complex arc tangent, delivering the result
// through sink. Atan is odd and conjugate symmetric with branch cuts along
// the imaginary axis outside [-i, i]; it is Atanh rotated by
// atan(z) = -i*atanh(i*z), so its special cases are the rotation of
// Atanh's: Atan(±Inf, im) = (±Pi/2, ±0) for any finite im, and the poles
// sit at ±i where the imaginary part diverges.
func Atan[R any](re, im float64, sink Sink[R]) R {
	return Atanh(-im, re, func(are, aim float64) R {
		return sink(aim, -are)
	})
}
