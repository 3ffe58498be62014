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

// Sqrt computes the principal square root of (re, im), delivering the result
// through sink. The branch cut lies along the negative real axis; the result
// always has a non-negative real part, and the sign of the input imaginary
// part (including the sign of an imaginary zero) selects the side of the cut.
//
// Algorithm: with x = |re| and the modulus m = Abs(re, im), the half-angle
// identities give sqrt(z) = (t/2, im/t) for re > 0 and (|im|/t, ±t/2) for
// re < 0, where t = sqrt(2*(x + m)). Both large operands (where 2*(x + m)
// would overflow) and operands with both parts subnormal (where t would lose
// half its precision) are rescaled by even powers of two first.
//
// Special cases (conforming to the conjugate-symmetric C99 Annex G table):
//
//	Sqrt(re, ±Inf) = (+Inf, ±Inf) for any re, including NaN
//	Sqrt(NaN, im) = (NaN, NaN) for finite im
//	Sqrt(+Inf, im) = (+Inf, ±0) for finite im, (+Inf, NaN) for NaN im
//	Sqrt(-Inf, im) = (+0, ±Inf) for finite im, (NaN, ±Inf) for NaN im
//	Sqrt(±0, ±0) = (+0, ±0)
func Sqrt[R any](re, im float64, sink Sink[R]) R {
	if stdmath.IsInf(im, 0) {
		return sink(stdmath.Inf(1), im)
	}
	if stdmath.IsNaN(re) {
		return sink(stdmath.NaN(), stdmath.NaN())
	}
	if stdmath.IsInf(re, 0) {
		if re > 0 {
			if stdmath.IsNaN(im) {
				return sink(stdmath.Inf(1), stdmath.NaN())
			}
			return sink(stdmath.Inf(1), stdmath.Copysign(0, im))
		}
		if stdmath.IsNaN(im) {
			return sink(stdmath.NaN(), stdmath.Copysign(stdmath.Inf(1), im))
		}
		return sink(0, stdmath.Copysign(stdmath.Inf(1), im))
	}
	if stdmath.IsNaN(im) {
		return sink(stdmath.NaN(), stdmath.NaN())
	}
	if im == 0 {
		if re == 0 {
			return sink(0, im)
		}
		if re > 0 {
			return sink(stdmath.Sqrt(re), im)
		}
		return sink(0, stdmath.Copysign(stdmath.Sqrt(-re), im))
	}
	if re == 0 {
		// Pure imaginary: sqrt(±2t^2*i) = (t, ±t).
		t := stdmath.Sqrt(0.5 * stdmath.Abs(im))
		return sink(t, stdmath.Copysign(t, im))
	}

	x := stdmath.Abs(re)
	y := stdmath.Abs(im)
	rescale := 1.0
	switch {
	case x > sqrtSafeMax || y > sqrtSafeMax:
		// 2*(x + m) would overflow; /16 is exact and sqrt halves it to *4.
		x *= 0.0625
		y *= 0.0625
		rescale = 4
	case x < minNormal && y < minNormal:
		// Keep t out of the subnormal range: *2^54 in, *2^-27 out.
		x *= 0x1p54
		y *= 0x1p54
		rescale = 0x1p-27
	}
	t := stdmath.Sqrt(2 * (x + Abs(x, y)))
	if re > 0 {
		return sink(rescale*(t/2), stdmath.Copysign(rescale*(y/t), im))
	}
	return sink(rescale*(y/t), stdmath.Copysign(rescale*(t/2), im))
}
