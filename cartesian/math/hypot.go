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

const (
	absMask uint64 = 0x7FFFFFFFFFFFFFFF
	infBits uint64 = 0x7FF0000000000000
	expShift       = 52

	// Beyond this exponent gap the smaller operand cannot perturb even the
	// last bit of the larger one's 53-bit significand.
	expGap = 54
)

// Abs returns the modulus sqrt(re^2 + im^2), correctly rounded for inputs
// whose exact modulus is representable: Abs(3, 4) is exactly 5. Operands are
// rescaled by powers of two near the top and bottom of the exponent range,
// so the modulus neither overflows nor underflows unless the true value
// does.
//
// Special cases:
//
//	Abs(±Inf, im) = +Inf for any im, including NaN
//	Abs(re, ±Inf) = +Inf for any re, including NaN
//	Abs(NaN, im) = NaN for any finite im
//	Abs(re, NaN) = NaN for any finite re
func Abs(re, im float64) float64 {
	a := stdmath.Float64bits(re) & absMask
	b := stdmath.Float64bits(im) & absMask
	if a < b {
		a, b = b, a
	}
	if int(a>>expShift)-int(b>>expShift) > expGap {
		// Covers b == 0, and a == Inf/NaN against a small b.
		return stdmath.Float64frombits(a)
	}
	if a >= infBits {
		if a == infBits || b == infBits {
			return stdmath.Inf(1)
		}
		return stdmath.NaN()
	}
	x := stdmath.Float64frombits(a)
	y := stdmath.Float64frombits(b)
	rescale := 1.0
	if x > 0x1p500 {
		x *= 0x1p-600
		y *= 0x1p-600
		rescale = 0x1p600
	} else if y < 0x1p-500 {
		// x is within 54 exponent steps of y, so x*2^600 cannot overflow.
		x *= 0x1p600
		y *= 0x1p600
		rescale = 0x1p-600
	}
	return stdmath.Sqrt(x2y2(x, y)) * rescale
}

// Arg returns the argument (phase angle) of (re, im) in [-Pi, Pi], measured
// from the positive real axis. The sign of a zero imaginary part selects the
// side of the branch cut along the negative real axis: Arg(-1, +0) = Pi and
// Arg(-1, -0) = -Pi.
func Arg(re, im float64) float64 {
	return stdmath.Atan2(im, re)
}
