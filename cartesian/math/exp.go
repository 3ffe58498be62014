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

// Exp computes the complex exponential e^(re, im) = e^re * (cos im, sin im),
// delivering the result through sink.
//
// The function is conjugate symmetric and periodic with period 2*Pi*i. A
// zero imaginary part stays exactly zero with its sign (the result is then
// real), and an overflowing e^re yields a correctly signed infinite
// component rather than NaN.
//
// Special cases:
//
//	Exp(±0, +0) = (1, +0)
//	Exp(re, ±Inf) = (NaN, NaN) for finite re
//	Exp(re, NaN) = (NaN, NaN) for finite nonzero re
//	Exp(+Inf, +0) = (+Inf, +0)
//	Exp(-Inf, im) = (±0, ±0) for finite im, the cis(im) quadrant signs
//	Exp(+Inf, im) = (±Inf, ±Inf) for finite nonzero im, the cis(im) signs
//	Exp(-Inf, ±Inf) = (+0, ±0)
//	Exp(+Inf, ±Inf) = (+Inf, NaN)
//	Exp(-Inf, NaN) = (+0, ±0)
//	Exp(+Inf, NaN) = (+Inf, NaN)
//	Exp(NaN, ±0) = (NaN, ±0)
//	Exp(NaN, im) = (NaN, NaN) for nonzero im
func Exp[R any](re, im float64, sink Sink[R]) R {
	if stdmath.IsInf(re, 0) {
		if re > 0 {
			if im == 0 {
				return sink(re, im)
			}
			if stdmath.IsInf(im, 0) || stdmath.IsNaN(im) {
				return sink(stdmath.Inf(1), stdmath.NaN())
			}
			sin, cos := stdmath.Sincos(im)
			return sink(stdmath.Inf(1)*cos, stdmath.Inf(1)*sin)
		}
		if stdmath.IsInf(im, 0) || stdmath.IsNaN(im) {
			return sink(0, stdmath.Copysign(0, im))
		}
		sin, cos := stdmath.Sincos(im)
		return sink(stdmath.Copysign(0, cos), stdmath.Copysign(0, sin))
	}
	if stdmath.IsNaN(re) {
		if im == 0 {
			return sink(re, im)
		}
		return sink(stdmath.NaN(), stdmath.NaN())
	}
	if stdmath.IsInf(im, 0) || stdmath.IsNaN(im) {
		return sink(stdmath.NaN(), stdmath.NaN())
	}
	if im == 0 {
		return sink(stdmath.Exp(re), im)
	}
	e := stdmath.Exp(re)
	sin, cos := stdmath.Sincos(im)
	return sink(e*cos, e*sin)
}
