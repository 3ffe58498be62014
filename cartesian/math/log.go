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

// Log computes the principal natural logarithm of (re, im), delivering
// (log |z|, Arg(re, im)) through sink. The branch cut lies along the
// negative real axis; the sign of an imaginary zero selects its side, so
// Log(-1, +0) = (0, Pi) and Log(-1, -0) = (0, -Pi).
//
// Algorithm: the imaginary part is always Atan2(im, re). The real part is
// log(Abs(re, im)) except where that loses accuracy or range: near the unit
// circle it becomes log1p(x^2+y^2-1)/2 with the argument in extended
// precision, huge operands are halved before the modulus (adding log 2 back),
// and subnormal operands are scaled up by 2^54 (subtracting 54*log 2).
//
// Special cases:
//
//	Log(±0, +0) = (-Inf, +0) for +0 real, (-Inf, Pi) for -0 real
//	Log(±Inf, im) = (+Inf, Arg) for any im, including NaN
//	Log(re, ±Inf) = (+Inf, Arg) for any re, including NaN
//	Log(NaN, im) = (NaN, NaN) for finite im, and symmetrically
func Log[R any](re, im float64, sink Sink[R]) R {
	return logKernel(re, im, stdmath.Log, log1pScaleLn, ln2, sink)
}

// Log10 computes the principal decimal logarithm: Log(re, im) scaled by
// 1/log 10 on the real axis. The imaginary part remains the phase angle in
// radians, matching the principal branch of Log. Special cases are those of
// Log.
func Log10[R any](re, im float64, sink Sink[R]) R {
	return logKernel(re, im, stdmath.Log10, halfLog10ofE, log10ofTwo, sink)
}

// logKernel factors the magnitude handling shared by Log and Log10: logFn
// and logOfTwo fix the base, and nearOneScale converts the natural log1p
// term. The four magnitude regimes keep x^2+y^2 away from overflow,
// underflow and unit-circle cancellation; the phase falls out of Atan2
// unconditionally, which also covers every non-finite combination.
func logKernel[R any](re, im float64, logFn func(float64) float64, nearOneScale, logOfTwo float64, sink Sink[R]) R {
	x := stdmath.Abs(re)
	y := stdmath.Abs(im)
	if x < y {
		x, y = y, x
	}
	var lnAbs float64
	switch {
	case 0.5 < x && x < stdmath.Sqrt2:
		lnAbs = nearOneScale * stdmath.Log1p(x2y2m1(x, y))
	case x > logSafeMax:
		lnAbs = logOfTwo + logFn(Abs(0.5*x, 0.5*y))
	case x < minNormal:
		lnAbs = logFn(Abs(x*0x1p54, y*0x1p54)) - 54*logOfTwo
	default:
		lnAbs = logFn(Abs(x, y))
	}
	return sink(lnAbs, stdmath.Atan2(im, re))
}
