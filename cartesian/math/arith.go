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

// isFinite reports whether v is neither infinite nor NaN.
func isFinite(v float64) bool {
	return !stdmath.IsInf(v, 0) && !stdmath.IsNaN(v)
}

// boxInf projects an operand onto the unit box for infinity recovery:
// infinities keep their sign as ±1, everything else (including NaN)
// collapses to a signed zero.
func boxInf(v float64) float64 {
	if stdmath.IsInf(v, 0) {
		return stdmath.Copysign(1, v)
	}
	return stdmath.Copysign(0, v)
}

// Multiply computes the complex product (re1, im1) * (re2, im2), delivering
// the result through sink.
//
// The textbook four-product form is used first. If it produces NaN in both
// components the operands are re-examined: an infinite operand is boxed to
// unit magnitude (its NaN partner component to zero), and a finite-operand
// overflow drops NaN components to zero, after which the products are
// recomputed against an explicit infinity. A product with an infinite
// operand or true overflow therefore stays infinite, with the sign the
// directed limit requires, and only genuinely undefined combinations return
// (NaN, NaN).
func Multiply[R any](re1, im1, re2, im2 float64, sink Sink[R]) R {
	a, b, c, d := re1, im1, re2, im2
	ac := a * c
	bd := b * d
	ad := a * d
	bc := b * c
	x := ac - bd
	y := ad + bc
	if stdmath.IsNaN(x) && stdmath.IsNaN(y) {
		recalc := false
		if stdmath.IsInf(a, 0) || stdmath.IsInf(b, 0) {
			a = boxInf(a)
			b = boxInf(b)
			if stdmath.IsNaN(c) {
				c = stdmath.Copysign(0, c)
			}
			if stdmath.IsNaN(d) {
				d = stdmath.Copysign(0, d)
			}
			recalc = true
		}
		if stdmath.IsInf(c, 0) || stdmath.IsInf(d, 0) {
			c = boxInf(c)
			d = boxInf(d)
			if stdmath.IsNaN(a) {
				a = stdmath.Copysign(0, a)
			}
			if stdmath.IsNaN(b) {
				b = stdmath.Copysign(0, b)
			}
			recalc = true
		}
		if !recalc && (stdmath.IsInf(ac, 0) || stdmath.IsInf(bd, 0) ||
			stdmath.IsInf(ad, 0) || stdmath.IsInf(bc, 0)) {
			// Finite operands overflowed a partial product: zero the NaNs
			// and rescale against infinity.
			if stdmath.IsNaN(a) {
				a = stdmath.Copysign(0, a)
			}
			if stdmath.IsNaN(b) {
				b = stdmath.Copysign(0, b)
			}
			if stdmath.IsNaN(c) {
				c = stdmath.Copysign(0, c)
			}
			if stdmath.IsNaN(d) {
				d = stdmath.Copysign(0, d)
			}
			recalc = true
		}
		if recalc {
			inf := stdmath.Inf(1)
			x = inf * (a*c - b*d)
			y = inf * (a*d + b*c)
		}
	}
	return sink(x, y)
}

// Divide computes the complex quotient (re1, im1) / (re2, im2), delivering
// the result through sink.
//
// The denominator is scaled by 2^-ilogb(max(|re2|, |im2|)) before forming
// c^2 + d^2, and the quotient components are scaled back with Ldexp. The
// scaling is exact, so the only rounding is in the two divisions; it keeps
// the squared denominator away from overflow and underflow for every finite
// divisor. Three recovery clauses then patch the double-NaN outcomes:
// nonzero/zero gives a correctly signed infinity, infinite/finite stays
// infinite via boxed operands, and finite/infinite collapses to a signed
// zero.
func Divide[R any](re1, im1, re2, im2 float64, sink Sink[R]) R {
	a, b, c, d := re1, im1, re2, im2
	ilogbw := 0
	lb := stdmath.Logb(stdmath.Max(stdmath.Abs(c), stdmath.Abs(d)))
	if isFinite(lb) {
		ilogbw = int(lb)
		c = stdmath.Ldexp(c, -ilogbw)
		d = stdmath.Ldexp(d, -ilogbw)
	}
	denom := c*c + d*d
	x := stdmath.Ldexp((a*c+b*d)/denom, -ilogbw)
	y := stdmath.Ldexp((b*c-a*d)/denom, -ilogbw)
	if stdmath.IsNaN(x) && stdmath.IsNaN(y) {
		switch {
		case denom == 0 && (!stdmath.IsNaN(a) || !stdmath.IsNaN(b)):
			inf := stdmath.Copysign(stdmath.Inf(1), c)
			x = inf * a
			y = inf * b
		case (stdmath.IsInf(a, 0) || stdmath.IsInf(b, 0)) && isFinite(c) && isFinite(d):
			a = boxInf(a)
			b = boxInf(b)
			inf := stdmath.Inf(1)
			x = inf * (a*c + b*d)
			y = inf * (b*c - a*d)
		case stdmath.IsInf(lb, 1) && isFinite(a) && isFinite(b):
			c = boxInf(c)
			d = boxInf(d)
			x = 0 * (a*c + b*d)
			y = 0 * (b*c - a*d)
		}
	}
	return sink(x, y)
}
