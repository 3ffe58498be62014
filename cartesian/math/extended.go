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

// Extended-precision helpers shared by Abs, Log and Atanh. A float64 carries
// 53 significand bits; splitting each operand at bit 27 (Dekker, 1971) makes
// the partial products exact, which in turn recovers the rounding error of a
// product or sum as another float64. The kernels fold those round-offs back
// in one compensated pass, which is what lets x^2 + y^2 - 1 stay accurate
// when the modulus is within a few ulps of 1.

// splitMultiplier is 2^27 + 1, the Dekker split constant for float64.
const splitMultiplier = 1.34217729e8

// splitHigh returns the high half of a, holding its upper 26 significand
// bits. The low half a - splitHigh(a) is exact.
func splitHigh(a float64) float64 {
	c := splitMultiplier * a
	return c - (c - a)
}

// squareLow returns the round-off of a*a, given sq = a*a already rounded.
// The result is exact: a*a == sq + squareLow(a, sq) in infinite precision.
func squareLow(a, sq float64) float64 {
	hi := splitHigh(a)
	lo := a - hi
	return ((hi*hi - sq) + 2*hi*lo) + lo*lo
}

// fastTwoSumLow returns the round-off of a+b, given sum = a+b already
// rounded. Requires |a| >= |b|.
func fastTwoSumLow(a, b, sum float64) float64 {
	return b - (sum - a)
}

// twoSumLow returns the round-off of a+b for operands in any order
// (Knuth, TAoCP vol. 2).
func twoSumLow(a, b, sum float64) float64 {
	bVirtual := sum - a
	return (a - (sum - bVirtual)) + (b - bVirtual)
}

// x2y2 computes x^2 + y^2 with one compensated correction term.
// Requires x >= y >= 0 and operands pre-scaled so that neither the squares
// nor their split products overflow or fall below the normal range.
func x2y2(x, y float64) float64 {
	x2 := x * x
	y2 := y * y
	sum := x2 + y2
	return sum + (fastTwoSumLow(x2, y2, sum) + squareLow(y, y2) + squareLow(x, x2))
}

// x2y2m1 computes x^2 + y^2 - 1 for x >= y >= 0. When the point lies near
// the unit circle the three leading terms cancel almost completely, so the
// sum is accumulated from exact products and two-sum round-offs. Away from
// the circle the direct factored form is already accurate.
func x2y2m1(x, y float64) float64 {
	if x < 1 && x*x+y*y > 0.5 {
		x2 := x * x
		y2 := y * y
		ex := squareLow(x, x2)
		ey := squareLow(y, y2)
		s1 := x2 - 1
		c1 := fastTwoSumLow(-1, x2, s1)
		s2 := s1 + y2
		c2 := twoSumLow(s1, y2, s2)
		return s2 + (c1 + c2 + ex + ey)
	}
	return (x-1)*(x+1) + y*y
}
