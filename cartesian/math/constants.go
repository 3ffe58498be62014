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

// =============================================================================
// Constants and guard thresholds for the complex kernels
// =============================================================================

const (
	minNormal float64 = 0x1p-1022 // smallest positive normal float64
	epsilon   float64 = 0x1p-52   // distance from 1.0 to the next float64

	halfPi       float64 = stdmath.Pi / 2
	quarterPi    float64 = stdmath.Pi / 4
	threeQuartPi float64 = 3 * stdmath.Pi / 4
	ln2          float64 = stdmath.Ln2
	halfLog10ofE float64 = 0.5 * stdmath.Log10E
	log1pScaleLn float64 = 0.5
)

// Thresholds for Exp, Sinh, Cosh and Tanh. exp(x) overflows just above
// x = 709.78, so e^708 is the largest whole-number power that can serve as a
// rescaling factor; arguments beyond safeExp are reduced against it. Tanh
// saturates to +-1 long before that, at half the exponent range.
const (
	safeExp  float64 = 708
	tanhSafe float64 = 354
)

var exp708 = stdmath.Exp(safeExp)

// Crossovers and guard bands for Asin and Acos, after Hull, Fairgrieve and
// Tang, "Implementing the complex arcsine and arccosine functions using
// exception handling" (TOMS 23, 1997). Inside the safe box the textbook
// formulas cannot overflow or lose precision; outside it the kernels fall
// back to asymptotic expansions.
const (
	asinACrossover float64 = 10.0
	asinBCrossover float64 = 0.6471
)

var (
	asinSafeMax = stdmath.Sqrt(stdmath.MaxFloat64) / 8
	asinSafeMin = 4 * stdmath.Sqrt(minNormal)
)

// Guard bands for Atanh. The safe box keeps (1-x)^2 + y^2 and 4x free of
// overflow and keeps y^2 above underflow noise.
var (
	atanhSafeUpper = stdmath.Sqrt(stdmath.MaxFloat64) / 2
	atanhSafeLower = 2 * stdmath.Sqrt(minNormal)
)

// Rescale triggers for Log and Sqrt.
var (
	logSafeMax  = stdmath.MaxFloat64 / 2
	sqrtSafeMax = stdmath.MaxFloat64 / 8
	log10ofTwo  = stdmath.Log10(2)
)
