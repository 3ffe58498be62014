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

// Package math provides the elementary complex functions on raw
// (real, imaginary) float64 pairs, conforming to the C99 Annex G special
// value tables. It is the computational core of the cartesian package;
// use it directly when a value wrapper is unwanted.
//
// # Kernels
//
// Every function takes the operand as two float64 components and delivers
// the result through a Sink, which it invokes exactly once. Instantiating
// the sink with a constructor builds the caller's own complex type with no
// intermediate allocation.
//
// Exponential and logarithmic:
//   - Exp(re, im, sink) - e^z
//   - Log(re, im, sink) - principal natural logarithm
//   - Log10(re, im, sink) - principal decimal logarithm
//   - Sqrt(re, im, sink) - principal square root
//
// Trigonometric:
//   - Sin(re, im, sink), Cos(re, im, sink), Tan(re, im, sink)
//   - Asin(re, im, sink), Acos(re, im, sink), Atan(re, im, sink)
//
// Hyperbolic:
//   - Sinh(re, im, sink), Cosh(re, im, sink), Tanh(re, im, sink)
//   - Asinh(re, im, sink), Acosh(re, im, sink), Atanh(re, im, sink)
//
// Arithmetic with infinity recovery:
//   - Multiply(re1, im1, re2, im2, sink)
//   - Divide(re1, im1, re2, im2, sink)
//
// Scalar-valued:
//   - Abs(re, im) - modulus, without overflow or underflow
//   - Arg(re, im) - phase angle in [-Pi, Pi]
//
// Operator shapes and composition:
//   - UnaryOperator, BinaryOperator, Pair, PairOf, Compose
//
// # Semantics
//
// The kernels follow C99 Annex G: a complex value with at least one
// infinite component is infinite even if the other component is NaN,
// operands on a branch cut are routed by the sign of their zero components,
// and every function is exactly conjugate symmetric, including the sign
// bits of zero, infinite and NaN results. Where Annex G leaves a result
// sign unspecified, these kernels derive it from the corresponding input
// component with copysign, so results are deterministic and symmetry is
// preserved bit for bit.
//
// # Accuracy
//
//   - Abs is correctly rounded when the exact modulus is representable:
//     Abs(3, 4) == 5 exactly.
//   - Log keeps full precision near the unit circle through an
//     extended-precision x^2 + y^2 - 1.
//   - Asin, Acos and Atanh follow the Hull-Fairgrieve-Tang analysis, with
//     asymptotic fallbacks outside the safe exponent range.
//   - Sinh, Cosh and Tanh defer overflow and underflow past e^±2124 by
//     factored e^708 rescaling.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-cartesian/cartesian/math"
//
//	// Evaluate sqrt(z) straight into your own representation.
//	type polar struct{ rho, theta float64 }
//
//	func sqrtPolar(re, im float64) polar {
//	    return math.Sqrt(re, im, func(re, im float64) polar {
//	        return polar{rho: math.Abs(re, im), theta: math.Arg(re, im)}
//	    })
//	}
package math
