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

// The circular functions are the hyperbolic ones rotated a quarter turn in
// the complex plane:
//
//	sin(z) = -i*sinh(i*z)   cos(z) = cosh(i*z)   tan(z) = -i*tanh(i*z)
//
// Multiplication by i maps (re, im) to (-im, re) exactly, component by
// component, so each identity below is a coordinate shuffle around the
// hyperbolic kernel. Zero and infinity signs, conjugate symmetry and the
// special-case tables all carry over from Sinh, Cosh and Tanh; negation of
// a NaN component flips its sign bit, which keeps the shuffled results
// conjugate symmetric even on NaN inputs.

// Sin computes the complex sine, delivering the result through sink.
// Sin is odd and conjugate symmetric. Special cases follow from those of
// Sinh under sin(z) = -i*sinh(i*z); in particular Sin(±0, +0) = (±0, +0)
// and Sin(re, ±Inf) scales to an infinite imaginary part for finite re.
func Sin[R any](re, im float64, sink Sink[R]) R {
	return Sinh(-im, re, func(sre, sim float64) R {
		return sink(sim, -sre)
	})
}

// Cos computes the complex cosine, delivering the result through sink.
// Cos is even and conjugate symmetric. Special cases follow from those of
// Cosh under cos(z) = cosh(i*z); in particular Cos(+0, +0) = (1, -0) and
// Cos(re, ±Inf) = (+Inf * cos re, ±Inf * sin -re) for finite nonzero re.
func Cos[R any](re, im float64, sink Sink[R]) R {
	return Cosh(-im, re, sink)
}

// Tan computes the complex tangent, delivering the result through sink.
// Tan is odd and conjugate symmetric. Special cases follow from those of
// Tanh under tan(z) = -i*tanh(i*z); in particular Tan(re, ±Inf) =
// (copysign(0, sin(2*re)), ±1) for finite re, the vertical asymptote limit.
func Tan[R any](re, im float64, sink Sink[R]) R {
	return Tanh(-im, re, func(tre, tim float64) R {
		return sink(tim, -tre)
	})
}
