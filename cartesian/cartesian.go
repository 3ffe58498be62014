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

// Package cartesian provides an immutable complex number value type backed
// by the C99 Annex G conformant kernels in cartesian/math.
//
// A Complex is a plain (real, imaginary) pair of float64 components. Every
// bit pattern is a valid value: signed zeros, infinities and NaNs flow
// through arithmetic and the elementary functions following the Annex G
// special-value tables, so an overflow or an undefined operation stays
// classifiable instead of silently degrading. Values classify in priority
// order: a component infinity makes the value infinite even when the other
// component is NaN.
//
// All methods return new values; none mutates or allocates beyond its
// result. The zero Complex is 0 + 0i and ready to use.
package cartesian

import (
	"fmt"
	stdmath "math"

	"github.com/ajroetker/go-cartesian/cartesian/math"
)

// Complex is an immutable complex number in cartesian form. The zero value
// is 0 + 0i.
type Complex struct {
	re, im float64
}

// New returns the complex number re + i*im. Its shape matches
// math.Sink[Complex], so New can be passed directly as a kernel sink.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// NewPolar returns the complex number with modulus rho and phase theta.
// The modulus must be positive (it is the distance from the origin); zero,
// negative and NaN moduli are rejected. An infinite rho is accepted and
// produces an infinite value.
func NewPolar(rho, theta float64) (Complex, error) {
	if stdmath.IsNaN(rho) || rho <= 0 {
		return Complex{}, fmt.Errorf("cartesian: polar modulus must be positive, got %v", rho)
	}
	sin, cos := stdmath.Sincos(theta)
	return New(rho*cos, rho*sin), nil
}

// NewCis returns the unit-modulus complex number cos(theta) + i*sin(theta).
func NewCis(theta float64) Complex {
	sin, cos := stdmath.Sincos(theta)
	return New(cos, sin)
}

// Inf returns the canonical complex infinity (+Inf, +Inf).
func Inf() Complex {
	return New(stdmath.Inf(1), stdmath.Inf(1))
}

// NaN returns the canonical complex not-a-number (NaN, NaN).
func NaN() Complex {
	return New(stdmath.NaN(), stdmath.NaN())
}

// Real returns the real component.
func (z Complex) Real() float64 { return z.re }

// Imag returns the imaginary component.
func (z Complex) Imag() float64 { return z.im }

// IsInf reports whether either component is infinite. An infinite value is
// never NaN, whatever its other component holds.
func (z Complex) IsInf() bool {
	return stdmath.IsInf(z.re, 0) || stdmath.IsInf(z.im, 0)
}

// IsNaN reports whether z is not-a-number: some component is NaN and
// neither is infinite.
func (z Complex) IsNaN() bool {
	if z.IsInf() {
		return false
	}
	return stdmath.IsNaN(z.re) || stdmath.IsNaN(z.im)
}

// IsFinite reports whether both components are finite.
func (z Complex) IsFinite() bool {
	return !z.IsInf() && !z.IsNaN()
}

// Equal reports whether z and w hold the same value, comparing components
// bit for bit with one exception: any NaN equals any other NaN. The zeros
// +0 and -0 are distinct.
func (z Complex) Equal(w Complex) bool {
	return equalComponent(z.re, w.re) && equalComponent(z.im, w.im)
}

func equalComponent(a, b float64) bool {
	if stdmath.IsNaN(a) || stdmath.IsNaN(b) {
		return stdmath.IsNaN(a) && stdmath.IsNaN(b)
	}
	return stdmath.Float64bits(a) == stdmath.Float64bits(b)
}

// Conj returns the complex conjugate of z. Conjugation flips the sign bit
// of the imaginary component, NaNs included.
func (z Complex) Conj() Complex {
	return New(z.re, -z.im)
}

// Neg returns -z, flipping both sign bits.
func (z Complex) Neg() Complex {
	return New(-z.re, -z.im)
}

// Abs returns the modulus |z|. It is exact for exactly-representable moduli
// and neither overflows nor underflows unless the true modulus does.
func (z Complex) Abs() float64 {
	return math.Abs(z.re, z.im)
}

// Arg returns the phase of z in [-Pi, Pi]. The sign of a zero imaginary
// component selects the side of the branch cut along the negative real
// axis.
func (z Complex) Arg() float64 {
	return math.Arg(z.re, z.im)
}

// Norm returns the squared modulus re*re + im*im. Unlike Abs it overflows
// once a component magnitude passes about 1e154. Infinite values norm to
// +Inf even when the other component is NaN; a NaN value norms to NaN.
func (z Complex) Norm() float64 {
	if z.IsInf() {
		return stdmath.Inf(1)
	}
	return z.re*z.re + z.im*z.im
}
