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

package cartesian

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	z := New(3, -4)
	if got := z.Real(); got != 3 {
		t.Errorf("Real() = %v, want 3", got)
	}
	if got := z.Imag(); got != -4 {
		t.Errorf("Imag() = %v, want -4", got)
	}

	var zero Complex
	if !zero.Equal(New(0, 0)) {
		t.Errorf("zero value = %v, want (0,0)", zero)
	}
}

func TestNewPolar(t *testing.T) {
	z, err := NewPolar(2, stdmath.Pi/2)
	require.NoError(t, err)
	assert.InDelta(t, 0, z.Real(), 1e-15)
	assert.Equal(t, 2.0, z.Imag())

	z, err = NewPolar(5, 0)
	require.NoError(t, err)
	assert.True(t, z.Equal(New(5, 0)), "NewPolar(5, 0) = %v", z)

	z, err = NewPolar(stdmath.Inf(1), stdmath.Pi/4)
	require.NoError(t, err)
	assert.True(t, z.IsInf(), "NewPolar(+Inf, Pi/4) = %v", z)

	for _, rho := range []float64{0, -1, stdmath.Inf(-1), stdmath.NaN()} {
		_, err := NewPolar(rho, 1)
		require.Error(t, err, "rho=%v", rho)
		assert.ErrorContains(t, err, "polar modulus")
	}
}

func TestNewCis(t *testing.T) {
	if got, want := NewCis(0), New(1, 0); !got.Equal(want) {
		t.Errorf("NewCis(0) = %v, want %v", got, want)
	}

	z := NewCis(2 * stdmath.Pi / 3)
	if got, want := z.Real(), -0.5; stdmath.Abs(got-want) > 1e-15 {
		t.Errorf("NewCis(2Pi/3) real = %v, want %v", got, want)
	}
	if got, want := z.Imag(), stdmath.Sqrt(3)/2; stdmath.Abs(got-want) > 1e-15 {
		t.Errorf("NewCis(2Pi/3) imag = %v, want %v", got, want)
	}
	if got := z.Abs(); stdmath.Abs(got-1) > 1e-15 {
		t.Errorf("|NewCis(2Pi/3)| = %v, want 1", got)
	}
}

func TestClassification(t *testing.T) {
	inf := stdmath.Inf(1)
	nan := stdmath.NaN()
	tests := []struct {
		name                   string
		z                      Complex
		isInf, isNaN, isFinite bool
	}{
		{"zero", New(0, 0), false, false, true},
		{"finite", New(1.5, -2.5), false, false, true},
		{"real infinity", New(inf, 0), true, false, false},
		{"negative imaginary infinity", New(0, -inf), true, false, false},
		{"infinity beats real NaN", New(nan, -inf), true, false, false},
		{"infinity beats imaginary NaN", New(inf, nan), true, false, false},
		{"real NaN", New(nan, 0), false, true, false},
		{"imaginary NaN", New(2, nan), false, true, false},
		{"canonical NaN", NaN(), false, true, false},
		{"canonical infinity", Inf(), true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.z.IsInf(); got != tt.isInf {
				t.Errorf("IsInf() = %v, want %v", got, tt.isInf)
			}
			if got := tt.z.IsNaN(); got != tt.isNaN {
				t.Errorf("IsNaN() = %v, want %v", got, tt.isNaN)
			}
			if got := tt.z.IsFinite(); got != tt.isFinite {
				t.Errorf("IsFinite() = %v, want %v", got, tt.isFinite)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	inf := stdmath.Inf(1)
	nan := stdmath.NaN()
	negZero := stdmath.Copysign(0, -1)
	payloadNaN := stdmath.Float64frombits(0xFFF8000000001234)
	tests := []struct {
		name string
		a, b Complex
		want bool
	}{
		{"identical", New(1, 2), New(1, 2), true},
		{"one ulp apart", New(1, 2), New(stdmath.Nextafter(1, 2), 2), false},
		{"zero signs differ real", New(0, 0), New(negZero, 0), false},
		{"zero signs differ imaginary", New(1, negZero), New(1, 0), false},
		{"NaN equals NaN", New(nan, 1), New(nan, 1), true},
		{"NaN payload irrelevant", NaN(), New(payloadNaN, payloadNaN), true},
		{"NaN is no number", New(nan, 1), New(0, 1), false},
		{"same infinities", New(inf, 0), New(inf, 0), true},
		{"opposite infinities", New(inf, 0), New(-inf, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestConjNeg(t *testing.T) {
	z := New(3, -4)
	if got, want := z.Conj(), New(3, 4); !got.Equal(want) {
		t.Errorf("Conj(3-4i) = %v, want %v", got, want)
	}
	if got, want := z.Neg(), New(-3, 4); !got.Equal(want) {
		t.Errorf("Neg(3-4i) = %v, want %v", got, want)
	}

	// Both act on sign bits alone, zeros and NaNs included.
	if got := New(1, 0).Conj(); !stdmath.Signbit(got.Imag()) {
		t.Errorf("Conj(1, +0) imaginary = %v, want -0", got.Imag())
	}
	if got := New(0, 0).Neg(); !stdmath.Signbit(got.Real()) || !stdmath.Signbit(got.Imag()) {
		t.Errorf("Neg(+0, +0) = %v, want (-0,-0)", got)
	}
	if got := New(1, stdmath.NaN()).Conj(); !got.IsNaN() {
		t.Errorf("Conj(1, NaN) = %v, want NaN imaginary", got)
	}
}

func TestAbs(t *testing.T) {
	if got := New(3, -4).Abs(); got != 5 {
		t.Errorf("Abs(3-4i) = %v, want 5", got)
	}
	if got := New(1e308, 1e308).Abs(); stdmath.IsInf(got, 1) {
		t.Errorf("Abs(1e308+1e308i) overflowed, want finite")
	}
	if got := Inf().Abs(); !stdmath.IsInf(got, 1) {
		t.Errorf("Abs(Inf) = %v, want +Inf", got)
	}
	if got := NaN().Abs(); !stdmath.IsNaN(got) {
		t.Errorf("Abs(NaN) = %v, want NaN", got)
	}
}

func TestArg(t *testing.T) {
	negZero := stdmath.Copysign(0, -1)
	tests := []struct {
		name string
		z    Complex
		want float64
		tol  float64
	}{
		{"positive real axis", New(2, 0), 0, 0},
		{"positive imaginary axis", New(0, 3), stdmath.Pi / 2, 0},
		{"above the cut", New(-2, 0), stdmath.Pi, 0},
		{"below the cut", New(-2, negZero), -stdmath.Pi, 0},
		{"third quadrant", New(-1, -1), -3 * stdmath.Pi / 4, 1e-15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.z.Arg(); stdmath.Abs(got-tt.want) > tt.tol {
				t.Errorf("Arg(%v) = %v, want %v", tt.z, got, tt.want)
			}
		})
	}
}

func TestNorm(t *testing.T) {
	if got := New(3, -4).Norm(); got != 25 {
		t.Errorf("Norm(3-4i) = %v, want 25", got)
	}
	if got := New(stdmath.Inf(-1), stdmath.NaN()).Norm(); !stdmath.IsInf(got, 1) {
		t.Errorf("Norm(-Inf+NaNi) = %v, want +Inf", got)
	}
	if got := New(stdmath.NaN(), 2).Norm(); !stdmath.IsNaN(got) {
		t.Errorf("Norm(NaN+2i) = %v, want NaN", got)
	}
	// Unlike Abs, Norm squares the components and overflows early.
	if got := New(1e200, 0).Norm(); !stdmath.IsInf(got, 1) {
		t.Errorf("Norm(1e200) = %v, want +Inf", got)
	}
}
