package math

import (
	stdmath "math"
	"testing"
)

// gridValues spans both zero signs, both infinity signs, finite points and
// NaN; the cross product exercises every row of the special-case tables.
func gridValues() []float64 {
	return []float64{
		0,
		stdmath.Copysign(0, -1),
		1,
		-1,
		0.5,
		stdmath.Inf(1),
		stdmath.Inf(-1),
		stdmath.NaN(),
	}
}

// sameFloat compares bit for bit, except that any NaN matches any NaN.
func sameFloat(a, b float64) bool {
	if stdmath.IsNaN(a) || stdmath.IsNaN(b) {
		return stdmath.IsNaN(a) && stdmath.IsNaN(b)
	}
	return stdmath.Float64bits(a) == stdmath.Float64bits(b)
}

func samePair(a, b Pair) bool {
	return sameFloat(a.Re, b.Re) && sameFloat(a.Im, b.Im)
}

func unaryKernels() []struct {
	name string
	fn   UnaryOperator[Pair]
} {
	return []struct {
		name string
		fn   UnaryOperator[Pair]
	}{
		{"Sqrt", Sqrt[Pair]},
		{"Exp", Exp[Pair]},
		{"Log", Log[Pair]},
		{"Log10", Log10[Pair]},
		{"Sin", Sin[Pair]},
		{"Cos", Cos[Pair]},
		{"Tan", Tan[Pair]},
		{"Asin", Asin[Pair]},
		{"Acos", Acos[Pair]},
		{"Atan", Atan[Pair]},
		{"Sinh", Sinh[Pair]},
		{"Cosh", Cosh[Pair]},
		{"Tanh", Tanh[Pair]},
		{"Asinh", Asinh[Pair]},
		{"Acosh", Acosh[Pair]},
		{"Atanh", Atanh[Pair]},
	}
}

// TestConjugateSymmetry checks f(conj z) == conj(f(z)) bit for bit on the
// full special-value grid, for every unary kernel. The sign bits of zero,
// infinite and NaN components all participate, so this pins down the
// deterministic sign choices in the special-case tables.
func TestConjugateSymmetry(t *testing.T) {
	for _, k := range unaryKernels() {
		t.Run(k.name, func(t *testing.T) {
			for _, re := range gridValues() {
				for _, im := range gridValues() {
					plain := k.fn(re, im, PairOf)
					conjed := k.fn(re, -im, PairOf)
					want := Pair{Re: plain.Re, Im: -plain.Im}
					if !samePair(conjed, want) {
						t.Errorf("f(%v, %v) = (%v, %v); conj(f(%v, %v)) = (%v, %v)",
							re, -im, conjed.Re, conjed.Im, re, im, want.Re, want.Im)
					}
				}
			}
		})
	}
}

// TestOddEvenSymmetry checks f(-z) == -f(z) for the odd kernels and
// f(-z) == f(z) for the even ones, again on the full grid.
func TestOddEvenSymmetry(t *testing.T) {
	odd := map[string]bool{
		"Sin": true, "Tan": true, "Asin": true, "Atan": true,
		"Sinh": true, "Tanh": true, "Asinh": true, "Atanh": true,
	}
	even := map[string]bool{"Cos": true, "Cosh": true}
	for _, k := range unaryKernels() {
		if !odd[k.name] && !even[k.name] {
			continue
		}
		t.Run(k.name, func(t *testing.T) {
			for _, re := range gridValues() {
				for _, im := range gridValues() {
					neg := k.fn(-re, -im, PairOf)
					want := k.fn(re, im, PairOf)
					if odd[k.name] {
						want = Pair{Re: -want.Re, Im: -want.Im}
					}
					if !samePair(neg, want) {
						t.Errorf("f(%v, %v) = (%v, %v), want (%v, %v)",
							-re, -im, neg.Re, neg.Im, want.Re, want.Im)
					}
				}
			}
		})
	}
}

// TestInfinityClassification: an input with an infinite component must map
// to the result its table specifies, never to a spurious (NaN, NaN) from an
// Inf - Inf intermediate. The only legitimate (NaN, NaN) rows are the ones
// where the infinite component is an angle: an infinite real part for the
// circular functions, an infinite imaginary part for Exp and the
// hyperbolics.
func TestInfinityClassification(t *testing.T) {
	inf := stdmath.Inf(1)
	angularRe := map[string]bool{"Sin": true, "Cos": true, "Tan": true}
	angularIm := map[string]bool{
		"Exp": true, "Sinh": true, "Cosh": true, "Tanh": true,
	}
	for _, k := range unaryKernels() {
		t.Run(k.name, func(t *testing.T) {
			if !angularRe[k.name] {
				got := k.fn(inf, 1, PairOf)
				if stdmath.IsNaN(got.Re) && stdmath.IsNaN(got.Im) {
					t.Errorf("f(+Inf, 1) = (NaN, NaN)")
				}
			}
			if !angularIm[k.name] {
				got := k.fn(1, inf, PairOf)
				if stdmath.IsNaN(got.Re) && stdmath.IsNaN(got.Im) {
					t.Errorf("f(1, +Inf) = (NaN, NaN)")
				}
			}
		})
	}
}
