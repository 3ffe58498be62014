package cartesian

import (
	stdmath "math"

	"github.com/ajroetker/go-cartesian/cartesian/math"
)

// The elementary functions delegate to the cartesian/math kernels with New
// as the sink, so every special-value row and branch-cut choice documented
// there holds verbatim for these methods.

// Sqrt returns the principal square root of z; the result real part is
// non-negative and the branch cut runs along the negative real axis.
func (z Complex) Sqrt() Complex { return math.Sqrt(z.re, z.im, New) }

// Exp returns e**z.
func (z Complex) Exp() Complex { return math.Exp(z.re, z.im, New) }

// Log returns the principal natural logarithm of z.
func (z Complex) Log() Complex { return math.Log(z.re, z.im, New) }

// Log10 returns the principal decimal logarithm of z.
func (z Complex) Log10() Complex { return math.Log10(z.re, z.im, New) }

// Sin returns the sine of z.
func (z Complex) Sin() Complex { return math.Sin(z.re, z.im, New) }

// Cos returns the cosine of z.
func (z Complex) Cos() Complex { return math.Cos(z.re, z.im, New) }

// Tan returns the tangent of z.
func (z Complex) Tan() Complex { return math.Tan(z.re, z.im, New) }

// Asin returns the principal arc sine of z.
func (z Complex) Asin() Complex { return math.Asin(z.re, z.im, New) }

// Acos returns the principal arc cosine of z.
func (z Complex) Acos() Complex { return math.Acos(z.re, z.im, New) }

// Atan returns the principal arc tangent of z.
func (z Complex) Atan() Complex { return math.Atan(z.re, z.im, New) }

// Sinh returns the hyperbolic sine of z.
func (z Complex) Sinh() Complex { return math.Sinh(z.re, z.im, New) }

// Cosh returns the hyperbolic cosine of z.
func (z Complex) Cosh() Complex { return math.Cosh(z.re, z.im, New) }

// Tanh returns the hyperbolic tangent of z.
func (z Complex) Tanh() Complex { return math.Tanh(z.re, z.im, New) }

// Asinh returns the principal inverse hyperbolic sine of z.
func (z Complex) Asinh() Complex { return math.Asinh(z.re, z.im, New) }

// Acosh returns the principal inverse hyperbolic cosine of z; the result
// real part is non-negative.
func (z Complex) Acosh() Complex { return math.Acosh(z.re, z.im, New) }

// Atanh returns the principal inverse hyperbolic tangent of z.
func (z Complex) Atanh() Complex { return math.Atanh(z.re, z.im, New) }

// Pow returns z**w, computed as exp(w * log z) through polar form. A zero
// base follows the real math.Pow conventions:
//
//	Pow(0, w) = 1 for w with zero real part
//	Pow(0, w) = (+Inf, +0) for real w with negative real part
//	Pow(0, w) = Inf() for other w with negative real part
//	Pow(0, w) = 0 for w with positive real part
//	Pow(0, w) = NaN() for w with NaN real part
func (z Complex) Pow(w Complex) Complex {
	if z.re == 0 && z.im == 0 {
		switch {
		case stdmath.IsNaN(w.re):
			return NaN()
		case w.re == 0:
			return New(1, 0)
		case w.re < 0:
			if w.im == 0 {
				return New(stdmath.Inf(1), 0)
			}
			return Inf()
		default:
			return New(0, 0)
		}
	}
	modulus := z.Abs()
	r := stdmath.Pow(modulus, w.re)
	arg := z.Arg()
	theta := w.re * arg
	if w.im != 0 {
		r *= stdmath.Exp(-w.im * arg)
		theta += w.im * stdmath.Log(modulus)
	}
	sin, cos := stdmath.Sincos(theta)
	return New(r*cos, r*sin)
}

// PowReal returns z**x for a real exponent.
func (z Complex) PowReal(x float64) Complex {
	return z.Pow(New(x, 0))
}
