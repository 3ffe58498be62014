package cartesian

import "github.com/ajroetker/go-cartesian/cartesian/math"

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return New(z.re+w.re, z.im+w.im)
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return New(z.re-w.re, z.im-w.im)
}

// Mul returns z * w. An infinite operand produces a correctly signed
// infinity even when the textbook partial products degenerate to NaN; only
// genuinely undefined combinations (infinity times zero, NaN operands)
// return NaN.
func (z Complex) Mul(w Complex) Complex {
	return math.Multiply(z.re, z.im, w.re, w.im, New)
}

// Div returns z / w. The denominator is exponent-scaled so finite quotients
// survive components near the top and bottom of the float64 range; a
// nonzero value divided by zero is a signed infinity, a finite value
// divided by an infinity is a signed zero, and 0/0 and Inf/Inf are NaN.
func (z Complex) Div(w Complex) Complex {
	return math.Divide(z.re, z.im, w.re, w.im, New)
}

// AddReal returns z + x, leaving the imaginary component untouched. Unlike
// Add(New(x, 0)) this cannot flip the sign of a negative imaginary zero,
// since no imaginary addition happens at all.
func (z Complex) AddReal(x float64) Complex {
	return New(z.re+x, z.im)
}

// SubReal returns z - x, leaving the imaginary component untouched.
func (z Complex) SubReal(x float64) Complex {
	return New(z.re-x, z.im)
}

// MulReal returns z scaled by x. Both components are multiplied directly,
// so zero signs follow the sign rule of real multiplication rather than
// picking up cross terms from Mul(New(x, 0)).
func (z Complex) MulReal(x float64) Complex {
	return New(z.re*x, z.im*x)
}

// DivReal returns z divided by the real scalar x componentwise.
func (z Complex) DivReal(x float64) Complex {
	return New(z.re/x, z.im/x)
}
