package cartesian

import (
	"fmt"
	stdmath "math"
)

// NthRoot returns the n complex n-th roots of z in counterclockwise order,
// starting from the principal root (the one whose phase is arg(z)/n). The
// degree must be positive. A NaN input has n NaN roots; an infinite input
// has n infinite roots.
func (z Complex) NthRoot(n int) ([]Complex, error) {
	if n <= 0 {
		return nil, fmt.Errorf("cartesian: root degree must be positive, got %d", n)
	}
	roots := make([]Complex, n)
	if z.IsNaN() {
		for k := range roots {
			roots[k] = NaN()
		}
		return roots, nil
	}
	rho := stdmath.Pow(z.Abs(), 1/float64(n))
	base := z.Arg() / float64(n)
	slice := 2 * stdmath.Pi / float64(n)
	for k := range roots {
		sin, cos := stdmath.Sincos(base + float64(k)*slice)
		roots[k] = New(rho*cos, rho*sin)
	}
	return roots, nil
}
