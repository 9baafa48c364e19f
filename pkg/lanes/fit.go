package lanes

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Polynomial is a fitted quadratic lane curve x = A*y^2 + B*y + C.
// The curve is parameterized on y because lane lines in a bird's-eye
// view are near-vertical, making x a poor independent variable.
type Polynomial struct {
	A float64
	B float64
	C float64
}

// Eval evaluates the curve at the given y, returning the x position.
func (p Polynomial) Eval(y float64) float64 {
	return p.A*y*y + p.B*y + p.C
}

// fitQuadratic performs a least-squares degree-2 fit of x as a function
// of y over the accumulated lane pixels. At least three distinct y
// values are required for the system to have full rank.
func fitQuadratic(xs, ys []int) (*Polynomial, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("coordinate arrays differ in length: %d vs %d", len(xs), len(ys))
	}
	if distinctValues(ys) < 3 {
		return nil, fmt.Errorf("need at least 3 distinct y values, got %d", distinctValues(ys))
	}

	n := len(xs)

	// Build the Vandermonde system [y^2 y 1] * [a b c]' = x
	a := mat.NewDense(n, 3, nil)
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		y := float64(ys[i])
		a.Set(i, 0, y*y)
		a.Set(i, 1, y)
		a.Set(i, 2, 1)
		b.SetVec(i, float64(xs[i]))
	}

	// QR decomposition solves the overdetermined system in the
	// least-squares sense
	var qr mat.QR
	qr.Factorize(a)

	coeffs := mat.NewDense(3, 1, nil)
	if err := qr.SolveTo(coeffs, false, b); err != nil {
		return nil, fmt.Errorf("quadratic solve failed: %w", err)
	}

	fit := &Polynomial{
		A: coeffs.At(0, 0),
		B: coeffs.At(1, 0),
		C: coeffs.At(2, 0),
	}
	if math.IsNaN(fit.A) || math.IsNaN(fit.B) || math.IsNaN(fit.C) {
		return nil, fmt.Errorf("quadratic solve produced NaN coefficients")
	}

	return fit, nil
}

// distinctValues counts the unique entries of vs.
func distinctValues(vs []int) int {
	seen := make(map[int]struct{}, len(vs))
	for _, v := range vs {
		seen[v] = struct{}{}
	}
	return len(seen)
}
