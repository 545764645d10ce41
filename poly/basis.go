// Package poly fits polynomials to data with weighted least squares.
package poly

import "fmt"

// BasisFunc is a single term of a linear model.
type BasisFunc func(x float64) float64

// Basis is an ordered set of basis functions.
// The parameter at index i scales the function at index i.
type Basis []BasisFunc

// Monomial returns the basis function x -> x^i.
func Monomial(i int) BasisFunc {
	return func(x float64) float64 {
		return power(x, i)
	}
}

// NewBasis creates the monomial basis for a polynomial of the given degree
// together with the initial guess for its parameters.
func NewBasis(degree int) (Basis, []float64) {
	basis := make(Basis, degree+1)
	guess := make([]float64, degree+1)
	for i := range basis {
		basis[i] = Monomial(i)
		guess[i] = 1.0
	}
	return basis, guess
}

// Eval evaluates the composite model at x for the given parameters.
func (b Basis) Eval(x float64, params []float64) float64 {
	if len(params) != len(b) {
		panic(fmt.Sprintf("inconsistent dimensions %d vs %d", len(params), len(b)))
	}
	var sum float64
	for i, f := range b {
		sum += params[i] * f(x)
	}
	return sum
}

// power computes x^n with the same sequence of multiplications as the
// accumulation in Polynomial.Eval.
func power(x float64, n int) float64 {
	p := 1.
	for j := 0; j < n; j++ {
		p *= x
	}
	return p
}
