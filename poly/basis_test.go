package poly

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBasis(t *testing.T) {

	for degree := 0; degree < 8; degree++ {
		t.Run(fmt.Sprintf("%d", degree), func(t *testing.T) {
			basis, guess := NewBasis(degree)
			assert.Equal(t, degree+1, len(basis))
			assert.Equal(t, degree+1, len(guess))
			for i := range basis {
				assert.Equal(t, 1.0, guess[i])
				assert.Equal(t, math.Pow(3, float64(i)), basis[i](3))
			}
		})
	}

}

func TestMonomial(t *testing.T) {

	type test struct {
		power  int
		x      float64
		output float64
	}

	tests := map[string]test{
		"zero-power-of-zero": {power: 0, x: 0, output: 1},
		"zero-power":         {power: 0, x: -5, output: 1},
		"identity":           {power: 1, x: -5, output: -5},
		"square":             {power: 2, x: -3, output: 9},
		"cube":               {power: 3, x: -2, output: -8},
		"fraction":           {power: 2, x: 0.5, output: 0.25},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.output, Monomial(tt.power)(tt.x))
		})
	}

}

func TestBasis_Eval(t *testing.T) {

	basis, _ := NewBasis(2)
	// 1 + 2x + 3x^2
	params := []float64{1, 2, 3}

	assert.Equal(t, 1.0, basis.Eval(0, params))
	assert.Equal(t, 6.0, basis.Eval(1, params))
	assert.Equal(t, 17.0, basis.Eval(2, params))
	assert.Equal(t, 2.0, basis.Eval(-1, params))

	// the composite model and the polynomial evaluate identically
	p := NewPolynomial(params...)
	for _, x := range []float64{-2.5, -0.1, 0, 0.3, 1.7, 12} {
		assert.Equal(t, p.Eval(x), basis.Eval(x, params))
	}

}

func TestBasis_EvalInconsistent(t *testing.T) {

	basis, _ := NewBasis(2)
	assert.Panics(t, func() {
		basis.Eval(1, []float64{1, 2})
	})

}
