package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolynomial_Eval(t *testing.T) {

	type test struct {
		coefficients []float64
		x            float64
		output       float64
	}

	tests := map[string]test{
		"empty": {
			x:      3,
			output: 0,
		},
		"constant": {
			coefficients: []float64{4},
			x:            100,
			output:       4,
		},
		"line": {
			coefficients: []float64{1, 2},
			x:            3,
			output:       7,
		},
		"quadratic": {
			coefficients: []float64{2, -1, 0.5},
			x:            4,
			output:       6,
		},
		"cubic-negative": {
			coefficients: []float64{0, 0, 0, 1},
			x:            -2,
			output:       -8,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPolynomial(tt.coefficients...)
			assert.Equal(t, tt.output, p.Eval(tt.x))
			assert.Equal(t, len(tt.coefficients)-1, p.Degree())
		})
	}

}

func TestPolynomial_Ownership(t *testing.T) {

	cc := []float64{1, 2, 3}
	p := NewPolynomial(cc...)

	cc[0] = 100
	assert.Equal(t, 1.0, p.Eval(0))

	out := p.Coefficients()
	out[0] = 100
	assert.Equal(t, 1.0, p.Eval(0))
	assert.Equal(t, []float64{1, 2, 3}, p.Coefficients())

}

func TestPolynomial_String(t *testing.T) {

	type test struct {
		coefficients []float64
		output       string
	}

	tests := map[string]test{
		"empty":     {output: "0"},
		"zeros":     {coefficients: []float64{0, 0}, output: "0"},
		"constant":  {coefficients: []float64{-4}, output: "-4"},
		"line":      {coefficients: []float64{1, 2}, output: "1 + 2x"},
		"quadratic": {coefficients: []float64{2, -1, 0.5}, output: "2 - 1x + 0.5x^2"},
		"sparse":    {coefficients: []float64{0, 0, 0, -3}, output: "-3x^3"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.output, NewPolynomial(tt.coefficients...).String())
		})
	}

}
