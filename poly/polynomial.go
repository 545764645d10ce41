package poly

import (
	"math"
	"strconv"
	"strings"
)

// Polynomial holds the coefficients of
// c[0] + c[1]x + c[2]x^2 + c[3]x^3 + ...
type Polynomial struct {
	coefficients []float64
}

// NewPolynomial creates a polynomial from its coefficients in ascending power order.
func NewPolynomial(coefficients ...float64) Polynomial {
	cc := make([]float64, len(coefficients))
	copy(cc, coefficients)
	return Polynomial{coefficients: cc}
}

// Eval evaluates the polynomial at x.
func (p Polynomial) Eval(x float64) float64 {
	var sum float64
	for j, pw := 0, 1.; j < len(p.coefficients); j, pw = j+1, pw*x {
		sum += p.coefficients[j] * pw
	}
	return sum
}

// Degree returns the highest power of the polynomial.
// The zero value has degree -1.
func (p Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Coefficients returns a copy of the coefficients.
func (p Polynomial) Coefficients() []float64 {
	cc := make([]float64, len(p.coefficients))
	copy(cc, p.coefficients)
	return cc
}

func (p Polynomial) String() string {
	var sb strings.Builder
	for i, c := range p.coefficients {
		if c == 0 {
			continue
		}
		v := strconv.FormatFloat(math.Abs(c), 'g', -1, 64)
		switch {
		case sb.Len() == 0:
			if math.Signbit(c) {
				sb.WriteString("-")
			}
		case math.Signbit(c):
			sb.WriteString(" - ")
		default:
			sb.WriteString(" + ")
		}
		switch i {
		case 0:
			sb.WriteString(v)
		case 1:
			sb.WriteString(v + "x")
		default:
			sb.WriteString(v + "x^" + strconv.Itoa(i))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}
