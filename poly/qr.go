package poly

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// QR solves the weighted problem as a linear least-squares system
// through the QR factorisation of the design matrix.
type QR struct{}

func (QR) Name() string {
	return SolverQR
}

// Solve fits the parameters of the problem.
// The initial guess is not needed for a linear system and is ignored.
func (QR) Solve(p Problem) ([]float64, error) {
	p.check()

	rows, cols := len(p.X), len(p.Basis)
	if rows < cols {
		return nil, fmt.Errorf("%w: %d points for %d parameters", ErrUnderdetermined, rows, cols)
	}

	a := mat.NewDense(rows, cols, nil)
	for i, row := range p.design() {
		a.SetRow(i, row)
	}
	w := make([]float64, rows)
	floats.DivTo(w, p.Y, p.Sigma)
	b := mat.NewDense(rows, 1, w)
	c := mat.NewDense(cols, 1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)

	err := qr.SolveTo(c, false, b)
	if err != nil {
		return nil, err
	}

	return mat.Col(nil, 0, c), nil
}
