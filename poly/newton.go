package poly

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

const defaultGradientThreshold = 1e-9

// Newton solves the weighted problem as a generic nonlinear minimisation
// of the chi-squared, starting from the initial guess of the problem.
// The Hessian is the Gauss-Newton approximation 2JᵀJ, which the optimizer
// shifts towards the identity whenever it is not positive definite.
//
// When there are at least as many points as parameters the search runs on
// q = Rp, where J = QR, so that the columns of the jacobian are orthonormal
// however far the x values are from the origin.
type Newton struct {
	// MaxIterations bounds the major iterations, 0 means no limit.
	MaxIterations int
	// GradientThreshold stops the search once the gradient norm falls below it.
	// Defaults to 1e-9 scaled by the norm of the weighted observations.
	GradientThreshold float64
}

func (Newton) Name() string {
	return SolverNewton
}

// Solve fits the parameters of the problem.
// A search that stops without converging returns ErrNotConverged.
func (s Newton) Solve(p Problem) ([]float64, error) {
	p.check()

	y := make([]float64, len(p.Y))
	floats.DivTo(y, p.Y, p.Sigma)

	rows, cols := len(p.X), len(p.Basis)

	// the jacobian of the weighted residuals
	j := mat.NewDense(rows, cols, nil)
	for i, row := range p.design() {
		j.SetRow(i, row)
	}
	init := make([]float64, cols)
	copy(init, p.Initial)

	var r mat.Matrix
	if rows >= cols {
		qr := new(mat.QR)
		qr.Factorize(j)
		var q, rr mat.Dense
		qr.QTo(&q)
		qr.RTo(&rr)
		r = rr.Slice(0, cols, 0, cols)
		j = mat.DenseCopyOf(q.Slice(0, rows, 0, cols))
		q0 := mat.NewVecDense(cols, init)
		q0.MulVec(r, mat.NewVecDense(cols, p.Initial))
	}

	residuals := func(params []float64) []float64 {
		rr := make([]float64, rows)
		for i := range rr {
			rr[i] = floats.Dot(j.RawRowView(i), params) - y[i]
		}
		return rr
	}

	hess := mat.NewSymDense(cols, nil)
	hess.SymOuterK(2, j.T())

	problem := optimize.Problem{
		Func: func(params []float64) float64 {
			rr := residuals(params)
			return floats.Dot(rr, rr)
		},
		Grad: func(grad, params []float64) {
			for k := range grad {
				grad[k] = 0
			}
			for i, res := range residuals(params) {
				floats.AddScaled(grad, 2*res, j.RawRowView(i))
			}
		},
		Hess: func(h *mat.SymDense, _ []float64) {
			h.CopySym(hess)
		},
	}

	settings := &optimize.Settings{
		MajorIterations:   s.MaxIterations,
		GradientThreshold: s.GradientThreshold,
	}
	if settings.GradientThreshold == 0 {
		settings.GradientThreshold = defaultGradientThreshold * math.Max(1, floats.Norm(y, 2))
	}

	result, err := optimize.Minimize(problem, init, settings, &optimize.Newton{})
	if err != nil {
		return nil, err
	}
	if !converged(result.Status) {
		return nil, fmt.Errorf("%w: %s after %d iterations", ErrNotConverged, result.Status, result.MajorIterations)
	}

	if r == nil {
		cc := make([]float64, cols)
		copy(cc, result.X)
		return cc, nil
	}

	var c mat.VecDense
	err = c.SolveVec(r, mat.NewVecDense(cols, result.X))
	if err != nil {
		return nil, err
	}
	return mat.Col(nil, 0, &c), nil
}

// converged reports whether the optimizer stopped on a convergence criterion
// rather than on a limit.
func converged(status optimize.Status) bool {
	switch status {
	case optimize.Success,
		optimize.GradientThreshold,
		optimize.FunctionThreshold,
		optimize.FunctionConvergence,
		optimize.MethodConverge:
		return true
	}
	return false
}
