package poly

import "fmt"

// Problem is a weighted least-squares problem for a linear combination of basis functions.
// Sigma holds the absolute uncertainty of each observation.
type Problem struct {
	Basis   Basis
	X       []float64
	Y       []float64
	Sigma   []float64
	Initial []float64
}

// Solver finds the parameters that minimise the weighted squared residuals of a Problem.
type Solver interface {
	Name() string
	Solve(p Problem) ([]float64, error)
}

// NewSolver creates the solver registered under the given name.
func NewSolver(name string, cfg Config) (Solver, error) {
	switch name {
	case SolverQR:
		return QR{}, nil
	case SolverNewton:
		return Newton{
			MaxIterations:     cfg.MaxIterations,
			GradientThreshold: cfg.GradientThreshold,
		}, nil
	}
	return nil, fmt.Errorf("%w: '%s'", ErrUnknownSolver, name)
}

// check panics if the problem dimensions are not consistent.
func (p Problem) check() {
	if len(p.Y) != len(p.X) || len(p.Sigma) != len(p.X) {
		panic(fmt.Sprintf("inconsistent observations x:%d y:%d sigma:%d", len(p.X), len(p.Y), len(p.Sigma)))
	}
	if len(p.Initial) != len(p.Basis) {
		panic(fmt.Sprintf("inconsistent dimensions %d vs %d", len(p.Initial), len(p.Basis)))
	}
}

// design evaluates every basis function at every x, scaled by the inverse sigma of the row.
func (p Problem) design() [][]float64 {
	a := make([][]float64, len(p.X))
	for i, x := range p.X {
		a[i] = make([]float64, len(p.Basis))
		for j, f := range p.Basis {
			a[i][j] = f(x) / p.Sigma[i]
		}
	}
	return a
}
