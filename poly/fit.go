package poly

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

// Result is the outcome of a polynomial fit.
type Result struct {
	ChiSquared   float64
	Coefficients []float64
	Polynomial   Polynomial
	Points       int
}

// Eval evaluates the fitted polynomial at x.
func (r Result) Eval(x float64) float64 {
	return r.Polynomial.Eval(x)
}

// ReducedChiSquared returns the chi-squared per degree of freedom.
// It is NaN when there are no degrees of freedom left.
func (r Result) ReducedChiSquared() float64 {
	dof := r.Points - len(r.Coefficients)
	if dof <= 0 {
		return math.NaN()
	}
	return r.ChiSquared / float64(dof)
}

// Option configures a Fitter.
type Option func(f *Fitter)

// WithSolver overrides the solver selected by the config.
func WithSolver(solver Solver) Option {
	return func(f *Fitter) {
		f.solver = solver
	}
}

// WithObserver registers an observer notified after each fit.
// A nil observer is ignored.
func WithObserver(observer Observer) Option {
	return func(f *Fitter) {
		if observer != nil {
			f.observer = observer
		}
	}
}

// Fitter fits polynomials to data with weighted least squares.
// It holds no state between calls and can be shared.
type Fitter struct {
	config   Config
	solver   Solver
	observer Observer
}

// NewFitter creates a new fitter for the given config.
func NewFitter(cfg Config, opts ...Option) (*Fitter, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Fitter{
		config:   cfg,
		observer: voidObserver{},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.solver == nil {
		solver, err := NewSolver(cfg.Solver, cfg)
		if err != nil {
			return nil, err
		}
		f.solver = solver
	}
	return f, nil
}

// Fit fits the default fitter to the given data.
func Fit(degree int, x, y []float64) (Result, error) {
	f, err := NewFitter(DefaultConfig())
	if err != nil {
		return Result{}, err
	}
	return f.Fit(degree, x, y)
}

// Fit fits a polynomial of the given degree to the points (x[i], y[i]).
// Every point is weighted by the standard deviation of y.
// Errors from the solver are returned as they are.
func (f *Fitter) Fit(degree int, x, y []float64) (Result, error) {
	obs := Observation{
		Solver: f.solver.Name(),
		Degree: degree,
		Points: len(x),
	}

	if err := validate(degree, x, y); err != nil {
		f.fail(obs, OutcomeInvalid, err)
		return Result{}, err
	}

	s := f.config.sigma(y)
	if !(s > 0) || math.IsInf(s, 1) {
		err := fmt.Errorf("%w: got %v", ErrZeroWeight, s)
		f.fail(obs, OutcomeInvalid, err)
		return Result{}, err
	}
	sigma := make([]float64, len(x))
	for i := range sigma {
		sigma[i] = s
	}

	basis, guess := NewBasis(degree)
	params, err := f.solver.Solve(Problem{
		Basis:   basis,
		X:       x,
		Y:       y,
		Sigma:   sigma,
		Initial: guess,
	})
	if err != nil {
		f.fail(obs, OutcomeSolverError, err)
		return Result{}, err
	}
	if len(params) != len(basis) {
		panic(fmt.Sprintf("solver %s returned %d parameters for %d basis functions", obs.Solver, len(params), len(basis)))
	}

	p := NewPolynomial(params...)
	chi2 := ChiSquared(p, x, y, sigma)

	obs.ChiSquared = chi2
	obs.Outcome = OutcomeOK
	f.observer.Observe(obs)

	if e := log.Debug(); e.Enabled() {
		e.Str("solver", obs.Solver).
			Int("degree", degree).
			Int("points", len(x)).
			Float64("chi2", chi2).
			Str("polynomial", p.String()).
			Msg("fitted polynomial")
	}

	return Result{
		ChiSquared:   chi2,
		Coefficients: p.Coefficients(),
		Polynomial:   p,
		Points:       len(x),
	}, nil
}

func (f *Fitter) fail(obs Observation, outcome Outcome, err error) {
	obs.Outcome = outcome
	obs.Err = err
	f.observer.Observe(obs)
	log.Debug().
		Err(err).
		Str("solver", obs.Solver).
		Int("degree", obs.Degree).
		Int("points", obs.Points).
		Msg("could not fit polynomial")
}

// ChiSquared sums the squared residuals of p against the observations,
// each normalised by its sigma.
func ChiSquared(p Polynomial, x, y, sigma []float64) float64 {
	var chi2 float64
	for i := range x {
		r := (p.Eval(x[i]) - y[i]) / sigma[i]
		chi2 += r * r
	}
	return chi2
}

// validate runs before any solver is invoked.
// A degree equal to the number of points is accepted.
func validate(degree int, x, y []float64) error {
	if degree < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDegree, degree)
	}
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) == 0 || degree > len(x) {
		return fmt.Errorf("%w: %d points for degree %d", ErrInsufficientData, len(x), degree)
	}
	return nil
}
