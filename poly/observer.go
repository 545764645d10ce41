package poly

// Outcome classifies the result of a fit.
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeInvalid     Outcome = "invalid"
	OutcomeSolverError Outcome = "solver_error"
)

// Observation describes a single call to Fitter.Fit.
type Observation struct {
	Solver     string
	Degree     int
	Points     int
	ChiSquared float64
	Outcome    Outcome
	Err        error
}

// Observer is notified after every fit.
type Observer interface {
	Observe(o Observation)
}

type voidObserver struct{}

func (voidObserver) Observe(Observation) {}
