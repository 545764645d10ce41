package poly

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

const (
	SolverQR     = "qr"
	SolverNewton = "newton"

	// SigmaPopulation divides the squared deviations by n.
	SigmaPopulation = "population"
	// SigmaSample divides the squared deviations by n-1.
	SigmaSample = "sample"
)

// Config defines the fitter parameters.
type Config struct {
	Solver            string  `json:"solver"`
	Sigma             string  `json:"sigma"`
	MaxIterations     int     `json:"max_iterations"`
	GradientThreshold float64 `json:"gradient_threshold"`
}

// DefaultConfig returns a config using the QR solver and the population standard deviation.
func DefaultConfig() Config {
	return Config{
		Solver: SolverQR,
		Sigma:  SigmaPopulation,
	}
}

// withDefaults fills in the unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Solver == "" {
		c.Solver = d.Solver
	}
	if c.Sigma == "" {
		c.Sigma = d.Sigma
	}
	return c
}

// Validate checks the config values.
func (c Config) Validate() error {
	switch c.Solver {
	case SolverQR, SolverNewton:
	default:
		return fmt.Errorf("%w: '%s'", ErrUnknownSolver, c.Solver)
	}
	switch c.Sigma {
	case SigmaPopulation, SigmaSample:
	default:
		return fmt.Errorf("%w: unknown sigma mode '%s'", ErrInvalidConfig, c.Sigma)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: negative max iterations %d", ErrInvalidConfig, c.MaxIterations)
	}
	if !(c.GradientThreshold >= 0) {
		return fmt.Errorf("%w: negative gradient threshold %f", ErrInvalidConfig, c.GradientThreshold)
	}
	return nil
}

// sigma returns the uniform weight for the given observations.
func (c Config) sigma(y []float64) float64 {
	if c.Sigma == SigmaSample {
		return stat.StdDev(y, nil)
	}
	return stat.PopStdDev(y, nil)
}
