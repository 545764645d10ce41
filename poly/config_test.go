package poly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {

	type test struct {
		cfg Config
		err error
	}

	tests := map[string]test{
		"default": {
			cfg: DefaultConfig(),
		},
		"newton-sample": {
			cfg: Config{Solver: SolverNewton, Sigma: SigmaSample, MaxIterations: 100, GradientThreshold: 1e-6},
		},
		"unknown-solver": {
			cfg: Config{Solver: "lm", Sigma: SigmaPopulation},
			err: ErrUnknownSolver,
		},
		"unknown-sigma": {
			cfg: Config{Solver: SolverQR, Sigma: "relative"},
			err: ErrInvalidConfig,
		},
		"negative-iterations": {
			cfg: Config{Solver: SolverNewton, Sigma: SigmaPopulation, MaxIterations: -1},
			err: ErrInvalidConfig,
		},
		"nan-threshold": {
			cfg: Config{Solver: SolverNewton, Sigma: SigmaPopulation, GradientThreshold: math.NaN()},
			err: ErrInvalidConfig,
		},
		"negative-threshold": {
			cfg: Config{Solver: SolverNewton, Sigma: SigmaPopulation, GradientThreshold: -1},
			err: ErrInvalidConfig,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
			_, err = NewFitter(tt.cfg)
			assert.ErrorIs(t, err, tt.err)
		})
	}

}

func TestConfig_Defaults(t *testing.T) {

	assert.Equal(t, DefaultConfig(), Config{}.withDefaults())
	assert.Equal(t, SolverNewton, Config{Solver: SolverNewton}.withDefaults().Solver)

}
