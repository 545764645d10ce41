package poly

import "errors"

var (
	// ErrNegativeDegree is returned for a polynomial degree below zero.
	ErrNegativeDegree = errors.New("degree must not be negative")
	// ErrLengthMismatch is returned when x and y have different lengths.
	ErrLengthMismatch = errors.New("x and y must have the same length")
	// ErrInsufficientData is returned when there are not enough points for the requested degree.
	ErrInsufficientData = errors.New("you must have at least one more data point than your power")
	// ErrZeroWeight is returned when the y values have no spread,
	// which would leave the residuals without a valid weight.
	ErrZeroWeight = errors.New("standard deviation of y must be positive")
	// ErrUnderdetermined is returned by solvers that need at least as many points as parameters.
	ErrUnderdetermined = errors.New("fewer data points than parameters")
	// ErrNotConverged is returned when a solver stops on a limit before converging.
	ErrNotConverged = errors.New("solver did not converge")
	// ErrUnknownSolver is returned for a solver name that is not registered.
	ErrUnknownSolver = errors.New("unknown solver")
	// ErrInvalidConfig is returned for configuration values out of range.
	ErrInvalidConfig = errors.New("invalid config")
)
