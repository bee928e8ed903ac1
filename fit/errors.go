// SPDX-License-Identifier: MIT

package fit

import (
	"errors"
	"fmt"
)

var (
	// ErrConvergence signals that the constrained optimizer failed to reach
	// a feasible/optimal point. The unconstrained estimate is never
	// substituted silently.
	ErrConvergence = errors.New("fit: solver failed to converge")

	// ErrNoConfigurations signals an empty configuration set.
	ErrNoConfigurations = errors.New("fit: no configurations to fit")

	// ErrSingularDesign signals a design matrix the solver cannot invert
	// (insufficient informational completeness for the requested unknown).
	ErrSingularDesign = errors.New("fit: design matrix is singular")
)

// ConvergenceError carries the optimizer's terminal status and diagnostics.
// errors.Is(err, ErrConvergence) matches it.
type ConvergenceError struct {
	Status     string
	Iterations int
	Residual   float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("fit: solver failed to converge (status %s after %d iterations, residual %.3g)",
		e.Status, e.Iterations, e.Residual)
}

// Is reports that a ConvergenceError matches ErrConvergence.
func (e *ConvergenceError) Is(target error) bool {
	return target == ErrConvergence
}
