// Package numeric wraps gonum's quadrature routines with the input
// validation the callers in this repository rely on.
package numeric

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/integrate"
)

// ErrInsufficientSamples is returned when fewer than two samples are
// available to integrate, including the degenerate zero-width range
// produced when a single table row crosses the extraction threshold.
var ErrInsufficientSamples = errors.New("need at least two samples to integrate")

// Integrate computes the definite integral of the sampled function
// (xs[i], ys[i]) with the trapezoidal rule. xs must be strictly
// increasing and the same length as ys.
func Integrate(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("sample length mismatch: %d abscissae, %d ordinates: %w",
			len(xs), len(ys), ErrInsufficientSamples)
	}
	if len(xs) < 2 {
		return 0, fmt.Errorf("%d samples: %w", len(xs), ErrInsufficientSamples)
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return 0, fmt.Errorf("abscissae not strictly increasing at index %d (%g after %g)",
				i, xs[i], xs[i-1])
		}
	}
	return integrate.Trapezoidal(xs, ys), nil
}
