// Package blackbody evaluates the Planck blackbody law over wavelength
// grids expressed in Angstroms.
package blackbody

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CODATA 2018 values, SI units.
const (
	planckConstant = 6.62607015e-34 // J·s
	lightSpeed     = 2.99792458e8   // m/s
	boltzmann      = 1.380649e-23   // J/K

	metersPerAngstrom = 1e-10
)

// Planck returns the spectral radiance per unit wavelength
// (W·sr⁻¹·m⁻³) of a blackbody at the given temperature (Kelvin),
// evaluated at the given wavelength (Angstroms).
//
// B(λ,T) = 2hc²/λ⁵ · 1/(exp(hc/λkT) − 1)
func Planck(wavelength, temperature float64) float64 {
	lm := wavelength * metersPerAngstrom
	numerator := 2 * planckConstant * lightSpeed * lightSpeed / math.Pow(lm, 5)
	exponent := planckConstant * lightSpeed / (lm * boltzmann * temperature)
	return numerator / (math.Exp(exponent) - 1)
}

// Evaluate computes the Planck radiance at temperature for every
// wavelength in the grid. The result has the same length and order as
// the input.
func Evaluate(wavelengths []float64, temperature float64) []float64 {
	radiances := make([]float64, len(wavelengths))
	for i, w := range wavelengths {
		radiances[i] = Planck(w, temperature)
	}
	return radiances
}

// Grid builds a fixed-step wavelength grid over [start, end]. The grid
// begins at start and contains floor((end-start)/step)+1 samples, so
// when the interval is not a whole number of steps the last sample
// falls short of end rather than overshooting it.
func Grid(start, end, step float64) []float64 {
	if end < start || step <= 0 {
		return nil
	}
	n := int(math.Floor((end-start)/step)) + 1
	if n == 1 {
		return []float64{start}
	}
	grid := make([]float64, n)
	floats.Span(grid, start, start+float64(n-1)*step)
	return grid
}
