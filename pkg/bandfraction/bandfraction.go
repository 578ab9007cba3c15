// Package bandfraction computes the fraction of a blackbody's bolometric
// luminosity that falls within a photometric filter's bandpass.
//
// The bolometric output is approximated through a continuum proxy: the
// blackbody integral over a fixed reference range (typically 1400–10000 Å)
// scaled by an empirical bolometric-to-continuum ratio.
package bandfraction

import (
	"fmt"

	"bandfrac/pkg/blackbody"
	"bandfrac/pkg/numeric"
	"bandfrac/pkg/spectral"
)

// Continuum is the precomputed reference integral a band's energy is
// measured against. Build it once with NewContinuum and pass it to every
// Compute call; the band grids reuse its temperature and step so the two
// integrals are directly comparable.
type Continuum struct {
	Range       spectral.Range
	Temperature float64 // Kelvin
	Step        float64 // grid spacing, Angstroms
	Integral    float64
}

// NewContinuum integrates the Planck curve at temperature over
// [start, end] with the given grid step.
func NewContinuum(start, end, temperature, step float64) (Continuum, error) {
	grid := blackbody.Grid(start, end, step)
	radiances := blackbody.Evaluate(grid, temperature)
	integral, err := numeric.Integrate(grid, radiances)
	if err != nil {
		return Continuum{}, fmt.Errorf("integrating continuum %g-%g: %w", start, end, err)
	}
	return Continuum{
		Range:       spectral.Range{Start: start, End: end},
		Temperature: temperature,
		Step:        step,
		Integral:    integral,
	}, nil
}

// Compute returns the band-to-bolometric fraction for one filter:
// the blackbody energy inside the filter's threshold-bounded wavelength
// range, divided by the continuum integral, scaled by bolToCont (the
// fraction of bolometric energy carried by the continuum).
//
// The range extracted from the table and the fraction are both returned
// so callers can report the band limits alongside the result. Errors
// from range extraction and integration propagate unmodified; a
// zero-width range (single row above threshold) surfaces as
// numeric.ErrInsufficientSamples rather than a meaningless near-zero
// fraction.
func Compute(table *spectral.Table, threshold float64, mode spectral.Mode, cont Continuum, bolToCont float64) (spectral.Range, float64, error) {
	r, err := table.ExtractRange(threshold, mode)
	if err != nil {
		return spectral.Range{}, 0, err
	}

	grid := blackbody.Grid(r.Start, r.End, cont.Step)
	radiances := blackbody.Evaluate(grid, cont.Temperature)
	band, err := numeric.Integrate(grid, radiances)
	if err != nil {
		return r, 0, err
	}

	return r, band / cont.Integral * bolToCont, nil
}
