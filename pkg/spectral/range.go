package spectral

import (
	"errors"
	"fmt"
)

// ErrEmptyRange is returned when no row of a table has a response above
// the requested threshold.
var ErrEmptyRange = errors.New("no table row exceeds the response threshold")

// Range is a wavelength interval whose endpoints are table rows with
// response above the extraction threshold. Start == End when exactly one
// row qualifies.
type Range struct {
	Start float64
	End   float64
}

// Width returns the extent of the range in the table's wavelength unit.
func (r Range) Width() float64 {
	return r.End - r.Start
}

// ExtractRange scans the table for the first and last wavelength whose
// response strictly exceeds threshold. The mode names what the threshold
// is compared against (effective area or transmission); the comparison
// is identical in both modes. Response curves rise and fall through a
// bandpass, so the scan is linear rather than a binary search.
func (t *Table) ExtractRange(threshold float64, mode Mode) (Range, error) {
	first := -1
	for i := 0; i < t.Len(); i++ {
		if t.Responses[i] > threshold {
			first = i
			break
		}
	}
	if first < 0 {
		return Range{}, fmt.Errorf("%s threshold %g: %w", mode, threshold, ErrEmptyRange)
	}

	last := first
	for i := t.Len() - 1; i > first; i-- {
		if t.Responses[i] > threshold {
			last = i
			break
		}
	}

	return Range{Start: t.Wavelengths[first], End: t.Wavelengths[last]}, nil
}
