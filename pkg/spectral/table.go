// Package spectral loads tabulated filter-response curves and extracts
// threshold-bounded wavelength ranges from them.
package spectral

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Mode describes what the response column of a filter table measures.
type Mode int

const (
	// ModeArea means the response column is an effective area in cm².
	ModeArea Mode = iota
	// ModeTransmission means the response column is a dimensionless
	// transmission fraction in [0,1].
	ModeTransmission
)

func (m Mode) String() string {
	switch m {
	case ModeArea:
		return "area"
	case ModeTransmission:
		return "transmission"
	}
	return "unknown"
}

// ParseMode converts a configuration string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "area":
		return ModeArea, nil
	case "transmission":
		return ModeTransmission, nil
	}
	return 0, fmt.Errorf("unknown response mode %q (use 'area' or 'transmission')", s)
}

// Table is an ordered spectral response curve: wavelengths strictly
// increasing, one response value per wavelength. Immutable once loaded.
type Table struct {
	Wavelengths []float64
	Responses   []float64
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.Wavelengths)
}

// MalformedRowError reports a row that could not be parsed or that violates
// the table's ordering invariant.
type MalformedRowError struct {
	Path   string
	Line   int
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
}

// Load reads a whitespace-delimited two-column filter table from path.
// Each row is "<wavelength> <response>"; blank lines and lines starting
// with '#' are skipped. Wavelengths must be strictly increasing.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening filter table: %w", err)
	}
	defer f.Close()

	t := &Table{}
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, &MalformedRowError{Path: path, Line: line,
				Reason: fmt.Sprintf("expected 2 columns, got %d", len(fields))}
		}

		wavelength, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, &MalformedRowError{Path: path, Line: line,
				Reason: fmt.Sprintf("bad wavelength %q", fields[0])}
		}
		response, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &MalformedRowError{Path: path, Line: line,
				Reason: fmt.Sprintf("bad response %q", fields[1])}
		}

		if n := t.Len(); n > 0 && wavelength <= t.Wavelengths[n-1] {
			return nil, &MalformedRowError{Path: path, Line: line,
				Reason: fmt.Sprintf("wavelength %g not increasing (previous %g)",
					wavelength, t.Wavelengths[n-1])}
		}

		t.Wavelengths = append(t.Wavelengths, wavelength)
		t.Responses = append(t.Responses, response)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading filter table %s: %w", path, err)
	}

	return t, nil
}
