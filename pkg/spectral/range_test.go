package spectral

import (
	"errors"
	"testing"
)

func TestExtractRange(t *testing.T) {
	tests := []struct {
		name      string
		table     Table
		threshold float64
		mode      Mode
		wantStart float64
		wantEnd   float64
		wantErr   error
	}{
		{
			name: "band bracketed by zero response",
			table: Table{
				Wavelengths: []float64{1000, 1010, 1020, 1030, 1040, 1050},
				Responses:   []float64{0, 0, 10, 10, 10, 0},
			},
			threshold: 5,
			mode:      ModeArea,
			wantStart: 1020,
			wantEnd:   1040,
		},
		{
			name: "single row above threshold collapses to a point",
			table: Table{
				Wavelengths: []float64{1000, 1010, 1020},
				Responses:   []float64{0, 8, 0},
			},
			threshold: 5,
			mode:      ModeArea,
			wantStart: 1010,
			wantEnd:   1010,
		},
		{
			name: "threshold equal to response is not a crossing",
			table: Table{
				Wavelengths: []float64{1000, 1010, 1020, 1030},
				Responses:   []float64{5, 5, 6, 5},
			},
			threshold: 5,
			mode:      ModeArea,
			wantStart: 1020,
			wantEnd:   1020,
		},
		{
			name: "dip inside the band is included",
			table: Table{
				Wavelengths: []float64{2000, 2100, 2200, 2300, 2400},
				Responses:   []float64{0.01, 0.2, 0.02, 0.3, 0.01},
			},
			threshold: 0.05,
			mode:      ModeTransmission,
			wantStart: 2100,
			wantEnd:   2300,
		},
		{
			name: "nothing above threshold",
			table: Table{
				Wavelengths: []float64{1000, 1010, 1020},
				Responses:   []float64{1, 2, 3},
			},
			threshold: 5,
			mode:      ModeArea,
			wantErr:   ErrEmptyRange,
		},
		{
			name:      "empty table",
			table:     Table{},
			threshold: 0,
			mode:      ModeTransmission,
			wantErr:   ErrEmptyRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tt.table.ExtractRange(tt.threshold, tt.mode)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Start != tt.wantStart || r.End != tt.wantEnd {
				t.Errorf("got range (%g, %g), want (%g, %g)", r.Start, r.End, tt.wantStart, tt.wantEnd)
			}
			if r.Start > r.End {
				t.Errorf("start %g exceeds end %g", r.Start, r.End)
			}
		})
	}
}

// Both endpoints must be real table rows above the threshold, and the
// rows just outside the range must be at or below it.
func TestExtractRangeEndpoints(t *testing.T) {
	table := Table{
		Wavelengths: []float64{1300, 1350, 1400, 1450, 1500, 1550, 1600},
		Responses:   []float64{2, 4, 7, 9, 6, 3, 1},
	}

	r, err := table.ExtractRange(5, ModeArea)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	startIdx, endIdx := -1, -1
	for i, w := range table.Wavelengths {
		if w == r.Start {
			startIdx = i
		}
		if w == r.End {
			endIdx = i
		}
	}
	if startIdx < 0 || endIdx < 0 {
		t.Fatalf("range (%g, %g) endpoints not present in table", r.Start, r.End)
	}
	if table.Responses[startIdx] <= 5 || table.Responses[endIdx] <= 5 {
		t.Errorf("endpoint responses %g, %g not above threshold",
			table.Responses[startIdx], table.Responses[endIdx])
	}
	if startIdx > 0 && table.Responses[startIdx-1] > 5 {
		t.Errorf("row before start has response %g above threshold", table.Responses[startIdx-1])
	}
	if endIdx < table.Len()-1 && table.Responses[endIdx+1] > 5 {
		t.Errorf("row after end has response %g above threshold", table.Responses[endIdx+1])
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "area", want: ModeArea},
		{in: "transmission", want: ModeTransmission},
		{in: "Area", want: ModeArea},
		{in: "counts", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
