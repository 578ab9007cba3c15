package numeric

import (
	"errors"
	"math"
	"testing"
)

func TestIntegrateConstant(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
		want float64
	}{
		{
			name: "unit function over four points",
			xs:   []float64{0, 1, 2, 3},
			ys:   []float64{1, 1, 1, 1},
			want: 3.0,
		},
		{
			name: "constant over uneven spacing",
			xs:   []float64{2, 2.5, 4, 10},
			ys:   []float64{7, 7, 7, 7},
			want: 7 * 8.0,
		},
		{
			name: "two points",
			xs:   []float64{1400, 10000},
			ys:   []float64{0.5, 0.5},
			want: 0.5 * 8600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Integrate(tt.xs, tt.ys)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9*math.Abs(tt.want) {
				t.Errorf("Integrate = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestIntegrateScaleInvariance(t *testing.T) {
	xs := []float64{0, 0.5, 1.5, 2, 3.25}
	ys := []float64{1, 4, 9, 16, 25}

	base, err := Integrate(xs, ys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, k := range []float64{2, 0.5, -3, 1e6} {
		scaled := make([]float64, len(ys))
		for i, y := range ys {
			scaled[i] = k * y
		}
		got, err := Integrate(xs, scaled)
		if err != nil {
			t.Fatalf("unexpected error for k=%g: %v", k, err)
		}
		want := k * base
		if math.Abs(got-want) > 1e-9*math.Abs(want) {
			t.Errorf("k=%g: Integrate = %g, want %g", k, got, want)
		}
	}
}

func TestIntegrateErrors(t *testing.T) {
	tests := []struct {
		name             string
		xs               []float64
		ys               []float64
		wantInsufficient bool
	}{
		{
			name:             "single sample",
			xs:               []float64{5},
			ys:               []float64{1},
			wantInsufficient: true,
		},
		{
			name:             "no samples",
			xs:               nil,
			ys:               nil,
			wantInsufficient: true,
		},
		{
			name:             "length mismatch",
			xs:               []float64{0, 1, 2},
			ys:               []float64{1, 1},
			wantInsufficient: true,
		},
		{
			name: "duplicate abscissa",
			xs:   []float64{0, 1, 1, 2},
			ys:   []float64{1, 1, 1, 1},
		},
		{
			name: "decreasing abscissae",
			xs:   []float64{3, 2, 1},
			ys:   []float64{1, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Integrate(tt.xs, tt.ys)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantInsufficient && !errors.Is(err, ErrInsufficientSamples) {
				t.Errorf("expected ErrInsufficientSamples, got %v", err)
			}
		})
	}
}
