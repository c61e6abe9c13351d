package conv

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-12

func TestConvolveSame(t *testing.T) {
	third := 1.0 / 3.0

	tests := []struct {
		name     string
		signal   []float64
		kernel   []float64
		expected []float64
	}{
		{
			name:     "identity kernel",
			signal:   []float64{1, 2, 3, 4, 5},
			kernel:   []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:   "box kernel drops edge taps",
			signal: []float64{1, 1, 1, 1, 1},
			kernel: []float64{third, third, third},
			// Edges average over two in-range taps only, not three.
			expected: []float64{2 * third, 1, 1, 1, 2 * third},
		},
		{
			name:     "two tap kernel",
			signal:   []float64{1, 0, 0, 0},
			kernel:   []float64{0.5, 0.5},
			expected: []float64{0.5, 0.5, 0, 0},
		},
		{
			// No kernel flip: taps are applied in correlation order.
			name:     "asymmetric kernel alignment",
			signal:   []float64{0, 0, 1, 0, 0},
			kernel:   []float64{1, 2, 3},
			expected: []float64{0, 3, 2, 1, 0},
		},
		{
			name:     "kernel longer than signal",
			signal:   []float64{1, 1},
			kernel:   []float64{0.25, 0.25, 0.25, 0.25},
			expected: []float64{0.5, 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convolve(tt.signal, tt.kernel, ModeSame)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got) != len(tt.expected) {
				t.Fatalf("length mismatch: got %d, expected %d", len(got), len(tt.expected))
			}

			for i := range tt.expected {
				if math.Abs(got[i]-tt.expected[i]) > tolerance {
					t.Errorf("out[%d] = %v, expected %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestConvolveUnsupportedMode(t *testing.T) {
	for _, mode := range []Mode{ModeFull, ModeValid, Mode(42)} {
		_, err := Convolve([]float64{1, 2}, []float64{1}, mode)
		if !errors.Is(err, ErrUnsupportedMode) {
			t.Errorf("mode %d: expected ErrUnsupportedMode, got %v", mode, err)
		}
	}
}

func TestConvolveEmptyInputs(t *testing.T) {
	if _, err := Convolve(nil, []float64{1}, ModeSame); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	if _, err := Convolve([]float64{1}, nil, ModeSame); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}
