package peaks

import (
	"testing"
)

func indicesOf(ps []Peak) []int {
	return Indices(ps)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		env      []float64
		cfg      Config
		expected []int
	}{
		{
			name:     "single impulse",
			env:      []float64{0, 0, 0, 1, 0, 0, 0},
			cfg:      Config{Height: 0.5, Distance: 1, Prominence: 0},
			expected: []int{3},
		},
		{
			name: "equal close peaks keep lower index",
			env:  []float64{0, 1, 0, 1, 0},
			cfg:  Config{Height: 0.5, Distance: 3, Prominence: 0},
			// Stable height sort visits index 1 first; index 3 is within
			// the exclusive distance bound and is suppressed.
			expected: []int{1},
		},
		{
			name:     "taller peak wins regardless of order",
			env:      []float64{0, 0.6, 0, 0.9, 0, 0.5, 0},
			cfg:      Config{Height: 0.1, Distance: 3, Prominence: 0},
			expected: []int{3},
		},
		{
			name:     "exactly distance apart both survive",
			env:      []float64{0, 1, 0, 1, 0},
			cfg:      Config{Height: 0.5, Distance: 2, Prominence: 0},
			expected: []int{1, 3},
		},
		{
			name:     "height filter",
			env:      []float64{0, 0.3, 0, 0.8, 0},
			cfg:      Config{Height: 0.5, Distance: 1, Prominence: 0},
			expected: []int{3},
		},
		{
			name: "low contrast peak rejected by prominence",
			// Index 3 rides the 0.85 shoulder of the taller peak: its left
			// scan stops at index 1 with a minimum of 0.85, so its
			// prominence is 0.05 while the floor is 0.2 * 0.95.
			env:      []float64{0, 0.95, 0.85, 0.9, 0.1, 0},
			cfg:      Config{Height: 0.5, Distance: 1, Prominence: 0.2},
			expected: []int{1},
		},
		{
			name:     "plateau is not a peak",
			env:      []float64{0, 1, 1, 0},
			cfg:      Config{Height: 0.5, Distance: 1, Prominence: 0},
			expected: nil,
		},
		{
			name:     "boundary samples never qualify",
			env:      []float64{1, 0, 0, 0, 1},
			cfg:      Config{Height: 0.5, Distance: 1, Prominence: 0},
			expected: nil,
		},
		{
			name:     "too short",
			env:      []float64{0, 1},
			cfg:      Config{Height: 0, Distance: 1, Prominence: 0},
			expected: nil,
		},
		{
			name:     "empty",
			env:      nil,
			cfg:      Config{Height: 0, Distance: 1, Prominence: 0},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Find(tt.env, tt.cfg)
			if !equalInts(indicesOf(got), tt.expected) {
				t.Errorf("Find = %v, expected indices %v", got, tt.expected)
			}
		})
	}
}

func TestFindHeights(t *testing.T) {
	env := []float64{0, 0.7, 0, 0.9, 0}

	got := Find(env, Config{Height: 0.5, Distance: 1, Prominence: 0})
	if len(got) != 2 {
		t.Fatalf("expected 2 peaks, got %d", len(got))
	}

	if got[0].Height != 0.7 || got[1].Height != 0.9 {
		t.Errorf("unexpected heights: %+v", got)
	}
}

func TestFindProminenceStopsAtOwnHeight(t *testing.T) {
	// The valley between the two tall peaks is 0.4 deep on each side, so
	// both peaks are prominent even though neither is globally isolated.
	env := []float64{0, 1, 0.6, 1, 0}

	got := Find(env, Config{Height: 0.5, Distance: 1, Prominence: 0.3})
	if !equalInts(indicesOf(got), []int{1, 3}) {
		t.Errorf("Find = %v, expected [1 3]", got)
	}
}

func TestFindProminenceFloorUsesGlobalMax(t *testing.T) {
	// The floor scales with the signed global maximum (0.2), not the
	// largest magnitude (1.0). Peak 1 has prominence exactly at the 0.1
	// floor; against a |min|-derived floor of 0.5 both peaks would vanish.
	env := []float64{-1, 0.1, 0, 0.2, 0}

	got := Find(env, Config{Height: 0, Distance: 1, Prominence: 0.5})
	if !equalInts(indicesOf(got), []int{1, 3}) {
		t.Errorf("Find = %v, expected [1 3]", got)
	}
}

func TestTimes(t *testing.T) {
	ps := []Peak{{Index: 100, Height: 1}, {Index: 250, Height: 0.5}}

	got := Times(ps, 1000)
	if got[0] != 0.1 || got[1] != 0.25 {
		t.Errorf("Times = %v", got)
	}
}
