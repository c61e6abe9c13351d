package envelope

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-12

func TestBuildNotReady(t *testing.T) {
	if _, err := Build(nil); !errors.Is(err, ErrNotReady) {
		t.Errorf("empty samples: expected ErrNotReady, got %v", err)
	}

	_, err := BuildConfig([]float64{1, 2}, Config{SampleRate: 0, Window: 0.002})
	if !errors.Is(err, ErrNotReady) {
		t.Errorf("zero sample rate: expected ErrNotReady, got %v", err)
	}
}

func TestBuildRectifiesWithoutSmoothing(t *testing.T) {
	// Window shorter than one sample period: envelope is |x| unchanged.
	samples := []float64{-0.5, 0.25, -1, 0}

	env, err := BuildConfig(samples, Config{SampleRate: 100, Window: 0.002})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []float64{0.5, 0.25, 1, 0}
	for i := range expected {
		if env[i] != expected[i] {
			t.Errorf("env[%d] = %v, expected %v", i, env[i], expected[i])
		}
	}
}

func TestBuildConstantSignal(t *testing.T) {
	// Box-smoothed constant stays constant in the interior; the edges dip
	// because out-of-range taps are dropped, not zero-padded.
	samples := make([]float64, 10)
	for i := range samples {
		samples[i] = -0.8
	}

	// 5-sample window at 1 kHz.
	env, err := BuildConfig(samples, Config{SampleRate: 1000, Window: 0.005})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(env) != len(samples) {
		t.Fatalf("length mismatch: got %d, expected %d", len(env), len(samples))
	}

	expected := []float64{
		0.8 * 3 / 5, // taps -2..-1 dropped
		0.8 * 4 / 5,
		0.8, 0.8, 0.8, 0.8, 0.8, 0.8,
		0.8 * 4 / 5,
		0.8 * 3 / 5,
	}

	for i := range expected {
		if math.Abs(env[i]-expected[i]) > tolerance {
			t.Errorf("env[%d] = %v, expected %v", i, env[i], expected[i])
		}
	}
}

func TestBuildNonNegative(t *testing.T) {
	samples := []float64{-1, 0.5, -0.25, 0.75, -0.5, 0.1}

	env, err := BuildConfig(samples, Config{SampleRate: 1000, Window: 0.003})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, v := range env {
		if v < 0 {
			t.Errorf("env[%d] = %v, expected non-negative", i, v)
		}
	}
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	samples := []float64{-0.5, 0.5, -0.5, 0.5}

	if _, err := BuildConfig(samples, Config{SampleRate: 1000, Window: 0.003}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if samples[0] != -0.5 {
		t.Errorf("input mutated: %v", samples)
	}
}

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(WithSampleRate(44100), WithWindow(0.01))
	if cfg.SampleRate != 44100 || cfg.Window != 0.01 {
		t.Errorf("unexpected config: %+v", cfg)
	}

	// Invalid values are ignored.
	cfg = ApplyOptions(WithSampleRate(-1), WithWindow(0))
	if cfg.SampleRate != defaultSampleRate || cfg.Window != defaultWindow {
		t.Errorf("invalid options not ignored: %+v", cfg)
	}
}
